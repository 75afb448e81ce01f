// Package domain holds the checkout types: payment orders, merchant
// credentials and the data behind an order-confirmation email.
package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// OrderCreationRequest is a validated request to open a payment order.
type OrderCreationRequest struct {
	Money   Money
	Receipt string
}

// NewOrderCreationRequest validates caller input. A nil amount or empty
// receipt is reported as a missing field; currency falls back to
// defaultCurrency when empty. The amount must convert to between 1 and
// MaxInt64 minor units.
func NewOrderCreationRequest(amount *decimal.Decimal, currency, receipt, defaultCurrency string) (OrderCreationRequest, error) {
	if amount == nil {
		return OrderCreationRequest{}, ErrMissingAmount
	}
	if strings.TrimSpace(receipt) == "" {
		return OrderCreationRequest{}, ErrMissingReceipt
	}
	if !amount.IsPositive() {
		return OrderCreationRequest{}, NewInvalidAmountError(amount.String())
	}
	minor := minorUnits(*amount)
	if !minor.IsPositive() {
		return OrderCreationRequest{}, NewAmountOutOfRangeError(amount.String(), "rounds to zero minor units")
	}
	if minor.GreaterThan(maxMinorUnits) {
		return OrderCreationRequest{}, NewAmountOutOfRangeError(amount.String(), "exceeds the largest payable amount")
	}

	if strings.TrimSpace(currency) == "" {
		currency = defaultCurrency
	}
	c, err := normalizeCurrency(currency)
	if err != nil {
		return OrderCreationRequest{}, err
	}

	return OrderCreationRequest{
		Money:   Money{Amount: *amount, Currency: c},
		Receipt: receipt,
	}, nil
}

// PaymentOrder is the result handed back to the storefront. PublicKeyID is
// the merchant's public key id, safe to expose to a checkout widget.
type PaymentOrder struct {
	OrderID          string
	AmountMinorUnits int64
	Currency         string
	PublicKeyID      string
}
