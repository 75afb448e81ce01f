package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	PaymentMethodCOD = "cod"

	PaymentLabelCOD    = "Cash on Delivery"
	PaymentLabelOnline = "Online Payment"
)

type LineItem struct {
	Name     string
	Quantity int
	Price    decimal.Decimal
}

// Total is price * quantity.
func (i LineItem) Total() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type ShippingAddress struct {
	FirstName string
	LastName  string
	Address   string
	City      string
	State     string
	ZipCode   string
	Phone     string
}

type OrderData struct {
	OrderID         string
	CustomerName    string
	Items           []LineItem
	TotalAmount     decimal.Decimal
	ShippingAddress ShippingAddress
	PaymentMethod   string
	OrderDate       time.Time
}

// Validate checks the line item invariants: quantity > 0 and price >= 0.
func (d OrderData) Validate() error {
	for i, item := range d.Items {
		if item.Quantity <= 0 {
			return NewInvalidLineItemError(i, "quantity must be greater than zero")
		}
		if item.Price.IsNegative() {
			return NewInvalidLineItemError(i, "price must not be negative")
		}
	}
	return nil
}

// DisplayID is the last 8 characters of the order id, upper-cased.
func (d OrderData) DisplayID() string {
	r := []rune(d.OrderID)
	if len(r) > 8 {
		r = r[len(r)-8:]
	}
	return strings.ToUpper(string(r))
}

// PaymentMethodLabel maps "cod" to Cash on Delivery; anything else,
// unknown values included, is Online Payment.
func PaymentMethodLabel(method string) string {
	if method == PaymentMethodCOD {
		return PaymentLabelCOD
	}
	return PaymentLabelOnline
}

type OrderEmailRequest struct {
	To        string
	Subject   string
	OrderData OrderData
}
