package application

import (
	"context"

	"github.com/DanielPopoola/ficmart-checkout/internal/domain"
)

// SettingsReader is the port for the read-only settings store. It returns
// only the keys that exist and fails when none do.
type SettingsReader interface {
	FetchCredentials(ctx context.Context, keys []string) (map[string]string, error)
}

// GatewayOrderRequest is the body of a gateway order-creation call.
type GatewayOrderRequest struct {
	Amount         int64  `json:"amount"`
	Currency       string `json:"currency"`
	Receipt        string `json:"receipt"`
	PaymentCapture int    `json:"payment_capture"`
}

type GatewayOrder struct {
	ID        string `json:"id"`
	Entity    string `json:"entity"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Receipt   string `json:"receipt"`
	Status    string `json:"status"`
	CreatedAt int64  `json:"created_at"`
}

// PaymentGateway is the port for the external payment processor.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, creds domain.MerchantCredentials, req GatewayOrderRequest) (*GatewayOrder, error)
}

// EmailSender dispatches one rendered email. It never returns an error:
// every failure is logged and reported as false.
type EmailSender interface {
	Send(ctx context.Context, to, subject, html string) bool
}

type OrderEmailRenderer interface {
	Render(data domain.OrderData) (string, error)
}

// OutcomeRecorder counts operation outcomes; implementations must accept
// concurrent calls.
type OutcomeRecorder interface {
	PaymentOrder(outcome string)
	OrderEmail(outcome string)
}
