package services

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/DanielPopoola/ficmart-checkout/internal/application"
	"github.com/DanielPopoola/ficmart-checkout/internal/domain"
)

const (
	OutcomeSuccess         = "success"
	OutcomeConfigError     = "config_error"
	OutcomeUpstreamError   = "upstream_error"
	OutcomeInternalError   = "internal_error"
	OutcomeRenderError     = "render_error"
	OutcomeDispatchFailure = "dispatch_failure"
)

// capturePaymentOnSuccess asks the gateway to capture automatically once
// the customer pays.
const capturePaymentOnSuccess = 1

type PaymentOrderService struct {
	settings application.SettingsReader
	gateway  application.PaymentGateway
	keys     domain.CredentialKeys
	recorder application.OutcomeRecorder
	logger   *slog.Logger
}

func NewPaymentOrderService(
	settings application.SettingsReader,
	gateway application.PaymentGateway,
	keys domain.CredentialKeys,
	recorder application.OutcomeRecorder,
	logger *slog.Logger,
) *PaymentOrderService {
	return &PaymentOrderService{
		settings: settings,
		gateway:  gateway,
		keys:     keys,
		recorder: recorder,
		logger:   logger,
	}
}

// CreateOrder looks up the merchant credentials and opens an order with the
// gateway. Credentials are read on every call. No gateway call is made when
// they are missing or incomplete, and a failed gateway call is not retried.
func (s *PaymentOrderService) CreateOrder(ctx context.Context, req domain.OrderCreationRequest) (*domain.PaymentOrder, error) {
	creds, err := s.fetchCredentials(ctx)
	if err != nil {
		s.record(OutcomeConfigError)
		return nil, err
	}

	gatewayReq := application.GatewayOrderRequest{
		Amount:         req.Money.MinorUnits(),
		Currency:       req.Money.Currency,
		Receipt:        req.Receipt,
		PaymentCapture: capturePaymentOnSuccess,
	}

	order, err := s.gateway.CreateOrder(ctx, creds, gatewayReq)
	if err != nil {
		if gwErr, ok := application.IsGatewayError(err); ok {
			s.logger.Warn("gateway rejected order",
				"receipt", req.Receipt,
				"status", gwErr.StatusCode,
				"body", string(gwErr.Body),
			)
			s.record(OutcomeUpstreamError)
			return nil, application.NewUpstreamError(gwErr.StatusCode, upstreamDetails(gwErr.Body))
		}

		s.logger.Error("gateway call failed", "receipt", req.Receipt, "error", err)
		s.record(OutcomeInternalError)
		return nil, application.NewInternalError(err)
	}

	s.logger.Info("payment order created",
		"order_id", order.ID,
		"receipt", req.Receipt,
		"amount", order.Amount,
		"currency", order.Currency,
	)
	s.record(OutcomeSuccess)

	return &domain.PaymentOrder{
		OrderID:          order.ID,
		AmountMinorUnits: order.Amount,
		Currency:         order.Currency,
		PublicKeyID:      creds.KeyID,
	}, nil
}

func (s *PaymentOrderService) fetchCredentials(ctx context.Context) (domain.MerchantCredentials, error) {
	values, err := s.settings.FetchCredentials(ctx, s.keys.List())
	if err != nil {
		s.logger.Error("failed to read merchant credentials", "error", err)
		return domain.MerchantCredentials{}, application.NewConfigMissingError(err)
	}
	if len(values) == 0 {
		s.logger.Error("merchant credentials not configured")
		return domain.MerchantCredentials{}, application.NewConfigMissingError(domain.ErrSettingsNotFound)
	}

	creds, err := domain.NewMerchantCredentials(values, s.keys)
	if err != nil {
		var missingErr *domain.MissingCredentialsError
		if errors.As(err, &missingErr) {
			s.logger.Error("merchant credentials incomplete", "missing", missingErr.Missing)
		}
		return domain.MerchantCredentials{}, application.NewConfigIncompleteError(err)
	}

	return creds, nil
}

func (s *PaymentOrderService) record(outcome string) {
	if s.recorder != nil {
		s.recorder.PaymentOrder(outcome)
	}
}

// upstreamDetails keeps a JSON body as JSON so the caller sees the
// gateway's error object, and falls back to the raw text otherwise.
func upstreamDetails(body []byte) any {
	if len(body) == 0 {
		return nil
	}
	if json.Valid(body) {
		return json.RawMessage(body)
	}
	return string(body)
}
