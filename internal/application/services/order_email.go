package services

import (
	"context"
	"log/slog"

	"github.com/DanielPopoola/ficmart-checkout/internal/application"
	"github.com/DanielPopoola/ficmart-checkout/internal/domain"
)

type OrderEmailService struct {
	renderer application.OrderEmailRenderer
	sender   application.EmailSender
	recorder application.OutcomeRecorder
	logger   *slog.Logger
}

func NewOrderEmailService(
	renderer application.OrderEmailRenderer,
	sender application.EmailSender,
	recorder application.OutcomeRecorder,
	logger *slog.Logger,
) *OrderEmailService {
	return &OrderEmailService{
		renderer: renderer,
		sender:   sender,
		recorder: recorder,
		logger:   logger,
	}
}

// Send renders the confirmation and makes a single dispatch attempt.
func (s *OrderEmailService) Send(ctx context.Context, req domain.OrderEmailRequest) error {
	html, err := s.renderer.Render(req.OrderData)
	if err != nil {
		s.logger.Error("failed to render order email", "order_id", req.OrderData.OrderID, "error", err)
		s.record(OutcomeRenderError)
		return application.NewInternalError(err)
	}

	if !s.sender.Send(ctx, req.To, req.Subject, html) {
		s.record(OutcomeDispatchFailure)
		return application.NewDispatchFailureError()
	}

	s.logger.Info("order email sent", "order_id", req.OrderData.OrderID)
	s.record(OutcomeSuccess)
	return nil
}

func (s *OrderEmailService) record(outcome string) {
	if s.recorder != nil {
		s.recorder.OrderEmail(outcome)
	}
}
