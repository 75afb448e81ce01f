package services_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/DanielPopoola/ficmart-checkout/internal/application"
	"github.com/DanielPopoola/ficmart-checkout/internal/application/mocks"
	"github.com/DanielPopoola/ficmart-checkout/internal/application/services"
	"github.com/DanielPopoola/ficmart-checkout/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sampleEmailRequest() domain.OrderEmailRequest {
	return domain.OrderEmailRequest{
		To:      "asha@example.com",
		Subject: "Your order is confirmed",
		OrderData: domain.OrderData{
			OrderID:      "abcdef1234567890",
			CustomerName: "Asha Rao",
			Items: []domain.LineItem{
				{Name: "Ceramic Mug", Quantity: 2, Price: decimal.RequireFromString("249.5")},
			},
			TotalAmount:   decimal.RequireFromString("499"),
			PaymentMethod: "cod",
			OrderDate:     time.Date(2026, time.March, 5, 10, 0, 0, 0, time.UTC),
		},
	}
}

func TestOrderEmailService_Send_Success(t *testing.T) {
	renderer := mocks.NewMockOrderEmailRenderer(t)
	sender := mocks.NewMockEmailSender(t)
	outcomes := &recordedOutcomes{}
	svc := services.NewOrderEmailService(renderer, sender, outcomes, discardLogger())

	req := sampleEmailRequest()
	renderer.EXPECT().Render(req.OrderData).Return("<html>ok</html>", nil).Once()
	sender.EXPECT().Send(mock.Anything, req.To, req.Subject, "<html>ok</html>").Return(true).Once()

	err := svc.Send(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, []string{services.OutcomeSuccess}, outcomes.orderEmails)
}

func TestOrderEmailService_Send_DispatchFailure(t *testing.T) {
	renderer := mocks.NewMockOrderEmailRenderer(t)
	sender := mocks.NewMockEmailSender(t)
	outcomes := &recordedOutcomes{}
	svc := services.NewOrderEmailService(renderer, sender, outcomes, discardLogger())

	req := sampleEmailRequest()
	renderer.EXPECT().Render(mock.Anything).Return("<html>ok</html>", nil).Once()
	sender.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(false).Once()

	err := svc.Send(context.Background(), req)

	svcErr, ok := application.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, application.ErrCodeDispatchFailure, svcErr.Code)
	assert.Equal(t, http.StatusInternalServerError, svcErr.HTTPStatus)
	assert.Equal(t, []string{services.OutcomeDispatchFailure}, outcomes.orderEmails)
}

func TestOrderEmailService_Send_RenderFailure_NothingSent(t *testing.T) {
	renderer := mocks.NewMockOrderEmailRenderer(t)
	sender := mocks.NewMockEmailSender(t)
	svc := services.NewOrderEmailService(renderer, sender, nil, discardLogger())

	renderer.EXPECT().Render(mock.Anything).Return("", errors.New("template: bad")).Once()

	err := svc.Send(context.Background(), sampleEmailRequest())

	svcErr, ok := application.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, application.ErrCodeInternal, svcErr.Code)
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
