package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/ficmart-checkout/internal/api"
	"github.com/DanielPopoola/ficmart-checkout/internal/domain"
	"github.com/DanielPopoola/ficmart-checkout/internal/interfaces/rest"
)

// CreateOrder opens a payment order with the gateway and returns the order
// id with the merchant's public key id.
func (h *Handlers) CreateOrder(
	ctx context.Context,
	request api.CreateOrderRequestObject,
) (api.CreateOrderResponseObject, error) {
	logger := rest.Logger(ctx, h.logger)
	req := request.Body

	if err := h.validateStruct(req); err != nil {
		return mapCreateOrderErrorToAPIResponse(err, logger), nil
	}

	orderReq, err := domain.NewOrderCreationRequest(&req.Amount, req.Currency, req.Receipt, h.defaultCurrency)
	if err != nil {
		return mapCreateOrderErrorToAPIResponse(err, logger), nil
	}

	order, err := h.orders.CreateOrder(ctx, orderReq)
	if err != nil {
		return mapCreateOrderErrorToAPIResponse(err, logger), nil
	}

	return api.CreateOrder200JSONResponse{
		OrderId:  order.OrderID,
		Amount:   order.AmountMinorUnits,
		Currency: order.Currency,
		KeyId:    order.PublicKeyID,
	}, nil
}

// Gateway rejections keep the gateway's status code.
func mapCreateOrderErrorToAPIResponse(err error, logger *slog.Logger) api.CreateOrderResponseObject {
	statusCode, errorResponse := errorEnvelope(err, logger)

	switch statusCode {
	case http.StatusBadRequest:
		return api.CreateOrder400JSONResponse(errorResponse)
	case http.StatusInternalServerError:
		return api.CreateOrder500JSONResponse(errorResponse)
	default:
		return api.CreateOrderdefaultJSONResponse{Body: errorResponse, StatusCode: statusCode}
	}
}
