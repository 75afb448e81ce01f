package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/ficmart-checkout/internal/api"
	"github.com/DanielPopoola/ficmart-checkout/internal/domain"
	"github.com/DanielPopoola/ficmart-checkout/internal/interfaces/rest"
)

const emailSentMessage = "Email sent successfully"

// SendOrderEmail renders the order confirmation and sends it once.
func (h *Handlers) SendOrderEmail(
	ctx context.Context,
	request api.SendOrderEmailRequestObject,
) (api.SendOrderEmailResponseObject, error) {
	logger := rest.Logger(ctx, h.logger)
	req := request.Body

	if err := h.validateStruct(req); err != nil {
		return mapSendOrderEmailErrorToAPIResponse(err, logger), nil
	}

	emailReq := toOrderEmailRequest(req)
	if err := emailReq.OrderData.Validate(); err != nil {
		return mapSendOrderEmailErrorToAPIResponse(err, logger), nil
	}

	if err := h.emails.Send(ctx, emailReq); err != nil {
		return mapSendOrderEmailErrorToAPIResponse(err, logger), nil
	}

	return api.SendOrderEmail200JSONResponse{
		Success: true,
		Message: emailSentMessage,
	}, nil
}

func mapSendOrderEmailErrorToAPIResponse(err error, logger *slog.Logger) api.SendOrderEmailResponseObject {
	statusCode, errorResponse := errorEnvelope(err, logger)

	switch statusCode {
	case http.StatusBadRequest:
		return api.SendOrderEmail400JSONResponse(errorResponse)
	case http.StatusInternalServerError:
		return api.SendOrderEmail500JSONResponse(errorResponse)
	default:
		return api.SendOrderEmaildefaultJSONResponse{Body: errorResponse, StatusCode: statusCode}
	}
}

func toOrderEmailRequest(req *api.SendOrderEmailRequest) domain.OrderEmailRequest {
	data := req.OrderData
	items := make([]domain.LineItem, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, domain.LineItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	var address domain.ShippingAddress
	if a := data.ShippingAddress; a != nil {
		address = domain.ShippingAddress{
			FirstName: a.FirstName,
			LastName:  a.LastName,
			Address:   a.Address,
			City:      a.City,
			State:     a.State,
			ZipCode:   a.ZipCode,
			Phone:     a.Phone,
		}
	}

	return domain.OrderEmailRequest{
		To:      string(req.To),
		Subject: req.Subject,
		OrderData: domain.OrderData{
			OrderID:         data.OrderId,
			CustomerName:    data.CustomerName,
			Items:           items,
			TotalAmount:     data.TotalAmount,
			ShippingAddress: address,
			PaymentMethod:   data.PaymentMethod,
			OrderDate:       data.OrderDate,
		},
	}
}
