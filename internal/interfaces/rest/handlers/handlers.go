package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/DanielPopoola/ficmart-checkout/internal/api"
	"github.com/DanielPopoola/ficmart-checkout/internal/application"
	"github.com/DanielPopoola/ficmart-checkout/internal/domain"
	"github.com/DanielPopoola/ficmart-checkout/internal/interfaces/rest"
	"github.com/go-playground/validator"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

const maxBodyBytes = 1 << 20

type PaymentOrderCreator interface {
	CreateOrder(ctx context.Context, req domain.OrderCreationRequest) (*domain.PaymentOrder, error)
}

type OrderEmailSender interface {
	Send(ctx context.Context, req domain.OrderEmailRequest) error
}

// Handlers implements the OpenAPI StrictServerInterface for the two
// checkout endpoints. They share nothing but the response envelope.
type Handlers struct {
	orders          PaymentOrderCreator
	emails          OrderEmailSender
	defaultCurrency string
	validate        *validator.Validate
	logger          *slog.Logger
}

func NewHandlers(
	orders PaymentOrderCreator,
	emails OrderEmailSender,
	defaultCurrency string,
	logger *slog.Logger,
) *Handlers {
	return &Handlers{
		orders:          orders,
		emails:          emails,
		defaultCurrency: defaultCurrency,
		validate:        newValidator(),
		logger:          logger,
	}
}

// Ensure Handlers implements StrictServerInterface
var _ api.StrictServerInterface = (*Handlers)(nil)

// RegisterRoutes mounts the generated strict server on mux. middlewares run
// before the body is decoded, inside the body size limit.
func (h *Handlers) RegisterRoutes(mux *http.ServeMux, middlewares ...api.MiddlewareFunc) {
	strict := api.NewStrictHandlerWithOptions(h, nil, api.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  h.requestError,
		ResponseErrorHandlerFunc: h.responseError,
	})

	chain := append([]api.MiddlewareFunc{}, middlewares...)
	chain = append(chain, limitBody)

	api.HandlerWithOptions(strict, api.StdHTTPServerOptions{
		BaseRouter:       mux,
		Middlewares:      chain,
		ErrorHandlerFunc: h.requestError,
	})
}

func limitBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		next.ServeHTTP(w, r)
	})
}

// requestError handles bodies the generated decoder rejects. Malformed input
// is an internal error, not a validation error; an address failing the
// email pattern is the one exception.
func (h *Handlers) requestError(w http.ResponseWriter, r *http.Request, err error) {
	logger := rest.Logger(r.Context(), h.logger)
	if errors.Is(err, openapi_types.ErrValidationEmail) {
		rest.WriteError(w, invalidField("to must be a valid email address"), logger)
		return
	}
	rest.WriteError(w, application.NewInternalError(fmt.Errorf("decode request body: %w", err)), logger)
}

func (h *Handlers) responseError(w http.ResponseWriter, r *http.Request, err error) {
	rest.WriteError(w, err, rest.Logger(r.Context(), h.logger))
}

// validateStruct runs the struct tags and reports the first failure as a
// validation error named by its JSON path.
func (h *Handlers) validateStruct(v any) error {
	err := h.validate.Struct(v)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok || len(fieldErrs) == 0 {
		return application.NewInternalError(err)
	}

	fe := fieldErrs[0]
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}

	switch fe.Tag() {
	case "required":
		return invalidField(fmt.Sprintf("%s is required", field))
	case "email":
		return invalidField(fmt.Sprintf("%s must be a valid email address", field))
	case "gt":
		return invalidField(fmt.Sprintf("%s must be greater than %s", field, fe.Param()))
	default:
		return invalidField(fmt.Sprintf("%s is invalid", field))
	}
}

func invalidField(msg string) error {
	return application.NewValidationError(&domain.DomainError{
		Code:    domain.ErrCodeMissingRequiredField,
		Message: msg,
	})
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// errorEnvelope builds the response body for err and logs it once.
func errorEnvelope(err error, logger *slog.Logger) (int, api.Error) {
	status, body := rest.BuildErrorResponse(err)
	rest.LogError(logger, err, status)
	return status, body
}
