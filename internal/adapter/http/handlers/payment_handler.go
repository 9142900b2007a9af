package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	response "backing_tracks/internal/adapter/http/dto/response"
	"backing_tracks/internal/adapter/http/middleware"
	"backing_tracks/internal/usecase"
	"backing_tracks/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler handles HTTP requests for track request payments.
type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
	logger  *zap.Logger
}

func NewPaymentHandler(uc usecase.IPaymentUseCase, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{usecase: uc, logger: logger}
}

// CreatePaymentByRequestID godoc
// @Summary      Pay for a track request
// @Description  Charges the price shown to the customer through Mercado Pago. The body is the provider payload, optionally wrapped in mp_payload.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request_id  path   string                          true   "Track request ID"
// @Param        token       query  string                          false  "Guest access token"
// @Param        payload     body   request.PaymentCreateRequest    false  "Provider payload"
// @Success      200  {object}  response.PaymentResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /payments/{request_id} [post]
func (h *PaymentHandler) CreatePaymentByRequestID(c *gin.Context) {
	requestID := c.Param("request_id")
	h.logger.Info("[payment][handler] create start", zap.String("request_id", requestID))

	payload, err := readMPPayload(c)
	if err != nil {
		// The use case decides whether an empty payload is acceptable.
		h.logger.Info("[payment][handler] unreadable payload", zap.String("request_id", requestID), zap.Error(err))
		payload = nil
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), requestID, middleware.Viewer(c), payload)
	if err != nil {
		h.logger.Warn("[payment][handler] create failed", zap.String("request_id", requestID), zap.Error(err))
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.logger.Info("[payment][handler] create success",
		zap.String("request_id", requestID),
		zap.String("payment_id", created.ID),
		zap.String("status", string(created.Status)))

	c.JSON(http.StatusOK, response.FromPayment(created))
}

// GetPaymentByRequestID godoc
// @Summary      Latest payment of a track request
// @Tags         payments
// @Produce      json
// @Param        request_id  path   string  true   "Track request ID"
// @Param        token       query  string  false  "Guest access token"
// @Success      200  {object}  response.PaymentResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /payments/{request_id} [get]
func (h *PaymentHandler) GetPaymentByRequestID(c *gin.Context) {
	requestID := c.Param("request_id")

	payments, err := h.usecase.ListByRequestID(c.Request.Context(), requestID, middleware.Viewer(c))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if len(payments) == 0 {
		appErr := pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	c.JSON(http.StatusOK, response.FromPayment(latest))
}

// GetPayment godoc
// @Summary      Payment by id
// @Description  Returns the payment only to viewers allowed to see its track request; otherwise it is reported as missing.
// @Tags         payments
// @Produce      json
// @Param        id     path   string  true   "Payment ID"
// @Param        token  query  string  false  "Guest access token"
// @Success      200  {object}  response.PaymentResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /payments/by-id/{id} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"), middleware.Viewer(c))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(p))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTrackRequestID), errors.Is(err, usecase.ErrInvalidPaymentID),
		errors.Is(err, usecase.ErrInvalidProviderPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payments are not available", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrTrackRequestNotFound), errors.Is(err, usecase.ErrAccessDenied):
		return errTrackRequestNotFound
	case errors.Is(err, usecase.ErrRequestNotPayable):
		return pkg.NewDomainErrorSimple("TRACK_REQUEST_NOT_PAYABLE", "Track request cannot be paid yet", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
