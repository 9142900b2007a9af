package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"backing_tracks/internal/domain/entities"
	"backing_tracks/internal/domain/pricing"
	"backing_tracks/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrPaymentNotFound                = errors.New("payment not found")
	ErrInvalidPaymentID               = errors.New("invalid payment id")
	ErrInvalidProviderPayload         = errors.New("invalid payment provider payload")
	ErrRequestNotPayable              = errors.New("track request not payable")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// IPaymentUseCase charges track requests through the payment gateway.
type IPaymentUseCase interface {
	CreateAndApprove(ctx context.Context, requestID string, viewer entities.ViewerContext, payload json.RawMessage) (entities.Payment, error)
	GetByID(ctx context.Context, id string, viewer entities.ViewerContext) (entities.Payment, error)
	ListByRequestID(ctx context.Context, requestID string, viewer entities.ViewerContext) ([]entities.Payment, error)
}

type PaymentUseCase struct {
	repo     interfaces.IPaymentRepository
	requests ITrackRequestUseCase
	gateway  interfaces.IPaymentGateway
	logger   *zap.Logger
	mockMode bool
	now      func() time.Time
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

// NewPaymentUseCase wires payments to the request use case so every charge
// goes through the same access check as viewing the request.
func NewPaymentUseCase(repo interfaces.IPaymentRepository, requests ITrackRequestUseCase, gateway interfaces.IPaymentGateway, logger *zap.Logger, mockMode bool) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, requests: requests, gateway: gateway, logger: logger, mockMode: mockMode, now: time.Now}
}

// CreateAndApprove charges the amount the customer was shown: the final
// price when set, otherwise the computed total.
func (u *PaymentUseCase) CreateAndApprove(ctx context.Context, requestID string, viewer entities.ViewerContext, payload json.RawMessage) (entities.Payment, error) {
	if strings.TrimSpace(requestID) == "" {
		return entities.Payment{}, ErrInvalidTrackRequestID
	}
	if len(payload) == 0 || !json.Valid(payload) {
		if !u.mockMode {
			return entities.Payment{}, ErrInvalidProviderPayload
		}
		payload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		return entities.Payment{}, ErrPaymentGatewayNotConfigured
	}

	view, err := u.requests.View(ctx, requestID, viewer)
	if err != nil {
		return entities.Payment{}, err
	}
	amount, err := chargeableAmount(view)
	if err != nil {
		u.logger.Info("[payment][usecase] request not payable", zap.String("request_id", view.Request.ID), zap.Error(err))
		return entities.Payment{}, err
	}
	req := view.Request

	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err != nil || reqMap == nil {
		return entities.Payment{}, ErrInvalidProviderPayload
	}
	if !u.mockMode && !hasNonEmptyString(reqMap, "payment_method_id") {
		return entities.Payment{}, ErrInvalidProviderPayload
	}
	ensurePayer(reqMap, req.OwnerEmail)
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = req.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Backing track: %s", req.SongTitle)
	}
	// The amount always comes from pricing, never from the client.
	reqMap["transaction_amount"] = amount
	enriched, err := json.Marshal(reqMap)
	if err != nil {
		return entities.Payment{}, err
	}

	u.logger.Info("[payment][usecase] calling payment gateway",
		zap.String("request_id", req.ID),
		zap.Float64("amount", amount))
	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, enriched)
	if err != nil {
		u.logger.Warn("[payment][usecase] payment gateway failed", zap.String("request_id", req.ID), zap.Error(err))
		return entities.Payment{}, classifyGatewayError(err)
	}
	if providerID == "" {
		providerID = strconv.FormatInt(u.now().UTC().UnixNano(), 10)
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		u.logger.Debug("[payment][usecase] provider response is not an object", zap.Error(err))
	}

	created, err := u.repo.Create(ctx, entities.Payment{
		ID:                 providerID,
		RequestID:          req.ID,
		Amount:             amount,
		Date:               u.now().UTC(),
		Status:             paymentStatusFromProvider(providerStatus),
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	})
	if err != nil {
		u.logger.Error("[payment][usecase] payment repository create failed",
			zap.String("request_id", req.ID),
			zap.String("payment_id", providerID),
			zap.Error(err))
		return entities.Payment{}, err
	}
	u.logger.Info("[payment][usecase] payment stored",
		zap.String("request_id", req.ID),
		zap.String("payment_id", created.ID),
		zap.String("status", string(created.Status)))
	return created, nil
}

// GetByID returns a payment to viewers allowed to see its track request.
// A payment the viewer may not see is reported as missing.
func (u *PaymentUseCase) GetByID(ctx context.Context, id string, viewer entities.ViewerContext) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}

	if _, err := u.requests.View(ctx, p.RequestID, viewer); err != nil {
		if errors.Is(err, ErrAccessDenied) || errors.Is(err, ErrTrackRequestNotFound) {
			u.logger.Info("[payment][usecase] payment hidden from viewer", zap.String("payment_id", p.ID))
			return entities.Payment{}, ErrPaymentNotFound
		}
		return entities.Payment{}, err
	}
	return p, nil
}

func (u *PaymentUseCase) ListByRequestID(ctx context.Context, requestID string, viewer entities.ViewerContext) ([]entities.Payment, error) {
	view, err := u.requests.View(ctx, requestID, viewer)
	if err != nil {
		return nil, err
	}
	return u.repo.ListByRequestID(ctx, view.Request.ID)
}

func chargeableAmount(v TrackRequestView) (float64, error) {
	if v.Request.Status == entities.TrackRequestStatusCancelled {
		return 0, fmt.Errorf("%w: request cancelled", ErrRequestNotPayable)
	}
	if v.Cost == nil {
		return 0, fmt.Errorf("%w: pricing unavailable", ErrRequestNotPayable)
	}
	amount := v.Cost.TotalCost
	if v.Cost.DisplayPoint != nil {
		amount = *v.Cost.DisplayPoint
	}
	if amount <= 0 {
		return 0, fmt.Errorf("%w: nothing to charge (%s)", ErrRequestNotPayable, pricing.FormatAmount(amount))
	}
	return amount, nil
}

func paymentStatusFromProvider(status string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "authorized":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusDenied
	default:
		return entities.PaymentStatusPending
	}
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

// ensurePayer fills payer.email from the request when the client sent none.
func ensurePayer(m map[string]any, email string) {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		payer = map[string]any{}
		m["payer"] = payer
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if !hasNonEmptyString(payer, "email") && payer["id"] == nil && email != "" {
		payer["email"] = email
	}
}

func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, `"code":2002`):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, `"code":2034`):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, `"error":"unauthorized"`) || strings.Contains(msg, `"status":401`):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, `"error":"bad_request"`) || strings.Contains(msg, `"status":400`):
		return ErrPaymentGatewayBadRequest
	}
	return err
}
