package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"backing_tracks/internal/domain/access"
	"backing_tracks/internal/domain/entities"
	"backing_tracks/internal/domain/pricing"
	"backing_tracks/internal/infrastructure/metrics"
	"backing_tracks/internal/usecase/interfaces"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrTrackRequestNotFound    = errors.New("track request not found")
	ErrAccessDenied            = errors.New("track request access denied")
	ErrInvalidTrackRequestID   = errors.New("invalid track request id")
	ErrInvalidSongTitle        = errors.New("invalid song_title")
	ErrInvalidTrackType        = errors.New("invalid track_type")
	ErrInvalidEmail            = errors.New("invalid email")
	ErrInvalidManualPrice      = errors.New("invalid manual price")
	ErrInvalidStatus           = errors.New("invalid track request status")
	ErrOperatorOnly            = errors.New("operator access required")
	ErrAuthenticationRequired  = errors.New("authentication required")
	ErrAlreadyClaimed          = errors.New("track request already claimed")
	ErrLegacyLinkNotApplicable = errors.New("legacy link not applicable")
	ErrLegacyLinkMismatch      = errors.New("legacy link does not match")
)

// PricingIssueInvalidManualRange marks a stored request whose manual estimate
// is inverted. Saves are blocked, so only records written before that rule
// can carry it.
const PricingIssueInvalidManualRange = "invalid_manual_range"

// SubmitCommand is a customer's new request.
type SubmitCommand struct {
	SongTitle string
	Artist    string
	Notes     string
	Email     string
	Options   entities.RequestOptions
}

// SubmitResult carries the guest token once, so the caller can build the
// follow-up link. It is empty for requests with an owner.
type SubmitResult struct {
	Request          entities.TrackRequest
	Cost             pricing.CostBreakdown
	GuestAccessToken string
	ViewURL          string
}

// ManualPricing replaces all operator overrides of a request; nil clears one.
type ManualPricing struct {
	FinalPrice   *float64
	EstimateLow  *float64
	EstimateHigh *float64
}

// LegacyLinkResult is the upgraded link for a request that predates guest
// tokens.
type LegacyLinkResult struct {
	GuestAccessToken string
	ViewURL          string
}

// TrackRequestView is what a granted viewer gets to see.
type TrackRequestView struct {
	Request      entities.TrackRequest
	Cost         *pricing.CostBreakdown
	PricingIssue string
	Decision     entities.AccessDecision
}

// ITrackRequestUseCase exposes track request operations.
type ITrackRequestUseCase interface {
	Quote(ctx context.Context, opts entities.RequestOptions) (pricing.CostBreakdown, error)
	Submit(ctx context.Context, viewer entities.ViewerContext, cmd SubmitCommand) (SubmitResult, error)
	View(ctx context.Context, id string, viewer entities.ViewerContext) (TrackRequestView, error)
	Claim(ctx context.Context, id string, viewer entities.ViewerContext) (TrackRequestView, error)
	SetPricing(ctx context.Context, id string, viewer entities.ViewerContext, p ManualPricing) (TrackRequestView, error)
	UpdateStatus(ctx context.Context, id string, viewer entities.ViewerContext, status entities.TrackRequestStatus) (TrackRequestView, error)
	ListMine(ctx context.Context, viewer entities.ViewerContext) ([]TrackRequestView, error)
	ListAll(ctx context.Context, viewer entities.ViewerContext) ([]TrackRequestView, error)
	MigrateLegacyLink(ctx context.Context, id string, email string) (LegacyLinkResult, error)
}

type TrackRequestUseCase struct {
	repo          interfaces.ITrackRequestRepository
	notifier      interfaces.INotifier
	logger        *zap.Logger
	validate      *validator.Validate
	publicBaseURL string
	now           func() time.Time
	newToken      func() (string, error)
}

var _ ITrackRequestUseCase = (*TrackRequestUseCase)(nil)

func NewTrackRequestUseCase(repo interfaces.ITrackRequestRepository, notifier interfaces.INotifier, logger *zap.Logger, publicBaseURL string) *TrackRequestUseCase {
	return &TrackRequestUseCase{
		repo:          repo,
		notifier:      notifier,
		logger:        logger,
		validate:      validator.New(),
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		now:           time.Now,
		newToken:      access.NewGuestAccessToken,
	}
}

// Quote prices options for the order form. Customer input never carries
// operator overrides, so they are dropped.
func (u *TrackRequestUseCase) Quote(ctx context.Context, opts entities.RequestOptions) (pricing.CostBreakdown, error) {
	opts = customerOptions(opts)
	b, err := pricing.ComputeCost(opts)
	if err != nil {
		return pricing.CostBreakdown{}, err
	}
	u.logUnknownOptions("", b)
	return b, nil
}

func (u *TrackRequestUseCase) Submit(ctx context.Context, viewer entities.ViewerContext, cmd SubmitCommand) (SubmitResult, error) {
	cmd.SongTitle = strings.TrimSpace(cmd.SongTitle)
	if cmd.SongTitle == "" {
		return SubmitResult{}, ErrInvalidSongTitle
	}
	cmd.Options = customerOptions(cmd.Options)
	if !pricing.IsKnownTrackType(cmd.Options.TrackType) {
		return SubmitResult{}, ErrInvalidTrackType
	}

	email := strings.TrimSpace(cmd.Email)
	if email == "" && viewer.IsAuthenticated() {
		email = viewer.Email
	}
	if err := u.validate.Var(email, "required,email"); err != nil {
		return SubmitResult{}, ErrInvalidEmail
	}

	cost, err := pricing.ComputeCost(cmd.Options)
	if err != nil {
		return SubmitResult{}, err
	}

	now := u.now().UTC()
	r := entities.TrackRequest{
		ID:         uuid.NewString(),
		SongTitle:  cmd.SongTitle,
		Artist:     strings.TrimSpace(cmd.Artist),
		Notes:      strings.TrimSpace(cmd.Notes),
		Options:    cmd.Options,
		OwnerEmail: email,
		Status:     entities.TrackRequestStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if viewer.IsAuthenticated() {
		r.OwnerUserID = viewer.AuthenticatedUserID
	} else {
		token, err := u.newToken()
		if err != nil {
			return SubmitResult{}, err
		}
		r.GuestAccessToken = token
	}

	created, err := u.repo.Create(ctx, r)
	if err != nil {
		u.logger.Error("[track-request][usecase] create failed", zap.String("request_id", r.ID), zap.Error(err))
		return SubmitResult{}, err
	}
	u.logUnknownOptions(created.ID, cost)
	u.logger.Info("[track-request][usecase] submitted",
		zap.String("request_id", created.ID),
		zap.Bool("guest", created.OwnerUserID == ""),
		zap.String("track_type", string(created.Options.TrackType)),
		zap.Float64("total_cost", cost.TotalCost))

	viewURL := u.viewURL(created.ID, created.GuestAccessToken)
	u.notify(ctx, entities.Notification{
		Kind:      entities.NotificationRequestReceived,
		RequestID: created.ID,
		To:        created.OwnerEmail,
		Subject:   fmt.Sprintf("We received your backing track request: %s", created.SongTitle),
		Body:      fmt.Sprintf("%s\nFollow your request at %s", pricing.FormatPriceLine(cost), viewURL),
	})

	return SubmitResult{
		Request:          created,
		Cost:             cost,
		GuestAccessToken: created.GuestAccessToken,
		ViewURL:          viewURL,
	}, nil
}

func (u *TrackRequestUseCase) View(ctx context.Context, id string, viewer entities.ViewerContext) (TrackRequestView, error) {
	r, decision, err := u.loadAuthorized(ctx, id, viewer)
	if err != nil {
		return TrackRequestView{}, err
	}
	return u.buildView(r, decision), nil
}

// Claim links an unowned request to the signed-in viewer who holds its guest
// token. The token is kept; claiming is idempotent for the owner.
func (u *TrackRequestUseCase) Claim(ctx context.Context, id string, viewer entities.ViewerContext) (TrackRequestView, error) {
	if !viewer.IsAuthenticated() {
		return TrackRequestView{}, ErrAuthenticationRequired
	}

	r, decision, err := u.loadAuthorized(ctx, id, viewer)
	if err != nil {
		return TrackRequestView{}, err
	}
	switch {
	case r.OwnerUserID == viewer.AuthenticatedUserID:
		return u.buildView(r, decision), nil
	case decision.Reason != entities.AccessReasonGuestTokenMatch:
		// Operators can see the request but cannot take it over.
		return TrackRequestView{}, ErrAlreadyClaimed
	}

	claimed, err := u.repo.AssignOwner(ctx, r.ID, viewer.AuthenticatedUserID)
	if err != nil {
		return TrackRequestView{}, err
	}
	if claimed.ID == "" {
		return TrackRequestView{}, ErrAlreadyClaimed
	}
	u.logger.Info("[track-request][usecase] claimed", zap.String("request_id", claimed.ID))

	return u.buildView(claimed, access.Authorize(claimed.Record(), viewer)), nil
}

// SetPricing stores operator overrides. An inverted manual range is rejected
// before anything is written.
func (u *TrackRequestUseCase) SetPricing(ctx context.Context, id string, viewer entities.ViewerContext, p ManualPricing) (TrackRequestView, error) {
	if !viewer.IsOperator {
		return TrackRequestView{}, ErrOperatorOnly
	}
	for _, v := range []*float64{p.FinalPrice, p.EstimateLow, p.EstimateHigh} {
		if v != nil && *v < 0 {
			return TrackRequestView{}, ErrInvalidManualPrice
		}
	}

	r, _, err := u.loadAuthorized(ctx, id, viewer)
	if err != nil {
		return TrackRequestView{}, err
	}

	opts := r.Options
	opts.ManualFinalPrice = p.FinalPrice
	opts.ManualEstimateLow = p.EstimateLow
	opts.ManualEstimateHigh = p.EstimateHigh
	if err := pricing.ValidateManualPricing(opts); err != nil {
		metrics.RecordInvalidManualRange()
		u.logger.Warn("[track-request][usecase] manual range rejected", zap.String("request_id", r.ID), zap.Error(err))
		return TrackRequestView{}, err
	}
	cost, err := pricing.ComputeCost(opts)
	if err != nil {
		return TrackRequestView{}, err
	}

	updated, err := u.repo.UpdateOptions(ctx, r.ID, opts)
	if err != nil {
		return TrackRequestView{}, err
	}
	if updated.ID == "" {
		return TrackRequestView{}, ErrTrackRequestNotFound
	}

	if p.FinalPrice != nil && !sameAmount(r.Options.ManualFinalPrice, p.FinalPrice) {
		u.notify(ctx, entities.Notification{
			Kind:      entities.NotificationPriceFinalised,
			RequestID: updated.ID,
			To:        updated.OwnerEmail,
			Subject:   fmt.Sprintf("Your price for %s is ready", updated.SongTitle),
			Body:      fmt.Sprintf("%s\nView your request at %s", pricing.FormatPriceLine(cost), u.viewURL(updated.ID, updated.GuestAccessToken)),
		})
	}

	return u.buildView(updated, access.Authorize(updated.Record(), viewer)), nil
}

func (u *TrackRequestUseCase) UpdateStatus(ctx context.Context, id string, viewer entities.ViewerContext, status entities.TrackRequestStatus) (TrackRequestView, error) {
	if !viewer.IsOperator {
		return TrackRequestView{}, ErrOperatorOnly
	}
	if !status.IsValid() {
		return TrackRequestView{}, ErrInvalidStatus
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return TrackRequestView{}, ErrInvalidTrackRequestID
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return TrackRequestView{}, err
	}
	if updated.ID == "" {
		return TrackRequestView{}, ErrTrackRequestNotFound
	}

	u.notify(ctx, entities.Notification{
		Kind:      entities.NotificationStatusChanged,
		RequestID: updated.ID,
		To:        updated.OwnerEmail,
		Subject:   fmt.Sprintf("Update on %s", updated.SongTitle),
		Body:      fmt.Sprintf("Your request is now %s.\nView it at %s", strings.ReplaceAll(string(status), "_", " "), u.viewURL(updated.ID, updated.GuestAccessToken)),
	})

	return u.buildView(updated, access.Authorize(updated.Record(), viewer)), nil
}

func (u *TrackRequestUseCase) ListMine(ctx context.Context, viewer entities.ViewerContext) ([]TrackRequestView, error) {
	if !viewer.IsAuthenticated() {
		return nil, ErrAuthenticationRequired
	}
	items, err := u.repo.ListByOwner(ctx, viewer.AuthenticatedUserID)
	if err != nil {
		return nil, err
	}
	return u.buildViews(items, viewer), nil
}

func (u *TrackRequestUseCase) ListAll(ctx context.Context, viewer entities.ViewerContext) ([]TrackRequestView, error) {
	if !viewer.IsOperator {
		return nil, ErrOperatorOnly
	}
	items, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return u.buildViews(items, viewer), nil
}

// MigrateLegacyLink upgrades a request created before guest tokens existed.
// The submission email is compared once, exactly (ignoring case and
// surrounding space); on match a token is issued and stored, and the caller
// must send the viewer through the tokenised link. It grants nothing itself.
func (u *TrackRequestUseCase) MigrateLegacyLink(ctx context.Context, id string, email string) (LegacyLinkResult, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return LegacyLinkResult{}, ErrInvalidTrackRequestID
	}

	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return LegacyLinkResult{}, err
	}
	if r.ID == "" {
		return LegacyLinkResult{}, ErrTrackRequestNotFound
	}
	if r.OwnerUserID != "" || r.GuestAccessToken != "" {
		return LegacyLinkResult{}, ErrLegacyLinkNotApplicable
	}
	if !strings.EqualFold(strings.TrimSpace(email), strings.TrimSpace(r.OwnerEmail)) || strings.TrimSpace(email) == "" {
		u.logger.Warn("[track-request][usecase] legacy link email mismatch", zap.String("request_id", r.ID))
		return LegacyLinkResult{}, ErrLegacyLinkMismatch
	}

	token, err := u.newToken()
	if err != nil {
		return LegacyLinkResult{}, err
	}
	updated, err := u.repo.SetGuestAccessToken(ctx, r.ID, token)
	if err != nil {
		return LegacyLinkResult{}, err
	}
	if updated.ID == "" {
		return LegacyLinkResult{}, ErrLegacyLinkNotApplicable
	}
	u.logger.Info("[track-request][usecase] legacy link migrated", zap.String("request_id", r.ID))
	return LegacyLinkResult{GuestAccessToken: token, ViewURL: u.viewURL(r.ID, token)}, nil
}

// loadAuthorized fetches a request and runs the access check. A missing
// request never reaches the authorizer.
func (u *TrackRequestUseCase) loadAuthorized(ctx context.Context, id string, viewer entities.ViewerContext) (entities.TrackRequest, entities.AccessDecision, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.TrackRequest{}, entities.AccessDecision{}, ErrInvalidTrackRequestID
	}

	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.TrackRequest{}, entities.AccessDecision{}, err
	}
	if r.ID == "" {
		return entities.TrackRequest{}, entities.AccessDecision{}, ErrTrackRequestNotFound
	}

	decision := access.Authorize(r.Record(), viewer)
	metrics.RecordAccessDecision(string(decision.Reason))
	if !decision.Granted {
		u.logger.Info("[track-request][usecase] access denied",
			zap.String("request_id", r.ID),
			zap.String("reason", string(decision.Reason)))
		return entities.TrackRequest{}, decision, fmt.Errorf("%w: %s", ErrAccessDenied, decision.Reason)
	}
	return r, decision, nil
}

func (u *TrackRequestUseCase) buildView(r entities.TrackRequest, decision entities.AccessDecision) TrackRequestView {
	v := TrackRequestView{Request: r, Decision: decision}
	cost, err := pricing.ComputeCost(r.Options)
	if err != nil {
		u.logger.Error("[track-request][usecase] stored pricing is invalid", zap.String("request_id", r.ID), zap.Error(err))
		v.PricingIssue = PricingIssueInvalidManualRange
		return v
	}
	u.logUnknownOptions(r.ID, cost)
	v.Cost = &cost
	return v
}

func (u *TrackRequestUseCase) buildViews(items []entities.TrackRequest, viewer entities.ViewerContext) []TrackRequestView {
	views := make([]TrackRequestView, 0, len(items))
	for _, r := range items {
		views = append(views, u.buildView(r, access.Authorize(r.Record(), viewer)))
	}
	return views
}

func (u *TrackRequestUseCase) logUnknownOptions(requestID string, b pricing.CostBreakdown) {
	if len(b.UnknownOptions) == 0 {
		return
	}
	metrics.RecordUnknownOptions(len(b.UnknownOptions))
	u.logger.Warn("[track-request][pricing] unknown option values priced as zero",
		zap.String("request_id", requestID),
		zap.Strings("values", b.UnknownOptions))
}

func (u *TrackRequestUseCase) notify(ctx context.Context, n entities.Notification) {
	if u.notifier == nil || n.To == "" {
		return
	}
	if err := u.notifier.Notify(ctx, n); err != nil {
		u.logger.Warn("[track-request][usecase] notification failed",
			zap.String("request_id", n.RequestID),
			zap.String("kind", string(n.Kind)),
			zap.Error(err))
	}
}

func (u *TrackRequestUseCase) viewURL(id, token string) string {
	link := u.publicBaseURL + "/track-requests/" + url.PathEscape(id)
	if token != "" {
		link += "?token=" + url.QueryEscape(token)
	}
	return link
}

func customerOptions(opts entities.RequestOptions) entities.RequestOptions {
	opts.ManualFinalPrice = nil
	opts.ManualEstimateLow = nil
	opts.ManualEstimateHigh = nil
	return opts
}

func sameAmount(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
