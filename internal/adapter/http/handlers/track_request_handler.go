package handlers

import (
	"errors"
	"net/http"

	request "backing_tracks/internal/adapter/http/dto/request"
	response "backing_tracks/internal/adapter/http/dto/response"
	"backing_tracks/internal/adapter/http/middleware"
	"backing_tracks/internal/domain/entities"
	"backing_tracks/internal/domain/pricing"
	"backing_tracks/internal/usecase"
	"backing_tracks/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidTrackRequestPayload = pkg.NewDomainErrorSimple("INVALID_TRACK_REQUEST_INPUT", "Invalid track request payload", http.StatusBadRequest)
	// Denied and missing requests look the same so links cannot be tested for validity.
	errTrackRequestNotFound = pkg.NewDomainErrorSimple("TRACK_REQUEST_NOT_FOUND", "Track request not found", http.StatusNotFound)
)

// TrackRequestHandler handles HTTP requests for backing track orders.
type TrackRequestHandler struct {
	usecase usecase.ITrackRequestUseCase
	logger  *zap.Logger
}

func NewTrackRequestHandler(uc usecase.ITrackRequestUseCase, logger *zap.Logger) *TrackRequestHandler {
	return &TrackRequestHandler{usecase: uc, logger: logger}
}

// Quote godoc
// @Summary      Price preview
// @Description  Prices a set of options for the order form. Unknown values are priced at zero and listed in unknown_options.
// @Tags         track-requests
// @Accept       json
// @Produce      json
// @Param        options  body      request.QuoteRequest  true  "Options"
// @Success      200      {object}  response.CostResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /quotes [post]
func (h *TrackRequestHandler) Quote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTrackRequestPayload.HTTPStatus, errInvalidTrackRequestPayload.ToHTTPError())
		return
	}

	b, err := h.usecase.Quote(c.Request.Context(), payload.ToOptions())
	if err != nil {
		h.abort(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCostBreakdown(b))
}

// Submit godoc
// @Summary      Submit a track request
// @Description  Guests receive a guest_access_token and a tokenised view_url once; signed-in customers own the request directly.
// @Tags         track-requests
// @Accept       json
// @Produce      json
// @Param        request  body      request.TrackRequestCreateRequest  true  "Order"
// @Success      201      {object}  response.SubmitResponse
// @Failure      400      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /track-requests [post]
func (h *TrackRequestHandler) Submit(c *gin.Context) {
	var payload request.TrackRequestCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTrackRequestPayload.HTTPStatus, errInvalidTrackRequestPayload.ToHTTPError())
		return
	}

	viewer := middleware.Viewer(c)
	res, err := h.usecase.Submit(c.Request.Context(), viewer, payload.ToCommand())
	if err != nil {
		h.abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromSubmitResult(res, viewer))
}

// Get godoc
// @Summary      View a track request
// @Tags         track-requests
// @Produce      json
// @Param        id     path      string  true   "Track request ID"
// @Param        token  query     string  false  "Guest access token"
// @Success      200    {object}  response.TrackRequestResponse
// @Failure      404    {object}  pkg.HTTPError
// @Failure      429    {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /track-requests/{id} [get]
func (h *TrackRequestHandler) Get(c *gin.Context) {
	v, err := h.usecase.View(c.Request.Context(), c.Param("id"), middleware.Viewer(c))
	if err != nil {
		h.abort(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTrackRequestView(v))
}

// List godoc
// @Summary      List track requests
// @Description  Returns the caller's requests, or every request for operators with scope=all.
// @Tags         track-requests
// @Produce      json
// @Param        scope  query     string  false  "mine (default) or all"
// @Success      200    {array}   response.TrackRequestResponse
// @Failure      401    {object}  pkg.HTTPError
// @Failure      403    {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /track-requests [get]
func (h *TrackRequestHandler) List(c *gin.Context) {
	viewer := middleware.Viewer(c)

	var (
		views []usecase.TrackRequestView
		err   error
	)
	switch c.DefaultQuery("scope", "mine") {
	case "all":
		views, err = h.usecase.ListAll(c.Request.Context(), viewer)
	case "mine":
		views, err = h.usecase.ListMine(c.Request.Context(), viewer)
	default:
		c.JSON(errInvalidTrackRequestPayload.HTTPStatus, errInvalidTrackRequestPayload.ToHTTPError())
		return
	}
	if err != nil {
		h.abort(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTrackRequestViews(views))
}

// Claim godoc
// @Summary      Claim a guest request into the signed-in account
// @Tags         track-requests
// @Produce      json
// @Param        id     path      string  true  "Track request ID"
// @Param        token  query     string  true  "Guest access token"
// @Success      200    {object}  response.TrackRequestResponse
// @Failure      401    {object}  pkg.HTTPError
// @Failure      404    {object}  pkg.HTTPError
// @Failure      409    {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /track-requests/{id}/claim [post]
func (h *TrackRequestHandler) Claim(c *gin.Context) {
	v, err := h.usecase.Claim(c.Request.Context(), c.Param("id"), middleware.Viewer(c))
	if err != nil {
		h.abort(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTrackRequestView(v))
}

// UpdatePricing godoc
// @Summary      Set manual pricing
// @Description  Operator only. Replaces all manual overrides; omitted fields are cleared. An inverted estimate range is rejected.
// @Tags         operators
// @Accept       json
// @Produce      json
// @Param        id       path      string                        true  "Track request ID"
// @Param        pricing  body      request.PricingUpdateRequest  true  "Manual pricing"
// @Success      200      {object}  response.TrackRequestResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      403      {object}  pkg.HTTPError
// @Failure      422      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /track-requests/{id}/pricing [patch]
func (h *TrackRequestHandler) UpdatePricing(c *gin.Context) {
	var payload request.PricingUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTrackRequestPayload.HTTPStatus, errInvalidTrackRequestPayload.ToHTTPError())
		return
	}

	v, err := h.usecase.SetPricing(c.Request.Context(), c.Param("id"), middleware.Viewer(c), payload.ToManualPricing())
	if err != nil {
		h.abort(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTrackRequestView(v))
}

// UpdateStatus godoc
// @Summary      Change fulfilment status
// @Tags         operators
// @Accept       json
// @Produce      json
// @Param        id      path      string                       true  "Track request ID"
// @Param        status  body      request.StatusUpdateRequest  true  "Status"
// @Success      200     {object}  response.TrackRequestResponse
// @Failure      400     {object}  pkg.HTTPError
// @Failure      403     {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /track-requests/{id}/status [patch]
func (h *TrackRequestHandler) UpdateStatus(c *gin.Context) {
	var payload request.StatusUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTrackRequestPayload.HTTPStatus, errInvalidTrackRequestPayload.ToHTTPError())
		return
	}

	v, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), middleware.Viewer(c), entities.TrackRequestStatus(payload.Status))
	if err != nil {
		h.abort(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTrackRequestView(v))
}

// MigrateLegacyLink godoc
// @Summary      Upgrade a legacy link
// @Description  For requests created before guest tokens. On an exact email match a token is issued and the tokenised link returned; no access is granted by this call.
// @Tags         track-requests
// @Accept       json
// @Produce      json
// @Param        id       path      string                     true  "Track request ID"
// @Param        request  body      request.LegacyLinkRequest  true  "Submission email"
// @Success      200      {object}  response.LegacyLinkResponse
// @Failure      404      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /track-requests/{id}/legacy-link [post]
func (h *TrackRequestHandler) MigrateLegacyLink(c *gin.Context) {
	var payload request.LegacyLinkRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTrackRequestPayload.HTTPStatus, errInvalidTrackRequestPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.MigrateLegacyLink(c.Request.Context(), c.Param("id"), payload.Email)
	if err != nil {
		h.abort(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromLegacyLinkResult(res))
}

func (h *TrackRequestHandler) abort(c *gin.Context, err error) {
	appErr := mapTrackRequestError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.logger.Error("[track_request][handler] request failed",
			zap.String("method", c.Request.Method),
			zap.String("route", c.FullPath()),
			zap.Error(err))
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapTrackRequestError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTrackRequestID), errors.Is(err, usecase.ErrInvalidSongTitle),
		errors.Is(err, usecase.ErrInvalidEmail), errors.Is(err, usecase.ErrInvalidManualPrice),
		errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTrackType):
		return pkg.NewDomainErrorSimple("INVALID_TRACK_TYPE", "Unknown track type", http.StatusBadRequest)
	case errors.Is(err, pricing.ErrInvalidManualRange):
		return pkg.NewDomainErrorSimple("INVALID_MANUAL_RANGE", "Manual estimate low is above high", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrTrackRequestNotFound), errors.Is(err, usecase.ErrAccessDenied),
		errors.Is(err, usecase.ErrLegacyLinkMismatch):
		return errTrackRequestNotFound
	case errors.Is(err, usecase.ErrAuthenticationRequired):
		return pkg.NewDomainErrorSimple("AUTHENTICATION_REQUIRED", "Sign in required", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrOperatorOnly):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Operator access required", http.StatusForbidden)
	case errors.Is(err, usecase.ErrAlreadyClaimed):
		return pkg.NewDomainErrorSimple("TRACK_REQUEST_ALREADY_CLAIMED", "Track request already belongs to an account", http.StatusConflict)
	case errors.Is(err, usecase.ErrLegacyLinkNotApplicable):
		return pkg.NewDomainErrorSimple("LEGACY_LINK_NOT_APPLICABLE", "Request already has a secure link", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
