package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"backing_tracks/internal/adapter/http/handlers"
	"backing_tracks/internal/adapter/http/handlers/mocks"
	"backing_tracks/internal/adapter/http/middleware"
	"backing_tracks/internal/domain/entities"
	"backing_tracks/internal/infrastructure/identity"
	"backing_tracks/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T, metricsEnabled bool) (*gin.Engine, *mocks.MockITrackRequestUseCase, *mocks.MockIPaymentUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	trackUC := mocks.NewMockITrackRequestUseCase(ctrl)
	paymentUC := mocks.NewMockIPaymentUseCase(ctrl)
	logger := zap.NewNop()

	router := NewRouter(Dependencies{
		Logger:         logger,
		Verifier:       identity.NewSessionVerifier("test-secret"),
		Operators:      identity.NewOperatorAllowlist(nil),
		ViewLimiter:    middleware.NewRateLimiter(0.001, 1, logger),
		MetricsEnabled: metricsEnabled,
		TrackRequests:  handlers.NewTrackRequestHandler(trackUC, logger),
		Payments:       handlers.NewPaymentHandler(paymentUC, logger),
	})
	return router, trackUC, paymentUC
}

func serve(r http.Handler, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestNewRouter_Ping(t *testing.T) {
	router, _, _ := newTestRouter(t, false)

	w := serve(router, http.MethodGet, "/v1"+PathPing)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNewRouter_Metrics(t *testing.T) {
	enabled, _, _ := newTestRouter(t, true)
	disabled, _, _ := newTestRouter(t, false)

	assert.Equal(t, http.StatusOK, serve(enabled, http.MethodGet, "/metrics").Code)
	assert.Equal(t, http.StatusNotFound, serve(disabled, http.MethodGet, "/metrics").Code)
}

func TestNewRouter_TrackRequestViewIsRateLimited(t *testing.T) {
	router, trackUC, _ := newTestRouter(t, false)
	trackUC.EXPECT().View(gomock.Any(), "req-1", entities.ViewerContext{PresentedToken: "guess"}).
		Return(usecase.TrackRequestView{}, usecase.ErrAccessDenied)

	first := serve(router, http.MethodGet, "/v1"+PathTrackRequests+"/req-1?token=guess")
	second := serve(router, http.MethodGet, "/v1"+PathTrackRequests+"/req-1?token=guess")

	assert.Equal(t, http.StatusNotFound, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestNewRouter_Payments(t *testing.T) {
	router, _, paymentUC := newTestRouter(t, false)
	paymentUC.EXPECT().ListByRequestID(gomock.Any(), "req-1", gomock.Any()).Return(nil, nil)

	w := serve(router, http.MethodGet, "/v1"+PathPayments+"/req-1")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNewRouter_InvalidBearerStaysAnonymous(t *testing.T) {
	router, trackUC, _ := newTestRouter(t, false)
	trackUC.EXPECT().ListMine(gomock.Any(), entities.ViewerContext{}).Return(nil, usecase.ErrAuthenticationRequired)

	req := httptest.NewRequest(http.MethodGet, "/v1"+PathTrackRequests, nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestNewRouter_PaymentRoutesShareTheViewLimiter(t *testing.T) {
	router, _, paymentUC := newTestRouter(t, false)
	paymentUC.EXPECT().GetByID(gomock.Any(), "pay-1", entities.ViewerContext{PresentedToken: "guess"}).
		Return(entities.Payment{}, usecase.ErrPaymentNotFound)

	first := serve(router, http.MethodGet, "/v1"+PathPayments+"/by-id/pay-1?token=guess")
	second := serve(router, http.MethodGet, "/v1"+PathPayments+"/req-1?token=guess")
	third := serve(router, http.MethodPost, "/v1"+PathPayments+"/req-1?token=guess")

	assert.Equal(t, http.StatusNotFound, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, http.StatusTooManyRequests, third.Code)
}
