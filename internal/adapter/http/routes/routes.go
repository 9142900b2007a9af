package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	_ "backing_tracks/docs" // swagger spec
	"backing_tracks/internal/adapter/http/handlers"
	"backing_tracks/internal/adapter/http/middleware"
	"backing_tracks/internal/adapter/persistence/repository"
	"backing_tracks/internal/infrastructure/config"
	"backing_tracks/internal/infrastructure/database"
	"backing_tracks/internal/infrastructure/identity"
	"backing_tracks/internal/infrastructure/metrics"
	"backing_tracks/internal/infrastructure/notify"
	"backing_tracks/internal/infrastructure/payments"
	"backing_tracks/internal/usecase"
	"backing_tracks/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const (
	shutdownTimeout        = 10 * time.Second
	rateLimitCleanupPeriod = time.Minute
)

// Dependencies is everything the router needs besides the handlers'
// use cases.
type Dependencies struct {
	Logger         *zap.Logger
	Verifier       middleware.SessionVerifier
	Operators      identity.OperatorAllowlist
	ViewLimiter    *middleware.RateLimiter
	MetricsEnabled bool

	TrackRequests *handlers.TrackRequestHandler
	Payments      *handlers.PaymentHandler
}

// NewRouter builds the gin engine with middlewares and every route.
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, deps)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if deps.MetricsEnabled {
		router.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addTrackRequestRoutes(v1, deps.TrackRequests, deps.ViewLimiter)
	addPaymentRoutes(v1, deps.Payments, deps.ViewLimiter)
	return router
}

// Run wires the application and serves it until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	deps, err := getDependencies(ctx, cfg, logger)
	if err != nil {
		return err
	}
	deps.ViewLimiter.StartCleanup(ctx, rateLimitCleanupPeriod)

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      NewRouter(deps),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("[server] listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to startup the application: %w", err)
	case <-ctx.Done():
	}

	logger.Info("[server] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func getDependencies(ctx context.Context, cfg *config.Config, logger *zap.Logger) (Dependencies, error) {
	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
	if err != nil {
		return Dependencies{}, err
	}

	trackRequestRepo := repository.NewTrackRequestDynamoRepository(ddb, cfg.DynamoDB.TrackRequestsTable)
	paymentRepo := repository.NewPaymentDynamoRepository(ddb, cfg.DynamoDB.PaymentsTable)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPago.AccessToken, cfg.MercadoPago.Mock, logger)
	if err != nil {
		logger.Warn("[server] Mercado Pago gateway not configured", zap.Error(err))
	} else {
		paymentGateway = mpGateway
	}

	trackRequestUseCase := usecase.NewTrackRequestUseCase(trackRequestRepo, notify.NewLogNotifier(logger), logger, cfg.PublicBaseURL)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, trackRequestUseCase, paymentGateway, logger, cfg.MercadoPago.Mock)

	return Dependencies{
		Logger:         logger,
		Verifier:       identity.NewSessionVerifier(cfg.Auth.SessionSecret),
		Operators:      identity.NewOperatorAllowlist(cfg.Auth.OperatorEmails),
		ViewLimiter:    middleware.NewRateLimiter(cfg.RateLimit.TrackViewRPS, cfg.RateLimit.TrackViewBurst, logger),
		MetricsEnabled: cfg.Observability.MetricsEnabled,
		TrackRequests:  handlers.NewTrackRequestHandler(trackRequestUseCase, logger),
		Payments:       handlers.NewPaymentHandler(paymentUseCase, logger),
	}, nil
}

func setMiddlewares(router *gin.Engine, deps Dependencies) {
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		deps.Logger.Error("[server] recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(middleware.Observability(deps.Logger))
	router.Use(middleware.Identity(deps.Verifier, deps.Operators, deps.Logger))
}
