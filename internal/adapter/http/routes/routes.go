package routes

import (
	"context"
	"strconv"

	_ "order_core/docs" // swag generated
	"order_core/internal/adapter/http/handlers"
	"order_core/internal/adapter/http/middleware"
	"order_core/internal/adapter/persistence"
	"order_core/internal/infrastructure/config"
	"order_core/internal/infrastructure/logging"
	"order_core/internal/infrastructure/messaging"
	"order_core/internal/infrastructure/metrics"
	"order_core/internal/usecase"
	"order_core/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/go-faster/errors"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers are the HTTP entry points mounted under /v1.
type Handlers struct {
	Conversion  *handlers.ConversionHandler
	Orders      *handlers.OrderHandler
	Samples     *handlers.SampleRequestHandler
	Consistency *handlers.ConsistencyHandler
}

// Run will start the server
func Run(cfg config.Config, logger *logrus.Logger) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	log := logging.Component(logger, "http", "http")

	ctx := context.Background()
	stores, err := persistence.Open(ctx, cfg, logging.Component(logger, "store", "repository"))
	if err != nil {
		return errors.Wrap(err, "open store")
	}

	notifier, closeNotifier := newNotifier(cfg, logging.Component(logger, "notifier", "gateway"))
	defer closeNotifier()

	router := NewRouter(NewHandlers(stores, notifier, SettingsFrom(cfg), logger), middleware.NewAuthenticator(cfg.JWTSecret), log)

	log.WithField("port", cfg.AppPort).Info("starting http server")
	if err := router.Run(":" + strconv.Itoa(cfg.AppPort)); err != nil {
		return errors.Wrap(err, "failed to startup the application")
	}
	return nil
}

// NewHandlers builds the use cases on top of stores and wraps them in
// handlers.
func NewHandlers(stores persistence.Stores, notifier interfaces.INotifier, settings usecase.Settings, logger *logrus.Logger) Handlers {
	entry := logrus.NewEntry(logger)

	conversion := usecase.NewOrderConversionUseCase(
		stores.UnitOfWork, stores.Quotations, stores.Orders, stores.Products, stores.Sequences,
		notifier, settings, entry,
	)
	status := usecase.NewOrderStatusUseCase(stores.UnitOfWork, stores.Orders, settings, entry)
	samples := usecase.NewSampleRequestUseCase(stores.UnitOfWork, stores.Samples, stores.Sequences, notifier, settings, entry)
	consistency := usecase.NewConsistencyUseCase(stores.Reader, stores.Orders, stores.Products, entry)

	return Handlers{
		Conversion:  handlers.NewConversionHandler(conversion),
		Orders:      handlers.NewOrderHandler(status),
		Samples:     handlers.NewSampleRequestHandler(samples),
		Consistency: handlers.NewConsistencyHandler(consistency),
	}
}

// NewRouter mounts every route on a fresh engine.
func NewRouter(h Handlers, auth *middleware.Authenticator, log *logrus.Entry) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addOrderRoutes(v1, h, auth)
	addSampleRoutes(v1, h, auth)
	addAdminRoutes(v1, h, auth)
	return router
}

// SettingsFrom maps configuration onto use-case settings.
func SettingsFrom(cfg config.Config) usecase.Settings {
	settings := usecase.DefaultSettings()
	settings.OrderNumberPrefix = cfg.OrderNumberPrefix
	settings.RequestNumberPrefix = cfg.SampleRequestPrefix
	settings.TxTimeout = cfg.TxTimeout
	settings.NotifyTimeout = cfg.NotifyTimeout
	settings.MinMessageLength = cfg.SampleMessageMinLength
	settings.Retry.MaxAttempts = cfg.ConvertMaxAttempts
	settings.Retry.InitialBackoff = cfg.ConvertRetryBackoff
	return settings
}

// newNotifier connects to RabbitMQ when a URL is configured. Without one, or
// when the broker is unreachable, notifications are disabled and the service
// still starts.
func newNotifier(cfg config.Config, log *logrus.Entry) (interfaces.INotifier, func()) {
	if cfg.RabbitMQURL == "" {
		log.Info("RABBITMQ_URL not set, notifications disabled")
		return messaging.DisabledNotifier{}, func() {}
	}
	n, err := messaging.NewRabbitMQNotifier(cfg.RabbitMQURL, cfg.NotifyExchange, log)
	if err != nil {
		log.WithError(err).Warn("rabbitmq unavailable, notifications disabled")
		return messaging.DisabledNotifier{}, func() {}
	}
	return n, func() {
		if err := n.Close(); err != nil {
			log.WithError(err).Warn("close rabbitmq notifier")
		}
	}
}

func setMiddlewares(router *gin.Engine, log *logrus.Entry) {
	router.Use(middleware.Recovery(log))
	router.Use(middleware.AccessLog(log))
	router.Use(middleware.Metrics())
}
