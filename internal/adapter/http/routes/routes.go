package routes

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "quotedesk/docs"
	"quotedesk/internal/adapter/http/handlers"
	"quotedesk/internal/adapter/http/middleware"
	"quotedesk/internal/adapter/persistence/repository"
	"quotedesk/internal/infrastructure/config"
	"quotedesk/internal/infrastructure/database"
	"quotedesk/internal/infrastructure/logging"
	"quotedesk/internal/infrastructure/metrics"
	"quotedesk/internal/infrastructure/notification"
	"quotedesk/internal/usecase"
	"quotedesk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 15 * time.Second

// App holds the wired server and what must be released on shutdown.
type App struct {
	Router     *gin.Engine
	dispatcher *usecase.NotificationDispatcher
	closeStore func()
}

// Run will start the server
func Run() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		logging.L().WithField("err", err).Fatal("[quote][boot] invalid configuration")
	}
	logging.Setup(cfg.Env, cfg.LogLevel)
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := NewApp(ctx, cfg, metrics.InitMetrics())
	if err != nil {
		logging.L().WithField("err", err).Fatal("[quote][boot] failed to startup the application")
	}

	srv := &http.Server{
		Addr:              listenAddr(cfg),
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logging.L().WithField("port", cfg.Port).Info("[quote][boot] listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.L().WithField("err", err).Fatal("[quote][boot] server stopped")
		}
	}()

	<-ctx.Done()
	logging.L().Info("[quote][boot] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.L().WithField("err", err).Error("[quote][boot] http shutdown")
	}
	app.Close(shutdownCtx)
}

func listenAddr(cfg *config.Config) string {
	return ":" + strconv.Itoa(cfg.Port)
}

// NewApp wires store, notifications, handlers and routes from cfg.
func NewApp(ctx context.Context, cfg *config.Config, m *metrics.Metrics) (*App, error) {
	repo, closeStore, err := repository.OpenQuoteStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{closeStore: closeStore}

	// Interfaces stay untyped nil when notifications are off.
	var gateway interfaces.INotificationGateway
	var dispatcher interfaces.INotificationDispatcher
	if cfg.Notify.Enabled() {
		notifier, err := newNotifier(ctx, cfg)
		if err != nil {
			logging.L().WithField("err", err).Warn("[quote][boot] notifications disabled")
		} else {
			gateway = notifier
			app.dispatcher = usecase.NewNotificationDispatcher(notifier, cfg.Notify.Workers, cfg.Notify.QueueSize, cfg.Notify.Timeout(), m)
			dispatcher = app.dispatcher
		}
	} else {
		logging.L().Info("[quote][boot] ADMIN_EMAIL or NOTIFY_FROM not set; notifications disabled")
	}

	quoteUseCase := usecase.NewQuoteUseCase(repo, dispatcher, gateway, m)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	notificationHandler := handlers.NewNotificationHandler(quoteUseCase)
	limiter := middleware.NewIPRateLimiter(cfg.RateLimit.PerMinute, cfg.RateLimit.Burst, m)

	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, quoteHandler, limiter)
	addNotificationRoutes(v1, notificationHandler)

	app.Router = router
	return app, nil
}

// Close drains pending notifications and releases the store.
func (a *App) Close(ctx context.Context) {
	if a.dispatcher != nil {
		if err := a.dispatcher.Close(ctx); err != nil {
			logging.L().WithField("err", err).Warn("[quote][boot] notification drain incomplete")
		}
	}
	a.closeStore()
}

func newNotifier(ctx context.Context, cfg *config.Config) (*notification.SESNotifier, error) {
	if cfg.Notify.Mock {
		return notification.NewSESNotifier(nil, cfg.Notify)
	}
	awsCfg, err := database.NewAWSConfig(ctx, cfg.AWS, cfg.AWS.SESRegion)
	if err != nil {
		return nil, err
	}
	return notification.NewSESNotifier(sesv2.NewFromConfig(awsCfg), cfg.Notify)
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logging.L().WithFields(logrus.Fields{
			"path":  c.Request.URL.Path,
			"panic": recovered,
		}).Error("[quote][http] recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"ok":      false,
			"code":    "internal_error",
			"message": "서버 오류가 발생했습니다. 잠시 후 다시 시도해주세요.",
		})
	}))
}
