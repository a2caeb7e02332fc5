package main

import (
	"context"
	"net/http"
	"time"

	"github.com/coachbill/coachbill/internal/api"
	v1 "github.com/coachbill/coachbill/internal/api/v1"
	"github.com/coachbill/coachbill/internal/config"
	"github.com/coachbill/coachbill/internal/logger"
	"github.com/coachbill/coachbill/internal/repository"
	"github.com/coachbill/coachbill/internal/service"
	"github.com/coachbill/coachbill/internal/types"
	"github.com/coachbill/coachbill/internal/validator"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	app := fx.New(
		fx.Provide(
			// Validator
			validator.NewValidator,

			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Repositories
			repository.NewPlanRepository,
			repository.NewSubscriptionRepository,
			repository.NewPaymentRepository,

			// Services
			service.NewServiceParams,
			service.NewPlanService,
			service.NewSubscriptionService,
			service.NewPaymentService,
			service.NewFinancialStatusService,

			// API
			provideHandlers,
			provideRouter,
		),
		fx.Invoke(startServer),
	)
	app.Run()
}

func provideHandlers(
	log *logger.Logger,
	planService service.PlanService,
	subscriptionService service.SubscriptionService,
	paymentService service.PaymentService,
	financialStatusService service.FinancialStatusService,
) api.Handlers {
	return api.Handlers{
		Health:          v1.NewHealthHandler(log),
		Plan:            v1.NewPlanHandler(planService, log),
		Subscription:    v1.NewSubscriptionHandler(subscriptionService, paymentService, log),
		FinancialStatus: v1.NewFinancialStatusHandler(financialStatusService, log),
	}
}

func provideRouter(cfg *config.Configuration, handlers api.Handlers) *gin.Engine {
	// Local mode keeps gin's debug output; anything else runs release mode.
	if cfg.Deployment.Mode == types.ModeLocal {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	return api.NewRouter(handlers)
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	r *gin.Engine,
	log *logger.Logger,
) {
	server := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Infow("starting server", "address", cfg.Server.Address)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down server")
			return server.Shutdown(ctx)
		},
	})
}
