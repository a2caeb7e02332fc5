package api

import (
	v1 "github.com/coachbill/coachbill/internal/api/v1"
	"github.com/coachbill/coachbill/internal/rest/middleware"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Health          *v1.HealthHandler
	Plan            *v1.PlanHandler
	Subscription    *v1.SubscriptionHandler
	FinancialStatus *v1.FinancialStatusHandler
}

func NewRouter(handlers Handlers) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware,
		middleware.CORSMiddleware,
		middleware.ErrorHandler(),
	)

	router.GET("/health", handlers.Health.Health)

	// v1 routes
	v1Group := router.Group("/v1")
	registerV1Routes(v1Group, handlers)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers) {
	// Plan routes
	plans := router.Group("/plans")
	{
		plans.POST("", handlers.Plan.CreatePlan)
		plans.GET("", handlers.Plan.ListPlans)
		plans.GET("/:id", handlers.Plan.GetPlan)
		plans.PUT("/:id", handlers.Plan.UpdatePlan)
		plans.DELETE("/:id", handlers.Plan.DeletePlan)
	}

	// Subscription routes
	subscriptions := router.Group("/subscriptions")
	{
		subscriptions.POST("", handlers.Subscription.CreateSubscription)
		subscriptions.GET("", handlers.Subscription.ListSubscriptions)
		subscriptions.GET("/:id", handlers.Subscription.GetSubscription)
		subscriptions.DELETE("/:id", handlers.Subscription.DeleteSubscription)
		subscriptions.POST("/:id/payments", handlers.Subscription.RecordPayment)
		subscriptions.GET("/:id/payments", handlers.Subscription.ListPayments)
		subscriptions.GET("/:id/financial-status", handlers.FinancialStatus.GetFinancialStatus)
	}
}
