package app

import (
	"clarityflow/internal/appointment"
	"clarityflow/internal/chat"
	"clarityflow/internal/company"
	"clarityflow/internal/config"
	"clarityflow/internal/events"
	"clarityflow/internal/middleware"
	"clarityflow/internal/sale"
	"clarityflow/internal/shared/storage"
	"clarityflow/internal/task"
	"clarityflow/internal/user"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func registerModules(
	router *gin.Engine,
	cfg config.Config,
	store storage.Store,
	publisher events.Publisher,
) error {
	// --- Repositories ---
	taskRepo := task.NewRepository(store)
	appointmentRepo := appointment.NewRepository(store)
	saleRepo := sale.NewRepository(store)
	userRepo := user.NewRepository(store)
	companyRepo := company.NewRepository(store)
	chatRepo := chat.NewRepository(store)

	// --- Services ---
	taskService := task.NewService(taskRepo, publisher)
	appointmentService := appointment.NewService(appointmentRepo, publisher)
	saleService := sale.NewService(saleRepo, publisher)
	userService := user.NewService(userRepo, publisher)
	companyService := company.NewService(companyRepo, publisher)

	// --- Chat pipeline ---
	reasoner := chat.NewHTTPReasoner(cfg.AIBaseURL, cfg.AIAPIKey, cfg.AITimeout)
	dispatcher := chat.NewDispatcher(taskService, appointmentService, saleService, userService)
	snapshot := chat.NewSnapshotBuilder(companyService, userService, taskService, saleService)
	chatService := chat.NewService(chatRepo, reasoner, dispatcher)

	// --- Handlers ---
	taskHandler := task.NewHandler(taskService)
	appointmentHandler := appointment.NewHandler(appointmentService)
	saleHandler := sale.NewHandler(saleService)
	userHandler := user.NewHandler(userService)
	companyHandler := company.NewHandler(companyService)
	chatHandler := chat.NewHandler(chatService, snapshot)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	api.Use(middleware.RequestID())
	api.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		task.RegisterRoutes(api, taskHandler)
		appointment.RegisterRoutes(api, appointmentHandler)
		sale.RegisterRoutes(api, saleHandler)
		user.RegisterRoutes(api, userHandler)
		company.RegisterRoutes(api, companyHandler)
		chat.RegisterRoutes(api, chatHandler, rate.Limit(cfg.ChatRatePerSecond), cfg.ChatRateBurst)
	}

	return nil
}
