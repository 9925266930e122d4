package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/wferreiracoriolano/barbearia-api/internal/audit"
	"github.com/wferreiracoriolano/barbearia-api/internal/cache"
	"github.com/wferreiracoriolano/barbearia-api/internal/config"
	"github.com/wferreiracoriolano/barbearia-api/internal/handlers"
	infraRepo "github.com/wferreiracoriolano/barbearia-api/internal/infra/repository"
	"github.com/wferreiracoriolano/barbearia-api/internal/middleware"
	ucSlot "github.com/wferreiracoriolano/barbearia-api/internal/usecase/slot"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	slotRepo := infraRepo.NewSlotGormRepository(db)
	freeCache := cache.NewFreeSlotsCache(cfg.RedisURL)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — SLOTS
	// ======================================================
	createFreeSlotUC := ucSlot.NewCreateFreeSlot(slotRepo, freeCache, auditDispatcher)
	blockSlotUC := ucSlot.NewBlockSlot(slotRepo, freeCache, auditDispatcher)
	bookSlotUC := ucSlot.NewBookSlot(slotRepo, freeCache, auditDispatcher)
	listFreeSlotsUC := ucSlot.NewListFreeSlots(slotRepo, freeCache)
	listDaySlotsUC := ucSlot.NewListDaySlots(slotRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	userHandler := handlers.NewUserHandler(db, auditDispatcher)
	barberHandler := handlers.NewBarberHandler(db, auditDispatcher)
	serviceHandler := handlers.NewServiceHandler(db, auditDispatcher)

	slotHandler := handlers.NewSlotHandler(
		createFreeSlotUC,
		blockSlotUC,
		bookSlotUC,
		listFreeSlotsUC,
		listDaySlotsUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.POST("/login", authHandler.Login)

		// ------------------------------
		// AUTENTICADO (cliente ou admin)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/barbers", barberHandler.ListActive)
			secured.GET("/services", serviceHandler.ListActive)
			secured.GET("/slots", slotHandler.ListFree)
			secured.POST("/book", slotHandler.Book)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireAdmin())
			{
				admin.POST("/users", userHandler.Create)
				admin.GET("/users", userHandler.List)

				admin.POST("/barbers", barberHandler.Create)
				admin.GET("/barbers", barberHandler.ListAll)

				admin.POST("/services", serviceHandler.Create)
				admin.GET("/services", serviceHandler.ListAll)

				admin.POST("/slots/free", slotHandler.CreateFree)
				admin.POST("/slots/block", slotHandler.Block)
				admin.GET("/slots", slotHandler.ListDay)
			}
		}
	}
}
