package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"

	"github.com/obratec/obras-backoffice-be/internal/core/audit"
	"github.com/obratec/obras-backoffice-be/internal/core/auth"
	"github.com/obratec/obras-backoffice-be/internal/core/export"
	"github.com/obratec/obras-backoffice-be/internal/core/schedule"
	"github.com/obratec/obras-backoffice-be/internal/modules/backoffice/handlers"
	"github.com/obratec/obras-backoffice-be/internal/modules/backoffice/models"
	"github.com/obratec/obras-backoffice-be/internal/modules/backoffice/repositories"
	"github.com/obratec/obras-backoffice-be/internal/modules/backoffice/services"
	"github.com/obratec/obras-backoffice-be/internal/shared/config"
	"github.com/obratec/obras-backoffice-be/internal/shared/database"
	"github.com/obratec/obras-backoffice-be/internal/shared/utils"

	_ "github.com/obratec/obras-backoffice-be/docs"
)

// @title Obras Back-Office API
// @version 1.0
// @description Back-office API for construction companies: obras, proveedores, requisiciones, órdenes de compra, pagos y conciliación bancaria
// @contact.name API Support
// @contact.email soporte@obratec.mx
// @license.name MIT
// @host localhost:8080
// @BasePath /api/v1
func main() {
	cfg := config.LoadConfig()
	utils.InitLogger(cfg.Env)
	log.Printf("🚀 Starting obras-backoffice-api on port %s", cfg.Port)

	db := database.NewDB(cfg.DatabaseURL)
	defer db.Close()

	// Repositories
	obraRepo := repositories.NewObraRepo(db.GORM)
	proveedorRepo := repositories.NewProveedorRepo(db.GORM)
	requisicionRepo := repositories.NewRequisicionRepo(db.GORM)
	ordenRepo := repositories.NewOrdenRepo(db.GORM)
	pagoRepo := repositories.NewPagoRepo(db.GORM)
	transactionRepo := repositories.NewBankTransactionRepo(db.GORM)
	usuarioRepo := repositories.NewUsuarioRepo(db.GORM)

	auditor := audit.NewRecorder(db.GORM)

	// Auth
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	authService := auth.NewService(usuarioRepo, jwtService, auditor)
	if err := authService.EnsureAdmin(cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Printf("⚠️ Could not bootstrap admin account: %v", err)
	}

	// Services
	exportService := export.NewService(cfg.ExportMaxRows)
	obraService := services.NewObraService(obraRepo, auditor)
	proveedorService := services.NewProveedorService(proveedorRepo, auditor)
	ordenService := services.NewOrdenService(ordenRepo, obraRepo, proveedorRepo, auditor)
	requisicionService := services.NewRequisicionService(requisicionRepo, obraRepo, ordenService, auditor)
	pagoService := services.NewPagoService(db.GORM, pagoRepo, auditor)
	conciliacionService := services.NewConciliacionService(db.GORM, transactionRepo, ordenRepo, pagoRepo, auditor)
	vencimientosService := services.NewVencimientosService(ordenRepo, auditor)
	dashboardService := services.NewDashboardService(db.GORM)

	// Overdue payment scan
	scheduler := schedule.NewScheduler()
	if err := scheduler.AddJob("vencimientos", cfg.OverdueScanSpec, func() {
		flagged, err := vencimientosService.Scan(time.Now())
		if err != nil {
			log.Printf("❌ Overdue scan failed: %v", err)
			return
		}
		if flagged > 0 {
			log.Printf("⚠️ Overdue scan flagged %d orders", flagged)
		}
	}); err != nil {
		log.Fatalf("❌ Failed to schedule overdue scan: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Handlers
	authHandler := auth.NewHandler(authService)
	obraHandler := handlers.NewObraHandler(obraService)
	proveedorHandler := handlers.NewProveedorHandler(proveedorService)
	requisicionHandler := handlers.NewRequisicionHandler(requisicionService)
	ordenHandler := handlers.NewOrdenHandler(ordenService, obraService, proveedorService, exportService)
	pagoHandler := handlers.NewPagoHandler(pagoService)
	conciliacionHandler := handlers.NewConciliacionHandler(conciliacionService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, auditor)

	app := fiber.New()
	app.Use(cors.New())

	// Swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Post("/auth/login", authHandler.Login)

	api := app.Group("/api/v1", auth.AuthMiddleware(authService))
	api.Get("/auth/me", authHandler.Me)

	// Obras
	api.Get("/obras", obraHandler.ListObras)
	api.Post("/obras", auth.RequireRol(models.RolCompras), obraHandler.CreateObra)
	api.Get("/obras/:id", obraHandler.GetObra)
	api.Put("/obras/:id", auth.RequireRol(models.RolCompras), obraHandler.UpdateObra)
	api.Patch("/obras/:id/estado", auth.RequireRol(models.RolCompras), obraHandler.CambiarEstadoObra)
	api.Delete("/obras/:id", auth.RequireRol(), obraHandler.DeleteObra)

	// Proveedores
	api.Get("/proveedores", proveedorHandler.ListProveedores)
	api.Post("/proveedores", auth.RequireRol(models.RolCompras), proveedorHandler.CreateProveedor)
	api.Get("/proveedores/:id", proveedorHandler.GetProveedor)
	api.Put("/proveedores/:id", auth.RequireRol(models.RolCompras), proveedorHandler.UpdateProveedor)
	api.Patch("/proveedores/:id/desactivar", auth.RequireRol(models.RolCompras), proveedorHandler.DesactivarProveedor)

	// Requisiciones
	api.Get("/requisiciones", requisicionHandler.ListRequisiciones)
	api.Post("/requisiciones", auth.RequireRol(models.RolResidente, models.RolCompras), requisicionHandler.CreateRequisicion)
	api.Get("/requisiciones/:id", requisicionHandler.GetRequisicion)
	api.Patch("/requisiciones/:id/estado", auth.RequireRol(models.RolCompras), requisicionHandler.CambiarEstadoRequisicion)
	api.Post("/requisiciones/:id/convertir", auth.RequireRol(models.RolCompras), requisicionHandler.ConvertirRequisicion)
	api.Delete("/requisiciones/:id", auth.RequireRol(models.RolResidente, models.RolCompras), requisicionHandler.DeleteRequisicion)

	// Órdenes de compra (export before :id so the route matches)
	api.Get("/ordenes-compra/export", ordenHandler.ExportOrdenes)
	api.Get("/ordenes-compra", ordenHandler.ListOrdenes)
	api.Post("/ordenes-compra", auth.RequireRol(models.RolCompras), ordenHandler.CreateOrden)
	api.Get("/ordenes-compra/:id", ordenHandler.GetOrden)
	api.Put("/ordenes-compra/:id", auth.RequireRol(models.RolCompras), ordenHandler.UpdateOrden)
	api.Patch("/ordenes-compra/:id/estado", auth.RequireRol(models.RolCompras), ordenHandler.CambiarEstadoOrden)
	api.Get("/ordenes-compra/:id/pdf", ordenHandler.OrdenPDF)
	api.Delete("/ordenes-compra/:id", auth.RequireRol(models.RolCompras), ordenHandler.DeleteOrden)

	// Pagos
	api.Get("/pagos", pagoHandler.ListPagos)
	api.Post("/pagos", auth.RequireRol(models.RolPagos), pagoHandler.CreatePago)
	api.Get("/pagos/:id", pagoHandler.GetPago)
	api.Patch("/pagos/:id/cancelar", auth.RequireRol(models.RolPagos), pagoHandler.CancelarPago)

	// Conciliación bancaria
	api.Get("/bank-transactions", conciliacionHandler.ListTransactions)
	api.Post("/bank-transactions/import", auth.RequireRol(models.RolPagos), conciliacionHandler.ImportCSV)
	api.Post("/bank-transactions/auto-match", auth.RequireRol(models.RolPagos), conciliacionHandler.AutoMatch)
	api.Get("/bank-transactions/:id", conciliacionHandler.GetTransaction)
	api.Post("/bank-transactions/:id/match", auth.RequireRol(models.RolPagos), conciliacionHandler.ManualMatch)
	api.Post("/bank-transactions/:id/unmatch", auth.RequireRol(), conciliacionHandler.Unmatch)

	// Dashboard
	api.Get("/dashboard", dashboardHandler.Resumen)
	api.Get("/audit-log", auth.RequireRol(), dashboardHandler.AuditLog)

	log.Printf("🚀 API running at :%s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
