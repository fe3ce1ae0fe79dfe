package routes

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"maintenance-system/internal/controllers"
	"maintenance-system/internal/repositories"
	"maintenance-system/internal/services"
	"maintenance-system/pkg/config"
)

func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, logger *zap.Logger, cfg *config.Config) {
	logger.Info("InitRouter: Начало создания маршрутов")

	// --- 1. РЕПОЗИТОРИИ ---
	snapshotRepo := repositories.NewSnapshotRepository(dbConn, logger)

	// --- 2. СЕРВИСЫ ---
	reportService := services.NewReportService(snapshotRepo, logger)
	dashboardService := services.NewDashboardService(snapshotRepo, logger)

	// --- 3. КОНТРОЛЛЕРЫ ---
	reportCtrl := controllers.NewReportController(reportService, cfg.Reports.ActivityLimit, logger)
	dashboardCtrl := controllers.NewDashboardController(dashboardService, logger)

	// --- 4. МАРШРУТЫ ---
	api := e.Group("/api")

	reportsGroup := api.Group("/reports")
	reportsGroup.GET("/equipment-inventory", reportCtrl.GetEquipmentInventory)
	reportsGroup.GET("/warranty-status", reportCtrl.GetWarrantyStatus)
	reportsGroup.GET("/status-analysis", reportCtrl.GetStatusAnalysis)
	reportsGroup.GET("/department-summary", reportCtrl.GetDepartmentSummary)
	reportsGroup.GET("/maintenance-history", reportCtrl.GetMaintenanceHistory)
	reportsGroup.GET("/activities-log", reportCtrl.GetActivityLog)

	dashboardGroup := api.Group("/dashboard")
	dashboardGroup.GET("/stats", dashboardCtrl.GetStats)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	logger.Info("InitRouter: Маршруты созданы")
}
