package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
	"maintenance-system/internal/reports"
	"maintenance-system/internal/repositories"
	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/pkg/metrics"
)

// ReportServiceInterface собирает отчёты по парку оборудования.
// Каждый метод загружает снапшот, прогоняет его через движок и
// возвращает данные вместе со сводкой.
type ReportServiceInterface interface {
	GetEquipmentInventory(ctx context.Context, filter entities.EquipmentFilter) ([]dto.InventoryItemDTO, *dto.InventorySummaryDTO, error)
	GetWarrantyStatus(ctx context.Context, filter entities.WarrantyFilter) ([]dto.WarrantyItemDTO, *dto.WarrantySummaryDTO, error)
	GetStatusAnalysis(ctx context.Context, filter entities.DepartmentFilter) ([]dto.AgeAnalysisItemDTO, *dto.StatusAnalysisSummaryDTO, error)
	GetDepartmentSummary(ctx context.Context, filter entities.DepartmentFilter) ([]dto.DepartmentSummaryItemDTO, *dto.DepartmentSummaryTotalsDTO, error)
	GetMaintenanceHistory(ctx context.Context, filter entities.MaintenanceFilter) ([]dto.MaintenanceItemDTO, *dto.MaintenanceSummaryDTO, error)
	GetActivityLog(ctx context.Context, filter entities.ActivityFilter) ([]dto.ActivityItemDTO, *dto.ActivitySummaryDTO, error)
}

type reportService struct {
	snapshotRepo repositories.SnapshotRepositoryInterface
	logger       *zap.Logger
	now          func() time.Time
}

func NewReportService(snapshotRepo repositories.SnapshotRepositoryInterface, logger *zap.Logger) ReportServiceInterface {
	return &reportService{
		snapshotRepo: snapshotRepo,
		logger:       logger,
		now:          time.Now,
	}
}

// snapshotParts перечисляет коллекции, которые нужны конкретному отчёту,
// чтобы не тянуть из хранилища лишние таблицы.
type snapshotParts struct {
	equipment   bool
	departments bool
	maintenance bool
	activities  bool
}

func (s *reportService) loadSnapshot(ctx context.Context, parts snapshotParts) (*reports.Snapshot, error) {
	snap := &reports.Snapshot{}
	var err error

	if parts.equipment {
		if snap.Equipment, err = s.snapshotRepo.ListEquipment(ctx); err != nil {
			s.logger.Error("Не удалось загрузить оборудование для отчёта", zap.Error(err))
			return nil, fmt.Errorf("%w: %v", apperrors.ErrSnapshotUnavailable, err)
		}
	}
	if parts.departments {
		if snap.Departments, err = s.snapshotRepo.ListDepartments(ctx); err != nil {
			s.logger.Error("Не удалось загрузить отделы для отчёта", zap.Error(err))
			return nil, fmt.Errorf("%w: %v", apperrors.ErrSnapshotUnavailable, err)
		}
	}
	if parts.maintenance {
		if snap.Maintenance, err = s.snapshotRepo.ListMaintenance(ctx); err != nil {
			s.logger.Error("Не удалось загрузить записи обслуживания для отчёта", zap.Error(err))
			return nil, fmt.Errorf("%w: %v", apperrors.ErrSnapshotUnavailable, err)
		}
	}
	if parts.activities {
		if snap.Activities, err = s.snapshotRepo.ListActivities(ctx); err != nil {
			s.logger.Error("Не удалось загрузить журнал активности для отчёта", zap.Error(err))
			return nil, fmt.Errorf("%w: %v", apperrors.ErrSnapshotUnavailable, err)
		}
	}
	return snap, nil
}

func (s *reportService) GetEquipmentInventory(ctx context.Context, filter entities.EquipmentFilter) ([]dto.InventoryItemDTO, *dto.InventorySummaryDTO, error) {
	start := time.Now()
	snap, err := s.loadSnapshot(ctx, snapshotParts{equipment: true, departments: true})
	defer func() { metrics.ObserveReport("equipment_inventory", start, err) }()
	if err != nil {
		return nil, nil, err
	}
	data, summary := reports.BuildEquipmentInventory(snap, filter)
	return data, summary, nil
}

func (s *reportService) GetWarrantyStatus(ctx context.Context, filter entities.WarrantyFilter) ([]dto.WarrantyItemDTO, *dto.WarrantySummaryDTO, error) {
	start := time.Now()
	snap, err := s.loadSnapshot(ctx, snapshotParts{equipment: true, departments: true})
	defer func() { metrics.ObserveReport("warranty_status", start, err) }()
	if err != nil {
		return nil, nil, err
	}
	data, summary := reports.BuildWarrantyStatus(snap, filter, s.now())
	return data, summary, nil
}

func (s *reportService) GetStatusAnalysis(ctx context.Context, filter entities.DepartmentFilter) ([]dto.AgeAnalysisItemDTO, *dto.StatusAnalysisSummaryDTO, error) {
	start := time.Now()
	snap, err := s.loadSnapshot(ctx, snapshotParts{equipment: true, departments: true, maintenance: true})
	defer func() { metrics.ObserveReport("status_analysis", start, err) }()
	if err != nil {
		return nil, nil, err
	}
	data, summary := reports.BuildStatusAnalysis(snap, filter, s.now())
	return data, summary, nil
}

func (s *reportService) GetDepartmentSummary(ctx context.Context, filter entities.DepartmentFilter) ([]dto.DepartmentSummaryItemDTO, *dto.DepartmentSummaryTotalsDTO, error) {
	start := time.Now()
	snap, err := s.loadSnapshot(ctx, snapshotParts{equipment: true, departments: true, maintenance: true})
	defer func() { metrics.ObserveReport("department_summary", start, err) }()
	if err != nil {
		return nil, nil, err
	}
	data, summary := reports.BuildDepartmentSummary(snap, filter)
	return data, summary, nil
}

func (s *reportService) GetMaintenanceHistory(ctx context.Context, filter entities.MaintenanceFilter) ([]dto.MaintenanceItemDTO, *dto.MaintenanceSummaryDTO, error) {
	start := time.Now()
	snap, err := s.loadSnapshot(ctx, snapshotParts{equipment: true, departments: true, maintenance: true})
	defer func() { metrics.ObserveReport("maintenance_history", start, err) }()
	if err != nil {
		return nil, nil, err
	}
	data, summary := reports.BuildMaintenanceHistory(snap, filter)
	return data, summary, nil
}

func (s *reportService) GetActivityLog(ctx context.Context, filter entities.ActivityFilter) ([]dto.ActivityItemDTO, *dto.ActivitySummaryDTO, error) {
	start := time.Now()
	snap, err := s.loadSnapshot(ctx, snapshotParts{equipment: true, departments: true, activities: true})
	defer func() { metrics.ObserveReport("activities_log", start, err) }()
	if err != nil {
		return nil, nil, err
	}
	data, summary := reports.BuildActivityLog(snap, filter)
	return data, summary, nil
}
