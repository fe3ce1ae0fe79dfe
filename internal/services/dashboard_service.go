package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/reports"
	"maintenance-system/internal/repositories"
	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/pkg/metrics"
)

type DashboardServiceInterface interface {
	GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error)
}

type dashboardService struct {
	snapshotRepo repositories.SnapshotRepositoryInterface
	logger       *zap.Logger
}

func NewDashboardService(snapshotRepo repositories.SnapshotRepositoryInterface, logger *zap.Logger) DashboardServiceInterface {
	return &dashboardService{snapshotRepo: snapshotRepo, logger: logger}
}

func (s *dashboardService) GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	start := time.Now()
	snap := &reports.Snapshot{}
	var err error
	defer func() { metrics.ObserveReport("dashboard_stats", start, err) }()

	if snap.Equipment, err = s.snapshotRepo.ListEquipment(ctx); err != nil {
		s.logger.Error("Не удалось загрузить оборудование для дашборда", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", apperrors.ErrSnapshotUnavailable, err)
	}
	if snap.Departments, err = s.snapshotRepo.ListDepartments(ctx); err != nil {
		s.logger.Error("Не удалось загрузить отделы для дашборда", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", apperrors.ErrSnapshotUnavailable, err)
	}
	if snap.Maintenance, err = s.snapshotRepo.ListMaintenance(ctx); err != nil {
		s.logger.Error("Не удалось загрузить записи обслуживания для дашборда", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", apperrors.ErrSnapshotUnavailable, err)
	}
	return reports.BuildDashboardStats(snap), nil
}
