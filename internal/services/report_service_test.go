package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"maintenance-system/internal/entities"
	apperrors "maintenance-system/pkg/errors"
)

// fakeSnapshotRepo отдаёт заранее заданные срезы либо ошибку и
// запоминает, какие коллекции у него спрашивали.
type fakeSnapshotRepo struct {
	equipment   []entities.Equipment
	departments []entities.Department
	maintenance []entities.MaintenanceRecord
	activities  []entities.Activity

	failOn string
	called map[string]bool
}

var errStorage = errors.New("connection refused")

func newFakeRepo() *fakeSnapshotRepo {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	expiry := now.AddDate(0, 0, 20)
	deptID := uint64(1)
	return &fakeSnapshotRepo{
		equipment: []entities.Equipment{
			{ID: 1, Name: "МРТ-сканер", Status: "operational", DepartmentID: &deptID,
				PurchaseCost: null.Float64From(850_000), WarrantyExpiry: &expiry, CreatedAt: now},
		},
		departments: []entities.Department{{ID: 1, Name: "Радиология"}},
		maintenance: []entities.MaintenanceRecord{
			{ID: 1, EquipmentID: 1, Type: "preventive", Status: "completed", Date: now},
		},
		activities: []entities.Activity{
			{ID: 1, Type: "audit", Description: "Инвентаризация", Date: now, CreatedAt: now},
		},
		called: map[string]bool{},
	}
}

func (f *fakeSnapshotRepo) ListEquipment(ctx context.Context) ([]entities.Equipment, error) {
	f.called["equipment"] = true
	if f.failOn == "equipment" {
		return nil, errStorage
	}
	return f.equipment, nil
}

func (f *fakeSnapshotRepo) ListDepartments(ctx context.Context) ([]entities.Department, error) {
	f.called["departments"] = true
	if f.failOn == "departments" {
		return nil, errStorage
	}
	return f.departments, nil
}

func (f *fakeSnapshotRepo) ListMaintenance(ctx context.Context) ([]entities.MaintenanceRecord, error) {
	f.called["maintenance"] = true
	if f.failOn == "maintenance" {
		return nil, errStorage
	}
	return f.maintenance, nil
}

func (f *fakeSnapshotRepo) ListActivities(ctx context.Context) ([]entities.Activity, error) {
	f.called["activities"] = true
	if f.failOn == "activities" {
		return nil, errStorage
	}
	return f.activities, nil
}

func newTestService(repo *fakeSnapshotRepo) *reportService {
	return &reportService{
		snapshotRepo: repo,
		logger:       zap.NewNop(),
		now:          func() time.Time { return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) },
	}
}

func TestReportServiceWarrantyStatus(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	data, summary, err := svc.GetWarrantyStatus(context.Background(), entities.WarrantyFilter{})

	require.NoError(t, err)
	require.Len(t, data, 1)
	assert.Equal(t, "expiring-soon", data[0].WarrantyStatus)
	assert.Equal(t, 20, data[0].DaysUntilExpiry)
	assert.Equal(t, 1, summary.ExpiringSoon)
}

func TestReportServiceLoadsOnlyNeededCollections(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	_, _, err := svc.GetActivityLog(context.Background(), entities.ActivityFilter{})

	require.NoError(t, err)
	assert.True(t, repo.called["activities"])
	// Журналу активности записи обслуживания не нужны.
	assert.False(t, repo.called["maintenance"])
}

func TestReportServiceWrapsStorageError(t *testing.T) {
	repo := newFakeRepo()
	repo.failOn = "equipment"
	svc := newTestService(repo)

	_, _, err := svc.GetMaintenanceHistory(context.Background(), entities.MaintenanceFilter{})

	require.Error(t, err)
	// Техническая причина сохраняется в тексте, но наружу уходит
	// классифицируемая ошибка недоступного снапшота.
	assert.ErrorIs(t, err, apperrors.ErrSnapshotUnavailable)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestDashboardServiceStats(t *testing.T) {
	repo := newFakeRepo()
	svc := NewDashboardService(repo, zap.NewNop())

	stats, err := svc.GetStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalEquipment)
	assert.Equal(t, 1, stats.Operational)
	assert.Equal(t, 1, stats.TotalDepartments)
	assert.Equal(t, 1, stats.MaintenanceRecords)
	assert.InDelta(t, 850_000.0, stats.EquipmentValue, 0.001)
}

func TestDashboardServiceStorageError(t *testing.T) {
	repo := newFakeRepo()
	repo.failOn = "departments"
	svc := NewDashboardService(repo, zap.NewNop())

	_, err := svc.GetStats(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrSnapshotUnavailable)
}
