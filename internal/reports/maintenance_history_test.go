package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maintenance-system/internal/entities"
)

func TestBuildMaintenanceHistory(t *testing.T) {
	snap := testSnapshot()

	data, summary := BuildMaintenanceHistory(snap, entities.MaintenanceFilter{})

	// Свежие записи первыми.
	require.Len(t, data, 5)
	assert.Equal(t, uint64(2), data[0].ID) // -2 дня
	assert.Equal(t, uint64(4), data[1].ID) // -5 дней
	assert.Equal(t, uint64(1), data[2].ID) // -15 дней
	assert.Equal(t, uint64(5), data[3].ID) // -40 дней
	assert.Equal(t, uint64(3), data[4].ID) // -95 дней

	// Строки обогащены именами оборудования и подразделения.
	require.NotNil(t, data[0].EquipmentName)
	assert.Equal(t, "КТ-томограф", *data[0].EquipmentName)
	require.NotNil(t, data[0].DepartmentName)
	assert.Equal(t, "Радиология", *data[0].DepartmentName)

	assert.Equal(t, 5, summary.TotalMaintenance)
	// Запись без стоимости входит в счётчики, но добавляет к сумме ноль.
	assert.InDelta(t, 17500.0, summary.TotalCost, 0.001)
	assert.Equal(t, map[string]int{"preventive": 1, "repair": 2, "calibration": 1, "inspection": 1}, summary.ByType)
	assert.Equal(t, map[string]int{"completed": 3, "in-progress": 1, "scheduled": 1}, summary.ByStatus)
}

func TestBuildMaintenanceHistoryMonthlyStats(t *testing.T) {
	snap := testSnapshot()

	_, summary := BuildMaintenanceHistory(snap, entities.MaintenanceFilter{})

	// testNow = 2024-01-01: записи на -2/-5/-15/-40/-95 дней разложены по
	// локальным календарным месяцам.
	dec := summary.MonthlyStats["2023-12"]
	require.NotNil(t, dec)
	assert.Equal(t, 2, dec.Repair)     // -2 и -5 дней
	assert.Equal(t, 1, dec.Preventive) // -15 дней
	assert.Equal(t, 3, dec.Total)

	nov := summary.MonthlyStats["2023-11"]
	require.NotNil(t, nov)
	assert.Equal(t, 1, nov.Inspection)
	assert.Equal(t, 1, nov.Total)

	sep := summary.MonthlyStats["2023-09"]
	require.NotNil(t, sep)
	assert.Equal(t, 1, sep.Calibration)
	assert.Equal(t, 1, sep.Total)
}

func TestBuildMaintenanceHistoryUnnamedTypeCountsTotalOnly(t *testing.T) {
	snap := testSnapshot()
	snap.Maintenance = append(snap.Maintenance, entities.MaintenanceRecord{
		ID: 10, EquipmentID: 1, Type: "upgrade", Status: "completed", Date: testNow.AddDate(0, 0, -3),
	})

	_, summary := BuildMaintenanceHistory(snap, entities.MaintenanceFilter{})

	dec := summary.MonthlyStats["2023-12"]
	require.NotNil(t, dec)
	// Тип вне четырёх именованных корзин увеличивает только total.
	assert.Equal(t, 4, dec.Total)
	assert.Equal(t, 2, dec.Repair)
	// В byType при этом тип сохраняется как есть.
	assert.Equal(t, 1, summary.ByType["upgrade"])
}

func TestBuildMaintenanceHistoryFilters(t *testing.T) {
	snap := testSnapshot()

	// Фильтр по типу регистронезависим.
	data, _ := BuildMaintenanceHistory(snap, entities.MaintenanceFilter{Type: "REPAIR"})
	require.Len(t, data, 2)

	// Диапазон дат включителен с обеих сторон.
	start := testNow.AddDate(0, 0, -15)
	end := testNow.AddDate(0, 0, -2)
	data, summary := BuildMaintenanceHistory(snap, entities.MaintenanceFilter{StartDate: &start, EndDate: &end})
	require.Len(t, data, 3)
	assert.Equal(t, 3, summary.TotalMaintenance)

	// Фильтр по подразделению применяется через соединение с оборудованием.
	data, _ = BuildMaintenanceHistory(snap, entities.MaintenanceFilter{DepartmentID: u64(2)})
	require.Len(t, data, 1)
	assert.Equal(t, uint64(4), data[0].ID)
}

func TestBuildMaintenanceHistoryOrphanRecord(t *testing.T) {
	snap := testSnapshot()
	snap.Maintenance = append(snap.Maintenance, entities.MaintenanceRecord{
		ID: 11, EquipmentID: 777, Type: "repair", Status: "completed", Date: testNow.AddDate(0, 0, -1),
	})

	data, summary := BuildMaintenanceHistory(snap, entities.MaintenanceFilter{})

	// Запись с битой ссылкой остаётся в отчёте, но без полей оборудования.
	require.Len(t, data, 6)
	assert.Equal(t, uint64(11), data[0].ID)
	assert.Nil(t, data[0].EquipmentName)
	assert.Nil(t, data[0].DepartmentName)
	assert.Equal(t, 6, summary.TotalMaintenance)
}
