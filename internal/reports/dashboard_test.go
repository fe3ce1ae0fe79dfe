package reports

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maintenance-system/internal/entities"
)

func TestBuildDashboardStats(t *testing.T) {
	snap := testSnapshot()

	stats := BuildDashboardStats(snap)

	assert.Equal(t, 5, stats.TotalEquipment)
	assert.Equal(t, 2, stats.Operational)
	assert.Equal(t, 1, stats.Maintenance)
	assert.Equal(t, 1, stats.Broken)
	assert.Equal(t, 1, stats.Retired)
	assert.Equal(t, 3, stats.TotalDepartments)
	assert.Equal(t, 5, stats.MaintenanceRecords)
	assert.InDelta(t, 1_430_000.0, stats.EquipmentValue, 0.001)

	assert.Equal(t, stats.Operational, stats.StatusBreakdown.Operational)
	assert.Equal(t, stats.Maintenance, stats.StatusBreakdown.Maintenance)

	// Подразделения по убыванию количества; Unassigned при равенстве — в конце.
	require.Len(t, stats.EquipmentByDepartment, 3)
	assert.Equal(t, "Радиология", stats.EquipmentByDepartment[0].Department)
	assert.Equal(t, 2, stats.EquipmentByDepartment[0].Count)
	assert.Equal(t, "Лаборатория", stats.EquipmentByDepartment[1].Department)
	assert.Equal(t, UnassignedDepartment, stats.EquipmentByDepartment[2].Department)
	assert.Equal(t, 1, stats.EquipmentByDepartment[2].Count)
}

func TestBuildDashboardStatsTopTen(t *testing.T) {
	snap := &Snapshot{}
	for i := 1; i <= 12; i++ {
		id := uint64(i)
		snap.Departments = append(snap.Departments, entities.Department{
			ID: id, Name: fmt.Sprintf("Отдел %02d", i),
		})
		// В отделе i ровно i единиц техники.
		for j := 0; j < i; j++ {
			snap.Equipment = append(snap.Equipment, entities.Equipment{
				ID: uint64(i*100 + j), Name: "станок", Status: "operational", DepartmentID: &id,
			})
		}
	}

	stats := BuildDashboardStats(snap)

	require.Len(t, stats.EquipmentByDepartment, 10)
	assert.Equal(t, "Отдел 12", stats.EquipmentByDepartment[0].Department)
	assert.Equal(t, 12, stats.EquipmentByDepartment[0].Count)
	// Отделы с 1 и 2 единицами не попали в десятку.
	assert.Equal(t, "Отдел 03", stats.EquipmentByDepartment[9].Department)
}

func TestBuildDashboardStatsEmptySnapshot(t *testing.T) {
	stats := BuildDashboardStats(&Snapshot{})

	assert.Zero(t, stats.TotalEquipment)
	assert.Zero(t, stats.EquipmentValue)
	assert.Empty(t, stats.EquipmentByDepartment)
}
