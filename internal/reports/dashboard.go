package reports

import (
	"math"
	"sort"

	"maintenance-system/internal/dto"
)

// BuildDashboardStats — дешёвые глобальные счётчики для лендинга: по одному
// линейному проходу на коллекцию, без вложенных соединений. Полные отчёты
// собираются своими агрегаторами, сюда не входят.
func BuildDashboardStats(snap *Snapshot) *dto.DashboardStatsDTO {
	stats := &dto.DashboardStatsDTO{
		TotalDepartments:   len(snap.Departments),
		MaintenanceRecords: len(snap.Maintenance),
	}

	deptNames := make(map[uint64]string, len(snap.Departments))
	for _, d := range snap.Departments {
		deptNames[d.ID] = d.Name
	}

	type deptCount struct {
		id    uint64
		name  string
		count int
	}
	perDept := make(map[uint64]*deptCount)
	// Оборудование без подразделения группируется под "Unassigned"; при
	// равенстве счётчиков оно уходит в конец (id за пределами реальных).
	const unassignedID = math.MaxUint64

	for _, e := range snap.Equipment {
		stats.TotalEquipment++
		stats.EquipmentValue += costOrZero(e.PurchaseCost)

		switch NormalizeStatus(e.Status) {
		case StatusOperational:
			stats.Operational++
		case StatusMaintenance:
			stats.Maintenance++
		case StatusBroken:
			stats.Broken++
		case StatusRetired:
			stats.Retired++
		}

		id := uint64(unassignedID)
		name := UnassignedDepartment
		if e.DepartmentID != nil {
			if n, ok := deptNames[*e.DepartmentID]; ok {
				id = *e.DepartmentID
				name = n
			}
		}
		dc := perDept[id]
		if dc == nil {
			dc = &deptCount{id: id, name: name}
			perDept[id] = dc
		}
		dc.count++
	}

	stats.StatusBreakdown = dto.StatusBreakdownDTO{
		Operational: stats.Operational,
		Maintenance: stats.Maintenance,
		Broken:      stats.Broken,
		Retired:     stats.Retired,
	}

	counts := make([]*deptCount, 0, len(perDept))
	for _, dc := range perDept {
		counts = append(counts, dc)
	}
	// Топ-10 подразделений; при равном количестве — по возрастанию id,
	// чтобы порядок был детерминированным.
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].count != counts[j].count {
			return counts[i].count > counts[j].count
		}
		return counts[i].id < counts[j].id
	})
	if len(counts) > 10 {
		counts = counts[:10]
	}

	stats.EquipmentByDepartment = make([]dto.DepartmentCountDTO, 0, len(counts))
	for _, dc := range counts {
		stats.EquipmentByDepartment = append(stats.EquipmentByDepartment, dto.DepartmentCountDTO{
			Department: dc.name,
			Count:      dc.count,
		})
	}

	return stats
}
