package reports

import (
	"sort"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
)

// BuildDepartmentSummary — свод по подразделениям: левое соединение с
// оборудованием и, транзитивно, с записями обслуживания. Подразделение без
// единой единицы техники остаётся в data со всеми нулями — его никогда
// не выбрасывают за отсутствие данных.
func BuildDepartmentSummary(snap *Snapshot, filter entities.DepartmentFilter) ([]dto.DepartmentSummaryItemDTO, *dto.DepartmentSummaryTotalsDTO) {
	maintByEq := snap.maintenanceByEquipment()

	scoped := make([]entities.Department, 0, len(snap.Departments))
	for _, d := range snap.Departments {
		if filter.DepartmentID != nil && d.ID != *filter.DepartmentID {
			continue
		}
		scoped = append(scoped, d)
	}
	sort.SliceStable(scoped, func(i, j int) bool { return scoped[i].ID < scoped[j].ID })

	rows := make(map[uint64]*dto.DepartmentSummaryItemDTO, len(scoped))
	data := make([]dto.DepartmentSummaryItemDTO, 0, len(scoped))
	order := make([]uint64, 0, len(scoped))
	for _, d := range scoped {
		rows[d.ID] = &dto.DepartmentSummaryItemDTO{
			ID:        d.ID,
			Name:      d.Name,
			Manager:   d.Manager,
			Email:     d.Email,
			Phone:     d.Phone,
			Budget:    d.Budget,
			Employees: d.Employees,
		}
		order = append(order, d.ID)
	}

	seen := make(map[uint64]bool, len(snap.Equipment))
	for _, e := range snap.Equipment {
		if e.DepartmentID == nil {
			continue
		}
		row, ok := rows[*e.DepartmentID]
		if !ok {
			continue
		}
		if seen[e.ID] {
			continue
		}
		seen[e.ID] = true

		row.EquipmentCount++
		row.TotalValue += costOrZero(e.PurchaseCost)
		switch NormalizeStatus(e.Status) {
		case StatusOperational:
			row.OperationalCount++
		case StatusMaintenance:
			row.MaintenanceCount++
		case StatusBroken:
			row.BrokenCount++
		case StatusRetired:
			row.RetiredCount++
		}
		row.TotalMaintenanceCount += len(maintByEq[e.ID])
	}

	totals := &dto.DepartmentSummaryTotalsDTO{
		Distribution: make([]dto.DepartmentDistributionDTO, 0, len(order)),
	}
	for _, id := range order {
		row := rows[id]
		data = append(data, *row)

		totals.TotalDepartments++
		totals.TotalEquipment += row.EquipmentCount
		totals.TotalValue += row.TotalValue
		totals.TotalOperational += row.OperationalCount
		totals.TotalUnderMaintenance += row.MaintenanceCount
		totals.TotalBroken += row.BrokenCount
		totals.TotalRetired += row.RetiredCount
		totals.TotalMaintenance += row.TotalMaintenanceCount
		totals.Distribution = append(totals.Distribution, dto.DepartmentDistributionDTO{
			Name:       row.Name,
			Value:      row.EquipmentCount,
			TotalValue: row.TotalValue,
		})
	}

	return data, totals
}
