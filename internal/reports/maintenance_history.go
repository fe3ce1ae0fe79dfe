package reports

import (
	"sort"
	"strings"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
)

// BuildMaintenanceHistory — история обслуживания с плоскими строками,
// обогащёнными именами оборудования и подразделения. Диапазон дат включителен
// с обеих сторон; фильтр по подразделению применяется после соединения.
func BuildMaintenanceHistory(snap *Snapshot, filter entities.MaintenanceFilter) ([]dto.MaintenanceItemDTO, *dto.MaintenanceSummaryDTO) {
	eqs := snap.equipmentByID()
	depts := snap.departmentsByID()

	wantType := strings.ToLower(strings.TrimSpace(filter.Type))

	scoped := make([]entities.MaintenanceRecord, 0, len(snap.Maintenance))
	for _, rec := range snap.Maintenance {
		if wantType != "" && strings.ToLower(rec.Type) != wantType {
			continue
		}
		if !withinRange(rec.Date, filter.StartDate, filter.EndDate) {
			continue
		}
		if filter.DepartmentID != nil {
			eq, ok := eqs[rec.EquipmentID]
			if !ok || eq.DepartmentID == nil || *eq.DepartmentID != *filter.DepartmentID {
				continue
			}
		}
		scoped = append(scoped, rec)
	}

	sort.SliceStable(scoped, func(i, j int) bool {
		if !scoped[i].Date.Equal(scoped[j].Date) {
			return scoped[i].Date.After(scoped[j].Date)
		}
		return scoped[i].ID < scoped[j].ID
	})

	summary := &dto.MaintenanceSummaryDTO{
		ByType:       make(map[string]int),
		ByStatus:     make(map[string]int),
		MonthlyStats: make(map[string]*dto.MonthlyStatDTO),
	}

	data := make([]dto.MaintenanceItemDTO, 0, len(scoped))
	for _, rec := range scoped {
		item := dto.MaintenanceItemDTO{
			ID:          rec.ID,
			Type:        rec.Type,
			Status:      rec.Status,
			Priority:    rec.Priority,
			Date:        rec.Date,
			Technician:  rec.Technician,
			Cost:        rec.Cost,
			Description: rec.Description,
			Notes:       rec.Notes,
		}
		if eq, ok := eqs[rec.EquipmentID]; ok {
			id := eq.ID
			name := eq.Name
			tag := eq.TagNumber
			item.EquipmentID = &id
			item.EquipmentName = &name
			item.EquipmentTag = &tag
			item.DepartmentID = eq.DepartmentID
			item.DepartmentName = departmentName(depts, eq.DepartmentID)
		}
		data = append(data, item)

		summary.TotalMaintenance++
		summary.TotalCost += costOrZero(rec.Cost)

		typeKey := rec.Type
		if typeKey == "" {
			typeKey = "unknown"
		}
		summary.ByType[typeKey]++

		statusKey := rec.Status
		if statusKey == "" {
			statusKey = "unknown"
		}
		summary.ByStatus[statusKey]++

		// Ключ месяца строится по локальному календарному месяцу даты записи.
		// Тип вне четырёх именованных корзин увеличивает только total —
		// сознательное продуктовое решение, сохранённое из исходной системы.
		monthKey := rec.Date.Format("2006-01")
		month := summary.MonthlyStats[monthKey]
		if month == nil {
			month = &dto.MonthlyStatDTO{}
			summary.MonthlyStats[monthKey] = month
		}
		switch strings.ToLower(rec.Type) {
		case "preventive":
			month.Preventive++
		case "repair":
			month.Repair++
		case "calibration":
			month.Calibration++
		case "inspection":
			month.Inspection++
		}
		month.Total++
	}

	return data, summary
}
