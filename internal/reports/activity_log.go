package reports

import (
	"sort"
	"strings"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
)

// BuildActivityLog — журнал активности, соединённый с именами оборудования и
// подразделений, отсортированный по дате события, затем по дате создания
// (обе по убыванию). recentActivities — первые десять строк data.
func BuildActivityLog(snap *Snapshot, filter entities.ActivityFilter) ([]dto.ActivityItemDTO, *dto.ActivitySummaryDTO) {
	eqs := snap.equipmentByID()
	depts := snap.departmentsByID()

	wantType := strings.ToLower(strings.TrimSpace(filter.Type))

	scoped := make([]entities.Activity, 0, len(snap.Activities))
	for _, a := range snap.Activities {
		if wantType != "" && strings.ToLower(a.Type) != wantType {
			continue
		}
		if !withinRange(a.Date, filter.StartDate, filter.EndDate) {
			continue
		}
		if filter.DepartmentID != nil && (a.DepartmentID == nil || *a.DepartmentID != *filter.DepartmentID) {
			continue
		}
		scoped = append(scoped, a)
	}

	sort.SliceStable(scoped, func(i, j int) bool {
		if !scoped[i].Date.Equal(scoped[j].Date) {
			return scoped[i].Date.After(scoped[j].Date)
		}
		if !scoped[i].CreatedAt.Equal(scoped[j].CreatedAt) {
			return scoped[i].CreatedAt.After(scoped[j].CreatedAt)
		}
		return scoped[i].ID < scoped[j].ID
	})

	if filter.Limit > 0 && len(scoped) > filter.Limit {
		scoped = scoped[:filter.Limit]
	}

	summary := &dto.ActivitySummaryDTO{
		ByType:       make(map[string]int),
		ByDepartment: make(map[string]int),
	}

	data := make([]dto.ActivityItemDTO, 0, len(scoped))
	for _, a := range scoped {
		item := dto.ActivityItemDTO{
			ID:           a.ID,
			Type:         a.Type,
			Description:  a.Description,
			Date:         a.Date,
			CreatedAt:    a.CreatedAt,
			EquipmentID:  a.EquipmentID,
			DepartmentID: a.DepartmentID,
		}
		if a.EquipmentID != nil {
			if eq, ok := eqs[*a.EquipmentID]; ok {
				name := eq.Name
				tag := eq.TagNumber
				item.EquipmentName = &name
				item.EquipmentTag = &tag
			}
		}
		item.DepartmentName = departmentName(depts, a.DepartmentID)
		data = append(data, item)

		summary.TotalActivities++
		typeKey := a.Type
		if typeKey == "" {
			typeKey = "unknown"
		}
		summary.ByType[typeKey]++
		summary.ByDepartment[departmentKey(depts, a.DepartmentID)]++
	}

	recent := data
	if len(recent) > 10 {
		recent = recent[:10]
	}
	summary.RecentActivities = recent

	return data, summary
}
