package reports

import (
	"sort"
	"time"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
)

// BuildWarrantyStatus строит отчёт по гарантиям. В область отчёта входит только
// оборудование с заполненной датой окончания гарантии: отсутствие гарантийных
// данных — это исключение из отчёта, а не корзина "unknown".
//
// Фильтр WarrantyStatus сужает только data, и делает это после категоризации;
// значение "expiring" по договорённости с UI захватывает и "expiring-soon".
// Счётчики в summary всегда остаются дизъюнктными по корзинам.
func BuildWarrantyStatus(snap *Snapshot, filter entities.WarrantyFilter, now time.Time) ([]dto.WarrantyItemDTO, *dto.WarrantySummaryDTO) {
	depts := snap.departmentsByID()

	scoped := make([]entities.Equipment, 0, len(snap.Equipment))
	for _, e := range snap.Equipment {
		if e.WarrantyExpiry == nil {
			continue
		}
		if filter.DepartmentID != nil && (e.DepartmentID == nil || *e.DepartmentID != *filter.DepartmentID) {
			continue
		}
		scoped = append(scoped, e)
	}

	sort.SliceStable(scoped, func(i, j int) bool {
		if scoped[i].WarrantyExpiry.Equal(*scoped[j].WarrantyExpiry) {
			return scoped[i].ID < scoped[j].ID
		}
		return scoped[i].WarrantyExpiry.Before(*scoped[j].WarrantyExpiry)
	})

	summary := &dto.WarrantySummaryDTO{ByDepartment: make(map[string]int)}
	categorized := make([]dto.WarrantyItemDTO, 0, len(scoped))
	for _, e := range scoped {
		bucket, days := WarrantyBucket(e.WarrantyExpiry, now)

		categorized = append(categorized, dto.WarrantyItemDTO{
			ID:              e.ID,
			Name:            e.Name,
			Manufacturer:    e.Manufacturer,
			Model:           e.Model,
			TagNumber:       e.TagNumber,
			SerialNumber:    e.SerialNumber,
			Status:          string(NormalizeStatus(e.Status)),
			WarrantyExpiry:  e.WarrantyExpiry,
			PurchaseDate:    e.PurchaseDate,
			PurchaseCost:    e.PurchaseCost,
			DepartmentID:    e.DepartmentID,
			DepartmentName:  departmentName(depts, e.DepartmentID),
			SubUnit:         e.SubUnit,
			WarrantyStatus:  bucket,
			DaysUntilExpiry: days,
		})

		summary.Total++
		switch bucket {
		case WarrantyActive:
			summary.Active++
		case WarrantyExpiringSoon:
			summary.ExpiringSoon++
		case WarrantyExpiring:
			summary.Expiring++
		case WarrantyExpired:
			summary.Expired++
		}
		summary.ByDepartment[departmentKey(depts, e.DepartmentID)]++
	}

	data := categorized
	if want := filter.WarrantyStatus; want != "" {
		data = make([]dto.WarrantyItemDTO, 0, len(categorized))
		for _, item := range categorized {
			if want == WarrantyExpiring {
				if item.WarrantyStatus == WarrantyExpiring || item.WarrantyStatus == WarrantyExpiringSoon {
					data = append(data, item)
				}
				continue
			}
			if item.WarrantyStatus == want {
				data = append(data, item)
			}
		}
	}

	return data, summary
}
