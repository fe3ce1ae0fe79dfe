package reports

import (
	"sort"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
)

// BuildEquipmentInventory — инвентаризация: отфильтрованный список техники с
// именами подразделений, свежие записи первыми. Оборудование без дат не
// отфильтровывается — в инвентаризацию попадает весь парк.
func BuildEquipmentInventory(snap *Snapshot, filter entities.EquipmentFilter) ([]dto.InventoryItemDTO, *dto.InventorySummaryDTO) {
	depts := snap.departmentsByID()

	scoped := filterEquipment(snap.Equipment, filter)
	sort.SliceStable(scoped, func(i, j int) bool {
		if !scoped[i].CreatedAt.Equal(scoped[j].CreatedAt) {
			return scoped[i].CreatedAt.After(scoped[j].CreatedAt)
		}
		return scoped[i].ID < scoped[j].ID
	})

	summary := &dto.InventorySummaryDTO{
		ByStatus:     make(map[string]int),
		ByDepartment: make(map[string]int),
	}

	data := make([]dto.InventoryItemDTO, 0, len(scoped))
	for _, e := range scoped {
		status := string(NormalizeStatus(e.Status))
		data = append(data, dto.InventoryItemDTO{
			ID:               e.ID,
			Name:             e.Name,
			Manufacturer:     e.Manufacturer,
			Model:            e.Model,
			TagNumber:        e.TagNumber,
			SerialNumber:     e.SerialNumber,
			Status:           status,
			PurchaseCost:     e.PurchaseCost,
			PurchaseDate:     e.PurchaseDate,
			WarrantyExpiry:   e.WarrantyExpiry,
			DepartmentID:     e.DepartmentID,
			DepartmentName:   departmentName(depts, e.DepartmentID),
			SubUnit:          e.SubUnit,
			InstallationDate: e.InstallationDate,
			CreatedAt:        e.CreatedAt,
		})

		summary.TotalEquipment++
		summary.TotalValue += costOrZero(e.PurchaseCost)
		summary.ByStatus[status]++
		summary.ByDepartment[departmentKey(depts, e.DepartmentID)]++
	}

	return data, summary
}
