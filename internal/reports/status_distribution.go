package reports

import (
	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
)

// BuildStatusDistribution считает {count, totalValue} по каждой статусной корзине,
// встретившейся во входном наборе. Корзины взаимоисключающие и исчерпывающие:
// сумма count всегда равна размеру отфильтрованного входа, несуществующие
// статусы не выдумываются.
func BuildStatusDistribution(snap *Snapshot, filter entities.EquipmentFilter) dto.StatusDistributionDTO {
	items := filterEquipment(snap.Equipment, filter)

	byStatus := make(map[string]dto.StatusBucketDTO, 5)
	for _, e := range items {
		key := string(NormalizeStatus(e.Status))
		bucket := byStatus[key]
		bucket.Count++
		bucket.TotalValue += costOrZero(e.PurchaseCost)
		byStatus[key] = bucket
	}

	return dto.StatusDistributionDTO{
		ByStatus:       byStatus,
		TotalEquipment: len(items),
	}
}
