package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maintenance-system/internal/entities"
)

func TestBuildStatusDistribution(t *testing.T) {
	snap := testSnapshot()

	dist := BuildStatusDistribution(snap, entities.EquipmentFilter{})

	assert.Equal(t, 5, dist.TotalEquipment)

	// Присутствуют только реально встретившиеся статусы; under_maintenance
	// схлопнут в maintenance.
	require.Len(t, dist.ByStatus, 4)
	assert.Equal(t, 2, dist.ByStatus["operational"].Count)
	assert.Equal(t, 1, dist.ByStatus["maintenance"].Count)
	assert.Equal(t, 1, dist.ByStatus["broken"].Count)
	assert.Equal(t, 1, dist.ByStatus["retired"].Count)
	assert.NotContains(t, dist.ByStatus, "unknown")

	// Корзины исчерпывающие: сумма счётчиков равна размеру входа.
	total := 0
	for _, bucket := range dist.ByStatus {
		total += bucket.Count
	}
	assert.Equal(t, dist.TotalEquipment, total)

	// Отсутствующая стоимость считается нулём, а не выбрасывает единицу.
	assert.Equal(t, 850_000.0, dist.ByStatus["operational"].TotalValue)
	assert.Equal(t, 0.0, dist.ByStatus["retired"].TotalValue)
}

func TestBuildStatusDistributionStatusFilter(t *testing.T) {
	snap := testSnapshot()

	// Фильтр по статусу сравнивается после канонизации: запрос
	// "under_maintenance" находит запись со статусом maintenance.
	dist := BuildStatusDistribution(snap, entities.EquipmentFilter{Status: "under_maintenance"})

	assert.Equal(t, 1, dist.TotalEquipment)
	require.Len(t, dist.ByStatus, 1)
	assert.Equal(t, 1, dist.ByStatus["maintenance"].Count)
}

func TestBuildStatusDistributionEmptyInput(t *testing.T) {
	dist := BuildStatusDistribution(&Snapshot{}, entities.EquipmentFilter{})

	assert.Equal(t, 0, dist.TotalEquipment)
	assert.Empty(t, dist.ByStatus)
}
