package entities

import "time"

// Фильтры отчётов. Каждый вызов агрегатора получает явную структуру вместо
// протаскивания объекта запроса через пайплайн. Nil/пустое поле = «без фильтра».

type EquipmentFilter struct {
	DepartmentID *uint64
	Status       string
}

type WarrantyFilter struct {
	DepartmentID *uint64
	// WarrantyStatus сужает data после категоризации; значение "expiring"
	// по договорённости с UI захватывает и "expiring-soon".
	WarrantyStatus string
}

type DepartmentFilter struct {
	DepartmentID *uint64
}

type MaintenanceFilter struct {
	DepartmentID *uint64
	Type         string
	// Диапазон дат включительный с обеих сторон.
	StartDate *time.Time
	EndDate   *time.Time
}

type ActivityFilter struct {
	DepartmentID *uint64
	Type         string
	StartDate    *time.Time
	EndDate      *time.Time
	Limit        int
}
