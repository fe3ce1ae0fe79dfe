package dto

import "github.com/aarondl/null/v8"

type DepartmentSummaryItemDTO struct {
	ID                    uint64       `json:"id"`
	Name                  string       `json:"name"`
	Manager               string       `json:"manager"`
	Email                 string       `json:"email"`
	Phone                 string       `json:"phone"`
	Budget                null.Float64 `json:"budget"`
	Employees             null.Int     `json:"employees"`
	EquipmentCount        int          `json:"equipmentCount"`
	TotalValue            float64      `json:"totalValue"`
	OperationalCount      int          `json:"operationalCount"`
	MaintenanceCount      int          `json:"maintenanceCount"`
	BrokenCount           int          `json:"brokenCount"`
	RetiredCount          int          `json:"retiredCount"`
	TotalMaintenanceCount int          `json:"totalMaintenanceCount"`
}

// DepartmentDistributionDTO — готовая точка для круговой диаграммы.
type DepartmentDistributionDTO struct {
	Name       string  `json:"name"`
	Value      int     `json:"value"`
	TotalValue float64 `json:"totalValue"`
}

type DepartmentSummaryTotalsDTO struct {
	TotalDepartments      int                         `json:"totalDepartments"`
	TotalEquipment        int                         `json:"totalEquipment"`
	TotalValue            float64                     `json:"totalValue"`
	TotalOperational      int                         `json:"totalOperational"`
	TotalUnderMaintenance int                         `json:"totalUnderMaintenance"`
	TotalBroken           int                         `json:"totalBroken"`
	TotalRetired          int                         `json:"totalRetired"`
	TotalMaintenance      int                         `json:"totalMaintenance"`
	Distribution          []DepartmentDistributionDTO `json:"distribution"`
}
