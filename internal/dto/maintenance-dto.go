package dto

import (
	"time"

	"github.com/aarondl/null/v8"
)

type MaintenanceItemDTO struct {
	ID             uint64       `json:"id"`
	Type           string       `json:"type"`
	Status         string       `json:"status"`
	Priority       string       `json:"priority"`
	Date           time.Time    `json:"date"`
	Technician     null.String  `json:"technician"`
	Cost           null.Float64 `json:"cost"`
	Description    null.String  `json:"description"`
	Notes          null.String  `json:"notes"`
	EquipmentID    *uint64      `json:"equipmentId"`
	EquipmentName  *string      `json:"equipmentName"`
	EquipmentTag   *string      `json:"equipmentTag"`
	DepartmentID   *uint64      `json:"departmentId"`
	DepartmentName *string      `json:"departmentName"`
}

// MonthlyStatDTO — счётчики одного календарного месяца. Тип вне четырёх именованных
// корзин увеличивает только Total: это зафиксированное продуктовое решение,
// а не потерянное значение.
type MonthlyStatDTO struct {
	Preventive  int `json:"preventive"`
	Repair      int `json:"repair"`
	Calibration int `json:"calibration"`
	Inspection  int `json:"inspection"`
	Total       int `json:"total"`
}

type MaintenanceSummaryDTO struct {
	TotalMaintenance int                        `json:"totalMaintenance"`
	TotalCost        float64                    `json:"totalCost"`
	ByType           map[string]int             `json:"byType"`
	ByStatus         map[string]int             `json:"byStatus"`
	MonthlyStats     map[string]*MonthlyStatDTO `json:"monthlyStats"`
}
