package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// MaintenanceRecord — событие обслуживания. Date обязательна и используется
// для всей месячной агрегации.
type MaintenanceRecord struct {
	ID          uint64       `json:"id" db:"id"`
	EquipmentID uint64       `json:"equipmentId" db:"equipment_id"`
	Type        string       `json:"type" db:"type"`
	Status      string       `json:"status" db:"status"`
	Priority    string       `json:"priority" db:"priority"`
	Date        time.Time    `json:"date" db:"date"`
	Cost        null.Float64 `json:"cost" db:"cost"`
	Technician  null.String  `json:"technician" db:"technician"`
	Description null.String  `json:"description" db:"description"`
	Notes       null.String  `json:"notes" db:"notes"`
}
