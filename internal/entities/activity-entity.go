package entities

import "time"

type Activity struct {
	ID           uint64    `json:"id" db:"id"`
	Type         string    `json:"type" db:"type"`
	Description  string    `json:"description" db:"description"`
	Date         time.Time `json:"date" db:"date"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	EquipmentID  *uint64   `json:"equipmentId" db:"equipment_id"`
	DepartmentID *uint64   `json:"departmentId" db:"department_id"`
}
