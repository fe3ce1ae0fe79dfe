package dto

import "time"

type ActivityItemDTO struct {
	ID             uint64    `json:"id"`
	Type           string    `json:"type"`
	Description    string    `json:"description"`
	Date           time.Time `json:"date"`
	CreatedAt      time.Time `json:"createdAt"`
	EquipmentID    *uint64   `json:"equipmentId"`
	EquipmentName  *string   `json:"equipmentName"`
	EquipmentTag   *string   `json:"equipmentTag"`
	DepartmentID   *uint64   `json:"departmentId"`
	DepartmentName *string   `json:"departmentName"`
}

type ActivitySummaryDTO struct {
	TotalActivities  int               `json:"totalActivities"`
	ByType           map[string]int    `json:"byType"`
	ByDepartment     map[string]int    `json:"byDepartment"`
	RecentActivities []ActivityItemDTO `json:"recentActivities"`
}
