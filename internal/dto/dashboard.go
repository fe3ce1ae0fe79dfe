package dto

// Дашборд отдаёт плоскую структуру без конверта {data, summary}:
// лендинг читает счётчики напрямую.

type DepartmentCountDTO struct {
	Department string `json:"department"`
	Count      int    `json:"count"`
}

type StatusBreakdownDTO struct {
	Operational int `json:"operational"`
	Maintenance int `json:"maintenance"`
	Broken      int `json:"broken"`
	Retired     int `json:"retired"`
}

type DashboardStatsDTO struct {
	TotalEquipment        int                  `json:"totalEquipment"`
	Operational           int                  `json:"operational"`
	Maintenance           int                  `json:"maintenance"`
	Broken                int                  `json:"broken"`
	Retired               int                  `json:"retired"`
	TotalDepartments      int                  `json:"totalDepartments"`
	MaintenanceRecords    int                  `json:"maintenanceRecords"`
	EquipmentValue        float64              `json:"equipmentValue"`
	StatusBreakdown       StatusBreakdownDTO   `json:"statusBreakdown"`
	EquipmentByDepartment []DepartmentCountDTO `json:"equipmentByDepartment"`
}
