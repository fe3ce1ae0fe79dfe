package reports

import "strings"

// Status — закрытый набор статусов оборудования.
type Status string

const (
	StatusOperational Status = "operational"
	StatusMaintenance Status = "maintenance"
	StatusBroken      Status = "broken"
	StatusRetired     Status = "retired"
	StatusUnknown     Status = "unknown"
)

// NormalizeStatus — единственная точка канонизации статуса. Исторические данные
// содержат и "maintenance", и "under_maintenance"; здесь оба схлопываются в одно
// значение, всё нераспознанное уходит в unknown.
func NormalizeStatus(raw string) Status {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "operational":
		return StatusOperational
	case "maintenance", "under_maintenance":
		return StatusMaintenance
	case "broken":
		return StatusBroken
	case "retired":
		return StatusRetired
	default:
		return StatusUnknown
	}
}
