package reports

import (
	"time"

	"github.com/aarondl/null/v8"

	"maintenance-system/internal/entities"
)

// UnassignedDepartment — ключ для оборудования и активностей без подразделения
// во всех сводках, сгруппированных по подразделениям.
const UnassignedDepartment = "Unassigned"

// Snapshot — неизменяемый срез сущностей на момент времени. Движок только
// читает его; все соединения выполняются в памяти по построенным здесь индексам.
type Snapshot struct {
	Equipment   []entities.Equipment
	Departments []entities.Department
	Maintenance []entities.MaintenanceRecord
	Activities  []entities.Activity
}

func (s *Snapshot) departmentsByID() map[uint64]entities.Department {
	idx := make(map[uint64]entities.Department, len(s.Departments))
	for _, d := range s.Departments {
		idx[d.ID] = d
	}
	return idx
}

func (s *Snapshot) equipmentByID() map[uint64]entities.Equipment {
	idx := make(map[uint64]entities.Equipment, len(s.Equipment))
	for _, e := range s.Equipment {
		idx[e.ID] = e
	}
	return idx
}

func (s *Snapshot) maintenanceByEquipment() map[uint64][]entities.MaintenanceRecord {
	idx := make(map[uint64][]entities.MaintenanceRecord)
	for _, m := range s.Maintenance {
		idx[m.EquipmentID] = append(idx[m.EquipmentID], m)
	}
	return idx
}

// departmentName возвращает имя подразделения для строк data: nil, когда ссылки
// нет или она ведёт в никуда (битая ссылка не является ошибкой).
func departmentName(depts map[uint64]entities.Department, id *uint64) *string {
	if id == nil {
		return nil
	}
	d, ok := depts[*id]
	if !ok {
		return nil
	}
	name := d.Name
	return &name
}

// departmentKey — то же, но для ключей сводок: "Unassigned" вместо nil.
func departmentKey(depts map[uint64]entities.Department, id *uint64) string {
	if name := departmentName(depts, id); name != nil {
		return *name
	}
	return UnassignedDepartment
}

// costOrZero: отсутствующая или нечисловая стоимость в суммах считается нулём.
func costOrZero(c null.Float64) float64 {
	if c.Valid {
		return c.Float64
	}
	return 0
}

// withinRange — включительно с обеих сторон; nil-граница не ограничивает.
func withinRange(t time.Time, start, end *time.Time) bool {
	if start != nil && t.Before(*start) {
		return false
	}
	if end != nil && t.After(*end) {
		return false
	}
	return true
}

func filterEquipment(items []entities.Equipment, f entities.EquipmentFilter) []entities.Equipment {
	out := make([]entities.Equipment, 0, len(items))
	wantStatus := Status("")
	if f.Status != "" {
		wantStatus = NormalizeStatus(f.Status)
	}
	for _, e := range items {
		if f.DepartmentID != nil && (e.DepartmentID == nil || *e.DepartmentID != *f.DepartmentID) {
			continue
		}
		if wantStatus != "" && NormalizeStatus(e.Status) != wantStatus {
			continue
		}
		out = append(out, e)
	}
	return out
}
