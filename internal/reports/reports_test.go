package reports

import (
	"time"

	"github.com/aarondl/null/v8"

	"maintenance-system/internal/entities"
)

// Общие помощники для тестов агрегаторов. Опорная точка времени фиксирована,
// чтобы границы гарантийных и возрастных корзин были воспроизводимыми.

var testNow = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func u64(v uint64) *uint64 { return &v }

func days(n int) *time.Time {
	t := testNow.AddDate(0, 0, n)
	return &t
}

func testDepartments() []entities.Department {
	return []entities.Department{
		{ID: 1, Name: "Радиология", Manager: "Н. Фарход", Budget: null.Float64From(1_000_000), Employees: null.IntFrom(18)},
		{ID: 2, Name: "Лаборатория", Manager: "Р. Мижгона", Budget: null.Float64From(500_000), Employees: null.IntFrom(12)},
		{ID: 3, Name: "Архив", Manager: "К. Сухроб"},
	}
}

func testEquipment() []entities.Equipment {
	return []entities.Equipment{
		{
			ID: 1, Name: "МРТ-сканер", TagNumber: "RAD-001", Status: "operational",
			DepartmentID: u64(1), PurchaseCost: null.Float64From(850_000),
			PurchaseDate: days(-900), WarrantyExpiry: days(200),
			CreatedAt: testNow.AddDate(0, 0, -900),
		},
		{
			ID: 2, Name: "КТ-томограф", TagNumber: "RAD-002", Status: "under_maintenance",
			DepartmentID: u64(1), PurchaseCost: null.Float64From(520_000),
			PurchaseDate: days(-1600), WarrantyExpiry: days(20),
			CreatedAt: testNow.AddDate(0, 0, -1600),
		},
		{
			ID: 3, Name: "Анализатор", TagNumber: "LAB-001", Status: "broken",
			DepartmentID: u64(2), PurchaseCost: null.Float64From(60_000),
			PurchaseDate: days(-2100), WarrantyExpiry: days(-300),
			CreatedAt: testNow.AddDate(0, 0, -2100),
		},
		{
			ID: 4, Name: "Переносной УЗИ", TagNumber: "GEN-001", Status: "operational",
			PurchaseDate: days(-700), WarrantyExpiry: days(45),
			CreatedAt: testNow.AddDate(0, 0, -700),
		},
		{
			ID: 5, Name: "Электрохирургический блок", TagNumber: "LAB-002", Status: "retired",
			DepartmentID: u64(2),
			CreatedAt:    testNow.AddDate(0, 0, -50),
		},
	}
}

func testMaintenance() []entities.MaintenanceRecord {
	return []entities.MaintenanceRecord{
		{ID: 1, EquipmentID: 1, Type: "preventive", Status: "completed", Priority: "medium", Date: testNow.AddDate(0, 0, -15), Cost: null.Float64From(4200)},
		{ID: 2, EquipmentID: 2, Type: "repair", Status: "in-progress", Priority: "high", Date: testNow.AddDate(0, 0, -2), Cost: null.Float64From(11800)},
		{ID: 3, EquipmentID: 2, Type: "calibration", Status: "completed", Priority: "medium", Date: testNow.AddDate(0, 0, -95), Cost: null.Float64From(1500)},
		{ID: 4, EquipmentID: 3, Type: "repair", Status: "scheduled", Priority: "critical", Date: testNow.AddDate(0, 0, -5)},
		{ID: 5, EquipmentID: 1, Type: "inspection", Status: "completed", Priority: "low", Date: testNow.AddDate(0, 0, -40)},
	}
}

func testActivities() []entities.Activity {
	return []entities.Activity{
		{ID: 1, Type: "maintenance", Description: "Обслуживание МРТ", Date: testNow.AddDate(0, 0, -15), CreatedAt: testNow.AddDate(0, 0, -15), EquipmentID: u64(1), DepartmentID: u64(1)},
		{ID: 2, Type: "breakdown", Description: "Поломка анализатора", Date: testNow.AddDate(0, 0, -6), CreatedAt: testNow.AddDate(0, 0, -6), EquipmentID: u64(3), DepartmentID: u64(2)},
		{ID: 3, Type: "audit", Description: "Инвентаризация", Date: testNow.AddDate(0, 0, -30), CreatedAt: testNow.AddDate(0, 0, -30)},
		{ID: 4, Type: "status-change", Description: "КТ на обслуживании", Date: testNow.AddDate(0, 0, -2), CreatedAt: testNow.AddDate(0, 0, -2), EquipmentID: u64(2), DepartmentID: u64(1)},
	}
}

func testSnapshot() *Snapshot {
	return &Snapshot{
		Equipment:   testEquipment(),
		Departments: testDepartments(),
		Maintenance: testMaintenance(),
		Activities:  testActivities(),
	}
}
