package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedDemoData наполняет базу демонстрационным парком оборудования.
// Порядок важен: отделы -> оборудование -> обслуживание и активность.
func SeedDemoData(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶️  Запуск наполнения демо-данными...")

	departmentIDs, err := seedDepartments(ctx, db)
	if err != nil {
		log.Fatalf("❌ Ошибка наполнения Отделов (Departments): %v", err)
	}
	equipmentIDs, err := seedEquipment(ctx, db, departmentIDs)
	if err != nil {
		log.Fatalf("❌ Ошибка наполнения Оборудования (Equipment): %v", err)
	}
	if err := seedMaintenance(ctx, db, equipmentIDs); err != nil {
		log.Fatalf("❌ Ошибка наполнения Обслуживания (Maintenance): %v", err)
	}
	if err := seedActivities(ctx, db, equipmentIDs, departmentIDs); err != nil {
		log.Fatalf("❌ Ошибка наполнения Журнала активности (Activities): %v", err)
	}

	log.Println("✅ Наполнение демо-данными завершено!")
}
