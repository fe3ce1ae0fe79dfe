package seeders

import (
	"context"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func seedMaintenance(ctx context.Context, db *pgxpool.Pool, equipmentIDs map[string]uint64) error {
	log.Println("  - Наполнение таблицы 'maintenance'...")

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "TRUNCATE TABLE maintenance RESTART IDENTITY CASCADE"); err != nil {
		return err
	}

	query := `INSERT INTO maintenance (equipment_id, type, status, priority, date, cost, technician, description)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	now := time.Now()
	for _, m := range maintenancesData {
		equipmentID, ok := equipmentIDs[m.EquipmentTag]
		if !ok {
			log.Printf("ПРЕДУПРЕЖДЕНИЕ: Оборудование '%s' не найдено, запись обслуживания пропущена.", m.EquipmentTag)
			continue
		}

		var cost *float64
		if m.Cost > 0 {
			cost = &m.Cost
		}
		var technician *string
		if m.Technician != "" {
			technician = &m.Technician
		}

		date := now.AddDate(0, 0, -m.DaysAgo)
		if _, err := tx.Exec(ctx, query, equipmentID, m.Type, m.Status, m.Priority, date, cost, technician, m.Description); err != nil {
			log.Printf("Ошибка при вставке обслуживания для '%s': %v", m.EquipmentTag, err)
			return err
		}
	}

	return tx.Commit(ctx)
}
