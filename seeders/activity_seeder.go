package seeders

import (
	"context"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func seedActivities(ctx context.Context, db *pgxpool.Pool, equipmentIDs, departmentIDs map[string]uint64) error {
	log.Println("  - Наполнение таблицы 'activities'...")

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "TRUNCATE TABLE activities RESTART IDENTITY CASCADE"); err != nil {
		return err
	}

	query := `INSERT INTO activities (type, description, date, created_at, equipment_id, department_id)
			  VALUES ($1, $2, $3, $4, $5, $6)`

	now := time.Now()
	for _, a := range activitiesData {
		var equipmentID, departmentID *uint64
		if a.EquipmentTag != "" {
			if id, ok := equipmentIDs[a.EquipmentTag]; ok {
				equipmentID = &id
			}
		}
		if a.DepartmentName != "" {
			if id, ok := departmentIDs[a.DepartmentName]; ok {
				departmentID = &id
			}
		}

		date := now.AddDate(0, 0, -a.DaysAgo)
		if _, err := tx.Exec(ctx, query, a.Type, a.Description, date, date, equipmentID, departmentID); err != nil {
			log.Printf("Ошибка при вставке активности '%s': %v", a.Type, err)
			return err
		}
	}

	return tx.Commit(ctx)
}
