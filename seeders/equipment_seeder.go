package seeders

import (
	"context"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func seedEquipment(ctx context.Context, db *pgxpool.Pool, departmentIDs map[string]uint64) (map[string]uint64, error) {
	log.Println("  - Наполнение таблицы 'equipment'...")

	tx, err := db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "TRUNCATE TABLE equipment RESTART IDENTITY CASCADE"); err != nil {
		return nil, err
	}

	query := `INSERT INTO equipment
			  (name, manufacturer, model, tag_number, serial_number, status, department_id,
			   sub_unit, purchase_cost, purchase_date, warranty_expiry, installation_date, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING id`

	now := time.Now()
	ids := make(map[string]uint64, len(equipmentsData))
	for _, e := range equipmentsData {
		var departmentID *uint64
		if e.DepartmentName != "" {
			id, ok := departmentIDs[e.DepartmentName]
			if !ok {
				log.Printf("ПРЕДУПРЕЖДЕНИЕ: Отдел '%s' не найден, оборудование '%s' останется без отдела.", e.DepartmentName, e.Name)
			} else {
				departmentID = &id
			}
		}

		var subUnit *string
		if e.SubUnit != "" {
			subUnit = &e.SubUnit
		}
		var cost *float64
		if e.PurchaseCost > 0 {
			cost = &e.PurchaseCost
		}
		var purchaseDate, warrantyExpiry, installed *time.Time
		if e.PurchaseDaysAgo > 0 {
			t := now.AddDate(0, 0, -e.PurchaseDaysAgo)
			purchaseDate = &t
		}
		if e.HasWarranty {
			t := now.AddDate(0, 0, e.WarrantyDaysAhead)
			warrantyExpiry = &t
		}
		if e.InstalledDaysAgo > 0 {
			t := now.AddDate(0, 0, -e.InstalledDaysAgo)
			installed = &t
		}

		var id uint64
		if err := tx.QueryRow(ctx, query,
			e.Name, e.Manufacturer, e.Model, e.TagNumber, e.SerialNumber, e.Status, departmentID,
			subUnit, cost, purchaseDate, warrantyExpiry, installed, now,
		).Scan(&id); err != nil {
			log.Printf("Ошибка при вставке оборудования '%s': %v", e.Name, err)
			return nil, err
		}
		ids[e.TagNumber] = id
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return ids, nil
}
