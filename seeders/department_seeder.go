package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func seedDepartments(ctx context.Context, db *pgxpool.Pool) (map[string]uint64, error) {
	log.Println("  - Наполнение таблицы 'departments'...")

	tx, err := db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "TRUNCATE TABLE departments RESTART IDENTITY CASCADE"); err != nil {
		return nil, err
	}

	query := `INSERT INTO departments (name, manager, email, phone, sub_units, budget, employees)
			  VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`

	ids := make(map[string]uint64, len(departmentsData))
	for _, d := range departmentsData {
		subUnits := d.SubUnits
		if subUnits == nil {
			subUnits = []string{}
		}
		var id uint64
		if err := tx.QueryRow(ctx, query, d.Name, d.Manager, d.Email, d.Phone, subUnits, d.Budget, d.Employees).Scan(&id); err != nil {
			log.Printf("Ошибка при вставке отдела '%s': %v", d.Name, err)
			return nil, err
		}
		ids[d.Name] = id
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return ids, nil
}
