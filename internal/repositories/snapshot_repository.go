package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"maintenance-system/internal/entities"
)

// SnapshotRepositoryInterface — поставщик снапшотов для движка отчётов.
// Каждый метод отдаёт срез таблицы на момент запроса; движок никогда не пишет.
type SnapshotRepositoryInterface interface {
	ListEquipment(ctx context.Context) ([]entities.Equipment, error)
	ListDepartments(ctx context.Context) ([]entities.Department, error)
	ListMaintenance(ctx context.Context) ([]entities.MaintenanceRecord, error)
	ListActivities(ctx context.Context) ([]entities.Activity, error)
}

type SnapshotRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewSnapshotRepository(storage *pgxpool.Pool, logger *zap.Logger) SnapshotRepositoryInterface {
	return &SnapshotRepository{storage: storage, logger: logger}
}

// Все соединения и фильтры отчётов выполняются движком в памяти, поэтому
// репозиторий остаётся тонким: только SELECT со стабильным порядком строк.

func (r *SnapshotRepository) ListEquipment(ctx context.Context) ([]entities.Equipment, error) {
	b := sq.Select(
		"id", "name", "manufacturer", "model", "tag_number", "serial_number",
		"status", "department_id", "sub_unit", "purchase_cost", "purchase_date",
		"warranty_expiry", "installation_date", "created_at",
	).From("equipment").OrderBy("id")

	query, args, err := b.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return pgx.CollectRows(rows, pgx.RowToStructByNameLax[entities.Equipment])
}

func (r *SnapshotRepository) ListDepartments(ctx context.Context) ([]entities.Department, error) {
	b := sq.Select(
		"id", "name", "manager", "email", "phone", "sub_units", "budget", "employees",
	).From("departments").OrderBy("id")

	query, args, err := b.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return pgx.CollectRows(rows, pgx.RowToStructByNameLax[entities.Department])
}

func (r *SnapshotRepository) ListMaintenance(ctx context.Context) ([]entities.MaintenanceRecord, error) {
	b := sq.Select(
		"id", "equipment_id", "type", "status", "priority", "date",
		"cost", "technician", "description", "notes",
	).From("maintenance").OrderBy("id")

	query, args, err := b.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return pgx.CollectRows(rows, pgx.RowToStructByNameLax[entities.MaintenanceRecord])
}

func (r *SnapshotRepository) ListActivities(ctx context.Context) ([]entities.Activity, error) {
	b := sq.Select(
		"id", "type", "description", "date", "created_at", "equipment_id", "department_id",
	).From("activities").OrderBy("id")

	query, args, err := b.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return pgx.CollectRows(rows, pgx.RowToStructByNameLax[entities.Activity])
}
