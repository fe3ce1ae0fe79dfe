package dto

// ExportQueryDTO — параметр выгрузки отчёта. Остальные параметры фильтров
// разбираются либерально и сюда не входят: битый фильтр не должен ронять запрос.
type ExportQueryDTO struct {
	Format string `query:"format" validate:"omitempty,oneof=json xlsx"`
}
