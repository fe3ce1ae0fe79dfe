package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
	"maintenance-system/internal/services"
	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/pkg/utils"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	activityLimit int
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, activityLimit int, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, activityLimit: activityLimit, logger: logger}
}

// exportFormat разбирает и проверяет ?format=. Неизвестный формат — единственный
// параметр отчётов, который приводит к ошибке, а не к молчаливому сбросу фильтра.
func (c *ReportController) exportFormat(ctx echo.Context) (string, error) {
	var q dto.ExportQueryDTO
	if err := ctx.Bind(&q); err != nil {
		return "", apperrors.NewHttpError(http.StatusBadRequest, "некорректные параметры запроса", err, nil)
	}
	if err := ctx.Validate(&q); err != nil {
		return "", apperrors.NewHttpError(http.StatusBadRequest, "неподдерживаемый формат выгрузки", err, nil)
	}
	return strings.ToLower(q.Format), nil
}

func (c *ReportController) GetEquipmentInventory(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	format, err := c.exportFormat(ctx)
	if err != nil {
		return utils.ReportErrorResponse(ctx, err, c.logger)
	}
	filter := entities.EquipmentFilter{
		DepartmentID: utils.ParseOptionalID(ctx.QueryParam("departmentId"), "departmentId", c.logger),
		Status:       utils.ParseOptionalEnum(ctx.QueryParam("status")),
	}
	c.logger.Debug("Запрос инвентаризации оборудования", zap.Any("filter", filter), zap.String("format", format))

	data, summary, err := c.reportService.GetEquipmentInventory(reqCtx, filter)
	if err != nil {
		return utils.ReportErrorResponse(ctx, err, c.logger)
	}
	if format == "xlsx" {
		return c.respondInventoryXLSX(ctx, data)
	}
	return utils.ReportSuccess(ctx, data, summary)
}

func (c *ReportController) GetWarrantyStatus(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	filter := entities.WarrantyFilter{
		DepartmentID:   utils.ParseOptionalID(ctx.QueryParam("departmentId"), "departmentId", c.logger),
		WarrantyStatus: utils.ParseOptionalEnum(ctx.QueryParam("status")),
	}
	c.logger.Debug("Запрос отчёта по гарантиям", zap.Any("filter", filter))

	data, summary, err := c.reportService.GetWarrantyStatus(reqCtx, filter)
	if err != nil {
		return utils.ReportErrorResponse(ctx, err, c.logger)
	}
	return utils.ReportSuccess(ctx, data, summary)
}

func (c *ReportController) GetStatusAnalysis(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	filter := entities.DepartmentFilter{
		DepartmentID: utils.ParseOptionalID(ctx.QueryParam("departmentId"), "departmentId", c.logger),
	}
	c.logger.Debug("Запрос статус-анализа парка", zap.Any("filter", filter))

	data, summary, err := c.reportService.GetStatusAnalysis(reqCtx, filter)
	if err != nil {
		return utils.ReportErrorResponse(ctx, err, c.logger)
	}
	return utils.ReportSuccess(ctx, data, summary)
}

func (c *ReportController) GetDepartmentSummary(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	filter := entities.DepartmentFilter{
		DepartmentID: utils.ParseOptionalID(ctx.QueryParam("departmentId"), "departmentId", c.logger),
	}
	c.logger.Debug("Запрос сводки по отделам", zap.Any("filter", filter))

	data, summary, err := c.reportService.GetDepartmentSummary(reqCtx, filter)
	if err != nil {
		return utils.ReportErrorResponse(ctx, err, c.logger)
	}
	return utils.ReportSuccess(ctx, data, summary)
}

func (c *ReportController) GetMaintenanceHistory(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	format, err := c.exportFormat(ctx)
	if err != nil {
		return utils.ReportErrorResponse(ctx, err, c.logger)
	}
	filter := entities.MaintenanceFilter{
		DepartmentID: utils.ParseOptionalID(ctx.QueryParam("departmentId"), "departmentId", c.logger),
		Type:         utils.ParseOptionalEnum(ctx.QueryParam("type")),
		StartDate:    utils.ParseOptionalDate(ctx.QueryParam("startDate"), "startDate", c.logger),
		EndDate:      utils.ParseOptionalDate(ctx.QueryParam("endDate"), "endDate", c.logger),
	}
	c.logger.Debug("Запрос истории обслуживания", zap.Any("filter", filter), zap.String("format", format))

	data, summary, err := c.reportService.GetMaintenanceHistory(reqCtx, filter)
	if err != nil {
		return utils.ReportErrorResponse(ctx, err, c.logger)
	}
	if format == "xlsx" {
		return c.respondMaintenanceXLSX(ctx, data)
	}
	return utils.ReportSuccess(ctx, data, summary)
}

func (c *ReportController) GetActivityLog(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	filter := entities.ActivityFilter{
		DepartmentID: utils.ParseOptionalID(ctx.QueryParam("departmentId"), "departmentId", c.logger),
		Type:         utils.ParseOptionalEnum(ctx.QueryParam("type")),
		StartDate:    utils.ParseOptionalDate(ctx.QueryParam("startDate"), "startDate", c.logger),
		EndDate:      utils.ParseOptionalDate(ctx.QueryParam("endDate"), "endDate", c.logger),
		Limit:        utils.ParseLimit(ctx.QueryParam("limit"), c.activityLimit, c.logger),
	}
	c.logger.Debug("Запрос журнала активности", zap.Any("filter", filter))

	data, summary, err := c.reportService.GetActivityLog(reqCtx, filter)
	if err != nil {
		return utils.ReportErrorResponse(ctx, err, c.logger)
	}
	return utils.ReportSuccess(ctx, data, summary)
}

// --- Экспорт в XLSX ---

var inventoryHeaders = []string{
	"ID", "Наименование", "Производитель", "Модель", "Инв. номер", "Серийный номер",
	"Статус", "Отдел", "Подразделение", "Стоимость", "Дата покупки", "Гарантия до", "Дата установки",
}

func inventoryRow(item dto.InventoryItemDTO) []interface{} {
	dateFmt := "02.01.2006"
	var purchaseDate, warrantyExpiry, installed, department, cost string
	if item.PurchaseDate != nil {
		purchaseDate = item.PurchaseDate.Format(dateFmt)
	}
	if item.WarrantyExpiry != nil {
		warrantyExpiry = item.WarrantyExpiry.Format(dateFmt)
	}
	if item.InstallationDate != nil {
		installed = item.InstallationDate.Format(dateFmt)
	}
	if item.DepartmentName != nil {
		department = *item.DepartmentName
	}
	if item.PurchaseCost.Valid {
		cost = fmt.Sprintf("%.2f", item.PurchaseCost.Float64)
	}

	return []interface{}{
		item.ID, item.Name, item.Manufacturer, item.Model, item.TagNumber, item.SerialNumber,
		item.Status, department, item.SubUnit.String, cost, purchaseDate, warrantyExpiry, installed,
	}
}

func (c *ReportController) respondInventoryXLSX(ctx echo.Context, data []dto.InventoryItemDTO) error {
	f := excelize.NewFile()
	sheet := "Инвентаризация"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &inventoryHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "M1", style)

	for i, item := range data {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := inventoryRow(item)
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "B", "C", 25)
	f.SetColWidth(sheet, "E", "F", 18)
	f.SetColWidth(sheet, "H", "I", 22)

	return writeXLSX(ctx, f, "equipment_inventory")
}

var maintenanceHeaders = []string{
	"ID", "Тип", "Статус", "Приоритет", "Дата", "Оборудование", "Инв. номер",
	"Отдел", "Техник", "Стоимость", "Описание",
}

func maintenanceRow(item dto.MaintenanceItemDTO) []interface{} {
	var equipment, tag, department, cost string
	if item.EquipmentName != nil {
		equipment = *item.EquipmentName
	}
	if item.EquipmentTag != nil {
		tag = *item.EquipmentTag
	}
	if item.DepartmentName != nil {
		department = *item.DepartmentName
	}
	if item.Cost.Valid {
		cost = fmt.Sprintf("%.2f", item.Cost.Float64)
	}

	return []interface{}{
		item.ID, item.Type, item.Status, item.Priority, item.Date.Format("02.01.2006"),
		equipment, tag, department, item.Technician.String, cost, item.Description.String,
	}
}

func (c *ReportController) respondMaintenanceXLSX(ctx echo.Context, data []dto.MaintenanceItemDTO) error {
	f := excelize.NewFile()
	sheet := "История обслуживания"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &maintenanceHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "K1", style)

	for i, item := range data {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := maintenanceRow(item)
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "F", "F", 28)
	f.SetColWidth(sheet, "H", "I", 22)
	f.SetColWidth(sheet, "K", "K", 45)

	return writeXLSX(ctx, f, "maintenance_history")
}

func writeXLSX(ctx echo.Context, f *excelize.File, prefix string) error {
	fileName := fmt.Sprintf("%s_%s.xlsx", prefix, time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
