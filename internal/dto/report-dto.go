package dto

import (
	"time"

	"github.com/aarondl/null/v8"
)

// DTO отчётов по оборудованию. Имена json-полей и ключи корзин фиксированы:
// графики на фронте ищут их дословно ("expiring-soon", "0-1 years", "Unassigned").

// --- Инвентаризация оборудования ---

type InventoryItemDTO struct {
	ID               uint64       `json:"id"`
	Name             string       `json:"name"`
	Manufacturer     string       `json:"manufacturer"`
	Model            string       `json:"model"`
	TagNumber        string       `json:"tagNumber"`
	SerialNumber     string       `json:"serialNumber"`
	Status           string       `json:"status"`
	PurchaseCost     null.Float64 `json:"purchaseCost"`
	PurchaseDate     *time.Time   `json:"purchaseDate"`
	WarrantyExpiry   *time.Time   `json:"warrantyExpiry"`
	DepartmentID     *uint64      `json:"departmentId"`
	DepartmentName   *string      `json:"departmentName"`
	SubUnit          null.String  `json:"subUnit"`
	InstallationDate *time.Time   `json:"dateOfInstallation"`
	CreatedAt        time.Time    `json:"createdAt"`
}

type InventorySummaryDTO struct {
	TotalEquipment int            `json:"totalEquipment"`
	TotalValue     float64        `json:"totalValue"`
	ByStatus       map[string]int `json:"byStatus"`
	ByDepartment   map[string]int `json:"byDepartment"`
}

// --- Гарантии ---

type WarrantyItemDTO struct {
	ID              uint64       `json:"id"`
	Name            string       `json:"name"`
	Manufacturer    string       `json:"manufacturer"`
	Model           string       `json:"model"`
	TagNumber       string       `json:"tagNumber"`
	SerialNumber    string       `json:"serialNumber"`
	Status          string       `json:"status"`
	WarrantyExpiry  *time.Time   `json:"warrantyExpiry"`
	PurchaseDate    *time.Time   `json:"purchaseDate"`
	PurchaseCost    null.Float64 `json:"purchaseCost"`
	DepartmentID    *uint64      `json:"departmentId"`
	DepartmentName  *string      `json:"departmentName"`
	SubUnit         null.String  `json:"subUnit"`
	WarrantyStatus  string       `json:"warrantyStatus"`
	DaysUntilExpiry int          `json:"daysUntilExpiry"`
}

type WarrantySummaryDTO struct {
	Total        int            `json:"total"`
	Active       int            `json:"active"`
	ExpiringSoon int            `json:"expiringSoon"`
	Expiring     int            `json:"expiring"`
	Expired      int            `json:"expired"`
	ByDepartment map[string]int `json:"byDepartment"`
}

// --- Статус-анализ и возраст парка ---

type AgeAnalysisItemDTO struct {
	ID             uint64     `json:"id"`
	Name           string     `json:"name"`
	Status         string     `json:"status"`
	PurchaseDate   *time.Time `json:"purchaseDate"`
	DepartmentName *string    `json:"departmentName"`
	AgeInYears     float64    `json:"ageInYears"`
	AgeCategory    string     `json:"ageCategory"`
}

type StatusCountDTO struct {
	Status     string  `json:"status"`
	Count      int     `json:"count"`
	TotalValue float64 `json:"totalValue"`
}

type DepartmentStatusCountDTO struct {
	Department string `json:"department"`
	Status     string `json:"status"`
	Count      int    `json:"count"`
}

type MaintenanceByStatusDTO struct {
	Status           string  `json:"status"`
	MaintenanceCount int     `json:"maintenanceCount"`
	AvgCost          float64 `json:"avgCost"`
}

type StatusAnalysisSummaryDTO struct {
	TotalEquipment      int                        `json:"totalEquipment"`
	StatusDistribution  []StatusCountDTO           `json:"statusDistribution"`
	AgeDistribution     map[string]int             `json:"ageDistribution"`
	StatusByDepartment  []DepartmentStatusCountDTO `json:"statusByDepartment"`
	MaintenanceByStatus []MaintenanceByStatusDTO   `json:"maintenanceByStatus"`
}

// StatusBucketDTO — счётчик и суммарная стоимость одной статусной корзины.
type StatusBucketDTO struct {
	Count      int     `json:"count"`
	TotalValue float64 `json:"totalValue"`
}

// StatusDistributionDTO — самостоятельный вид распределения по статусам.
// В ByStatus попадают только статусы, реально встретившиеся во входе.
type StatusDistributionDTO struct {
	ByStatus       map[string]StatusBucketDTO `json:"byStatus"`
	TotalEquipment int                        `json:"totalEquipment"`
}
