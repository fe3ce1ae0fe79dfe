package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// Equipment — строка снапшота оборудования. Движок отчётов читает её как есть,
// статус нормализуется в одном месте (reports.NormalizeStatus).
type Equipment struct {
	ID               uint64       `json:"id" db:"id"`
	Name             string       `json:"name" db:"name"`
	Manufacturer     string       `json:"manufacturer" db:"manufacturer"`
	Model            string       `json:"model" db:"model"`
	TagNumber        string       `json:"tagNumber" db:"tag_number"`
	SerialNumber     string       `json:"serialNumber" db:"serial_number"`
	Status           string       `json:"status" db:"status"`
	DepartmentID     *uint64      `json:"departmentId" db:"department_id"`
	SubUnit          null.String  `json:"subUnit" db:"sub_unit"`
	PurchaseCost     null.Float64 `json:"purchaseCost" db:"purchase_cost"`
	PurchaseDate     *time.Time   `json:"purchaseDate" db:"purchase_date"`
	WarrantyExpiry   *time.Time   `json:"warrantyExpiry" db:"warranty_expiry"`
	InstallationDate *time.Time   `json:"installationDate" db:"installation_date"`
	CreatedAt        time.Time    `json:"createdAt" db:"created_at"`
}
