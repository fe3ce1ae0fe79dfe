package reports

import (
	"math"
	"time"
)

// Корзины гарантии. Ключи буквальные, их читает фронт.
const (
	WarrantyActive       = "active"
	WarrantyExpiringSoon = "expiring-soon"
	WarrantyExpiring     = "expiring"
	WarrantyExpired      = "expired"
	WarrantyUnknown      = "unknown"
)

// Корзины возраста, полуоткрытые интервалы [0,1), [1,3), [3,5), [5,10), [10,∞).
const (
	AgeUnknown  = "unknown"
	Age0to1     = "0-1 years"
	Age1to3     = "1-3 years"
	Age3to5     = "3-5 years"
	Age5to10    = "5-10 years"
	Age10Plus   = "10+ years"
	daysPerYear = 365
)

// WarrantyBucket относит срок гарантии ровно к одной корзине.
// daysUntilExpiry = floor((expiry - now) / сутки); пороги проверяются по порядку.
func WarrantyBucket(expiry *time.Time, now time.Time) (string, int) {
	if expiry == nil {
		return WarrantyUnknown, 0
	}
	days := int(math.Floor(expiry.Sub(now).Hours() / 24))
	switch {
	case days < 0:
		return WarrantyExpired, days
	case days <= 30:
		return WarrantyExpiringSoon, days
	case days <= 90:
		return WarrantyExpiring, days
	default:
		return WarrantyActive, days
	}
}

// AgeBucket возвращает возраст в годах (усечённый до одного знака для отображения)
// и корзину. Год считается как 365 суток, без календарной точности.
func AgeBucket(purchase *time.Time, now time.Time) (float64, string) {
	if purchase == nil {
		return 0, AgeUnknown
	}
	years := now.Sub(*purchase).Hours() / (24 * daysPerYear)
	display := math.Floor(years*10) / 10

	var category string
	switch {
	case years < 1:
		category = Age0to1
	case years < 3:
		category = Age1to3
	case years < 5:
		category = Age3to5
	case years < 10:
		category = Age5to10
	default:
		category = Age10Plus
	}
	return display, category
}
