package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStatus(t *testing.T) {
	assert.Equal(t, StatusOperational, NormalizeStatus("operational"))
	assert.Equal(t, StatusOperational, NormalizeStatus("  Operational "))
	assert.Equal(t, StatusMaintenance, NormalizeStatus("maintenance"))
	// Исторический синоним схлопывается в ту же корзину.
	assert.Equal(t, StatusMaintenance, NormalizeStatus("under_maintenance"))
	assert.Equal(t, StatusBroken, NormalizeStatus("BROKEN"))
	assert.Equal(t, StatusRetired, NormalizeStatus("retired"))
	assert.Equal(t, StatusUnknown, NormalizeStatus(""))
	assert.Equal(t, StatusUnknown, NormalizeStatus("decommissioned"))
}

func TestWarrantyBucketBoundaries(t *testing.T) {
	cases := []struct {
		name     string
		daysFrom int
		bucket   string
		days     int
	}{
		{"истекает сегодня", 0, WarrantyExpiringSoon, 0},
		{"ровно 30 дней", 30, WarrantyExpiringSoon, 30},
		{"31 день", 31, WarrantyExpiring, 31},
		{"ровно 90 дней", 90, WarrantyExpiring, 90},
		{"91 день", 91, WarrantyActive, 91},
		{"вчера истекла", -1, WarrantyExpired, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bucket, d := WarrantyBucket(days(tc.daysFrom), testNow)
			assert.Equal(t, tc.bucket, bucket)
			assert.Equal(t, tc.days, d)
		})
	}
}

func TestWarrantyBucketFloorsPartialDays(t *testing.T) {
	// Истечение через час — ещё не expired: floor даёт 0 полных дней.
	expiry := testNow.Add(time.Hour)
	bucket, d := WarrantyBucket(&expiry, testNow)
	assert.Equal(t, WarrantyExpiringSoon, bucket)
	assert.Equal(t, 0, d)

	// Истекла час назад — floor(-1/24) = -1, уже expired.
	expired := testNow.Add(-time.Hour)
	bucket, d = WarrantyBucket(&expired, testNow)
	assert.Equal(t, WarrantyExpired, bucket)
	assert.Equal(t, -1, d)
}

func TestWarrantyBucketNilExpiry(t *testing.T) {
	bucket, d := WarrantyBucket(nil, testNow)
	assert.Equal(t, WarrantyUnknown, bucket)
	assert.Equal(t, 0, d)
}

func TestAgeBucketBoundaries(t *testing.T) {
	cases := []struct {
		name     string
		daysAgo  int
		category string
	}{
		{"новое", -100, Age0to1},
		{"364 дня", -364, Age0to1},
		// Год считается как 365 суток: ровно 365 дней — уже вторая корзина.
		{"ровно 365 дней", -365, Age1to3},
		{"3 года без дня", -(3*365 - 1), Age1to3},
		{"ровно 3 года", -(3 * 365), Age3to5},
		{"ровно 5 лет", -(5 * 365), Age5to10},
		{"ровно 10 лет", -(10 * 365), Age10Plus},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, category := AgeBucket(days(tc.daysAgo), testNow)
			assert.Equal(t, tc.category, category)
		})
	}
}

func TestAgeBucketDisplayTruncated(t *testing.T) {
	// 500/365 ≈ 1.3698 — отображается как 1.3, не округляется до 1.4.
	years, category := AgeBucket(days(-500), testNow)
	assert.Equal(t, 1.3, years)
	assert.Equal(t, Age1to3, category)
}

func TestAgeBucketNilPurchase(t *testing.T) {
	years, category := AgeBucket(nil, testNow)
	assert.Equal(t, 0.0, years)
	assert.Equal(t, AgeUnknown, category)
}
