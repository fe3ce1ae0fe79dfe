package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseOptionalID(t *testing.T) {
	logger := zap.NewNop()

	id := ParseOptionalID("42", "departmentId", logger)
	require.NotNil(t, id)
	assert.Equal(t, uint64(42), *id)

	assert.Nil(t, ParseOptionalID("", "departmentId", logger))
	assert.Nil(t, ParseOptionalID("all", "departmentId", logger))
	assert.Nil(t, ParseOptionalID("All", "departmentId", logger))
	assert.Nil(t, ParseOptionalID("abc", "departmentId", logger))
	assert.Nil(t, ParseOptionalID("-5", "departmentId", logger))
}

func TestParseOptionalDate(t *testing.T) {
	logger := zap.NewNop()

	d := ParseOptionalDate("2024-06-30", "startDate", logger)
	require.NotNil(t, d)
	assert.Equal(t, time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC), *d)

	d = ParseOptionalDate("2024-06-30T12:30:00Z", "startDate", logger)
	require.NotNil(t, d)
	assert.Equal(t, 12, d.Hour())

	assert.Nil(t, ParseOptionalDate("", "startDate", logger))
	assert.Nil(t, ParseOptionalDate("30.06.2024", "startDate", logger))
}

func TestParseOptionalEnum(t *testing.T) {
	assert.Equal(t, "", ParseOptionalEnum(""))
	assert.Equal(t, "", ParseOptionalEnum("all"))
	assert.Equal(t, "", ParseOptionalEnum("ALL"))
	assert.Equal(t, "repair", ParseOptionalEnum("Repair"))
}

func TestParseLimit(t *testing.T) {
	logger := zap.NewNop()

	assert.Equal(t, 100, ParseLimit("", 100, logger))
	assert.Equal(t, 25, ParseLimit("25", 100, logger))
	assert.Equal(t, 100, ParseLimit("junk", 100, logger))
	assert.Equal(t, 100, ParseLimit("0", 100, logger))
	assert.Equal(t, 100, ParseLimit("-3", 100, logger))
}
