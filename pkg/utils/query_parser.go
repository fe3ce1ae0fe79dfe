package utils

import (
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Парсинг фильтров отчётов. Контракт: кривое значение фильтра никогда не является
// ошибкой — фильтр просто не применяется, факт пишется в лог.

var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// ParseOptionalID разбирает числовой id; "", "all" и мусор дают nil.
func ParseOptionalID(raw, name string, logger *zap.Logger) *uint64 {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "all") {
		return nil
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		logger.Warn("Некорректный id в фильтре, фильтр не применяется",
			zap.String("param", name), zap.String("value", raw))
		return nil
	}
	return &id
}

// ParseOptionalDate принимает RFC3339 или YYYY-MM-DD; мусор даёт nil.
func ParseOptionalDate(raw, name string, logger *zap.Logger) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	logger.Warn("Некорректная дата в фильтре, фильтр не применяется",
		zap.String("param", name), zap.String("value", raw))
	return nil
}

// ParseOptionalEnum возвращает "" для "" и "all" (то есть «без фильтра»).
func ParseOptionalEnum(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.EqualFold(raw, "all") {
		return ""
	}
	return strings.ToLower(raw)
}

// ParseLimit разбирает limit; нет значения или мусор — fallback.
func ParseLimit(raw string, fallback int, logger *zap.Logger) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		logger.Warn("Некорректный limit, используется значение по умолчанию",
			zap.String("value", raw), zap.Int("fallback", fallback))
		return fallback
	}
	return n
}
