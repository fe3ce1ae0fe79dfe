package utils

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "maintenance-system/pkg/errors"
)

// ReportResponse — контракт всех отчётов: {success, data, summary}.
// Имена полей фиксированы, фронтовые графики читают их как есть.
type ReportResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Summary interface{} `json:"summary"`
}

type ReportErrorBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func ReportSuccess(ctx echo.Context, data interface{}, summary interface{}) error {
	return ctx.JSON(http.StatusOK, &ReportResponse{
		Success: true,
		Data:    data,
		Summary: summary,
	})
}

func ReportErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		if httpErr.Err != nil {
			logger.Error("HTTP Error",
				zap.Int("code", httpErr.Code),
				zap.String("message", httpErr.Message),
				zap.Error(httpErr.Err),
				zap.Any("context", httpErr.Context),
			)
		}
		return c.JSON(httpErr.Code, &ReportErrorBody{Success: false, Error: httpErr.Message})
	}

	if errors.Is(err, apperrors.ErrSnapshotUnavailable) {
		logger.Error("Снапшот недоступен", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, &ReportErrorBody{
			Success: false,
			Error:   apperrors.ErrSnapshotUnavailable.Error(),
		})
	}

	logger.Error("Unexpected Error", zap.Error(err))
	return c.JSON(http.StatusInternalServerError, &ReportErrorBody{
		Success: false,
		Error:   "Внутренняя ошибка сервера",
	})
}
