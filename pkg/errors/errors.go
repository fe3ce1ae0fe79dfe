package errors

import "fmt"

var (
	// Снапшот и фильтры
	ErrSnapshotUnavailable = fmt.Errorf("не удалось получить снимок данных из хранилища")
	ErrNotFound            = fmt.Errorf("запись не найдена")
	ErrBadRequest          = fmt.Errorf("неверный запрос")
)

// HttpError несёт HTTP-код и сообщение для клиента; Err хранит техническую причину.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Context map[string]interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, context map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Context: context}
}

func NewInternalError(message string) *HttpError {
	return &HttpError{Code: 500, Message: message}
}

// InvalidInputError — некорректное значение фильтра. По контракту отчётов такие
// ошибки не доходят до клиента: фильтр просто не применяется.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}
