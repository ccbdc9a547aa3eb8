package handler

import (
	"errors"
	"net/http"

	"github.com/ogurasousui/codex-hr-roster/internal/core/employee"
)

// errorResponse は API のエラーレスポンスです。
type errorResponse struct {
	Error string `json:"error"`
}

func toHTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, employee.ErrInvalidID),
		errors.Is(err, employee.ErrInvalidReason),
		errors.Is(err, employee.ErrInvalidActingUserID),
		errors.Is(err, employee.ErrInvalidSortOrder):
		return http.StatusBadRequest
	case errors.Is(err, employee.ErrEmployeeNotFound):
		return http.StatusNotFound
	case errors.Is(err, employee.ErrEmployeeAlreadyInactive):
		return http.StatusConflict
	case errors.Is(err, employee.ErrDataUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// firingResult はメトリクス用に解雇処理の結果を分類します。
func firingResult(err error) string {
	switch toHTTPStatus(err) {
	case http.StatusOK:
		return "success"
	case http.StatusBadRequest:
		return "invalid"
	case http.StatusNotFound:
		return "not_found"
	case http.StatusConflict:
		return "conflict"
	default:
		return "error"
	}
}

// publicMessage は内部エラーの詳細をクライアントへ漏らさないようにします。
func publicMessage(status int, err error) string {
	switch status {
	case http.StatusServiceUnavailable:
		return employee.ErrDataUnavailable.Error()
	case http.StatusInternalServerError:
		return "internal error"
	default:
		return err.Error()
	}
}
