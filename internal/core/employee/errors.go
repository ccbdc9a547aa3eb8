package employee

import "errors"

var (
	// ErrDataUnavailable はデータストアへの問い合わせに失敗した場合に返却されます。
	ErrDataUnavailable = errors.New("employee: data unavailable")
	// ErrEmployeeNotFound は社員が存在しない場合に返却されます。
	ErrEmployeeNotFound = errors.New("employee: not found")
	// ErrEmployeeAlreadyInactive は解雇済みの社員を再度解雇しようとした場合に返却されます。
	ErrEmployeeAlreadyInactive = errors.New("employee: already inactive")
	// ErrApplicationNotFound は応募情報が存在しない場合に返却されます。
	ErrApplicationNotFound = errors.New("employee: application not found")

	ErrInvalidID           = errors.New("employee: invalid id")
	ErrInvalidReason       = errors.New("employee: invalid firing reason")
	ErrInvalidActingUserID = errors.New("employee: invalid acting user id")
	ErrInvalidSortOrder    = errors.New("employee: invalid sort order")
)
