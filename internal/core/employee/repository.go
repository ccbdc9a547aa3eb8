package employee

import "context"

// Repository は社員関連レコードへのアクセスを抽象化します。
// 実装はコンテキストに格納されたトランザクションを利用する必要があります。
type Repository interface {
	// ListActive は在籍中の社員を ID 昇順で返します。
	ListActive(ctx context.Context) ([]*Employee, error)
	FindByID(ctx context.Context, id int64) (*Employee, error)
	// FindByIDForUpdate は社員行をロックした上で取得します。
	FindByIDForUpdate(ctx context.Context, id int64) (*Employee, error)
	ListAttendance(ctx context.Context, employeeID int64) ([]AttendanceRecord, error)
	ListMotivationActions(ctx context.Context, employeeID int64) ([]MotivationAction, error)
	FindLatestApplication(ctx context.Context, userID int64) (*ApplicationSnapshot, error)
	// Deactivate は在籍中の社員のみを非在籍に変更します。対象がなければ ErrEmployeeAlreadyInactive を返します。
	Deactivate(ctx context.Context, id int64) error
	InsertFiring(ctx context.Context, record *FiringRecord) (*FiringRecord, error)
}
