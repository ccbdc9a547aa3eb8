package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/codex-hr-roster/internal/core/employee"
	"github.com/ogurasousui/codex-hr-roster/internal/metrics"
	pgdb "github.com/ogurasousui/codex-hr-roster/internal/platform/db/postgres"
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"

	firingsEmployeeUniqueConstraint = "firings_employee_id_key"
)

const employeeColumns = `id, user_id, full_name, profession, is_active, photo_path, passport_scan_path, created_at`

// EmployeeRepository は PostgreSQL を利用した社員関連レコードへのアクセス実装です。
type EmployeeRepository struct {
	pool    pgdb.Queryer
	metrics *metrics.Metrics
}

// NewEmployeeRepository は EmployeeRepository を生成します。m は nil でも構いません。
func NewEmployeeRepository(pool pgdb.Queryer, m *metrics.Metrics) *EmployeeRepository {
	return &EmployeeRepository{pool: pool, metrics: m}
}

// ListActive は在籍中の社員を ID 昇順で取得します。
func (r *EmployeeRepository) ListActive(ctx context.Context) ([]*employee.Employee, error) {
	defer r.metrics.ObserveQuery("list_active_employees", time.Now())

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT `+employeeColumns+`
          FROM employees
         WHERE is_active
         ORDER BY id
    `)
	if err != nil {
		return nil, translateEmployeePgError(err)
	}
	defer rows.Close()

	employees := make([]*employee.Employee, 0)
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, translateEmployeePgError(err)
		}
		employees = append(employees, emp)
	}

	if err := rows.Err(); err != nil {
		return nil, translateEmployeePgError(err)
	}

	return employees, nil
}

// FindByID は ID で社員を取得します。在籍状態は問いません。
func (r *EmployeeRepository) FindByID(ctx context.Context, id int64) (*employee.Employee, error) {
	defer r.metrics.ObserveQuery("find_employee", time.Now())

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT `+employeeColumns+`
          FROM employees
         WHERE id = $1
    `, id)

	found, err := scanEmployee(row)
	if err != nil {
		return nil, translateEmployeePgError(err)
	}
	return found, nil
}

// FindByIDForUpdate は社員行を FOR UPDATE でロックして取得します。トランザクション内で呼び出してください。
func (r *EmployeeRepository) FindByIDForUpdate(ctx context.Context, id int64) (*employee.Employee, error) {
	defer r.metrics.ObserveQuery("lock_employee", time.Now())

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT `+employeeColumns+`
          FROM employees
         WHERE id = $1
           FOR UPDATE
    `, id)

	found, err := scanEmployee(row)
	if err != nil {
		return nil, translateEmployeePgError(err)
	}
	return found, nil
}

// ListAttendance は社員の全勤怠記録を取得します。
func (r *EmployeeRepository) ListAttendance(ctx context.Context, employeeID int64) ([]employee.AttendanceRecord, error) {
	defer r.metrics.ObserveQuery("list_attendance", time.Now())

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT id, employee_id, status, recorded_at
          FROM attendance
         WHERE employee_id = $1
         ORDER BY recorded_at, id
    `, employeeID)
	if err != nil {
		return nil, translateEmployeePgError(err)
	}
	defer rows.Close()

	records := make([]employee.AttendanceRecord, 0)
	for rows.Next() {
		var (
			rec    employee.AttendanceRecord
			status string
		)
		if err := rows.Scan(&rec.ID, &rec.EmployeeID, &status, &rec.RecordedAt); err != nil {
			return nil, translateEmployeePgError(err)
		}
		rec.Status = employee.AttendanceStatus(status)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, translateEmployeePgError(err)
	}

	return records, nil
}

// ListMotivationActions は社員の全モチベーション施策を取得します。
func (r *EmployeeRepository) ListMotivationActions(ctx context.Context, employeeID int64) ([]employee.MotivationAction, error) {
	defer r.metrics.ObserveQuery("list_motivation_actions", time.Now())

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT id, employee_id, action_type, created_by, created_at
          FROM motivation_actions
         WHERE employee_id = $1
         ORDER BY created_at, id
    `, employeeID)
	if err != nil {
		return nil, translateEmployeePgError(err)
	}
	defer rows.Close()

	actions := make([]employee.MotivationAction, 0)
	for rows.Next() {
		var (
			action    employee.MotivationAction
			createdBy sql.NullInt64
		)
		if err := rows.Scan(&action.ID, &action.EmployeeID, &action.ActionType, &createdBy, &action.CreatedAt); err != nil {
			return nil, translateEmployeePgError(err)
		}
		action.CreatedBy = nullableInt64(createdBy)
		actions = append(actions, action)
	}

	if err := rows.Err(); err != nil {
		return nil, translateEmployeePgError(err)
	}

	return actions, nil
}

// FindLatestApplication はユーザーの最新の応募情報を取得します。
func (r *EmployeeRepository) FindLatestApplication(ctx context.Context, userID int64) (*employee.ApplicationSnapshot, error) {
	defer r.metrics.ObserveQuery("find_latest_application", time.Now())

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT user_id, age, experience, applied_at
          FROM applications
         WHERE user_id = $1
         ORDER BY applied_at DESC
         LIMIT 1
    `, userID)

	var (
		snapshot   employee.ApplicationSnapshot
		age        sql.NullInt64
		experience sql.NullInt64
	)
	if err := row.Scan(&snapshot.UserID, &age, &experience, &snapshot.AppliedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrApplicationNotFound
		}
		return nil, translateEmployeePgError(err)
	}

	snapshot.Age = nullableInt(age)
	snapshot.ExperienceYears = nullableInt(experience)
	return &snapshot, nil
}

// Deactivate は在籍中の社員を非在籍に変更します。
func (r *EmployeeRepository) Deactivate(ctx context.Context, id int64) error {
	defer r.metrics.ObserveQuery("deactivate_employee", time.Now())

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, `UPDATE employees SET is_active = FALSE WHERE id = $1 AND is_active`, id)
	if err != nil {
		return translateEmployeePgError(err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeAlreadyInactive
	}
	return nil
}

// InsertFiring は解雇記録を追加します。
func (r *EmployeeRepository) InsertFiring(ctx context.Context, record *employee.FiringRecord) (*employee.FiringRecord, error) {
	defer r.metrics.ObserveQuery("insert_firing", time.Now())

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO firings (employee_id, reason, fired_by, fired_at)
        VALUES ($1, $2, $3, $4)
        RETURNING id, employee_id, reason, fired_by, fired_at
    `,
		record.EmployeeID,
		record.Reason,
		record.FiredBy,
		record.FiredAt,
	)

	var created employee.FiringRecord
	if err := row.Scan(&created.ID, &created.EmployeeID, &created.Reason, &created.FiredBy, &created.FiredAt); err != nil {
		return nil, translateEmployeePgError(err)
	}
	return &created, nil
}

func scanEmployee(row pgx.Row) (*employee.Employee, error) {
	var (
		emp          employee.Employee
		userID       sql.NullInt64
		photoPath    sql.NullString
		passportPath sql.NullString
	)

	if err := row.Scan(
		&emp.ID,
		&userID,
		&emp.FullName,
		&emp.Profession,
		&emp.Active,
		&photoPath,
		&passportPath,
		&emp.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, err
	}

	emp.UserID = nullableInt64(userID)
	emp.PhotoPath = nullableString(photoPath)
	emp.PassportScanPath = nullableString(passportPath)
	return &emp, nil
}

func translateEmployeePgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, employee.ErrEmployeeNotFound) || errors.Is(err, pgx.ErrNoRows) {
		return employee.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			if pgErr.ConstraintName == firingsEmployeeUniqueConstraint {
				return employee.ErrEmployeeAlreadyInactive
			}
		case foreignKeyViolationCode:
			return employee.ErrEmployeeNotFound
		}
	}

	return fmt.Errorf("%w: %w", employee.ErrDataUnavailable, err)
}

func nullableInt64(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	value := v.Int64
	return &value
}

func nullableInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	value := int(v.Int64)
	return &value
}

func nullableString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	value := v.String
	return &value
}
