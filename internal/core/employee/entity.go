package employee

import "time"

// AttendanceStatus は勤怠記録の区分を表します。
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
	AttendanceExcused AttendanceStatus = "excused"
)

// ActionTypePromotion は昇進を表すモチベーション施策の種別です。
const ActionTypePromotion = "promotion"

// Employee は社員エンティティです。
// Active が false の社員は解雇済みで、物理削除は行いません。
type Employee struct {
	ID               int64
	UserID           *int64
	FullName         string
	Profession       string
	Active           bool
	PhotoPath        *string
	PassportScanPath *string
	CreatedAt        time.Time
}

// AttendanceRecord は社員一人分の勤怠記録です。追記のみで更新されません。
type AttendanceRecord struct {
	ID         int64
	EmployeeID int64
	Status     AttendanceStatus
	RecordedAt time.Time
}

// MotivationAction は社員に対して実施したモチベーション施策の記録です。
type MotivationAction struct {
	ID         int64
	EmployeeID int64
	ActionType string
	CreatedBy  *int64
	CreatedAt  time.Time
}

// FiringRecord は解雇の監査記録です。
type FiringRecord struct {
	ID         int64
	EmployeeID int64
	Reason     string
	FiredBy    int64
	FiredAt    time.Time
}

// ApplicationSnapshot は採用応募から得られる社員情報のスナップショットです。
type ApplicationSnapshot struct {
	UserID          int64
	Age             *int
	ExperienceYears *int
	AppliedAt       time.Time
}

// RosterEntry はリスクスコア付きの社員一覧の要素です。
type RosterEntry struct {
	Employee  *Employee
	RiskScore int
}

// EmployeeDetail は社員詳細画面向けの読み取り専用ビューです。
type EmployeeDetail struct {
	Employee        *Employee
	Age             *int
	ExperienceYears *int
	HireDate        *time.Time
}
