package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"
)

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// TransactionManager はトランザクション制御の抽象化です。
type TransactionManager interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
	WithinReadWrite(ctx context.Context, fn func(context.Context) error) error
}

type noopTransactionManager struct{}

func (noopTransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

func (noopTransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

// SortOrder はリスクスコアによる並び順です。
type SortOrder string

const (
	SortDescending SortOrder = "desc"
	SortAscending  SortOrder = "asc"
)

// Service は社員一覧・詳細・解雇に関するユースケースをまとめます。
type Service struct {
	repo  Repository
	clock Clock
	tx    TransactionManager
	log   *slog.Logger
}

// UseCase は社員ユースケースの公開インターフェースです。
type UseCase interface {
	ListActive(ctx context.Context, in ListActiveInput) ([]RosterEntry, error)
	GetEmployeeDetail(ctx context.Context, in GetEmployeeDetailInput) (*EmployeeDetail, error)
	ScoreEmployee(ctx context.Context, in ScoreEmployeeInput) (int, error)
	Fire(ctx context.Context, in FireInput) (*FiringRecord, error)
}

// NewService は Service を生成します。
func NewService(repo Repository, clock Clock, tx TransactionManager, log *slog.Logger) *Service {
	if clock == nil {
		clock = realClock{}
	}
	if tx == nil {
		tx = noopTransactionManager{}
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Service{repo: repo, clock: clock, tx: tx, log: log}
}

// ListActiveInput は在籍社員一覧取得時の入力です。
type ListActiveInput struct {
	Order SortOrder
}

// GetEmployeeDetailInput は社員詳細取得時の入力です。
type GetEmployeeDetailInput struct {
	ID int64
}

// ScoreEmployeeInput はリスクスコア算出時の入力です。
type ScoreEmployeeInput struct {
	ID int64
}

// ListActive は在籍中の社員をリスクスコア付きで返します。
// スコアは呼び出しごとに再計算し、同点の場合は取得順を維持します。
func (s *Service) ListActive(ctx context.Context, in ListActiveInput) ([]RosterEntry, error) {
	order, err := normalizeSortOrder(in.Order)
	if err != nil {
		return nil, err
	}

	var roster []RosterEntry
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		employees, err := s.repo.ListActive(txCtx)
		if err != nil {
			return err
		}

		now := s.clock.Now()
		entries := make([]RosterEntry, 0, len(employees))
		for _, emp := range employees {
			score, err := s.scoreWithin(txCtx, emp.ID, now)
			if err != nil {
				return err
			}
			entries = append(entries, RosterEntry{Employee: emp, RiskScore: score})
		}

		roster = entries
		return nil
	}); err != nil {
		return nil, dataUnavailable(err)
	}

	slices.SortStableFunc(roster, func(a, b RosterEntry) int {
		if order == SortAscending {
			return a.RiskScore - b.RiskScore
		}
		return b.RiskScore - a.RiskScore
	})

	return roster, nil
}

// ScoreEmployee は指定社員の現在のリスクスコアを算出します。
func (s *Service) ScoreEmployee(ctx context.Context, in ScoreEmployeeInput) (int, error) {
	if in.ID <= 0 {
		return 0, fmt.Errorf("id: %w", ErrInvalidID)
	}

	var score int
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		if _, err := s.repo.FindByID(txCtx, in.ID); err != nil {
			return err
		}
		result, err := s.scoreWithin(txCtx, in.ID, s.clock.Now())
		if err != nil {
			return err
		}
		score = result
		return nil
	}); err != nil {
		return 0, dataUnavailable(err)
	}

	return score, nil
}

// GetEmployeeDetail は社員と最新の応募情報を結合した詳細を返します。
// 解雇済みの社員も参照できます。
func (s *Service) GetEmployeeDetail(ctx context.Context, in GetEmployeeDetailInput) (*EmployeeDetail, error) {
	if in.ID <= 0 {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	var detail *EmployeeDetail
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		emp, err := s.repo.FindByID(txCtx, in.ID)
		if err != nil {
			return err
		}

		result := &EmployeeDetail{Employee: emp}
		if emp.UserID != nil {
			app, err := s.repo.FindLatestApplication(txCtx, *emp.UserID)
			switch {
			case errors.Is(err, ErrApplicationNotFound):
			case err != nil:
				return err
			default:
				result.Age = app.Age
				result.ExperienceYears = app.ExperienceYears
				hired := app.AppliedAt
				result.HireDate = &hired
			}
		}

		detail = result
		return nil
	}); err != nil {
		return nil, dataUnavailable(err)
	}

	return detail, nil
}

func (s *Service) scoreWithin(ctx context.Context, employeeID int64, now time.Time) (int, error) {
	attendance, err := s.repo.ListAttendance(ctx, employeeID)
	if err != nil {
		return 0, err
	}
	actions, err := s.repo.ListMotivationActions(ctx, employeeID)
	if err != nil {
		return 0, err
	}
	return ComputeRiskScore(attendance, actions, now), nil
}

func normalizeSortOrder(raw SortOrder) (SortOrder, error) {
	switch SortOrder(strings.ToLower(strings.TrimSpace(string(raw)))) {
	case "", SortDescending:
		return SortDescending, nil
	case SortAscending:
		return SortAscending, nil
	default:
		return "", ErrInvalidSortOrder
	}
}

// dataUnavailable はドメインエラー以外の失敗を ErrDataUnavailable として包みます。
func dataUnavailable(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrDataUnavailable),
		errors.Is(err, ErrEmployeeNotFound),
		errors.Is(err, ErrEmployeeAlreadyInactive),
		errors.Is(err, ErrInvalidID),
		errors.Is(err, ErrInvalidReason),
		errors.Is(err, ErrInvalidActingUserID),
		errors.Is(err, ErrInvalidSortOrder):
		return err
	default:
		return fmt.Errorf("%w: %w", ErrDataUnavailable, err)
	}
}
