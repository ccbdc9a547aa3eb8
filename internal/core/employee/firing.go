package employee

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// FireInput は解雇時の入力です。
type FireInput struct {
	EmployeeID   int64
	Reason       string
	ActingUserID int64
}

// Fire は社員を非在籍に変更し、解雇記録を同一トランザクションで追加します。
// 既に解雇済みの社員に対しては ErrEmployeeAlreadyInactive を返します。
func (s *Service) Fire(ctx context.Context, in FireInput) (*FiringRecord, error) {
	if in.EmployeeID <= 0 {
		return nil, fmt.Errorf("employee_id: %w", ErrInvalidID)
	}

	reason := strings.TrimSpace(in.Reason)
	if reason == "" {
		return nil, ErrInvalidReason
	}

	if in.ActingUserID <= 0 {
		return nil, ErrInvalidActingUserID
	}

	var fired *FiringRecord
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		emp, err := s.repo.FindByIDForUpdate(txCtx, in.EmployeeID)
		if err != nil {
			return err
		}
		if !emp.Active {
			return ErrEmployeeAlreadyInactive
		}

		if err := s.repo.Deactivate(txCtx, emp.ID); err != nil {
			return err
		}

		record, err := s.repo.InsertFiring(txCtx, &FiringRecord{
			EmployeeID: emp.ID,
			Reason:     reason,
			FiredBy:    in.ActingUserID,
			FiredAt:    s.clock.Now(),
		})
		if err != nil {
			return err
		}

		fired = record
		return nil
	}); err != nil {
		return nil, dataUnavailable(err)
	}

	s.log.InfoContext(ctx, "employee fired",
		slog.Int64("employee_id", fired.EmployeeID),
		slog.Int64("fired_by", fired.FiredBy),
		slog.Int64("firing_id", fired.ID),
	)

	return fired, nil
}
