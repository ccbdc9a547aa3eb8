package employee

import (
	"testing"
	"time"
)

var scoreNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func attendanceOf(statuses ...AttendanceStatus) []AttendanceRecord {
	records := make([]AttendanceRecord, 0, len(statuses))
	for i, st := range statuses {
		records = append(records, AttendanceRecord{ID: int64(i + 1), EmployeeID: 1, Status: st})
	}
	return records
}

func repeatStatus(st AttendanceStatus, n int) []AttendanceStatus {
	out := make([]AttendanceStatus, n)
	for i := range out {
		out[i] = st
	}
	return out
}

func daysAgo(days int) time.Time {
	return scoreNow.AddDate(0, 0, -days)
}

func TestComputeRiskScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		attendance []AttendanceRecord
		actions    []MotivationAction
		want       int
	}{
		{
			name: "no history",
			want: 25,
		},
		{
			name:       "absences lates with recent motivation and old promotion",
			attendance: attendanceOf(AttendanceAbsent, AttendanceAbsent, AttendanceLate, AttendancePresent),
			actions: []MotivationAction{
				{ActionType: ActionTypePromotion, CreatedAt: scoreNow.AddDate(-5, 0, 0)},
				{ActionType: "bonus", CreatedAt: daysAgo(10)},
			},
			want: 25,
		},
		{
			name:       "stale motivation never promoted",
			attendance: attendanceOf(AttendancePresent, AttendanceExcused),
			actions:    []MotivationAction{{ActionType: "conversation", CreatedAt: daysAgo(200)}},
			want:       25,
		},
		{
			name:       "clamped at upper bound",
			attendance: attendanceOf(repeatStatus(AttendanceAbsent, 11)...),
			actions: []MotivationAction{
				{ActionType: ActionTypePromotion, CreatedAt: daysAgo(1)},
			},
			want: 100,
		},
		{
			name:    "recent promotion removes both penalties",
			actions: []MotivationAction{{ActionType: ActionTypePromotion, CreatedAt: daysAgo(30)}},
			want:    0,
		},
		{
			name:    "action exactly at window start counts as recent",
			actions: []MotivationAction{{ActionType: "bonus", CreatedAt: scoreNow.Add(-motivationWindow)}},
			want:    10,
		},
		{
			name:    "action just outside window is stale",
			actions: []MotivationAction{{ActionType: "bonus", CreatedAt: scoreNow.Add(-motivationWindow - time.Second)}},
			want:    25,
		},
		{
			name:       "unknown status is ignored",
			attendance: attendanceOf("sick", "remote"),
			want:       25,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ComputeRiskScore(tt.attendance, tt.actions, scoreNow)
			if got != tt.want {
				t.Fatalf("expected score %d, got %d", tt.want, got)
			}
		})
	}
}

func TestComputeRiskScore_MonotonicInAbsencesAndLates(t *testing.T) {
	t.Parallel()

	actions := []MotivationAction{{ActionType: "bonus", CreatedAt: daysAgo(5)}}

	prev := ComputeRiskScore(nil, actions, scoreNow)
	for n := 1; n <= 30; n++ {
		got := ComputeRiskScore(attendanceOf(repeatStatus(AttendanceAbsent, n)...), actions, scoreNow)
		if got < prev {
			t.Fatalf("score decreased from %d to %d at %d absences", prev, got, n)
		}
		prev = got
	}

	prev = ComputeRiskScore(nil, actions, scoreNow)
	for n := 1; n <= 30; n++ {
		got := ComputeRiskScore(attendanceOf(repeatStatus(AttendanceLate, n)...), actions, scoreNow)
		if got < prev {
			t.Fatalf("score decreased from %d to %d at %d lates", prev, got, n)
		}
		prev = got
	}
}

func TestComputeRiskScore_AlwaysWithinBounds(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 9, 10, 50, 10_000} {
		history := append(attendanceOf(repeatStatus(AttendanceAbsent, n)...), attendanceOf(repeatStatus(AttendanceLate, n)...)...)
		got := ComputeRiskScore(history, nil, scoreNow)
		if got < MinRiskScore || got > MaxRiskScore {
			t.Fatalf("score %d out of bounds for n=%d", got, n)
		}
	}
}
