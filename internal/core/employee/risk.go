package employee

import "time"

const (
	absencePenalty          = 10
	latenessPenalty         = 5
	noRecentMotivationScore = 15
	neverPromotedScore      = 10
	motivationWindow        = 90 * 24 * time.Hour

	// MinRiskScore と MaxRiskScore はリスクスコアの値域です。
	MinRiskScore = 0
	MaxRiskScore = 100
)

// ComputeRiskScore は勤怠履歴とモチベーション施策履歴から解雇リスクスコアを算出します。
// now を基準に直近 90 日の施策有無を判定し、結果は [MinRiskScore, MaxRiskScore] に丸められます。
func ComputeRiskScore(attendance []AttendanceRecord, actions []MotivationAction, now time.Time) int {
	var absences, lates int
	for _, rec := range attendance {
		switch rec.Status {
		case AttendanceAbsent:
			absences++
		case AttendanceLate:
			lates++
		}
	}

	score := absences*absencePenalty + lates*latenessPenalty

	windowStart := now.Add(-motivationWindow)
	var recentlyMotivated, promoted bool
	for _, action := range actions {
		if !action.CreatedAt.Before(windowStart) {
			recentlyMotivated = true
		}
		if action.ActionType == ActionTypePromotion {
			promoted = true
		}
	}

	if !recentlyMotivated {
		score += noRecentMotivationScore
	}
	if !promoted {
		score += neverPromotedScore
	}

	return clampScore(score)
}

func clampScore(score int) int {
	if score < MinRiskScore {
		return MinRiskScore
	}
	if score > MaxRiskScore {
		return MaxRiskScore
	}
	return score
}
