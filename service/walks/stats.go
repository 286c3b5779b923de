package walks

import (
	"math"
	"time"

	"github.com/Team-lead001/silver-walks-backend/cmd/models"
)

// WalkStatistics summarises an elderly's walk history. Numeric aggregates
// cover completed sessions only; the completion rate is taken over every
// session in the period regardless of status.
type WalkStatistics struct {
	TotalWalks     int     `json:"total_walks"`
	TotalDuration  int     `json:"total_duration"`
	TotalSteps     int     `json:"total_steps"`
	TotalDistance  int     `json:"total_distance"`
	AvgDuration    int     `json:"avg_duration"`
	AvgSteps       int     `json:"avg_steps"`
	AvgDistance    float64 `json:"avg_distance"`
	AvgRating      float64 `json:"avg_rating"`
	CompletionRate float64 `json:"completion_rate"`
}

// PeriodStart resolves a statistics period filter to its inclusive lower
// bound. "month" starts on the 1st of the current calendar month, "year" on
// January 1st. "all-time" and the empty string apply no bound.
func PeriodStart(period string, now time.Time) (time.Time, bool) {
	switch period {
	case "month":
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), true
	case "year":
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()), true
	default:
		return time.Time{}, false
	}
}

// ComputeStatistics aggregates a session set that has already been filtered
// to the requested elderly and period.
//
// Per-session duration prefers the actual start/end timestamps when both are
// present and falls back to the planned duration otherwise; sessions logged
// before telemetry capture existed rely on that fallback. The rating average
// counts only completed sessions whose nurse feedback carries a rating, so a
// missing rating never drags the average toward zero. With no completed
// sessions every metric is zero.
func ComputeStatistics(sessions []models.WalkSession) WalkStatistics {
	var completed []models.WalkSession
	for _, s := range sessions {
		if s.Status == models.WalkCompleted {
			completed = append(completed, s)
		}
	}

	if len(completed) == 0 {
		return WalkStatistics{}
	}

	var totalDuration float64
	var totalSteps, totalDistance int
	var ratingSum float64
	var rated int

	for _, s := range completed {
		if s.ActualStartTime != nil && s.ActualEndTime != nil {
			totalDuration += s.ActualEndTime.Sub(*s.ActualStartTime).Minutes()
		} else {
			totalDuration += float64(s.DurationMinutes)
		}
		if s.StepsCount != nil {
			totalSteps += *s.StepsCount
		}
		if s.DistanceMeters != nil {
			totalDistance += *s.DistanceMeters
		}
		if s.NurseFeedback != nil && s.NurseFeedback.Rating != nil {
			ratingSum += *s.NurseFeedback.Rating
			rated++
		}
	}

	total := len(completed)
	stats := WalkStatistics{
		TotalWalks:    total,
		TotalDuration: int(math.Round(totalDuration)),
		TotalSteps:    totalSteps,
		TotalDistance: totalDistance,
		AvgDuration:   int(math.Round(totalDuration / float64(total))),
		AvgSteps:      int(math.Round(float64(totalSteps) / float64(total))),
		AvgDistance:   round(float64(totalDistance)/float64(total), 2),
		CompletionRate: round(
			float64(total)/float64(len(sessions))*100, 1),
	}
	if rated > 0 {
		stats.AvgRating = round(ratingSum/float64(rated), 1)
	}
	return stats
}

func round(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}
