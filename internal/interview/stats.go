package interview

// CategoryStats is the per-category slice of the interview statistics.
type CategoryStats struct {
	Total    int `json:"total"`
	Asked    int `json:"asked"`
	Answered int `json:"answered"`
	Skipped  int `json:"skipped"`
}

// Stats is a pure projection over a session's plan and history. There are
// no hidden counters anywhere else, so these numbers can never drift from
// the conversation record.
type Stats struct {
	Total        int                        `json:"total"`
	Asked        int                        `json:"asked"`
	Answered     int                        `json:"answered"`
	Skipped      int                        `json:"skipped"`
	ByCategory   map[Category]CategoryStats `json:"by_category"`
	ResponseRate float64                    `json:"response_rate"`
	SkipRate     float64                    `json:"skip_rate"`
}

// Summarize derives statistics from the session at any point: all zeros
// before start, asked == total after completion, and consistent with the
// history in between. Calling it twice without intervening mutation
// yields identical results.
func Summarize(s *Session) Stats {
	plan := s.Plan()
	history := s.History()

	stats := Stats{
		Total:      len(plan),
		Asked:      len(history),
		ByCategory: make(map[Category]CategoryStats),
	}

	for _, q := range plan {
		cs := stats.ByCategory[q.Category]
		cs.Total++
		stats.ByCategory[q.Category] = cs
	}

	for _, event := range history {
		cs := stats.ByCategory[event.Category]
		cs.Asked++
		switch event.Status {
		case StatusAnswered:
			stats.Answered++
			cs.Answered++
		case StatusSkipped:
			stats.Skipped++
			cs.Skipped++
		}
		stats.ByCategory[event.Category] = cs
	}

	if stats.Asked > 0 {
		stats.ResponseRate = float64(stats.Answered) / float64(stats.Asked)
		stats.SkipRate = float64(stats.Skipped) / float64(stats.Asked)
	}
	return stats
}
