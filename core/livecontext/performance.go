package livecontext

import "sort"

// TechniqueCount pairs a coached technique with how often it was used.
type TechniqueCount struct {
	Technique string
	Count     int
}

// PerformanceSummary aggregates a session's coaching log for the end-of-session
// volunteer report.
type PerformanceSummary struct {
	Exchanges        int
	Good             int
	NeedsImprovement int
	Caution          int
	Techniques       []TechniqueCount
}

const maxReportedTechniques = 5

// Summarize rolls the coaching log up into score counts and the most used
// techniques. An empty log yields a zero summary (nothing to report).
func Summarize(log []Coaching) PerformanceSummary {
	summary := PerformanceSummary{Exchanges: len(log)}
	if len(log) == 0 {
		return summary
	}

	techniques := map[string]int{}
	for _, entry := range log {
		switch entry.Score {
		case ScoreGood:
			summary.Good++
		case ScoreNeedsImprovement:
			summary.NeedsImprovement++
		case ScoreCaution:
			summary.Caution++
		}
		if entry.Technique != "" {
			techniques[entry.Technique]++
		}
	}

	for technique, count := range techniques {
		summary.Techniques = append(summary.Techniques, TechniqueCount{Technique: technique, Count: count})
	}
	sort.SliceStable(summary.Techniques, func(i, j int) bool {
		if summary.Techniques[i].Count != summary.Techniques[j].Count {
			return summary.Techniques[i].Count > summary.Techniques[j].Count
		}
		return summary.Techniques[i].Technique < summary.Techniques[j].Technique
	})
	if len(summary.Techniques) > maxReportedTechniques {
		summary.Techniques = summary.Techniques[:maxReportedTechniques]
	}

	return summary
}

// Percent returns n as a whole percentage of the exchange count.
func (s PerformanceSummary) Percent(n int) int {
	if s.Exchanges == 0 {
		return 0
	}
	return int(float64(n)/float64(s.Exchanges)*100 + 0.5)
}
