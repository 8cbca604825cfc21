package livecontext

// ArcPoint is one plotted risk reading: x spans the history evenly, y is
// inversely proportional to severity (high risk sits high on the chart),
// and Level keys the per-point colour bucket.
type ArcPoint struct {
	X     float64
	Y     float64
	Level RiskLevel
}

const arcMaxOrdinal = 3

// MoodArc lays the risk history out as polyline geometry inside a
// width×height box with the given padding. A single reading cannot show a
// trend, so fewer than two entries yield nil.
func MoodArc(history []RiskLevel, width, height, pad float64) []ArcPoint {
	if len(history) < 2 {
		return nil
	}

	step := (width - pad*2) / float64(len(history)-1)
	points := make([]ArcPoint, 0, len(history))
	for i, level := range history {
		v := float64(level.Ordinal())
		points = append(points, ArcPoint{
			X:     pad + float64(i)*step,
			Y:     height - pad - (v/arcMaxOrdinal)*(height-pad*2),
			Level: level,
		})
	}
	return points
}
