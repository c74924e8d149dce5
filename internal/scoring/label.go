package scoring

// Risk labels, ordered strongest posture first.
const (
	LabelStrong   = "Strong cyber security posture"
	LabelModerate = "Moderate cyber security posture"
	LabelWeak     = "Weak cyber security posture"
	LabelHighRisk = "High cyber risk / very weak posture"
)

// RiskLabel maps an overall score to its qualitative band. Bands are
// right-open and a boundary value belongs to the higher band. Scores outside
// [0,100] are not rejected; they just land in the outer bands.
func RiskLabel(score float64) string {
	switch {
	case score >= 80:
		return LabelStrong
	case score >= 60:
		return LabelModerate
	case score >= 40:
		return LabelWeak
	default:
		return LabelHighRisk
	}
}
