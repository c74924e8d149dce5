package scoring

// Answer-to-score mappers. Each is a pure, total function from one raw
// answer (or answer set) to a score in [0,100]. Malformed or unrecognized
// input degrades to the mapper's floor instead of failing.

// YesNo maps a Yes/No answer to a score with the default polarity:
// "Yes" scores 100 and anything else scores 0.
func YesNo(answer string) float64 {
	return YesNoWeighted(answer, 100, 0)
}

// YesNoWeighted maps a Yes/No answer with explicit values per polarity.
// Used where "Yes" is the worse answer (incident history, supplier access):
// the direction of "good" is captured at the call site instead of being
// buried in duplicated logic.
func YesNoWeighted(answer string, yesValue, noValue float64) float64 {
	if answer == "Yes" {
		return yesValue
	}
	return noValue
}

// Frequency scores a reporting or simulation cadence on the fixed ladder.
func Frequency(freq string) float64 {
	return frequencyScores[freq]
}

// BackupFrequency scores a backup cadence on the fixed ladder.
func BackupFrequency(freq string) float64 {
	return backupScores[freq]
}

// SectorInherentRisk converts the selected sectors of activity into a score.
// Each sector carries a risk factor in [0,1]; the score is
// (1 - average factor) * 100, floored at 0. An empty selection means no
// sensitive sector and is treated as low inherent risk, not missing data.
func SectorInherentRisk(sectors []string) float64 {
	if len(sectors) == 0 {
		return 100
	}
	sum := 0.0
	for _, s := range sectors {
		factor, ok := sectorRiskFactors[s]
		if !ok {
			factor = defaultSectorRiskFactor
		}
		sum += factor
	}
	avg := sum / float64(len(sectors))
	score := (1 - avg) * 100
	if score < 0 {
		return 0
	}
	return score
}

// DataSensitivity converts the selected sensitive-data categories into a
// score. More categories handled means greater exposure, hence a lower
// score: (1 - min(1, n/6)) * 100, saturating at 0 once all six are selected.
func DataSensitivity(categories []string) float64 {
	exposure := float64(len(categories)) / dataCategoryCount
	if exposure > 1 {
		exposure = 1
	}
	return (1 - exposure) * 100
}

// CoverageBreadth converts the requested coverage options into a score.
// Broader requested coverage is read as a proxy for risk awareness, so more
// selections score higher: (n/7) * 100. The opposite sign convention from
// DataSensitivity is intentional domain modeling.
func CoverageBreadth(options []string) float64 {
	n := float64(len(options))
	if n > coverageOptionCount {
		n = coverageOptionCount
	}
	return n / coverageOptionCount * 100
}
