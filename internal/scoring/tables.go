package scoring

// Fixed lookup tables for the ordinal mappers. Kept as data rather than
// chained conditionals so they stay auditable and testable on their own.

// frequencyScores maps reporting / simulation cadence to a maturity score.
// Higher frequency means higher score. Unrecognized values score 0.
var frequencyScores = map[string]float64{
	"Ad hoc / not defined": 20,
	"Annually":             40,
	"Quarterly":            70,
	"Monthly":              90,
	"Weekly or more often": 100,
}

// backupScores maps backup cadence to a score. Unrecognized values score 0.
var backupScores = map[string]float64{
	"No regular backups":  0,
	"Monthly":             40,
	"Weekly":              70,
	"Daily or more often": 100,
}

// sectorRiskFactors holds the inherent risk factor per sector of activity,
// in [0,1] with 1 meaning very high risk. Sectors not listed here (including
// "Other") fall back to defaultSectorRiskFactor.
var sectorRiskFactors = map[string]float64{
	"Water and Energy (electricity, gas, oil, water)":                         0.9,
	"Financial institution (bank, insurance, microfinance, collection, etc.)": 0.9,
	"Sports betting / gambling":                                               0.8,
	"Telecommunications / new technologies":                                   0.85,
	"Healthcare / medical / provident fund":                                   0.9,
	"Commerce / agro-industry":                                                0.7,
}

const defaultSectorRiskFactor = 0.6

// Universe sizes for the set-based mappers.
const (
	dataCategoryCount   = 6
	coverageOptionCount = 7
)
