package scoring

import (
	"math"

	"github.com/m-mizutani/goerr/v2"
)

// Weights maps each scored section to its share of the overall score.
type Weights map[string]float64

// weightTolerance bounds the acceptable floating drift of the weight sum.
const weightTolerance = 0.001

// DefaultWeights returns the canonical section weight table. The sum is
// validated once at startup, never silently renormalized.
func DefaultWeights() Weights {
	return Weights{
		"B": 0.08, // data & sensitive information: exposure, not control
		"C": 0.25, // organisation & security policies: foundational
		"D": 0.20, // infrastructure & IT controls
		"E": 0.15, // incident response & history
		"F": 0.03, // sector exposure: inherent risk, not posture
		"G": 0.02, // coverage requested: awareness proxy
		"H": 0.10, // third-party & supplier security
		"I": 0.05, // security indicators & KPIs
		"J": 0.05, // tests & audits
		"K": 0.05, // awareness & security culture
		"L": 0.02, // mobile devices & BYOD
	}
}

// Sum returns the total of all weights.
func (w Weights) Sum() float64 {
	total := 0.0
	for _, v := range w {
		total += v
	}
	return total
}

// Validate checks the table covers exactly the scored sections, carries no
// negative weight, and sums to 1.0 within tolerance. A failure here is a
// configuration error and should abort startup.
func (w Weights) Validate() error {
	for _, id := range SectionIDs {
		v, ok := w[id]
		if !ok {
			return goerr.New("weight table missing section", goerr.V("section", id))
		}
		if v < 0 {
			return goerr.New("negative section weight",
				goerr.V("section", id), goerr.V("weight", v))
		}
	}
	if len(w) != len(SectionIDs) {
		return goerr.New("weight table has unknown sections",
			goerr.V("configured", len(w)), goerr.V("expected", len(SectionIDs)))
	}
	if sum := w.Sum(); math.Abs(sum-1.0) > weightTolerance {
		return goerr.New("section weights must sum to 1.0", goerr.V("sum", sum))
	}
	return nil
}

// ComputeOverallScore combines the section scores into one weighted score in
// [0,100]. A section absent from the input is a reportable error rather than
// a silent zero contribution, which would bias the score downward without
// signaling the caller.
func ComputeOverallScore(sectionScores map[string]float64, weights Weights) (float64, error) {
	total := 0.0
	for _, id := range SectionIDs {
		score, ok := sectionScores[id]
		if !ok {
			return 0, goerr.New("section score missing", goerr.V("section", id))
		}
		total += score * weights[id]
	}
	return total, nil
}
