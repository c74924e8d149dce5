package scoring

import (
	"github.com/m-mizutani/goerr/v2"

	"cyberscore-engine/internal/model"
)

// SectionIDs lists the scored sections in order. Section "A" (general
// information) is informational only and never scored.
var SectionIDs = []string{"B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L"}

// ErrMissingAnswer is returned when a required question key is absent from
// the answer map. Defaulting absent answers is a collection-boundary
// concern; the scoring functions themselves never guess.
var ErrMissingAnswer = goerr.New("required answer missing")

type item struct {
	key   string
	score func(model.Answer) float64
}

func yesNoItem(key string) item {
	return item{key: key, score: func(a model.Answer) float64 { return YesNo(a.Option) }}
}

func yesNoWeightedItem(key string, yesValue, noValue float64) item {
	return item{key: key, score: func(a model.Answer) float64 {
		return YesNoWeighted(a.Option, yesValue, noValue)
	}}
}

func frequencyItem(key string) item {
	return item{key: key, score: func(a model.Answer) float64 { return Frequency(a.Option) }}
}

func backupItem(key string) item {
	return item{key: key, score: func(a model.Answer) float64 { return BackupFrequency(a.Option) }}
}

func setItem(key string, score func([]string) float64) item {
	return item{key: key, score: func(a model.Answer) float64 {
		// A single-choice answer where a list is expected floors the item,
		// same as an unrecognized option. Scoring the nil Options slice
		// instead would read the malformed answer as "nothing selected",
		// which is the best score for B and F.
		if !a.Multi {
			return 0
		}
		return score(a.Options)
	}}
}

// sectionItems fixes, per section, the questions that feed it and the mapper
// each one runs through. A section's score is the unweighted mean of its
// item scores; B, F and G are single-mapper sections.
//
// Incident history and supplier access invert polarity: a "No" is the good
// answer there, and a "Yes" degrades gracefully (40/30/70) rather than
// zeroing the item.
var sectionItems = map[string][]item{
	"B": {setItem("B_types", DataSensitivity)},
	"C": {
		yesNoItem("C_infosec_policy"),
		yesNoItem("C_privacy_policy"),
		yesNoItem("C_training"),
		yesNoItem("C_encryption"),
		yesNoItem("C_access_revocation"),
		yesNoItem("C_pentesting"),
		yesNoItem("C_patch_management"),
	},
	"D": {
		yesNoItem("D_firewall_ids"),
		yesNoItem("D_malware_protection"),
		yesNoItem("D_mfa"),
		yesNoItem("D_endpoint_security"),
		backupItem("D_backup_freq"),
	},
	"E": {
		yesNoItem("E_ir_plan"),
		yesNoWeightedItem("E_incidents_5y", 40, 100),
		yesNoWeightedItem("E_potential_claims", 30, 100),
	},
	"F": {setItem("F_sectors", SectorInherentRisk)},
	"G": {setItem("G_options", CoverageBreadth)},
	"H": {
		yesNoWeightedItem("H_supplier_access", 70, 100),
		yesNoItem("H_thirdparty_policy"),
		yesNoItem("H_contract_clauses"),
		yesNoItem("H_update_policy"),
	},
	"I": {
		yesNoItem("I_dashboards"),
		frequencyItem("I_reporting_freq"),
	},
	"J": {
		yesNoItem("J_external_audit"),
		yesNoItem("J_results_to_management"),
	},
	"K": {
		yesNoItem("K_risky_behaviour_policy"),
		yesNoItem("K_phishing_sims"),
		frequencyItem("K_phishing_freq"),
	},
	"L": {
		yesNoItem("L_byod_policy"),
		yesNoItem("L_personal_device_security"),
	},
}

// RequiredKeys returns every question key the scoring pass needs, in
// section order.
func RequiredKeys() []string {
	var keys []string
	for _, id := range SectionIDs {
		for _, it := range sectionItems[id] {
			keys = append(keys, it.key)
		}
	}
	return keys
}

// ComputeSectionScores scores every section B..L from the answer map. Every
// required key must be present; the first absent key fails the whole pass
// with the key named.
func ComputeSectionScores(answers model.AnswerMap) (map[string]float64, error) {
	scores := make(map[string]float64, len(SectionIDs))
	for _, id := range SectionIDs {
		items := sectionItems[id]
		total := 0.0
		for _, it := range items {
			a, ok := answers[it.key]
			if !ok {
				return nil, goerr.Wrap(ErrMissingAnswer, "cannot score section",
					goerr.V("section", id), goerr.V("key", it.key))
			}
			total += it.score(a)
		}
		scores[id] = total / float64(len(items))
	}
	return scores, nil
}
