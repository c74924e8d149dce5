package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cyberscore-engine/internal/model"
)

// strongAnswers returns an answer set with every control in place.
func strongAnswers() model.AnswerMap {
	answers := model.AnswerMap{
		"B_types":          model.MultiSelect(),
		"F_sectors":        model.MultiSelect(),
		"D_backup_freq":    model.Single("Daily or more often"),
		"I_reporting_freq": model.Single("Weekly or more often"),
		"K_phishing_freq":  model.Single("Weekly or more often"),
		"G_options": model.MultiSelect(
			"Business interruption",
			"Data restoration",
			"Ransomware / cyber extortion",
			"Social engineering fraud",
			"Regulatory fines",
			"Reputational harm",
			"Media liability",
		),
		// "No" is the good answer for these three.
		"E_incidents_5y":     model.Single("No"),
		"E_potential_claims": model.Single("No"),
		"H_supplier_access":  model.Single("No"),
	}
	for _, key := range []string{
		"C_infosec_policy", "C_privacy_policy", "C_training", "C_encryption",
		"C_access_revocation", "C_pentesting", "C_patch_management",
		"D_firewall_ids", "D_malware_protection", "D_mfa", "D_endpoint_security",
		"E_ir_plan",
		"H_thirdparty_policy", "H_contract_clauses", "H_update_policy",
		"I_dashboards",
		"J_external_audit", "J_results_to_management",
		"K_risky_behaviour_policy", "K_phishing_sims",
		"L_byod_policy", "L_personal_device_security",
	} {
		answers[key] = model.Single("Yes")
	}
	return answers
}

func TestComputeSectionScoresAllStrong(t *testing.T) {
	scores, err := ComputeSectionScores(strongAnswers())
	require.NoError(t, err)
	require.Len(t, scores, len(SectionIDs))

	for _, id := range SectionIDs {
		assert.InDelta(t, 100.0, scores[id], 1e-9, "section %s", id)
	}
}

func TestComputeSectionScoresBounds(t *testing.T) {
	cases := map[string]model.AnswerMap{
		"all strong": strongAnswers(),
		"mixed": func() model.AnswerMap {
			a := strongAnswers()
			a["C_infosec_policy"] = model.Single("No")
			a["D_backup_freq"] = model.Single("Monthly")
			a["E_incidents_5y"] = model.Single("Yes")
			a["B_types"] = model.MultiSelect("Medical records", "Financial accounts")
			a["F_sectors"] = model.MultiSelect("Healthcare / medical / provident fund")
			a["G_options"] = model.MultiSelect("Data restoration")
			return a
		}(),
	}

	for name, answers := range cases {
		t.Run(name, func(t *testing.T) {
			scores, err := ComputeSectionScores(answers)
			require.NoError(t, err)
			for id, s := range scores {
				assert.GreaterOrEqual(t, s, 0.0, "section %s", id)
				assert.LessOrEqual(t, s, 100.0, "section %s", id)
			}
		})
	}
}

func TestComputeSectionScoresMeanAggregation(t *testing.T) {
	a := strongAnswers()
	a["E_ir_plan"] = model.Single("No")          // 0
	a["E_incidents_5y"] = model.Single("Yes")    // 40
	a["E_potential_claims"] = model.Single("No") // 100

	scores, err := ComputeSectionScores(a)
	require.NoError(t, err)
	assert.InDelta(t, (0.0+40.0+100.0)/3.0, scores["E"], 1e-9)
}

func TestComputeSectionScoresSingleMapperSections(t *testing.T) {
	a := strongAnswers()
	a["B_types"] = model.MultiSelect("Medical records", "Financial accounts", "Intellectual property")
	a["F_sectors"] = model.MultiSelect("Sports betting / gambling")
	a["G_options"] = model.MultiSelect("Business interruption", "Data restoration")

	scores, err := ComputeSectionScores(a)
	require.NoError(t, err)

	assert.InDelta(t, DataSensitivity([]string{"a", "b", "c"}), scores["B"], 1e-9)
	assert.InDelta(t, 20.0, scores["F"], 1e-9)
	assert.InDelta(t, 2.0/7.0*100, scores["G"], 1e-9)
}

func TestComputeSectionScoresWrongShapeFloors(t *testing.T) {
	a := strongAnswers()
	// A string-shaped answer for a multi-select question floors the item
	// instead of being read as "nothing selected" (which would score B at
	// its best).
	a["B_types"] = model.Single("Medical records")

	scores, err := ComputeSectionScores(a)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, scores["B"], 1e-9)
}

func TestComputeSectionScoresMissingAnswer(t *testing.T) {
	a := strongAnswers()
	delete(a, "D_mfa")

	_, err := ComputeSectionScores(a)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingAnswer)
	assert.Contains(t, err.Error(), "cannot score section")
}

func TestRequiredKeysCoversEverySection(t *testing.T) {
	keys := RequiredKeys()
	assert.Len(t, keys, 31)

	seen := map[byte]bool{}
	for _, k := range keys {
		seen[k[0]] = true
	}
	for _, id := range SectionIDs {
		assert.True(t, seen[id[0]], "no keys for section %s", id)
	}
}
