package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ternarybob/arbor"

	"cyberscore-engine/internal/model"
	"cyberscore-engine/internal/pricing"
	"cyberscore-engine/internal/questionnaire"
	"cyberscore-engine/internal/scoring"
)

// Engine runs the full quote pipeline: answer validation, section scoring,
// weighted aggregation, risk classification and, when a coverage amount is
// supplied, premium pricing. It holds no mutable state; a request processed
// twice yields identical scores.
type Engine struct {
	weights scoring.Weights
	log     arbor.ILogger
}

// New builds an engine over a validated weight table.
func New(weights scoring.Weights, log arbor.ILogger) *Engine {
	return &Engine{weights: weights, log: log}
}

func (e *Engine) Process(req *model.QuoteRequest) *model.QuoteResponse {
	start := time.Now()

	answers := req.Answers
	if answers == nil {
		answers = model.AnswerMap{}
	}
	if req.FillDefaults {
		answers = mergeDefaults(answers)
	}

	var messages []model.QuoteMessage
	outcome := model.OutcomeSuccess

	missing, unknown, mismatched := questionnaire.Validate(answers)
	for _, key := range missing {
		messages = append(messages, model.QuoteMessage{
			ID:      len(messages),
			Level:   model.LevelCritical,
			Code:    model.CodeMissingAnswer,
			Message: fmt.Sprintf("Required answer missing: %s", key),
		})
	}
	for _, u := range unknown {
		messages = append(messages, model.QuoteMessage{
			ID:      len(messages),
			Level:   model.LevelWarning,
			Code:    model.CodeUnknownOption,
			Message: fmt.Sprintf("Unrecognized option %q for %s, scored as floor", u.Value, u.Key),
		})
	}
	for _, key := range mismatched {
		messages = append(messages, model.QuoteMessage{
			ID:      len(messages),
			Level:   model.LevelWarning,
			Code:    model.CodeShapeMismatch,
			Message: fmt.Sprintf("Answer for %s has the wrong shape, scored as floor", key),
		})
	}

	result := model.QuoteResult{}

	if len(missing) > 0 {
		outcome = model.OutcomeFailure
	} else {
		sectionScores, err := scoring.ComputeSectionScores(answers)
		if err != nil {
			// Validate already covers missing keys, so this only fires on a
			// mismatch between questionnaire and scoring definitions.
			e.log.Error().Err(err).Msg("Section scoring failed")
			messages = append(messages, model.QuoteMessage{
				ID:      len(messages),
				Level:   model.LevelCritical,
				Code:    model.CodeMissingAnswer,
				Message: err.Error(),
			})
			outcome = model.OutcomeFailure
		} else {
			overall, err := scoring.ComputeOverallScore(sectionScores, e.weights)
			if err != nil {
				e.log.Error().Err(err).Msg("Overall aggregation failed")
				outcome = model.OutcomeFailure
			} else {
				result.SectionScores = sectionScores
				result.OverallScore = &overall
				result.RiskLabel = scoring.RiskLabel(overall)
				if req.CoverageAmount > 0 {
					rate := pricing.Rate(overall)
					result.Premium = &model.Premium{
						Rate:           rate,
						CoverageAmount: req.CoverageAmount,
						Amount:         pricing.Premium(rate, req.CoverageAmount),
					}
				}
				e.log.Debug().
					Str("tenant_id", req.TenantID).
					Str("overall_score", fmt.Sprintf("%.1f", overall)).
					Str("risk_label", result.RiskLabel).
					Msg("Quote computed")
			}
		}
	}

	elapsed := time.Since(start)
	now := time.Now().UTC()

	if messages == nil {
		messages = []model.QuoteMessage{}
	}
	result.Messages = messages

	return &model.QuoteResponse{
		QuoteMetadata: model.QuoteMetadata{
			QuoteID:          uuid.New().String(),
			TenantID:         req.TenantID,
			QuoteStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
			QuoteCompletedAt: now.Format(time.RFC3339),
			QuoteDurationMs:  elapsed.Milliseconds(),
			QuoteOutcome:     outcome,
		},
		QuoteResult: result,
	}
}

// Weights exposes the effective weight table, used by the report to show
// per-section contributions.
func (e *Engine) Weights() scoring.Weights {
	return e.weights
}

func mergeDefaults(answers model.AnswerMap) model.AnswerMap {
	merged := questionnaire.DefaultAnswers()
	for k, v := range answers {
		merged[k] = v
	}
	return merged
}
