package questionnaire

import "cyberscore-engine/internal/model"

// UnknownOption records an answer value that is not in the question's fixed
// option list. Scoring floors such values instead of failing; the engine
// still surfaces them as warnings.
type UnknownOption struct {
	Key   string
	Value string
}

// Validate checks an answer map against the scored questions. It returns the
// keys of absent required answers, any answer values outside the fixed option
// lists, and the keys answered with the wrong shape (a list for a
// single-choice question or a plain string for a multi-select). Scoring
// floors mismatched shapes; the engine still surfaces them as warnings.
// Free-text follow-ups are never validated.
func Validate(answers model.AnswerMap) (missing []string, unknown []UnknownOption, mismatched []string) {
	for _, s := range sections {
		for _, q := range s.Questions {
			if !q.Scored {
				continue
			}
			a, ok := answers[q.Key]
			if !ok {
				missing = append(missing, q.Key)
				continue
			}
			switch q.Kind {
			case SingleChoice:
				if a.Multi {
					mismatched = append(mismatched, q.Key)
					continue
				}
				if !hasOption(q.Options, a.Option) {
					unknown = append(unknown, UnknownOption{Key: q.Key, Value: a.Option})
				}
			case MultiSelect:
				if !a.Multi {
					mismatched = append(mismatched, q.Key)
					continue
				}
				for _, v := range a.Options {
					if !hasOption(q.Options, v) {
						unknown = append(unknown, UnknownOption{Key: q.Key, Value: v})
					}
				}
			}
		}
	}
	return missing, unknown, mismatched
}

// DefaultAnswers returns the collection-boundary defaults: "No" (or the
// lowest ladder rung) for every single-choice question and nothing selected
// for multi-selects. Scoring treats these as legitimate input.
func DefaultAnswers() model.AnswerMap {
	answers := make(model.AnswerMap)
	for _, s := range sections {
		for _, q := range s.Questions {
			if !q.Scored {
				continue
			}
			switch q.Kind {
			case SingleChoice:
				answers[q.Key] = model.Single(q.Default)
			case MultiSelect:
				answers[q.Key] = model.MultiSelect()
			}
		}
	}
	return answers
}

func hasOption(options []string, value string) bool {
	for _, o := range options {
		if o == value {
			return true
		}
	}
	return false
}
