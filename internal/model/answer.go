package model

import (
	json "github.com/goccy/go-json"

	"github.com/m-mizutani/goerr/v2"
)

// Answer holds one questionnaire response. Single-choice questions carry the
// selected option; multi-select questions carry the list of selected options
// (an empty list is a valid answer meaning "none selected").
type Answer struct {
	Option  string
	Options []string
	Multi   bool
}

// Single wraps one selected option.
func Single(option string) Answer {
	return Answer{Option: option}
}

// MultiSelect wraps a list of selected options.
func MultiSelect(options ...string) Answer {
	if options == nil {
		options = []string{}
	}
	return Answer{Options: options, Multi: true}
}

// UnmarshalJSON accepts either a JSON string or an array of strings.
func (a *Answer) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*a = Answer{Option: single}
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return goerr.Wrap(err, "answer must be a string or an array of strings")
	}
	if list == nil {
		list = []string{}
	}
	*a = Answer{Options: list, Multi: true}
	return nil
}

func (a Answer) MarshalJSON() ([]byte, error) {
	if a.Multi {
		return json.Marshal(a.Options)
	}
	return json.Marshal(a.Option)
}

// Display renders the answer for reports. Empty answers render as "None".
func (a Answer) Display() string {
	if a.Multi {
		if len(a.Options) == 0 {
			return "None"
		}
		out := a.Options[0]
		for _, o := range a.Options[1:] {
			out += ", " + o
		}
		return out
	}
	if a.Option == "" {
		return "None"
	}
	return a.Option
}

// AnswerMap maps question keys (e.g. "C_infosec_policy") to answers.
type AnswerMap map[string]Answer

// Option returns the single selected option for key, if present.
func (m AnswerMap) Option(key string) (string, bool) {
	a, ok := m[key]
	if !ok || a.Multi {
		return "", false
	}
	return a.Option, true
}

// Selected returns the selected options for a multi-select key, if present.
func (m AnswerMap) Selected(key string) ([]string, bool) {
	a, ok := m[key]
	if !ok || !a.Multi {
		return nil, false
	}
	return a.Options, true
}
