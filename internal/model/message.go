package model

type QuoteMessage struct {
	ID      int    `json:"id"`
	Level   string `json:"level"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	LevelCritical = "CRITICAL"
	LevelWarning  = "WARNING"
)

const (
	CodeMissingAnswer = "MISSING_ANSWER"
	CodeUnknownOption = "UNKNOWN_OPTION"
	CodeShapeMismatch = "SHAPE_MISMATCH"
)
