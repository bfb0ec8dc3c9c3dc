package app

type ConfigErrorCode string

const (
	ConfigErrInvalidWeekday ConfigErrorCode = "INVALID_WEEKDAY"
	ConfigErrInvalidWindow  ConfigErrorCode = "INVALID_WINDOW"
	ConfigErrRuleOverlap    ConfigErrorCode = "RULE_OVERLAP"
)

// ConfigError reports a malformed availability rule. It is fatal to slot
// building and is surfaced to the caller, never silently corrected.
type ConfigError struct {
	Code    ConfigErrorCode
	Message string
}

func (e *ConfigError) Error() string {
	return string(e.Code) + ": " + e.Message
}

type ValidationErrorCode string

const (
	ValidationErrNegativeEffort ValidationErrorCode = "NEGATIVE_EFFORT"
	ValidationErrTaskDone       ValidationErrorCode = "TASK_DONE"
	ValidationErrTaskNotDone    ValidationErrorCode = "TASK_NOT_DONE"
	ValidationErrInvalidField   ValidationErrorCode = "INVALID_FIELD"
)

// ValidationError rejects an invalid mutation request. The target entity
// is left unchanged.
type ValidationError struct {
	Code    ValidationErrorCode
	Message string
}

func (e *ValidationError) Error() string {
	return string(e.Code) + ": " + e.Message
}
