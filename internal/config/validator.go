package config

import (
	"fmt"
	"strings"
)

// ValidationError describes a single invalid setting.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// Validate checks the configuration and returns every problem found.
func (c *Config) Validate() []ValidationError {
	var errs []ValidationError

	g := c.Report.GranularityMinutes
	if g <= 0 || 60%g != 0 {
		errs = append(errs, ValidationError{
			Field:   "report.granularity_minutes",
			Value:   g,
			Message: "must be a positive divisor of 60",
		})
	}
	if c.Report.SingleEntryMinutes <= 0 {
		errs = append(errs, ValidationError{
			Field:   "report.single_entry_minutes",
			Value:   c.Report.SingleEntryMinutes,
			Message: "must be positive",
		})
	}

	switch strings.ToLower(c.Logging.Format) {
	case "json", "text":
	default:
		errs = append(errs, ValidationError{
			Field:   "log.format",
			Value:   c.Logging.Format,
			Message: "must be one of: json, text",
		})
	}

	if strings.ContainsAny(c.Author, `/\`) {
		errs = append(errs, ValidationError{
			Field:   "author",
			Value:   c.Author,
			Message: "must not contain path separators",
		})
	}

	return errs
}
