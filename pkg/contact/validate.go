package contact

import (
	"fmt"
	"strings"

	"github.com/Marco22874/lares-frontend/pkg/validator"
)

// Failure reasons reported by ValidateField and ValidateForm.
const (
	ReasonNotString      = "must be a string"
	ReasonInvalidChars   = "contains invalid characters"
	ReasonInvalidSubject = "invalid subject value"
	ReasonUnknownField   = "unknown field"
	ReasonRequired       = "is required"
	ReasonBot            = "Bot detected"
)

// Result is the outcome of validating one field.
type Result struct {
	Valid bool
	// Error is "<field>: <reason>" for invalid values and empty otherwise.
	Error string
	// TranslationKey names the UI string to show next to the field.
	TranslationKey string
}

func valid() Result {
	return Result{Valid: true}
}

func invalid(field, reason, key string) Result {
	return Result{
		Valid:          false,
		Error:          fmt.Sprintf("%s: %s", field, reason),
		TranslationKey: key,
	}
}

// ValidateField checks one value against the whitelist of field.
//
// The value must be a string. Its trimmed form must not exceed the field's
// maximum length and must match the field's allowed shape exactly; nothing is
// cleaned or rewritten. The check is pure and deterministic.
func ValidateField(field Field, value any) Result {
	s, ok := value.(string)
	if !ok {
		return invalid(string(field), ReasonNotString, validator.KeyInvalid)
	}
	trimmed := strings.TrimSpace(s)
	name := string(field)

	var rules []validator.Rule
	switch field {
	case FieldName:
		rules = []validator.Rule{
			validator.MaxRunesString(name, trimmed, MaxNameLength),
			validator.MatchesPattern(name, trimmed, namePattern),
		}
	case FieldEmail:
		rules = []validator.Rule{
			validator.MaxRunesString(name, trimmed, MaxEmailLength),
			validator.MatchesPattern(name, trimmed, emailPattern),
		}
	case FieldPhone:
		rules = []validator.Rule{
			validator.MaxRunesString(name, trimmed, MaxPhoneLength),
			validator.MatchesPattern(name, trimmed, phonePattern),
		}
	case FieldSubject:
		rules = []validator.Rule{
			validator.MaxRunesString(name, trimmed, MaxSubjectLength),
			validator.InList(name, trimmed, Subjects),
		}
	case FieldMessage:
		rules = []validator.Rule{
			validator.MaxRunesString(name, trimmed, MaxMessageLength),
			validator.RuneLenBetween(name, trimmed, MinMessageLength, MaxMessageLength),
		}
	default:
		return invalid(name, ReasonUnknownField, validator.KeyInvalid)
	}

	if errs := validator.ExtractValidationErrors(validator.First(rules...)); len(errs) > 0 {
		return invalid(name, errs[0].Message, errs[0].TranslationKey)
	}
	return valid()
}

// ValidateFieldName is ValidateField for a raw field name. Names outside the
// Field enum are reported as unknown.
func ValidateFieldName(name string, value any) Result {
	field, ok := ParseField(name)
	if !ok {
		return invalid(name, ReasonUnknownField, validator.KeyInvalid)
	}
	return ValidateField(field, value)
}

// FormResult is the aggregate outcome of validating a whole submission.
type FormResult struct {
	// Valid is true if and only if Errors is empty.
	Valid bool
	// Errors maps field names, and BotKey, to "<field>: <reason>" messages.
	Errors map[string]string
	// Keys maps the same field names to UI string keys.
	Keys map[string]string
}

// Validation returns the failures as validator.ValidationErrors, ordered like
// the form, or nil when the form is valid.
func (r FormResult) Validation() validator.ValidationErrors {
	if r.Valid {
		return nil
	}
	var errs validator.ValidationErrors
	order := make([]string, 0, len(Fields)+1)
	for _, f := range Fields {
		order = append(order, string(f))
	}
	order = append(order, BotKey)
	for _, name := range order {
		msg, ok := r.Errors[name]
		if !ok {
			continue
		}
		errs.Add(validator.ValidationError{
			Field:          name,
			Message:        strings.TrimPrefix(msg, name+": "),
			TranslationKey: r.Keys[name],
		})
	}
	return errs
}

// ValidateForm validates a whole submission.
//
// name, email, subject and message are required: an absent or blank value is
// reported as "is required" and its shape is not checked. phone is optional
// and only checked when non-blank. A non-blank honeypot adds a BotKey entry,
// which alone makes the form invalid. Keys outside the form are ignored.
func ValidateForm(data map[string]any) FormResult {
	result := FormResult{
		Errors: make(map[string]string),
		Keys:   make(map[string]string),
	}
	fail := func(name string, r Result) {
		result.Errors[name] = r.Error
		result.Keys[name] = r.TranslationKey
	}

	for _, field := range RequiredFields {
		name := string(field)
		value, present := data[name]
		if !present || isBlank(value) {
			fail(name, invalid(name, ReasonRequired, validator.KeyRequired))
			continue
		}
		if r := ValidateField(field, value); !r.Valid {
			fail(name, r)
		}
	}

	if value, present := data[string(FieldPhone)]; present && !isBlank(value) {
		if r := ValidateField(FieldPhone, value); !r.Valid {
			fail(string(FieldPhone), r)
		}
	}

	if value, present := data[HoneypotField]; present && !isBlank(value) {
		fail(BotKey, Result{Error: ReasonBot, TranslationKey: "form_bot"})
	}

	result.Valid = len(result.Errors) == 0
	return result
}

// isBlank reports whether v is nil or a whitespace-only string. Other types
// are not blank and fail later with "must be a string".
func isBlank(v any) bool {
	switch s := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(s) == ""
	default:
		return false
	}
}
