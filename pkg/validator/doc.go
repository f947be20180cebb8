// Package validator provides small declarative validation rules.
//
// A Rule pairs a boolean Check with a ValidationError describing the failure.
// Errors carry a TranslationKey that matches the UI string tables of package
// i18n (form_required, form_invalid) so handlers can localize them directly.
//
// Two evaluators are available:
//
//   - Apply runs every rule and returns all failures.
//   - First stops at the first failing rule, which is what whitelist checks
//     want: a value that is too long is not also reported as malformed.
//
// Both return nil or a ValidationErrors value that implements error.
//
// # Usage
//
//	err := validator.First(
//	    validator.MaxRunesString("name", name, 100),
//	    validator.MatchesPattern("name", name, namePattern),
//	)
//	if errs := validator.ExtractValidationErrors(err); errs != nil {
//	    fmt.Println(errs[0].Message) // "contains invalid characters"
//	}
//
// Lengths are counted in runes, not bytes.
package validator
