// Package sanitizer makes untrusted text safe to place into HTML output.
//
// The package is a set of pure string transforms:
//
//   - EncodeHTML replaces the characters & < > " ' / ` with entities.
//   - StripHTML removes <...> runs and keeps the text between them.
//   - SanitizeInput composes the two and is the function to apply to any
//     user-supplied text before it is echoed into a page.
//   - SanitizeURL lets through http, https, mailto and tel URLs and relative
//     references starting with "/" or "#"; everything else becomes "".
//   - SanitizeRichText runs CMS-authored HTML through a bluemonday UGC policy.
//
// StripHTML is a second layer only. It does not parse HTML and never replaces
// EncodeHTML.
//
// Every transform has a *Value variant accepting any; non-string input yields
// an empty string instead of an error.
//
// Apply and Compose build reusable pipelines:
//
//	clean := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.RemoveControlChars,
//	    sanitizer.SanitizeInput,
//	)
//
//	safe := clean("  <b>Ciao</b> Marco ") // "Ciao Marco"
package sanitizer
