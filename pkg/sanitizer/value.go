package sanitizer

// Text returns v when it holds a string and an empty string otherwise.
// It lets the string sanitizers fail closed on untyped input such as
// decoded JSON values.
func Text(v any) string {
	s, _ := v.(string)
	return s
}

// EncodeHTMLValue is EncodeHTML for untyped input; non-strings yield "".
func EncodeHTMLValue(v any) string { return EncodeHTML(Text(v)) }

// StripHTMLValue is StripHTML for untyped input; non-strings yield "".
func StripHTMLValue(v any) string { return StripHTML(Text(v)) }

// SanitizeURLValue is SanitizeURL for untyped input; non-strings yield "".
func SanitizeURLValue(v any) string { return SanitizeURL(Text(v)) }

// SanitizeInputValue is SanitizeInput for untyped input; non-strings yield "".
func SanitizeInputValue(v any) string { return SanitizeInput(Text(v)) }
