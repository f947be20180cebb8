package contact

import (
	"regexp"
	"slices"
)

// Field is one of the named contact form inputs.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldPhone   Field = "phone"
	FieldSubject Field = "subject"
	FieldMessage Field = "message"
)

const (
	// HoneypotField is the hidden input humans never fill in.
	HoneypotField = "honeypot"
	// BotKey is the synthetic error key reported for a filled honeypot.
	BotKey = "_bot"
)

// Fields lists the validated inputs in form order.
var Fields = []Field{FieldName, FieldEmail, FieldPhone, FieldSubject, FieldMessage}

// RequiredFields must be present and non-blank for a form to be valid.
var RequiredFields = []Field{FieldName, FieldEmail, FieldSubject, FieldMessage}

// Subject values accepted by the subject field.
const (
	SubjectInfo        = "info"
	SubjectVisit       = "visit"
	SubjectPartnership = "partnership"
	SubjectOther       = "other"
)

// Subjects is the closed set of subject values, in display order.
var Subjects = []string{SubjectInfo, SubjectVisit, SubjectPartnership, SubjectOther}

// Maximum lengths in characters, checked on the trimmed value.
const (
	MaxNameLength    = 100
	MaxEmailLength   = 254
	MaxPhoneLength   = 20
	MaxSubjectLength = 20
	MaxMessageLength = 2000
	MinMessageLength = 10
)

// spaces is every character browsers count as whitespace in a pattern,
// including the no-break and typographic spaces RE2's \s leaves out.
const spaces = `\s\v\x{00A0}\x{1680}\x{2000}-\x{200A}\x{2028}\x{2029}\x{202F}\x{205F}\x{3000}\x{FEFF}`

var (
	namePattern  = regexp.MustCompile(`^[a-zA-Z\x{00C0}-\x{00FF}` + spaces + `'\-]{2,100}$`)
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phonePattern = regexp.MustCompile(`^[\d` + spaces + `+\-()]{0,20}$`)
)

// ParseField maps a raw field name onto the Field enum.
func ParseField(name string) (Field, bool) {
	f := Field(name)
	return f, slices.Contains(Fields, f)
}

// MaxLength returns the maximum trimmed length of f, or 0 for unknown fields.
func (f Field) MaxLength() int {
	switch f {
	case FieldName:
		return MaxNameLength
	case FieldEmail:
		return MaxEmailLength
	case FieldPhone:
		return MaxPhoneLength
	case FieldSubject:
		return MaxSubjectLength
	case FieldMessage:
		return MaxMessageLength
	}
	return 0
}

// Required reports whether f must be filled in.
func (f Field) Required() bool {
	return slices.Contains(RequiredFields, f)
}

// LabelKey returns the UI string key of the field's label.
func (f Field) LabelKey() string {
	return "form_" + string(f)
}

// String implements fmt.Stringer.
func (f Field) String() string {
	return string(f)
}
