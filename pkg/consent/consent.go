package consent

// Key is the storage key holding the visitor's choice.
const Key = "lares_cookie_consent"

// Choice is the stored consent level. The zero value means no decision yet.
type Choice string

const (
	// ChoiceNone means the visitor has not decided; the banner is shown.
	ChoiceNone Choice = ""
	// ChoiceAll accepts optional cookies.
	ChoiceAll Choice = "all"
	// ChoiceNecessary keeps only the cookies the site needs to work.
	ChoiceNecessary Choice = "necessary"
)

// Banner button actions.
const (
	ActionAccept = "accept"
	ActionReject = "reject"
)

// ParseChoice maps a stored value onto a Choice. Anything other than "all"
// or "necessary" counts as no decision.
func ParseChoice(s string) Choice {
	switch Choice(s) {
	case ChoiceAll, ChoiceNecessary:
		return Choice(s)
	default:
		return ChoiceNone
	}
}

// ChoiceForAction maps a banner action onto the Choice it stores.
func ChoiceForAction(action string) (Choice, bool) {
	switch action {
	case ActionAccept:
		return ChoiceAll, true
	case ActionReject:
		return ChoiceNecessary, true
	default:
		return ChoiceNone, false
	}
}

// Decided reports whether the visitor made a choice.
func (c Choice) Decided() bool {
	return c != ChoiceNone
}

// AllowsOptional reports whether optional cookies and embeds may be loaded.
func (c Choice) AllowsOptional() bool {
	return c == ChoiceAll
}

func (c Choice) String() string {
	return string(c)
}
