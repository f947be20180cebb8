package contact

import "strings"

// Submission is the wire contract of the contact form, as posted by the
// browser either as JSON or as an urlencoded form.
type Submission struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Phone    string `json:"phone" form:"phone"`
	Subject  string `json:"subject" form:"subject"`
	Message  string `json:"message" form:"message"`
	Honeypot string `json:"honeypot" form:"honeypot"`
}

// Trimmed returns a copy with surrounding whitespace removed from every field.
func (s Submission) Trimmed() Submission {
	return Submission{
		Name:     strings.TrimSpace(s.Name),
		Email:    strings.TrimSpace(s.Email),
		Phone:    strings.TrimSpace(s.Phone),
		Subject:  strings.TrimSpace(s.Subject),
		Message:  strings.TrimSpace(s.Message),
		Honeypot: strings.TrimSpace(s.Honeypot),
	}
}

// Map returns the submission in the shape ValidateForm expects.
func (s Submission) Map() map[string]any {
	return map[string]any{
		string(FieldName):    s.Name,
		string(FieldEmail):   s.Email,
		string(FieldPhone):   s.Phone,
		string(FieldSubject): s.Subject,
		string(FieldMessage): s.Message,
		HoneypotField:        s.Honeypot,
	}
}

// Validate runs ValidateForm over the submission.
func (s Submission) Validate() FormResult {
	return ValidateForm(s.Map())
}

// IsBot reports whether the honeypot was filled in.
func (s Submission) IsBot() bool {
	return strings.TrimSpace(s.Honeypot) != ""
}

// Payload is the body posted to the CMS. The honeypot never leaves the site.
type Payload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Payload returns the trimmed values to post. A missing phone is sent as "".
func (s Submission) Payload() Payload {
	t := s.Trimmed()
	return Payload{
		Name:    t.Name,
		Email:   t.Email,
		Phone:   t.Phone,
		Subject: t.Subject,
		Message: t.Message,
	}
}
