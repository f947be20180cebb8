package views

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"

	"github.com/Marco22874/lares-frontend/pkg/contact"
	"github.com/Marco22874/lares-frontend/pkg/i18n"
	"github.com/Marco22874/lares-frontend/pkg/sanitizer"
)

// ContactNotification is the HTML body of the owner notification. Every
// value is stripped of markup and encoded; labels are always Italian.
func ContactNotification(locale i18n.Locale, sub contact.Submission) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<!DOCTYPE html><html><body><table>`)
		for _, row := range notificationRows(sub) {
			h.raw(`<tr><th align="left">`)
			h.text(t(i18n.Default, row.field.LabelKey()))
			h.raw(`</th><td>`)
			if row.field == contact.FieldMessage {
				h.raw(strings.ReplaceAll(sanitizer.SanitizeInput(row.value), "\n", "<br>"))
			} else {
				h.raw(sanitizer.SanitizeInput(row.value))
			}
			h.raw(`</td></tr>`)
		}
		h.raw(`<tr><th align="left">`)
		h.text(t(i18n.Default, "lang_label"))
		h.raw(`</th><td>`, string(locale), `</td></tr></table></body></html>`)
	})
}

// ContactNotificationText is the plain-text body of the owner notification.
func ContactNotificationText(locale i18n.Locale, sub contact.Submission) string {
	var b strings.Builder
	for _, row := range notificationRows(sub) {
		fmt.Fprintf(&b, "%s: %s\n", t(i18n.Default, row.field.LabelKey()), sanitizer.StripHTML(row.value))
	}
	fmt.Fprintf(&b, "%s: %s\n", t(i18n.Default, "lang_label"), locale)
	return b.String()
}

// ContactNotificationSubject is a single-line subject naming the sender.
func ContactNotificationSubject(sub contact.Submission) string {
	subject := t(i18n.Default, "subject_"+sub.Subject)
	name := sanitizer.MaxLength(sanitizer.SingleLine(sanitizer.StripHTML(sub.Name)), contact.MaxNameLength)
	return sanitizer.SingleLine(fmt.Sprintf("[Lares] %s: %s", subject, name))
}

type notificationRow struct {
	field contact.Field
	value string
}

func notificationRows(sub contact.Submission) []notificationRow {
	sub = sub.Trimmed()
	rows := []notificationRow{
		{contact.FieldName, sub.Name},
		{contact.FieldEmail, sub.Email},
		{contact.FieldPhone, sub.Phone},
		{contact.FieldSubject, sub.Subject},
		{contact.FieldMessage, sanitizer.RemoveControlChars(sub.Message)},
	}
	out := rows[:0]
	for _, r := range rows {
		if r.value != "" {
			out = append(out, r)
		}
	}
	return out
}
