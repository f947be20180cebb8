package views

import (
	"github.com/a-h/templ"

	"github.com/Marco22874/lares-frontend/pkg/contact"
	"github.com/Marco22874/lares-frontend/pkg/i18n"
)

// ContactStatusID is the element patched with the submission outcome.
const ContactStatusID = "contact-status"

// ContactAction is the endpoint the contact form posts to.
func ContactAction(locale i18n.Locale) string {
	return "/api/contact?lang=" + string(locale)
}

// ContactStatus renders the outcome line and the per-field messages. A zero
// Outcome renders an empty live region.
func ContactStatus(o contact.Outcome) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<div id="`, ContactStatusID, `" role="status" aria-live="polite"`)
		if o.Status != "" {
			h.raw(` class="form-status form-status--`, string(o.Status), `"`)
		}
		h.raw(`>`)
		if o.Message != "" {
			h.raw(`<p>`)
			h.text(o.Message)
			h.raw(`</p>`)
		}
		if len(o.FieldErrors) > 0 {
			h.raw(`<ul>`)
			for _, f := range contact.Fields {
				msg, ok := o.FieldErrors[string(f)]
				if !ok {
					continue
				}
				h.raw(`<li data-field="`, string(f), `">`)
				h.text(msg)
				h.raw(`</li>`)
			}
			h.raw(`</ul>`)
		}
		h.raw(`</div>`)
	})
}

// ContactForm renders the form. It posts as a regular form without
// JavaScript; with datastar it posts the bound signals and receives status
// patches. The honeypot input is hidden from people and left empty.
func ContactForm(locale i18n.Locale, status contact.Outcome) templ.Component {
	return component(func(h *htmlWriter) {
		action := ContactAction(locale)
		h.raw(`<form class="contact-form" method="post" action="`)
		h.url(action)
		h.raw(`" data-signals="{sending: false}" data-on-submit__prevent="$sending = true; @post('`)
		h.url(action)
		h.raw(`')">`)

		input := func(f contact.Field, kind string) {
			name := string(f)
			h.raw(`<label for="cf-`, name, `">`)
			h.text(t(locale, f.LabelKey()))
			h.raw(`</label><input id="cf-`, name, `" name="`, name, `" type="`, kind, `" data-bind-`, name)
			if f.Required() {
				h.raw(` required`)
			}
			h.raw(`>`)
		}
		input(contact.FieldName, "text")
		input(contact.FieldEmail, "email")
		input(contact.FieldPhone, "tel")

		h.raw(`<label for="cf-subject">`)
		h.text(t(locale, contact.FieldSubject.LabelKey()))
		h.raw(`</label><select id="cf-subject" name="subject" data-bind-subject required>`)
		for _, s := range contact.Subjects {
			h.raw(`<option value="`, s, `">`)
			h.text(t(locale, "subject_"+s))
			h.raw(`</option>`)
		}
		h.raw(`</select>`)

		h.raw(`<label for="cf-message">`)
		h.text(t(locale, contact.FieldMessage.LabelKey()))
		h.raw(`</label><textarea id="cf-message" name="message" data-bind-message required></textarea>`)

		h.raw(`<div class="hp" aria-hidden="true"><input name="`, contact.HoneypotField,
			`" tabindex="-1" autocomplete="off" data-bind-`, contact.HoneypotField, `></div>`)

		h.raw(`<button type="submit" data-attr-disabled="$sending">`)
		h.text(t(locale, "form_send"))
		h.raw(`</button></form>`)
		h.render(ContactStatus(status))
	})
}
