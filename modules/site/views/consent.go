package views

import (
	"github.com/a-h/templ"

	"github.com/Marco22874/lares-frontend/pkg/consent"
	"github.com/Marco22874/lares-frontend/pkg/i18n"
)

// ConsentBannerID is the element removed once a choice is stored.
const ConsentBannerID = "cookie-banner"

// ConsentAction is the endpoint the banner posts to.
func ConsentAction(locale i18n.Locale) string {
	return "/api/consent?lang=" + string(locale)
}

// ConsentBanner asks for a cookie decision. Each button posts its action.
func ConsentBanner(locale i18n.Locale) templ.Component {
	return component(func(h *htmlWriter) {
		action := ConsentAction(locale)
		h.raw(`<div id="`, ConsentBannerID, `" role="dialog" aria-live="polite"><p>`)
		h.text(t(locale, "cookie_message"))
		h.raw(`</p><form method="post" action="`)
		h.url(action)
		h.raw(`">`)
		for _, b := range []struct{ action, key string }{
			{consent.ActionAccept, "cookie_accept"},
			{consent.ActionReject, "cookie_reject"},
		} {
			h.raw(`<button type="submit" name="action" value="`, b.action,
				`" data-on-click__prevent="@post('`)
			h.url(action + "&action=" + b.action)
			h.raw(`')">`)
			h.text(t(locale, b.key))
			h.raw(`</button>`)
		}
		h.raw(`</form></div>`)
	})
}
