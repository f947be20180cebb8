// Package consent remembers the visitor's cookie banner decision.
//
// The choice is stored under Key as either "all" (accept) or "necessary"
// (reject). Absence means no decision and the banner is shown. Storage that
// fails or is unavailable is treated the same way: reads report no decision
// and writes are dropped.
//
//	store := consent.NewStore(consent.NewCookieStorage(cookies, w, r))
//	if store.ShowBanner() {
//		// render the banner
//	}
//	store.Apply(r.FormValue("action")) // "accept" or "reject"
package consent
