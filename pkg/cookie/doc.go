// Package cookie reads and writes the site's HTTP cookies.
//
// A Manager is created with one or more secrets of at least 32 bytes and a set
// of default attributes (Path "/", HttpOnly, SameSite=Lax unless overridden).
//
//   - Set, Get, Delete handle plain cookies.
//   - SetSigned, GetSigned append an HMAC-SHA256 so a tampered value is
//     rejected with ErrInvalidSignature. The consent choice is stored this way.
//   - SetEncrypted, GetEncrypted seal the value with AES-256-GCM.
//   - SetFlash, GetFlash keep a JSON value for exactly one read. The contact
//     form uses them to carry its outcome across the redirect when scripts
//     are disabled.
//
// The first secret writes; all secrets are tried when reading, which allows
// rotation by prepending a new secret.
//
//	m, err := cookie.NewFromConfig(cfg.Cookie, cookie.WithSecure(true))
//	_ = m.SetSigned(w, "lares_cookie_consent", "all", cookie.WithMaxAge(365*24*3600))
//	v, err := m.GetSigned(r, "lares_cookie_consent")
package cookie
