// Package contact validates and submits the site's contact form.
//
// Validation is whitelist only: every field must match a fixed allowed shape
// and nothing is cleaned or rewritten. Values are trimmed before checking and
// lengths are counted in characters.
//
//	name     letters (Latin-1 accents included), spaces, apostrophe, hyphen; 2 to 100
//	email    local@domain.tld with a TLD of at least two letters; max 254
//	phone    digits, spaces, + - ( ); max 20; optional
//	subject  one of info, visit, partnership, other
//	message  any text of 10 to 2000 characters
//
// ValidateField checks a single value. ValidateForm checks a whole submission:
// required fields that are missing report only "is required", phone is
// checked only when filled in, and a filled honeypot adds a "_bot" entry so
// automated submissions are rejected without telling the sender why.
//
// Submitter wraps the same checks around a single POST through a Poster and
// turns the result into a localized Outcome. Submissions are never retried.
package contact
