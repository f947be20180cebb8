// Package binder decodes request bodies and query strings into structs.
//
// The contact endpoint accepts the same Submission as JSON from the script
// client and as an urlencoded form from browsers without JavaScript; Auto
// picks the right decoder from Content-Type:
//
//	var sub contact.Submission
//	if err := binder.Auto()(r, &sub); err != nil {
//		// 400 or 415
//	}
//
// Form and Query match fields by their `form` and `query` tags. JSON is
// strict by default: unknown fields and trailing data are errors.
package binder
