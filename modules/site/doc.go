// Package site wires the public web site: localized pages read from the
// CMS, the contact endpoint, the consent endpoint and the health check.
//
// Every service implements Mountable and is mounted by Router:
//
//	GET  /                   redirect to the visitor's locale
//	GET  /{locale}/{slug}/   localized page
//	POST /api/contact        contact form (datastar, JSON or plain form)
//	POST /api/consent        cookie banner decision
//	GET  /health             dependency report
//
// The contact endpoint answers datastar clients with a status fragment
// patch, JSON clients with a status envelope, and plain form posts with a
// flash cookie and a redirect back to the contact page.
package site
