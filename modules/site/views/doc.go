// Package views holds the HTML components of the site as templ components.
// Untrusted text goes through the sanitizer encoders; CMS rich text goes
// through the rich-text policy before it is written unescaped.
package views
