// Package email sends the site's transactional mail.
//
// The only message today is the owner notification sent after a contact
// form has been accepted by the CMS. PostmarkClient delivers it in
// production; DevSender writes it to disk during development.
//
//	var sender email.EmailSender = email.NewDevSender(cfg.DevDir, log)
//	if cfg.Enabled() {
//		sender, err = email.NewPostmarkClient(cfg)
//	}
//
// Bodies are rendered from templ components with templates.Render.
package email
