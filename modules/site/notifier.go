package site

import (
	"context"
	"errors"
	"fmt"

	"github.com/Marco22874/lares-frontend/modules/site/views"
	"github.com/Marco22874/lares-frontend/pkg/contact"
	"github.com/Marco22874/lares-frontend/pkg/email"
	"github.com/Marco22874/lares-frontend/pkg/email/templates"
	"github.com/Marco22874/lares-frontend/pkg/i18n"
)

// ErrNoRecipient is returned by NewEmailNotifier without a recipient.
var ErrNoRecipient = errors.New("site: notification recipient is empty")

// EmailNotifier tells the site owner about accepted contact submissions.
// The visitor's address goes into Reply-To so the owner can answer directly.
type EmailNotifier struct {
	sender email.EmailSender
	to     string
}

// NewEmailNotifier creates an EmailNotifier sending to the owner address to.
func NewEmailNotifier(sender email.EmailSender, to string) (*EmailNotifier, error) {
	if to == "" {
		return nil, ErrNoRecipient
	}
	return &EmailNotifier{sender: sender, to: to}, nil
}

// Notify implements contact.Notifier.
func (n *EmailNotifier) Notify(ctx context.Context, locale i18n.Locale, sub contact.Submission) error {
	body, err := templates.Render(ctx, views.ContactNotification(locale, sub))
	if err != nil {
		return fmt.Errorf("render notification: %w", err)
	}
	return n.sender.SendEmail(ctx, email.SendEmailParams{
		SendTo:   n.to,
		ReplyTo:  sub.Trimmed().Email,
		Subject:  views.ContactNotificationSubject(sub),
		BodyHTML: body,
		BodyText: views.ContactNotificationText(locale, sub),
		Tag:      "contact-form",
	})
}
