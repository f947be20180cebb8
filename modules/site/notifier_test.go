package site_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Marco22874/lares-frontend/modules/site"
	"github.com/Marco22874/lares-frontend/pkg/contact"
	"github.com/Marco22874/lares-frontend/pkg/email"
	"github.com/Marco22874/lares-frontend/pkg/i18n"
)

type failingSender struct{}

func (failingSender) SendEmail(context.Context, email.SendEmailParams) error {
	return errors.New("smtp down")
}

func TestEmailNotifier(t *testing.T) {
	t.Parallel()

	t.Run("requires recipient", func(t *testing.T) {
		t.Parallel()
		_, err := site.NewEmailNotifier(&captureSender{}, "")
		require.ErrorIs(t, err, site.ErrNoRecipient)
	})

	t.Run("sends owner notification", func(t *testing.T) {
		t.Parallel()
		sender := &captureSender{}
		n, err := site.NewEmailNotifier(sender, "owner@larescohousing.it")
		require.NoError(t, err)

		err = n.Notify(context.Background(), i18n.English, contact.Submission{
			Name:    " Luca Bianchi ",
			Email:   " luca@example.com ",
			Subject: "partnership",
			Message: "Possiamo collaborare?",
		})
		require.NoError(t, err)

		sent := sender.messages()
		require.Len(t, sent, 1)
		msg := sent[0]
		assert.Equal(t, "owner@larescohousing.it", msg.SendTo)
		assert.Equal(t, "luca@example.com", msg.ReplyTo)
		assert.Equal(t, "[Lares] Collaborazione: Luca Bianchi", msg.Subject)
		assert.Equal(t, "contact-form", msg.Tag)
		assert.Contains(t, msg.BodyHTML, "Possiamo collaborare?")
		assert.Contains(t, msg.BodyText, "Email: luca@example.com")
	})

	t.Run("sender failure is returned", func(t *testing.T) {
		t.Parallel()
		n, err := site.NewEmailNotifier(failingSender{}, "owner@larescohousing.it")
		require.NoError(t, err)
		err = n.Notify(context.Background(), i18n.Italian, contact.Submission{Name: "Anna", Subject: "info"})
		assert.EqualError(t, err, "smtp down")
	})
}
