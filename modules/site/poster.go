package site

import (
	"context"

	"github.com/Marco22874/lares-frontend/pkg/contact"
	"github.com/Marco22874/lares-frontend/pkg/directus"
)

// DirectusPoster posts contact payloads to the CMS contact endpoint.
func DirectusPoster(c *directus.Client) contact.Poster {
	return contact.PosterFunc(func(ctx context.Context, payload contact.Payload) error {
		_, err := c.SubmitContactForm(ctx, payload)
		return err
	})
}
