package views

import (
	"strconv"

	"github.com/a-h/templ"

	"github.com/Marco22874/lares-frontend/pkg/directus"
)

// Gallery renders the photo grid. Thumbnails link to the full image.
func Gallery(items []directus.GalleryItem) templ.Component {
	return component(func(h *htmlWriter) {
		if len(items) == 0 {
			return
		}
		h.raw(`<ul class="gallery">`)
		for _, item := range items {
			h.raw(`<li id="photo-`, strconv.Itoa(item.ID), `"><figure><a href="`)
			h.url(item.URL)
			h.raw(`"><img loading="lazy" src="`)
			h.url(item.ThumbnailURL)
			h.raw(`" alt="`)
			h.text(item.Alt)
			h.raw(`"></a>`)
			if item.Caption != "" {
				h.raw(`<figcaption>`)
				h.text(item.Caption)
				h.raw(`</figcaption>`)
			}
			h.raw(`</figure></li>`)
		}
		h.raw(`</ul>`)
	})
}
