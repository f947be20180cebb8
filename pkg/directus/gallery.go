package directus

import (
	"context"
	"net/url"
)

// GalleryCollection holds the photos shown on the gallery page.
const GalleryCollection = "gallery"

// ThumbnailTransforms is the image transform used for gallery thumbnails.
func ThumbnailTransforms() url.Values {
	return url.Values{
		"width":   {"480"},
		"height":  {"360"},
		"fit":     {"cover"},
		"quality": {"80"},
		"format":  {"webp"},
	}
}

// GalleryTranslation is the translated text of a gallery photo.
type GalleryTranslation struct {
	Translation
	Title   string `json:"title"`
	Alt     string `json:"alt"`
	Caption string `json:"caption"`
}

// GalleryPhoto is one row of the gallery collection.
type GalleryPhoto struct {
	ID           int                  `json:"id"`
	Image        string               `json:"image"`
	Sort         int                  `json:"sort"`
	Translations []GalleryTranslation `json:"translations"`
}

// GalleryItem is a photo ready for rendering.
type GalleryItem struct {
	ID           int
	FileID       string
	Title        string
	Alt          string
	Caption      string
	URL          string
	ThumbnailURL string
}

// Gallery lists the gallery photos in sort order with their text for locale
// and the full and thumbnail asset URLs. Photos without an image are skipped.
func Gallery(ctx context.Context, c *Client, locale string) ([]GalleryItem, error) {
	photos, err := GetCollection[GalleryPhoto](ctx, c, GalleryCollection, locale, url.Values{
		"sort": {"sort"},
	})
	if err != nil {
		return nil, err
	}

	thumb := ThumbnailTransforms()
	items := make([]GalleryItem, 0, len(photos))
	for _, p := range photos {
		if p.Image == "" {
			continue
		}
		item := GalleryItem{
			ID:           p.ID,
			FileID:       p.Image,
			URL:          c.AssetURL(p.Image, nil),
			ThumbnailURL: c.AssetURL(p.Image, thumb),
		}
		if tr, ok := PickTranslation(p.Translations, locale); ok {
			item.Title = tr.Title
			item.Alt = tr.Alt
			item.Caption = tr.Caption
		}
		if item.Alt == "" {
			item.Alt = item.Title
		}
		items = append(items, item)
	}
	return items, nil
}
