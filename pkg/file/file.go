package file

import (
	"context"
	"io"
	"mime"
	"net/http"
	"path"
	"regexp"
	"strings"
)

// File describes a stored object.
type File struct {
	Path        string // slash-separated, relative to the storage root
	Size        int64
	ContentType string
}

// Entry is one item of a directory listing.
type Entry struct {
	Name  string
	Path  string
	IsDir bool
	Size  int64
}

// Storage is where mirrored CMS assets are kept.
type Storage interface {
	// Put writes r to p, replacing any existing object.
	Put(ctx context.Context, p string, r io.Reader, size int64, contentType string) (*File, error)
	// Exists reports whether an object is stored at p.
	Exists(ctx context.Context, p string) bool
	// Delete removes the object at p.
	Delete(ctx context.Context, p string) error
	// List returns the direct children of dir.
	List(ctx context.Context, dir string) ([]Entry, error)
	// URL returns the public URL of p.
	URL(p string) string
}

// CleanPath turns p into a slash-separated relative key, rejecting any
// attempt to leave the storage root.
func CleanPath(p string) (string, error) {
	p = strings.ReplaceAll(p, "\\", "/")
	if strings.Contains(p, "\x00") {
		return "", ErrInvalidPath
	}
	for seg := range strings.SplitSeq(p, "/") {
		if seg == ".." {
			return "", ErrInvalidPath
		}
	}
	cleaned := strings.TrimPrefix(path.Clean("/"+p), "/")
	return cleaned, nil
}

// ContentType picks a MIME type from the declared value, the file name and
// finally the first bytes of the content.
func ContentType(declared, name string, head []byte) string {
	if declared != "" {
		if mt, _, err := mime.ParseMediaType(declared); err == nil && mt != "application/octet-stream" {
			return mt
		}
	}
	if byExt := mime.TypeByExtension(strings.ToLower(path.Ext(name))); byExt != "" {
		mt, _, _ := mime.ParseMediaType(byExt)
		return mt
	}
	if len(head) > 0 {
		mt, _, _ := mime.ParseMediaType(http.DetectContentType(head))
		return mt
	}
	return "application/octet-stream"
}

// ExtensionFor returns a file extension for a MIME type, or "".
func ExtensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	case "image/png":
		return ".png"
	case "image/avif":
		return ".avif"
	case "image/svg+xml":
		return ".svg"
	}
	exts, err := mime.ExtensionsByType(contentType)
	if err != nil || len(exts) == 0 {
		return ""
	}
	return exts[0]
}

var unsafeName = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// SanitizeFilename keeps letters, digits, '.', '_' and '-' and drops any
// directory part.
func SanitizeFilename(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	name = unsafeName.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	if name == "" {
		return "file"
	}
	if len(name) > 200 {
		name = name[:200]
	}
	return name
}
