package file_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Marco22874/lares-frontend/pkg/file"
)

func TestCleanPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "gallery/abc.webp", want: "gallery/abc.webp"},
		{in: "/gallery//abc.webp", want: "gallery/abc.webp"},
		{in: "./gallery/./abc.webp", want: "gallery/abc.webp"},
		{in: `gallery\abc.webp`, want: "gallery/abc.webp"},
		{in: "", want: ""},
		{in: "../etc/passwd", wantErr: true},
		{in: "gallery/../../x", wantErr: true},
		{in: `..\x`, wantErr: true},
		{in: "a\x00b", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := file.CleanPath(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, file.ErrInvalidPath)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContentType(t *testing.T) {
	t.Parallel()

	png := []byte("\x89PNG\r\n\x1a\n0000")
	assert.Equal(t, "image/webp", file.ContentType("image/webp; charset=binary", "x.bin", nil))
	assert.Equal(t, "image/jpeg", file.ContentType("application/octet-stream", "photo.JPG", nil))
	assert.Equal(t, "image/png", file.ContentType("", "noext", png))
	assert.Equal(t, "application/octet-stream", file.ContentType("", "noext", nil))
}

func TestExtensionFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ".jpg", file.ExtensionFor("image/jpeg"))
	assert.Equal(t, ".webp", file.ExtensionFor("image/webp"))
	assert.Equal(t, "", file.ExtensionFor("application/x-lares-unknown"))
}

func TestSanitizeFilename(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "casa_comune.jpg", file.SanitizeFilename("casa comune.jpg"))
	assert.Equal(t, "passwd", file.SanitizeFilename("../../etc/passwd"))
	assert.Equal(t, "file", file.SanitizeFilename("..."))
	assert.Equal(t, "x.png", file.SanitizeFilename(`C:\tmp\x.png`))
}
