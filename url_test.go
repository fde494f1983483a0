package luego_test

import (
	"net/url"
	"testing"

	"github.com/esoxjem/luego"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeURL(t *testing.T) {
	t.Parallel()

	t.Run("passes through absolute https URL", func(t *testing.T) {
		t.Parallel()

		u, err := luego.NormalizeURL("https://example.com/article")

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/article", u.String())
	})

	t.Run("trims whitespace", func(t *testing.T) {
		t.Parallel()

		u, err := luego.NormalizeURL("  https://example.com  ")

		require.NoError(t, err)
		assert.Equal(t, "example.com", u.Host)
	})

	t.Run("prepends https when scheme missing", func(t *testing.T) {
		t.Parallel()

		u, err := luego.NormalizeURL("example.com/post/1")

		require.NoError(t, err)
		assert.Equal(t, "https", u.Scheme)
		assert.Equal(t, "example.com", u.Host)
	})

	t.Run("prepends https when :// appears only in the query", func(t *testing.T) {
		t.Parallel()

		u, err := luego.NormalizeURL("example.com/share?u=https://other.com")

		require.NoError(t, err)
		assert.Equal(t, "https", u.Scheme)
		assert.Equal(t, "example.com", u.Host)
	})

	t.Run("keeps explicit http", func(t *testing.T) {
		t.Parallel()

		u, err := luego.NormalizeURL("http://example.com")

		require.NoError(t, err)
		assert.Equal(t, "http", u.Scheme)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := luego.NormalizeURL("   ")

		require.Error(t, err)
		assert.Equal(t, luego.EINVALID, luego.ErrorCode(err))
	})

	t.Run("rejects non-http scheme", func(t *testing.T) {
		t.Parallel()

		_, err := luego.NormalizeURL("ftp://example.com")

		require.Error(t, err)
		assert.Equal(t, luego.EINVALID, luego.ErrorCode(err))
	})

	t.Run("rejects URL without host", func(t *testing.T) {
		t.Parallel()

		_, err := luego.NormalizeURL("https:///path-only")

		require.Error(t, err)
		assert.Equal(t, luego.EINVALID, luego.ErrorCode(err))
	})
}

func TestResolveImageURL(t *testing.T) {
	t.Parallel()

	base, err := url.Parse("https://site.com/a/b?utm=1")
	require.NoError(t, err)

	tests := []struct {
		name     string
		ref      string
		want     string
		resolved bool
	}{
		{"absolute https passes through", "https://cdn.com/x.png", "https://cdn.com/x.png", true},
		{"absolute http passes through", "http://cdn.com/x.png", "http://cdn.com/x.png", true},
		{"protocol-relative gets https", "//cdn.com/x.png", "https://cdn.com/x.png", true},
		{"host-relative resolves against base", "/img/pic.jpg", "https://site.com/img/pic.jpg", true},
		{"host-relative strips query", "/img/pic.jpg?w=50", "https://site.com/img/pic.jpg", true},
		{"data URI passes through", "data:image/png;base64,AAAA", "data:image/png;base64,AAAA", true},
		{"javascript is unresolvable", "javascript:alert(1)", "", false},
		{"bare relative path is unresolvable", "img/pic.jpg", "", false},
		{"empty is unresolvable", "  ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := luego.ResolveImageURL(tt.ref, base)

			assert.Equal(t, tt.resolved, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
