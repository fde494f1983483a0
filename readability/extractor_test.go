package readability_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/esoxjem/luego"
	"github.com/esoxjem/luego/htmltomarkdown"
	"github.com/esoxjem/luego/mock"
	"github.com/esoxjem/luego/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// articlePage builds a page with enough prose for readability to score it
// as an article.
func articlePage(head string) string {
	var paragraphs strings.Builder
	for i := 0; i < 10; i++ {
		fmt.Fprintf(&paragraphs,
			"<p>Paragraph number %d carries a full sentence of article prose so the scoring has something to work with.</p>\n", i)
	}
	return `<!DOCTYPE html>
<html>
<head>` + head + `</head>
<body>
<nav><a href="/home">Home Nav Link</a></nav>
<article>` + paragraphs.String() + `</article>
<footer><p>Footer copyright text 2024</p></footer>
</body>
</html>`
}

func newExtractor(html string) *readability.Extractor {
	fetcher := &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (string, error) {
			return html, nil
		},
	}
	return readability.NewExtractor(fetcher, htmltomarkdown.NewConverter())
}

func TestExtractor_FetchContent(t *testing.T) {
	t.Parallel()

	t.Run("extracts prose and strips chrome", func(t *testing.T) {
		t.Parallel()

		ext := newExtractor(articlePage("<title>Page Title</title>"))

		content, err := ext.FetchContent(context.Background(), "https://example.com/post")

		require.NoError(t, err)
		assert.Equal(t, "Page Title", content.Title)
		assert.Contains(t, content.Content, "Paragraph number 3")
		assert.NotContains(t, content.Content, "Home Nav Link")
		assert.NotContains(t, content.Content, "Footer copyright text")
		assert.Positive(t, content.WordCount)
	})

	t.Run("fails on pages with no article", func(t *testing.T) {
		t.Parallel()

		ext := newExtractor(`<!DOCTYPE html><html><head><title>T</title></head>
<body><p>tiny</p></body></html>`)

		_, err := ext.FetchContent(context.Background(), "https://example.com")

		require.Error(t, err)
		assert.Equal(t, luego.ENOCONTENT, luego.ErrorCode(err))
	})
}

func TestExtractor_FetchMetadata(t *testing.T) {
	t.Parallel()

	t.Run("maps byline and excerpt", func(t *testing.T) {
		t.Parallel()

		head := `<title>Page Title</title>
<meta name="author" content="Jane Writer">
<meta property="og:description" content="A short summary of the piece.">`
		ext := newExtractor(articlePage(head))

		meta, err := ext.FetchMetadata(context.Background(), "https://example.com/post")

		require.NoError(t, err)
		assert.Equal(t, "Page Title", meta.Title)
		assert.Equal(t, "Jane Writer", meta.Author)
		assert.Equal(t, "A short summary of the piece.", meta.Description)
	})

	t.Run("resolves the lead image", func(t *testing.T) {
		t.Parallel()

		head := `<title>Page Title</title>
<meta property="og:image" content="https://cdn.example.com/lead.jpg">`
		ext := newExtractor(articlePage(head))

		meta, err := ext.FetchMetadata(context.Background(), "https://example.com/post")

		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/lead.jpg", meta.ThumbnailURL)
	})

	t.Run("title falls back to host", func(t *testing.T) {
		t.Parallel()

		ext := newExtractor(articlePage(""))

		meta, err := ext.FetchMetadata(context.Background(), "https://example.com/post")

		require.NoError(t, err)
		assert.Equal(t, "example.com", meta.Title)
	})
}

func TestExtractor_ErrorCodes(t *testing.T) {
	t.Parallel()

	t.Run("invalid URL", func(t *testing.T) {
		t.Parallel()

		ext := newExtractor("<html></html>")

		_, err := ext.FetchMetadata(context.Background(), "   ")
		assert.Equal(t, luego.EINVALID, luego.ErrorCode(err))
	})

	t.Run("fetch failure", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", luego.Errorf(luego.ENETWORK, "HTTP 503 for %s", url)
			},
		}
		ext := readability.NewExtractor(fetcher, htmltomarkdown.NewConverter())

		_, err := ext.FetchContent(context.Background(), "https://example.com")
		assert.Equal(t, luego.ENETWORK, luego.ErrorCode(err))
	})
}
