package extract

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/esoxjem/luego"
)

// containerSelectors are evaluated in order; the first match with enough
// text wins. body is the unconditional last resort.
var containerSelectors = []string{
	"article",
	"main",
	"[role=main]",
	".post-content",
	".article-content",
	".entry-content",
	".content",
	"body",
}

// minContainerTextLength is the plain-text floor a candidate container must
// exceed to be chosen.
const minContainerTextLength = 100

// minImageDimension rejects images whose declared width or height is below
// this value.
const minImageDimension = 200

// imageKeywords mark image URLs that are page chrome rather than content.
var imageKeywords = []string{"icon", "logo", "avatar", "pixel", "tracking", "badge", "button"}

// locateContainer selects the DOM subtree most likely to hold the article
// body. Returns ENOCONTENT only when the document has no body at all.
func locateContainer(doc luego.Document) (luego.Element, error) {
	for _, selector := range containerSelectors {
		for _, el := range doc.Select(selector) {
			if utf8.RuneCountInString(strings.TrimSpace(el.Text())) > minContainerTextLength {
				return el, nil
			}
		}
	}

	if body := doc.Select("body"); len(body) > 0 {
		return body[0], nil
	}

	return nil, luego.Errorf(luego.ENOCONTENT, "document has no body")
}

// firstContentImage finds a representative image by scanning the candidate
// containers in priority order, skipping images that declare themselves too
// small or whose URL suggests page chrome.
func firstContentImage(doc luego.Document) string {
	for _, selector := range containerSelectors {
		for _, container := range doc.Select(selector) {
			for _, img := range container.Select("img") {
				src := imageSource(img)
				if src == "" || rejectImage(img, src) {
					continue
				}
				return src
			}
		}
	}
	return ""
}

// imageSource returns the image's src, falling back to data-src for
// lazy-loaded images.
func imageSource(img luego.Element) string {
	src, _ := img.Attr("src")
	if strings.TrimSpace(src) == "" {
		src, _ = img.Attr("data-src")
	}
	return strings.TrimSpace(src)
}

// rejectImage reports whether an image should be skipped: a numeric
// width/height attribute under the minimum, or a denylisted keyword in the
// URL.
func rejectImage(img luego.Element, src string) bool {
	for _, name := range []string{"width", "height"} {
		raw, ok := img.Attr(name)
		if !ok {
			continue
		}
		if n, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil && n < minImageDimension {
			return true
		}
	}

	return hasImageKeyword(src)
}

// hasImageKeyword reports whether the image URL contains a denylisted
// keyword, case-insensitively.
func hasImageKeyword(src string) bool {
	lower := strings.ToLower(src)
	for _, keyword := range imageKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
