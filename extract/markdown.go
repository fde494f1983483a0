package extract

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/esoxjem/luego"
)

// candidateSelector matches the content elements considered for conversion,
// in document order.
const candidateSelector = "p, h1, h2, h3, h4, h5, h6, blockquote, ul, ol, img"

// Inclusion floors: converted text at or below the floor is treated as
// boilerplate (e.g. a bare "Share" link). Headings and images are allowed
// to be short.
const (
	minBlockLength   = 20
	minHeadingLength = 3
)

// The inline rewrite rules form an ordered pipeline. Order matters: image
// substitution must run before tag stripping, and list markers before the
// list wrappers are removed.
var (
	reImgTag    = regexp.MustCompile(`(?is)<img[^>]*>`)
	reAttrSrc   = regexp.MustCompile(`(?is)\bsrc\s*=\s*["']([^"']*)["']`)
	reAttrAlt   = regexp.MustCompile(`(?is)\balt\s*=\s*["']([^"']*)["']`)
	reAttrTitle = regexp.MustCompile(`(?is)\btitle\s*=\s*["']([^"']*)["']`)
	reAttrDim   = regexp.MustCompile(`(?is)\b(?:width|height)\s*=\s*["']([^"']*)["']`)
	reLiOpen    = regexp.MustCompile(`(?is)<li[^>]*>`)
	reLiClose   = regexp.MustCompile(`(?is)</li\s*>`)
	reListWrap  = regexp.MustCompile(`(?is)</?[uo]l[^>]*>`)
	reStrong    = regexp.MustCompile(`(?is)<(?:strong|b)(?:\s[^>]*)?>(.*?)</(?:strong|b)\s*>`)
	reEm        = regexp.MustCompile(`(?is)<(?:em|i)(?:\s[^>]*)?>(.*?)</(?:em|i)\s*>`)
	reCode      = regexp.MustCompile(`(?is)<code(?:\s[^>]*)?>(.*?)</code\s*>`)
	reAnchor    = regexp.MustCompile(`(?is)<a\s[^>]*\bhref\s*=\s*["']([^"']*)["'][^>]*>(.*?)</a\s*>`)
	reBreak     = regexp.MustCompile(`(?i)<br\s*/?\s*>`)
	reTag       = regexp.MustCompile(`(?s)<[^>]+>`)
	reNewlines  = regexp.MustCompile(`\n{3,}`)
)

// entityReplacer unescapes the five standard HTML entities plus &nbsp;.
var entityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
	"&nbsp;", " ",
)

// toMarkdown converts the container's content elements to a Markdown
// document: candidate selection, ancestor dedupe, per-element inline
// conversion, inclusion thresholds, block formatting, blank-line joins.
func toMarkdown(container luego.Element, base *url.URL) string {
	var accepted []luego.Element
	var blocks []string

	for _, el := range container.Select(candidateSelector) {
		if hasAcceptedAncestor(el, accepted) {
			continue
		}

		text := convertElement(el, base)
		if utf8.RuneCountInString(text) <= inclusionFloor(el.TagName()) {
			continue
		}

		accepted = append(accepted, el)
		blocks = append(blocks, formatBlock(el, text, base))
	}

	return strings.Join(blocks, "\n\n")
}

// hasAcceptedAncestor reports whether any already-accepted element is an
// ancestor of el. This keeps a <ul> and its own <li> children, or a <p>
// nested inside an accepted <blockquote>, from being emitted twice.
func hasAcceptedAncestor(el luego.Element, accepted []luego.Element) bool {
	for parent := el.Parent(); parent != nil; parent = parent.Parent() {
		for _, a := range accepted {
			if a.Equals(parent) {
				return true
			}
		}
	}
	return false
}

// inclusionFloor returns the minimum converted-text length for an element
// kind to be kept.
func inclusionFloor(tag string) int {
	switch tag {
	case "h1", "h2", "h3", "h4", "h5", "h6", "img":
		return minHeadingLength
	default:
		return minBlockLength
	}
}

// convertElement renders a single element as inline Markdown. Images whose
// source cannot be resolved convert to the empty string and are dropped by
// the inclusion threshold.
func convertElement(el luego.Element, base *url.URL) string {
	if el.TagName() == "img" {
		return imageMarkdown(el, base)
	}

	inner, err := el.HTML()
	if err != nil {
		return ""
	}
	return renderInline(inner, base)
}

// imageMarkdown emits ![alt](url "title") for a standalone image element.
// Rejected images (too small, chrome keywords, unresolvable source) are
// dropped entirely.
func imageMarkdown(el luego.Element, base *url.URL) string {
	src := imageSource(el)
	if src == "" || rejectImage(el, src) {
		return ""
	}

	resolved, ok := luego.ResolveImageURL(src, base)
	if !ok {
		return ""
	}

	alt, _ := el.Attr("alt")
	if title, hasTitle := el.Attr("title"); hasTitle && strings.TrimSpace(title) != "" {
		return fmt.Sprintf("![%s](%s %q)", alt, resolved, title)
	}
	return fmt.Sprintf("![%s](%s)", alt, resolved)
}

// renderInline applies the ordered rewrite pipeline to inner HTML.
func renderInline(inner string, base *url.URL) string {
	s := reImgTag.ReplaceAllStringFunc(inner, func(tag string) string {
		return inlineImageMarkdown(tag, base)
	})
	s = reLiOpen.ReplaceAllString(s, "\n- ")
	s = reLiClose.ReplaceAllString(s, "")
	s = reListWrap.ReplaceAllString(s, "")
	s = reStrong.ReplaceAllString(s, "**$1**")
	s = reEm.ReplaceAllString(s, "*$1*")
	s = reCode.ReplaceAllString(s, "`$1`")
	s = reAnchor.ReplaceAllString(s, "[$2]($1)")
	s = reBreak.ReplaceAllString(s, " ")
	s = reTag.ReplaceAllString(s, "")
	s = entityReplacer.Replace(s)
	s = reNewlines.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// inlineImageMarkdown rewrites an <img …> tag found inside inner HTML,
// whatever its attribute order. Rejected and unresolvable images are
// dropped.
func inlineImageMarkdown(tag string, base *url.URL) string {
	src := firstGroup(reAttrSrc, tag)
	if src == "" || rejectImageTag(tag, src) {
		return ""
	}

	resolved, ok := luego.ResolveImageURL(src, base)
	if !ok {
		return ""
	}

	alt := firstGroup(reAttrAlt, tag)
	if title := firstGroup(reAttrTitle, tag); title != "" {
		return fmt.Sprintf("![%s](%s %q)", alt, resolved, title)
	}
	return fmt.Sprintf("![%s](%s)", alt, resolved)
}

// rejectImageTag applies the image rejection rules to a raw <img …> tag:
// a declared width/height under the minimum, or a chrome keyword in the
// source URL.
func rejectImageTag(tag, src string) bool {
	for _, m := range reAttrDim.FindAllStringSubmatch(tag, -1) {
		if n, err := strconv.Atoi(strings.TrimSpace(m[1])); err == nil && n < minImageDimension {
			return true
		}
	}
	return hasImageKeyword(src)
}

// firstGroup returns the first capture group of the first match, trimmed.
func firstGroup(re *regexp.Regexp, s string) string {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// formatBlock applies block-level Markdown formatting to converted text.
func formatBlock(el luego.Element, text string, base *url.URL) string {
	switch tag := el.TagName(); tag {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		level := int(tag[1] - '0')
		return strings.Repeat("#", level) + " " + text
	case "blockquote":
		return "> " + text
	case "ul", "ol":
		return listMarkdown(el, base)
	default:
		return text
	}
}

// listMarkdown converts each <li> child independently and joins the items
// with newlines. Only direct children are iterated: a nested list's items
// already appear in their parent item's inline rendering.
func listMarkdown(list luego.Element, base *url.URL) string {
	var items []string
	for _, li := range list.Select("li") {
		if parent := li.Parent(); parent == nil || !parent.Equals(list) {
			continue
		}
		inner, err := li.HTML()
		if err != nil {
			continue
		}
		item := renderInline(inner, base)
		if item == "" {
			continue
		}
		items = append(items, "- "+item)
	}
	return strings.Join(items, "\n")
}
