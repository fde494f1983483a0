package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/esoxjem/luego"
)

// brSentinel survives a parse/serialize round trip so explicit line breaks
// can be restored after plain-text extraction. A private-use rune that never
// appears in real article text.
const brSentinel = "\uE000"

// minParagraphLength filters fragments too short to be article prose.
const minParagraphLength = 30

// boilerplateKeywords mark paragraphs that are navigation or legal noise
// rather than article text. Matched case-insensitively.
var boilerplateKeywords = []string{
	"cookie",
	"privacy policy",
	"terms of service",
	"subscribe",
	"newsletter",
	"share this",
	"follow us",
	"copyright ©",
	"all rights reserved",
}

var reParagraphBreak = regexp.MustCompile(`\n\s*\n`)

// plainText is the second-tier extraction path, used when the Markdown
// conversion yields too little text. It re-serializes the container with
// <br> tags replaced by a sentinel, re-parses, and rebuilds paragraphs from
// the plain text, dropping short and boilerplate fragments.
func plainText(container luego.Element, parser luego.Parser) string {
	inner, err := container.HTML()
	if err != nil {
		return ""
	}

	doc, err := parser.Parse(reBreak.ReplaceAllString(inner, brSentinel))
	if err != nil {
		return ""
	}

	body := doc.Select("body")
	if len(body) == 0 {
		return ""
	}

	text := strings.ReplaceAll(body[0].Text(), brSentinel, "\n")

	var paragraphs []string
	for _, paragraph := range reParagraphBreak.Split(text, -1) {
		paragraph = strings.Join(strings.Fields(paragraph), " ")
		if utf8.RuneCountInString(paragraph) <= minParagraphLength {
			continue
		}
		if isBoilerplate(paragraph) {
			continue
		}
		paragraphs = append(paragraphs, paragraph)
	}

	return strings.Join(paragraphs, "\n\n")
}

// isBoilerplate reports whether a paragraph contains a denylisted keyword.
func isBoilerplate(paragraph string) bool {
	lower := strings.ToLower(paragraph)
	for _, keyword := range boilerplateKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
