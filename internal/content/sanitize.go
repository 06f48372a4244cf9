package content

import (
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

// The allow-list mirrors what the admin editor can produce: headings 1-4,
// inline marks, lists, blockquotes, code blocks, links, images by URL,
// horizontal rules and text alignment. Anything else, scripts above all,
// is stripped before the HTML reaches a page.
var policy = buildPolicy()

var textAlign = regexp.MustCompile(`(?i)^text-align:\s*(left|center|right|justify);?$`)

func buildPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowStandardURLs()
	p.AllowElements(
		"p", "br", "h1", "h2", "h3", "h4",
		"strong", "b", "em", "i", "u", "s", "mark",
		"ul", "ol", "li", "blockquote", "pre", "code", "hr",
	)
	p.AllowAttrs("href").OnElements("a")
	p.AllowAttrs("src", "alt").OnElements("img")
	p.AllowAttrs("style").Matching(textAlign).OnElements("p", "h1", "h2", "h3", "h4")
	return p
}

// Sanitize passes stored editor HTML through the allow-list policy. The
// stored value stays verbatim; only the read path is filtered.
func Sanitize(html string) string {
	if html == "" {
		return ""
	}
	return policy.Sanitize(html)
}
