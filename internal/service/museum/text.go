package museum

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/unicode/norm"
)

var (
	plainText = bluemonday.StrictPolicy()
	// block ends would otherwise glue adjacent paragraphs together
	blockBreaks = strings.NewReplacer("</p>", "</p> ", "<br>", " ", "<br/>", " ", "<br />", " ", "</li>", "</li> ")
)

// cleanText trims and NFC-normalizes an upstream string.
func cleanText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// stripHTML reduces an HTML fragment to single-spaced plain text.
func stripHTML(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	plain := html.UnescapeString(plainText.Sanitize(blockBreaks.Replace(s)))
	return cleanText(strings.Join(strings.Fields(plain), " "))
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
