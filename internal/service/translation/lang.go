package translation

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"golang.org/x/text/language"
)

// NormalizeLanguage reduces a BCP 47 code to its base language ("pt-BR" becomes "pt").
// Unparseable input is lower-cased and returned as is.
func NormalizeLanguage(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return ""
	}
	tag, err := language.Parse(code)
	if err != nil {
		return strings.ToLower(code)
	}
	base, _ := tag.Base()
	return base.String()
}

// CacheKey identifies one (source, target, text) translation.
func CacheKey(sourceLang, targetLang, text string) string {
	sum := sha256.Sum256([]byte(text))
	return sourceLang + ":" + targetLang + ":" + hex.EncodeToString(sum[:])
}
