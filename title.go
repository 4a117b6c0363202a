package wikimd

import (
	"net/url"
	"regexp"
	"strings"
)

// DefaultLanguage is used when no language code is configured.
const DefaultLanguage = "en"

// relatedTopicsMarkers maps a Wikipedia language code to the heading that
// opens the trailing "related topics" section of an article.
var relatedTopicsMarkers = map[string]string{
	"fa": "جستارهای وابسته",
	"en": "See also",
	"de": "Siehe auch",
	"fr": "Voir aussi",
	"es": "Véase también",
	"it": "Voci correlate",
	"ru": "См. также",
	"ar": "انظر أيضًا",
}

// languagePattern matches Wikipedia language codes such as "en", "fa"
// or "zh-min-nan". The code becomes part of a host name and a directory.
var languagePattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// fallbackMarker is used for languages missing from relatedTopicsMarkers.
const fallbackMarker = "جستارهای وابسته"

// EncodeTitle turns free-form query text into a Wikipedia title by
// replacing every space with an underscore. No other escaping is done.
func EncodeTitle(text string) string {
	return strings.ReplaceAll(text, " ", "_")
}

// ArticleURL builds the article URL for an encoded title.
// The title is percent-encoded as a single path segment.
func ArticleURL(lang, title string) string {
	if lang == "" {
		lang = DefaultLanguage
	}
	return "https://" + lang + ".wikipedia.org/wiki/" + url.PathEscape(title)
}

// ValidateLanguage returns EINVALID unless lang is a well-formed
// language code.
func ValidateLanguage(lang string) error {
	if !languagePattern.MatchString(lang) {
		return Errorf(EINVALID, "invalid language code %q", lang)
	}
	return nil
}

// RelatedTopicsMarker returns the heading text marking the end of the
// extractable article body for a language. An empty code means
// DefaultLanguage.
func RelatedTopicsMarker(lang string) string {
	if lang == "" {
		lang = DefaultLanguage
	}
	if m, ok := relatedTopicsMarkers[strings.ToLower(lang)]; ok {
		return m
	}
	return fallbackMarker
}
