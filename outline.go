package wikimd

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Heading represents an ATX heading in rendered article Markdown.
type Heading struct {
	Level  int    `json:"level"`
	Title  string `json:"title"`
	Anchor string `json:"anchor"`
}

var headingRe = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)

// Outline returns all headings (H1-H6) of article Markdown in order.
// Lines inside $$ display-math blocks are ignored. Anchors are URL-safe
// and duplicates get numeric suffixes.
func Outline(markdown string) []Heading {
	if markdown == "" {
		return nil
	}

	var headings []Heading
	anchorCounts := make(map[string]int)
	inMath := false

	for _, line := range strings.Split(markdown, "\n") {
		if n := strings.Count(line, "$$"); n > 0 {
			if n%2 == 1 {
				inMath = !inMath
			}
			continue
		}
		if inMath {
			continue
		}

		match := headingRe.FindStringSubmatch(line)
		if match == nil {
			continue
		}

		title := strings.TrimSpace(match[2])
		base := anchorFor(title)
		anchor := base
		if count, exists := anchorCounts[base]; exists {
			anchor = base + "-" + strconv.Itoa(count)
			anchorCounts[base]++
		} else {
			anchorCounts[base] = 1
		}

		headings = append(headings, Heading{
			Level:  len(match[1]),
			Title:  title,
			Anchor: anchor,
		})
	}

	return headings
}

// FormatOutline renders headings as a nested Markdown list of anchor links.
func FormatOutline(headings []Heading) string {
	if len(headings) == 0 {
		return ""
	}

	minLevel := headings[0].Level
	for _, h := range headings {
		minLevel = min(minLevel, h.Level)
	}

	var b strings.Builder
	for _, h := range headings {
		b.WriteString(strings.Repeat("  ", h.Level-minLevel))
		b.WriteString("- [")
		b.WriteString(h.Title)
		b.WriteString("](#")
		b.WriteString(h.Anchor)
		b.WriteString(")\n")
	}
	return b.String()
}

// anchorFor lowercases a title, joins words with hyphens and drops
// everything that is neither a letter nor a digit.
func anchorFor(title string) string {
	var sb strings.Builder
	prevHyphen := false

	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r):
			sb.WriteRune(r)
			prevHyphen = false
		case unicode.IsSpace(r) || r == '-' || r == '_':
			if !prevHyphen && sb.Len() > 0 {
				sb.WriteRune('-')
				prevHyphen = true
			}
		}
	}

	return strings.TrimSuffix(sb.String(), "-")
}
