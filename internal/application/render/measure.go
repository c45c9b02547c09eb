package render

import "strings"

// Deterministic stand-in for font metrics: the planner only needs wrapped
// text heights that are stable across runs, not pixel-true Helvetica widths.
const (
	avgCharWidth = 5.0  // ≈ Helvetica 9pt average advance
	lineHeight   = 11.0 // 9pt glyphs plus leading
)

// measureTextHeight returns the height of s greedily word-wrapped into the
// given width. Empty text measures zero; callers clamp row heights to the
// minimum themselves.
func measureTextHeight(s string, width float64) float64 {
	return float64(wrapLineCount(s, width)) * lineHeight
}

// wrapLineCount counts the lines of a greedy word wrap. Words longer than a
// full line are hard-broken.
func wrapLineCount(s string, width float64) int {
	if s == "" {
		return 0
	}
	perLine := int(width / avgCharWidth)
	if perLine < 1 {
		perLine = 1
	}

	lines := 0
	for _, paragraph := range strings.Split(s, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines++ // blank line still occupies a row
			continue
		}
		lines++
		lineLen := 0
		for _, w := range words {
			runes := len([]rune(w))
			if lineLen > 0 {
				if lineLen+1+runes <= perLine {
					lineLen += 1 + runes
					continue
				}
				lines++
				lineLen = 0
			}
			for runes > perLine { // hard break an oversized word
				lines++
				runes -= perLine
			}
			lineLen = runes
		}
	}
	return lines
}
