package popup

import "unicode"

// TextLine is one wrapped line together with the rune span it covers in the
// source string. Start is inclusive, End exclusive. For the last line of a
// paragraph End extends one rune past Text to cover the terminating newline,
// so the spans of all lines tile the source exactly.
type TextLine struct {
	Text  string
	Start int
	End   int
}

// WrapText wraps text to the given device-pixel width, preserving rune
// offsets. Paragraphs (newline-separated) wrap independently; whitespace
// runs are kept as tokens so wrapped lines reproduce the source spacing; a
// token wider than the whole line is split at character granularity. Every
// line holds at least one rune regardless of width.
func WrapText(m MetricsProvider, text string, fontSize, maxWidth float32) []TextLine {
	runes := []rune(text)
	var lines []TextLine
	paraStart := 0
	for i := 0; i <= len(runes); i++ {
		if i < len(runes) && runes[i] != '\n' {
			continue
		}
		wrapped := wrapParagraph(m, runes[paraStart:i], paraStart, fontSize, maxWidth)
		if i < len(runes) {
			// Fold the newline into the paragraph's final span.
			wrapped[len(wrapped)-1].End++
		}
		lines = append(lines, wrapped...)
		paraStart = i + 1
	}
	return lines
}

func wrapParagraph(m MetricsProvider, para []rune, base int, fontSize, maxWidth float32) []TextLine {
	if len(para) == 0 {
		return []TextLine{{Start: base, End: base}}
	}

	var lines []TextLine
	var line []rune
	var lineWidth float32
	lineStart := 0

	flush := func(end int) {
		lines = append(lines, TextLine{Text: string(line), Start: base + lineStart, End: base + end})
		lineStart = end
		line = line[:0]
		lineWidth = 0
	}

	pos := 0
	for pos < len(para) {
		tok := nextToken(para, pos)
		tokWidth := m.MeasureText(string(tok), fontSize).X
		if len(line) > 0 && lineWidth+tokWidth > maxWidth {
			flush(pos)
		}
		if len(line) == 0 && tokWidth > maxWidth {
			// Token wider than the line: consume it character by character.
			for _, r := range tok {
				w := m.MeasureText(string(append(line, r)), fontSize).X
				if len(line) > 0 && w > maxWidth {
					flush(pos)
				}
				line = append(line, r)
				pos++
			}
			lineWidth = m.MeasureText(string(line), fontSize).X
			continue
		}
		line = append(line, tok...)
		lineWidth += tokWidth
		pos += len(tok)
	}
	if len(line) > 0 || len(lines) == 0 {
		flush(pos)
	}
	return lines
}

// nextToken returns the homogeneous run (all whitespace or all non-whitespace)
// starting at pos.
func nextToken(para []rune, pos int) []rune {
	ws := unicode.IsSpace(para[pos])
	end := pos + 1
	for end < len(para) && unicode.IsSpace(para[end]) == ws {
		end++
	}
	return para[pos:end]
}

// lineHeightFor derives a line height from measured glyph extents.
func lineHeightFor(m MetricsProvider, fontSize float32) float32 {
	return m.MeasureText("Hg", fontSize).Y * 1.5
}
