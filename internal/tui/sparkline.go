package tui

import "strings"

// sparklineWidth is the number of samples shown in the header trend.
const sparklineWidth = 20

// sparklineRunes maps normalized values to eighth-block characters.
var sparklineRunes = []rune("▁▂▃▄▅▆▇█")

// sparkline renders values (expected in [0,100]) as a fixed-width trend,
// right-aligned so the newest sample sits at the right edge.
func sparkline(values []float64, width int) string {
	if width <= 0 {
		return ""
	}
	if len(values) > width {
		values = values[len(values)-width:]
	}

	var b strings.Builder
	b.Grow(width)
	for i := 0; i < width-len(values); i++ {
		b.WriteRune(' ')
	}
	for _, v := range values {
		if v < 0 {
			v = 0
		}
		if v > 100 {
			v = 100
		}
		idx := int(v / 100 * float64(len(sparklineRunes)-1))
		b.WriteRune(sparklineRunes[idx])
	}
	return b.String()
}
