package chart

import (
	"fmt"
	"strconv"
	"strings"
)

var multipliers = []string{"", "k", "M", "G", "T", "P"}

// Fit shortens a number so it stays under 8 characters, 12400000 -> 12M.
func Fit(x float64) string {
	var f string
	for _, m := range multipliers {
		f = fmt.Sprintf("%s%s", strconv.FormatFloat(x, 'f', 0, 64), m)
		if len(f) < 8 {
			return f
		}
		x /= 1000
	}
	return f
}

func Truncate(x string, max int) string {
	if len(x) < max {
		return x
	}
	return x[:max-3] + "..."
}

// HorizontalBar renders labeled bars scaled to width, at most size
// rows (0 for all), each row prefixed with prefix. Labels are padded
// to the widest one and annotated with value and percent of total.
func HorizontalBar(x []float64, y []string, symbol rune, width int, prefix string, size int) string {
	end := len(x)
	if size > 0 && size < end {
		end = size
	}
	max := float64(0)
	sum := float64(0)
	for _, v := range x {
		sum += v
	}
	for i := 0; i < end; i++ {
		if x[i] > max {
			max = x[i]
		}
	}

	maxLabelWidth := 0
	labels := make([]string, len(y))
	for i, v := range y {
		v = Truncate(v, width/2)
		labels[i] = v
		if len(v) > maxLabelWidth {
			maxLabelWidth = len(v)
		}
	}

	barWidth := width - maxLabelWidth - 10 - 5 - len(prefix)
	if barWidth < 0 {
		barWidth = 0
	}
	lines := []string{}
	for i := 0; i < end; i++ {
		label := labels[i] + strings.Repeat(" ", maxLabelWidth-len(labels[i]))
		bar := ""
		if max > 0 {
			bar = strings.Repeat(string(symbol), int((x[i]/max)*float64(barWidth)))
		}
		percent := float64(0)
		if sum > 0 {
			percent = 100 * (x[i] / sum)
		}
		lines = append(lines, fmt.Sprintf("%s%s %8s %6s%% %s", prefix, label, Fit(x[i]), fmt.Sprintf("%.2f", percent), bar))
	}
	if end < len(x) {
		lines = append(lines, fmt.Sprintf("%s....... skipping %d", prefix, len(x)-end))
	}
	return strings.Join(lines, "\n")
}

// Banner draws a boxed section title, fixed 80 columns.
func Banner(s string) string {
	width := 80
	pad := width - 3 - len(s)
	if pad < 0 {
		pad = 0
	}
	top := "\n┌" + strings.Repeat("─", width-2) + "┐\n"
	mid := "│ " + s + strings.Repeat(" ", pad) + "│\n"
	bottom := "└" + strings.Repeat("─", width-2) + "┘\n"
	return top + mid + bottom
}
