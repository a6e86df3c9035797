// Package grapheme measures and cuts terminal text by grapheme cluster, so a
// status row can be fitted to the terminal without splitting a cluster.
package grapheme

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// ClusterWidth returns the terminal cell width of one grapheme cluster.
func ClusterWidth(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		w = uniseg.StringWidth(cluster)
	}
	if w < 0 {
		w = 0
	}
	return w
}

// Width returns the terminal cell width of text.
func Width(text string) int {
	w := 0
	for _, c := range Split(text) {
		w += ClusterWidth(c)
	}
	return w
}

// Truncate returns the longest prefix of text, in whole clusters, that fits in
// width cells. When text is cut, tail is appended and counted in width.
func Truncate(text string, width int, tail string) string {
	if width <= 0 {
		return ""
	}
	if Width(text) <= width {
		return text
	}

	tw := Width(tail)
	if tw > width {
		tail, tw = "", 0
	}
	budget := width - tw

	var sb strings.Builder
	used := 0
	for _, c := range Split(text) {
		cw := ClusterWidth(c)
		if used+cw > budget {
			break
		}
		sb.WriteString(c)
		used += cw
	}
	sb.WriteString(tail)
	return sb.String()
}
