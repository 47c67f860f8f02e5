package calcview

import (
	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/calcfield/internal/grapheme"
)

// lineLayout places the expression clusters on one right-aligned row. The
// row always ends with a one-cell slot for the caret.
type lineLayout struct {
	clusters []string
	cells    []int // start cell of each cluster, after padding
	pad      int
	end      int // first cell after the last cluster
}

func layoutLine(text string, width int) lineLayout {
	c := grapheme.Split(text)
	l := lineLayout{clusters: c, cells: make([]int, len(c))}

	total := 1
	for _, g := range c {
		total += clusterWidth(g)
	}
	if width > total {
		l.pad = width - total
	}

	x := l.pad
	for i, g := range c {
		l.cells[i] = x
		x += clusterWidth(g)
	}
	l.end = x
	return l
}

// clusterWidth is the terminal width of one cluster; zero-width clusters still
// take a cell so every offset stays clickable.
func clusterWidth(g string) int {
	w := runewidth.StringWidth(g)
	if w < 1 {
		return 1
	}
	return w
}

// offsetAt maps a cell column on the expression row to a character offset.
// Clicks on the right half of a wide cluster land after it.
func (l lineLayout) offsetAt(x int) int {
	if x < l.pad {
		return 0
	}
	if x >= l.end {
		return len(l.clusters)
	}
	for i := len(l.cells) - 1; i >= 0; i-- {
		if x < l.cells[i] {
			continue
		}
		w := clusterWidth(l.clusters[i])
		if w > 1 && x-l.cells[i] >= (w+1)/2 {
			return i + 1
		}
		return i
	}
	return 0
}
