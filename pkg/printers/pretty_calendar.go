package printers

import (
	"sort"

	"github.com/fatih/color"
)

// Years prints a decade-per-row grid covering every year with entries.
// Years holding entries are bold; the rest are faint.
func (pp *PrettyPrint) Years(count map[int]int) {
	if len(count) == 0 {
		return
	}
	years := make([]int, 0, len(count))
	for y := range count {
		years = append(years, y)
	}
	sort.Ints(years)

	first := years[0] - years[0]%10
	last := years[len(years)-1]

	for decade := first; decade <= last; decade += 10 {
		pp.PrintDecadeCount(decade, count)
	}
}

// PrintDecadeCount prints the ten years starting at decade.
func (pp *PrettyPrint) PrintDecadeCount(decade int, count map[int]int) {
	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)
	tf := color.New(color.FgWhite, color.Italic)

	w := pp.out()
	_, _ = tf.Fprintf(w, "%4ds  ", decade)
	for y := decade; y < decade+10; y++ {
		if count[y] == 0 {
			_, _ = l1.Fprintf(w, "%4d ", y)
		} else {
			_, _ = l2.Fprintf(w, "%4d ", y)
		}
	}
	total := 0
	for y := decade; y < decade+10; y++ {
		total += count[y]
	}
	_, _ = color.New(color.Faint).Fprintf(w, " %d\n", total)
}
