package workarea

import (
	"fmt"
	"math"
)

// mbPerGB is the binary step used for every MB/GB switch.
const mbPerGB = 1024

// FormatTotal renders the table total for the chart title: two decimals in
// either unit, switching to GB above 1024 MB.
func FormatTotal(mb float64) string {
	if mb > mbPerGB {
		return fmt.Sprintf("%.2f GB", mb/mbPerGB)
	}
	return fmt.Sprintf("%.2f MB", mb)
}

// FormatWedge renders a wedge value. The MB figure is rounded to a whole
// number first, halves to even; GB keeps two decimals while MB keeps one.
func FormatWedge(mb float64) string {
	v := math.RoundToEven(mb)
	if v > mbPerGB {
		return fmt.Sprintf("%.2f GB", v/mbPerGB)
	}
	return fmt.Sprintf("%.1f MB", v)
}

// WedgeLabel renders the two-line wedge annotation: the percentage of total
// with one decimal, then the absolute value in parentheses.
func WedgeLabel(w Wedge, total float64) string {
	return fmt.Sprintf("%.1f%%\n(%s)", w.Share(total)*100, FormatWedge(w.ValueMB))
}
