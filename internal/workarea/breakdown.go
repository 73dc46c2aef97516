package workarea

import "sort"

// OthersLabel names the wedge that collects every minor user.
const OthersLabel = "Others"

// DefaultOthersThreshold is the share at or below which a user is folded
// into Others.
const DefaultOthersThreshold = 0.05

// Wedge is one slice of the pie.
type Wedge struct {
	Label   string
	ValueMB float64
	// Others is set on the synthetic wedge so a real user named "Others"
	// is never confused with it.
	Others bool
}

// Share returns the wedge's fraction of total, or 0 when total is not positive.
func (w Wedge) Share(total float64) float64 {
	if total <= 0 {
		return 0
	}
	return w.ValueMB / total
}

// Breakdown is the per-user aggregate of one table.
type Breakdown struct {
	Total  float64
	Users  int
	Wedges []Wedge
}

// Drawable reports whether there is anything to put in a pie. A table whose
// sessions all report zero work area has no meaningful shares.
func (b Breakdown) Drawable() bool {
	return b.Total > 0 && len(b.Wedges) > 0
}

// Sum adds up every wedge. It equals Total up to rounding.
func (b Breakdown) Sum() float64 {
	var sum float64
	for _, w := range b.Wedges {
		sum += w.ValueMB
	}
	return sum
}

// Shares returns each wedge's fraction of Total, in wedge order.
func (b Breakdown) Shares() []float64 {
	shares := make([]float64, len(b.Wedges))
	for i, w := range b.Wedges {
		shares[i] = w.Share(b.Total)
	}
	return shares
}

// Aggregate groups the table by user. Users whose share of the total is
// strictly greater than threshold get their own wedge, sorted by name; all
// others are summed into one trailing Others wedge, which is omitted when no
// user falls at or below the threshold. A zero total yields no wedges.
func Aggregate(t Table, threshold float64) Breakdown {
	b := Breakdown{
		Total: t.Total(),
		Users: t.DistinctUsers(),
	}
	if b.Total <= 0 {
		return b
	}

	byUser := make(map[string]float64)
	for _, r := range t.Rows {
		byUser[r.User] += r.WorkAreaMB
	}

	users := make([]string, 0, len(byUser))
	for u := range byUser {
		users = append(users, u)
	}
	sort.Strings(users)

	var others float64
	var hasOthers bool
	for _, u := range users {
		v := byUser[u]
		if v/b.Total > threshold {
			b.Wedges = append(b.Wedges, Wedge{Label: u, ValueMB: v})
			continue
		}
		others += v
		hasOthers = true
	}
	if hasOthers {
		b.Wedges = append(b.Wedges, Wedge{Label: OthersLabel, ValueMB: others, Others: true})
	}
	return b
}
