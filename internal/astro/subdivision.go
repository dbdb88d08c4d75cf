package astro

// Interval is one proportional slice of a parent span. The metric is
// abstract: the dasha engine measures spans in days, the KP engine in
// degrees. Start is inclusive, End exclusive except for the final
// interval of a span.
type Interval struct {
	Lord  Planet
	Start float64
	End   float64
}

// Span returns the interval's width in the parent's metric.
func (iv Interval) Span() float64 {
	return iv.End - iv.Start
}

// Subdivide splits [start, start+span) into the nine Vimshottari
// sub-intervals, beginning with lead and proceeding in sequence order.
// Each sub-interval's width is span * years(lord)/120. The last interval
// is pinned to the exact parent end so the children always tile the
// parent regardless of floating-point drift.
//
// This single routine backs both the dasha timeline (temporal spans) and
// the KP sub-lord ladder (angular spans).
func Subdivide(start, span float64, lead Planet) []Interval {
	leadIdx := SequenceIndex(lead)
	if leadIdx < 0 {
		return nil
	}

	out := make([]Interval, 0, 9)
	cursor := start
	for i := 0; i < 9; i++ {
		lord := VimshottariSequence[(leadIdx+i)%9]
		width := span * VimshottariYears[lord] / VimshottariTotalYears
		end := cursor + width
		if i == 8 {
			end = start + span
		}
		out = append(out, Interval{Lord: lord, Start: cursor, End: end})
		cursor = end
	}
	return out
}

// Locate returns the interval containing pos. Positions at or beyond the
// parent end resolve to the final interval.
func Locate(intervals []Interval, pos float64) Interval {
	for _, iv := range intervals {
		if pos < iv.End {
			return iv
		}
	}
	return intervals[len(intervals)-1]
}

// DrillDown repeatedly subdivides the interval containing pos, starting
// from a parent span ruled by lead, and returns the chain of intervals
// from the first level down to the requested depth. Depth 1 yields the
// star-level lord, depth 2 adds the sub lord, and so on.
func DrillDown(pos, start, span float64, lead Planet, depth int) []Interval {
	chain := make([]Interval, 0, depth)
	curStart, curSpan, curLead := start, span, lead
	for level := 0; level < depth; level++ {
		iv := Locate(Subdivide(curStart, curSpan, curLead), pos)
		chain = append(chain, iv)
		curStart, curSpan, curLead = iv.Start, iv.Span(), iv.Lord
	}
	return chain
}
