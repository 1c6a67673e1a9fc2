package wc

// TotalName labels the aggregate row.
const TotalName = "total"

// ResultsSet holds the stats of every source, in the order the sources were
// read, and the total row once WithTotal has been applied.
type ResultsSet struct {
	Results []FileStats

	// HideNames drops the label column, as when only implicit stdin was read.
	HideNames bool
}

// Total sums the stats of every source, except Longest which is the largest
// of them. It reports false when there is at most one source, as no total row
// is printed then.
func (rs ResultsSet) Total() (FileStats, bool) {
	if len(rs.Results) < 2 {
		return FileStats{}, false
	}
	total := FileStats{Filename: TotalName}
	for _, r := range rs.Results {
		total.Bytes += r.Bytes
		total.Characters += r.Characters
		total.Newlines += r.Newlines
		total.Words += r.Words
		if r.Longest > total.Longest {
			total.Longest = r.Longest
		}
	}
	return total, true
}

// WithTotal returns a copy of rs with the total row appended, if there is
// one.
func (rs ResultsSet) WithTotal() ResultsSet {
	total, ok := rs.Total()
	if !ok {
		return rs
	}
	results := make([]FileStats, 0, len(rs.Results)+1)
	results = append(results, rs.Results...)
	rs.Results = append(results, total)
	return rs
}
