package depcheck

// Report is the ordered set of results for one run.
type Report struct {
	Results []Result
}

// Missing returns the missing results in input order.
func (r Report) Missing() []Result {
	var missing []Result
	for _, res := range r.Results {
		if !res.Present() {
			missing = append(missing, res)
		}
	}
	return missing
}

// MissingCount returns the number of missing dependencies.
func (r Report) MissingCount() int {
	n := 0
	for _, res := range r.Results {
		if !res.Present() {
			n++
		}
	}
	return n
}

// OK reports whether every dependency is present. An empty report is OK.
func (r Report) OK() bool {
	return r.MissingCount() == 0
}
