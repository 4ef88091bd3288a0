package hub

import "github.com/lehigh-university-libraries/curator/helpers"

// Affiliation is one <affiliation> of a creator or contributor.
type Affiliation struct {
	Value string `json:"value" yaml:"value"`
	RORID string `json:"rorId" yaml:"rorId"`
}

// Duplicates reports whether a and b denote the same affiliation: their
// ROR ids match case-insensitively when both carry one, otherwise their
// whitespace-collapsed, case-folded values match.
func (a Affiliation) Duplicates(b Affiliation) bool {
	if a.RORID != "" && b.RORID != "" {
		return helpers.RORKey(a.RORID) == helpers.RORKey(b.RORID)
	}
	return helpers.MatchKey(a.Value) == helpers.MatchKey(b.Value)
}

// MergeAffiliations appends each incoming affiliation that does not
// duplicate one already present. When a duplicate brings a ROR id the
// existing entry lacks, the id is adopted; the first-seen value is kept.
func MergeAffiliations(existing []Affiliation, incoming ...Affiliation) []Affiliation {
	out := append(make([]Affiliation, 0, len(existing)+len(incoming)), existing...)
	for _, in := range incoming {
		merged := false
		for i := range out {
			if !out[i].Duplicates(in) {
				continue
			}
			if out[i].RORID == "" && in.RORID != "" {
				out[i].RORID = in.RORID
			}
			if out[i].Value == "" && in.Value != "" {
				out[i].Value = in.Value
			}
			merged = true
			break
		}
		if !merged {
			out = append(out, in)
		}
	}
	return out
}
