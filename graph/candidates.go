package graph

// spliceMergedCandidates rewrites original in place (reusing its
// backing array) to hold exactly the elements that were not merged
// away plus winnerRep, appending winnerRep only if it was not already
// present among original's survivors. This is the eager strategy's
// variant: it tracks merged losers explicitly since every candidate's
// adjacency to the base was checked once, up front, against a stable
// snapshot.
func spliceMergedCandidates(original, losers []int, winnerRep int) []int {
	merged := make(map[int]struct{}, len(losers))
	for _, l := range losers {
		if l != winnerRep {
			merged[l] = struct{}{}
		}
	}

	out := original[:0]
	for _, x := range original {
		if _, gone := merged[x]; gone {
			continue
		}
		out = append(out, x)
	}

	for _, x := range out {
		if x == winnerRep {
			return out
		}
	}

	return append(out, winnerRep)
}
