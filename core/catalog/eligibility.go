package catalog

// EligibleFreeChoice returns the subset of `pool` a student may pick given
// the curricular courses of the chosen sub-path and its exclusion set.
// A free-choice course is dropped when its normalized code or name matches a
// curricular course (a name match alone disqualifies, even with a different
// code, and vice versa), or when its code is banned for the sub-path.
//
// The result preserves the pool's order. Pure; must be recomputed whenever
// the sub-path or the curricular set changes.
func EligibleFreeChoice(pool, curricular []Course, banned map[string]struct{}) []Course {
	currCodes := make(map[string]struct{}, len(curricular))
	currNames := make(map[string]struct{}, len(curricular))
	for _, c := range curricular {
		currCodes[c.NormCode()] = struct{}{}
		currNames[c.NormName()] = struct{}{}
	}

	eligible := make([]Course, 0, len(pool))
	for _, fc := range pool {
		if _, dup := currCodes[fc.NormCode()]; dup {
			continue
		}
		if _, dup := currNames[fc.NormName()]; dup {
			continue
		}
		if _, ban := banned[fc.NormCode()]; ban {
			continue
		}
		eligible = append(eligible, fc)
	}
	return eligible
}
