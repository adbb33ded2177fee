package libtri

// RemoveFolds removes edges that double back on themselves from a cyclic vertex sequence.
//
// Each rotation of seq is scanned for a fold [x, y, x].  When one is found, x and y are dropped, the sequence
// continues from the second x, and the scan restarts.  Scanning stops when a full pass finds no fold or fewer
// than 3 vertices remain.  For example, [2 3 4 5 6 10 6 7] becomes [2 3 4 5 6 7].
//
// seq is not modified; the returned slice is always a new allocation.
func RemoveFolds(seq []VtxID) []VtxID {
	cur := append([]VtxID(nil), seq...)
	scratch := make([]VtxID, 0, len(seq))

	for N := len(cur); N >= 3; N = len(cur) {
		fold := -1
		for i := 0; i < N; i++ {
			if cur[i] == cur[(i+2)%N] {
				fold = i
				break
			}
		}
		if fold < 0 {
			break
		}

		scratch = scratch[:0]
		for k := 0; k < N-2; k++ {
			scratch = append(scratch, cur[(fold+2+k)%N])
		}
		cur, scratch = scratch, cur
	}

	return append([]VtxID(nil), cur...)
}

// hasRepeatedVtx returns true if any vertex appears more than once in vtx.
func hasRepeatedVtx(vtx []VtxID) bool {
	seen := make(map[VtxID]struct{}, len(vtx))
	for _, v := range vtx {
		if _, exists := seen[v]; exists {
			return true
		}
		seen[v] = struct{}{}
	}
	return false
}
