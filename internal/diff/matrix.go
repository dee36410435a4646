package diff

// buildCompatMatrix builds the |v1|x|v2| 0/1 compatibility matrix per
// spec.md §4.9 step 2: kinds compatible, and each of v1[i]'s degrees no
// greater than v2[j]'s.
func buildCompatMatrix(v1, v2 []vertex) [][]bool {
	m := make([][]bool, len(v1))
	for i := range v1 {
		m[i] = make([]bool, len(v2))
		for j := range v2 {
			if kindCompatible(v1[i].node.Kind, v2[j].node.Kind) &&
				v1[i].degreeIn <= v2[j].degreeIn &&
				v1[i].degreeOut <= v2[j].degreeOut {
				m[i][j] = true
			}
		}
	}
	return m
}

// greedyMaximumMatching selects a maximum matching P from compatibility
// matrix m per spec.md §4.9 step 3: if no row or column has more than
// one candidate, the matrix itself is the matching. Otherwise iterate
// candidate cells in row-major order, trying each as the seed of a
// matching and keeping the largest one found.
func greedyMaximumMatching(m [][]bool) [][]bool {
	n, k := len(m), 0
	if n > 0 {
		k = len(m[0])
	}

	rowCount := make([]int, n)
	colCount := make([]int, k)
	for i := 0; i < n; i++ {
		for j := 0; j < k; j++ {
			if m[i][j] {
				rowCount[i]++
				colCount[j]++
			}
		}
	}

	simple := true
	for i := 0; i < n && simple; i++ {
		if rowCount[i] > 1 {
			simple = false
		}
	}
	for j := 0; j < k && simple; j++ {
		if colCount[j] > 1 {
			simple = false
		}
	}
	if simple {
		return m
	}

	best := newBoolMatrix(n, k)
	bestCount := 0

	for i := 0; i < n; i++ {
		for j := 0; j < k; j++ {
			if !m[i][j] {
				continue
			}
			p := newBoolMatrix(n, k)
			p[i][j] = true
			total := 1
			for x := 0; x < n; x++ {
				for y := 0; y < k; y++ {
					if x == i && y == j {
						continue
					}
					if !m[x][y] {
						continue
					}
					if rowTaken(p, x) || colTaken(p, y) {
						continue
					}
					p[x][y] = true
					total++
				}
			}
			if total > bestCount {
				best = p
				bestCount = total
			}
		}
	}

	return best
}

func newBoolMatrix(n, k int) [][]bool {
	m := make([][]bool, n)
	for i := range m {
		m[i] = make([]bool, k)
	}
	return m
}

func rowTaken(p [][]bool, row int) bool {
	for _, v := range p[row] {
		if v {
			return true
		}
	}
	return false
}

func colTaken(p [][]bool, col int) bool {
	for _, r := range p {
		if r[col] {
			return true
		}
	}
	return false
}
