package brushmesh

// Combinations returns every k-subset of {0..n-1} as an ascending tuple,
// in lexicographic order: (0,1,2), (0,1,3), (0,2,3), ...
func Combinations(n, k int) [][]int {
	if k <= 0 || k > n {
		return nil
	}

	out := make([][]int, 0, binomial(n, k))

	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}

	for {
		out = append(out, append([]int(nil), idx...))

		// rightmost position that can still be advanced
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}

		if i < 0 {
			return out
		}

		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

func binomial(n, k int) int {
	if k > n-k {
		k = n - k
	}

	r := 1
	for i := 1; i <= k; i++ {
		r = r * (n - k + i) / i
	}

	return r
}
