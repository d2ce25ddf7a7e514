package heredity

// Choose k from n items can be done in this many ways. Originally derived
// from github.com/limix/bgen /src/util/choose.c
func Choose(n, k int) int {
	if k == 1 {
		return n
	}

	ans := 1

	if k > n-k {
		k = n - k
	}

	for j := 1; j <= k; j++ {
		if n%j == 0 {
			ans *= n / j
		} else if ans%j == 0 {
			ans = ans / j * n
		} else {
			ans = (ans * n) / j
		}

		n--
	}

	return ans
}

// HypothesisSpaceSize is the number of hypotheses a full reader will emit
// for n individuals before any evidence filtering: 2^n trait subsets times
// 3^n disjoint one-copy/two-copy pairs, which is 6^n. The second return is
// false when the count does not fit in a uint64.
func HypothesisSpaceSize(n int) (uint64, bool) {
	size := uint64(1)
	for i := 0; i < n; i++ {
		next := size * 6
		if next/6 != size {
			return 0, false
		}
		size = next
	}

	return size, true
}

func WhichSQLiteDriver() string {
	return whichSQLiteDriver
}
