// SPDX-License-Identifier: MIT

package match

import (
	"github.com/katalvlaran/lvlgest/core"
)

// Distance computes the Levenshtein edit distance between gestures a
// and b: the fewest single-token insertions, deletions and
// substitutions turning one into the other.
//
// Description:
//
//	Distance is the similarity measure behind Closest. A sloppily
//	drawn gesture usually sits one or two edits from the template the
//	user meant: an extra wiggle inserts a token, a cut corner drops
//	one, a misread slope substitutes one.
//
// Algorithm Outline (full matrix):
//  1. Let n = len(a), m = len(b). Allocate an (n+1)x(m+1) DP table D.
//  2. Initialize the axes: D[i][0] = i and D[0][j] = j, the cost of
//     pure deletion and pure insertion.
//  3. For i = 1..n, j = 1..m:
//     del = D[i-1][j]   + 1
//     ins = D[i][j-1]   + 1
//     sub = D[i-1][j-1] + (0 if a[i-1] == b[j-1] else 1)
//     D[i][j] = min(del, ins, sub)
//  4. Distance = D[n][m].
//
// Contracts:
//   - Identity:  Distance(g, g) == 0; against an empty gesture the
//     distance is the other's length.
//   - Symmetry:  Distance(a, b) == Distance(b, a).
//   - Triangle:  Distance(a, c) <= Distance(a, b) + Distance(b, c).
//
// Complexity:
//
//	Time   = O(n·m)
//	Memory = O(n·m)
func Distance(a, b core.Gesture) int {
	n, m := len(a), len(b)

	dp := make([][]int, n+1)
	for i := range dp {
		dp[i] = make([]int, m+1)
		dp[i][0] = i
	}
	for j := 1; j <= m; j++ {
		dp[0][j] = j
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			del := dp[i-1][j] + 1
			ins := dp[i][j-1] + 1
			sub := dp[i-1][j-1]
			if a[i-1] != b[j-1] {
				sub++
			}
			dp[i][j] = min3(del, ins, sub)
		}
	}
	return dp[n][m]
}

// min3 returns the minimum of three int values.
func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
