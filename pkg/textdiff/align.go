package textdiff

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// OpKind is the kind of one edit operation.
type OpKind int

const (
	OpMatch OpKind = iota
	OpDelete
	OpInsert
)

// Op is one step of an edit script. AIndex is -1 for inserts, BIndex is
// -1 for deletes. Token carries the surface text: the A-side token for
// deletes, the B-side token for matches and inserts. Replaying matches
// and deletes in order walks sequence A exactly (via AIndex); matches
// and inserts walk sequence B.
type Op struct {
	Kind   OpKind
	AIndex int
	BIndex int
	Token  string
}

// MaxAlignTokens is the per-side ceiling above which callers should
// skip alignment: the table is O(n·m) in time and space, and
// pathologically long lines would otherwise dominate a render.
const MaxAlignTokens = 2000

// Align computes an optimal LCS edit script between token sequences a
// and b under case-insensitive equality. The table is filled backward;
// reconstruction walks forward from (0,0) and, on ties, prefers
// deleting from a before inserting from b.
func Align(a, b []string) []Op {
	n, m := len(a), len(b)
	table := make([][]int, n+1)
	for i := range table {
		table[i] = make([]int, m+1)
	}
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			switch {
			case tokenEqual(a[i], b[j]):
				table[i][j] = table[i+1][j+1] + 1
			case table[i+1][j] >= table[i][j+1]:
				table[i][j] = table[i+1][j]
			default:
				table[i][j] = table[i][j+1]
			}
		}
	}

	ops := make([]Op, 0, n+m)
	i, j := 0, 0
	for i < n && j < m {
		switch {
		case tokenEqual(a[i], b[j]):
			ops = append(ops, Op{Kind: OpMatch, AIndex: i, BIndex: j, Token: b[j]})
			i++
			j++
		case table[i+1][j] >= table[i][j+1]:
			ops = append(ops, Op{Kind: OpDelete, AIndex: i, BIndex: -1, Token: a[i]})
			i++
		default:
			ops = append(ops, Op{Kind: OpInsert, AIndex: -1, BIndex: j, Token: b[j]})
			j++
		}
	}
	for ; i < n; i++ {
		ops = append(ops, Op{Kind: OpDelete, AIndex: i, BIndex: -1, Token: a[i]})
	}
	for ; j < m; j++ {
		ops = append(ops, Op{Kind: OpInsert, AIndex: -1, BIndex: j, Token: b[j]})
	}
	return ops
}

// tokenEqual folds case and Unicode composition, so "Café" matches
// "café" whether the accent is precomposed or combining.
func tokenEqual(a, b string) bool {
	if a == b {
		return true
	}
	return strings.EqualFold(norm.NFC.String(a), norm.NFC.String(b))
}
