package parser

import "tclc/internal/ir"

// boundPair is one (index_expression, bound) entry in a statement's
// guard accumulator — recorded for every Var.Args[k] whose index
// expression is a non-identity affine Binary (§4.2).
type boundPair struct {
	expr  ir.Expr
	bound int64
}

// stmtState accumulates the per-statement bookkeeping the parser
// builds while walking one statement's LHS and RHS TRefs: the set of
// distinct Index references (by name, keeping the smallest extent on
// collision) and the guard operand pairs.
type stmtState struct {
	indexNames []string
	indexes    map[string]*ir.Index
	bounds     []boundPair
}

func newStmtState() *stmtState {
	return &stmtState{indexes: make(map[string]*ir.Index)}
}

// addIndex registers (or updates) a named index reference seen at a
// TRef argument position whose declared dimension extent is extent.
// On a name collision the smaller of the two observed extents wins
// (§3.3, §4.2).
func (s *stmtState) addIndex(name string, extent int64) *ir.Index {
	if existing, ok := s.indexes[name]; ok {
		if extent < existing.Dom.ExtentValue() {
			existing.Dom = ir.NewIndexDom(IndexType, 0, extent)
		}
		return existing
	}
	idx := &ir.Index{
		Ty:   IndexType,
		Name: name,
		Dom:  ir.NewIndexDom(IndexType, 0, extent),
		Kind: ir.Spatial,
	}
	s.indexes[name] = idx
	s.indexNames = append(s.indexNames, name)
	return idx
}

// addBound records a guard operand pair for a compound (non-bare-Id)
// index expression found at a TRef argument position.
func (s *stmtState) addBound(expr ir.Expr, bound int64) {
	s.bounds = append(s.bounds, boundPair{expr: expr, bound: bound})
}

// orderedIndices returns this statement's Index nodes in first-seen
// order, the order LoopNest.Indices must preserve (§3.2, §4.5).
func (s *stmtState) orderedIndices() []*ir.Index {
	out := make([]*ir.Index, 0, len(s.indexNames))
	for _, name := range s.indexNames {
		out = append(out, s.indexes[name])
	}
	return out
}

// guard folds the accumulated bound pairs into a single conjunction,
// or nil if the statement has no compound index expressions (§4.2).
func (s *stmtState) guard() ir.Expr {
	if len(s.bounds) == 0 {
		return nil
	}
	conjuncts := make([]ir.Expr, len(s.bounds))
	for i, b := range s.bounds {
		conjuncts[i] = ir.NewCompare(ir.LT, b.expr, &ir.IntImm{Ty: IndexType, Val: b.bound})
	}
	return ir.And2(conjuncts...)
}
