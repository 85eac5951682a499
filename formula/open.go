package formula

// OpenSets maps a Fix node's variable name x to OPEN(x): the set of
// same-polarity variable names whose defining binder is an ancestor of
// x's Fix node but which are referenced somewhere inside x's body.
//
// Membership: y is open in x iff some Var(y) inside x's body resolves to
// a binder outside x's body. Since Close rejects duplicate binder names,
// every variable name has exactly one binder in the whole formula, so
// "resolves to" never involves shadowing — it is simply binderOf(y).
type OpenSets map[string]map[string]struct{}

// binderOf maps every bound variable name to its defining Fix node.
func binderOf(n *Node, out map[string]*Node) {
	if n == nil {
		return
	}
	switch n.Kind {
	case KAnd, KOr:
		binderOf(n.Left, out)
		binderOf(n.Right, out)
	case KBox, KDiamond:
		binderOf(n.Body, out)
	case KFix:
		out[n.VarName] = n
		binderOf(n.Body, out)
	}
}

// ComputeOpen runs the single-traversal OPEN(x) analysis the Emerson-Lei
// evaluator (package muops) consults to decide which approximants are
// safe to keep across a Fix's selective reinitialisation.
func ComputeOpen(f *Formula) OpenSets {
	binders := make(map[string]*Node, len(f.Variables))
	binderOf(f.Root, binders)

	open := make(OpenSets)
	var ancestors []*Node // Fix nodes on the current path, outer to inner

	var walk func(n *Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		switch n.Kind {
		case KVar:
			binder, ok := binders[n.VarName]
			if !ok {
				return // unbound; Close already rejects this case
			}
			nestedInsideBinder := false
			for _, anc := range ancestors {
				if anc == binder {
					nestedInsideBinder = true
					continue
				}
				if !nestedInsideBinder {
					continue // anc is not yet "inside" binder's subtree
				}
				if anc.FixPolarity == binder.FixPolarity {
					if open[anc.VarName] == nil {
						open[anc.VarName] = make(map[string]struct{})
					}
					open[anc.VarName][n.VarName] = struct{}{}
				}
			}

		case KAnd, KOr:
			walk(n.Left)
			walk(n.Right)

		case KBox, KDiamond:
			walk(n.Body)

		case KFix:
			ancestors = append(ancestors, n)
			walk(n.Body)
			ancestors = ancestors[:len(ancestors)-1]
		}
	}
	walk(f.Root)

	return open
}
