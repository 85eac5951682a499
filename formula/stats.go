package formula

// Stats holds the three formula-classification numbers, computed by a
// top-down walk of the formula.
type Stats struct {
	// NestingDepth is the maximum count of Fix ancestors for any node.
	NestingDepth int

	// AlternationDepth is like NestingDepth, but a Fix increments the
	// count only if its polarity differs from its enclosing Fix's (or it
	// is the outermost Fix).
	AlternationDepth int

	// DependentAlternationDepth is like AlternationDepth, but a Fix
	// increments only when its own variable is actually referenced in
	// its body (the recursion is used).
	DependentAlternationDepth int
}

// ComputeStats computes Stats for f in one top-down walk; at each Fix
// node the body is rescanned to see whether the node's own variable
// occurs in it.
func ComputeStats(f *Formula) Stats {
	binders := make(map[string]*Node, len(f.Variables))
	binderOf(f.Root, binders)

	var selfReferenced func(n *Node, target string) bool
	selfReferenced = func(n *Node, target string) bool {
		if n == nil {
			return false
		}
		switch n.Kind {
		case KVar:
			return n.VarName == target
		case KAnd, KOr:
			return selfReferenced(n.Left, target) || selfReferenced(n.Right, target)
		case KBox, KDiamond:
			return selfReferenced(n.Body, target)
		case KFix:
			return selfReferenced(n.Body, target)
		default:
			return false
		}
	}

	var st Stats
	var walk func(n *Node, nesting, alternation, dependentAlternation int)
	walk = func(n *Node, nesting, alternation, dependentAlternation int) {
		if n == nil {
			return
		}
		if nesting > st.NestingDepth {
			st.NestingDepth = nesting
		}
		if alternation > st.AlternationDepth {
			st.AlternationDepth = alternation
		}
		if dependentAlternation > st.DependentAlternationDepth {
			st.DependentAlternationDepth = dependentAlternation
		}

		switch n.Kind {
		case KAnd, KOr:
			walk(n.Left, nesting, alternation, dependentAlternation)
			walk(n.Right, nesting, alternation, dependentAlternation)

		case KBox, KDiamond:
			walk(n.Body, nesting, alternation, dependentAlternation)

		case KFix:
			nextAlt := alternation
			if n.Enclosing != n.FixPolarity {
				nextAlt = alternation + 1
			}
			nextDepAlt := dependentAlternation
			if n.Enclosing != n.FixPolarity && selfReferenced(n.Body, n.VarName) {
				nextDepAlt = dependentAlternation + 1
			}
			walk(n.Body, nesting+1, nextAlt, nextDepAlt)
		}
	}
	walk(f.Root, 0, 0, 0)

	return st
}
