// Package compact implements C4: a pure normalization pass over the raw AST
// that the builder produces. Compact is idempotent — Compact(Compact(n))
// equals Compact(n) — which internal/compact/compact_test.go asserts
// directly (spec.md §8 property 4).
package compact

import "github.com/krombrey/regenum/internal/ast"

// Compact returns the canonical form of n. parent is the tag of n's
// eventual parent, or nil at the root; it governs single-child scope
// elision, which only applies when the parent is itself a Scope or an Or.
func Compact(n ast.Node, parent ast.Node) ast.Node {
	if n == nil {
		return ast.Scope{}
	}
	switch v := n.(type) {
	case ast.Scope:
		return compactScope(v, parent)
	case ast.Or:
		return compactOr(v)
	case ast.Repeat:
		return ast.Repeat{Min: v.Min, Max: v.Max, Child: Compact(v.Child, nil)}
	default:
		// Literal, List, Range are leaves; nothing to recurse into.
		return n
	}
}

func compactScope(s ast.Scope, parent ast.Node) ast.Node {
	compacted := make([]ast.Node, 0, len(s.Children))
	for _, c := range s.Children {
		compacted = append(compacted, Compact(c, s))
	}
	compacted = fuseLiterals(compacted)

	if len(compacted) == 1 {
		if _, isScope := parent.(ast.Scope); isScope {
			return compacted[0]
		}
		if _, isOr := parent.(ast.Or); isOr {
			return compacted[0]
		}
	}
	return ast.Scope{Children: compacted}
}

// fuseLiterals merges maximal runs of adjacent Literal children into one.
func fuseLiterals(children []ast.Node) []ast.Node {
	out := make([]ast.Node, 0, len(children))
	for _, c := range children {
		lit, ok := c.(ast.Literal)
		if !ok {
			out = append(out, c)
			continue
		}
		if n := len(out); n > 0 {
			if prev, ok := out[n-1].(ast.Literal); ok {
				out[n-1] = ast.Literal{Value: prev.Value + lit.Value}
				continue
			}
		}
		out = append(out, lit)
	}
	return out
}

func compactOr(o ast.Or) ast.Node {
	flat := make([]ast.Node, 0, len(o.Children))
	for _, c := range o.Children {
		compacted := Compact(c, o)
		if inner, ok := compacted.(ast.Or); ok {
			flat = append(flat, inner.Children...)
		} else {
			flat = append(flat, compacted)
		}
	}
	return ast.Or{Children: flat}
}
