package domain

// InputNode is a typed representation of the heterogeneous input trees a
// task declares: a scalar value, an ordered sequence, a string-keyed
// mapping, or a placeholder awaiting another task's result. It replaces
// runtime type-switching over list/tuple/map/scalar with a closed variant,
// so VisitPlaceholders can rebuild a tree with the exact container shape it
// was given.
type InputNode struct {
	kind        inputKind
	scalar      any
	seq         []InputNode
	mapping     map[string]InputNode
	placeholder *Placeholder
}

type inputKind int

const (
	kindScalar inputKind = iota
	kindSeq
	kindMap
	kindPlaceholder
)

// Scalar wraps a plain value (string, int, bool, ...) as a leaf InputNode.
func Scalar(v any) InputNode {
	return InputNode{kind: kindScalar, scalar: v}
}

// Seq wraps an ordered sequence of InputNode as a single InputNode.
func Seq(items ...InputNode) InputNode {
	return InputNode{kind: kindSeq, seq: items}
}

// Map wraps a string-keyed mapping of InputNode as a single InputNode.
func Map(entries map[string]InputNode) InputNode {
	return InputNode{kind: kindMap, mapping: entries}
}

// FromPlaceholder wraps a ResultPlaceholder as a leaf InputNode.
func FromPlaceholder(p *Placeholder) InputNode {
	return InputNode{kind: kindPlaceholder, placeholder: p}
}

// IsSeq reports whether the node is a sequence.
func (n InputNode) IsSeq() bool { return n.kind == kindSeq }

// IsMap reports whether the node is a mapping.
func (n InputNode) IsMap() bool { return n.kind == kindMap }

// IsPlaceholder reports whether the node is a placeholder leaf.
func (n InputNode) IsPlaceholder() bool { return n.kind == kindPlaceholder }

// ScalarValue returns the wrapped scalar value; only meaningful when the node is
// a scalar leaf.
func (n InputNode) ScalarValue() any { return n.scalar }

// PlaceholderValue returns the wrapped placeholder; only meaningful when
// IsPlaceholder is true.
func (n InputNode) PlaceholderValue() *Placeholder { return n.placeholder }

// Items returns the sequence's elements; only meaningful when IsSeq is true.
func (n InputNode) Items() []InputNode { return n.seq }

// Entries returns the mapping's entries; only meaningful when IsMap is true.
func (n InputNode) Entries() map[string]InputNode { return n.mapping }

// VisitPlaceholders recursively walks the tree, calling visit on every
// placeholder leaf and replacing it with the returned node, while rebuilding
// Seq and Map nodes with identical container shape. Scalars pass through
// unchanged. The rebuilt tree does not depend on map iteration order, since
// each key's value is visited independently, though the order in which visit
// is called across a map's keys is not defined. It is safe to invoke
// repeatedly (reentrant).
func (n InputNode) VisitPlaceholders(visit func(*Placeholder) InputNode) InputNode {
	switch n.kind {
	case kindPlaceholder:
		return visit(n.placeholder)
	case kindSeq:
		rebuilt := make([]InputNode, len(n.seq))
		for i, item := range n.seq {
			rebuilt[i] = item.VisitPlaceholders(visit)
		}
		return Seq(rebuilt...)
	case kindMap:
		rebuilt := make(map[string]InputNode, len(n.mapping))
		for k, v := range n.mapping {
			rebuilt[k] = v.VisitPlaceholders(visit)
		}
		return Map(rebuilt)
	default:
		return n
	}
}

// WalkPlaceholders visits every placeholder leaf for its side effects only,
// without rebuilding the tree. Used by the preprocessor to resolve each
// placeholder's target name to a task identity by mutating the Placeholder
// value in place.
func (n InputNode) WalkPlaceholders(visit func(*Placeholder)) {
	switch n.kind {
	case kindPlaceholder:
		visit(n.placeholder)
	case kindSeq:
		for _, item := range n.seq {
			item.WalkPlaceholders(visit)
		}
	case kindMap:
		for _, v := range n.mapping {
			v.WalkPlaceholders(visit)
		}
	}
}

// Resolve recursively converts the tree into a plain Go value, substituting
// each placeholder with its already-resolved result (via resolve). It is
// used at dispatch time once every placeholder in the tree carries a
// resolved task identity whose result is available.
func (n InputNode) Resolve(resolve func(*Placeholder) any) any {
	switch n.kind {
	case kindScalar:
		return n.scalar
	case kindPlaceholder:
		return resolve(n.placeholder)
	case kindSeq:
		out := make([]any, len(n.seq))
		for i, item := range n.seq {
			out[i] = item.Resolve(resolve)
		}
		return out
	case kindMap:
		out := make(map[string]any, len(n.mapping))
		for k, v := range n.mapping {
			out[k] = v.Resolve(resolve)
		}
		return out
	default:
		return nil
	}
}
