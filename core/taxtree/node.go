// core/taxtree/node.go
package taxtree

// Node is one taxon in a Tree. Name and Rank are plain data; structure and
// id bookkeeping stay under the tree's control.
type Node struct {
	Name string
	Rank string

	parent   *Node
	children []*Node
	byName   map[string]*Node

	id    int
	hasID bool
}

// ID returns the node's taxid and whether one has been assigned yet.
func (n *Node) ID() (int, bool) { return n.id, n.hasID }

// Parent returns the parent node, or nil for the synthetic root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the node's children in insertion order. The slice is
// owned by the node; callers must not modify it.
func (n *Node) Children() []*Node { return n.children }

// Child looks up a direct child by name.
func (n *Node) Child(name string) (*Node, bool) {
	c, ok := n.byName[name]
	return c, ok
}

// Root follows parent links up to the synthetic root.
func (n *Node) Root() *Node {
	for n.parent != nil {
		n = n.parent
	}
	return n
}

// Walk visits n and every descendant in insertion (pre-) order, stopping at
// the first error fn returns.
func Walk(n *Node, fn func(*Node) error) error {
	if err := fn(n); err != nil {
		return err
	}
	for _, c := range n.children {
		if err := Walk(c, fn); err != nil {
			return err
		}
	}
	return nil
}
