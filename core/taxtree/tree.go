// core/taxtree/tree.go
package taxtree

import (
	"fmt"

	"taxdump-core/lineage"
)

// Tree is a deduplicated taxonomy anchored at a synthetic root node that is
// never part of the dumped output. A tree assigns taxids in one of two
// modes, fixed at construction: sequential trees number nodes as they are
// created; external-id trees take authoritative ids from the caller and fill
// the gaps afterwards with AssignFallbackIDs.
type Tree struct {
	root *Node
	byID map[int]*Node

	sequential bool
	lastID     int // sequential counter, holds the most recent id handed out
	maxID      int // high-water mark over every id seen, external or assigned
	size       int
}

// New returns an empty tree in external-id mode.
func New() *Tree {
	return &Tree{
		root: &Node{Name: "root"},
		byID: map[int]*Node{},
	}
}

// NewSequential returns an empty tree that numbers nodes on creation,
// starting at idStart+1.
func NewSequential(idStart int) *Tree {
	t := New()
	t.sequential = true
	t.lastID = idStart
	t.maxID = idStart
	return t
}

// Root returns the synthetic root.
func (t *Tree) Root() *Node { return t.root }

// Size returns the number of inserted taxa, excluding the synthetic root.
func (t *Tree) Size() int { return t.size }

// MaxID returns the largest taxid seen so far.
func (t *Tree) MaxID() int { return t.maxID }

// ByID resolves an assigned taxid back to its node.
func (t *Tree) ByID(id int) (*Node, bool) {
	n, ok := t.byID[id]
	return n, ok
}

// Insert descends from the synthetic root along path, creating nodes as
// needed, and returns the node for the final element. Existing nodes are
// reused untouched, except that an empty rank is filled in from the path.
// An empty path returns the synthetic root.
func (t *Tree) Insert(path lineage.Path) *Node {
	n := t.root
	for _, el := range path {
		child, ok := n.byName[el.Name]
		if !ok {
			child = &Node{Name: el.Name, Rank: el.Rank, parent: n}
			if n.byName == nil {
				n.byName = map[string]*Node{}
			}
			n.byName[el.Name] = child
			n.children = append(n.children, child)
			t.size++
			if t.sequential {
				t.lastID++
				child.id, child.hasID = t.lastID, true
				t.byID[child.id] = child
				if t.lastID > t.maxID {
					t.maxID = t.lastID
				}
			}
		} else if child.Rank == "" && el.Rank != "" {
			child.Rank = el.Rank
		}
		n = child
	}
	return n
}

// SetExternalID assigns an authoritative taxid to a node in an external-id
// tree. The high-water mark rises even when the assignment is rejected, so
// fallback ids stay clear of every id seen in the input.
func (t *Tree) SetExternalID(n *Node, id int) error {
	if t.sequential {
		return fmt.Errorf("sequential tree does not accept external ids")
	}
	if id > t.maxID {
		t.maxID = id
	}
	if n.hasID {
		if n.id == id {
			return nil
		}
		return fmt.Errorf("taxon %q already has id %d, refusing %d", n.Name, n.id, id)
	}
	if prev, ok := t.byID[id]; ok {
		return fmt.Errorf("id %d already belongs to %q, refusing reuse for %q", id, prev.Name, n.Name)
	}
	n.id, n.hasID = id, true
	t.byID[id] = n
	return nil
}

// AssignFallbackIDs walks the subtree under from and gives every node that
// still lacks a taxid the next id above the high-water mark. It returns the
// number of ids assigned.
func (t *Tree) AssignFallbackIDs(from *Node) int {
	assigned := 0
	_ = Walk(from, func(n *Node) error {
		if !n.hasID {
			t.maxID++
			n.id, n.hasID = t.maxID, true
			t.byID[n.id] = n
			assigned++
		}
		return nil
	})
	return assigned
}

// ReportedRoot returns the first child of the synthetic root, the node that
// stands in as the root of the dumped taxonomy, plus the names of any stray
// top-level taxa after it. A nil node means the tree is empty.
func (t *Tree) ReportedRoot() (*Node, []string) {
	kids := t.root.children
	if len(kids) == 0 {
		return nil, nil
	}
	var extra []string
	for _, k := range kids[1:] {
		extra = append(extra, k.Name)
	}
	return kids[0], extra
}
