package rs

import (
	"math/bits"
	"sort"
	"strconv"
	"strings"

	"github.com/jonesej/gedcomx-java/pkg/gedcomx"
)

// AncestryTree indexes the persons of an ancestry result by their
// ahnentafel number: the root is 1, and the father and mother of n are
// 2n and 2n+1.
type AncestryTree struct {
	nodes map[int]*AncestryNode
}

// AncestryNode is one person of an AncestryTree.
type AncestryNode struct {
	Number int
	Person *gedcomx.Person
	tree   *AncestryTree
}

// NewAncestryTree builds the tree from the ascendancy numbers of the
// display properties. Persons without a positive integer number are left
// out.
func NewAncestryTree(doc *gedcomx.Gedcomx) *AncestryTree {
	t := &AncestryTree{nodes: make(map[int]*AncestryNode)}
	if doc == nil {
		return t
	}
	for i := range doc.Persons {
		p := &doc.Persons[i]
		if p.Display == nil {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(p.Display.AscendancyNumber))
		if err != nil || n < 1 {
			continue
		}
		if _, dup := t.nodes[n]; dup {
			continue
		}
		t.nodes[n] = &AncestryNode{Number: n, Person: p, tree: t}
	}
	return t
}

// Root returns the person the ancestry was requested for.
func (t *AncestryTree) Root() *AncestryNode {
	return t.Ancestor(1)
}

// Ancestor returns the node with ahnentafel number n, or nil.
func (t *AncestryTree) Ancestor(n int) *AncestryNode {
	return t.nodes[n]
}

// Len returns the number of persons in the tree.
func (t *AncestryTree) Len() int {
	return len(t.nodes)
}

// Nodes returns the nodes in ahnentafel order.
func (t *AncestryTree) Nodes() []*AncestryNode {
	out := make([]*AncestryNode, 0, len(t.nodes))
	for _, n := range t.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Number < out[j].Number
	})
	return out
}

// Generations returns the number of generations covered, the root's
// included.
func (t *AncestryTree) Generations() int {
	generations := 0
	for n := range t.nodes {
		generations = max(generations, bits.Len(uint(n)))
	}
	return generations
}

// Father returns the father's node, or nil.
func (n *AncestryNode) Father() *AncestryNode {
	return n.tree.Ancestor(n.Number * 2)
}

// Mother returns the mother's node, or nil.
func (n *AncestryNode) Mother() *AncestryNode {
	return n.tree.Ancestor(n.Number*2 + 1)
}

// DescendancyTree arranges the persons of a descendancy result by their
// d'Aboville numbers: "1" is the root, "1.2" its second child and "1-S"
// the root's spouse.
type DescendancyTree struct {
	root  *DescendancyNode
	nodes map[string]*DescendancyNode
}

// DescendancyNode is one descendant together with the spouse listed for it.
type DescendancyNode struct {
	Number   string
	Person   *gedcomx.Person
	Spouse   *gedcomx.Person
	Children []*DescendancyNode

	index int
}

// NewDescendancyTree builds the tree from the descendancy numbers of the
// display properties. Persons without a well-formed number are left out,
// as are descendants whose parent is missing from the result.
func NewDescendancyTree(doc *gedcomx.Gedcomx) *DescendancyTree {
	t := &DescendancyTree{nodes: make(map[string]*DescendancyNode)}
	if doc == nil {
		return t
	}

	var spouses []*gedcomx.Person
	var order []string
	for i := range doc.Persons {
		p := &doc.Persons[i]
		if p.Display == nil {
			continue
		}
		number, spouse, index, ok := parseDescendancyNumber(p.Display.DescendancyNumber)
		if !ok {
			continue
		}
		if spouse {
			spouses = append(spouses, p)
			continue
		}
		if _, dup := t.nodes[number]; dup {
			continue
		}
		t.nodes[number] = &DescendancyNode{Number: number, Person: p, index: index}
		order = append(order, number)
	}

	for _, p := range spouses {
		number, _, _, _ := parseDescendancyNumber(p.Display.DescendancyNumber)
		if node := t.nodes[number]; node != nil && node.Spouse == nil {
			node.Spouse = p
		}
	}

	for _, number := range order {
		node := t.nodes[number]
		i := strings.LastIndexByte(number, '.')
		if i < 0 {
			if t.root == nil {
				t.root = node
			}
			continue
		}
		if parent := t.nodes[number[:i]]; parent != nil {
			parent.Children = append(parent.Children, node)
		}
	}

	for _, node := range t.nodes {
		sort.SliceStable(node.Children, func(i, j int) bool {
			return node.Children[i].index < node.Children[j].index
		})
	}
	return t
}

// parseDescendancyNumber splits "1.2-S" into the descendant number "1.2",
// whether it names the spouse, and the last index (2).
func parseDescendancyNumber(s string) (number string, spouse bool, index int, ok bool) {
	s = strings.TrimSpace(s)
	if i := strings.Index(s, "-S"); i >= 0 {
		s, spouse = s[:i], true
	}
	if s == "" {
		return "", false, 0, false
	}
	for _, part := range strings.Split(s, ".") {
		n, err := strconv.Atoi(part)
		if err != nil || n < 1 {
			return "", false, 0, false
		}
		index = n
	}
	return s, spouse, index, true
}

// Root returns the person the descendancy was requested for, or nil.
func (t *DescendancyTree) Root() *DescendancyNode {
	return t.root
}

// Node returns the descendant with the given number, or nil.
func (t *DescendancyTree) Node(number string) *DescendancyNode {
	return t.nodes[number]
}

// Walk calls fn for every node reachable from the root, depth first,
// children in order.
func (t *DescendancyTree) Walk(fn func(n *DescendancyNode, depth int)) {
	var walk func(n *DescendancyNode, depth int)
	walk = func(n *DescendancyNode, depth int) {
		fn(n, depth)
		for _, child := range n.Children {
			walk(child, depth+1)
		}
	}
	if t.root != nil {
		walk(t.root, 0)
	}
}

// Len returns the number of descendants in the tree, spouses excluded.
func (t *DescendancyTree) Len() int {
	return len(t.nodes)
}
