package primitive

import "fmt"

// List is an ordered sequence of nodes that can be edited while a scene is
// being assembled. Freeze snapshots it when it is embedded into a parent.
type List struct {
	items []Node
}

// NewList creates a new list holding nodes in order
func NewList(nodes ...Node) *List {
	return &List{items: append([]Node(nil), nodes...)}
}

// Push appends nodes to the end of the list
func (l *List) Push(nodes ...Node) {
	l.items = append(l.items, nodes...)
}

// Pop removes and returns the last node
func (l *List) Pop() (Node, bool) {
	if len(l.items) == 0 {
		return nil, false
	}
	last := l.items[len(l.items)-1]
	l.items[len(l.items)-1] = nil
	l.items = l.items[:len(l.items)-1]
	return last, true
}

// Insert places n at index i, shifting later nodes back
func (l *List) Insert(i int, n Node) error {
	if i < 0 || i > len(l.items) {
		return fmt.Errorf("insert index %d out of range [0,%d]", i, len(l.items))
	}
	l.items = append(l.items, nil)
	copy(l.items[i+1:], l.items[i:])
	l.items[i] = n
	return nil
}

// Remove deletes the node at index i, keeping the order of the rest
func (l *List) Remove(i int) (Node, error) {
	if i < 0 || i >= len(l.items) {
		return nil, fmt.Errorf("remove index %d out of range [0,%d)", i, len(l.items))
	}
	n := l.items[i]
	l.items = append(l.items[:i], l.items[i+1:]...)
	return n, nil
}

// At returns the node at index i
func (l *List) At(i int) Node {
	return l.items[i]
}

// Len returns the number of nodes
func (l *List) Len() int {
	return len(l.items)
}

// Freeze returns an independent copy of the current order. Later edits to
// the list do not affect the returned slice.
func (l *List) Freeze() []Node {
	return append(make([]Node, 0, len(l.items)), l.items...)
}

// Container freezes the list into a new container node
func (l *List) Container() *Container {
	return NewContainer(l.Freeze()...)
}
