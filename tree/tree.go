//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package tree

import (
	"github.com/timburks/turtle/operations"
)

// NodeID is a handle to a node stored in a Tree.
type NodeID int

// None is the handle of no node: the parent of a root, or the end of a traversal.
const None NodeID = -1

// A Node is a vertex of a drawing tree. It owns its command, its children
// and its cursor; its parent is only referenced.
type Node struct {
	command  *operations.Command
	children []NodeID
	parent   NodeID
	cursor   Cursor
	focused  bool
	released bool
}

// A Tree stores nodes in a single arena. Relations between nodes are
// handles into the arena, so the parent links never form ownership cycles.
type Tree struct {
	nodes    []Node
	released int
}

func New() *Tree {
	return &Tree{}
}

// NewLeaf makes a node that performs cmd and then returns to its parent.
// A nil command is tolerated and skipped when the node is visited.
func (t *Tree) NewLeaf(cmd *operations.Command) NodeID {
	return t.add(cmd, CursorUpward)
}

// NewSequential makes a node without a command that visits its children
// in the order they were added and then returns to its parent.
func (t *Tree) NewSequential() NodeID {
	return t.add(nil, CursorSequential)
}

func (t *Tree) add(cmd *operations.Command, kind CursorKind) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, Node{
		command: cmd,
		parent:  None,
		cursor:  newCursor(kind),
	})
	t.nodes[id].cursor.bind(t, id)
	return id
}

func (t *Tree) node(id NodeID) *Node {
	if t == nil || id < 0 || int(id) >= len(t.nodes) {
		return nil
	}
	n := &t.nodes[id]
	if n.released {
		return nil
	}
	return n
}

// Valid reports whether id refers to a live node of this tree.
func (t *Tree) Valid(id NodeID) bool {
	return t.node(id) != nil
}

// AddSubnode appends child to the children of parent and makes parent
// the parent of child, reporting whether it did. A None or unknown child
// is ignored, as is a child that already has a parent or is an ancestor
// of parent. Leaves take no children. Children must be added before the
// subtree is interpreted.
func (t *Tree) AddSubnode(parent, child NodeID) bool {
	p := t.node(parent)
	c := t.node(child)
	if p == nil || c == nil || c.parent != None || p.cursor.kind == CursorUpward {
		return false
	}
	for id := parent; id != None; id = t.nodes[id].parent {
		if id == child {
			return false
		}
	}
	p.children = append(p.children, child)
	c.parent = parent
	return true
}

func (t *Tree) Parent(id NodeID) NodeID {
	if n := t.node(id); n != nil {
		return n.parent
	}
	return None
}

// Children returns a copy of the ordered children of a node.
func (t *Tree) Children(id NodeID) []NodeID {
	n := t.node(id)
	if n == nil || len(n.children) == 0 {
		return nil
	}
	children := make([]NodeID, len(n.children))
	copy(children, n.children)
	return children
}

func (t *Tree) Command(id NodeID) *operations.Command {
	if n := t.node(id); n != nil {
		return n.command
	}
	return nil
}

// Cursor returns the cursor owned by a node. The pointer is only valid
// until the next node is made.
func (t *Tree) Cursor(id NodeID) *Cursor {
	if n := t.node(id); n != nil {
		return &n.cursor
	}
	return nil
}

// Focused is a presentation hint; traversal never reads it.
func (t *Tree) Focused(id NodeID) bool {
	if n := t.node(id); n != nil {
		return n.focused
	}
	return false
}

func (t *Tree) SetFocused(id NodeID, focused bool) {
	if n := t.node(id); n != nil {
		n.focused = focused
	}
}

// Describe names a node for display: its command for leaves, "seq" otherwise.
func (t *Tree) Describe(id NodeID) string {
	n := t.node(id)
	if n == nil {
		return "none"
	}
	if n.cursor.kind == CursorSequential {
		return "seq"
	}
	return n.command.String()
}

// Walk visits root and its descendants in pre-order with their depth.
func (t *Tree) Walk(root NodeID, fn func(id NodeID, depth int)) {
	t.walk(root, 0, fn)
}

func (t *Tree) walk(id NodeID, depth int, fn func(id NodeID, depth int)) {
	n := t.node(id)
	if n == nil {
		return
	}
	fn(id, depth)
	for _, child := range n.children {
		t.walk(child, depth+1, fn)
	}
}

// Count returns the number of nodes in the subtree at root.
func (t *Tree) Count(root NodeID) int {
	count := 0
	t.Walk(root, func(NodeID, int) { count++ })
	return count
}

// ResetCursors returns every cursor below root to its initial progress.
func (t *Tree) ResetCursors(root NodeID) {
	t.Walk(root, func(id NodeID, _ int) {
		t.nodes[id].cursor.Reset()
	})
}

// Release releases root and everything it owns, children before parents,
// and returns the number of nodes released. Only roots can be released;
// for any other node Release does nothing.
func (t *Tree) Release(root NodeID) int {
	n := t.node(root)
	if n == nil || n.parent != None {
		return 0
	}
	return t.release(root)
}

func (t *Tree) release(id NodeID) int {
	n := t.node(id)
	if n == nil {
		return 0
	}
	count := 0
	for _, child := range n.children {
		count += t.release(child)
	}
	*n = Node{parent: None, released: true}
	t.released++
	return count + 1
}

// Live returns the number of nodes that have been made and not released.
func (t *Tree) Live() int {
	if t == nil {
		return 0
	}
	return len(t.nodes) - t.released
}

// Released returns the number of nodes released so far.
func (t *Tree) Released() int {
	if t == nil {
		return 0
	}
	return t.released
}
