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

import "fmt"

// CursorKind selects the traversal policy of a Cursor.
type CursorKind int

const (
	CursorUpward CursorKind = iota + 1
	CursorSequential
)

// beforeFirst is the index of a sequential cursor that has not visited a child.
const beforeFirst = -1

// A Cursor decides which node to visit after the node it governs.
// Cursors are owned by their nodes and bound once, when the node is made.
type Cursor struct {
	kind  CursorKind
	tree  *Tree
	node  NodeID
	index int
}

type cursorOperation struct {
	name     string
	next     func(c *Cursor) NodeID
	reset    func(c *Cursor)
	describe func(c *Cursor) string
}

var cursorOperations = map[CursorKind]cursorOperation{
	CursorUpward: {
		name: "upward",
		next: func(c *Cursor) NodeID {
			return c.tree.Parent(c.node)
		},
		reset: func(c *Cursor) {},
		describe: func(c *Cursor) string {
			return "up"
		},
	},
	CursorSequential: {
		name: "sequential",
		next: func(c *Cursor) NodeID {
			c.index++
			children := c.tree.node(c.node).children
			if c.index < len(children) {
				return children[c.index]
			}
			return c.tree.Parent(c.node)
		},
		reset: func(c *Cursor) {
			c.index = beforeFirst
		},
		describe: func(c *Cursor) string {
			count := len(c.tree.node(c.node).children)
			if c.index+1 < count {
				return fmt.Sprintf("seq %d/%d", c.index+1, count)
			}
			return "seq done"
		},
	},
}

func newCursor(kind CursorKind) Cursor {
	return Cursor{kind: kind, node: None, index: beforeFirst}
}

func (c *Cursor) bind(t *Tree, id NodeID) {
	c.tree = t
	c.node = id
}

func (c *Cursor) operation() (cursorOperation, bool) {
	if c == nil || c.tree == nil || c.tree.node(c.node) == nil {
		return cursorOperation{}, false
	}
	op, ok := cursorOperations[c.kind]
	return op, ok
}

// Next returns the node to visit after the governed node. The parent means
// this cursor has nothing more to offer; None means there is no parent.
func (c *Cursor) Next() NodeID {
	op, ok := c.operation()
	if !ok {
		return None
	}
	return op.next(c)
}

// Reset returns the cursor to its initial progress.
func (c *Cursor) Reset() {
	if op, ok := c.operation(); ok {
		op.reset(c)
	}
}

func (c *Cursor) Describe() string {
	op, ok := c.operation()
	if !ok {
		return "none"
	}
	return op.describe(c)
}

func (c *Cursor) Kind() CursorKind {
	if c == nil {
		return 0
	}
	return c.kind
}

// Node returns the node this cursor governs.
func (c *Cursor) Node() NodeID {
	if c == nil {
		return None
	}
	return c.node
}

func (k CursorKind) String() string {
	if op, ok := cursorOperations[k]; ok {
		return op.name
	}
	return "invalid"
}
