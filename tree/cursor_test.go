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
package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/timburks/turtle/operations"
	"github.com/timburks/turtle/tree"
)

func TestUpwardCursor(t *testing.T) {
	tr := tree.New()
	root := tr.NewSequential()
	leaf := tr.NewLeaf(operations.Move(1))
	tr.AddSubnode(root, leaf)

	c := tr.Cursor(leaf)
	for j := 0; j < 5; j++ {
		assert.Equal(t, root, c.Next())
	}
	assert.Equal(t, "up", c.Describe())
	c.Reset()
	assert.Equal(t, "up", c.Describe())
	assert.Equal(t, root, c.Next())
}

func TestUpwardCursorAtRoot(t *testing.T) {
	tr := tree.New()
	leaf := tr.NewLeaf(operations.Move(1))
	assert.Equal(t, tree.None, tr.Cursor(leaf).Next())
	assert.Equal(t, tree.None, tr.Cursor(leaf).Next())
}

func TestSequentialCursor(t *testing.T) {
	for _, k := range []int{0, 1, 3} {
		tr := tree.New()
		parent := tr.NewSequential()
		seq := tr.NewSequential()
		tr.AddSubnode(parent, seq)
		var children []tree.NodeID
		for j := 0; j < k; j++ {
			child := tr.NewLeaf(operations.Move(float64(j)))
			tr.AddSubnode(seq, child)
			children = append(children, child)
		}

		c := tr.Cursor(seq)
		for pass := 0; pass < 2; pass++ {
			for j := 0; j < k; j++ {
				assert.Equal(t, children[j], c.Next(), "k=%d child %d", k, j)
			}
			for j := 0; j < 3; j++ {
				assert.Equal(t, parent, c.Next(), "k=%d exhausted", k)
			}
			c.Reset()
		}
	}
}

func TestSequentialCursorAtRoot(t *testing.T) {
	tr := tree.New()
	root := tr.NewSequential()
	leaf := tr.NewLeaf(operations.Move(1))
	tr.AddSubnode(root, leaf)

	c := tr.Cursor(root)
	assert.Equal(t, leaf, c.Next())
	assert.Equal(t, tree.None, c.Next())
	assert.Equal(t, tree.None, c.Next())
}

func TestSequentialDescribe(t *testing.T) {
	tr := tree.New()
	seq := tr.NewSequential()
	tr.AddSubnode(seq, tr.NewLeaf(operations.Move(1)))
	tr.AddSubnode(seq, tr.NewLeaf(operations.Move(2)))

	c := tr.Cursor(seq)
	assert.Equal(t, "seq 0/2", c.Describe())
	c.Next()
	assert.Equal(t, "seq 1/2", c.Describe())
	c.Next()
	assert.Equal(t, "seq done", c.Describe())
	c.Next()
	assert.Equal(t, "seq done", c.Describe())
	c.Reset()
	c.Reset()
	assert.Equal(t, "seq 0/2", c.Describe())

	assert.Equal(t, "seq done", tr.Cursor(tr.NewSequential()).Describe())
}

func TestResetCursors(t *testing.T) {
	tr, ids := build(t)
	tr.Cursor(ids["root"]).Next()
	tr.Cursor(ids["a"]).Next()
	tr.Cursor(ids["a"]).Next()

	tr.ResetCursors(ids["root"])
	assert.Equal(t, ids["a"], tr.Cursor(ids["root"]).Next())
	assert.Equal(t, ids["a1"], tr.Cursor(ids["a"]).Next())
}

func TestCursorKindString(t *testing.T) {
	assert.Equal(t, "upward", tree.CursorUpward.String())
	assert.Equal(t, "sequential", tree.CursorSequential.String())
	assert.Equal(t, "invalid", tree.CursorKind(0).String())
}
