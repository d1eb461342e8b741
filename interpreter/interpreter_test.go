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
package interpreter_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timburks/turtle/interpreter"
	"github.com/timburks/turtle/operations"
	"github.com/timburks/turtle/tree"
	"github.com/timburks/turtle/turtle"
)

func TestTwoJumps(t *testing.T) {
	tr := tree.New()
	root := tr.NewSequential()
	tr.AddSubnode(root, tr.NewLeaf(operations.Jump(10, 20)))
	tr.AddSubnode(root, tr.NewLeaf(operations.Jump(30, 20)))

	i := interpreter.New(tr, root)
	r := &turtle.Recorder{}
	steps := i.Run(r)

	assert.Equal(t, []string{"jump(10, 20)", "jump(30, 20)"}, r.Strings())
	assert.True(t, i.IsFinished())
	assert.Equal(t, 3, steps)
	assert.Equal(t, 3, i.Steps())
}

func TestEmptySequentialRoot(t *testing.T) {
	tr := tree.New()
	root := tr.NewSequential()

	i := interpreter.New(tr, root)
	require.False(t, i.IsFinished())
	assert.Equal(t, root, i.Current())

	r := &turtle.Recorder{}
	i.Step(r)
	assert.Empty(t, r.Calls)
	assert.False(t, i.WasSomethingExecuted())
	assert.True(t, i.IsFinished())
	assert.Equal(t, tree.None, i.Current())
}

func TestSingleLeafRoot(t *testing.T) {
	tr := tree.New()
	root := tr.NewLeaf(operations.Move(5.0))

	i := interpreter.New(tr, root)
	r := &turtle.Recorder{}
	i.Step(r)
	assert.Equal(t, []string{"move(5)"}, r.Strings())
	assert.True(t, i.WasSomethingExecuted())
	assert.True(t, i.IsFinished())
}

func TestStepWhenFinished(t *testing.T) {
	tr := tree.New()
	root := tr.NewLeaf(operations.Move(1))
	i := interpreter.New(tr, root)
	r := &turtle.Recorder{}
	i.Run(r)
	require.True(t, i.IsFinished())

	i.Step(r)
	i.Step(r)
	assert.Len(t, r.Calls, 1)
	assert.Equal(t, 1, i.Steps())
	assert.False(t, i.WasSomethingExecuted())
	assert.Equal(t, 0, i.Run(r))
}

func TestNullRoot(t *testing.T) {
	r := &turtle.Recorder{}

	i := interpreter.New(nil, tree.None)
	assert.True(t, i.IsFinished())
	i.Step(r)
	i.Reset()
	assert.True(t, i.IsFinished())

	i = interpreter.New(tree.New(), tree.NodeID(7))
	assert.True(t, i.IsFinished())
	assert.Equal(t, 0, i.Run(r))
	assert.Empty(t, r.Calls)
}

func TestNilCommandLeafIsSkipped(t *testing.T) {
	tr := tree.New()
	root := tr.NewSequential()
	tr.AddSubnode(root, tr.NewLeaf(nil))
	tr.AddSubnode(root, tr.NewLeaf(operations.Move(2)))

	r := &turtle.Recorder{}
	steps := interpreter.New(tr, root).Run(r)
	assert.Equal(t, []string{"move(2)"}, r.Strings())
	assert.Equal(t, 3, steps)
}

func TestNestedOrder(t *testing.T) {
	// root -> [a -> [a1, a2 -> [x]], b, c -> []]
	tr := tree.New()
	root := tr.NewSequential()
	a := tr.NewSequential()
	a2 := tr.NewSequential()
	c := tr.NewSequential()
	tr.AddSubnode(root, a)
	tr.AddSubnode(a, tr.NewLeaf(operations.Move(1)))
	tr.AddSubnode(a, a2)
	tr.AddSubnode(a2, tr.NewLeaf(operations.Rotate(2)))
	tr.AddSubnode(root, tr.NewLeaf(operations.Jump(3, 4)))
	tr.AddSubnode(root, c)

	i := interpreter.New(tr, root)
	r := &turtle.Recorder{}
	var visited []tree.NodeID
	for !i.IsFinished() {
		visited = append(visited, i.Current())
		i.Step(r)
	}

	var preorder []tree.NodeID
	tr.Walk(root, func(id tree.NodeID, _ int) { preorder = append(preorder, id) })
	assert.Equal(t, preorder, visited)
	assert.Equal(t, []string{"move(1)", "rotate(2)", "jump(3, 4)"}, r.Strings())
}

func TestFocusFollowsCurrent(t *testing.T) {
	tr := tree.New()
	root := tr.NewSequential()
	leaf := tr.NewLeaf(operations.Move(1))
	tr.AddSubnode(root, leaf)

	i := interpreter.New(tr, root)
	assert.True(t, tr.Focused(root))

	i.Step(&turtle.Recorder{})
	assert.False(t, tr.Focused(root))
	assert.True(t, tr.Focused(leaf))

	i.Step(&turtle.Recorder{})
	assert.False(t, tr.Focused(leaf))

	i.Reset()
	assert.True(t, tr.Focused(root))
}

func TestStopOnEmpty(t *testing.T) {
	// root -> [m1, s -> [m2], m3]
	tr := tree.New()
	root := tr.NewSequential()
	s := tr.NewSequential()
	tr.AddSubnode(root, tr.NewLeaf(operations.Move(1)))
	tr.AddSubnode(root, s)
	tr.AddSubnode(s, tr.NewLeaf(operations.Move(2)))
	tr.AddSubnode(root, tr.NewLeaf(operations.Move(3)))

	i := interpreter.New(tr, root)
	i.StopOnEmpty = true
	r := &turtle.Recorder{}

	assert.Equal(t, 2, i.Run(r))
	assert.Equal(t, s, i.Current())
	assert.Equal(t, []string{"move(1)"}, r.Strings())

	i.Run(r)
	assert.True(t, i.IsFinished())
	assert.Equal(t, []string{"move(1)", "move(2)", "move(3)"}, r.Strings())
}

// randomTree builds a tree of n nodes with random shape.
func randomTree(rng *rand.Rand, n int) (*tree.Tree, tree.NodeID) {
	tr := tree.New()
	root := tr.NewSequential()
	seqs := []tree.NodeID{root}
	for j := 1; j < n; j++ {
		parent := seqs[rng.Intn(len(seqs))]
		var child tree.NodeID
		if rng.Intn(3) == 0 {
			child = tr.NewSequential()
			seqs = append(seqs, child)
		} else {
			child = tr.NewLeaf(operations.Move(float64(j)))
		}
		tr.AddSubnode(parent, child)
	}
	return tr, root
}

func TestRunVisitsEveryNodeOnce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 50; trial++ {
		n := 1 + rng.Intn(40)
		tr, root := randomTree(rng, n)
		i := interpreter.New(tr, root)

		seen := make(map[tree.NodeID]int)
		for !i.IsFinished() {
			seen[i.Current()]++
			i.Step(&turtle.Recorder{})
		}
		assert.Equal(t, n, i.Steps(), "trial %d", trial)
		assert.Len(t, seen, n, "trial %d", trial)
		for id, count := range seen {
			assert.Equal(t, 1, count, "trial %d node %d", trial, id)
		}
	}
}

func TestResetRestartsTraversal(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 20; trial++ {
		tr, root := randomTree(rng, 2+rng.Intn(30))

		fresh := &turtle.Recorder{}
		interpreter.New(tr, root).Run(fresh)
		tr.ResetCursors(root)

		i := interpreter.New(tr, root)
		partial := rng.Intn(tr.Count(root))
		for j := 0; j < partial; j++ {
			i.Step(&turtle.Recorder{})
		}
		i.Reset()
		assert.Equal(t, root, i.Current())
		assert.Equal(t, 0, i.Steps())

		again := &turtle.Recorder{}
		var visited []tree.NodeID
		for !i.IsFinished() {
			visited = append(visited, i.Current())
			i.Step(again)
		}
		assert.Equal(t, fresh.Calls, again.Calls, "trial %d", trial)
		assert.Len(t, visited, tr.Count(root), "trial %d", trial)
	}
}

func TestRunDrivesTurtle(t *testing.T) {
	tr := tree.New()
	root := tr.NewSequential()
	tr.AddSubnode(root, tr.NewLeaf(operations.Jump(1, 1)))
	tr.AddSubnode(root, tr.NewLeaf(operations.Move(2)))

	tu := turtle.NewTurtle()
	interpreter.New(tr, root).Run(tu)
	require.Len(t, tu.Path, 2)
	assert.False(t, tu.Path[0].Pen)
	assert.Equal(t, turtle.Position{X: 3, Y: 1}, tu.Position)
}

func TestInnerRoot(t *testing.T) {
	// top -> [sub -> [move 1], jump 9 9]
	tr := tree.New()
	top := tr.NewSequential()
	sub := tr.NewSequential()
	tr.AddSubnode(top, sub)
	tr.AddSubnode(sub, tr.NewLeaf(operations.Move(1)))
	tr.AddSubnode(top, tr.NewLeaf(operations.Jump(9, 9)))

	i := interpreter.New(tr, sub)
	r := &turtle.Recorder{}
	assert.Equal(t, tr.Count(sub), i.Run(r))
	assert.Equal(t, []string{"move(1)"}, r.Strings())
	assert.True(t, i.IsFinished())
	assert.Equal(t, "seq 0/2", tr.Cursor(top).Describe(), "the enclosing seq is untouched")

	i.Reset()
	again := &turtle.Recorder{}
	assert.Equal(t, 2, i.Run(again))
	assert.Equal(t, r.Calls, again.Calls)
}
