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

// Package interpreter steps through a drawing tree one node at a time.
// The interpreter keeps a single current position; everything else it needs
// to resume a paused traversal lives in the cursors of the tree's nodes,
// and parent links take the place of a call stack.
package interpreter

import (
	"github.com/rs/zerolog"

	"github.com/timburks/turtle/logging"
	"github.com/timburks/turtle/tree"
	tt "github.com/timburks/turtle/types"
)

// The Interpreter walks a tree and performs its commands on an actor.
// It does not own the tree. It is not safe for concurrent use; the tree and
// the interpreter must be guarded together.
type Interpreter struct {
	// StopOnEmpty makes Run pause when it arrives at a node without a command.
	StopOnEmpty bool

	tree     *tree.Tree
	root     tree.NodeID
	current  tree.NodeID
	executed bool
	steps    int
	logger   zerolog.Logger
}

// New returns an interpreter positioned at root. With a nil tree or an
// unknown root the interpreter starts finished. Root may be an inner node;
// traversal never leaves its subtree.
func New(t *tree.Tree, root tree.NodeID) *Interpreter {
	i := &Interpreter{
		tree:    t,
		root:    root,
		current: tree.None,
		logger:  logging.GetLogger("interpreter"),
	}
	if !t.Valid(root) {
		i.root = tree.None
	}
	i.moveTo(i.root)
	return i
}

func (i *Interpreter) Tree() *tree.Tree {
	return i.tree
}

func (i *Interpreter) Root() tree.NodeID {
	return i.root
}

// Current returns the node the next step will process, or tree.None when finished.
func (i *Interpreter) Current() tree.NodeID {
	return i.current
}

func (i *Interpreter) IsFinished() bool {
	return i.current == tree.None
}

// WasSomethingExecuted reports whether the last step performed a command.
func (i *Interpreter) WasSomethingExecuted() bool {
	return i.executed
}

// Steps returns the number of steps taken since the interpreter was made or reset.
func (i *Interpreter) Steps() int {
	return i.steps
}

// Step performs the command of the current node, if it has one, and moves
// to the next node its cursor offers. When a cursor hands back its node's
// parent, the parent's cursor is asked in the same step, so each step lands
// on a node that has not been visited yet. Stepping a finished interpreter
// does nothing.
func (i *Interpreter) Step(actor tt.Actor) {
	i.executed = false
	if i.IsFinished() {
		return
	}
	from := i.current
	cmd := i.tree.Command(from)
	i.executed = cmd.Perform(actor)

	next := i.advance(from)
	i.steps++
	i.moveTo(next)

	i.logger.Trace().
		Int("step", i.steps).
		Int("node", int(from)).
		Str("command", cmd.String()).
		Bool("executed", i.executed).
		Int("next", int(next)).
		Msg("step")
}

func (i *Interpreter) advance(id tree.NodeID) tree.NodeID {
	for {
		next := i.tree.Cursor(id).Next()
		if next == tree.None || next != i.tree.Parent(id) {
			return next
		}
		// an inner node used as root ends the traversal like a real root
		if id == i.root {
			return tree.None
		}
		id = next
	}
}

// Run steps until the traversal is finished and returns the number of steps
// taken. With StopOnEmpty set it returns early, after at least one step,
// when the current node has no command.
func (i *Interpreter) Run(actor tt.Actor) int {
	done := logging.LogOperationStart(i.logger, "run")
	defer done()

	steps := 0
	for !i.IsFinished() {
		i.Step(actor)
		steps++
		if i.StopOnEmpty && !i.IsFinished() && i.tree.Command(i.current) == nil {
			break
		}
	}
	return steps
}

// Reset moves the interpreter back to the root and resets every cursor.
func (i *Interpreter) Reset() {
	i.tree.ResetCursors(i.root)
	i.executed = false
	i.steps = 0
	i.moveTo(i.root)
	i.logger.Debug().Int("root", int(i.root)).Msg("reset")
}

func (i *Interpreter) moveTo(id tree.NodeID) {
	i.tree.SetFocused(i.current, false)
	i.current = id
	i.tree.SetFocused(id, true)
}
