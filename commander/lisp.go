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
package commander

import (
	"math"
	"strconv"
	"sync"
	"unsafe"

	"github.com/steelseries/golisp"

	terrors "github.com/timburks/turtle/errors"
	"github.com/timburks/turtle/operations"
	"github.com/timburks/turtle/tree"
)

// golisp primitives are global, so scripts are evaluated one at a time
// against the tree in building.
var (
	evalMutex sync.Mutex
	building  *tree.Tree
)

// Nodes are passed around scripts as opaque objects of this type, so
// numbers cannot stand in for them.
const nodeType = "turtle/node"

type nodeRef struct {
	tree *tree.Tree
	id   tree.NodeID
}

func nodeData(id tree.NodeID) *golisp.Data {
	return golisp.ObjectWithTypeAndValue(nodeType, unsafe.Pointer(&nodeRef{tree: building, id: id}))
}

func init() {
	golisp.Global.BindTo(golisp.SymbolWithName("tau"), golisp.FloatWithValue(float32(2*math.Pi)))
	golisp.MakePrimitiveFunction("move", "1", MoveImpl)
	golisp.MakePrimitiveFunction("jump", "2", JumpImpl)
	golisp.MakePrimitiveFunction("rotate", "1", RotateImpl)
	golisp.MakePrimitiveFunction("seq", "*", SeqImpl)
	golisp.MakePrimitiveFunction("turns", "1", TurnsImpl)
}

// ParseEval evaluates a script and returns the tree it built. The value of
// the script must be a node; it becomes the root.
func ParseEval(script string) (*tree.Tree, tree.NodeID, error) {
	evalMutex.Lock()
	defer evalMutex.Unlock()

	t := tree.New()
	building = t
	defer func() { building = nil }()

	value, err := golisp.ParseAndEval(script)
	if err != nil {
		return nil, tree.None, terrors.Wrap(err, terrors.ErrScriptEval, "script failed")
	}
	root, err := nodeValue(value)
	if err != nil {
		return nil, tree.None, terrors.Wrap(err, terrors.ErrScriptResult, "script did not produce a drawing")
	}
	if t.Parent(root) != tree.None {
		return nil, tree.None, terrors.Newf(terrors.ErrScriptResult, "node %d is already inside a seq", root)
	}
	return t, root, nil
}

func numberValue(name string, d *golisp.Data) (float64, error) {
	switch {
	case golisp.IntegerP(d):
		return float64(golisp.IntegerValue(d)), nil
	case golisp.FloatP(d):
		// golisp floats are float32; widen to the shortest decimal that
		// reads back as the same float32, so 1.1 stays 1.1
		f := strconv.FormatFloat(float64(golisp.FloatValue(d)), 'g', -1, 32)
		return strconv.ParseFloat(f, 64)
	default:
		return 0, terrors.Newf(terrors.ErrScriptArgs, "%s requires numeric arguments", name)
	}
}

func nodeValue(d *golisp.Data) (tree.NodeID, error) {
	if building == nil {
		return tree.None, terrors.New(terrors.ErrScriptEval, "no drawing is being built")
	}
	if !golisp.ObjectP(d) || golisp.ObjectType(d) != nodeType {
		return tree.None, terrors.New(terrors.ErrScriptArgs, "expected a drawing node")
	}
	ref := (*nodeRef)(golisp.ObjectValue(d))
	if ref.tree != building || !building.Valid(ref.id) {
		return tree.None, terrors.Newf(terrors.ErrScriptArgs, "node %d belongs to another drawing", ref.id)
	}
	return ref.id, nil
}

func leaf(cmd *operations.Command) (*golisp.Data, error) {
	if building == nil {
		return nil, terrors.New(terrors.ErrScriptEval, "no drawing is being built")
	}
	return nodeData(building.NewLeaf(cmd)), nil
}

// (move distance)
func MoveImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	distance, err := numberValue("move", golisp.Car(args))
	if err != nil {
		return nil, err
	}
	return leaf(operations.Move(distance))
}

// (jump x y)
func JumpImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	x, err := numberValue("jump", golisp.Car(args))
	if err != nil {
		return nil, err
	}
	y, err := numberValue("jump", golisp.Car(golisp.Cdr(args)))
	if err != nil {
		return nil, err
	}
	return leaf(operations.Jump(x, y))
}

// (rotate radians)
func RotateImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	angle, err := numberValue("rotate", golisp.Car(args))
	if err != nil {
		return nil, err
	}
	return leaf(operations.Rotate(angle))
}

// (seq node...) visits its nodes in order.
func SeqImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	if building == nil {
		return nil, terrors.New(terrors.ErrScriptEval, "no drawing is being built")
	}
	seq := building.NewSequential()
	for cell := args; !golisp.NilP(cell); cell = golisp.Cdr(cell) {
		child, err := nodeValue(golisp.Car(cell))
		if err != nil {
			return nil, err
		}
		if !building.AddSubnode(seq, child) {
			return nil, terrors.Newf(terrors.ErrScriptArgs, "node %d is already inside a seq", child)
		}
	}
	return nodeData(seq), nil
}

// (turns n) converts full turns to radians.
func TurnsImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	n, err := numberValue("turns", golisp.Car(args))
	if err != nil {
		return nil, err
	}
	return golisp.FloatWithValue(float32(n * 2 * math.Pi)), nil
}
