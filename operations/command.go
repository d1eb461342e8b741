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
package operations

import (
	"fmt"

	tt "github.com/timburks/turtle/types"
)

// Kind selects the actor call a Command makes.
type Kind int

const (
	KindInvalid Kind = iota
	KindMove
	KindJump
	KindRotate
)

// Command is a single drawing instruction. Only the fields used by its
// Kind are meaningful.
type Command struct {
	Kind     Kind
	Distance float64 // move
	X        float64 // jump
	Y        float64 // jump
	Angle    float64 // rotate, radians
}

func Move(distance float64) *Command {
	return &Command{Kind: KindMove, Distance: distance}
}

func Jump(x, y float64) *Command {
	return &Command{Kind: KindJump, X: x, Y: y}
}

func Rotate(angle float64) *Command {
	return &Command{Kind: KindRotate, Angle: angle}
}

type operation struct {
	name     string
	perform  func(c *Command, a tt.Actor)
	describe func(c *Command) string
}

var operations = map[Kind]operation{
	KindMove: {
		name: "move",
		perform: func(c *Command, a tt.Actor) {
			a.Move(c.Distance)
		},
		describe: func(c *Command) string {
			return fmt.Sprintf("move(%s)", number(c.Distance))
		},
	},
	KindJump: {
		name: "jump",
		perform: func(c *Command, a tt.Actor) {
			a.Jump(c.X, c.Y)
		},
		describe: func(c *Command) string {
			return fmt.Sprintf("jump(%s, %s)", number(c.X), number(c.Y))
		},
	},
	KindRotate: {
		name: "rotate",
		perform: func(c *Command, a tt.Actor) {
			a.Rotate(c.Angle)
		},
		describe: func(c *Command) string {
			return fmt.Sprintf("rotate(%s)", number(c.Angle))
		},
	},
}

// Perform makes the command's call on the actor and reports whether a call
// was made. Nil and invalid commands do nothing.
func (c *Command) Perform(a tt.Actor) bool {
	if c == nil || a == nil {
		return false
	}
	op, ok := operations[c.Kind]
	if !ok {
		return false
	}
	op.perform(c, a)
	return true
}

func (c *Command) String() string {
	if c == nil {
		return "none"
	}
	op, ok := operations[c.Kind]
	if !ok {
		return "invalid"
	}
	return op.describe(c)
}

func (k Kind) String() string {
	if op, ok := operations[k]; ok {
		return op.name
	}
	return "invalid"
}

func number(v float64) string {
	return fmt.Sprintf("%.6g", v)
}
