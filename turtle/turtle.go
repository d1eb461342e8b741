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

// Package turtle implements the actor that drawing commands drive.
// A turtle has a position and a heading and remembers every segment it
// travels; segments drawn with the pen down form the picture.
package turtle

import (
	"fmt"
	"math"
)

type Position struct {
	X float64
	Y float64
}

func (p Position) String() string {
	return fmt.Sprintf("(%.6g, %.6g)", p.X, p.Y)
}

// A Segment is one stretch of travel. Jumps are recorded with the pen up.
type Segment struct {
	From Position
	To   Position
	Pen  bool
}

// The Turtle is a drawing actor.
type Turtle struct {
	Position Position
	Heading  float64 // radians, counterclockwise from the positive x axis
	Path     []Segment
	OnDraw   func(s Segment) // called after every segment is added

	home    Position
	heading float64
}

func NewTurtle() *Turtle {
	return &Turtle{}
}

// NewTurtleAt returns a turtle whose home pose is the given position and heading.
func NewTurtleAt(home Position, heading float64) *Turtle {
	return &Turtle{Position: home, Heading: heading, home: home, heading: heading}
}

// Move travels distance along the current heading with the pen down.
func (t *Turtle) Move(distance float64) {
	to := Position{
		X: t.Position.X + distance*math.Cos(t.Heading),
		Y: t.Position.Y + distance*math.Sin(t.Heading),
	}
	t.travel(to, true)
}

// Jump goes to an absolute position with the pen up.
func (t *Turtle) Jump(x, y float64) {
	t.travel(Position{X: x, Y: y}, false)
}

// Rotate sets the absolute heading.
func (t *Turtle) Rotate(angle float64) {
	t.Heading = angle
}

func (t *Turtle) travel(to Position, pen bool) {
	s := Segment{From: t.Position, To: to, Pen: pen}
	t.Position = to
	t.Path = append(t.Path, s)
	if t.OnDraw != nil {
		t.OnDraw(s)
	}
}

// Drawn returns the segments drawn with the pen down.
func (t *Turtle) Drawn() []Segment {
	var drawn []Segment
	for _, s := range t.Path {
		if s.Pen {
			drawn = append(drawn, s)
		}
	}
	return drawn
}

// Home clears the path and returns the turtle to its home pose.
func (t *Turtle) Home() {
	t.Position = t.home
	t.Heading = t.heading
	t.Path = nil
}

func (t *Turtle) String() string {
	return fmt.Sprintf("at %s heading %.6g", t.Position, t.Heading)
}
