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
package types

// Front end modes
const (
	ModeStep    = 0
	ModeLisp    = 1
	ModeCommand = 2
	ModeQuit    = 9999
)

// Event types
const (
	EventKey    = 0
	EventResize = 1
	EventOther  = 2
)

type Key int

// Keys understood by the commander.
const (
	KeyUnsupported Key = iota
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyBackspace2
	KeyCtrlC
	KeyCtrlL
	KeyCtrlR
	KeyEnter
	KeyEsc
	KeySpace
	KeyTab
)

type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

type Event struct {
	Type int
	Key  Key
	Ch   rune
}

// An Actor receives drawing commands.
// Move travels along the current heading, Jump goes to absolute
// coordinates and Rotate sets the absolute heading in radians.
type Actor interface {
	Move(distance float64)
	Jump(x, y float64)
	Rotate(angle float64)
}

type Commander interface {
	SetMode(int)
	GetMode() int
	GetLispText() string
	GetCommand() string
	GetMessage() string
}
