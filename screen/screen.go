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
package screen

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"

	"github.com/timburks/turtle/commander"
	tt "github.com/timburks/turtle/types"
)

// width of the tree panel on the right of the screen
const panelCols = 32

// The Screen draws the state of a Commander: the turtle's drawing, the tree
// being interpreted and the status bars.
type Screen struct {
	size  tt.Size // screen size
	scale float64
}

func NewScreen(scale float64) (*Screen, error) {
	if err := termbox.Init(); err != nil {
		return nil, err
	}
	termbox.SetOutputMode(termbox.Output256)
	termbox.HideCursor()
	return &Screen{scale: scale}, nil
}

func (s *Screen) Close() {
	termbox.Close()
}

func (s *Screen) Render(c *commander.Commander) {
	termbox.Clear(termbox.ColorWhite, termbox.ColorBlack)
	s.size.Cols, s.size.Rows = termbox.Size()

	canvasSize := tt.Size{Rows: s.size.Rows - 2, Cols: s.size.Cols - panelCols - 1}
	if canvasSize.Cols < 1 {
		canvasSize.Cols = s.size.Cols
	}
	s.RenderCanvas(c, canvasSize)
	s.RenderTreePanel(c, canvasSize.Cols+1)
	s.RenderInfoBar(c)
	s.RenderMessageBar(c)
	termbox.Flush()
}

func (s *Screen) RenderCanvas(c *commander.Commander, size tt.Size) {
	canvas := NewCanvas(size, s.scale)
	canvas.Draw(c.Turtle())
	for p, r := range canvas.cells {
		fg := termbox.ColorGreen
		if r == TurtleRune {
			fg = termbox.ColorYellow | termbox.AttrBold
		}
		termbox.SetCell(p.Col, p.Row, r, fg, termbox.ColorBlack)
	}
}

func (s *Screen) RenderTreePanel(c *commander.Commander, left int) {
	if left >= s.size.Cols {
		return
	}
	i := c.Interpreter()
	for row, line := range TreeLines(i.Tree(), i.Root()) {
		if row >= s.size.Rows-2 {
			break
		}
		fg, bg := termbox.ColorWhite, termbox.ColorBlack
		if line.Focused {
			fg, bg = termbox.ColorBlack, termbox.ColorCyan
		}
		s.text(left, row, runewidth.Truncate(line.Text, s.size.Cols-left, "…"), fg, bg)
	}
}

func (s *Screen) RenderInfoBar(c *commander.Commander) {
	t := c.Turtle()
	finalText := fmt.Sprintf(" %s ", t)
	text := " turtle - " + c.Status() + " "
	width := s.size.Cols - runewidth.StringWidth(finalText)
	if width < 0 {
		width = 0
	}
	text = runewidth.FillRight(runewidth.Truncate(text, width, "…"), width) + finalText
	s.text(0, s.size.Rows-2, text, termbox.ColorBlack, termbox.ColorWhite)
}

func (s *Screen) RenderMessageBar(c tt.Commander) {
	line := runewidth.Truncate(messageLine(c), s.size.Cols, "")
	s.text(0, s.size.Rows-1, line, termbox.ColorWhite, termbox.ColorBlack)
}

// messageLine is what the bottom row shows: the line being typed, or the last message.
func messageLine(c tt.Commander) string {
	switch c.GetMode() {
	case tt.ModeCommand:
		return ":" + c.GetCommand()
	case tt.ModeLisp:
		return c.GetLispText()
	default:
		return c.GetMessage()
	}
}

func (s *Screen) text(x, y int, text string, fg, bg termbox.Attribute) {
	for _, ch := range text {
		termbox.SetCell(x, y, ch, fg, bg)
		x += runewidth.RuneWidth(ch)
	}
}

func (s *Screen) GetNextEvent() *tt.Event {
	event := termbox.PollEvent()
	switch event.Type {
	case termbox.EventKey:
		return &tt.Event{Type: tt.EventKey, Key: key(event.Key), Ch: event.Ch}
	case termbox.EventResize:
		termbox.Flush()
		return &tt.Event{Type: tt.EventResize}
	default:
		return &tt.Event{Type: tt.EventOther}
	}
}

func key(k termbox.Key) tt.Key {
	switch k {
	case termbox.KeyArrowDown:
		return tt.KeyArrowDown
	case termbox.KeyArrowLeft:
		return tt.KeyArrowLeft
	case termbox.KeyArrowRight:
		return tt.KeyArrowRight
	case termbox.KeyArrowUp:
		return tt.KeyArrowUp
	case termbox.KeyBackspace2:
		return tt.KeyBackspace2
	case termbox.KeyCtrlC:
		return tt.KeyCtrlC
	case termbox.KeyCtrlL:
		return tt.KeyCtrlL
	case termbox.KeyCtrlR:
		return tt.KeyCtrlR
	case termbox.KeyEnter:
		return tt.KeyEnter
	case termbox.KeyEsc:
		return tt.KeyEsc
	case termbox.KeySpace:
		return tt.KeySpace
	case termbox.KeyTab:
		return tt.KeyTab
	default:
		return tt.KeyUnsupported
	}
}
