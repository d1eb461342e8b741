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
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	terrors "github.com/timburks/turtle/errors"
	"github.com/timburks/turtle/interpreter"
	"github.com/timburks/turtle/logging"
	"github.com/timburks/turtle/tree"
	"github.com/timburks/turtle/turtle"
	tt "github.com/timburks/turtle/types"
)

var _ tt.Commander = (*Commander)(nil)

// The Commander converts user input into interpreter actions.
type Commander struct {
	turtle      *turtle.Turtle
	interpreter *interpreter.Interpreter
	stopOnEmpty bool
	mode        int    // front end mode
	debug       bool   // debug mode displays information about events (key codes, etc)
	command     string // command as it is being typed on the command line
	lispText    string // lisp script as it is being typed
	message     string // status message
	multiplier  string // multiplier string as it is being entered
	logger      zerolog.Logger
}

func NewCommander(t *turtle.Turtle) *Commander {
	c := &Commander{
		turtle: t,
		mode:   tt.ModeStep,
		logger: logging.GetLogger("commander"),
	}
	c.interpreter = interpreter.New(nil, tree.None)
	return c
}

func (c *Commander) Turtle() *turtle.Turtle {
	return c.turtle
}

func (c *Commander) Interpreter() *interpreter.Interpreter {
	return c.interpreter
}

func (c *Commander) SetStopOnEmpty(stop bool) {
	c.stopOnEmpty = stop
	c.interpreter.StopOnEmpty = stop
}

// Load evaluates a script and makes its drawing the one being interpreted.
// On failure the current drawing is kept.
func (c *Commander) Load(script string) error {
	t, root, err := ParseEval(script)
	if err != nil {
		c.logger.Warn().Err(err).Msg("script rejected")
		return err
	}
	c.interpreter = interpreter.New(t, root)
	c.interpreter.StopOnEmpty = c.stopOnEmpty
	c.turtle.Home()
	c.logger.Info().Int("nodes", t.Count(root)).Msg("drawing loaded")
	return nil
}

// LoadFile reads a script from a file and loads it.
func (c *Commander) LoadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return terrors.Wrapf(err, terrors.ErrScriptRead, "failed to read %s", path)
	}
	return c.Load(string(b))
}

// Step steps the interpreter n times.
func (c *Commander) Step(n int) {
	for j := 0; j < n && !c.interpreter.IsFinished(); j++ {
		c.interpreter.Step(c.turtle)
	}
	c.message = c.Status()
}

func (c *Commander) Run() {
	steps := c.interpreter.Run(c.turtle)
	c.message = fmt.Sprintf("ran %d steps; %s", steps, c.Status())
}

// Reset rewinds the drawing and sends the turtle home.
func (c *Commander) Reset() {
	c.interpreter.Reset()
	c.turtle.Home()
	c.message = c.Status()
}

// Status describes the interpreter position.
func (c *Commander) Status() string {
	i := c.interpreter
	if i.IsFinished() {
		return fmt.Sprintf("finished after %d steps", i.Steps())
	}
	t := i.Tree()
	return fmt.Sprintf("step %d at %s [%s]", i.Steps(), t.Describe(i.Current()), t.Cursor(i.Current()).Describe())
}

func (c *Commander) GetMode() int {
	return c.mode
}

func (c *Commander) SetMode(m int) {
	c.mode = m
}

func (c *Commander) IsRunning() bool {
	return c.mode != tt.ModeQuit
}

func (c *Commander) ProcessEvent(event *tt.Event) error {
	if c.debug {
		c.message = fmt.Sprintf("event=%+v", event)
	}
	switch event.Type {
	case tt.EventKey:
		return c.ProcessKey(event)
	default:
		return nil
	}
}

func (c *Commander) ProcessKey(event *tt.Event) error {
	var err error
	switch c.mode {
	case tt.ModeStep:
		err = c.ProcessKeyStepMode(event)
	case tt.ModeCommand:
		err = c.ProcessKeyCommandMode(event)
	case tt.ModeLisp:
		err = c.ProcessKeyLispMode(event)
	}
	return err
}

func (c *Commander) ProcessKeyStepMode(event *tt.Event) error {
	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case tt.KeySpace, tt.KeyArrowRight, tt.KeyArrowDown, tt.KeyEnter:
			c.Step(c.Multiplier())
		case tt.KeyArrowUp:
			c.Run()
		case tt.KeyCtrlR, tt.KeyArrowLeft:
			c.Reset()
		case tt.KeyTab:
			c.toggleStopOnEmpty()
		case tt.KeyCtrlL:
			c.message = ""
		case tt.KeyCtrlC:
			c.mode = tt.ModeQuit
		}
	}
	if ch != 0 {
		switch ch {
		//
		// step multipliers are consumed by the next step
		//
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			c.multiplier += string(ch)
		case 's', 'l':
			c.Step(c.Multiplier())
		case 'r':
			c.Run()
		case 'R':
			c.Reset()
		case 'p': // toggle pausing on nodes without commands
			c.toggleStopOnEmpty()
		case 'q':
			c.mode = tt.ModeQuit
		//
		// commands go to the message bar
		//
		case ':':
			c.mode = tt.ModeCommand
			c.command = ""
		//
		// lisp scripts go to the message bar
		//
		case '(':
			c.mode = tt.ModeLisp
			c.lispText = "("
		}
	}
	return nil
}

func (c *Commander) toggleStopOnEmpty() {
	c.SetStopOnEmpty(!c.stopOnEmpty)
	c.message = fmt.Sprintf("stop on empty: %t", c.stopOnEmpty)
}

func (c *Commander) ProcessKeyCommandMode(event *tt.Event) error {
	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case tt.KeyEsc:
			c.mode = tt.ModeStep
		case tt.KeyEnter:
			return c.PerformCommand()
		case tt.KeyBackspace2:
			if len(c.command) > 0 {
				c.command = c.command[0 : len(c.command)-1]
			}
		case tt.KeySpace:
			c.command += " "
		}
	}
	if ch != 0 {
		c.command = c.command + string(ch)
	}
	return nil
}

func (c *Commander) ProcessKeyLispMode(event *tt.Event) error {
	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case tt.KeyEsc:
			c.mode = tt.ModeStep
		case tt.KeyEnter:
			c.mode = tt.ModeStep
			if err := c.Load(c.lispText); err != nil {
				c.message = err.Error()
				return err
			}
			c.message = c.Status()
		case tt.KeyBackspace2:
			if len(c.lispText) > 0 {
				c.lispText = c.lispText[0 : len(c.lispText)-1]
			}
		case tt.KeySpace:
			c.lispText += " "
		}
	}
	if ch != 0 {
		c.lispText = c.lispText + string(ch)
	}
	return nil
}

// PerformCommand runs the command typed on the command line.
func (c *Commander) PerformCommand() error {
	var err error
	parts := strings.Fields(c.command)
	if len(parts) > 0 {
		switch parts[0] {
		case "q", "quit":
			c.mode = tt.ModeQuit
			c.command = ""
			return nil
		case "step":
			n := 1
			if len(parts) == 2 {
				n, err = strconv.Atoi(parts[1])
				if err != nil {
					err = terrors.Wrapf(err, terrors.ErrInvalidInput, "bad step count %q", parts[1])
					break
				}
			}
			c.Step(n)
		case "run":
			c.Run()
		case "reset":
			c.Reset()
		case "load", "r":
			if len(parts) != 2 {
				err = terrors.New(terrors.ErrInvalidInput, "load requires a file name")
				break
			}
			if err = c.LoadFile(parts[1]); err == nil {
				c.message = c.Status()
			}
		case "stop":
			if len(parts) == 2 {
				c.SetStopOnEmpty(parts[1] == "on")
			}
			c.message = fmt.Sprintf("stop on empty: %t", c.stopOnEmpty)
		case "debug":
			if len(parts) == 2 {
				if parts[1] == "on" {
					c.debug = true
				} else if parts[1] == "off" {
					c.debug = false
					c.message = ""
				}
			}
		default:
			err = terrors.Newf(terrors.ErrInvalidInput, "unknown command %q", parts[0])
		}
	}
	if err != nil {
		c.message = err.Error()
	}
	c.command = ""
	c.mode = tt.ModeStep
	return err
}

// Multiplier returns and clears the count typed before a step.
func (c *Commander) Multiplier() int {
	if c.multiplier == "" {
		return 1
	}
	i, err := strconv.ParseInt(c.multiplier, 10, 64)
	c.multiplier = ""
	if err != nil || i < 1 {
		return 1
	}
	return int(i)
}

func (c *Commander) GetLispText() string {
	return c.lispText
}

func (c *Commander) GetCommand() string {
	return c.command
}

func (c *Commander) GetMessage() string {
	return c.message
}
