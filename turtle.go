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
package main

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/timburks/turtle/commander"
	"github.com/timburks/turtle/config"
	"github.com/timburks/turtle/logging"
	"github.com/timburks/turtle/screen"
	"github.com/timburks/turtle/turtle"
)

//go:embed demo.lisp
var demoScript string

var (
	verbosity  int
	configPath string
	script     string
	runOnly    bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "turtle [script.lisp]",
		Short: "Step through turtle drawings",
		Long: `turtle interprets a tree of drawing commands one step at a time.

Drawings are written as lisp expressions:

  (seq (jump 0 0) (move 10) (rotate (turns 0.25)) (move 10))

Without --run the drawing opens full screen. Press space to step,
r to run to the end, R to reset and q to quit.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runTurtle,
	}
	rootCmd.Flags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity (-v, -vv, -vvv)")
	rootCmd.Flags().StringVar(&configPath, "config", "", "config file (default turtle.toml in the script directory)")
	rootCmd.Flags().StringVar(&script, "eval", "", "evaluate a drawing given on the command line")
	rootCmd.Flags().BoolVar(&runOnly, "run", false, "run the drawing to completion and print its path")
	return rootCmd
}

func runTurtle(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = filepath.Dir(args[0])
	}
	cfg, err := config.Load(configPath, dir)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbosity = verbosity
	}
	closeLog := logging.SetupLogger(cfg.Verbosity, runOnly)
	defer closeLog()
	log.Debug().Interface("config", cfg).Msg("Configuration loaded")

	t := turtle.NewTurtleAt(turtle.Position{}, cfg.Heading)
	c := commander.NewCommander(t)
	c.SetStopOnEmpty(cfg.StopOnEmpty)

	switch {
	case script != "":
		err = c.Load(script)
	case len(args) == 1:
		err = c.LoadFile(args[0])
	default:
		err = c.Load(demoScript)
	}
	if err != nil {
		return err
	}

	if runOnly {
		c.SetStopOnEmpty(false)
		c.Run()
		return printPath(cmd.OutOrStdout(), c)
	}
	return interact(c, cfg.Scale)
}

func printPath(w io.Writer, c *commander.Commander) error {
	for _, s := range c.Turtle().Path {
		verb := "move"
		if !s.Pen {
			verb = "jump"
		}
		if _, err := fmt.Fprintf(w, "%s %s -> %s\n", verb, s.From, s.To); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, c.Status())
	return err
}

func interact(c *commander.Commander, scale float64) error {
	s, err := screen.NewScreen(scale)
	if err != nil {
		return err
	}
	defer s.Close()

	c.Step(0)
	for c.IsRunning() {
		s.Render(c)
		if err := c.ProcessEvent(s.GetNextEvent()); err != nil {
			log.Warn().Err(err).Msg("Event failed")
		}
	}
	return nil
}
