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
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nobel-von-it/test-test-editing/commander"
	"github.com/nobel-von-it/test-test-editing/config"
	"github.com/nobel-von-it/test-test-editing/editor"
	"github.com/nobel-von-it/test-test-editing/logging"
	"github.com/nobel-von-it/test-test-editing/screen"
	gott "github.com/nobel-von-it/test-test-editing/types"
)

// openDisplay takes over the terminal.
var openDisplay = screen.Open

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lined:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	v := viper.New()
	var configFile string
	var script string

	cmd := &cobra.Command{
		Use:   "lined",
		Short: "Edit a single line of text in the terminal",
		Long: `lined edits one line of text in a full-screen terminal.
Type to insert, Backspace deletes, Left and Right move the cursor,
Esc quits. With --eval, a lisp expression edits the line instead
and the result is printed without touching the terminal.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			config.Setup(v, configFile)
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			if script != "" {
				return eval(cmd.OutOrStdout(), cfg, script)
			}
			logger, err := logging.NewLogger(cfg.Log.File, cfg.Log.Level)
			if err != nil {
				return err
			}
			defer logger.Close()
			return edit(cfg, logger)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&configFile, "config", "c", "", "config file (default is $HOME/.config/lined/config.yaml)")
	flags.StringVar(&script, "eval", "", "evaluate a lisp expression against an empty line and print the line")
	flags.String("marker", editor.DefaultMarker, "text drawn at the cursor")
	flags.String("align", gott.AlignCenter, "line alignment: center or left")
	flags.String("backend", screen.BackendTermbox, "terminal backend: termbox or tcell")
	flags.Bool("debug", false, "show the cursor position next to the line")
	flags.String("log-file", "", "log file (default is $HOME/.linedlog)")
	flags.String("log-level", logging.LevelInfo, "log level: DEBUG, INFO, WARN or ERROR")

	for key, flag := range map[string]string{
		"marker":    "marker",
		"align":     "align",
		"backend":   "backend",
		"debug":     "debug",
		"log.file":  "log-file",
		"log.level": "log-level",
	} {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(fmt.Sprintf("bind flag %s: %v", flag, err))
		}
	}
	return cmd
}

// Run a script and exit.
func eval(w io.Writer, cfg *config.Config, script string) error {
	b := editor.NewBuffer()
	s := commander.NewScript(b, cfg.Marker)
	if _, err := s.Eval(script); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, b.RenderWithCursor(cfg.Marker))
	return err
}

// Run the interactive editor. The terminal is restored on every way out,
// including panics, before the error is returned.
func edit(cfg *config.Config, logger *logging.Logger) (err error) {
	display, err := openDisplay(cfg.Backend)
	if err != nil {
		logger.Error("open screen", "backend", cfg.Backend, "err", err)
		return err
	}
	defer func() {
		r := recover()
		if cerr := display.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("restore terminal: %w", cerr)
		}
		if r != nil {
			panic(r)
		}
	}()
	logger.Info("start", "backend", cfg.Backend, "align", cfg.Align, "debug", cfg.Debug)

	b := editor.NewBuffer()
	w := editor.NewWindow(cfg.Marker, cfg.Align)
	w.SetDebug(cfg.Debug)
	c := commander.NewCommander(b, logger.Logger)
	if err := c.Run(display, w); err != nil {
		logger.Error("run", "err", err)
		return err
	}
	logger.Info("quit")
	return nil
}
