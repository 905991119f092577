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
	"log/slog"

	"github.com/nobel-von-it/test-test-editing/editor"
	gott "github.com/nobel-von-it/test-test-editing/types"
)

// The Commander converts user input into calls on a buffer.
type Commander struct {
	buffer gott.Editable
	logger *slog.Logger
	mode   int // editor mode
}

func NewCommander(b gott.Editable, logger *slog.Logger) *Commander {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Commander{buffer: b, logger: logger, mode: gott.ModeEdit}
}

func (c *Commander) GetMode() int {
	return c.mode
}

func (c *Commander) IsRunning() bool {
	return c.mode != gott.ModeQuit
}

// Run repaints the window and handles events until the user quits.
func (c *Commander) Run(display gott.Display, w *editor.Window) error {
	for c.IsRunning() {
		if err := w.Render(display, c.buffer); err != nil {
			return fmt.Errorf("render: %w", err)
		}
		event, err := display.GetNextEvent()
		if err != nil {
			return fmt.Errorf("read event: %w", err)
		}
		if err := c.ProcessEvent(event); err != nil {
			return err
		}
	}
	return nil
}

func (c *Commander) ProcessEvent(event *gott.Event) error {
	switch event.Type {
	case gott.EventKey:
		if event.Release {
			return nil
		}
		return c.ProcessKey(event)
	default:
		return nil
	}
}

func (c *Commander) ProcessKey(event *gott.Event) error {
	b := c.buffer

	key := event.Key
	ch := event.Ch
	if key != gott.KeyNone {
		switch key {
		case gott.KeyEsc, gott.KeyCtrlC:
			c.mode = gott.ModeQuit
		case gott.KeyBackspace, gott.KeyBackspace2:
			b.BackspaceChar()
		case gott.KeyArrowLeft:
			b.MoveLeft()
		case gott.KeyArrowRight:
			b.MoveRight()
		case gott.KeySpace:
			b.InsertChar(' ')
		default:
			c.logger.Debug("ignored key", "key", int(key))
			return nil
		}
	} else if ch != 0 {
		b.InsertChar(ch)
	}
	c.logger.Debug("key",
		"key", int(key),
		"cursor", b.Cursor(),
		"length", b.Length())
	return nil
}
