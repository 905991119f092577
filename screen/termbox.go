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

	"github.com/nsf/termbox-go"

	gott "github.com/nobel-von-it/test-test-editing/types"
)

// bright black in the 256-color palette, which termbox offsets by one
const termboxDarkGray = termbox.Attribute(9)

// TermboxScreen draws with termbox. Only one can be open at a time.
type TermboxScreen struct{}

func OpenTermbox() (*TermboxScreen, error) {
	if err := termbox.Init(); err != nil {
		return nil, fmt.Errorf("termbox init: %w", err)
	}
	termbox.SetInputMode(termbox.InputEsc)
	termbox.SetOutputMode(termbox.Output256)
	return &TermboxScreen{}, nil
}

func (s *TermboxScreen) Size() gott.Size {
	var size gott.Size
	size.Cols, size.Rows = termbox.Size()
	return size
}

func (s *TermboxScreen) Clear() {
	termbox.Clear(termbox.ColorWhite, termbox.ColorBlack)
}

func (s *TermboxScreen) SetCell(col, row int, c rune, style gott.Style) {
	switch style {
	case gott.StyleLine:
		termbox.SetCell(col, row, c, termbox.ColorWhite, termboxDarkGray)
	default:
		termbox.SetCell(col, row, c, termbox.ColorDefault, termbox.ColorDefault)
	}
}

func (s *TermboxScreen) HideCursor() {
	termbox.HideCursor()
}

func (s *TermboxScreen) Flush() error {
	return termbox.Flush()
}

func (s *TermboxScreen) GetNextEvent() (*gott.Event, error) {
	event := termbox.PollEvent()
	switch event.Type {
	case termbox.EventError:
		return nil, fmt.Errorf("termbox poll: %w", event.Err)
	case termbox.EventResize:
		termbox.Flush()
		return &gott.Event{Type: gott.EventResize}, nil
	case termbox.EventKey:
		return &gott.Event{
			Type: gott.EventKey,
			Key:  termboxKey(event.Key, event.Ch),
			Ch:   event.Ch,
		}, nil
	default:
		return &gott.Event{Type: gott.EventNone}, nil
	}
}

func (s *TermboxScreen) Close() error {
	termbox.Close()
	return nil
}

func termboxKey(k termbox.Key, ch rune) gott.Key {
	if ch != 0 {
		return gott.KeyNone
	}
	switch k {
	case termbox.KeyEsc:
		return gott.KeyEsc
	case termbox.KeyBackspace:
		return gott.KeyBackspace
	case termbox.KeyBackspace2:
		return gott.KeyBackspace2
	case termbox.KeyArrowLeft:
		return gott.KeyArrowLeft
	case termbox.KeyArrowRight:
		return gott.KeyArrowRight
	case termbox.KeyArrowUp:
		return gott.KeyArrowUp
	case termbox.KeyArrowDown:
		return gott.KeyArrowDown
	case termbox.KeyEnter:
		return gott.KeyEnter
	case termbox.KeySpace:
		return gott.KeySpace
	case termbox.KeyTab:
		return gott.KeyTab
	case termbox.KeyCtrlC:
		return gott.KeyCtrlC
	default:
		return gott.KeyUnsupported
	}
}
