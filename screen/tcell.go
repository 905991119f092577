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
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	gott "github.com/nobel-von-it/test-test-editing/types"
)

var ErrScreenClosed = errors.New("screen closed")

var tcellLineStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkGray)

// TcellScreen draws with a tcell.Screen.
type TcellScreen struct {
	screen tcell.Screen
}

func OpenTcell() (*TcellScreen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("tcell screen: %w", err)
	}
	return NewTcellScreen(s)
}

// NewTcellScreen initializes s and wraps it.
func NewTcellScreen(s tcell.Screen) (*TcellScreen, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("tcell init: %w", err)
	}
	return &TcellScreen{screen: s}, nil
}

func (s *TcellScreen) Size() gott.Size {
	var size gott.Size
	size.Cols, size.Rows = s.screen.Size()
	return size
}

func (s *TcellScreen) Clear() {
	s.screen.Clear()
}

func (s *TcellScreen) SetCell(col, row int, c rune, style gott.Style) {
	switch style {
	case gott.StyleLine:
		s.screen.SetContent(col, row, c, nil, tcellLineStyle)
	default:
		s.screen.SetContent(col, row, c, nil, tcell.StyleDefault)
	}
}

func (s *TcellScreen) HideCursor() {
	s.screen.HideCursor()
}

func (s *TcellScreen) Flush() error {
	s.screen.Show()
	return nil
}

func (s *TcellScreen) GetNextEvent() (*gott.Event, error) {
	switch ev := s.screen.PollEvent().(type) {
	case nil:
		return nil, ErrScreenClosed
	case *tcell.EventError:
		return nil, fmt.Errorf("tcell poll: %w", ev)
	case *tcell.EventResize:
		s.screen.Sync()
		return &gott.Event{Type: gott.EventResize}, nil
	case *tcell.EventKey:
		return tcellEvent(ev), nil
	default:
		return &gott.Event{Type: gott.EventNone}, nil
	}
}

func (s *TcellScreen) Close() error {
	s.screen.Fini()
	return nil
}

func tcellEvent(ev *tcell.EventKey) *gott.Event {
	event := &gott.Event{Type: gott.EventKey}
	if ev.Key() == tcell.KeyRune {
		event.Ch = ev.Rune()
		return event
	}
	event.Key = tcellKey(ev.Key())
	return event
}

// tcell reports both backspace codes as KeyBackspace and control
// characters as their Ctrl keys.
func tcellKey(k tcell.Key) gott.Key {
	switch k {
	case tcell.KeyEscape:
		return gott.KeyEsc
	case tcell.KeyBackspace:
		return gott.KeyBackspace
	case tcell.KeyLeft:
		return gott.KeyArrowLeft
	case tcell.KeyRight:
		return gott.KeyArrowRight
	case tcell.KeyUp:
		return gott.KeyArrowUp
	case tcell.KeyDown:
		return gott.KeyArrowDown
	case tcell.KeyEnter:
		return gott.KeyEnter
	case tcell.KeyTab:
		return gott.KeyTab
	case tcell.KeyCtrlC:
		return gott.KeyCtrlC
	default:
		return gott.KeyUnsupported
	}
}
