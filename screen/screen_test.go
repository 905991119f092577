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
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/nsf/termbox-go"

	gott "github.com/nobel-von-it/test-test-editing/types"
)

func TestOpenRejectsUnknownBackend(t *testing.T) {
	_, err := Open("curses")
	if !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("Unexpected error: %+v", err)
	}
}

func TestTermboxKeys(t *testing.T) {
	tests := []struct {
		key  termbox.Key
		ch   rune
		want gott.Key
	}{
		{0, 'a', gott.KeyNone},
		{termbox.KeyEsc, 0, gott.KeyEsc},
		{termbox.KeyBackspace, 0, gott.KeyBackspace},
		{termbox.KeyBackspace2, 0, gott.KeyBackspace2},
		{termbox.KeyArrowLeft, 0, gott.KeyArrowLeft},
		{termbox.KeyArrowRight, 0, gott.KeyArrowRight},
		{termbox.KeySpace, 0, gott.KeySpace},
		{termbox.KeyCtrlC, 0, gott.KeyCtrlC},
		{termbox.KeyF1, 0, gott.KeyUnsupported},
	}
	for _, tt := range tests {
		if got := termboxKey(tt.key, tt.ch); got != tt.want {
			t.Errorf("termboxKey(%v, %q) = %v, wanted %v", tt.key, tt.ch, got, tt.want)
		}
	}
}

func simulatedScreen(t *testing.T) (tcell.SimulationScreen, *TcellScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	s, err := NewTcellScreen(sim)
	if err != nil {
		t.Fatalf("Init failed: %+v", err)
	}
	sim.SetSize(20, 4)
	s.Flush()
	t.Cleanup(func() { s.Close() })
	return sim, s
}

func TestTcellScreenDraws(t *testing.T) {
	sim, s := simulatedScreen(t)
	if size := s.Size(); size != (gott.Size{Rows: 4, Cols: 20}) {
		t.Errorf("Unexpected size: %+v", size)
	}
	s.Clear()
	s.SetCell(2, 1, 'x', gott.StyleLine)
	s.HideCursor()
	if err := s.Flush(); err != nil {
		t.Fatalf("Flush failed: %+v", err)
	}
	c, _, style, _ := sim.GetContent(2, 1)
	if c != 'x' {
		t.Errorf("Unexpected cell: %q", c)
	}
	if style != tcellLineStyle {
		t.Errorf("Unexpected style: %+v", style)
	}
}

func TestTcellScreenEvents(t *testing.T) {
	sim, s := simulatedScreen(t)
	sim.InjectKey(tcell.KeyRune, 'a', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	sim.InjectKey(tcell.KeyLeft, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyBackspace2, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)
	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	want := []gott.Event{
		{Type: gott.EventKey, Ch: 'a'},
		{Type: gott.EventKey, Ch: ' '},
		{Type: gott.EventKey, Key: gott.KeyArrowLeft},
		{Type: gott.EventKey, Key: gott.KeyBackspace},
		{Type: gott.EventKey, Key: gott.KeyCtrlC},
		{Type: gott.EventKey, Key: gott.KeyEsc},
	}
	for i, w := range want {
		ev := nextKey(t, s)
		if *ev != w {
			t.Errorf("Event %d = %+v, wanted %+v", i, *ev, w)
		}
	}
}

// resize events may be queued ahead of the injected keys
func nextKey(t *testing.T, s *TcellScreen) *gott.Event {
	t.Helper()
	for {
		ev, err := s.GetNextEvent()
		if err != nil {
			t.Fatalf("GetNextEvent failed: %+v", err)
		}
		if ev.Type == gott.EventKey {
			return ev
		}
	}
}

func TestTcellKeys(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		want gott.Key
	}{
		{tcell.KeyEscape, gott.KeyEsc},
		{tcell.KeyBackspace, gott.KeyBackspace},
		{tcell.KeyRight, gott.KeyArrowRight},
		{tcell.KeyEnter, gott.KeyEnter},
		{tcell.KeyCtrlC, gott.KeyCtrlC},
		{tcell.KeyF5, gott.KeyUnsupported},
	}
	for _, tt := range tests {
		if got := tcellKey(tt.key); got != tt.want {
			t.Errorf("tcellKey(%v) = %v, wanted %v", tt.key, got, tt.want)
		}
	}
}
