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
package editor

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	gott "github.com/nobel-von-it/test-test-editing/types"
)

// A Window is a view of a buffer: one line painted at the top of a display.
type Window struct {
	marker string
	align  string
	debug  bool
	size   gott.Size // display size at the last render
	offset int       // display offset in columns
}

func NewWindow(marker string, align string) *Window {
	if marker == "" {
		marker = DefaultMarker
	}
	if align != gott.AlignLeft {
		align = gott.AlignCenter
	}
	return &Window{marker: marker, align: align}
}

// SetDebug switches the line to a form that also shows the cursor index.
func (w *Window) SetDebug(debug bool) {
	w.debug = debug
}

func (w *Window) GetOffset() int {
	return w.offset
}

// Render draws the buffer and flushes the display.
func (w *Window) Render(display gott.Display, b gott.Editable) error {
	w.size = display.Size()
	display.Clear()
	for i := 0; i < w.size.Rows; i++ {
		for j := 0; j < w.size.Cols; j++ {
			display.SetCell(j, i, ' ', gott.StyleLine)
		}
	}
	if w.size.Rows > 0 && w.size.Cols > 0 {
		w.renderLine(display, b)
	}
	display.HideCursor()
	return display.Flush()
}

func (w *Window) renderLine(display gott.Display, b gott.Editable) {
	line, start := w.computeLineText(b)
	end := start + lineWidth(w.marker)
	width := lineWidth(line)

	origin := 0
	if width <= w.size.Cols {
		w.offset = 0
		if w.align == gott.AlignCenter {
			origin = (w.size.Cols - width) / 2
		}
	} else {
		w.adjustDisplayOffsetForScrolling(start, end, width)
	}

	x := origin - w.offset
	for _, c := range line {
		cw := cellWidth(c)
		if x >= 0 && x+cw <= w.size.Cols {
			display.SetCell(x, 0, c, gott.StyleLine)
		}
		x += cw
	}
}

// Compute the text to display and the column where the marker begins.
func (w *Window) computeLineText(b gott.Editable) (string, int) {
	prefix := ""
	if w.debug {
		prefix = fmt.Sprintf("pos: %d with text: ", b.Cursor())
	}
	before := []rune(b.Text())[:b.Cursor()]
	return prefix + b.RenderWithCursor(w.marker), lineWidth(prefix) + lineWidth(string(before))
}

// Recompute the display offset to keep the marker onscreen.
func (w *Window) adjustDisplayOffsetForScrolling(start, end, width int) {
	if w.offset > width-w.size.Cols {
		// the line got shorter
		w.offset = width - w.size.Cols
	}
	if start < w.offset {
		// scroll left
		w.offset = start
	}
	if end-w.offset > w.size.Cols {
		// scroll right
		w.offset = end - w.size.Cols
	}
	if w.offset < 0 {
		w.offset = 0
	}
}

// zero-width runes still take a cell so that every code point stays visible
func cellWidth(c rune) int {
	if cw := runewidth.RuneWidth(c); cw > 0 {
		return cw
	}
	return 1
}

func lineWidth(s string) int {
	n := 0
	for _, c := range s {
		n += cellWidth(c)
	}
	return n
}
