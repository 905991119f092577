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

// Editor modes
const (
	ModeEdit = 0
	ModeQuit = 9999
)

// Event types
const (
	EventNone   = 0
	EventKey    = 1
	EventResize = 2
)

// Alignments of the edited line
const (
	AlignCenter = "center"
	AlignLeft   = "left"
)

type Size struct {
	Rows int
	Cols int
}

// An Event is a terminal event translated out of the toolkit that read it.
// Printable characters arrive with Key == 0 and the character in Ch.
type Event struct {
	Type    int
	Key     Key
	Ch      rune
	Release bool
}

type Key int

const (
	KeyUnsupported Key = -1
	KeyNone        Key = 0
)

const (
	KeyEsc Key = iota + 1
	KeyBackspace
	KeyBackspace2
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeyEnter
	KeySpace
	KeyTab
	KeyCtrlC
)

// Cell styles understood by every Display.
type Style int

const (
	StyleDefault Style = iota
	StyleLine          // white text on dark gray
)

// A Display is a full-screen terminal surface.
type Display interface {
	Size() Size
	Clear()
	SetCell(col, row int, c rune, style Style)
	HideCursor()
	Flush() error
	GetNextEvent() (*Event, error)
	Close() error
}

// Editable is the set of buffer primitives that user input is mapped onto.
type Editable interface {
	MoveLeft()
	MoveRight()
	InsertChar(c rune)
	BackspaceChar() rune
	RenderWithCursor(marker string) string
	Text() string
	Cursor() int
	Length() int
}
