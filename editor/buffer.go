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

// DefaultMarker is drawn in the gap where the next character will land.
const DefaultMarker = "|"

// A Buffer holds one line of text and a cursor that sits between characters.
// The cursor ranges over [0, Length()].
type Buffer struct {
	row    *Row
	cursor int
}

func NewBuffer() *Buffer {
	return &Buffer{row: NewRow("")}
}

func (b *Buffer) Text() string {
	return b.row.DisplayText()
}

func (b *Buffer) Cursor() int {
	return b.cursor
}

func (b *Buffer) Length() int {
	return b.row.Length()
}

func (b *Buffer) MoveLeft() {
	if b.cursor > 0 {
		b.cursor--
	}
}

func (b *Buffer) MoveRight() {
	if b.cursor < b.row.Length() {
		b.cursor++
	}
}

// InsertChar puts c immediately before the cursor and steps over it.
func (b *Buffer) InsertChar(c rune) {
	b.row.InsertChar(b.cursor, c)
	b.MoveRight()
}

// BackspaceChar removes the character before the cursor and returns it,
// or returns 0 if the cursor is at the start of the line.
func (b *Buffer) BackspaceChar() rune {
	if b.cursor == 0 {
		return 0
	}
	c := b.row.DeleteChar(b.cursor - 1)
	b.cursor--
	return c
}

// RenderWithCursor returns the text with marker placed at the cursor.
func (b *Buffer) RenderWithCursor(marker string) string {
	return b.row.TextBefore(b.cursor) + marker + b.row.TextAfter(b.cursor)
}
