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

// A row of text in the editor
type Row struct {
	Text []rune
}

func NewRow(text string) *Row {
	return &Row{Text: []rune(text)}
}

func (r *Row) DisplayText() string {
	return string(r.Text)
}

func (r *Row) Length() int {
	return len(r.Text)
}

// insert c before col; col is clamped to the row
func (r *Row) InsertChar(col int, c rune) {
	if col < 0 {
		col = 0
	}
	if col > len(r.Text) {
		col = len(r.Text)
	}
	line := make([]rune, 0, len(r.Text)+1)
	line = append(line, r.Text[0:col]...)
	line = append(line, c)
	line = append(line, r.Text[col:]...)
	r.Text = line
}

// delete character at col and return the deleted character
func (r *Row) DeleteChar(col int) rune {
	if col < 0 || col >= len(r.Text) {
		return 0
	}
	c := r.Text[col]
	r.Text = append(r.Text[0:col], r.Text[col+1:]...)
	return c
}

// returns the text before a specified column
func (r *Row) TextBefore(col int) string {
	if col <= 0 {
		return ""
	}
	if col >= len(r.Text) {
		return string(r.Text)
	}
	return string(r.Text[:col])
}

// returns the text after a specified column
func (r *Row) TextAfter(col int) string {
	if col < 0 {
		col = 0
	}
	if col < len(r.Text) {
		return string(r.Text[col:])
	} else {
		return ""
	}
}
