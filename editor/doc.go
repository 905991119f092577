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

// Package editor implements the core text editing functions of lined.
// A Buffer holds a single line of text and a cursor that sits in the gap
// between two characters, so it ranges from zero to the length of the line.
// Every buffer operation is total: moving or deleting past either end of
// the line does nothing.
// A Window draws a buffer onto a display, scrolling horizontally when the
// line is wider than the screen.
package editor
