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

// Package commander maps user input onto buffer operations.
// Key events from a display are handled by a Commander, which also owns
// the loop that repaints the window after every event. Lisp expressions
// are handled by a Script, which exposes the same operations as
// primitives so that a buffer can be edited without a terminal.
package commander
