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

// Package screen implements displays on top of terminal toolkits.
// Opening a display switches the terminal to the alternate screen with raw
// input; closing it restores the terminal.
package screen

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"

	gott "github.com/nobel-von-it/test-test-editing/types"
)

// Supported backends
const (
	BackendTermbox = "termbox"
	BackendTcell   = "tcell"
)

var (
	ErrUnknownBackend = errors.New("unknown screen backend")
	ErrNotTerminal    = errors.New("standard input is not a terminal")
)

// Open takes over the terminal using the named backend.
func Open(backend string) (gott.Display, error) {
	switch backend {
	case BackendTermbox, BackendTcell:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, ErrNotTerminal
	}
	if backend == BackendTcell {
		s, err := OpenTcell()
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	s, err := OpenTermbox()
	if err != nil {
		return nil, err
	}
	return s, nil
}
