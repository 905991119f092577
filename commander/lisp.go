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
package commander

import (
	"errors"
	"fmt"
	"math"

	"github.com/steelseries/golisp"

	gott "github.com/nobel-von-it/test-test-editing/types"
)

// A Script evaluates lisp expressions against a buffer.
// golisp keeps its primitives in one global table, so the most recently
// created Script is the one that receives calls.
type Script struct {
	buffer gott.Editable
	marker string
}

func NewScript(b gott.Editable, marker string) *Script {
	s := &Script{buffer: b, marker: marker}
	golisp.MakePrimitiveFunction("buffer-insert", "1", s.insertImpl)
	golisp.MakePrimitiveFunction("buffer-delete-backward", "*", s.repeat(func() { s.buffer.BackspaceChar() }))
	golisp.MakePrimitiveFunction("buffer-move-left", "*", s.repeat(s.buffer.MoveLeft))
	golisp.MakePrimitiveFunction("buffer-move-right", "*", s.repeat(s.buffer.MoveRight))
	golisp.MakePrimitiveFunction("buffer-render", "0", s.renderImpl)
	golisp.MakePrimitiveFunction("buffer-text", "0", s.textImpl)
	golisp.MakePrimitiveFunction("buffer-cursor", "0", s.cursorImpl)
	return s
}

// Eval evaluates one expression and returns its printed value.
func (s *Script) Eval(source string) (string, error) {
	value, err := golisp.ParseAndEval(source)
	if err != nil {
		return "", fmt.Errorf("eval: %w", err)
	}
	switch {
	case value == nil:
		return "", nil
	case golisp.StringP(value):
		return golisp.StringValue(value), nil
	case golisp.IntegerP(value):
		return fmt.Sprintf("%d", golisp.IntegerValue(value)), nil
	case golisp.FloatP(value):
		return fmt.Sprintf("%g", golisp.FloatValue(value)), nil
	default:
		return golisp.String(value), nil
	}
}

func (s *Script) insertImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return nil, errors.New("buffer-insert requires a string argument")
	}
	for _, c := range golisp.StringValue(val) {
		s.buffer.InsertChar(c)
	}
	return s.renderImpl(args, env)
}

// repeat wraps op in a primitive that takes an optional repeat count
func (s *Script) repeat(op func()) func(*golisp.Data, *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		n, err := repeatCount(args)
		if err != nil {
			return nil, err
		}
		// more steps than characters cannot change anything
		if n > s.buffer.Length() {
			n = s.buffer.Length()
		}
		for i := 0; i < n; i++ {
			op()
		}
		return s.renderImpl(args, env)
	}
}

func repeatCount(args *golisp.Data) (int, error) {
	switch golisp.Length(args) {
	case 0:
		return 1, nil
	case 1:
	default:
		return 0, errors.New("expected at most one repeat count")
	}
	val := golisp.Car(args)
	switch {
	case golisp.IntegerP(val):
		return int(golisp.IntegerValue(val)), nil
	case golisp.FloatP(val):
		f := golisp.FloatValue(val)
		if f > math.MaxInt32 {
			return math.MaxInt32, nil
		}
		return int(f), nil
	default:
		return 0, errors.New("repeat count must be a number")
	}
}

func (s *Script) renderImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	return golisp.StringWithValue(s.buffer.RenderWithCursor(s.marker)), nil
}

func (s *Script) textImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	return golisp.StringWithValue(s.buffer.Text()), nil
}

func (s *Script) cursorImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	return golisp.IntegerWithValue(int64(s.buffer.Cursor())), nil
}
