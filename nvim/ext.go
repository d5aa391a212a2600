/*
 * MIT License
 *
 * Copyright (c) 2025 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package nvim

import (
	"reflect"

	"github.com/nabbar/nvigo/rpc"
)

// The handle types ride the wire as MessagePack extensions; registering
// them on the shared handle makes every codec of the process encode and
// decode them transparently.
func init() {
	for _, r := range []struct {
		rt  reflect.Type
		tag uint64
	}{
		{reflect.TypeOf(Buffer{}), ExtTypeBuffer},
		{reflect.TypeOf(Window{}), ExtTypeWindow},
		{reflect.TypeOf(Tabpage{}), ExtTypeTabpage},
	} {
		if err := rpc.RegisterExt(r.rt, r.tag, handleExt{tag: r.tag}); err != nil {
			panic(err)
		}
	}
}

// handleExt copies raw handle payloads in and out of the three handle
// types without interpreting them.
type handleExt struct {
	tag uint64
}

func (e handleExt) WriteExt(v interface{}) []byte {
	switch h := v.(type) {
	case Buffer:
		return h.Data
	case *Buffer:
		return h.Data
	case Window:
		return h.Data
	case *Window:
		return h.Data
	case Tabpage:
		return h.Data
	case *Tabpage:
		return h.Data
	}
	return nil
}

func (e handleExt) ReadExt(dst interface{}, src []byte) {
	d := append([]byte(nil), src...)

	switch h := dst.(type) {
	case *Buffer:
		h.Data = d
	case *Window:
		h.Data = d
	case *Tabpage:
		h.Data = d
	}
}
