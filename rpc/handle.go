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

package rpc

import (
	"reflect"
	"strings"

	liberr "github.com/nabbar/golib/errors"
	"github.com/ugorji/go/codec"
)

// MaxNestingDepth bounds the recursion depth of any decoded MessagePack value.
const MaxNestingDepth = 1024

var hnd = newHandle()

func newHandle() *codec.MsgpackHandle {
	h := new(codec.MsgpackHandle)
	h.RawToString = true
	h.WriteExt = true
	h.MaxDepth = MaxNestingDepth
	return h
}

// Handle returns the MessagePack handle shared by every codec of this
// package. Extension types must be registered on it before any connection
// is created.
func Handle() *codec.MsgpackHandle {
	return hnd
}

// RegisterExt binds a Go type to a MessagePack extension tag on the shared
// handle. The nvim package registers the three editor handle types this way.
func RegisterExt(rt reflect.Type, tag uint64, ext codec.BytesExt) liberr.Error {
	if rt == nil || ext == nil {
		return ErrorParamEmpty.Error(nil)
	}

	if err := hnd.SetBytesExt(rt, tag, ext); err != nil {
		return ErrorMessageEncode.Error(err)
	}

	return nil
}

// Remarshal re-encodes src through the shared handle and decodes the bytes
// into dst. It is how generic wire values are converted to declared Go types
// (handler arguments, typed API results) and back.
func Remarshal(src interface{}, dst interface{}) liberr.Error {
	var buf []byte

	if err := codec.NewEncoderBytes(&buf, hnd).Encode(src); err != nil {
		return ErrorMessageEncode.Error(err)
	}

	if err := codec.NewDecoderBytes(buf, hnd).Decode(dst); err != nil {
		return ErrorMessageDecode.Error(err)
	}

	return nil
}

func decodeErrorCode(err error) liberr.CodeError {
	if err == nil {
		return liberr.UnknownError
	} else if strings.Contains(err.Error(), "depth") {
		return ErrorMessageDepth
	}

	return ErrorMessageDecode
}

func asUint32(v interface{}) (uint32, bool) {
	switch i := v.(type) {
	case uint32:
		return i, true
	case uint64:
		return uint32(i), true
	case int64:
		if i < 0 {
			return 0, false
		}
		return uint32(i), true
	case int:
		if i < 0 {
			return 0, false
		}
		return uint32(i), true
	case uint:
		return uint32(i), true
	case int8, int16, int32, uint8, uint16:
		return uint32(reflect.ValueOf(v).Convert(reflect.TypeOf(uint32(0))).Uint()), true
	}
	return 0, false
}

func asString(v interface{}) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case []byte:
		return string(s), true
	}
	return "", false
}

func asParams(v interface{}) ([]interface{}, bool) {
	if v == nil {
		return nil, false
	}

	p, k := v.([]interface{})
	return p, k
}
