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

package plugin

import (
	"context"
	"reflect"

	liberr "github.com/nabbar/golib/errors"
)

type retShape uint8

const (
	retNone retShape = iota
	retError
	retValue
	retValueError
)

var (
	ctxType = reflect.TypeOf((*context.Context)(nil)).Elem()
	cliType = reflect.TypeOf((*Client)(nil))
	errType = reflect.TypeOf((*error)(nil)).Elem()
)

// descriptor is the validated runtime form of one declared Method: the
// reflected func, its positional argument types and its return shape.
type descriptor struct {
	mth Method
	fct reflect.Value
	arg []reflect.Type
	ret retShape
}

func newDescriptor(m Method) (*descriptor, liberr.Error) {
	if m.Name == "" {
		return nil, ErrorMethodName.Error(nil)
	}

	switch m.Kind {
	case KindRequest, KindNotify, KindConnected:
	default:
		return nil, ErrorMethodKind.Error(nil)
	}

	if m.Func == nil {
		return nil, ErrorMethodSignature.Error(nil)
	}

	fct := reflect.ValueOf(m.Func)
	typ := fct.Type()

	if typ.Kind() != reflect.Func || typ.IsVariadic() {
		return nil, ErrorMethodSignature.Error(nil)
	}

	if typ.NumIn() < 2 || typ.In(0) != ctxType || typ.In(1) != cliType {
		return nil, ErrorMethodSignature.Error(nil)
	}

	d := &descriptor{
		mth: m,
		fct: fct,
	}

	for i := 2; i < typ.NumIn(); i++ {
		d.arg = append(d.arg, typ.In(i))
	}

	if len(m.ArgNames) != len(d.arg) {
		return nil, ErrorMethodArgNames.Error(nil)
	}

	var err liberr.Error
	if d.ret, err = returnShape(typ); err != nil {
		return nil, err
	}

	if m.Kind != KindRequest && (d.ret == retValue || d.ret == retValueError) {
		return nil, ErrorMethodSignature.Error(nil)
	}

	if m.Kind == KindConnected && len(d.arg) > 0 {
		return nil, ErrorMethodSignature.Error(nil)
	}

	return d, validAutocmd(m)
}

func returnShape(typ reflect.Type) (retShape, liberr.Error) {
	switch typ.NumOut() {
	case 0:
		return retNone, nil
	case 1:
		if typ.Out(0) == errType {
			return retError, nil
		}
		return retValue, nil
	case 2:
		if typ.Out(1) != errType || typ.Out(0) == errType {
			return 0, ErrorMethodSignature.Error(nil)
		}
		return retValueError, nil
	}

	return 0, ErrorMethodSignature.Error(nil)
}

func validAutocmd(m Method) liberr.Error {
	if m.Autocmd == nil {
		return nil
	}

	if m.Kind != KindRequest {
		return ErrorMethodAutocmd.Error(nil)
	}

	if len(m.Autocmd.Events) == 0 {
		return ErrorMethodAutocmd.Error(nil)
	}

	for _, e := range m.Autocmd.Events {
		if !e.IsValid() {
			return ErrorMethodAutocmd.Error(nil)
		}
	}

	return nil
}

// registry indexes the validated descriptors of one plugin by kind.
type registry struct {
	req map[string]*descriptor
	ntf map[string]*descriptor
	cnd *descriptor
}

// newRegistry validates the plugin's declarations: unique names, at most
// one connected method, well formed signatures and autocmd specs.
func newRegistry(p Plugin) (*registry, liberr.Error) {
	if p == nil || p.Name() == "" {
		return nil, ErrorParamEmpty.Error(nil)
	}

	r := &registry{
		req: make(map[string]*descriptor),
		ntf: make(map[string]*descriptor),
	}

	// Names are unique across kinds: request and notify stubs share the
	// editor-side namespace key, so a cross-kind collision would overwrite
	// one registration with the other at bootstrap.
	nms := make(map[string]struct{})

	for _, m := range p.Methods() {
		d, err := newDescriptor(m)
		if err != nil {
			return nil, err
		}

		if m.Kind != KindConnected {
			if _, k := nms[m.Name]; k {
				return nil, ErrorMethodName.Error(nil)
			}
			nms[m.Name] = struct{}{}
		}

		switch m.Kind {
		case KindRequest:
			r.req[m.Name] = d

		case KindNotify:
			r.ntf[m.Name] = d

		case KindConnected:
			if r.cnd != nil {
				return nil, ErrorConnectedCount.Error(nil)
			}
			r.cnd = d
		}
	}

	return r, nil
}
