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
	"fmt"

	liberr "github.com/nabbar/golib/errors"
)

const pkgName = "nvigo/plugin"

const (
	// ErrorParamEmpty is returned when a required parameter is empty or nil.
	ErrorParamEmpty liberr.CodeError = iota + liberr.MinAvailable + 200
	// ErrorMethodName is returned when a declared method has no name or a
	// duplicate name.
	ErrorMethodName
	// ErrorMethodKind is returned when a declared method has no valid kind.
	ErrorMethodKind
	// ErrorMethodSignature is returned when a declared method func does not
	// match the shape its kind requires.
	ErrorMethodSignature
	// ErrorMethodArgNames is returned when the declared argument names do not
	// match the func arity.
	ErrorMethodArgNames
	// ErrorMethodAutocmd is returned when an autocmd spec is invalid or
	// attached to a non request method.
	ErrorMethodAutocmd
	// ErrorConnectedCount is returned when more than one connected method is
	// declared.
	ErrorConnectedCount
	// ErrorIdentify is returned when the channel info of the connection
	// cannot be obtained.
	ErrorIdentify
	// ErrorBootstrap is returned when a registration call of the bootstrap
	// sequence fails.
	ErrorBootstrap
	// ErrorConnectedHook is returned when the declared connected hook fails.
	ErrorConnectedHook
)

func init() {
	if liberr.ExistInMapMessage(ErrorParamEmpty) {
		panic(fmt.Errorf("error code collision with package %s", pkgName))
	}
	liberr.RegisterIdFctMessage(ErrorParamEmpty, getMessage)
}

func getMessage(code liberr.CodeError) (message string) {
	switch code {
	case liberr.UnknownError:
		return liberr.NullMessage
	case ErrorParamEmpty:
		return "given parameters is empty"
	case ErrorMethodName:
		return "plugin: invalid or duplicate method name"
	case ErrorMethodKind:
		return "plugin: invalid method kind"
	case ErrorMethodSignature:
		return "plugin: invalid method signature"
	case ErrorMethodArgNames:
		return "plugin: argument names do not match method arity"
	case ErrorMethodAutocmd:
		return "plugin: invalid autocmd specification"
	case ErrorConnectedCount:
		return "plugin: more than one connected method declared"
	case ErrorIdentify:
		return "plugin: cannot identify rpc channel"
	case ErrorBootstrap:
		return "plugin: bootstrap registration failed"
	case ErrorConnectedHook:
		return "plugin: connected hook failed"
	}

	return liberr.NullMessage
}
