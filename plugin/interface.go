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

// Package plugin binds a strongly typed handler object to one editor
// connection: its declared methods become editor-callable requests,
// notifications and event-bound callbacks, and the handler receives a
// typed Client for the editor's own RPC surface.
//
// A plugin declares its surface as a list of Method descriptors:
//
//	type Counter struct {
//	    mux sync.Mutex
//	    cnt int64
//	}
//
//	func (h *Counter) Name() string { return "counter" }
//
//	func (h *Counter) Methods() []plugin.Method {
//	    return []plugin.Method{
//	        {
//	            Name:     "add",
//	            Kind:     plugin.KindRequest,
//	            ArgNames: []string{"n"},
//	            Func: func(ctx context.Context, c *plugin.Client, n int64) (int64, error) {
//	                h.mux.Lock()
//	                defer h.mux.Unlock()
//	                h.cnt += n
//	                return h.cnt, nil
//	            },
//	        },
//	    }
//	}
//
// Method handlers are invoked on a goroutine per inbound message: a
// handler may freely call back into the editor and await the reply while
// the connection keeps serving. The handler object is shared across
// invocations and must synchronize its own state.
package plugin

import (
	"github.com/nabbar/nvigo/nvim"
)

// PingMethod is the framework's built-in liveness probe. It answers true
// and is always available without declaration.
const PingMethod = "__nvi_ping"

// serviceErrName tags the structured error sent to the editor for a failing
// request handler. notifyErrName is not used by the router: a failing
// notification handler is reported only through nvim_notify.
const (
	serviceErrName = "NviServiceError"
	notifyErrName  = "NviNotifyError"
)

// Plugin is a handler object bound to one connection. Name is the
// registration namespace on the editor side; Methods declares the callable
// surface (validated when the plugin is bound, before connecting).
//
// The same Plugin value serves every inbound invocation of its connection
// concurrently; implementations guard their state with their own
// synchronization.
type Plugin interface {
	Name() string
	Methods() []Method
}

// Kind classifies a declared method.
type Kind uint8

const (
	// KindRequest methods are editor-callable requests: they return a value
	// or an error to the editor.
	KindRequest Kind = iota + 1
	// KindNotify methods are editor-callable notifications: fire and forget.
	KindNotify
	// KindConnected marks the single optional hook run after bootstrap. Its
	// return flips the connection's shutdown broadcast.
	KindConnected
)

func (k Kind) String() string {
	switch k {
	case KindRequest:
		return "request"
	case KindNotify:
		return "notify"
	case KindConnected:
		return "connected"
	}
	return "unknown"
}

// Autocmd asks the editor to fire the carrying request method on the given
// events, restricted to the given file patterns.
type Autocmd struct {
	// Events to hook; must not be empty.
	Events []nvim.Event
	// Patterns restricts the hook to matching files; empty means all.
	Patterns []string
	// Group optionally names the autocommand group to install into.
	Group string
	// Nested allows the hook to trigger further autocommands.
	Nested bool
}

// Method declares one entry of the plugin's callable surface.
//
// Func must be a func whose first two parameters are context.Context and
// *Client. The remaining parameters are the editor-supplied arguments,
// decoded positionally; ArgNames names them for the editor-side stub and
// must match their count. Allowed return shapes are none, error, T, or
// (T, error); notify and connected methods must not return a value.
type Method struct {
	Name     string
	Kind     Kind
	ArgNames []string
	Autocmd  *Autocmd
	Func     interface{}
}
