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

// helper_test.go provides the fake editor endpoint the suite talks to: a
// raw codec peer that auto-answers the editor API calls issued during
// identification and bootstrap, records everything it sees, and can issue
// its own requests to the plugin under test.
package plugin_test

import (
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"sync"
	"time"

	libptc "github.com/nabbar/golib/network/protocol"
	libnvm "github.com/nabbar/nvigo/nvim"
	libplg "github.com/nabbar/nvigo/plugin"
	librpc "github.com/nabbar/nvigo/rpc"
)

func testSocketPath() string {
	return filepath.Join(os.TempDir(), fmt.Sprintf("nvigo-plugin-%d.sock", time.Now().UnixNano()))
}

// editorCall records one editor API invocation made by the plugin.
type editorCall struct {
	method string
	params []interface{}
}

// fakeEditor plays the editor side of one connection.
type fakeEditor struct {
	con net.Conn
	cdc librpc.Codec

	wmx sync.Mutex
	cmx sync.Mutex

	calls   []editorCall
	nid     uint32
	pnd     map[uint32]chan *librpc.Response
	ntf     chan *librpc.Notification
	failLua bool
}

func newFakeEditor(con net.Conn, failLua bool) *fakeEditor {
	e := &fakeEditor{
		con:     con,
		cdc:     librpc.NewCodec(con),
		pnd:     make(map[uint32]chan *librpc.Response),
		ntf:     make(chan *librpc.Notification, 16),
		failLua: failLua,
	}

	go e.loop()
	return e
}

func (e *fakeEditor) loop() {
	for {
		m, err := e.cdc.ReadMessage()
		if err != nil {
			return
		}

		switch v := m.(type) {
		case *librpc.Request:
			e.record(v.Method, v.Params)
			e.answer(v)

		case *librpc.Response:
			e.cmx.Lock()
			c, k := e.pnd[v.ID]
			delete(e.pnd, v.ID)
			e.cmx.Unlock()
			if k {
				c <- v
			}

		case *librpc.Notification:
			e.ntf <- v
		}
	}
}

// answer emulates the handful of editor methods the framework calls while
// identifying and bootstrapping.
func (e *fakeEditor) answer(rq *librpc.Request) {
	var res interface{}

	if e.failLua && rq.Method == "nvim_exec_lua" {
		e.write(&librpc.Response{ID: rq.ID, Error: "E5107: lua error"})
		return
	}

	switch rq.Method {
	case "nvim_get_chan_info":
		res = map[string]interface{}{
			"id":     int64(42),
			"stream": "socket",
			"mode":   "rpc",
		}
	case "nvim_create_autocmd":
		res = int64(77)
	case "nvim_notify":
		res = nil
	default:
		res = nil
	}

	e.write(&librpc.Response{ID: rq.ID, Result: res})
}

func (e *fakeEditor) write(m librpc.Message) {
	e.wmx.Lock()
	defer e.wmx.Unlock()
	_ = e.cdc.WriteMessage(m)
}

func (e *fakeEditor) record(method string, params []interface{}) {
	e.cmx.Lock()
	defer e.cmx.Unlock()
	e.calls = append(e.calls, editorCall{method: method, params: params})
}

// recorded returns the methods of every recorded editor API call.
func (e *fakeEditor) recorded() []string {
	e.cmx.Lock()
	defer e.cmx.Unlock()

	out := make([]string, 0, len(e.calls))
	for _, c := range e.calls {
		out = append(out, c.method)
	}
	return out
}

func (e *fakeEditor) countCalls(method string) int {
	e.cmx.Lock()
	defer e.cmx.Unlock()

	var n int
	for _, c := range e.calls {
		if c.method == method {
			n++
		}
	}
	return n
}

// request issues one request to the plugin and awaits its response.
func (e *fakeEditor) request(method string, params []interface{}) *librpc.Response {
	e.cmx.Lock()
	e.nid++
	id := e.nid
	c := make(chan *librpc.Response, 1)
	e.pnd[id] = c
	e.cmx.Unlock()

	e.write(&librpc.Request{ID: id, Method: method, Params: params})

	select {
	case r := <-c:
		return r
	case <-time.After(5 * time.Second):
		return nil
	}
}

// notify issues one notification to the plugin.
func (e *fakeEditor) notify(method string, params []interface{}) {
	e.write(&librpc.Notification{Method: method, Params: params})
}

func (e *fakeEditor) close() {
	_ = e.con.Close()
}

// testPlugin is the handler object of the end to end suite.
type testPlugin struct {
	mux     sync.Mutex
	touched int
	ready   chan *libplg.Client
	hold    chan struct{}
}

func newTestPlugin() *testPlugin {
	return &testPlugin{
		ready: make(chan *libplg.Client, 1),
		hold:  make(chan struct{}),
	}
}

func (p *testPlugin) Name() string {
	return "itplug"
}

func (p *testPlugin) Touched() int {
	p.mux.Lock()
	defer p.mux.Unlock()
	return p.touched
}

func (p *testPlugin) Methods() []libplg.Method {
	return []libplg.Method{
		{
			Name:     "echo",
			Kind:     libplg.KindRequest,
			ArgNames: []string{"s"},
			Func: func(ctx context.Context, c *libplg.Client, s string) (string, error) {
				return s, nil
			},
		},
		{
			Name:     "add",
			Kind:     libplg.KindRequest,
			ArgNames: []string{"a", "b"},
			Func: func(ctx context.Context, c *libplg.Client, a, b int64) (int64, error) {
				return a + b, nil
			},
		},
		{
			Name: "boom",
			Kind: libplg.KindRequest,
			Func: func(ctx context.Context, c *libplg.Client) error {
				return fmt.Errorf("kaboom")
			},
		},
		{
			Name: "chan_id",
			Kind: libplg.KindRequest,
			Func: func(ctx context.Context, c *libplg.Client) (int64, error) {
				return c.ChannelID(), nil
			},
		},
		{
			Name: "touch",
			Kind: libplg.KindNotify,
			Func: func(ctx context.Context, c *libplg.Client) {
				p.mux.Lock()
				defer p.mux.Unlock()
				p.touched++
			},
		},
		{
			Name:     "on_write",
			Kind:     libplg.KindRequest,
			ArgNames: []string{},
			Autocmd: &libplg.Autocmd{
				Events:   []libnvm.Event{libnvm.EventBufWritePost},
				Patterns: []string{"*.go"},
				Group:    "itplug",
				Nested:   false,
			},
			Func: func(ctx context.Context, c *libplg.Client) error {
				return nil
			},
		},
		{
			Name: "run",
			Kind: libplg.KindConnected,
			Func: func(ctx context.Context, c *libplg.Client) error {
				select {
				case p.ready <- c:
				default:
				}
				select {
				case <-p.hold:
				case <-ctx.Done():
				case <-c.Done():
				}
				return nil
			},
		},
	}
}

// serveEditor binds a raw unix listener, connects the plugin to it and
// returns the editor side of the accepted connection plus the channel
// carrying Connect's result.
func serveEditor(ctx context.Context, p libplg.Plugin, failLua ...bool) (*fakeEditor, <-chan error, func()) {
	pth := testSocketPath()

	lst, err := net.Listen(libptc.NetworkUnix.Code(), pth)
	if err != nil {
		panic(err)
	}

	acc := make(chan net.Conn, 1)
	go func() {
		c, e := lst.Accept()
		if e == nil {
			acc <- c
		}
	}()

	dne := make(chan error, 1)
	go func() {
		if e := libplg.ConnectUnix(ctx, pth, p, nil); e != nil {
			dne <- e
		} else {
			dne <- nil
		}
	}()

	con := <-acc
	edt := newFakeEditor(con, len(failLua) > 0 && failLua[0])

	cln := func() {
		edt.close()
		_ = lst.Close()
		_ = os.Remove(pth)
	}

	return edt, dne, cln
}
