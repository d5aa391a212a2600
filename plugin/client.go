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
	"fmt"
	"strings"

	libatm "github.com/nabbar/golib/atomic"
	"github.com/nabbar/nvigo/nvim"
	"github.com/nabbar/nvigo/rpc"
)

// Client is the handler-facing handle for one connection: the typed editor
// API, the raw request/notify surface and the shutdown signal. It is cheap
// to share; all its state lives in the connection it belongs to.
type Client struct {
	// Nvim is the typed editor API bound to this connection.
	Nvim *nvim.Api

	snd rpc.Sender
	nme string
	chn libatm.Value[int64]
}

func newClient(snd rpc.Sender, name string, chn libatm.Value[int64]) *Client {
	return &Client{
		Nvim: nvim.NewApi(snd),
		snd:  snd,
		nme:  name,
		chn:  chn,
	}
}

// Name returns the plugin namespace this client registers under.
func (c *Client) Name() string {
	return c.nme
}

// ChannelID returns the cached editor channel id of this connection, or 0
// before identification completes.
func (c *Client) ChannelID() int64 {
	return c.chn.Load()
}

// RawRequest issues an editor request outside the typed surface.
func (c *Client) RawRequest(ctx context.Context, method string, params ...interface{}) (interface{}, error) {
	return c.snd.Request(ctx, method, params)
}

// RawNotify issues an editor notification outside the typed surface.
func (c *Client) RawNotify(ctx context.Context, method string, params ...interface{}) error {
	return c.snd.Notify(ctx, method, params)
}

// Notify displays a message to the editor user at the given log level.
func (c *Client) Notify(ctx context.Context, lvl nvim.LogLevel, msg string) error {
	_, err := c.Nvim.Notify(ctx, msg, lvl, nil)
	return err
}

// Lua executes a Lua snippet on the editor with the given arguments.
func (c *Client) Lua(ctx context.Context, code string, args ...interface{}) (interface{}, error) {
	return c.Nvim.ExecLua(ctx, code, args)
}

// Shutdown fires the connection's shutdown broadcast. Idempotent.
func (c *Client) Shutdown() {
	c.snd.Shutdown()
}

// Done returns the channel closed when the connection shuts down.
func (c *Client) Done() <-chan struct{} {
	return c.snd.Done()
}

// registerRPCRequest installs a scripting-language stub on the editor that
// forwards calls of namespace.method to this channel as a request.
func (c *Client) registerRPCRequest(ctx context.Context, namespace, method string, args []string) error {
	_, err := c.Lua(ctx, stubLua("rpcrequest", c.ChannelID(), namespace, method, args))
	return err
}

// registerRPCNotify is the notification counterpart of registerRPCRequest.
func (c *Client) registerRPCNotify(ctx context.Context, namespace, method string, args []string) error {
	_, err := c.Lua(ctx, stubLua("rpcnotify", c.ChannelID(), namespace, method, args))
	return err
}

// stubLua renders the editor-side forwarding stub. The argument names are
// carried into the stub signature so the editor-side surface documents
// itself.
func stubLua(fn string, channel int64, namespace, method string, args []string) string {
	lst := strings.Join(args, ", ")

	cll := fmt.Sprintf("vim.%s(%d, '%s'", fn, channel, nvim.EscapeLua(method))
	if lst != "" {
		cll += ", " + lst
	}
	cll += ")"

	return fmt.Sprintf(
		"if _G.%s == nil then _G.%s = {} end\n_G.%s.%s = function(%s) return %s end",
		namespace, namespace, namespace, nvim.EscapeLua(method), lst, cll,
	)
}

// autocmdPattern installs an autocommand firing the registered request stub
// on the given events and patterns.
func (c *Client) autocmdPattern(ctx context.Context, namespace, method string, a *Autocmd) error {
	opt := nvim.CreateAutocmdOpts{
		Pattern: a.Patterns,
		Nested:  a.Nested,
		Command: fmt.Sprintf("lua _G.%s.%s()", namespace, nvim.EscapeLua(method)),
	}

	if a.Group != "" {
		opt.Group = a.Group
	}

	_, err := c.Nvim.CreateAutocmd(ctx, a.Events, opt)
	return err
}
