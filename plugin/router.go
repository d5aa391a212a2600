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
	"reflect"

	libatm "github.com/nabbar/golib/atomic"
	liberr "github.com/nabbar/golib/errors"
	liblog "github.com/nabbar/golib/logger"
	"github.com/nabbar/nvigo/nvim"
	"github.com/nabbar/nvigo/rpc"
)

// service adapts one Plugin to the rpc.Service contract: channel
// identification and bootstrap on connect, then request/notification
// routing to the declared methods.
type service struct {
	plg Plugin
	reg *registry
	log liblog.FuncLog
	chn libatm.Value[int64]
	flr libatm.Value[error]
}

// newService validates the plugin declarations and binds them to a fresh
// per-connection state.
func newService(p Plugin, log liblog.FuncLog) (*service, liberr.Error) {
	reg, err := newRegistry(p)
	if err != nil {
		return nil, err
	}

	return &service{
		plg: p,
		reg: reg,
		log: log,
		chn: libatm.NewValue[int64](),
		flr: libatm.NewValue[error](),
	}, nil
}

// failure returns the error that brought the connection down before or
// during the connected hook, if any. The store happens before the shutdown
// broadcast fires, so a caller observing the dispatcher's exit reads it
// consistently.
func (o *service) failure() error {
	return o.flr.Load()
}

func (o *service) logger() liblog.Logger {
	if o.log != nil {
		if l := o.log(); l != nil {
			return l
		}
	}
	return liblog.New(nil)
}

func (o *service) client(s rpc.Sender) *Client {
	return newClient(s, o.plg.Name(), o.chn)
}

// Connected drives the per-connection sequence: identify the channel,
// bootstrap the declared methods, then run the connected hook if one is
// declared. The hook returning flips the shutdown broadcast.
func (o *service) Connected(ctx context.Context, s rpc.Sender) error {
	c := o.client(s)

	ci, err := c.Nvim.GetChanInfo(ctx, 0)
	if err != nil {
		e := ErrorIdentify.Error(err)
		o.flr.Store(e)
		return e
	}

	o.chn.Store(ci.ID)
	o.logger().Debug("channel identified", map[string]interface{}{"channel": ci.ID})

	if e := o.bootstrap(ctx, c); e != nil {
		o.flr.Store(e)
		return e
	}

	o.logger().Info("bootstrap complete", map[string]interface{}{"plugin": o.plg.Name()})

	if o.reg.cnd != nil {
		err = callConnected(ctx, c, o.reg.cnd)
		if err != nil {
			o.logger().Warning("connected hook failed", map[string]interface{}{"error": err.Error()})
			o.flr.Store(ErrorConnectedHook.Error(err))
		}

		// The hook returning, successfully or not, flips the broadcast. The
		// failure store above precedes the fire so callers read it after the
		// dispatcher exits.
		c.Shutdown()
		return err
	}

	return nil
}

// bootstrap registers every declared method with the editor: request and
// notify stubs under the plugin namespace, plus one autocommand per
// declared autocommand.
func (o *service) bootstrap(ctx context.Context, c *Client) liberr.Error {
	ns := o.plg.Name()

	for n, d := range o.reg.req {
		if err := c.registerRPCRequest(ctx, ns, n, d.mth.ArgNames); err != nil {
			return ErrorBootstrap.Error(err)
		}

		if d.mth.Autocmd != nil {
			if err := c.autocmdPattern(ctx, ns, n, d.mth.Autocmd); err != nil {
				return ErrorBootstrap.Error(err)
			}
		}
	}

	for n, d := range o.reg.ntf {
		if err := c.registerRPCNotify(ctx, ns, n, d.mth.ArgNames); err != nil {
			return ErrorBootstrap.Error(err)
		}
	}

	return nil
}

func callConnected(ctx context.Context, c *Client, d *descriptor) error {
	out := d.fct.Call([]reflect.Value{reflect.ValueOf(ctx), reflect.ValueOf(c)})

	if d.ret == retError {
		if e, k := out[0].Interface().(error); k && e != nil {
			return e
		}
	}

	return nil
}

// HandleRequest routes one inbound request to the matching declared method.
func (o *service) HandleRequest(ctx context.Context, s rpc.Sender, method string, params []interface{}) (interface{}, error) {
	if method == PingMethod {
		return true, nil
	}

	d, k := o.reg.req[method]
	if !k {
		return nil, &rpc.ServiceError{Name: serviceErrName, Value: "unknown method"}
	}

	args, serr := o.decodeArgs(d, params)
	if serr != nil {
		return nil, serr
	}

	c := o.client(s)
	res, err := invoke(ctx, c, d, args)
	if err != nil {
		o.logger().Warning("request handler failed", map[string]interface{}{"method": method, "error": err.Error()})
		o.notifyEditor(ctx, c, fmt.Sprintf("%s request error: %s - %s", o.plg.Name(), method, err.Error()))
		return nil, &rpc.ServiceError{Name: serviceErrName, Value: err.Error()}
	}

	return res, nil
}

// HandleNotification routes one inbound notification. Failures are logged
// and surfaced to the editor user best-effort; the connection survives.
func (o *service) HandleNotification(ctx context.Context, s rpc.Sender, method string, params []interface{}) {
	d, k := o.reg.ntf[method]
	if !k {
		o.logger().Warning("unhandled notification", map[string]interface{}{"method": method})
		return
	}

	args, serr := o.decodeArgs(d, params)
	if serr != nil {
		o.logger().Warning("notification dropped", map[string]interface{}{"method": method, "error": serr.Error()})
		return
	}

	c := o.client(s)
	if _, err := invoke(ctx, c, d, args); err != nil {
		o.logger().Warning("notification handler failed", map[string]interface{}{"method": method, "error": err.Error()})
		o.notifyEditor(ctx, c, fmt.Sprintf("%s notify error: %s - %s", o.plg.Name(), method, err.Error()))
	}
}

// decodeArgs checks the positional parameter count and decodes each wire
// value into the declared Go type.
func (o *service) decodeArgs(d *descriptor, params []interface{}) ([]reflect.Value, *rpc.ServiceError) {
	if len(params) != len(d.arg) {
		return nil, &rpc.ServiceError{Name: serviceErrName, Value: "invalid number of arguments"}
	}

	args := make([]reflect.Value, 0, len(d.arg))

	for i, t := range d.arg {
		p := reflect.New(t)

		if err := rpc.Remarshal(params[i], p.Interface()); err != nil {
			return nil, &rpc.ServiceError{Name: serviceErrName, Value: err.Error()}
		}

		args = append(args, p.Elem())
	}

	return args, nil
}

func invoke(ctx context.Context, c *Client, d *descriptor, args []reflect.Value) (interface{}, error) {
	in := append([]reflect.Value{reflect.ValueOf(ctx), reflect.ValueOf(c)}, args...)
	out := d.fct.Call(in)

	switch d.ret {
	case retNone:
		return nil, nil

	case retError:
		if e, k := out[0].Interface().(error); k && e != nil {
			return nil, e
		}
		return nil, nil

	case retValue:
		return out[0].Interface(), nil

	case retValueError:
		if e, k := out[1].Interface().(error); k && e != nil {
			return nil, e
		}
		return out[0].Interface(), nil
	}

	return nil, nil
}

func (o *service) notifyEditor(ctx context.Context, c *Client, msg string) {
	if err := c.Notify(ctx, nvim.LogWarn, msg); err != nil {
		o.logger().Warning("cannot surface error to editor", map[string]interface{}{"error": err.Error()})
	}
}
