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

	liberr "github.com/nabbar/golib/errors"
	liblog "github.com/nabbar/golib/logger"
	libptc "github.com/nabbar/golib/network/protocol"
	"github.com/nabbar/nvigo/rpc"
)

// FuncPlugin builds the handler object for one accepted connection, so
// every peer of a listening plugin gets independent state.
type FuncPlugin func() Plugin

// Connect dials the editor and serves the connection in the calling
// goroutine: identify channel, bootstrap, run the connected hook, route
// inbound traffic. It returns when the connection terminates; nil on clean
// shutdown or peer EOF.
func Connect(ctx context.Context, cfg rpc.Config, p Plugin, log liblog.FuncLog) liberr.Error {
	if p == nil {
		return ErrorParamEmpty.Error(nil)
	}

	svc, err := newService(p, log)
	if err != nil {
		return err
	}

	if e := rpc.Connect(ctx, cfg, svc, rpc.NewShutdown(), log); e != nil {
		return e
	}

	// The dispatcher came down cleanly, but identification, bootstrap or the
	// connected hook may still have failed and triggered that shutdown.
	if f := svc.failure(); f != nil {
		if le, k := f.(liberr.Error); k {
			return le
		}
		return ErrorConnectedHook.Error(f)
	}

	return nil
}

// ConnectUnix connects over a unix domain socket path.
func ConnectUnix(ctx context.Context, path string, p Plugin, log liblog.FuncLog) liberr.Error {
	return Connect(ctx, rpc.Config{Network: libptc.NetworkUnix, Address: path}, p, log)
}

// ConnectTCP connects over tcp to a host:port address.
func ConnectTCP(ctx context.Context, addr string, p Plugin, log liblog.FuncLog) liberr.Error {
	return Connect(ctx, rpc.Config{Network: libptc.NetworkTCP, Address: addr}, p, log)
}

// NewServer builds an accepting endpoint serving one plugin instance per
// connection. The returned server follows the rpc.Server contract: a stale
// unix socket file at bind time is an error, and the file is removed when
// listening stops.
func NewServer(cfg rpc.Config, fct FuncPlugin, log liblog.FuncLog) (rpc.Server, liberr.Error) {
	if fct == nil {
		return nil, ErrorParamEmpty.Error(nil)
	}

	return rpc.NewServer(cfg, func() rpc.Service {
		svc, err := newService(fct(), log)
		if err != nil {
			// Declarations are static: a plugin failing validation here would
			// have failed the first connection too. Refuse traffic instead of
			// crashing the accept loop.
			return rejectAll{err: err, log: log}
		}
		return svc
	}, log)
}

// ListenUnix serves plugin connections on a unix domain socket path until
// the context is cancelled.
func ListenUnix(ctx context.Context, path string, fct FuncPlugin, log liblog.FuncLog) liberr.Error {
	srv, err := NewServer(rpc.Config{Network: libptc.NetworkUnix, Address: path}, fct, log)
	if err != nil {
		return err
	}

	return srv.Listen(ctx)
}

// ListenTCP serves plugin connections on a tcp address until the context is
// cancelled.
func ListenTCP(ctx context.Context, addr string, fct FuncPlugin, log liblog.FuncLog) liberr.Error {
	srv, err := NewServer(rpc.Config{Network: libptc.NetworkTCP, Address: addr}, fct, log)
	if err != nil {
		return err
	}

	return srv.Listen(ctx)
}

// rejectAll answers every inbound call with the validation failure of its
// plugin, keeping the listener alive.
type rejectAll struct {
	err liberr.Error
	log liblog.FuncLog
}

func (o rejectAll) Connected(ctx context.Context, s rpc.Sender) error {
	return o.err
}

func (o rejectAll) HandleRequest(ctx context.Context, s rpc.Sender, method string, params []interface{}) (interface{}, error) {
	return nil, &rpc.ServiceError{Name: serviceErrName, Value: o.err.Error()}
}

func (o rejectAll) HandleNotification(ctx context.Context, s rpc.Sender, method string, params []interface{}) {
	if o.log != nil && o.log() != nil {
		o.log().Warning("notification on invalid plugin", map[string]interface{}{"method": method})
	}
}
