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
	"context"
	"errors"
	"net"
	"os"
	"sync"
	"sync/atomic"

	liberr "github.com/nabbar/golib/errors"
	liblog "github.com/nabbar/golib/logger"
	libptc "github.com/nabbar/golib/network/protocol"
)

// FuncService builds the Service for one accepted connection. Each
// connection gets an independent instance so per-connection state never
// leaks between peers.
type FuncService func() Service

// Server accepts streams and drives one dispatcher per connection.
type Server interface {
	// Listen binds the configured endpoint and serves until the context is
	// cancelled or Close is called. For unix sockets, a stale socket file at
	// bind time is a bind error; the file is removed when listening stops.
	Listen(ctx context.Context) liberr.Error

	// Close stops accepting and fires the shutdown broadcast of every live
	// connection. Idempotent.
	Close() error

	// IsRunning reports whether the accept loop is live.
	IsRunning() bool

	// Addr returns the bound address once listening, empty before.
	Addr() string

	// Done returns the channel closed when the accept loop has fully stopped.
	Done() <-chan struct{}
}

// NewServer builds a server from a validated config. The service factory is
// called once per accepted connection.
func NewServer(cfg Config, svc FuncService, log liblog.FuncLog) (Server, liberr.Error) {
	if svc == nil {
		return nil, ErrorParamEmpty.Error(nil)
	}

	if err := cfg.Validate(); err != nil {
		if e, k := err.(liberr.Error); k {
			return nil, e
		}
		return nil, ErrorValidatorError.Error(err)
	}

	return &server{
		cfg: cfg,
		svc: svc,
		log: log,
		shn: NewShutdown(),
		dne: make(chan struct{}),
	}, nil
}

type server struct {
	cfg Config
	svc FuncService
	log liblog.FuncLog

	shn *Shutdown
	dne chan struct{}
	run atomic.Bool
	lst atomic.Value // net.Listener
	wgr sync.WaitGroup
}

func (o *server) logger() liblog.Logger {
	if o.log != nil {
		if l := o.log(); l != nil {
			return l
		}
	}
	return liblog.New(nil)
}

func (o *server) Listen(ctx context.Context) liberr.Error {
	lst, err := net.Listen(o.cfg.Network.Code(), o.cfg.Address)
	if err != nil {
		return ErrorListen.Error(err)
	}

	o.lst.Store(lst)
	o.run.Store(true)

	defer func() {
		o.run.Store(false)
		_ = lst.Close()
		if o.cfg.Network == libptc.NetworkUnix {
			_ = os.Remove(o.cfg.Address)
		}
		o.wgr.Wait()
		close(o.dne)
	}()

	go func() {
		select {
		case <-ctx.Done():
		case <-o.shn.Done():
		}
		_ = lst.Close()
	}()

	o.logger().Info("listening", map[string]interface{}{
		"network": o.cfg.Network.Code(),
		"address": lst.Addr().String(),
	})

	for {
		con, err := lst.Accept()
		if err != nil {
			if o.shn.IsFired() || ctx.Err() != nil {
				return nil
			}
			return ErrorListen.Error(err)
		}

		o.wgr.Add(1)
		go o.serve(ctx, con)
	}
}

// serve runs the full connection lifecycle: dispatcher, connected hook,
// teardown. The per-connection shutdown also fires when the server stops.
func (o *server) serve(ctx context.Context, con net.Conn) {
	defer o.wgr.Done()

	var (
		shn = NewShutdown()
		cnn = NewConnection(con)
		svc = o.svc()
	)

	dsp, err := NewDispatcher(cnn, svc, shn, o.log)
	if err != nil {
		_ = con.Close()
		return
	}

	go func() {
		select {
		case <-o.shn.Done():
			shn.Fire()
		case <-shn.Done():
		}
	}()

	go func() {
		if e := svc.Connected(ctx, dsp.Sender()); e != nil {
			o.logger().Warning("connected hook failed", map[string]interface{}{"error": e.Error()})
			shn.Fire()
		}
	}()

	if e := dsp.Run(ctx); e != nil {
		o.logger().Error("connection error", map[string]interface{}{"error": e.Error()})
	}
}

func (o *server) Close() error {
	o.shn.Fire()

	if l, k := o.lst.Load().(net.Listener); k {
		if err := l.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			return err
		}
	}

	return nil
}

func (o *server) IsRunning() bool {
	return o.run.Load()
}

func (o *server) Addr() string {
	if l, k := o.lst.Load().(net.Listener); k {
		return l.Addr().String()
	}
	return ""
}

func (o *server) Done() <-chan struct{} {
	return o.dne
}
