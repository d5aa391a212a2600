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
	"net"
	"time"

	liberr "github.com/nabbar/golib/errors"
	liblog "github.com/nabbar/golib/logger"
)

// DefaultDialTimeout bounds stream acquisition; an earlier deadline on the
// caller's context takes precedence.
const DefaultDialTimeout = 10 * time.Second

// Dial acquires a stream to the configured endpoint.
func Dial(ctx context.Context, cfg Config) (net.Conn, liberr.Error) {
	if err := cfg.Validate(); err != nil {
		if e, k := err.(liberr.Error); k {
			return nil, e
		}
		return nil, ErrorValidatorError.Error(err)
	}

	dlr := net.Dialer{Timeout: DefaultDialTimeout}

	con, err := dlr.DialContext(ctx, cfg.Network.Code(), cfg.Address)
	if err != nil {
		return nil, ErrorConnect.Error(err)
	}

	return con, nil
}

// Connect dials the endpoint and runs the full connection lifecycle in the
// calling goroutine: the dispatcher select loop, with the service's
// Connected hook spawned once the Sender is live. It returns when the
// connection terminates.
func Connect(ctx context.Context, cfg Config, svc Service, shn *Shutdown, log liblog.FuncLog) liberr.Error {
	if svc == nil || shn == nil {
		return ErrorParamEmpty.Error(nil)
	}

	con, err := Dial(ctx, cfg)
	if err != nil {
		return err
	}

	cnn := NewConnection(con)

	dsp, err := NewDispatcher(cnn, svc, shn, log)
	if err != nil {
		_ = con.Close()
		return err
	}

	go func() {
		if e := svc.Connected(ctx, dsp.Sender()); e != nil {
			if l := log; l != nil && l() != nil {
				l().Warning("connected hook failed", map[string]interface{}{"error": e.Error()})
			}
			shn.Fire()
		}
	}()

	return dsp.Run(ctx)
}
