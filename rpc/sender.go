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

	liberr "github.com/nabbar/golib/errors"
)

// Sender is the cheaply shareable ability to talk to the peer on one
// connection. It holds only the dispatcher's outbound queue and the
// connection's shutdown broadcast; copying it is free.
type Sender interface {
	// Request enqueues a Request intent and awaits the correlated Response.
	// A non-nil error payload from the peer is returned as *RemoteError with
	// the payload passed through verbatim. Cancelling the context abandons
	// the await; a response arriving later is dropped silently.
	Request(ctx context.Context, method string, params []interface{}) (interface{}, error)

	// Notify enqueues a Notification intent. The returned error reflects the
	// actual frame write.
	Notify(ctx context.Context, method string, params []interface{}) error

	// Shutdown fires the connection's shutdown broadcast. Idempotent.
	Shutdown()

	// Done returns the channel closed when the connection shuts down.
	Done() <-chan struct{}
}

type sender struct {
	que chan<- clientMessage
	shn *Shutdown
}

func (o *sender) Request(ctx context.Context, method string, params []interface{}) (interface{}, error) {
	rsl := make(chan reply, 1)

	select {
	case o.que <- cliRequest{method: method, params: params, rsl: rsl}:
	case <-o.shn.Done():
		return nil, ErrorConnectionTerminated.Error(nil)
	case <-ctx.Done():
		return nil, ErrorQueueUnavailable.Error(ctx.Err())
	}

	select {
	case r := <-rsl:
		if r.err != nil {
			return nil, r.err
		}
		return r.val, nil
	case <-o.shn.Done():
		// The dispatcher fails every pending slot on termination; whichever
		// arm wins here, the caller observes a terminated connection.
		return nil, ErrorConnectionTerminated.Error(nil)
	case <-ctx.Done():
		return nil, ErrorConnectionTerminated.Error(ctx.Err())
	}
}

func (o *sender) Notify(ctx context.Context, method string, params []interface{}) error {
	ack := make(chan liberr.Error, 1)

	select {
	case o.que <- cliNotify{method: method, params: params, ack: ack}:
	case <-o.shn.Done():
		return ErrorConnectionTerminated.Error(nil)
	case <-ctx.Done():
		return ErrorQueueUnavailable.Error(ctx.Err())
	}

	select {
	case e := <-ack:
		if e != nil {
			return e
		}
		return nil
	case <-o.shn.Done():
		return ErrorConnectionTerminated.Error(nil)
	case <-ctx.Done():
		return ErrorConnectionTerminated.Error(ctx.Err())
	}
}

func (o *sender) Shutdown() {
	o.shn.Fire()
}

func (o *sender) Done() <-chan struct{} {
	return o.shn.Done()
}
