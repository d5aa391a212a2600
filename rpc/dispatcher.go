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

	liberr "github.com/nabbar/golib/errors"
	liblog "github.com/nabbar/golib/logger"
)

// queueSize bounds the outbound intent queue. Backpressure propagates to
// callers through their context.
const queueSize = 64

type clientMessage interface {
	isClientMessage()
}

type cliRequest struct {
	method string
	params []interface{}
	rsl    chan<- reply
}

func (cliRequest) isClientMessage() {}

type cliNotify struct {
	method string
	params []interface{}
	ack    chan<- liberr.Error
}

func (cliNotify) isClientMessage() {}

type cliResponse struct {
	id  uint32
	err interface{}
	res interface{}
}

func (cliResponse) isClientMessage() {}

// Dispatcher multiplexes one connection: it is the sole reader and sole
// writer of the stream. Inbound frames are routed to the Service on spawned
// goroutines; outbound client intents are drained from a bounded queue and
// written in handling order.
type Dispatcher struct {
	cnn *Connection
	svc Service
	log liblog.FuncLog
	que chan clientMessage
	shn *Shutdown
	ftl chan liberr.Error
}

// NewDispatcher binds a connection to a service. The shutdown broadcast is
// shared with the Sender handles and whatever lifecycle owns the connection.
func NewDispatcher(cnn *Connection, svc Service, shn *Shutdown, log liblog.FuncLog) (*Dispatcher, liberr.Error) {
	if cnn == nil || svc == nil || shn == nil {
		return nil, ErrorParamEmpty.Error(nil)
	}

	return &Dispatcher{
		cnn: cnn,
		svc: svc,
		log: log,
		que: make(chan clientMessage, queueSize),
		shn: shn,
		ftl: make(chan liberr.Error, 1),
	}, nil
}

// Sender returns a cheap shareable handle feeding this dispatcher's
// outbound queue.
func (o *Dispatcher) Sender() Sender {
	return &sender{
		que: o.que,
		shn: o.shn,
	}
}

func (o *Dispatcher) logger() liblog.Logger {
	if o.log != nil {
		if l := o.log(); l != nil {
			return l
		}
	}
	return liblog.New(nil)
}

// Run executes the select loop until the stream ends, a fatal error occurs,
// the context is cancelled or the shutdown broadcast fires. On exit the
// broadcast is fired, the stream is closed and every pending request is
// resolved with a termination error. Run returns nil on clean shutdown or
// peer EOF.
func (o *Dispatcher) Run(ctx context.Context) liberr.Error {
	inb := make(chan Message)
	rer := make(chan liberr.Error, 1)

	go o.readLoop(inb, rer)

	err := o.loop(ctx, inb, rer)

	o.shn.Fire()
	_ = o.cnn.Close()
	o.cnn.failPending(ErrorConnectionTerminated.Error(err))

	return err
}

func (o *Dispatcher) readLoop(inb chan<- Message, rer chan<- liberr.Error) {
	for {
		m, e := o.cnn.ReadMessage()
		if e != nil {
			rer <- e
			return
		}

		select {
		case inb <- m:
		case <-o.shn.Done():
			return
		}
	}
}

func (o *Dispatcher) loop(ctx context.Context, inb <-chan Message, rer <-chan liberr.Error) liberr.Error {
	for {
		select {
		case m := <-inb:
			if err := o.handleInbound(ctx, m); err != nil {
				return err
			}

		case e := <-rer:
			if e.IsCode(ErrorStreamClosed) {
				o.logger().Debug("peer closed the stream", nil)
				return nil
			}
			return e

		case e := <-o.ftl:
			return e

		case cm := <-o.que:
			if err := o.handleClient(cm); err != nil {
				return err
			}

		case <-o.shn.Done():
			return nil

		case <-ctx.Done():
			return nil
		}
	}
}

func (o *Dispatcher) handleInbound(ctx context.Context, m Message) liberr.Error {
	switch v := m.(type) {
	case *Request:
		o.logger().Debug("recv request", map[string]interface{}{"id": v.ID, "method": v.Method})
		go o.serveRequest(ctx, v)

	case *Notification:
		o.logger().Debug("recv notification", map[string]interface{}{"method": v.Method})
		go o.svc.HandleNotification(ctx, o.Sender(), v.Method, v.Params)

	case *Response:
		var r reply
		if v.Error != nil {
			r.err = &RemoteError{Value: v.Error}
		} else {
			r.val = v.Result
		}
		if !o.cnn.completePending(v.ID, r) {
			o.logger().Warning("response for unknown request id", map[string]interface{}{"id": v.ID})
		}
	}

	return nil
}

// serveRequest runs the handler on its own goroutine so that the select
// loop stays responsive while the handler itself talks to the peer. The
// response flows back through the outbound queue, preserving write order.
func (o *Dispatcher) serveRequest(ctx context.Context, rq *Request) {
	res, err := o.svc.HandleRequest(ctx, o.Sender(), rq.Method, rq.Params)

	out := cliResponse{id: rq.ID}

	if err != nil {
		var se *ServiceError
		if !errors.As(err, &se) {
			o.fatal(ErrorInternal.Error(err))
			return
		}
		out.err = se.ToValue()
	} else {
		out.res = res
	}

	select {
	case o.que <- out:
	case <-o.shn.Done():
		// Shutdown won while the handler was running: the response is dropped.
	}
}

func (o *Dispatcher) fatal(e liberr.Error) {
	select {
	case o.ftl <- e:
	default:
	}
}

func (o *Dispatcher) handleClient(cm clientMessage) liberr.Error {
	switch v := cm.(type) {
	case cliRequest:
		return o.writeRequest(v)

	case cliNotify:
		e := o.cnn.WriteMessage(&Notification{Method: v.method, Params: v.params})
		if v.ack != nil {
			v.ack <- e
		}
		return e

	case cliResponse:
		return o.cnn.WriteMessage(&Response{ID: v.id, Error: v.err, Result: v.res})
	}

	return nil
}

func (o *Dispatcher) writeRequest(v cliRequest) liberr.Error {
	id, e := o.cnn.nextID()
	if e != nil {
		v.rsl <- reply{err: e}
		return e
	}

	o.cnn.registerPending(id, v.rsl)

	if e = o.cnn.WriteMessage(&Request{ID: id, Method: v.method, Params: v.params}); e != nil {
		o.cnn.dropPending(id)
		v.rsl <- reply{err: e}
		return e
	}

	return nil
}
