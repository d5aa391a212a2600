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
	"io"
	"math"

	liberr "github.com/nabbar/golib/errors"
)

type reply struct {
	val interface{}
	err error
}

// Connection owns one byte stream exclusively: the framed codec over it,
// the pending-request table and the request id counter. It schedules
// nothing itself; the Dispatcher drives it and is the only goroutine
// touching its state.
type Connection struct {
	con io.Closer
	cdc Codec
	nid uint32
	pnd map[uint32]chan<- reply
}

// NewConnection wraps a connected stream. The stream must not be used by
// anything else afterwards.
func NewConnection(conn io.ReadWriteCloser) *Connection {
	return &Connection{
		con: conn,
		cdc: NewCodec(conn),
		nid: 0,
		pnd: make(map[uint32]chan<- reply),
	}
}

// ReadMessage reads the next inbound frame.
func (o *Connection) ReadMessage() (Message, liberr.Error) {
	return o.cdc.ReadMessage()
}

// WriteMessage writes and flushes one outbound frame.
func (o *Connection) WriteMessage(m Message) liberr.Error {
	return o.cdc.WriteMessage(m)
}

// Close closes the underlying stream, unblocking any pending read.
func (o *Connection) Close() error {
	return o.con.Close()
}

// nextID allocates the next request id. The counter starting at 1 never
// wraps within a realistic session; exhaustion is a fatal internal error.
func (o *Connection) nextID() (uint32, liberr.Error) {
	if o.nid == math.MaxUint32 {
		return 0, ErrorRequestIDExhausted.Error(nil)
	}

	o.nid++
	return o.nid, nil
}

func (o *Connection) registerPending(id uint32, c chan<- reply) {
	o.pnd[id] = c
}

// completePending resolves the slot registered for id, if any. The slot is
// consumed exactly once.
func (o *Connection) completePending(id uint32, r reply) bool {
	c, k := o.pnd[id]
	if !k {
		return false
	}

	delete(o.pnd, id)
	c <- r
	return true
}

func (o *Connection) dropPending(id uint32) {
	delete(o.pnd, id)
}

// failPending resolves every outstanding slot with the given error. Called
// once when the connection terminates.
func (o *Connection) failPending(err liberr.Error) {
	for id, c := range o.pnd {
		delete(o.pnd, id)
		c <- reply{err: err}
	}
}
