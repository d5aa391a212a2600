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

import "fmt"

const (
	tagRequest      uint64 = 0
	tagResponse     uint64 = 1
	tagNotification uint64 = 2
)

// Message is one of the three MessagePack-RPC message kinds carried on the
// wire: Request, Response or Notification.
type Message interface {
	messageTag() uint64
}

// Request is a remote call expecting exactly one Response with the same id.
// It serializes as the 4-element array [0, id, method, params].
type Request struct {
	ID     uint32
	Method string
	Params []interface{}
}

func (m *Request) messageTag() uint64 {
	return tagRequest
}

func (m *Request) String() string {
	return fmt.Sprintf("request #%d %s/%d", m.ID, m.Method, len(m.Params))
}

// Response answers the Request sharing its id. Error is non-nil for a failed
// call and Result is then nil; a void result leaves both nil. It serializes
// as the 4-element array [1, id, error, result].
type Response struct {
	ID     uint32
	Error  interface{}
	Result interface{}
}

func (m *Response) messageTag() uint64 {
	return tagResponse
}

func (m *Response) String() string {
	if m.Error != nil {
		return fmt.Sprintf("response #%d error", m.ID)
	}
	return fmt.Sprintf("response #%d", m.ID)
}

// Notification is a fire-and-forget call. It serializes as the 3-element
// array [2, method, params].
type Notification struct {
	Method string
	Params []interface{}
}

func (m *Notification) messageTag() uint64 {
	return tagNotification
}

func (m *Notification) String() string {
	return fmt.Sprintf("notification %s/%d", m.Method, len(m.Params))
}
