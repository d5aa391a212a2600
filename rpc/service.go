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
	"fmt"
)

// Service receives the inbound traffic of one connection. Both hooks run on
// a goroutine spawned per invocation, so an implementation must tolerate
// concurrent calls.
type Service interface {
	// HandleRequest serves one inbound Request. A returned *ServiceError is
	// sent back as the error slot of the Response; any other non-nil error is
	// treated as fatal and terminates the connection. The Sender may be used
	// to issue requests to the peer while handling.
	HandleRequest(ctx context.Context, c Sender, method string, params []interface{}) (interface{}, error)

	// HandleNotification serves one inbound Notification. Notifications carry
	// no reply; failures must be handled internally.
	HandleNotification(ctx context.Context, c Sender, method string, params []interface{})

	// Connected runs once the dispatcher is live, before any inbound traffic
	// is expected to be meaningful. A returned error terminates the connection.
	Connected(ctx context.Context, c Sender) error
}

// ServiceError is the structured error shape sent to the peer when a handler
// fails: a map with "name" and "value" keys, distinguishing handler failures
// from protocol level ones.
type ServiceError struct {
	Name  string
	Value interface{}
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("service error %s: %v", e.Name, e.Value)
}

// ToValue renders the error as the wire map.
func (e *ServiceError) ToValue() map[string]interface{} {
	return map[string]interface{}{
		"name":  e.Name,
		"value": e.Value,
	}
}

// ServiceErrorFromValue parses a wire value into a ServiceError if it has
// the expected map shape.
func ServiceErrorFromValue(v interface{}) (*ServiceError, bool) {
	var nme, val interface{}

	switch m := v.(type) {
	case map[string]interface{}:
		nme, val = m["name"], m["value"]
	case map[interface{}]interface{}:
		nme, val = m["name"], m["value"]
	default:
		return nil, false
	}

	n, k := asString(nme)
	if !k {
		return nil, false
	}

	return &ServiceError{
		Name:  n,
		Value: val,
	}, true
}

// RemoteError carries a non-nil error payload returned by the peer to one of
// our requests. The payload is passed through verbatim.
type RemoteError struct {
	Value interface{}
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote error: %v", e.Value)
}
