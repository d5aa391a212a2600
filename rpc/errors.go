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
	"fmt"

	liberr "github.com/nabbar/golib/errors"
)

const pkgName = "nvigo/rpc"

const (
	// ErrorParamEmpty is returned when a required parameter is empty or nil.
	ErrorParamEmpty liberr.CodeError = iota + liberr.MinAvailable
	// ErrorFrameTruncated is returned when the stream ends inside a frame,
	// either within the length prefix or within the announced body.
	ErrorFrameTruncated
	// ErrorMessageInvalid is returned when a frame body does not parse as one
	// of the three message shapes.
	ErrorMessageInvalid
	// ErrorMessageDecode is returned when the MessagePack body cannot be decoded.
	ErrorMessageDecode
	// ErrorMessageDepth is returned when a nested value exceeds the recursion
	// depth limit.
	ErrorMessageDepth
	// ErrorMessageEncode is returned when a message cannot be serialized.
	ErrorMessageEncode
	// ErrorStreamRead is returned on a read failure of the underlying stream.
	ErrorStreamRead
	// ErrorStreamWrite is returned on a write failure of the underlying stream.
	ErrorStreamWrite
	// ErrorStreamClosed is returned when the stream reaches EOF at a frame boundary.
	ErrorStreamClosed
	// ErrorConnect is returned when the transport cannot acquire a stream.
	ErrorConnect
	// ErrorListen is returned when the listener cannot be created or fails to accept.
	ErrorListen
	// ErrorValidatorError is returned when a configuration fails validation.
	ErrorValidatorError
	// ErrorRequestIDExhausted is returned when the per connection request id
	// counter wraps around.
	ErrorRequestIDExhausted
	// ErrorConnectionTerminated is returned to awaiters when the connection ends
	// while their request is still pending.
	ErrorConnectionTerminated
	// ErrorQueueUnavailable is returned when a client intent cannot be enqueued
	// because the dispatcher is gone.
	ErrorQueueUnavailable
	// ErrorInternal is returned when a dispatcher invariant is broken.
	ErrorInternal
)

func init() {
	if liberr.ExistInMapMessage(ErrorParamEmpty) {
		panic(fmt.Errorf("error code collision with package %s", pkgName))
	}
	liberr.RegisterIdFctMessage(ErrorParamEmpty, getMessage)
}

func getMessage(code liberr.CodeError) (message string) {
	switch code {
	case liberr.UnknownError:
		return liberr.NullMessage
	case ErrorParamEmpty:
		return "given parameters is empty"
	case ErrorFrameTruncated:
		return "rpc: truncated frame"
	case ErrorMessageInvalid:
		return "rpc: invalid message shape"
	case ErrorMessageDecode:
		return "rpc: cannot decode message body"
	case ErrorMessageDepth:
		return "rpc: message nesting depth limit exceeded"
	case ErrorMessageEncode:
		return "rpc: cannot encode message"
	case ErrorStreamRead:
		return "rpc: stream read error"
	case ErrorStreamWrite:
		return "rpc: stream write error"
	case ErrorStreamClosed:
		return "rpc: stream closed"
	case ErrorConnect:
		return "rpc: cannot connect to remote address"
	case ErrorListen:
		return "rpc: cannot listen on given address"
	case ErrorValidatorError:
		return "rpc: invalid config"
	case ErrorRequestIDExhausted:
		return "rpc: request id counter exhausted"
	case ErrorConnectionTerminated:
		return "rpc: connection terminated"
	case ErrorQueueUnavailable:
		return "rpc: dispatcher queue unavailable"
	case ErrorInternal:
		return "rpc: internal dispatcher error"
	}

	return liberr.NullMessage
}
