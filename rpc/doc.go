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

// Package rpc implements the length-prefixed MessagePack-RPC dialect the
// editor speaks over stream transports: the framed codec, the
// per-connection state, and the dispatcher select loop that multiplexes
// inbound frames with outbound client intents.
//
// Wire contract, per frame: a 4-byte big-endian body length, then a
// MessagePack array of one of three shapes:
//
//	[0, id, method, params]  request
//	[1, id, error, result]   response (result nil on error)
//	[2, method, params]      notification
//
// One Dispatcher owns each connection. It is the only reader and the only
// writer of the stream: everything user code sends flows through the
// bounded outbound queue of a Sender handle, and frames hit the wire in
// the order the dispatcher handles them. Request ids are a per-connection
// counter starting at 1; responses correlate by id through the pending
// table, and every pending slot resolves with a termination error when
// the connection ends.
//
// The shutdown broadcast is the universal cancellation signal: firing it
// is idempotent, stops the dispatcher, fails the pending table and
// unblocks every awaiter.
package rpc
