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

import "sync"

// Shutdown is the broadcast signal shared by every task tied to one
// connection. Firing it is idempotent; Done never unblocks twice.
type Shutdown struct {
	o sync.Once
	c chan struct{}
}

// NewShutdown returns an unfired broadcast.
func NewShutdown() *Shutdown {
	return &Shutdown{
		c: make(chan struct{}),
	}
}

// Fire flips the broadcast. Safe to call any number of times from any
// goroutine.
func (s *Shutdown) Fire() {
	s.o.Do(func() {
		close(s.c)
	})
}

// Done returns the channel closed when the broadcast fires.
func (s *Shutdown) Done() <-chan struct{} {
	return s.c
}

// IsFired reports whether the broadcast already fired.
func (s *Shutdown) IsFired() bool {
	select {
	case <-s.c:
		return true
	default:
		return false
	}
}
