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

package rpc_test

import (
	"context"
	"net"
	"time"

	librpc "github.com/nabbar/nvigo/rpc"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Dispatcher", func() {
	var (
		ctx context.Context
		cnl context.CancelFunc
		svc *echoService
		per *rawPeer
		snd librpc.Sender
		shn *librpc.Shutdown
		dne <-chan error
	)

	BeforeEach(func() {
		ctx, cnl = context.WithTimeout(globalCtx, 10*time.Second)

		our, their := net.Pipe()
		per = newRawPeer(their)
		svc = &echoService{}
		snd, shn, dne = startDispatcher(ctx, our, svc)
	})

	AfterEach(func() {
		per.close()
		shn.Fire()
		cnl()
	})

	Context("inbound requests", func() {
		It("should answer an echo request with the same id", func() {
			Expect(per.write(&librpc.Request{ID: 7, Method: "echo", Params: []interface{}{"hi"}})).To(Succeed())

			m, err := per.read()
			Expect(err).ToNot(HaveOccurred())

			rsp, k := m.(*librpc.Response)
			Expect(k).To(BeTrue())
			Expect(rsp.ID).To(Equal(uint32(7)))
			Expect(rsp.Error).To(BeNil())
			Expect(rsp.Result).To(Equal("hi"))
		})

		It("should answer a failing handler with a service error and survive", func() {
			Expect(per.write(&librpc.Request{ID: 2, Method: "fail"})).To(Succeed())

			m, err := per.read()
			Expect(err).ToNot(HaveOccurred())

			rsp, k := m.(*librpc.Response)
			Expect(k).To(BeTrue())
			Expect(rsp.ID).To(Equal(uint32(2)))
			Expect(rsp.Result).To(BeNil())

			se, k := librpc.ServiceErrorFromValue(rsp.Error)
			Expect(k).To(BeTrue())
			Expect(se.Name).To(Equal("TestError"))

			// The connection survives a service error.
			Expect(per.write(&librpc.Request{ID: 3, Method: "echo", Params: []interface{}{"still here"}})).To(Succeed())
			m, err = per.read()
			Expect(err).ToNot(HaveOccurred())
			Expect(m.(*librpc.Response).Result).To(Equal("still here"))
		})

		It("should terminate the connection on a non service handler error", func() {
			Expect(per.write(&librpc.Request{ID: 4, Method: "fatal"})).To(Succeed())

			var e error
			Eventually(dne, 2*time.Second).Should(Receive(&e))
			Expect(e).To(HaveOccurred())
		})

		It("should serve a handler that calls back into the peer", func() {
			Expect(per.write(&librpc.Request{ID: 9, Method: "callback"})).To(Succeed())

			// The handler's own request must reach us before its response.
			m, err := per.read()
			Expect(err).ToNot(HaveOccurred())

			rq, k := m.(*librpc.Request)
			Expect(k).To(BeTrue())
			Expect(rq.Method).To(Equal("pong"))
			Expect(rq.ID).To(Equal(uint32(1)))

			Expect(per.write(&librpc.Response{ID: rq.ID, Result: true})).To(Succeed())

			m, err = per.read()
			Expect(err).ToNot(HaveOccurred())

			rsp, k := m.(*librpc.Response)
			Expect(k).To(BeTrue())
			Expect(rsp.ID).To(Equal(uint32(9)))
			Expect(rsp.Result).To(Equal(true))
		})
	})

	Context("inbound notifications", func() {
		It("should invoke the handler exactly once and write nothing back", func() {
			Expect(per.write(&librpc.Notification{Method: "touch"})).To(Succeed())

			Eventually(svc.notified, 2*time.Second).Should(Equal([]string{"touch"}))

			// Prove nothing was written back: the next frame we read answers
			// the probe request, not the notification.
			Expect(per.write(&librpc.Request{ID: 5, Method: "echo", Params: []interface{}{"probe"}})).To(Succeed())
			m, err := per.read()
			Expect(err).ToNot(HaveOccurred())
			Expect(m.(*librpc.Response).ID).To(Equal(uint32(5)))
		})
	})

	Context("outbound requests", func() {
		It("should allocate ids from 1 and correlate the response", func() {
			type result struct {
				val interface{}
				err error
			}
			res := make(chan result, 1)

			go func() {
				v, e := snd.Request(ctx, "hello", []interface{}{"x"})
				res <- result{v, e}
			}()

			m, err := per.read()
			Expect(err).ToNot(HaveOccurred())

			rq, k := m.(*librpc.Request)
			Expect(k).To(BeTrue())
			Expect(rq.ID).To(Equal(uint32(1)))
			Expect(rq.Method).To(Equal("hello"))

			Expect(per.write(&librpc.Response{ID: rq.ID, Result: "world"})).To(Succeed())

			var r result
			Eventually(res, 2*time.Second).Should(Receive(&r))
			Expect(r.err).ToNot(HaveOccurred())
			Expect(r.val).To(Equal("world"))
		})

		It("should pass a remote error payload through verbatim", func() {
			res := make(chan error, 1)

			go func() {
				_, e := snd.Request(ctx, "nope", nil)
				res <- e
			}()

			m, err := per.read()
			Expect(err).ToNot(HaveOccurred())

			rq := m.(*librpc.Request)
			Expect(per.write(&librpc.Response{ID: rq.ID, Error: "no such method"})).To(Succeed())

			var e error
			Eventually(res, 2*time.Second).Should(Receive(&e))

			re, k := e.(*librpc.RemoteError)
			Expect(k).To(BeTrue())
			Expect(re.Value).To(Equal("no such method"))
		})

		It("should drop a response with an unknown id and keep serving", func() {
			Expect(per.write(&librpc.Response{ID: 4242, Result: true})).To(Succeed())

			Expect(per.write(&librpc.Request{ID: 6, Method: "echo", Params: []interface{}{"ok"}})).To(Succeed())
			m, err := per.read()
			Expect(err).ToNot(HaveOccurred())
			Expect(m.(*librpc.Response).Result).To(Equal("ok"))
		})

		It("should send a notification and acknowledge the write", func() {
			res := make(chan error, 1)

			go func() {
				res <- snd.Notify(ctx, "signal", []interface{}{int64(1)})
			}()

			m, err := per.read()
			Expect(err).ToNot(HaveOccurred())

			nt, k := m.(*librpc.Notification)
			Expect(k).To(BeTrue())
			Expect(nt.Method).To(Equal("signal"))

			var e error
			Eventually(res, 2*time.Second).Should(Receive(&e))
			Expect(e).ToNot(HaveOccurred())
		})
	})

	Context("termination", func() {
		It("should resolve pending requests when the peer goes away", func() {
			res := make(chan error, 1)

			go func() {
				_, e := snd.Request(ctx, "never", nil)
				res <- e
			}()

			// Consume the request so it is actually pending, then vanish.
			m, err := per.read()
			Expect(err).ToNot(HaveOccurred())
			Expect(m.(*librpc.Request).Method).To(Equal("never"))

			per.close()

			var e error
			Eventually(res, 2*time.Second).Should(Receive(&e))
			Expect(e).To(HaveOccurred())
			Eventually(dne, 2*time.Second).Should(Receive(BeNil()))
		})

		It("should treat shutdown as idempotent", func() {
			snd.Shutdown()
			snd.Shutdown()
			snd.Shutdown()

			Eventually(dne, 2*time.Second).Should(Receive(BeNil()))
			Eventually(snd.Done()).Should(BeClosed())
		})

		It("should fail new requests after shutdown", func() {
			snd.Shutdown()
			Eventually(dne, 2*time.Second).Should(Receive())

			_, e := snd.Request(ctx, "late", nil)
			Expect(e).To(HaveOccurred())
		})
	})
})
