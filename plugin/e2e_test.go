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

// e2e_test.go drives a plugin against a fake editor endpoint over a real
// unix socket: identification, bootstrap registrations, request and
// notification routing, error surfacing and shutdown.
package plugin_test

import (
	"context"
	"time"

	liberr "github.com/nabbar/golib/errors"
	libplg "github.com/nabbar/nvigo/plugin"
	librpc "github.com/nabbar/nvigo/rpc"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Plugin over a live connection", func() {
	var (
		ctx context.Context
		cnl context.CancelFunc
		plg *testPlugin
		edt *fakeEditor
		dne <-chan error
		cln func()
	)

	BeforeEach(func() {
		ctx, cnl = context.WithTimeout(globalCtx, 15*time.Second)
		plg = newTestPlugin()
		edt, dne, cln = serveEditor(ctx, plg)

		// The connected hook runs once identification and bootstrap are done.
		Eventually(plg.ready, 5*time.Second).Should(Receive())
	})

	AfterEach(func() {
		select {
		case <-plg.hold:
		default:
			close(plg.hold)
		}
		cln()
		cnl()
	})

	Context("identification and bootstrap", func() {
		It("should fetch the channel info of channel 0 first", func() {
			Expect(edt.countCalls("nvim_get_chan_info")).To(Equal(1))
			Expect(edt.recorded()[0]).To(Equal("nvim_get_chan_info"))
		})

		It("should register a lua stub per request and notify method", func() {
			// echo, add, boom, chan_id, on_write requests and the touch notify
			// each register exactly one stub.
			Expect(edt.countCalls("nvim_exec_lua")).To(Equal(6))
		})

		It("should install the declared autocommand", func() {
			Expect(edt.countCalls("nvim_create_autocmd")).To(Equal(1))
		})

		It("should expose the cached channel id to handlers", func() {
			rsp := edt.request("chan_id", []interface{}{})
			Expect(rsp).ToNot(BeNil())
			Expect(rsp.Error).To(BeNil())

			var id int64
			Expect(librpc.Remarshal(rsp.Result, &id)).To(Succeed())
			Expect(id).To(Equal(int64(42)))
		})
	})

	Context("requests", func() {
		It("should answer the built-in ping", func() {
			rsp := edt.request(libplg.PingMethod, []interface{}{})
			Expect(rsp).ToNot(BeNil())
			Expect(rsp.Error).To(BeNil())
			Expect(rsp.Result).To(Equal(true))
		})

		It("should echo through the declared handler", func() {
			rsp := edt.request("echo", []interface{}{"hi"})
			Expect(rsp).ToNot(BeNil())
			Expect(rsp.Error).To(BeNil())
			Expect(rsp.Result).To(Equal("hi"))
		})

		It("should decode and add typed arguments", func() {
			rsp := edt.request("add", []interface{}{int64(2), int64(40)})
			Expect(rsp).ToNot(BeNil())
			Expect(rsp.Error).To(BeNil())

			var sum int64
			Expect(librpc.Remarshal(rsp.Result, &sum)).To(Succeed())
			Expect(sum).To(Equal(int64(42)))
		})

		It("should reject a wrong argument count without invoking the handler", func() {
			rsp := edt.request("add", []interface{}{int64(1)})
			Expect(rsp).ToNot(BeNil())
			Expect(rsp.Result).To(BeNil())

			se, k := librpc.ServiceErrorFromValue(rsp.Error)
			Expect(k).To(BeTrue())
			Expect(se.Name).To(Equal("NviServiceError"))
			Expect(se.Value).To(ContainSubstring("invalid number of arguments"))
		})

		It("should reject an unknown method", func() {
			rsp := edt.request("no_such", []interface{}{})
			Expect(rsp).ToNot(BeNil())

			se, k := librpc.ServiceErrorFromValue(rsp.Error)
			Expect(k).To(BeTrue())
			Expect(se.Value).To(ContainSubstring("unknown method"))
		})

		It("should turn a handler error into a service error and warn the editor", func() {
			rsp := edt.request("boom", []interface{}{})
			Expect(rsp).ToNot(BeNil())

			se, k := librpc.ServiceErrorFromValue(rsp.Error)
			Expect(k).To(BeTrue())
			Expect(se.Name).To(Equal("NviServiceError"))
			Expect(se.Value).To(ContainSubstring("kaboom"))

			Eventually(func() int {
				return edt.countCalls("nvim_notify")
			}, 2*time.Second).Should(Equal(1))
		})

		It("should reject a type mismatch with the decode failure", func() {
			rsp := edt.request("add", []interface{}{"one", "two"})
			Expect(rsp).ToNot(BeNil())
			Expect(rsp.Result).To(BeNil())

			_, k := librpc.ServiceErrorFromValue(rsp.Error)
			Expect(k).To(BeTrue())
		})
	})

	Context("notifications", func() {
		It("should invoke the declared handler exactly once", func() {
			edt.notify("touch", []interface{}{})
			Eventually(plg.Touched, 2*time.Second).Should(Equal(1))
			Consistently(plg.Touched, 200*time.Millisecond).Should(Equal(1))
		})

		It("should drop an unknown notification silently", func() {
			edt.notify("nope", []interface{}{})

			// The connection keeps serving.
			rsp := edt.request("echo", []interface{}{"alive"})
			Expect(rsp).ToNot(BeNil())
			Expect(rsp.Result).To(Equal("alive"))
		})
	})

	Context("shutdown", func() {
		It("should come down cleanly when the connected hook returns", func() {
			close(plg.hold)

			var e error
			Eventually(dne, 5*time.Second).Should(Receive(&e))
			Expect(e).ToNot(HaveOccurred())
		})

		It("should come down cleanly when the editor goes away", func() {
			edt.close()

			var e error
			Eventually(dne, 5*time.Second).Should(Receive(&e))
			Expect(e).ToNot(HaveOccurred())
		})
	})
})

var _ = Describe("Bootstrap failure", func() {
	It("should terminate the connection and surface the failure", func() {
		ctx, cnl := context.WithTimeout(globalCtx, 15*time.Second)
		defer cnl()

		plg := newTestPlugin()
		_, dne, cln := serveEditor(ctx, plg, true)
		defer cln()

		var e error
		Eventually(dne, 5*time.Second).Should(Receive(&e))
		Expect(e).To(HaveOccurred())

		le, k := e.(liberr.Error)
		Expect(k).To(BeTrue())
		Expect(le.IsCode(libplg.ErrorBootstrap)).To(BeTrue())
	})
})
