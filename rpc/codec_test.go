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
	"bytes"
	"encoding/binary"

	liberr "github.com/nabbar/golib/errors"
	librpc "github.com/nabbar/nvigo/rpc"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// buffer is an in-memory read/write stream for codec round trips.
type buffer struct {
	bytes.Buffer
}

func expectCode(err liberr.Error, code liberr.CodeError) {
	ExpectWithOffset(1, err).To(HaveOccurred())
	ExpectWithOffset(1, err.IsCode(code)).To(BeTrue(), "unexpected error: %v", err)
}

var _ = Describe("Codec", func() {
	Context("round trips", func() {
		It("should round trip a request", func() {
			var b buffer
			c := librpc.NewCodec(&b)

			in := &librpc.Request{ID: 7, Method: "echo", Params: []interface{}{"hi"}}
			Expect(c.WriteMessage(in)).To(Succeed())

			m, err := c.ReadMessage()
			Expect(err).ToNot(HaveOccurred())

			out, k := m.(*librpc.Request)
			Expect(k).To(BeTrue())
			Expect(out.ID).To(Equal(uint32(7)))
			Expect(out.Method).To(Equal("echo"))
			Expect(out.Params).To(HaveLen(1))
			Expect(out.Params[0]).To(Equal("hi"))
		})

		It("should round trip a response carrying a result", func() {
			var b buffer
			c := librpc.NewCodec(&b)

			Expect(c.WriteMessage(&librpc.Response{ID: 1, Result: true})).To(Succeed())

			m, err := c.ReadMessage()
			Expect(err).ToNot(HaveOccurred())

			out, k := m.(*librpc.Response)
			Expect(k).To(BeTrue())
			Expect(out.ID).To(Equal(uint32(1)))
			Expect(out.Error).To(BeNil())
			Expect(out.Result).To(Equal(true))
		})

		It("should round trip a response carrying an error", func() {
			var b buffer
			c := librpc.NewCodec(&b)

			se := &librpc.ServiceError{Name: "NviServiceError", Value: "invalid number of arguments"}
			Expect(c.WriteMessage(&librpc.Response{ID: 3, Error: se.ToValue()})).To(Succeed())

			m, err := c.ReadMessage()
			Expect(err).ToNot(HaveOccurred())

			out, k := m.(*librpc.Response)
			Expect(k).To(BeTrue())
			Expect(out.Result).To(BeNil())

			ps, k := librpc.ServiceErrorFromValue(out.Error)
			Expect(k).To(BeTrue())
			Expect(ps.Name).To(Equal("NviServiceError"))
			Expect(ps.Value).To(ContainSubstring("invalid number of arguments"))
		})

		It("should round trip a notification", func() {
			var b buffer
			c := librpc.NewCodec(&b)

			Expect(c.WriteMessage(&librpc.Notification{Method: "touch"})).To(Succeed())

			m, err := c.ReadMessage()
			Expect(err).ToNot(HaveOccurred())

			out, k := m.(*librpc.Notification)
			Expect(k).To(BeTrue())
			Expect(out.Method).To(Equal("touch"))
			Expect(out.Params).To(BeEmpty())
		})

		It("should encode zero parameters as an empty array", func() {
			var b buffer
			c := librpc.NewCodec(&b)

			Expect(c.WriteMessage(&librpc.Request{ID: 1, Method: "m"})).To(Succeed())

			m, err := c.ReadMessage()
			Expect(err).ToNot(HaveOccurred())

			out, k := m.(*librpc.Request)
			Expect(k).To(BeTrue())
			Expect(out.Params).ToNot(BeNil())
			Expect(out.Params).To(BeEmpty())
		})
	})

	Context("framing failures", func() {
		It("should report EOF at a frame boundary as a closed stream", func() {
			var b buffer
			_, err := librpc.NewCodec(&b).ReadMessage()
			expectCode(err, librpc.ErrorStreamClosed)
		})

		It("should report truncation inside the length prefix", func() {
			var b buffer
			b.Write([]byte{0x00, 0x00})

			_, err := librpc.NewCodec(&b).ReadMessage()
			expectCode(err, librpc.ErrorFrameTruncated)
		})

		It("should report truncation inside the body", func() {
			var b buffer
			var hdr [4]byte
			binary.BigEndian.PutUint32(hdr[:], 16)
			b.Write(hdr[:])
			b.Write([]byte{0x93, 0x02})

			_, err := librpc.NewCodec(&b).ReadMessage()
			expectCode(err, librpc.ErrorFrameTruncated)
		})

		It("should reject an unknown message tag", func() {
			var b buffer
			writeRawFrame(&b, []byte{0x93, 0x07, 0xa1, 0x6d, 0x90})

			_, err := librpc.NewCodec(&b).ReadMessage()
			expectCode(err, librpc.ErrorMessageInvalid)
		})

		It("should reject a body that is not an array of the right shape", func() {
			var b buffer
			// [0, 1] — request tag with a 2 element array
			writeRawFrame(&b, []byte{0x92, 0x00, 0x01})

			_, err := librpc.NewCodec(&b).ReadMessage()
			expectCode(err, librpc.ErrorMessageInvalid)
		})

		It("should enforce the nesting depth limit", func() {
			var b buffer

			// 2000 nested single-element arrays around a nil.
			body := bytes.Repeat([]byte{0x91}, 2000)
			body = append(body, 0xc0)
			writeRawFrame(&b, body)

			_, err := librpc.NewCodec(&b).ReadMessage()
			expectCode(err, librpc.ErrorMessageDepth)
		})
	})
})

func writeRawFrame(b *buffer, body []byte) {
	var hdr [4]byte
	binary.BigEndian.PutUint32(hdr[:], uint32(len(body)))
	b.Write(hdr[:])
	b.Write(body)
}
