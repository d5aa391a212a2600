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

package nvim_test

import (
	libnvm "github.com/nabbar/nvigo/nvim"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Autocommand events", func() {
	It("should parse known event names", func() {
		e, err := libnvm.ParseEvent("BufEnter")
		Expect(err).ToNot(HaveOccurred())
		Expect(e).To(Equal(libnvm.EventBufEnter))
		Expect(e.String()).To(Equal("BufEnter"))
	})

	It("should reject unknown event names", func() {
		_, err := libnvm.ParseEvent("NotAnEvent")
		Expect(err).To(HaveOccurred())
		Expect(err.IsCode(libnvm.ErrorEventUnknown)).To(BeTrue())
	})

	It("should be case sensitive like the editor registry", func() {
		_, err := libnvm.ParseEvent("bufenter")
		Expect(err).To(HaveOccurred())
	})

	It("should list every known event exactly once", func() {
		all := libnvm.Events()
		Expect(len(all)).To(BeNumerically(">", 100))

		seen := map[libnvm.Event]int{}
		for _, e := range all {
			seen[e]++
			Expect(e.IsValid()).To(BeTrue())
		}
		for _, n := range seen {
			Expect(n).To(Equal(1))
		}
	})
})

var _ = Describe("Lua escaping", func() {
	It("should escape special characters", func() {
		cases := [][2]string{
			{"hello", "hello"},
			{"hello\nworld", "hello\\nworld"},
			{"hello\rworld", "hello\\rworld"},
			{"hello\tworld", "hello\\tworld"},
			{"hello\\world", "hello\\\\world"},
			{"hello'world", "hello\\'world"},
			{"hello\"world", "hello\\\"world"},
			{"hello\x00world", "hello\\0world"},
			{"hello\x01world", "hello\\1world"},
		}

		for _, c := range cases {
			Expect(libnvm.EscapeLua(c[0])).To(Equal(c[1]))
		}
	})
})
