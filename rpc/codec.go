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
	"bufio"
	"encoding/binary"
	"errors"
	"io"

	liberr "github.com/nabbar/golib/errors"
	"github.com/ugorji/go/codec"
)

// Codec reads and writes framed MessagePack-RPC messages over one byte
// stream: a 4-byte big-endian body length, then the MessagePack body.
type Codec interface {
	// ReadMessage blocks until the next complete frame is available and
	// returns it as one of the three message kinds. EOF at a frame boundary
	// is ErrorStreamClosed; EOF inside a frame is ErrorFrameTruncated.
	ReadMessage() (Message, liberr.Error)

	// WriteMessage writes one framed message and flushes it.
	WriteMessage(m Message) liberr.Error
}

// NewCodec wraps the given stream into a Codec. The stream must not be used
// by anything else afterwards.
func NewCodec(rw io.ReadWriter) Codec {
	return &frameCodec{
		rdr: bufio.NewReader(rw),
		wrt: bufio.NewWriter(rw),
	}
}

type frameCodec struct {
	rdr *bufio.Reader
	wrt *bufio.Writer
}

func (o *frameCodec) ReadMessage() (Message, liberr.Error) {
	var hdr [4]byte

	if _, err := io.ReadFull(o.rdr, hdr[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrorStreamClosed.Error(err)
		} else if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrorFrameTruncated.Error(err)
		}
		return nil, ErrorStreamRead.Error(err)
	}

	body := make([]byte, binary.BigEndian.Uint32(hdr[:]))

	if _, err := io.ReadFull(o.rdr, body); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrorFrameTruncated.Error(err)
		}
		return nil, ErrorStreamRead.Error(err)
	}

	return decodeBody(body)
}

func decodeBody(body []byte) (Message, liberr.Error) {
	var raw []interface{}

	if err := codec.NewDecoderBytes(body, hnd).Decode(&raw); err != nil {
		return nil, decodeErrorCode(err).Error(err)
	}

	if len(raw) < 3 {
		return nil, ErrorMessageInvalid.Error(nil)
	}

	tag, k := asUint32(raw[0])
	if !k {
		return nil, ErrorMessageInvalid.Error(nil)
	}

	switch uint64(tag) {
	case tagRequest:
		return decodeRequest(raw)
	case tagResponse:
		return decodeResponse(raw)
	case tagNotification:
		return decodeNotification(raw)
	}

	return nil, ErrorMessageInvalid.Error(nil)
}

func decodeRequest(raw []interface{}) (Message, liberr.Error) {
	if len(raw) != 4 {
		return nil, ErrorMessageInvalid.Error(nil)
	}

	id, k := asUint32(raw[1])
	if !k {
		return nil, ErrorMessageInvalid.Error(nil)
	}

	mth, k := asString(raw[2])
	if !k {
		return nil, ErrorMessageInvalid.Error(nil)
	}

	prm, k := asParams(raw[3])
	if !k && raw[3] != nil {
		return nil, ErrorMessageInvalid.Error(nil)
	}

	return &Request{
		ID:     id,
		Method: mth,
		Params: prm,
	}, nil
}

func decodeResponse(raw []interface{}) (Message, liberr.Error) {
	if len(raw) != 4 {
		return nil, ErrorMessageInvalid.Error(nil)
	}

	id, k := asUint32(raw[1])
	if !k {
		return nil, ErrorMessageInvalid.Error(nil)
	}

	return &Response{
		ID:     id,
		Error:  raw[2],
		Result: raw[3],
	}, nil
}

func decodeNotification(raw []interface{}) (Message, liberr.Error) {
	if len(raw) != 3 {
		return nil, ErrorMessageInvalid.Error(nil)
	}

	mth, k := asString(raw[1])
	if !k {
		return nil, ErrorMessageInvalid.Error(nil)
	}

	prm, k := asParams(raw[2])
	if !k && raw[2] != nil {
		return nil, ErrorMessageInvalid.Error(nil)
	}

	return &Notification{
		Method: mth,
		Params: prm,
	}, nil
}

func (o *frameCodec) WriteMessage(m Message) liberr.Error {
	if m == nil {
		return ErrorParamEmpty.Error(nil)
	}

	body, err := encodeBody(m)
	if err != nil {
		return err
	}

	var hdr [4]byte
	binary.BigEndian.PutUint32(hdr[:], uint32(len(body)))

	if _, e := o.wrt.Write(hdr[:]); e != nil {
		return ErrorStreamWrite.Error(e)
	}

	if _, e := o.wrt.Write(body); e != nil {
		return ErrorStreamWrite.Error(e)
	}

	if e := o.wrt.Flush(); e != nil {
		return ErrorStreamWrite.Error(e)
	}

	return nil
}

func encodeBody(m Message) ([]byte, liberr.Error) {
	var (
		arr []interface{}
		buf []byte
	)

	switch v := m.(type) {
	case *Request:
		arr = []interface{}{tagRequest, v.ID, v.Method, paramsOrEmpty(v.Params)}
	case *Response:
		arr = []interface{}{tagResponse, v.ID, v.Error, v.Result}
	case *Notification:
		arr = []interface{}{tagNotification, v.Method, paramsOrEmpty(v.Params)}
	default:
		return nil, ErrorMessageEncode.Error(nil)
	}

	if err := codec.NewEncoderBytes(&buf, hnd).Encode(arr); err != nil {
		return nil, ErrorMessageEncode.Error(err)
	}

	return buf, nil
}

func paramsOrEmpty(p []interface{}) []interface{} {
	if p == nil {
		return []interface{}{}
	}
	return p
}
