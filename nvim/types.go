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

// Package nvim provides the typed surface of the editor API: the three
// opaque handle types carried as MessagePack extensions, the autocommand
// event vocabulary, option records for the richer API calls, and the
// generated method wrappers over a connection's request/notify surface.
//
// The framework never interprets handle payloads; they are opaque bytes
// minted by the editor and handed back to it.
package nvim

import (
	"github.com/mitchellh/mapstructure"

	liberr "github.com/nabbar/golib/errors"
)

// MessagePack extension tags of the editor handle types.
const (
	ExtTypeBuffer  uint64 = 0
	ExtTypeWindow  uint64 = 1
	ExtTypeTabpage uint64 = 2
)

// currentHandle is the payload the editor resolves as "the current one".
func currentHandle() []byte {
	return []byte{0, 0, 0, 0}
}

// Buffer is an opaque editor buffer handle (extension type 0).
type Buffer struct {
	Data []byte
}

// CurrentBuffer returns the handle the editor resolves as the current buffer.
func CurrentBuffer() Buffer {
	return Buffer{Data: currentHandle()}
}

// Window is an opaque editor window handle (extension type 1).
type Window struct {
	Data []byte
}

// CurrentWindow returns the handle the editor resolves as the current window.
func CurrentWindow() Window {
	return Window{Data: currentHandle()}
}

// Tabpage is an opaque editor tabpage handle (extension type 2).
type Tabpage struct {
	Data []byte
}

// CurrentTabpage returns the handle the editor resolves as the current tabpage.
func CurrentTabpage() Tabpage {
	return Tabpage{Data: currentHandle()}
}

// LogLevel mirrors the editor's vim.log.levels values, used by nvim_notify.
type LogLevel int64

const (
	LogTrace LogLevel = iota
	LogDebug
	LogInfo
	LogWarn
	LogError
)

func (l LogLevel) String() string {
	switch l {
	case LogTrace:
		return "trace"
	case LogDebug:
		return "debug"
	case LogInfo:
		return "info"
	case LogWarn:
		return "warn"
	case LogError:
		return "error"
	}
	return "unknown"
}

// ChanInfo describes one RPC channel of the editor, as returned by
// nvim_get_chan_info.
type ChanInfo struct {
	ID     int64                  `mapstructure:"id"`
	Argv   []string               `mapstructure:"argv"`
	Stream string                 `mapstructure:"stream"`
	Mode   string                 `mapstructure:"mode"`
	Pty    string                 `mapstructure:"pty"`
	Client map[string]interface{} `mapstructure:"client"`
}

// DecodeChanInfo converts the wire map of nvim_get_chan_info into a typed
// record.
func DecodeChanInfo(v interface{}) (*ChanInfo, liberr.Error) {
	if v == nil {
		return nil, ErrorParamEmpty.Error(nil)
	}

	var c ChanInfo

	d, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &c,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, ErrorDecodeResult.Error(err)
	}

	if err = d.Decode(v); err != nil {
		return nil, ErrorDecodeResult.Error(err)
	}

	return &c, nil
}

// AutocmdEvent is the argument record an autocommand callback receives.
type AutocmdEvent struct {
	ID      int64       `mapstructure:"id"`
	Event   string      `mapstructure:"event"`
	Group   int64       `mapstructure:"group"`
	Matches []string    `mapstructure:"matches"`
	Buf     int64       `mapstructure:"buf"`
	File    string      `mapstructure:"file"`
	Data    interface{} `mapstructure:"data"`
}

// DecodeAutocmdEvent converts the wire map fired by an autocommand into a
// typed record.
func DecodeAutocmdEvent(v interface{}) (*AutocmdEvent, liberr.Error) {
	if v == nil {
		return nil, ErrorParamEmpty.Error(nil)
	}

	var a AutocmdEvent

	d, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &a,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, ErrorDecodeResult.Error(err)
	}

	if err = d.Decode(v); err != nil {
		return nil, ErrorDecodeResult.Error(err)
	}

	return &a, nil
}
