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

package nvim

// Option records of the richer API calls. They serialize as MessagePack
// maps; zero fields are omitted so the editor applies its defaults.

// CreateAutocmdOpts parameterizes nvim_create_autocmd. Group may be a group
// name (string) or id (int64). Command is the Ex command the autocommand
// runs; the framework always fills it. The record has no Lua callback field.
type CreateAutocmdOpts struct {
	Group   interface{} `codec:"group,omitempty"`
	Pattern []string    `codec:"pattern,omitempty"`
	Buffer  *Buffer     `codec:"buffer,omitempty"`
	Desc    string      `codec:"desc,omitempty"`
	Command string      `codec:"command,omitempty"`
	Once    bool        `codec:"once,omitempty"`
	Nested  bool        `codec:"nested,omitempty"`
}

// ClearAutocmdsOpts parameterizes nvim_clear_autocmds.
type ClearAutocmdsOpts struct {
	Event   []Event     `codec:"event,omitempty"`
	Pattern []string    `codec:"pattern,omitempty"`
	Buffer  *Buffer     `codec:"buffer,omitempty"`
	Group   interface{} `codec:"group,omitempty"`
}

// CreateAugroupOpts parameterizes nvim_create_augroup. Clear is always
// sent, so its zero value asks the editor to keep an existing group.
type CreateAugroupOpts struct {
	Clear bool `codec:"clear"`
}

// ExecAutocmdsOpts parameterizes nvim_exec_autocmds.
type ExecAutocmdsOpts struct {
	Group     interface{} `codec:"group,omitempty"`
	Pattern   []string    `codec:"pattern,omitempty"`
	Buffer    *Buffer     `codec:"buffer,omitempty"`
	Modeline  bool        `codec:"modeline,omitempty"`
	Data      interface{} `codec:"data,omitempty"`
}

// KeymapOpts parameterizes nvim_set_keymap.
type KeymapOpts struct {
	Nowait  bool   `codec:"nowait,omitempty"`
	Silent  bool   `codec:"silent,omitempty"`
	Script  bool   `codec:"script,omitempty"`
	Expr    bool   `codec:"expr,omitempty"`
	Unique  bool   `codec:"unique,omitempty"`
	Noremap bool   `codec:"noremap,omitempty"`
	Desc    string `codec:"desc,omitempty"`
}

// NotifyOpts parameterizes nvim_notify; the editor currently defines no
// keys but the slot is part of the signature.
type NotifyOpts map[string]interface{}

// GetAutocmdsOpts parameterizes nvim_get_autocmds.
type GetAutocmdsOpts struct {
	Group   interface{} `codec:"group,omitempty"`
	Event   []Event     `codec:"event,omitempty"`
	Pattern []string    `codec:"pattern,omitempty"`
}
