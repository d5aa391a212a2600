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

// Code generated by nvigo-apigen from the editor API metadata; typed
// overrides live in opts.go. DO NOT EDIT.

package nvim

import (
	"context"

	"github.com/nabbar/nvigo/rpc"
)

// Callable is the request/notify surface the typed API is generated
// against. A connection's Sender satisfies it.
type Callable interface {
	Request(ctx context.Context, method string, params []interface{}) (interface{}, error)
	Notify(ctx context.Context, method string, params []interface{}) error
}

// Api exposes one function per editor method, serializing arguments and
// deserializing results through the underlying Callable.
type Api struct {
	c Callable
}

// NewApi wraps a Callable into the typed API surface.
func NewApi(c Callable) *Api {
	return &Api{c: c}
}

// Raw exposes the underlying Callable for methods outside the generated
// surface.
func (a *Api) Raw() Callable {
	return a.c
}

func (a *Api) call(ctx context.Context, method string, params []interface{}, out interface{}) error {
	v, err := a.c.Request(ctx, method, params)
	if err != nil {
		return err
	}

	if out == nil || v == nil {
		return nil
	}

	if e := rpc.Remarshal(v, out); e != nil {
		return ErrorDecodeResult.Error(e)
	}

	return nil
}

// GetChanInfo calls nvim_get_chan_info.
func (a *Api) GetChanInfo(ctx context.Context, channel int64) (*ChanInfo, error) {
	v, err := a.c.Request(ctx, "nvim_get_chan_info", []interface{}{channel})
	if err != nil {
		return nil, err
	}

	c, e := DecodeChanInfo(v)
	if e != nil {
		return nil, e
	}

	return c, nil
}

// ListChans calls nvim_list_chans.
func (a *Api) ListChans(ctx context.Context) ([]interface{}, error) {
	var ret []interface{}
	return ret, a.call(ctx, "nvim_list_chans", []interface{}{}, &ret)
}

// GetApiInfo calls nvim_get_api_info.
func (a *Api) GetApiInfo(ctx context.Context) ([]interface{}, error) {
	var ret []interface{}
	return ret, a.call(ctx, "nvim_get_api_info", []interface{}{}, &ret)
}

// Command calls nvim_command.
func (a *Api) Command(ctx context.Context, command string) error {
	return a.call(ctx, "nvim_command", []interface{}{command}, nil)
}

// Exec2 calls nvim_exec2.
func (a *Api) Exec2(ctx context.Context, src string, opts map[string]interface{}) (map[string]interface{}, error) {
	var ret map[string]interface{}
	return ret, a.call(ctx, "nvim_exec2", []interface{}{src, opts}, &ret)
}

// ExecLua calls nvim_exec_lua.
func (a *Api) ExecLua(ctx context.Context, code string, args []interface{}) (interface{}, error) {
	return a.c.Request(ctx, "nvim_exec_lua", []interface{}{code, paramsSlot(args)})
}

// Eval calls nvim_eval.
func (a *Api) Eval(ctx context.Context, expr string) (interface{}, error) {
	return a.c.Request(ctx, "nvim_eval", []interface{}{expr})
}

// CallFunction calls nvim_call_function.
func (a *Api) CallFunction(ctx context.Context, fn string, args []interface{}) (interface{}, error) {
	return a.c.Request(ctx, "nvim_call_function", []interface{}{fn, paramsSlot(args)})
}

// Notify calls nvim_notify.
func (a *Api) Notify(ctx context.Context, msg string, logLevel LogLevel, opts NotifyOpts) (interface{}, error) {
	if opts == nil {
		opts = NotifyOpts{}
	}
	return a.c.Request(ctx, "nvim_notify", []interface{}{msg, int64(logLevel), opts})
}

// OutWrite calls nvim_out_write.
func (a *Api) OutWrite(ctx context.Context, str string) error {
	return a.call(ctx, "nvim_out_write", []interface{}{str}, nil)
}

// ErrWrite calls nvim_err_write.
func (a *Api) ErrWrite(ctx context.Context, str string) error {
	return a.call(ctx, "nvim_err_write", []interface{}{str}, nil)
}

// ErrWriteln calls nvim_err_writeln.
func (a *Api) ErrWriteln(ctx context.Context, str string) error {
	return a.call(ctx, "nvim_err_writeln", []interface{}{str}, nil)
}

// Strwidth calls nvim_strwidth.
func (a *Api) Strwidth(ctx context.Context, text string) (int64, error) {
	var ret int64
	return ret, a.call(ctx, "nvim_strwidth", []interface{}{text}, &ret)
}

// ListRuntimePaths calls nvim_list_runtime_paths.
func (a *Api) ListRuntimePaths(ctx context.Context) ([]string, error) {
	var ret []string
	return ret, a.call(ctx, "nvim_list_runtime_paths", []interface{}{}, &ret)
}

// SetCurrentDir calls nvim_set_current_dir.
func (a *Api) SetCurrentDir(ctx context.Context, dir string) error {
	return a.call(ctx, "nvim_set_current_dir", []interface{}{dir}, nil)
}

// GetCurrentLine calls nvim_get_current_line.
func (a *Api) GetCurrentLine(ctx context.Context) (string, error) {
	var ret string
	return ret, a.call(ctx, "nvim_get_current_line", []interface{}{}, &ret)
}

// SetCurrentLine calls nvim_set_current_line.
func (a *Api) SetCurrentLine(ctx context.Context, line string) error {
	return a.call(ctx, "nvim_set_current_line", []interface{}{line}, nil)
}

// DelCurrentLine calls nvim_del_current_line.
func (a *Api) DelCurrentLine(ctx context.Context) error {
	return a.call(ctx, "nvim_del_current_line", []interface{}{}, nil)
}

// GetVar calls nvim_get_var.
func (a *Api) GetVar(ctx context.Context, name string) (interface{}, error) {
	return a.c.Request(ctx, "nvim_get_var", []interface{}{name})
}

// SetVar calls nvim_set_var.
func (a *Api) SetVar(ctx context.Context, name string, value interface{}) error {
	return a.call(ctx, "nvim_set_var", []interface{}{name, value}, nil)
}

// DelVar calls nvim_del_var.
func (a *Api) DelVar(ctx context.Context, name string) error {
	return a.call(ctx, "nvim_del_var", []interface{}{name}, nil)
}

// GetVvar calls nvim_get_vvar.
func (a *Api) GetVvar(ctx context.Context, name string) (interface{}, error) {
	return a.c.Request(ctx, "nvim_get_vvar", []interface{}{name})
}

// SetVvar calls nvim_set_vvar.
func (a *Api) SetVvar(ctx context.Context, name string, value interface{}) error {
	return a.call(ctx, "nvim_set_vvar", []interface{}{name, value}, nil)
}

// GetCurrentBuf calls nvim_get_current_buf.
func (a *Api) GetCurrentBuf(ctx context.Context) (Buffer, error) {
	var ret Buffer
	return ret, a.call(ctx, "nvim_get_current_buf", []interface{}{}, &ret)
}

// SetCurrentBuf calls nvim_set_current_buf.
func (a *Api) SetCurrentBuf(ctx context.Context, buffer Buffer) error {
	return a.call(ctx, "nvim_set_current_buf", []interface{}{buffer}, nil)
}

// ListBufs calls nvim_list_bufs.
func (a *Api) ListBufs(ctx context.Context) ([]Buffer, error) {
	var ret []Buffer
	return ret, a.call(ctx, "nvim_list_bufs", []interface{}{}, &ret)
}

// CreateBuf calls nvim_create_buf.
func (a *Api) CreateBuf(ctx context.Context, listed, scratch bool) (Buffer, error) {
	var ret Buffer
	return ret, a.call(ctx, "nvim_create_buf", []interface{}{listed, scratch}, &ret)
}

// BufLineCount calls nvim_buf_line_count.
func (a *Api) BufLineCount(ctx context.Context, buffer Buffer) (int64, error) {
	var ret int64
	return ret, a.call(ctx, "nvim_buf_line_count", []interface{}{buffer}, &ret)
}

// BufGetLines calls nvim_buf_get_lines.
func (a *Api) BufGetLines(ctx context.Context, buffer Buffer, start, end int64, strictIndexing bool) ([]string, error) {
	var ret []string
	return ret, a.call(ctx, "nvim_buf_get_lines", []interface{}{buffer, start, end, strictIndexing}, &ret)
}

// BufSetLines calls nvim_buf_set_lines.
func (a *Api) BufSetLines(ctx context.Context, buffer Buffer, start, end int64, strictIndexing bool, replacement []string) error {
	return a.call(ctx, "nvim_buf_set_lines", []interface{}{buffer, start, end, strictIndexing, replacement}, nil)
}

// BufGetName calls nvim_buf_get_name.
func (a *Api) BufGetName(ctx context.Context, buffer Buffer) (string, error) {
	var ret string
	return ret, a.call(ctx, "nvim_buf_get_name", []interface{}{buffer}, &ret)
}

// BufSetName calls nvim_buf_set_name.
func (a *Api) BufSetName(ctx context.Context, buffer Buffer, name string) error {
	return a.call(ctx, "nvim_buf_set_name", []interface{}{buffer, name}, nil)
}

// BufIsLoaded calls nvim_buf_is_loaded.
func (a *Api) BufIsLoaded(ctx context.Context, buffer Buffer) (bool, error) {
	var ret bool
	return ret, a.call(ctx, "nvim_buf_is_loaded", []interface{}{buffer}, &ret)
}

// BufIsValid calls nvim_buf_is_valid.
func (a *Api) BufIsValid(ctx context.Context, buffer Buffer) (bool, error) {
	var ret bool
	return ret, a.call(ctx, "nvim_buf_is_valid", []interface{}{buffer}, &ret)
}

// BufDelete calls nvim_buf_delete.
func (a *Api) BufDelete(ctx context.Context, buffer Buffer, opts map[string]interface{}) error {
	if opts == nil {
		opts = map[string]interface{}{}
	}
	return a.call(ctx, "nvim_buf_delete", []interface{}{buffer, opts}, nil)
}

// BufGetVar calls nvim_buf_get_var.
func (a *Api) BufGetVar(ctx context.Context, buffer Buffer, name string) (interface{}, error) {
	return a.c.Request(ctx, "nvim_buf_get_var", []interface{}{buffer, name})
}

// BufSetVar calls nvim_buf_set_var.
func (a *Api) BufSetVar(ctx context.Context, buffer Buffer, name string, value interface{}) error {
	return a.call(ctx, "nvim_buf_set_var", []interface{}{buffer, name, value}, nil)
}

// BufDelVar calls nvim_buf_del_var.
func (a *Api) BufDelVar(ctx context.Context, buffer Buffer, name string) error {
	return a.call(ctx, "nvim_buf_del_var", []interface{}{buffer, name}, nil)
}

// BufGetChangedtick calls nvim_buf_get_changedtick.
func (a *Api) BufGetChangedtick(ctx context.Context, buffer Buffer) (int64, error) {
	var ret int64
	return ret, a.call(ctx, "nvim_buf_get_changedtick", []interface{}{buffer}, &ret)
}

// BufGetNumber calls nvim_buf_get_number.
func (a *Api) BufGetNumber(ctx context.Context, buffer Buffer) (int64, error) {
	var ret int64
	return ret, a.call(ctx, "nvim_buf_get_number", []interface{}{buffer}, &ret)
}

// BufGetMark calls nvim_buf_get_mark.
func (a *Api) BufGetMark(ctx context.Context, buffer Buffer, name string) ([]int64, error) {
	var ret []int64
	return ret, a.call(ctx, "nvim_buf_get_mark", []interface{}{buffer, name}, &ret)
}

// BufDelMark calls nvim_buf_del_mark.
func (a *Api) BufDelMark(ctx context.Context, buffer Buffer, name string) (bool, error) {
	var ret bool
	return ret, a.call(ctx, "nvim_buf_del_mark", []interface{}{buffer, name}, &ret)
}

// BufAttach calls nvim_buf_attach.
func (a *Api) BufAttach(ctx context.Context, buffer Buffer, sendBuffer bool, opts map[string]interface{}) (bool, error) {
	if opts == nil {
		opts = map[string]interface{}{}
	}
	var ret bool
	return ret, a.call(ctx, "nvim_buf_attach", []interface{}{buffer, sendBuffer, opts}, &ret)
}

// BufDetach calls nvim_buf_detach.
func (a *Api) BufDetach(ctx context.Context, buffer Buffer) (bool, error) {
	var ret bool
	return ret, a.call(ctx, "nvim_buf_detach", []interface{}{buffer}, &ret)
}

// GetCurrentWin calls nvim_get_current_win.
func (a *Api) GetCurrentWin(ctx context.Context) (Window, error) {
	var ret Window
	return ret, a.call(ctx, "nvim_get_current_win", []interface{}{}, &ret)
}

// SetCurrentWin calls nvim_set_current_win.
func (a *Api) SetCurrentWin(ctx context.Context, window Window) error {
	return a.call(ctx, "nvim_set_current_win", []interface{}{window}, nil)
}

// ListWins calls nvim_list_wins.
func (a *Api) ListWins(ctx context.Context) ([]Window, error) {
	var ret []Window
	return ret, a.call(ctx, "nvim_list_wins", []interface{}{}, &ret)
}

// WinGetBuf calls nvim_win_get_buf.
func (a *Api) WinGetBuf(ctx context.Context, window Window) (Buffer, error) {
	var ret Buffer
	return ret, a.call(ctx, "nvim_win_get_buf", []interface{}{window}, &ret)
}

// WinSetBuf calls nvim_win_set_buf.
func (a *Api) WinSetBuf(ctx context.Context, window Window, buffer Buffer) error {
	return a.call(ctx, "nvim_win_set_buf", []interface{}{window, buffer}, nil)
}

// WinGetCursor calls nvim_win_get_cursor.
func (a *Api) WinGetCursor(ctx context.Context, window Window) ([]int64, error) {
	var ret []int64
	return ret, a.call(ctx, "nvim_win_get_cursor", []interface{}{window}, &ret)
}

// WinSetCursor calls nvim_win_set_cursor.
func (a *Api) WinSetCursor(ctx context.Context, window Window, pos []int64) error {
	return a.call(ctx, "nvim_win_set_cursor", []interface{}{window, pos}, nil)
}

// WinGetHeight calls nvim_win_get_height.
func (a *Api) WinGetHeight(ctx context.Context, window Window) (int64, error) {
	var ret int64
	return ret, a.call(ctx, "nvim_win_get_height", []interface{}{window}, &ret)
}

// WinSetHeight calls nvim_win_set_height.
func (a *Api) WinSetHeight(ctx context.Context, window Window, height int64) error {
	return a.call(ctx, "nvim_win_set_height", []interface{}{window, height}, nil)
}

// WinGetWidth calls nvim_win_get_width.
func (a *Api) WinGetWidth(ctx context.Context, window Window) (int64, error) {
	var ret int64
	return ret, a.call(ctx, "nvim_win_get_width", []interface{}{window}, &ret)
}

// WinSetWidth calls nvim_win_set_width.
func (a *Api) WinSetWidth(ctx context.Context, window Window, width int64) error {
	return a.call(ctx, "nvim_win_set_width", []interface{}{window, width}, nil)
}

// WinGetNumber calls nvim_win_get_number.
func (a *Api) WinGetNumber(ctx context.Context, window Window) (int64, error) {
	var ret int64
	return ret, a.call(ctx, "nvim_win_get_number", []interface{}{window}, &ret)
}

// WinIsValid calls nvim_win_is_valid.
func (a *Api) WinIsValid(ctx context.Context, window Window) (bool, error) {
	var ret bool
	return ret, a.call(ctx, "nvim_win_is_valid", []interface{}{window}, &ret)
}

// WinClose calls nvim_win_close.
func (a *Api) WinClose(ctx context.Context, window Window, force bool) error {
	return a.call(ctx, "nvim_win_close", []interface{}{window, force}, nil)
}

// WinGetTabpage calls nvim_win_get_tabpage.
func (a *Api) WinGetTabpage(ctx context.Context, window Window) (Tabpage, error) {
	var ret Tabpage
	return ret, a.call(ctx, "nvim_win_get_tabpage", []interface{}{window}, &ret)
}

// GetCurrentTabpage calls nvim_get_current_tabpage.
func (a *Api) GetCurrentTabpage(ctx context.Context) (Tabpage, error) {
	var ret Tabpage
	return ret, a.call(ctx, "nvim_get_current_tabpage", []interface{}{}, &ret)
}

// SetCurrentTabpage calls nvim_set_current_tabpage.
func (a *Api) SetCurrentTabpage(ctx context.Context, tabpage Tabpage) error {
	return a.call(ctx, "nvim_set_current_tabpage", []interface{}{tabpage}, nil)
}

// ListTabpages calls nvim_list_tabpages.
func (a *Api) ListTabpages(ctx context.Context) ([]Tabpage, error) {
	var ret []Tabpage
	return ret, a.call(ctx, "nvim_list_tabpages", []interface{}{}, &ret)
}

// TabpageGetWin calls nvim_tabpage_get_win.
func (a *Api) TabpageGetWin(ctx context.Context, tabpage Tabpage) (Window, error) {
	var ret Window
	return ret, a.call(ctx, "nvim_tabpage_get_win", []interface{}{tabpage}, &ret)
}

// TabpageListWins calls nvim_tabpage_list_wins.
func (a *Api) TabpageListWins(ctx context.Context, tabpage Tabpage) ([]Window, error) {
	var ret []Window
	return ret, a.call(ctx, "nvim_tabpage_list_wins", []interface{}{tabpage}, &ret)
}

// TabpageGetNumber calls nvim_tabpage_get_number.
func (a *Api) TabpageGetNumber(ctx context.Context, tabpage Tabpage) (int64, error) {
	var ret int64
	return ret, a.call(ctx, "nvim_tabpage_get_number", []interface{}{tabpage}, &ret)
}

// TabpageIsValid calls nvim_tabpage_is_valid.
func (a *Api) TabpageIsValid(ctx context.Context, tabpage Tabpage) (bool, error) {
	var ret bool
	return ret, a.call(ctx, "nvim_tabpage_is_valid", []interface{}{tabpage}, &ret)
}

// CreateAutocmd calls nvim_create_autocmd.
func (a *Api) CreateAutocmd(ctx context.Context, event []Event, opts CreateAutocmdOpts) (int64, error) {
	var ret int64
	return ret, a.call(ctx, "nvim_create_autocmd", []interface{}{event, opts}, &ret)
}

// DelAutocmd calls nvim_del_autocmd.
func (a *Api) DelAutocmd(ctx context.Context, id int64) error {
	return a.call(ctx, "nvim_del_autocmd", []interface{}{id}, nil)
}

// ClearAutocmds calls nvim_clear_autocmds.
func (a *Api) ClearAutocmds(ctx context.Context, opts ClearAutocmdsOpts) error {
	return a.call(ctx, "nvim_clear_autocmds", []interface{}{opts}, nil)
}

// GetAutocmds calls nvim_get_autocmds.
func (a *Api) GetAutocmds(ctx context.Context, opts GetAutocmdsOpts) ([]interface{}, error) {
	var ret []interface{}
	return ret, a.call(ctx, "nvim_get_autocmds", []interface{}{opts}, &ret)
}

// CreateAugroup calls nvim_create_augroup.
func (a *Api) CreateAugroup(ctx context.Context, name string, opts CreateAugroupOpts) (int64, error) {
	var ret int64
	return ret, a.call(ctx, "nvim_create_augroup", []interface{}{name, opts}, &ret)
}

// DelAugroupByID calls nvim_del_augroup_by_id.
func (a *Api) DelAugroupByID(ctx context.Context, id int64) error {
	return a.call(ctx, "nvim_del_augroup_by_id", []interface{}{id}, nil)
}

// DelAugroupByName calls nvim_del_augroup_by_name.
func (a *Api) DelAugroupByName(ctx context.Context, name string) error {
	return a.call(ctx, "nvim_del_augroup_by_name", []interface{}{name}, nil)
}

// ExecAutocmds calls nvim_exec_autocmds.
func (a *Api) ExecAutocmds(ctx context.Context, event []Event, opts ExecAutocmdsOpts) error {
	return a.call(ctx, "nvim_exec_autocmds", []interface{}{event, opts}, nil)
}

// SetKeymap calls nvim_set_keymap.
func (a *Api) SetKeymap(ctx context.Context, mode, lhs, rhs string, opts KeymapOpts) error {
	return a.call(ctx, "nvim_set_keymap", []interface{}{mode, lhs, rhs, opts}, nil)
}

// DelKeymap calls nvim_del_keymap.
func (a *Api) DelKeymap(ctx context.Context, mode, lhs string) error {
	return a.call(ctx, "nvim_del_keymap", []interface{}{mode, lhs}, nil)
}

// GetKeymap calls nvim_get_keymap.
func (a *Api) GetKeymap(ctx context.Context, mode string) ([]map[string]interface{}, error) {
	var ret []map[string]interface{}
	return ret, a.call(ctx, "nvim_get_keymap", []interface{}{mode}, &ret)
}

// GetMode calls nvim_get_mode.
func (a *Api) GetMode(ctx context.Context) (map[string]interface{}, error) {
	var ret map[string]interface{}
	return ret, a.call(ctx, "nvim_get_mode", []interface{}{}, &ret)
}

// Input calls nvim_input.
func (a *Api) Input(ctx context.Context, keys string) (int64, error) {
	var ret int64
	return ret, a.call(ctx, "nvim_input", []interface{}{keys}, &ret)
}

// FeedKeys calls nvim_feedkeys.
func (a *Api) FeedKeys(ctx context.Context, keys, mode string, escapeKs bool) error {
	return a.call(ctx, "nvim_feedkeys", []interface{}{keys, mode, escapeKs}, nil)
}

// CreateNamespace calls nvim_create_namespace.
func (a *Api) CreateNamespace(ctx context.Context, name string) (int64, error) {
	var ret int64
	return ret, a.call(ctx, "nvim_create_namespace", []interface{}{name}, &ret)
}

// GetNamespaces calls nvim_get_namespaces.
func (a *Api) GetNamespaces(ctx context.Context) (map[string]int64, error) {
	var ret map[string]int64
	return ret, a.call(ctx, "nvim_get_namespaces", []interface{}{}, &ret)
}

// GetColorByName calls nvim_get_color_by_name.
func (a *Api) GetColorByName(ctx context.Context, name string) (int64, error) {
	var ret int64
	return ret, a.call(ctx, "nvim_get_color_by_name", []interface{}{name}, &ret)
}

// GetColorMap calls nvim_get_color_map.
func (a *Api) GetColorMap(ctx context.Context) (map[string]int64, error) {
	var ret map[string]int64
	return ret, a.call(ctx, "nvim_get_color_map", []interface{}{}, &ret)
}

// GetOptionValue calls nvim_get_option_value.
func (a *Api) GetOptionValue(ctx context.Context, name string, opts map[string]interface{}) (interface{}, error) {
	if opts == nil {
		opts = map[string]interface{}{}
	}
	return a.c.Request(ctx, "nvim_get_option_value", []interface{}{name, opts})
}

// SetOptionValue calls nvim_set_option_value.
func (a *Api) SetOptionValue(ctx context.Context, name string, value interface{}, opts map[string]interface{}) error {
	if opts == nil {
		opts = map[string]interface{}{}
	}
	return a.call(ctx, "nvim_set_option_value", []interface{}{name, value, opts}, nil)
}

// ChanSend calls nvim_chan_send.
func (a *Api) ChanSend(ctx context.Context, channel int64, data string) error {
	return a.call(ctx, "nvim_chan_send", []interface{}{channel, data}, nil)
}

// Subscribe calls nvim_subscribe.
func (a *Api) Subscribe(ctx context.Context, event string) error {
	return a.call(ctx, "nvim_subscribe", []interface{}{event}, nil)
}

// Unsubscribe calls nvim_unsubscribe.
func (a *Api) Unsubscribe(ctx context.Context, event string) error {
	return a.call(ctx, "nvim_unsubscribe", []interface{}{event}, nil)
}

func paramsSlot(args []interface{}) []interface{} {
	if args == nil {
		return []interface{}{}
	}
	return args
}
