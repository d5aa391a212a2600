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

import liberr "github.com/nabbar/golib/errors"

// Event names an autocommand event of the editor.
// See the editor documentation for the semantics of each event.
type Event string

const (
	EventBufAdd               Event = "BufAdd"
	EventBufDelete            Event = "BufDelete"
	EventBufEnter             Event = "BufEnter"
	EventBufFilePost          Event = "BufFilePost"
	EventBufFilePre           Event = "BufFilePre"
	EventBufHidden            Event = "BufHidden"
	EventBufLeave             Event = "BufLeave"
	EventBufModifiedSet       Event = "BufModifiedSet"
	EventBufNew               Event = "BufNew"
	EventBufNewFile           Event = "BufNewFile"
	EventBufRead              Event = "BufRead"
	EventBufReadPost          Event = "BufReadPost"
	EventBufReadPre           Event = "BufReadPre"
	EventBufUnload            Event = "BufUnload"
	EventBufWinEnter          Event = "BufWinEnter"
	EventBufWinLeave          Event = "BufWinLeave"
	EventBufWipeout           Event = "BufWipeout"
	EventBufWrite             Event = "BufWrite"
	EventBufWriteCmd          Event = "BufWriteCmd"
	EventBufWritePost         Event = "BufWritePost"
	EventBufWritePre          Event = "BufWritePre"
	EventChanInfo             Event = "ChanInfo"
	EventChanOpen             Event = "ChanOpen"
	EventCmdUndefined         Event = "CmdUndefined"
	EventCmdlineChanged       Event = "CmdlineChanged"
	EventCmdlineEnter         Event = "CmdlineEnter"
	EventCmdlineLeave         Event = "CmdlineLeave"
	EventCmdwinEnter          Event = "CmdwinEnter"
	EventCmdwinLeave          Event = "CmdwinLeave"
	EventColorScheme          Event = "ColorScheme"
	EventColorSchemePre       Event = "ColorSchemePre"
	EventCompleteChanged      Event = "CompleteChanged"
	EventCompleteDone         Event = "CompleteDone"
	EventCompleteDonePre      Event = "CompleteDonePre"
	EventCursorHold           Event = "CursorHold"
	EventCursorHoldI          Event = "CursorHoldI"
	EventCursorMoved          Event = "CursorMoved"
	EventCursorMovedI         Event = "CursorMovedI"
	EventDiffUpdated          Event = "DiffUpdated"
	EventDirChanged           Event = "DirChanged"
	EventDirChangedPre        Event = "DirChangedPre"
	EventExitPre              Event = "ExitPre"
	EventFileAppendCmd        Event = "FileAppendCmd"
	EventFileAppendPost       Event = "FileAppendPost"
	EventFileAppendPre        Event = "FileAppendPre"
	EventFileChangedRO        Event = "FileChangedRO"
	EventFileChangedShell     Event = "FileChangedShell"
	EventFileChangedShellPost Event = "FileChangedShellPost"
	EventFileReadCmd          Event = "FileReadCmd"
	EventFileReadPost         Event = "FileReadPost"
	EventFileReadPre          Event = "FileReadPre"
	EventFileType             Event = "FileType"
	EventFileWriteCmd         Event = "FileWriteCmd"
	EventFileWritePost        Event = "FileWritePost"
	EventFileWritePre         Event = "FileWritePre"
	EventFilterReadPost       Event = "FilterReadPost"
	EventFilterReadPre        Event = "FilterReadPre"
	EventFilterWritePost      Event = "FilterWritePost"
	EventFilterWritePre       Event = "FilterWritePre"
	EventFocusGained          Event = "FocusGained"
	EventFocusLost            Event = "FocusLost"
	EventFuncUndefined        Event = "FuncUndefined"
	EventInsertChange         Event = "InsertChange"
	EventInsertCharPre        Event = "InsertCharPre"
	EventInsertEnter          Event = "InsertEnter"
	EventInsertLeave          Event = "InsertLeave"
	EventInsertLeavePre       Event = "InsertLeavePre"
	EventMenuPopup            Event = "MenuPopup"
	EventModeChanged          Event = "ModeChanged"
	EventOptionSet            Event = "OptionSet"
	EventQuickFixCmdPost      Event = "QuickFixCmdPost"
	EventQuickFixCmdPre       Event = "QuickFixCmdPre"
	EventQuitPre              Event = "QuitPre"
	EventRecordingEnter       Event = "RecordingEnter"
	EventRecordingLeave       Event = "RecordingLeave"
	EventRemoteReply          Event = "RemoteReply"
	EventSafeState            Event = "SafeState"
	EventSearchWrapped        Event = "SearchWrapped"
	EventSessionLoadPost      Event = "SessionLoadPost"
	EventSessionWritePost     Event = "SessionWritePost"
	EventShellCmdPost         Event = "ShellCmdPost"
	EventShellFilterPost      Event = "ShellFilterPost"
	EventSignal               Event = "Signal"
	EventSourceCmd            Event = "SourceCmd"
	EventSourcePost           Event = "SourcePost"
	EventSourcePre            Event = "SourcePre"
	EventSpellFileMissing     Event = "SpellFileMissing"
	EventStdinReadPost        Event = "StdinReadPost"
	EventStdinReadPre         Event = "StdinReadPre"
	EventSwapExists           Event = "SwapExists"
	EventSyntax               Event = "Syntax"
	EventTabClosed            Event = "TabClosed"
	EventTabEnter             Event = "TabEnter"
	EventTabLeave             Event = "TabLeave"
	EventTabNew               Event = "TabNew"
	EventTabNewEntered        Event = "TabNewEntered"
	EventTermClose            Event = "TermClose"
	EventTermEnter            Event = "TermEnter"
	EventTermLeave            Event = "TermLeave"
	EventTermOpen             Event = "TermOpen"
	EventTermRequest          Event = "TermRequest"
	EventTermResponse         Event = "TermResponse"
	EventTextChanged          Event = "TextChanged"
	EventTextChangedI         Event = "TextChangedI"
	EventTextChangedP         Event = "TextChangedP"
	EventTextChangedT         Event = "TextChangedT"
	EventTextYankPost         Event = "TextYankPost"
	EventUIEnter              Event = "UIEnter"
	EventUILeave              Event = "UILeave"
	EventUser                 Event = "User"
	EventVimEnter             Event = "VimEnter"
	EventVimLeave             Event = "VimLeave"
	EventVimLeavePre          Event = "VimLeavePre"
	EventVimResized           Event = "VimResized"
	EventVimResume            Event = "VimResume"
	EventVimSuspend           Event = "VimSuspend"
	EventWinClosed            Event = "WinClosed"
	EventWinEnter             Event = "WinEnter"
	EventWinLeave             Event = "WinLeave"
	EventWinNew               Event = "WinNew"
	EventWinResized           Event = "WinResized"
	EventWinScrolled          Event = "WinScrolled"
)

var knownEvents = func() map[Event]struct{} {
	m := make(map[Event]struct{}, len(allEvents))
	for _, e := range allEvents {
		m[e] = struct{}{}
	}
	return m
}()

var allEvents = []Event{
	EventBufAdd, EventBufDelete, EventBufEnter, EventBufFilePost,
	EventBufFilePre, EventBufHidden, EventBufLeave, EventBufModifiedSet,
	EventBufNew, EventBufNewFile, EventBufRead, EventBufReadPost,
	EventBufReadPre, EventBufUnload, EventBufWinEnter, EventBufWinLeave,
	EventBufWipeout, EventBufWrite, EventBufWriteCmd, EventBufWritePost,
	EventBufWritePre, EventChanInfo, EventChanOpen, EventCmdUndefined,
	EventCmdlineChanged, EventCmdlineEnter, EventCmdlineLeave,
	EventCmdwinEnter, EventCmdwinLeave, EventColorScheme,
	EventColorSchemePre, EventCompleteChanged, EventCompleteDone,
	EventCompleteDonePre, EventCursorHold, EventCursorHoldI,
	EventCursorMoved, EventCursorMovedI, EventDiffUpdated, EventDirChanged,
	EventDirChangedPre, EventExitPre, EventFileAppendCmd,
	EventFileAppendPost, EventFileAppendPre, EventFileChangedRO,
	EventFileChangedShell, EventFileChangedShellPost, EventFileReadCmd,
	EventFileReadPost, EventFileReadPre, EventFileType, EventFileWriteCmd,
	EventFileWritePost, EventFileWritePre, EventFilterReadPost,
	EventFilterReadPre, EventFilterWritePost, EventFilterWritePre,
	EventFocusGained, EventFocusLost, EventFuncUndefined,
	EventInsertChange, EventInsertCharPre, EventInsertEnter,
	EventInsertLeave, EventInsertLeavePre, EventMenuPopup,
	EventModeChanged, EventOptionSet, EventQuickFixCmdPost,
	EventQuickFixCmdPre, EventQuitPre, EventRecordingEnter,
	EventRecordingLeave, EventRemoteReply, EventSafeState,
	EventSearchWrapped, EventSessionLoadPost, EventSessionWritePost,
	EventShellCmdPost, EventShellFilterPost, EventSignal, EventSourceCmd,
	EventSourcePost, EventSourcePre, EventSpellFileMissing,
	EventStdinReadPost, EventStdinReadPre, EventSwapExists, EventSyntax,
	EventTabClosed, EventTabEnter, EventTabLeave, EventTabNew,
	EventTabNewEntered, EventTermClose, EventTermEnter, EventTermLeave,
	EventTermOpen, EventTermRequest, EventTermResponse, EventTextChanged,
	EventTextChangedI, EventTextChangedP, EventTextChangedT,
	EventTextYankPost, EventUIEnter, EventUILeave, EventUser,
	EventVimEnter, EventVimLeave, EventVimLeavePre, EventVimResized,
	EventVimResume, EventVimSuspend, EventWinClosed, EventWinEnter,
	EventWinLeave, EventWinNew, EventWinResized, EventWinScrolled,
}

func (e Event) String() string {
	return string(e)
}

// IsValid reports whether the event names a known autocommand event.
func (e Event) IsValid() bool {
	_, k := knownEvents[e]
	return k
}

// ParseEvent converts an event name string, failing on unknown names.
func ParseEvent(s string) (Event, liberr.Error) {
	e := Event(s)

	if !e.IsValid() {
		return "", ErrorEventUnknown.Error(nil)
	}

	return e, nil
}

// Events lists every known autocommand event.
func Events() []Event {
	return append([]Event(nil), allEvents...)
}
