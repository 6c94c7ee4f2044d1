//go:build wasip1

package wasmabi

import (
	"sync"

	"github.com/dpotapov/htmlharvest/htmlnode"
	"github.com/dpotapov/htmlharvest/query"
	"github.com/dpotapov/htmlharvest/selector"
	"github.com/dpotapov/htmlharvest/stream"
)

// state holds the process-wide singletons described in spec §5/§6/§9: at
// most one live tree-mode document and one live streaming session, plus
// the last query's result buffers. Re-initialization tears the relevant
// half down first. Packaged behind this private struct (rather than bare
// package-level globals) so a future host binding could swap the flat ABI
// for an opaque-handle one without touching the core, per design note §9.
type state struct {
	mu sync.Mutex

	a *arena

	// Tree mode.
	doc *htmlnode.Node

	// Streaming mode.
	extractor *stream.Extractor

	// Last query result buffers (tree mode), invalidated by the next query.
	lastText    string
	lastTextAll []string
}

var st = &state{a: newArena()}

//export alloc
func alloc(size uint32) uint32 {
	st.mu.Lock()
	defer st.mu.Unlock()
	return uint32(st.a.alloc(int(size)))
}

//export dealloc
func dealloc(ptr, size uint32) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.a.dealloc(int(ptr), int(size))
}

//export cleanup
func cleanup() {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.doc = nil
	st.extractor = nil
	st.lastText = ""
	st.lastTextAll = nil
	st.a.reset()
}

// ---- Tree mode ----

//export parse
func parse(ptr, length uint32) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	src := st.a.bytes(int(ptr), int(length))
	st.doc = htmlnode.Parse(src)
	return true
}

//export querySelector
func querySelector(selPtr, selLen uint32) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.doc == nil {
		return false // MissingInitialization, per spec §7
	}
	sel, err := selector.Parse(string(st.a.bytes(int(selPtr), int(selLen))))
	if err != nil {
		return false
	}
	n := query.First(st.doc, sel)
	if n == nil {
		st.lastText = ""
		return false
	}
	st.lastText = htmlnode.TextContent(n)
	return true
}

//export getResultTextLen
func getResultTextLen() uint32 {
	st.mu.Lock()
	defer st.mu.Unlock()
	return uint32(len(st.lastText))
}

//export getResultText
func getResultText() uint32 {
	st.mu.Lock()
	defer st.mu.Unlock()
	off, _ := st.a.putString(st.lastText)
	return uint32(off)
}

//export querySelectorAllText
func querySelectorAllText(selPtr, selLen uint32) uint32 {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.doc == nil {
		return 0
	}
	sel, err := selector.Parse(string(st.a.bytes(int(selPtr), int(selLen))))
	if err != nil {
		return 0
	}
	st.lastTextAll = query.AllText(st.doc, sel)
	return uint32(len(st.lastTextAll))
}

//export getTextLenAt
func getTextLenAt(index uint32) uint32 {
	st.mu.Lock()
	defer st.mu.Unlock()
	if int(index) >= len(st.lastTextAll) {
		return 0
	}
	return uint32(len(st.lastTextAll[index]))
}

//export getTextAt
func getTextAt(index uint32) uint32 {
	st.mu.Lock()
	defer st.mu.Unlock()
	if int(index) >= len(st.lastTextAll) {
		return 0
	}
	off, _ := st.a.putString(st.lastTextAll[index])
	return uint32(off)
}

//export querySelectorAttribute
func querySelectorAttribute(selPtr, selLen, attrPtr, attrLen uint32) uint32 {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.doc == nil {
		return 0
	}
	sel, err := selector.Parse(string(st.a.bytes(int(selPtr), int(selLen))))
	if err != nil {
		return 0
	}
	attrName := string(st.a.bytes(int(attrPtr), int(attrLen)))
	st.lastTextAll = query.Attribute(st.doc, sel, attrName)
	return uint32(len(st.lastTextAll))
}

// ---- Streaming mode ----

//export streamingInit
func streamingInit() bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.extractor = stream.New()
	return true
}

//export streamingAddSelector
func streamingAddSelector(ptr, length uint32) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.extractor == nil {
		return false
	}
	s := string(st.a.bytes(int(ptr), int(length)))
	return st.extractor.AddSelector(s) == nil
}

//export streamingFeed
func streamingFeed(ptr, length uint32) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.extractor == nil {
		return false
	}
	st.extractor.Feed(st.a.bytes(int(ptr), int(length)))
	return true
}

//export streamingFinish
func streamingFinish() bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.extractor == nil {
		return false
	}
	st.extractor.Finish()
	return true
}

//export streamingGetMatchCount
func streamingGetMatchCount(keyPtr, keyLen uint32) uint32 {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.extractor == nil {
		return 0
	}
	key := string(st.a.bytes(int(keyPtr), int(keyLen)))
	matches, ok := st.extractor.GetMatches(key)
	if !ok {
		return 0
	}
	return uint32(len(matches))
}

//export streamingGetMatchTextLen
func streamingGetMatchTextLen(keyPtr, keyLen, index uint32) uint32 {
	st.mu.Lock()
	defer st.mu.Unlock()
	text, ok := matchText(keyPtr, keyLen, index)
	if !ok {
		return 0
	}
	return uint32(len(text))
}

//export streamingGetMatchText
func streamingGetMatchText(keyPtr, keyLen, index uint32) uint32 {
	st.mu.Lock()
	defer st.mu.Unlock()
	text, ok := matchText(keyPtr, keyLen, index)
	if !ok {
		return 0
	}
	off, _ := st.a.putString(text)
	return uint32(off)
}

func matchText(keyPtr, keyLen, index uint32) (string, bool) {
	if st.extractor == nil {
		return "", false
	}
	key := string(st.a.bytes(int(keyPtr), int(keyLen)))
	matches, ok := st.extractor.GetMatches(key)
	if !ok || int(index) >= len(matches) {
		return "", false
	}
	return matches[index].Text, true
}

//export streamingGetMatchAttributeLen
func streamingGetMatchAttributeLen(keyPtr, keyLen, index, attrPtr, attrLen uint32) uint32 {
	st.mu.Lock()
	defer st.mu.Unlock()
	v, ok := matchAttribute(keyPtr, keyLen, index, attrPtr, attrLen)
	if !ok {
		return 0
	}
	return uint32(len(v))
}

//export streamingGetMatchAttribute
func streamingGetMatchAttribute(keyPtr, keyLen, index, attrPtr, attrLen uint32) uint32 {
	st.mu.Lock()
	defer st.mu.Unlock()
	v, ok := matchAttribute(keyPtr, keyLen, index, attrPtr, attrLen)
	if !ok {
		return 0
	}
	off, _ := st.a.putString(v)
	return uint32(off)
}

func matchAttribute(keyPtr, keyLen, index, attrPtr, attrLen uint32) (string, bool) {
	if st.extractor == nil {
		return "", false
	}
	key := string(st.a.bytes(int(keyPtr), int(keyLen)))
	attrName := string(st.a.bytes(int(attrPtr), int(attrLen)))
	return st.extractor.GetMatchAttribute(key, int(index), attrName)
}

//export streamingCleanup
func streamingCleanup() {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.extractor = nil
}
