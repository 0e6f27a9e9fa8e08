package nbt

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tagWriter builds NBT wire bytes for tests.
type tagWriter struct{ buf bytes.Buffer }

func (w *tagWriter) byte1(b byte)     { w.buf.WriteByte(b) }
func (w *tagWriter) short(v int16)    { binary.Write(&w.buf, binary.BigEndian, v) }
func (w *tagWriter) int4(v int32)     { binary.Write(&w.buf, binary.BigEndian, v) }
func (w *tagWriter) long(v int64)     { binary.Write(&w.buf, binary.BigEndian, v) }
func (w *tagWriter) str(s string)     { w.short(int16(len(s))); w.buf.WriteString(s) }
func (w *tagWriter) name(t byte, n string) { w.byte1(t); w.str(n) }

func TestReadScalars(t *testing.T) {
	var w tagWriter
	w.name(TagCompound, "root")
	w.name(TagByte, "b")
	w.byte1(0xFF) // -1
	w.name(TagShort, "s")
	w.short(-300)
	w.name(TagInt, "i")
	w.int4(70000)
	w.name(TagLong, "l")
	w.long(1 << 40)
	w.name(TagString, "str")
	w.str("hello")
	w.byte1(TagEnd)

	name, root, err := Read(&w.buf)
	require.NoError(t, err)
	assert.Equal(t, "root", name)
	assert.Equal(t, int8(-1), root["b"])
	assert.Equal(t, int16(-300), root["s"])
	assert.Equal(t, int32(70000), root["i"])
	assert.Equal(t, int64(1<<40), root["l"])
	assert.Equal(t, "hello", root["str"])
}

func TestReadArraysAndLists(t *testing.T) {
	var w tagWriter
	w.name(TagCompound, "root")
	w.name(TagByteArray, "bytes")
	w.int4(3)
	w.buf.Write([]byte{1, 2, 3})
	w.name(TagIntArray, "ints")
	w.int4(2)
	w.int4(10)
	w.int4(20)
	w.name(TagList, "list")
	w.byte1(TagShort)
	w.int4(2)
	w.short(5)
	w.short(6)
	w.byte1(TagEnd)

	_, root, err := Read(&w.buf)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, root["bytes"])
	assert.Equal(t, []int32{10, 20}, root["ints"])
	assert.Equal(t, []any{int16(5), int16(6)}, root["list"])
}

func TestReadNestedCompound(t *testing.T) {
	var w tagWriter
	w.name(TagCompound, "root")
	w.name(TagCompound, "inner")
	w.name(TagInt, "x")
	w.int4(42)
	w.byte1(TagEnd)
	w.byte1(TagEnd)

	_, root, err := Read(&w.buf)
	require.NoError(t, err)
	inner, ok := root["inner"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, int32(42), inner["x"])
}

func TestReadRejectsNonCompoundRoot(t *testing.T) {
	var w tagWriter
	w.name(TagInt, "x")
	w.int4(1)

	_, _, err := Read(&w.buf)
	assert.ErrorContains(t, err, "want compound")
}

func TestReadTruncated(t *testing.T) {
	var w tagWriter
	w.name(TagCompound, "root")
	w.name(TagInt, "x")
	w.buf.Write([]byte{0, 0}) // int cut short

	_, _, err := Read(&w.buf)
	assert.Error(t, err)
}

func TestReadNegativeArrayLength(t *testing.T) {
	var w tagWriter
	w.name(TagCompound, "root")
	w.name(TagByteArray, "bytes")
	w.int4(-1)

	_, _, err := Read(&w.buf)
	assert.ErrorContains(t, err, "negative")
}
