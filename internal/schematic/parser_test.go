package schematic

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mc-blueprint-converter/internal/nbt"
)

// buildSchematic gzips a minimal NBT schematic for tests.
func buildSchematic(t *testing.T, rootName string, w, h, l int16, blocks, data []byte) *bytes.Buffer {
	t.Helper()
	var raw bytes.Buffer
	writeStr := func(s string) {
		binary.Write(&raw, binary.BigEndian, int16(len(s)))
		raw.WriteString(s)
	}
	writeShort := func(name string, v int16) {
		raw.WriteByte(nbt.TagShort)
		writeStr(name)
		binary.Write(&raw, binary.BigEndian, v)
	}
	writeBytes := func(name string, b []byte) {
		raw.WriteByte(nbt.TagByteArray)
		writeStr(name)
		binary.Write(&raw, binary.BigEndian, int32(len(b)))
		raw.Write(b)
	}

	raw.WriteByte(nbt.TagCompound)
	writeStr(rootName)
	writeShort("Width", w)
	writeShort("Height", h)
	writeShort("Length", l)
	writeBytes("Blocks", blocks)
	writeBytes("Data", data)
	raw.WriteByte(nbt.TagEnd)

	var out bytes.Buffer
	zw := gzip.NewWriter(&out)
	_, err := zw.Write(raw.Bytes())
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return &out
}

func TestDecode(t *testing.T) {
	// 2×2×2, YZX index (y*length+z)*width+x. One stone at (1,0,0), one
	// stair at (0,1,1) with facing data; everything else air.
	blocks := make([]byte, 8)
	data := make([]byte, 8)
	blocks[1] = 1                 // stone at y0 z0 x1
	blocks[(1*2+1)*2+0] = 53      // oak stairs at y1 z1 x0
	data[(1*2+1)*2+0] = 0xF2      // upper nibble must be masked off

	g, err := Decode(buildSchematic(t, "Schematic", 2, 2, 2, blocks, data))
	require.NoError(t, err)

	assert.Equal(t, 2, g.Width)
	assert.Equal(t, 2, g.Height)
	assert.Equal(t, 2, g.Length)

	require.Len(t, g.Instances, 2)

	// Scan order: ascending y, then z, then x.
	first, second := g.Instances[0], g.Instances[1]
	assert.Equal(t, Instance{X: 1, Y: 0, Z: 0, ID: 1, Data: 0, Name: "stone"}, first)
	assert.Equal(t, 53, second.ID)
	assert.Equal(t, 0, second.X)
	assert.Equal(t, 1, second.Y)
	assert.Equal(t, 1, second.Z)
	assert.Equal(t, 0x2, second.Data)
	assert.Equal(t, "oak_stairs", second.Name)
}

func TestDecodeAllAir(t *testing.T) {
	g, err := Decode(buildSchematic(t, "Schematic", 2, 1, 2, make([]byte, 4), make([]byte, 4)))
	require.NoError(t, err)
	assert.Empty(t, g.Instances)
}

func TestDecodeWrongRootName(t *testing.T) {
	_, err := Decode(buildSchematic(t, "NotASchematic", 1, 1, 1, []byte{1}, []byte{0}))
	assert.ErrorContains(t, err, "Schematic")
}

func TestDecodeLengthMismatch(t *testing.T) {
	_, err := Decode(buildSchematic(t, "Schematic", 2, 2, 2, []byte{1, 2}, make([]byte, 8)))
	assert.ErrorContains(t, err, "Blocks")
}

func TestDecodeNotGzip(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte("plain text")))
	assert.ErrorContains(t, err, "gzip")
}

func TestBlockName(t *testing.T) {
	assert.Equal(t, "stone", BlockName(1, 0))
	assert.Equal(t, "oak_planks", BlockName(5, 0))
	assert.Equal(t, "birch_planks", BlockName(5, 2))
	assert.Equal(t, "oak_log", BlockName(17, 0))
	assert.Equal(t, "spruce_log", BlockName(17, 1))

	// Pillar axis bits must not change the species.
	assert.Equal(t, "spruce_log", BlockName(17, 1|0x4))

	assert.Equal(t, "unknown_250", BlockName(250, 0))
}
