// Package nbt decodes the big-endian NBT container format used by
// .schematic files. Only reading is supported.
package nbt

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Tag type ids, in wire order.
const (
	TagEnd byte = iota
	TagByte
	TagShort
	TagInt
	TagLong
	TagFloat
	TagDouble
	TagByteArray
	TagString
	TagList
	TagCompound
	TagIntArray
	TagLongArray
)

// Decoded payload types:
//
//	TagByte → int8, TagShort → int16, TagInt → int32, TagLong → int64
//	TagFloat → float32, TagDouble → float64
//	TagByteArray → []byte, TagString → string
//	TagList → []any, TagCompound → map[string]any
//	TagIntArray → []int32, TagLongArray → []int64

// Read decodes the root compound from r and returns its name and payload.
func Read(r io.Reader) (string, map[string]any, error) {
	d := &decoder{r: r}
	typ, err := d.readByte()
	if err != nil {
		return "", nil, fmt.Errorf("nbt: read root tag: %w", err)
	}
	if typ != TagCompound {
		return "", nil, fmt.Errorf("nbt: root tag is %d, want compound", typ)
	}
	name, err := d.readString()
	if err != nil {
		return "", nil, fmt.Errorf("nbt: read root name: %w", err)
	}
	payload, err := d.readPayload(typ)
	if err != nil {
		return "", nil, err
	}
	return name, payload.(map[string]any), nil
}

type decoder struct {
	r   io.Reader
	buf [8]byte
}

func (d *decoder) read(n int) ([]byte, error) {
	b := d.buf[:n]
	if _, err := io.ReadFull(d.r, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (d *decoder) readByte() (byte, error) {
	b, err := d.read(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (d *decoder) readShort() (int16, error) {
	b, err := d.read(2)
	if err != nil {
		return 0, err
	}
	return int16(binary.BigEndian.Uint16(b)), nil
}

func (d *decoder) readInt() (int32, error) {
	b, err := d.read(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(b)), nil
}

func (d *decoder) readLong() (int64, error) {
	b, err := d.read(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(b)), nil
}

func (d *decoder) readString() (string, error) {
	b, err := d.read(2)
	if err != nil {
		return "", err
	}
	n := int(binary.BigEndian.Uint16(b))
	if n == 0 {
		return "", nil
	}
	s := make([]byte, n)
	if _, err := io.ReadFull(d.r, s); err != nil {
		return "", err
	}
	return string(s), nil
}

func (d *decoder) readPayload(typ byte) (any, error) {
	switch typ {
	case TagByte:
		b, err := d.readByte()
		return int8(b), err
	case TagShort:
		return d.readShort()
	case TagInt:
		return d.readInt()
	case TagLong:
		return d.readLong()
	case TagFloat:
		v, err := d.readInt()
		return math.Float32frombits(uint32(v)), err
	case TagDouble:
		v, err := d.readLong()
		return math.Float64frombits(uint64(v)), err
	case TagByteArray:
		n, err := d.readInt()
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, fmt.Errorf("nbt: negative byte array length %d", n)
		}
		arr := make([]byte, n)
		if _, err := io.ReadFull(d.r, arr); err != nil {
			return nil, err
		}
		return arr, nil
	case TagString:
		return d.readString()
	case TagList:
		childType, err := d.readByte()
		if err != nil {
			return nil, err
		}
		n, err := d.readInt()
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, fmt.Errorf("nbt: negative list length %d", n)
		}
		list := make([]any, 0, n)
		for i := int32(0); i < n; i++ {
			v, err := d.readPayload(childType)
			if err != nil {
				return nil, err
			}
			list = append(list, v)
		}
		return list, nil
	case TagCompound:
		obj := make(map[string]any)
		for {
			t, err := d.readByte()
			if err != nil {
				return nil, err
			}
			if t == TagEnd {
				return obj, nil
			}
			name, err := d.readString()
			if err != nil {
				return nil, err
			}
			v, err := d.readPayload(t)
			if err != nil {
				return nil, fmt.Errorf("nbt: tag %q: %w", name, err)
			}
			obj[name] = v
		}
	case TagIntArray:
		n, err := d.readInt()
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, fmt.Errorf("nbt: negative int array length %d", n)
		}
		arr := make([]int32, n)
		for i := range arr {
			if arr[i], err = d.readInt(); err != nil {
				return nil, err
			}
		}
		return arr, nil
	case TagLongArray:
		n, err := d.readInt()
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, fmt.Errorf("nbt: negative long array length %d", n)
		}
		arr := make([]int64, n)
		for i := range arr {
			if arr[i], err = d.readLong(); err != nil {
				return nil, err
			}
		}
		return arr, nil
	default:
		return nil, fmt.Errorf("nbt: unknown tag type %d", typ)
	}
}
