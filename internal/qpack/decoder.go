package qpack

import (
	"fmt"

	"golang.org/x/net/http2/hpack"
)

// DecodeFieldLine decodes a single field line that only references the
// static table. It returns the field and the number of bytes consumed.
func DecodeFieldLine(b []byte) (Field, int, error) {
	if len(b) == 0 {
		return Field{}, 0, ErrTruncated
	}

	switch first := b[0]; {
	case first&indexedPattern != 0:
		if first&indexedStaticBit == 0 {
			return Field{}, 0, ErrDynamicReference
		}
		idx, n, err := readPrefixedInt(b, 6)
		if err != nil {
			return Field{}, 0, err
		}
		f, err := staticField(idx)
		if err != nil {
			return Field{}, 0, err
		}
		return f, n, nil

	case first&nameRefPattern != 0:
		if first&nameRefStaticBit == 0 {
			return Field{}, 0, ErrDynamicReference
		}
		idx, n, err := readPrefixedInt(b, 4)
		if err != nil {
			return Field{}, 0, err
		}
		f, err := staticField(idx)
		if err != nil {
			return Field{}, 0, err
		}
		value, m, err := readString(b[n:])
		if err != nil {
			return Field{}, 0, err
		}
		return Field{Name: f.Name, Value: value}, n + m, nil

	case first&literalNamePattern != 0:
		return Field{}, 0, fmt.Errorf("%w: literal name (0x%02x)", ErrUnsupported, first)

	default:
		// Post-base forms only address the dynamic table.
		return Field{}, 0, ErrDynamicReference
	}
}

func staticField(idx uint64) (Field, error) {
	if idx >= uint64(len(StaticTable)) {
		return Field{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, idx)
	}
	return StaticTable[idx], nil
}

// readString reads a string literal with a 7-bit length prefix.
func readString(b []byte) (string, int, error) {
	if len(b) == 0 {
		return "", 0, ErrTruncated
	}
	huffman := b[0]&huffmanBit != 0
	length, n, err := readPrefixedInt(b, 7)
	if err != nil {
		return "", 0, err
	}
	if uint64(len(b)-n) < length {
		return "", 0, ErrTruncated
	}
	end := n + int(length)
	if !huffman {
		return string(b[n:end]), end, nil
	}
	s, err := hpack.HuffmanDecodeToString(b[n:end])
	if err != nil {
		return "", 0, fmt.Errorf("qpack: huffman: %w", err)
	}
	return s, end, nil
}

// readPrefixedInt reads an n-bit prefix integer starting at b[0].
func readPrefixedInt(b []byte, n uint8) (uint64, int, error) {
	limit := uint64(1)<<n - 1
	i := uint64(b[0]) & limit
	if i < limit {
		return i, 1, nil
	}
	var shift uint
	for pos := 1; pos < len(b); pos++ {
		if shift > 56 {
			return 0, 0, fmt.Errorf("%w: integer overflow", ErrUnsupported)
		}
		c := b[pos]
		i += uint64(c&0x7f) << shift
		if c&0x80 == 0 {
			return i, pos + 1, nil
		}
		shift += 7
	}
	return 0, 0, ErrTruncated
}
