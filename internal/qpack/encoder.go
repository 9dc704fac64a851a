package qpack

import (
	"errors"
	"fmt"
)

var (
	ErrIndexOutOfRange  = errors.New("qpack: static index out of range")
	ErrTruncated        = errors.New("qpack: truncated field line")
	ErrDynamicReference = errors.New("qpack: dynamic table reference")
	ErrUnsupported      = errors.New("qpack: unsupported field line representation")
)

// Field line representation patterns (RFC 9204 §4.5).
const (
	indexedPattern     = 0x80 // 1Txxxxxx
	indexedStaticBit   = 0x40
	nameRefPattern     = 0x40 // 01NTxxxx
	nameRefStaticBit   = 0x10
	literalNamePattern = 0x20 // 001NHxxx
	huffmanBit         = 0x80
)

// EncodeStaticIndexedField returns an indexed field line referencing the
// static table entry at index.
func EncodeStaticIndexedField(index int) ([]byte, error) {
	if err := checkIndex(index); err != nil {
		return nil, err
	}
	return appendPrefixedInt(make([]byte, 0, 2), indexedPattern|indexedStaticBit, 6, uint64(index)), nil
}

// EncodeLiteralWithStaticNameRef returns a literal field line whose name is the
// static table entry at index and whose value is sent as-is.
func EncodeLiteralWithStaticNameRef(index int, value string) ([]byte, error) {
	if err := checkIndex(index); err != nil {
		return nil, err
	}
	return AppendLiteralWithStaticNameRef(make([]byte, 0, 4+len(value)), index, value), nil
}

// AppendLiteralWithStaticNameRef appends the literal field line to dst.
// index must be a valid static table index.
func AppendLiteralWithStaticNameRef(dst []byte, index int, value string) []byte {
	dst = appendPrefixedInt(dst, nameRefPattern|nameRefStaticBit, 4, uint64(index))
	dst = appendPrefixedInt(dst, 0, 7, uint64(len(value)))
	return append(dst, value...)
}

func checkIndex(index int) error {
	if index < 0 || index >= len(StaticTable) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	return nil
}

// appendPrefixedInt appends i as an n-bit prefix integer (RFC 7541 §5.1),
// OR-ing the pattern bits into the first byte.
func appendPrefixedInt(dst []byte, pattern byte, n uint8, i uint64) []byte {
	limit := uint64(1)<<n - 1
	if i < limit {
		return append(dst, pattern|byte(i))
	}
	dst = append(dst, pattern|byte(limit))
	i -= limit
	for i >= 0x80 {
		dst = append(dst, byte(i&0x7f)|0x80)
		i >>= 7
	}
	return append(dst, byte(i))
}
