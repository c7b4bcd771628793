// Package jobfile decodes the legacy Windows Task Scheduler ".job" binary
// format: a fixed-layout header followed by a variable-length trailer of
// length-prefixed UTF-16 strings.
package jobfile

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

// ErrTruncated reports a field read past the end of the buffer.
var ErrTruncated = errors.New("truncated job file")

// ErrBadEncoding reports a string payload that is not well-formed UTF-16.
var ErrBadEncoding = errors.New("invalid UTF-16 string data")

var utf16Decoder = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// cursor tracks a read position over a job file buffer. Every read
// bounds-checks against the buffer and advances the position, so field
// offsets accumulate instead of being recomputed per field.
type cursor struct {
	data []byte
	pos  int
}

func newCursor(data []byte) *cursor {
	return &cursor{data: data}
}

// seek moves the read position to an absolute offset.
func (c *cursor) seek(off int) {
	c.pos = off
}

// bytes returns the next n bytes and advances past them.
func (c *cursor) bytes(n int) ([]byte, error) {
	if c.pos+n > len(c.data) {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrTruncated, n, c.pos, len(c.data)-c.pos)
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

func (c *cursor) uint16() (uint16, error) {
	b, err := c.bytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (c *cursor) uint32() (uint32, error) {
	b, err := c.bytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (c *cursor) int32() (int32, error) {
	v, err := c.uint32()
	return int32(v), err
}

// utf16String reads one trailer field: a u16 little-endian count of UTF-16
// code units followed by count*2 payload bytes. Embedded NUL code units are
// stripped from the decoded value.
func (c *cursor) utf16String() (string, error) {
	count, err := c.uint16()
	if err != nil {
		return "", err
	}
	payload, err := c.bytes(int(count) * 2)
	if err != nil {
		return "", err
	}
	decoded, err := utf16Decoder.NewDecoder().Bytes(payload)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadEncoding, err)
	}
	s := string(decoded)
	// The decoder substitutes U+FFFD for unpaired surrogates rather than
	// failing, so its presence marks a malformed payload.
	if strings.ContainsRune(s, utf8.RuneError) {
		return "", ErrBadEncoding
	}
	return strings.ReplaceAll(s, "\x00", ""), nil
}
