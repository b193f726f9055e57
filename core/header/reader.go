package header

import (
	"encoding/binary"
	"io"
)

// streamReader is a forward-only cursor over a byte source. Every failure
// of the underlying reader is reported as an end-of-data condition; the
// reader never distinguishes transport errors from running out of bytes.
type streamReader struct {
	r io.Reader
}

// readUint16 reads two bytes, big-endian.
func (s *streamReader) readUint16() (uint16, error) {
	var buf [2]byte
	if _, err := io.ReadFull(s.r, buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(buf[:]), nil
}

// readUint8 reads a single byte.
func (s *streamReader) readUint8() (uint8, error) {
	var buf [1]byte
	if _, err := io.ReadFull(s.r, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// skip discards up to n bytes and reports how many were consumed. CopyN
// retries partial reads internally, so a short count always means the
// stream ended mid-skip.
func (s *streamReader) skip(n int) int {
	if n <= 0 {
		return 0
	}
	skipped, _ := io.CopyN(io.Discard, s.r, int64(n))
	return int(skipped)
}

// readFull fills buf as far as the stream allows and reports the number
// of bytes actually read.
func (s *streamReader) readFull(buf []byte) int {
	n, _ := io.ReadFull(s.r, buf)
	return n
}
