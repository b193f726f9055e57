package header

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exifgraft/core"
)

func parseWithPayload(t *testing.T, payload []byte) *Parser {
	t.Helper()
	return ParseBytes(makeJPEG(appSegment{marker: 0xE1, payload: payload}))
}

func TestOrientationLittleEndian(t *testing.T) {
	p := parseWithPayload(t, makeExifPayload(binary.LittleEndian, orientationEntry(6)))
	assert.Equal(t, 6, p.Orientation())
}

func TestOrientationBigEndian(t *testing.T) {
	p := parseWithPayload(t, makeExifPayload(binary.BigEndian, orientationEntry(3)))
	assert.Equal(t, 3, p.Orientation())
}

func TestOrientationSignedGarbage(t *testing.T) {
	// A stored 0xFFFF comes back sign-extended, indistinguishable from
	// the absence sentinel.
	p := parseWithPayload(t, makeExifPayload(binary.LittleEndian, orientationEntry(0xFFFF)))
	assert.Equal(t, -1, p.Orientation())
}

func TestOrientationUnknownByteOrderAssumesBigEndian(t *testing.T) {
	payload := makeExifPayload(binary.BigEndian, orientationEntry(5))
	copy(payload[6:8], "XY") // clobber the byte order mark
	p := parseWithPayload(t, payload)
	assert.Equal(t, 5, p.Orientation())
}

func TestOrientationMissingPreamble(t *testing.T) {
	payload := makeExifPayload(binary.LittleEndian, orientationEntry(6))
	payload[0] = 'e'
	p := parseWithPayload(t, payload)
	assert.Equal(t, core.OrientationNone, p.Orientation())
}

func TestOrientationIgnoresOtherTags(t *testing.T) {
	maker := ifdEntry{tag: 0x010F, format: 2, count: 4, value: 0x4142}
	p := parseWithPayload(t, makeExifPayload(binary.BigEndian, maker, orientationEntry(4)))
	assert.Equal(t, 4, p.Orientation())
}

func TestOrientationAbsentTag(t *testing.T) {
	maker := ifdEntry{tag: 0x010F, format: 2, count: 2, value: 0x4100}
	p := parseWithPayload(t, makeExifPayload(binary.LittleEndian, maker))
	assert.Equal(t, core.OrientationNone, p.Orientation())
}

func TestOrientationSkipsInvalidEntries(t *testing.T) {
	cases := []struct {
		name  string
		entry ifdEntry
	}{
		{"format code zero", ifdEntry{tag: 0x0112, format: 0, count: 1, value: 6}},
		{"format code above range", ifdEntry{tag: 0x0112, format: 13, count: 1, value: 6}},
		{"negative component count", ifdEntry{tag: 0x0112, format: 3, count: 0xFFFFFFFF, value: 6}},
		// A single LONG already sizes past the inline value field.
		{"long format", ifdEntry{tag: 0x0112, format: 4, count: 1, value: 6}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// The bad entry comes first; the walk must skip it and take
			// the well-formed one, not abort.
			p := parseWithPayload(t, makeExifPayload(binary.LittleEndian, tc.entry, orientationEntry(2)))
			assert.Equal(t, 2, p.Orientation())
		})
	}
}

func TestOrientationTruncatedDirectory(t *testing.T) {
	payload := makeExifPayload(binary.LittleEndian, orientationEntry(6))
	// Cut inside the entry table.
	p := parseWithPayload(t, payload[:16])
	assert.Equal(t, core.OrientationNone, p.Orientation())
}

func TestDecodeOrientationShortBuffer(t *testing.T) {
	assert.Equal(t, core.OrientationNone, decodeOrientation(newRandomReader(nil)))
	assert.Equal(t, core.OrientationNone, decodeOrientation(newRandomReader([]byte("Exif\x00\x00"))))
}

func TestRandomReaderBounds(t *testing.T) {
	r := newRandomReader([]byte{0x01, 0x02, 0x03, 0x04})

	v16, ok := r.int16At(0)
	require.True(t, ok)
	assert.Equal(t, int16(0x0102), v16)

	v32, ok := r.int32At(0)
	require.True(t, ok)
	assert.Equal(t, int32(0x01020304), v32)

	_, ok = r.int16At(3)
	assert.False(t, ok)
	_, ok = r.int32At(1)
	assert.False(t, ok)
	_, ok = r.int16At(-1)
	assert.False(t, ok)

	r.setOrder(binary.LittleEndian)
	v16, ok = r.int16At(2)
	require.True(t, ok)
	assert.Equal(t, int16(0x0403), v16)
}
