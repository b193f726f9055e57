package header

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloneReplacesExistingBlock(t *testing.T) {
	src := makeJPEG(appSegment{marker: 0xE1, payload: makeExifPayload(binary.LittleEndian, orientationEntry(6))})
	dest := makeJPEG(
		appSegment{marker: 0xE0, payload: []byte("JFIF\x00")},
		appSegment{marker: 0xE1, payload: makeExifPayload(binary.BigEndian, orientationEntry(1))},
	)

	srcBlock := ParseBytes(src).ExifBlock()
	destParsed := ParseBytes(dest)
	destBlock := destParsed.ExifBlock()
	offset := destParsed.ExifOffset()

	out := CloneExif(src, dest)
	require.NotNil(t, out)
	assert.Len(t, out, len(dest)-len(destBlock)+len(srcBlock))

	// Bytes outside the spliced region are untouched.
	assert.Equal(t, dest[:offset], out[:offset])
	assert.Equal(t, dest[offset+len(destBlock):], out[offset+len(srcBlock):])

	// The result re-parses to the source's block.
	re := ParseBytes(out)
	assert.Equal(t, srcBlock, re.ExifBlock())
	assert.Equal(t, 6, re.Orientation())
}

func TestCloneInsertsAfterSOI(t *testing.T) {
	src := makeJPEG(appSegment{marker: 0xE1, payload: makeExifPayload(binary.LittleEndian, orientationEntry(8))})
	dest := makeJPEG(appSegment{marker: 0xE0, payload: []byte("JFIF\x00")})

	srcBlock := ParseBytes(src).ExifBlock()
	out := CloneExif(src, dest)
	require.NotNil(t, out)
	assert.Len(t, out, len(dest)+len(srcBlock))
	assert.Equal(t, dest[:2], out[:2])
	assert.Equal(t, srcBlock, out[2:2+len(srcBlock)])
	assert.Equal(t, dest[2:], out[2+len(srcBlock):])

	assert.Equal(t, srcBlock, ParseBytes(out).ExifBlock())
}

func TestCloneEmptyInputs(t *testing.T) {
	src := makeJPEG(appSegment{marker: 0xE1, payload: makeExifPayload(binary.LittleEndian, orientationEntry(1))})
	assert.Nil(t, CloneExif(nil, src))
	assert.Nil(t, CloneExif(src, nil))
	assert.Nil(t, CloneExif(nil, nil))
}

func TestCloneSourceWithoutExif(t *testing.T) {
	src := makeJPEG(appSegment{marker: 0xE0, payload: []byte("JFIF\x00")})
	dest := makeJPEG()
	assert.Equal(t, dest, CloneExif(src, dest))
}

func TestCloneSourceEmptyExifPayload(t *testing.T) {
	// An APP1 with no payload yields a 4-byte block, too small to graft.
	src := makeJPEG(appSegment{marker: 0xE1})
	dest := makeJPEG(appSegment{marker: 0xE0, payload: []byte("JFIF\x00")})
	assert.Equal(t, dest, CloneExif(src, dest))
}

func TestCloneShortDestination(t *testing.T) {
	src := makeJPEG(appSegment{marker: 0xE1, payload: makeExifPayload(binary.LittleEndian, orientationEntry(1))})
	assert.Nil(t, CloneExif(src, []byte{0xFF}))
}

func TestCloneDoesNotMutateInputs(t *testing.T) {
	src := makeJPEG(appSegment{marker: 0xE1, payload: makeExifPayload(binary.BigEndian, orientationEntry(3))})
	dest := makeJPEG(appSegment{marker: 0xE1, payload: makeExifPayload(binary.BigEndian, orientationEntry(1))})
	srcCopy := append([]byte(nil), src...)
	destCopy := append([]byte(nil), dest...)

	_ = CloneExif(src, dest)
	assert.Equal(t, srcCopy, src)
	assert.Equal(t, destCopy, dest)
}

func TestCloneOutputDecodableByGoexif(t *testing.T) {
	src := makeJPEG(appSegment{marker: 0xE1, payload: makeExifPayload(binary.LittleEndian, orientationEntry(6))})
	dest := makeJPEG(appSegment{marker: 0xE0, payload: []byte("JFIF\x00")})

	out := CloneExif(src, dest)
	require.NotNil(t, out)

	x, err := exif.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	tag, err := x.Get(exif.Orientation)
	require.NoError(t, err)
	v, err := tag.Int(0)
	require.NoError(t, err)
	assert.Equal(t, 6, v)
}
