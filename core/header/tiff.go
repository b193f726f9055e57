package header

import (
	"encoding/binary"
	"log/slog"

	"exifgraft/core"
)

// orientationTag is the TIFF tag id for image orientation.
const orientationTag = 0x0112

// bytesPerFormat gives the size in bytes of one component for each TIFF
// format code 1-12; index 0 is unused.
var bytesPerFormat = [...]int{0, 1, 1, 2, 4, 8, 1, 1, 2, 4, 8, 4, 8}

// randomReader is an offset-addressed view over an owned byte slice with
// a switchable byte order. Reads falling outside the slice report !ok
// instead of panicking.
type randomReader struct {
	data  []byte
	order binary.ByteOrder
}

func newRandomReader(data []byte) *randomReader {
	return &randomReader{data: data, order: binary.BigEndian}
}

func (r *randomReader) setOrder(order binary.ByteOrder) { r.order = order }

func (r *randomReader) len() int { return len(r.data) }

// int16At returns the signed 16-bit value at offset.
func (r *randomReader) int16At(offset int) (int16, bool) {
	if offset < 0 || offset+2 > len(r.data) {
		return 0, false
	}
	return int16(r.order.Uint16(r.data[offset:])), true
}

// int32At returns the signed 32-bit value at offset.
func (r *randomReader) int32At(offset int) (int32, bool) {
	if offset < 0 || offset+4 > len(r.data) {
		return 0, false
	}
	return int32(r.order.Uint32(r.data[offset:])), true
}

// decodeOrientation walks IFD0 of the TIFF body that follows the EXIF
// preamble and returns the first decodable orientation value. Reads the
// walk cannot complete end it with core.OrientationNone; entries that
// merely fail validation are skipped, exactly as the per-entry checks
// dictate.
func decodeOrientation(r *randomReader) int {
	// The TIFF body starts right after the 6-byte "Exif\x00\x00"
	// preamble; all offsets inside it are relative to that point.
	const headerSize = 6

	byteOrderID, ok := r.int16At(headerSize)
	if !ok {
		return core.OrientationNone
	}
	switch uint16(byteOrderID) {
	case markerTIFFBE:
		r.setOrder(binary.BigEndian)
	case markerTIFFLE:
		r.setOrder(binary.LittleEndian)
	default:
		slog.Debug("unknown tiff byte order, assuming big-endian", "marker", uint16(byteOrderID))
		r.setOrder(binary.BigEndian)
	}

	ifdOffsetRaw, ok := r.int32At(headerSize + 4)
	if !ok {
		return core.OrientationNone
	}
	ifdOffset := int(ifdOffsetRaw) + headerSize

	tagCountRaw, ok := r.int16At(ifdOffset)
	if !ok {
		return core.OrientationNone
	}
	tagCount := int(tagCountRaw)

	for i := 0; i < tagCount; i++ {
		entry := ifdOffset + 2 + 12*i

		tag, ok := r.int16At(entry)
		if !ok {
			return core.OrientationNone
		}
		if tag != orientationTag {
			continue
		}

		formatCode, ok := r.int16At(entry + 2)
		if !ok {
			return core.OrientationNone
		}
		if formatCode < 1 || formatCode > 12 {
			slog.Debug("invalid tiff format code", "formatCode", formatCode)
			continue
		}

		componentCount, ok := r.int32At(entry + 4)
		if !ok {
			return core.OrientationNone
		}
		if componentCount < 0 {
			slog.Debug("negative tiff component count")
			continue
		}

		// Historical sizing: component count plus one component's
		// size, not a product. Anything past 4 bytes lives outside
		// the entry and is not chased.
		byteCount := int(componentCount) + bytesPerFormat[formatCode]
		if byteCount > 4 {
			slog.Debug("tag value stored out of line", "formatCode", formatCode, "byteCount", byteCount)
			continue
		}

		valueOffset := entry + 8
		if valueOffset < 0 || valueOffset > r.len() {
			slog.Debug("tag value offset out of range", "valueOffset", valueOffset)
			continue
		}
		if byteCount < 0 || valueOffset+byteCount > r.len() {
			slog.Debug("tag value runs past the segment", "valueOffset", valueOffset, "byteCount", byteCount)
			continue
		}

		// Assume the common case: a single short-format component.
		value, ok := r.int16At(valueOffset)
		if !ok {
			return core.OrientationNone
		}
		return int(value)
	}

	return core.OrientationNone
}
