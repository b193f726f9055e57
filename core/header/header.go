// Package header parses the leading bytes of an image stream: container
// sniffing, JPEG APP1/EXIF block extraction, EXIF grafting between JPEG
// buffers, and orientation decoding. A parse is a single forward pass over
// the source; malformed or truncated input degrades to absence values
// (TypeUnknown, a nil block, the OrientationNone sentinel) and never to an
// error or panic.
package header

import (
	"bytes"
	"io"
	"log/slog"

	"exifgraft/core"
)

const (
	// markerSOI is the JPEG start-of-image marker and the magic that
	// makes a stream a candidate for EXIF extraction.
	markerSOI = 0xFFD8
	// markerTIFFBE / markerTIFFLE are the TIFF byte order marks
	// ("MM" and "II").
	markerTIFFBE = 0x4D4D
	markerTIFFLE = 0x4949

	pngSignature = 0x89504E47
	gifSignature = 0x474946 // "GIF", first three signature bytes

	segmentStart = 0xFF // every JPEG marker begins with this byte
	segmentAPP1  = 0xE1 // application segment 1, the usual EXIF carrier
	segmentSOS   = 0xDA // start of scan: entropy-coded data follows
	segmentEOI   = 0xD9 // end of image
)

// exifPreamble opens the payload of a well-formed EXIF APP1 segment.
var exifPreamble = []byte("Exif\x00\x00")

// Parser holds the outcome of parsing one image header. It is built in a
// single pass by Parse and is read-only afterwards; instances are not
// meant to be shared while parsing but are safe for concurrent reads once
// constructed.
type Parser struct {
	magic      uint16
	imageType  core.ImageType
	exifBlock  []byte
	exifOffset int
}

// Parse consumes the header portion of r and returns the parsed result.
// The reader is left wherever parsing stopped; the caller keeps ownership
// and is responsible for closing it. Parse never fails: unreadable or
// unrecognised input yields a Parser reporting TypeUnknown.
func Parse(r io.Reader) *Parser {
	p := &Parser{imageType: core.TypeUnknown, exifOffset: -1}
	p.sniff(&streamReader{r: r})
	return p
}

// ParseBytes parses an in-memory image.
func ParseBytes(data []byte) *Parser {
	return Parse(bytes.NewReader(data))
}

// Type returns the sniffed container type.
func (p *Parser) Type() core.ImageType { return p.imageType }

// HasAlpha reports whether the sniffed container may carry transparency.
func (p *Parser) HasAlpha() bool { return p.imageType.HasAlpha() }

// ExifBlock returns the normalized APP1 block, laid out as
// [0xFF, 0xE1, lengthHi, lengthLo, payload...] with the two length bytes
// covering payload+2, or nil when the stream carried none. The slice is
// the parser's own copy; callers must not modify it.
func (p *Parser) ExifBlock() []byte { return p.exifBlock }

// ExifOffset returns the offset, from the first byte of the stream, of
// the block's 0xFF marker byte. It is -1 when ExifBlock is nil.
func (p *Parser) ExifOffset() int { return p.exifOffset }

// sniff classifies the stream from its magic bytes and, for JPEG, walks
// the marker segments looking for the EXIF block.
func (p *Parser) sniff(sr *streamReader) {
	magic, err := sr.readUint16()
	if err != nil {
		return
	}
	p.magic = magic

	if magic == markerSOI {
		p.imageType = core.TypeJPEG
		p.walkSegments(sr)
		return
	}

	next, err := sr.readUint16()
	if err != nil {
		return
	}
	firstFour := uint32(magic)<<16 | uint32(next)
	switch {
	case firstFour == pngSignature:
		// The IHDR color type sits at byte 25 of the stream; 21 more
		// to go past the rest of the signature and the chunk header.
		if sr.skip(21) < 21 {
			return
		}
		colorType, err := sr.readUint8()
		if err != nil {
			return
		}
		// Indexed PNGs (color type 3) can carry transparency too.
		if colorType >= 3 {
			p.imageType = core.TypePNGAlpha
		} else {
			p.imageType = core.TypePNG
		}
	case firstFour>>8 == gifSignature:
		p.imageType = core.TypeGIF
	}
}

// walkSegments scans JPEG marker segments for the first APP1. It assumes
// the two SOI bytes are already consumed and keeps a running offset so
// the block's position in the original stream can be reported.
func (p *Parser) walkSegments(sr *streamReader) {
	index := 2
	for {
		segmentID, err := sr.readUint8()
		if err != nil {
			return
		}
		if segmentID != segmentStart {
			slog.Debug("unexpected byte between jpeg segments", "segmentId", segmentID)
			return
		}

		segmentType, err := sr.readUint8()
		if err != nil {
			return
		}
		if segmentType == segmentSOS {
			return
		}
		if segmentType == segmentEOI {
			slog.Debug("reached EOI without finding an APP1 segment")
			return
		}

		length, err := sr.readUint16()
		if err != nil {
			return
		}
		// The length field counts its own two bytes.
		payloadLen := int(length) - 2
		if payloadLen < 0 {
			slog.Debug("segment length below header size", "segmentType", segmentType, "length", length)
			return
		}

		if segmentType != segmentAPP1 {
			skipped := sr.skip(payloadLen)
			if skipped != payloadLen {
				slog.Debug("truncated jpeg segment",
					"segmentType", segmentType, "want", payloadLen, "skipped", skipped)
				return
			}
			index += 4 + payloadLen
			continue
		}

		// First APP1 wins; the payload is not checked for the EXIF
		// preamble at this point.
		payload := make([]byte, payloadLen)
		read := sr.readFull(payload)
		if read != payloadLen {
			slog.Debug("short APP1 payload", "want", payloadLen, "read", read)
		}
		block := make([]byte, 4+read)
		block[0] = segmentStart
		block[1] = segmentAPP1
		block[2] = byte((read + 2) >> 8)
		block[3] = byte(read + 2)
		copy(block[4:], payload[:read])
		p.exifBlock = block
		p.exifOffset = index
		return
	}
}

// exifContent returns the TIFF-bearing view of the block: the 4-byte
// marker header is dropped, and so is the final byte.
func (p *Parser) exifContent() []byte {
	if len(p.exifBlock) > 4 {
		return p.exifBlock[4 : len(p.exifBlock)-1]
	}
	return nil
}

// Orientation returns the EXIF orientation value from the extracted
// block, or core.OrientationNone when the input is not orientation-bearing
// or the tag cannot be decoded.
func (p *Parser) Orientation() int {
	if !handlesOrientation(p.magic) {
		return core.OrientationNone
	}
	content := p.exifContent()
	if len(content) <= len(exifPreamble) || !bytes.Equal(content[:len(exifPreamble)], exifPreamble) {
		return core.OrientationNone
	}
	return decodeOrientation(newRandomReader(content))
}

// handlesOrientation is the applicability test for orientation decoding:
// any magic with the 0xFFD8 bits set, plus the two TIFF byte order marks.
// The mask is deliberately loose; callers depend on it matching more than
// the strict JPEG magic.
func handlesOrientation(magic uint16) bool {
	return magic&markerSOI == markerSOI || magic == markerTIFFBE || magic == markerTIFFLE
}
