package header

import "log/slog"

// CloneExif grafts the EXIF block of src onto dest and returns the spliced
// buffer. It returns nil when either input is empty, and dest unchanged when
// src carries no block with a usable payload. Neither input is mutated.
func CloneExif(src, dest []byte) []byte {
	if len(src) == 0 || len(dest) == 0 {
		return nil
	}

	srcBlock := ParseBytes(src).ExifBlock()
	if len(srcBlock) <= 4 {
		slog.Debug("source has no exif payload to graft", "blockSize", len(srcBlock))
		return dest
	}

	destParsed := ParseBytes(dest)
	destBlock := destParsed.ExifBlock()

	if len(destBlock) > 0 {
		// Swap the destination's block for the source's in place.
		offset := destParsed.ExifOffset()
		out := make([]byte, 0, len(dest)-len(destBlock)+len(srcBlock))
		out = append(out, dest[:offset]...)
		out = append(out, srcBlock...)
		out = append(out, dest[offset+len(destBlock):]...)
		return out
	}

	if len(dest) < 2 {
		slog.Debug("destination too short to graft into", "size", len(dest))
		return nil
	}

	// No block in the destination: insert right after the SOI marker.
	out := make([]byte, 0, len(dest)+len(srcBlock))
	out = append(out, dest[:2]...)
	out = append(out, srcBlock...)
	out = append(out, dest[2:]...)
	return out
}
