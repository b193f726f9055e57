// Package core defines the shared types, format registry, and output
// helpers for exifgraft.
package core

// ImageType identifies a recognised image container.
type ImageType string

const (
	// TypeGIF is the GIF container (always treated as carrying alpha).
	TypeGIF ImageType = "gif"
	// TypeJPEG is the JPEG container.
	TypeJPEG ImageType = "jpeg"
	// TypePNGAlpha is a PNG whose color type can carry transparency
	// (indexed, grayscale+alpha, truecolor+alpha).
	TypePNGAlpha ImageType = "png-alpha"
	// TypePNG is a PNG without an alpha channel.
	TypePNG ImageType = "png"
	// TypeUnknown is anything the sniffer could not classify.
	TypeUnknown ImageType = "unknown"
)

// HasAlpha reports whether the container may include transparent pixels.
func (t ImageType) HasAlpha() bool {
	switch t {
	case TypeGIF, TypePNGAlpha:
		return true
	}
	return false
}

// String returns the short lowercase identifier ("jpeg", "png-alpha", ...).
func (t ImageType) String() string { return string(t) }

// OrientationNone is the sentinel for "no orientation tag found / not
// applicable to this input".
const OrientationNone = -1

// orientationNames maps the eight EXIF orientation values to the usual
// display labels.
var orientationNames = map[int]string{
	1: "Horizontal (normal)",
	2: "Mirror horizontal",
	3: "Rotate 180",
	4: "Mirror vertical",
	5: "Mirror horizontal and rotate 270 CW",
	6: "Rotate 90 CW",
	7: "Mirror horizontal and rotate 90 CW",
	8: "Rotate 270 CW",
}

// OrientationName returns a display label for an EXIF orientation value,
// or "" for anything outside 1-8 (including OrientationNone).
func OrientationName(v int) string {
	return orientationNames[v]
}

// Report holds everything exifgraft can say about a single file.
type Report struct {
	Path        string
	Type        ImageType
	HasAlpha    bool
	Size        int64  // file size in bytes
	MD5         string // uppercase hex digest, "" if not computed
	MIME        string // detected MIME type, "" if not probed
	ExifPresent bool
	ExifSize    int // full block size incl. the 4-byte marker header
	ExifOffset  int // offset of the block's 0xFF marker byte, -1 if absent
	Orientation int // raw EXIF orientation, OrientationNone if absent
	Tags        []Tag
}

// Tag is one decoded EXIF field, for display.
type Tag struct {
	Name  string
	Value string
}

// Summary returns a short one-line description for quick display.
func (r *Report) Summary() string {
	s := string(r.Type)
	if r.ExifPresent {
		s += " +exif"
	}
	if name := OrientationName(r.Orientation); name != "" {
		s += " (" + name + ")"
	}
	return s
}
