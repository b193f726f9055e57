package core

import (
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// extMap maps lowercase extensions to container types.
var extMap = map[string]ImageType{
	".jpg":  TypeJPEG,
	".jpeg": TypeJPEG,
	".jpe":  TypeJPEG,
	".png":  TypePNG,
	".gif":  TypeGIF,
}

// TypeForExtension guesses the container type from the file name alone.
// Used as a fallback when the magic-number sniff comes back unknown;
// note it can never distinguish PNG from PNG-with-alpha.
func TypeForExtension(path string) ImageType {
	dot := strings.LastIndex(path, ".")
	if dot >= 0 {
		ext := strings.ToLower(path[dot:])
		if t, ok := extMap[ext]; ok {
			return t
		}
	}
	return TypeUnknown
}

// DescribeBytes names the MIME type of a buffer, for reporting on inputs
// the sniffer does not classify.
func DescribeBytes(data []byte) string {
	return mimetype.Detect(data).String()
}
