package core

// FormatInfo describes one recognised container and what exifgraft can do
// with it.
type FormatInfo struct {
	Type       ImageType
	Name       string
	Extensions []string
	MIMETypes  []string
	HasAlpha   bool
	CanExtract bool // EXIF block extraction
	CanGraft   bool // usable as a graft source or destination
	CanOrient  bool // orientation decoding
	Notes      string
}

var formatInfo = map[ImageType]FormatInfo{
	TypeJPEG: {
		Type:       TypeJPEG,
		Name:       "JPEG",
		Extensions: []string{".jpg", ".jpeg", ".jpe"},
		MIMETypes:  []string{"image/jpeg"},
		CanExtract: true,
		CanGraft:   true,
		CanOrient:  true,
		Notes:      "EXIF carried in an APP1 segment before start-of-scan.",
	},
	TypePNG: {
		Type:       TypePNG,
		Name:       "PNG",
		Extensions: []string{".png"},
		MIMETypes:  []string{"image/png"},
		Notes:      "Color types 0 and 2, no transparency.",
	},
	TypePNGAlpha: {
		Type:       TypePNGAlpha,
		Name:       "PNG (alpha)",
		Extensions: []string{".png"},
		MIMETypes:  []string{"image/png"},
		HasAlpha:   true,
		Notes:      "Color types 3, 4 and 6: palette or alpha channel.",
	},
	TypeGIF: {
		Type:       TypeGIF,
		Name:       "GIF",
		Extensions: []string{".gif"},
		MIMETypes:  []string{"image/gif"},
		HasAlpha:   true,
		Notes:      "Transparency via graphic control extensions.",
	},
}

// formatOrder fixes the listing order for capability tables.
var formatOrder = []ImageType{TypeJPEG, TypePNG, TypePNGAlpha, TypeGIF}

// Infos returns every registry entry in display order.
func Infos() []FormatInfo {
	out := make([]FormatInfo, 0, len(formatOrder))
	for _, t := range formatOrder {
		out = append(out, formatInfo[t])
	}
	return out
}

// InfoFor returns the registry entry for a container type.
func InfoFor(t ImageType) (FormatInfo, bool) {
	info, ok := formatInfo[t]
	return info, ok
}
