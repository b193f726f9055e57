package core

import (
	"encoding/json"
	"fmt"
	"os"
)

// Printer handles all display output for the CLI.
type Printer struct {
	JSON    bool
	Verbose bool
	Writer  *os.File
}

// NewPrinter creates a default Printer writing to stdout.
func NewPrinter(jsonMode, verbose bool) *Printer {
	return &Printer{JSON: jsonMode, Verbose: verbose, Writer: os.Stdout}
}

// PrintReport renders a Report to the configured output.
func (p *Printer) PrintReport(r *Report) {
	if p.JSON {
		p.printJSON(r)
		return
	}
	p.printText(r)
}

func (p *Printer) printText(r *Report) {
	fmt.Fprintf(p.Writer, "File       : %s\n", r.Path)
	fmt.Fprintf(p.Writer, "Container  : %s\n", r.Type)
	fmt.Fprintf(p.Writer, "Alpha      : %v\n", r.HasAlpha)
	if r.Size > 0 {
		fmt.Fprintf(p.Writer, "Size       : %d bytes\n", r.Size)
	}
	if r.MD5 != "" {
		fmt.Fprintf(p.Writer, "MD5        : %s\n", r.MD5)
	}
	if r.MIME != "" {
		fmt.Fprintf(p.Writer, "MIME       : %s\n", r.MIME)
	}
	if r.ExifPresent {
		fmt.Fprintf(p.Writer, "EXIF       : %d bytes at offset %d\n", r.ExifSize, r.ExifOffset)
	} else {
		fmt.Fprintln(p.Writer, "EXIF       : (none)")
	}
	if r.Orientation != OrientationNone {
		if name := OrientationName(r.Orientation); name != "" {
			fmt.Fprintf(p.Writer, "Orientation: %d (%s)\n", r.Orientation, name)
		} else {
			fmt.Fprintf(p.Writer, "Orientation: %d\n", r.Orientation)
		}
	}

	if len(r.Tags) == 0 {
		return
	}
	fmt.Fprintln(p.Writer)
	fmt.Fprintln(p.Writer, "── EXIF tags ──")
	for _, t := range r.Tags {
		fmt.Fprintf(p.Writer, "  %-30s %s\n", t.Name+":", t.Value)
	}
}

func (p *Printer) printJSON(r *Report) {
	type jsonTag struct {
		Name  string `json:"name"`
		Value string `json:"value"`
	}
	type jsonOutput struct {
		Path            string    `json:"file"`
		Type            ImageType `json:"container"`
		HasAlpha        bool      `json:"alpha"`
		Size            int64     `json:"size,omitempty"`
		MD5             string    `json:"md5,omitempty"`
		MIME            string    `json:"mime,omitempty"`
		ExifPresent     bool      `json:"exif"`
		ExifSize        int       `json:"exifSize,omitempty"`
		ExifOffset      int       `json:"exifOffset"`
		Orientation     int       `json:"orientation"`
		OrientationName string    `json:"orientationName,omitempty"`
		Tags            []jsonTag `json:"tags,omitempty"`
	}

	out := jsonOutput{
		Path:            r.Path,
		Type:            r.Type,
		HasAlpha:        r.HasAlpha,
		Size:            r.Size,
		MD5:             r.MD5,
		MIME:            r.MIME,
		ExifPresent:     r.ExifPresent,
		ExifSize:        r.ExifSize,
		ExifOffset:      r.ExifOffset,
		Orientation:     r.Orientation,
		OrientationName: OrientationName(r.Orientation),
	}
	for _, t := range r.Tags {
		out.Tags = append(out.Tags, jsonTag{Name: t.Name, Value: t.Value})
	}

	b, _ := json.MarshalIndent(out, "", "  ")
	fmt.Fprintln(p.Writer, string(b))
}

// PrintSuccess prints a success message.
func (p *Printer) PrintSuccess(msg string) {
	fmt.Fprintln(p.Writer, "✓ "+msg)
}

// PrintInfo prints an info line (suppressed in JSON mode).
func (p *Printer) PrintInfo(msg string) {
	if !p.JSON {
		fmt.Fprintln(p.Writer, msg)
	}
}

// PrintError prints an error to stderr.
func PrintError(msg string) {
	fmt.Fprintln(os.Stderr, "✗ Error: "+msg)
}

// ResolveOutPath returns dst if non-empty, otherwise src (in-place).
func ResolveOutPath(src, dst string) string {
	if dst == "" {
		return src
	}
	return dst
}
