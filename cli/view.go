package main

import (
	"log/slog"
	"os"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"
	"github.com/spf13/cobra"

	"exifgraft/core"
	"exifgraft/core/fileutil"
	"exifgraft/core/header"
)

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view FILE",
		Short: "Show container type, EXIF presence, orientation and tags",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return viewHandler(args[0])
		},
	}
}

func viewHandler(path string) error {
	r, err := buildReport(path)
	if err != nil {
		return err
	}
	sum, err := fileutil.FileMD5(path)
	if err != nil {
		return err
	}
	r.MD5 = sum
	r.Tags = decodeTags(path)

	core.NewPrinter(flagJSON, flagVerbose).PrintReport(r)
	return nil
}

// buildReport parses one file and fills in everything the sniffer and the
// orientation walk can tell about it.
func buildReport(path string) (*core.Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := fileutil.ReadAll(f)
	if err != nil {
		return nil, err
	}

	p := header.ParseBytes(data)
	r := &core.Report{
		Path:        path,
		Type:        p.Type(),
		HasAlpha:    p.HasAlpha(),
		Size:        int64(len(data)),
		ExifPresent: len(p.ExifBlock()) > 0,
		ExifSize:    len(p.ExifBlock()),
		ExifOffset:  p.ExifOffset(),
		Orientation: p.Orientation(),
	}
	if r.Type == core.TypeUnknown {
		r.MIME = core.DescribeBytes(data)
	}
	return r, nil
}

// decodeTags lists the EXIF fields goexif can decode; absence of decodable
// tags is not an error.
func decodeTags(path string) []core.Tag {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		slog.Debug("no decodable exif tags", "path", path, "error", err)
		return nil
	}

	c := &tagCollector{}
	x.Walk(c)
	return c.tags
}

type tagCollector struct {
	tags []core.Tag
}

func (c *tagCollector) Walk(name exif.FieldName, tag *tiff.Tag) error {
	val := tag.String()
	// Remove surrounding quotes from string values
	if len(val) >= 2 && val[0] == '"' && val[len(val)-1] == '"' {
		val = val[1 : len(val)-1]
	}
	c.tags = append(c.tags, core.Tag{Name: string(name), Value: val})
	return nil
}
