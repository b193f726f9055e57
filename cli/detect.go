package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"exifgraft/core"
	"exifgraft/core/fileutil"
	"exifgraft/core/header"
)

func newDetectCmd() *cobra.Command {
	var jobs int

	cmd := &cobra.Command{
		Use:   "detect FILE...",
		Short: "Classify the container of each file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return detectHandler(args, jobs)
		},
	}

	cmd.Flags().IntVar(&jobs, "jobs", 4, "Number of files probed in parallel")
	return cmd
}

type detectRow struct {
	Path  string         `json:"file"`
	Type  core.ImageType `json:"container"`
	Alpha bool           `json:"alpha"`
	Exif  bool           `json:"exif"`
	MIME  string         `json:"mime,omitempty"`
	Err   string         `json:"error,omitempty"`
}

func detectHandler(paths []string, jobs int) error {
	rows := make([]detectRow, len(paths))

	var g errgroup.Group
	g.SetLimit(jobs)
	for i := range paths {
		i := i
		g.Go(func() error {
			rows[i] = probe(paths[i])
			return nil
		})
	}
	// Probe failures land in their row; the group itself never fails.
	_ = g.Wait()

	if flagJSON {
		b, _ := json.MarshalIndent(rows, "", "  ")
		fmt.Println(string(b))
		return nil
	}

	var data [][]string
	for _, row := range rows {
		if row.Err != "" {
			data = append(data, []string{row.Path, "error", "", "", row.Err})
			continue
		}
		data = append(data, []string{row.Path, string(row.Type), yesNo(row.Alpha), yesNo(row.Exif), row.MIME})
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"FILE", "CONTAINER", "ALPHA", "EXIF", "NOTE"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()

	return nil
}

func probe(path string) detectRow {
	row := detectRow{Path: path}

	f, err := os.Open(path)
	if err != nil {
		row.Err = err.Error()
		return row
	}
	defer f.Close()

	data, err := fileutil.ReadAll(f)
	if err != nil {
		row.Err = err.Error()
		return row
	}

	p := header.ParseBytes(data)
	row.Type = p.Type()
	row.Alpha = p.HasAlpha()
	row.Exif = len(p.ExifBlock()) > 0
	if row.Type == core.TypeUnknown {
		row.MIME = core.DescribeBytes(data)
		if hint := core.TypeForExtension(path); hint != core.TypeUnknown {
			row.MIME += fmt.Sprintf(" (extension says %s)", hint)
		}
	}
	return row
}
