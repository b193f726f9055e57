package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"exifgraft/core"
	"exifgraft/core/header"
)

func newOrientCmd() *cobra.Command {
	var showName bool

	cmd := &cobra.Command{
		Use:   "orient FILE...",
		Short: "Print EXIF orientation values",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return orientHandler(args, showName)
		},
	}

	cmd.Flags().BoolVar(&showName, "name", false, "Add the display name after the raw value")
	return cmd
}

func orientHandler(paths []string, showName bool) error {
	type entry struct {
		File        string `json:"file"`
		Orientation int    `json:"orientation"`
		Name        string `json:"name,omitempty"`
	}

	var entries []entry
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		p := header.Parse(f)
		f.Close()

		v := p.Orientation()
		entries = append(entries, entry{File: path, Orientation: v, Name: core.OrientationName(v)})
	}

	if flagJSON {
		b, _ := json.MarshalIndent(entries, "", "  ")
		fmt.Println(string(b))
		return nil
	}

	for _, e := range entries {
		line := fmt.Sprintf("%d", e.Orientation)
		if showName && e.Name != "" {
			line += " (" + e.Name + ")"
		}
		if len(entries) > 1 {
			line = e.File + ": " + line
		}
		fmt.Println(line)
	}
	return nil
}
