package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"exifgraft/core"
)

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List recognised containers and their capabilities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return formatsHandler()
		},
	}
}

func formatsHandler() error {
	infos := core.Infos()

	if flagJSON {
		type jsonInfo struct {
			Container  core.ImageType `json:"container"`
			Name       string         `json:"name"`
			Extensions []string       `json:"extensions"`
			MIMETypes  []string       `json:"mimeTypes"`
			Alpha      bool           `json:"alpha"`
			Extract    bool           `json:"extract"`
			Graft      bool           `json:"graft"`
			Orient     bool           `json:"orient"`
			Notes      string         `json:"notes,omitempty"`
		}
		out := make([]jsonInfo, 0, len(infos))
		for _, info := range infos {
			out = append(out, jsonInfo{
				Container:  info.Type,
				Name:       info.Name,
				Extensions: info.Extensions,
				MIMETypes:  info.MIMETypes,
				Alpha:      info.HasAlpha,
				Extract:    info.CanExtract,
				Graft:      info.CanGraft,
				Orient:     info.CanOrient,
				Notes:      info.Notes,
			})
		}
		b, _ := json.MarshalIndent(out, "", "  ")
		fmt.Println(string(b))
		return nil
	}

	var data [][]string
	for _, info := range infos {
		data = append(data, []string{
			string(info.Type),
			info.Name,
			strings.Join(info.Extensions, " "),
			yesNo(info.HasAlpha),
			yesNo(info.CanExtract),
			yesNo(info.CanGraft),
			yesNo(info.CanOrient),
			info.Notes,
		})
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"CONTAINER", "NAME", "EXTENSIONS", "ALPHA", "EXTRACT", "GRAFT", "ORIENT", "NOTES"})
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
