package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-fakeimage/pkg/sizes"
)

type sizeRow struct {
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Ref    string `json:"ref"`
}

func (a *app) newSizesCommand() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "sizes",
		Short: "List known sizes and their references",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			builder, err := a.newBuilder()
			if err != nil {
				return err
			}

			all := sizes.ResolveAll(a.registry)
			names := sizes.Names(a.registry)
			rows := make([]sizeRow, 0, len(names))
			for _, name := range names {
				dims := all[name]
				rows = append(rows, sizeRow{
					Name:   name,
					Width:  dims.Width,
					Height: dims.Height,
					Ref:    builder.BuildDimensions(dims),
				})
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(rows)
			}

			cells := make([][]string, 0, len(rows))
			for _, row := range rows {
				dims := all[row.Name]
				cells = append(cells, []string{row.Name, dims.WidthString(), dims.HeightString(), row.Ref})
			}
			return renderTable(cmd.OutOrStdout(), []string{"name", "width", "height", "ref"}, cells)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	return cmd
}
