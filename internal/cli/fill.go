package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-fakeimage/pkg/filler"
	"github.com/goliatone/go-fakeimage/pkg/plugin"
	"github.com/goliatone/go-fakeimage/pkg/sizes"
)

func (a *app) newFillCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fill",
		Short: "Print the value a filter synthesises for an empty field",
		Long: `Run the registered filters against an empty value through an in-memory
host and print the result: markup for thumbnails, JSON for image objects and
galleries.`,
	}
	cmd.AddCommand(
		a.newFillThumbnailCommand(),
		a.newFillImageCommand(),
		a.newFillGalleryCommand(),
	)
	return cmd
}

func (a *app) newFillThumbnailCommand() *cobra.Command {
	var attrs map[string]string

	cmd := &cobra.Command{
		Use:   "thumbnail [size]",
		Short: "Print placeholder thumbnail markup",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			size := sizes.Thumbnail
			if len(args) == 1 {
				size = args[0]
			}

			h, err := a.newHost()
			if err != nil {
				return err
			}
			html, err := h.RenderThumbnail(cmd.Context(), 0, "", size, attrs)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), html)
			return err
		},
	}

	cmd.Flags().StringToStringVar(&attrs, "attr", nil, "extra <img> attribute as key=value (repeatable)")
	return cmd
}

func (a *app) newFillImageCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "image",
		Short: "Print the value of an empty image field",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			saveFormat, ok := filler.ParseSaveFormat(format)
			if !ok {
				return fmt.Errorf("unknown format %q: must be object, url, or id", format)
			}

			h, err := a.newHost()
			if err != nil {
				return err
			}
			value, err := h.FormatImageField(cmd.Context(), 0, nil, string(saveFormat))
			if err != nil {
				return err
			}
			return printValue(cmd.OutOrStdout(), value)
		},
	}

	cmd.Flags().StringVar(&format, "format", string(filler.FormatObject), "save format: object, url, or id")
	return cmd
}

func (a *app) newFillGalleryCommand() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Print the value of an empty gallery field",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var extra []plugin.Option
			if cmd.Flags().Changed("count") {
				extra = append(extra, plugin.WithGalleryCount(count))
			}

			h, err := a.newHost(extra...)
			if err != nil {
				return err
			}
			value, err := h.FormatGalleryField(cmd.Context(), 0, nil)
			if err != nil {
				return err
			}
			return printValue(cmd.OutOrStdout(), value)
		},
	}

	cmd.Flags().IntVar(&count, "count", filler.DefaultGalleryCount, "number of images (overrides gallery_count)")
	return cmd
}

func printValue(w io.Writer, value any) error {
	if s, ok := value.(string); ok {
		_, err := fmt.Fprintln(w, s)
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}
