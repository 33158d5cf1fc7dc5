package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-fakeimage/pkg/sizes"
)

func (a *app) newRefCommand() *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "ref [size]",
		Short: "Print the placeholder reference for a size",
		Long: `Resolve a named size against the registry and print its placeholder
reference. Unknown sizes print a degraded reference with empty dimensions.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			builder, err := a.newBuilder()
			if err != nil {
				return err
			}

			var size sizes.Name
			switch {
			case len(args) == 1:
				size = args[0]
			case interactive:
				size, err = a.pickSize(cmd)
				if err != nil {
					return err
				}
			default:
				return errors.New("size is required (or use --interactive)")
			}

			ref := builder.BuildSize(size, a.registry)
			a.logger.Debug("resolved size", "size", size, "ref", ref)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), ref)
			return err
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "pick the size from a list")
	return cmd
}

func (a *app) pickSize(cmd *cobra.Command) (sizes.Name, error) {
	names := sizes.Names(a.registry)
	idx, err := a.prompter.Select(cmd.Context(), SelectConfig{
		Message: "Image size",
		Options: names,
		Help:    "Built-in sizes first, then custom sizes in name order",
	})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(names) {
		return "", fmt.Errorf("no size selected")
	}
	return names[idx], nil
}
