package main

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/born-ml/srgan/internal/srgan"
)

func newSummaryCmd(flags *modelFlags) *cobra.Command {
	var size int

	cmd := &cobra.Command{
		Use:       "summary generator|discriminator",
		Short:     "Print the layers of a network",
		Long:      "Prints each stage of a network with its output shape and parameter count. --size is the low-resolution input size for the generator and the image size for the discriminator.",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"generator", "discriminator"},
		RunE: func(cmd *cobra.Command, args []string) error {
			backend := flags.backend()

			var rows []srgan.LayerSummary
			switch args[0] {
			case "generator":
				g, err := flags.generator(backend)
				if err != nil {
					return err
				}
				if size <= 0 {
					size = 24
				}
				if rows, err = g.Summary(size, size); err != nil {
					return err
				}
			case "discriminator":
				if size <= 0 {
					size = 96
				}
				d, err := flags.discriminator(size, backend)
				if err != nil {
					return err
				}
				if rows, err = d.Summary(); err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown network %q, want generator or discriminator", args[0])
			}

			renderSummary(cmd.OutOrStdout(), rows)
			return nil
		},
	}

	cmd.Flags().IntVar(&size, "size", 0, "Input resolution (default 24 for the generator, 96 for the discriminator)")
	return cmd
}

func renderSummary(w io.Writer, rows []srgan.LayerSummary) {
	data := make([][]string, 0, len(rows))
	for _, r := range rows {
		data = append(data, []string{r.Name, r.Layer, formatShape(r.OutputShape), fmt.Sprint(r.Params)})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"STAGE", "LAYERS", "OUTPUT SHAPE", "PARAMS"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()

	total, trainable := srgan.TotalParams(rows)
	fmt.Fprintf(w, "\nTotal params: %d\nTrainable params: %d\nNon-trainable params: %d\n", total, trainable, total-trainable)
}
