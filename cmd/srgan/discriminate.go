package main

import (
	"fmt"
	"image"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/born-ml/srgan/internal/imageio"
)

func newDiscriminateCmd(flags *modelFlags) *cobra.Command {
	var size int

	cmd := &cobra.Command{
		Use:   "discriminate IMAGE...",
		Short: "Score images with the discriminator",
		Long:  "Resizes every image to the discriminator resolution and prints the probability that it is a real high-resolution image.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := flags.parseMode()
			if err != nil {
				return err
			}
			backend := flags.backend()
			d, err := flags.discriminator(size, backend)
			if err != nil {
				return err
			}

			imgs := make([]image.Image, len(args))
			for i, path := range args {
				img, err := imageio.Load(path)
				if err != nil {
					return err
				}
				imgs[i] = imageio.Resize(img, size, size)
			}

			x, err := imageio.ToTensor(imgs, imageio.Symmetric, backend)
			if err != nil {
				return err
			}
			scores, err := d.Forward(x, nil, mode)
			if err != nil {
				return err
			}

			data := make([][]string, len(args))
			for i, path := range args {
				data[i] = []string{path, fmt.Sprintf("%.4f", scores.At(i, 0))}
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"IMAGE", "SCORE"})
			table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
			table.SetAlignment(tablewriter.ALIGN_LEFT)
			table.SetAutoWrapText(false)
			table.SetHeaderLine(false)
			table.SetBorder(false)
			table.SetNoWhiteSpace(true)
			table.SetTablePadding("    ")
			table.AppendBulk(data)
			table.Render()
			return nil
		},
	}

	cmd.Flags().IntVar(&size, "size", 96, "Discriminator input resolution")
	return cmd
}
