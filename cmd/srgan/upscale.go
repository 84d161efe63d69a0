package main

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/born-ml/srgan/internal/backend/cpu"
	"github.com/born-ml/srgan/internal/imageio"
	"github.com/born-ml/srgan/internal/srgan"
)

func newUpscaleCmd(flags *modelFlags) *cobra.Command {
	var (
		outDir string
		jobs   int
	)

	cmd := &cobra.Command{
		Use:   "upscale IMAGE...",
		Short: "Super-resolve images with the generator",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := flags.parseMode()
			if err != nil {
				return err
			}
			backend := flags.backend()
			g, err := flags.generator(backend)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return err
			}

			// Workers only record results; output is written in argument order.
			outputs := make([]string, len(args))
			eg, ctx := errgroup.WithContext(cmd.Context())
			eg.SetLimit(max(1, jobs))
			for i, path := range args {
				eg.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					out, err := upscaleFile(g, path, outDir, mode)
					if err != nil {
						return err
					}
					outputs[i] = out
					return nil
				})
			}
			if err := eg.Wait(); err != nil {
				return err
			}

			for i, path := range args {
				fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", path, outputs[i])
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "output", "o", ".", "Output directory")
	cmd.Flags().IntVar(&jobs, "jobs", 2, "Images processed concurrently")
	return cmd
}

// upscaleFile runs one image through g and writes <name>_x<scale>.png.
func upscaleFile(g *srgan.Generator[*cpu.CPUBackend], path, outDir string, mode srgan.Mode) (string, error) {
	img, err := imageio.Load(path)
	if err != nil {
		return "", err
	}
	cropped, err := imageio.CropToMultiple(img, g.Scale())
	if err != nil {
		return "", errors.Wrap(err, path)
	}

	x, err := imageio.ToTensor([]image.Image{cropped}, imageio.Symmetric, g.Backend())
	if err != nil {
		return "", err
	}
	slog.Debug("srgan: upscaling", "path", path, "shape", x.Shape())

	y, err := g.Forward(srgan.TensorInput(x), mode)
	if err != nil {
		return "", errors.Wrap(err, path)
	}
	imgs, err := imageio.FromTensor(y, imageio.Symmetric)
	if err != nil {
		return "", err
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	out := filepath.Join(outDir, fmt.Sprintf("%s_x%d.png", name, g.Scale()))
	if err := imageio.Save(out, imgs[0]); err != nil {
		return "", err
	}
	return out, nil
}
