package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/born-ml/srgan/internal/backend/cpu"
	"github.com/born-ml/srgan/internal/envconfig"
	"github.com/born-ml/srgan/internal/srgan"
	"github.com/born-ml/srgan/internal/tensor"
)

const version = "v0.1.0"

// modelFlags are shared by every command that builds a network.
type modelFlags struct {
	filters      int
	resBlocks    int
	seed         int64
	mode         string
	strictParity bool
	threads      int
}

func (f *modelFlags) register(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.IntVar(&f.filters, "filters", 64, "Number of convolution filters")
	flags.IntVar(&f.resBlocks, "res-blocks", 16, "Number of generator residual blocks")
	flags.Int64Var(&f.seed, "seed", envconfig.Seed(), "Weight initialisation seed (SRGAN_SEED)")
	flags.StringVar(&f.mode, "mode", "predict", "Network mode: train, eval or predict")
	flags.BoolVar(&f.strictParity, "strict-parity", false, "Keep batch normalisation in inference mode for every mode")
	flags.IntVar(&f.threads, "threads", int(envconfig.NumThreads()), "CPU kernel goroutines (SRGAN_NUM_THREADS)")
}

func (f *modelFlags) backend() *cpu.CPUBackend {
	return cpu.New(cpu.WithThreads(f.threads))
}

func (f *modelFlags) parseMode() (srgan.Mode, error) {
	return srgan.ParseMode(f.mode)
}

func (f *modelFlags) generator(backend *cpu.CPUBackend) (*srgan.Generator[*cpu.CPUBackend], error) {
	cfg := srgan.DefaultGeneratorConfig()
	cfg.NumFilters = f.filters
	cfg.NumResBlocks = f.resBlocks
	cfg.Seed = f.seed
	cfg.StrictParity = f.strictParity
	return srgan.NewGenerator(cfg, backend)
}

func (f *modelFlags) discriminator(size int, backend *cpu.CPUBackend) (*srgan.Discriminator[*cpu.CPUBackend], error) {
	cfg := srgan.DefaultDiscriminatorConfig()
	cfg.NumFilters = f.filters
	cfg.InputHeight = size
	cfg.InputWidth = size
	cfg.Seed = f.seed + 1
	cfg.StrictParity = f.strictParity
	return srgan.NewDiscriminator(cfg, backend)
}

// NewCLI builds the srgan command tree.
func NewCLI() *cobra.Command {
	cobra.EnableCommandSorting = false

	var flags modelFlags

	rootCmd := &cobra.Command{
		Use:           "srgan",
		Short:         "Super-resolution GAN networks",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: envconfig.LogLevel()})))
			slog.Debug("srgan: environment", "config", envconfig.Values())
		},
	}
	flags.register(rootCmd)

	rootCmd.AddCommand(
		newUpscaleCmd(&flags),
		newDiscriminateCmd(&flags),
		newSummaryCmd(&flags),
		newVersionCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "srgan version %s\n", version)
		},
	}
}

// formatShape renders a shape with an unknown batch dimension.
func formatShape(shape tensor.Shape) string {
	parts := make([]string, len(shape))
	for i, d := range shape {
		if i == 0 {
			parts[i] = "None"
			continue
		}
		parts[i] = fmt.Sprint(d)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
