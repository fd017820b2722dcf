package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/esimov/carve"
	"github.com/esimov/carve/utils"
	"github.com/spf13/cobra"
)

const helpBanner = `
┌─┐┌─┐┬─┐┬  ┬┌─┐
│  ├─┤├┬┘└┐┌┘├┤
└─┘┴ ┴┴└─ └┘ └─┘

Content aware image narrowing.
    Version: %s
`

// pipeName is the file name that indicates stdin/stdout is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version = "dev"

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// newLogger creates a logger writing to w with "HH:MM:SS.ms" timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          "carve",
	})
}

func newRootCmd() *cobra.Command {
	var (
		cfg        = carve.DefaultConfig()
		configPath string
		mark       bool
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:          "carve",
		Short:        "Narrow images by removing their least important vertical seams",
		Long:         fmt.Sprintf(helpBanner, Version),
		Version:      Version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			logger := newLogger(os.Stderr, level)

			if configPath != "" {
				fileCfg, err := carve.LoadConfig(configPath)
				if err != nil {
					logger.Error("invalid configuration", "err", err)
					return err
				}
				cfg = mergeFlags(cmd, fileCfg, cfg)
			}
			if cmd.Flags().Changed("mark") {
				cfg.Mode = carve.ModeRemove.String()
				if mark {
					cfg.Mode = carve.ModeMark.String()
				}
			}
			return run(cmd.Context(), cfg, logger)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfg.Source, "in", cfg.Source, "source image, directory or URL (- for stdin)")
	flags.StringVar(&cfg.Destination, "out", cfg.Destination, "destination image or directory (- for stdout)")
	flags.IntVarP(&cfg.Seams, "seams", "n", cfg.Seams, "number of vertical seams to carve")
	flags.BoolVar(&mark, "mark", false, "mark the seams instead of removing them")
	flags.StringVar(&cfg.SeamColor, "color", cfg.SeamColor, "seam color used with --mark")
	flags.StringVar(&cfg.Window, "window", cfg.Window, "seam neighbourhood window: symmetric or legacy")
	flags.IntVar(&cfg.SobelThreshold, "sobel", cfg.SobelThreshold, "sobel filter threshold")
	flags.IntVar(&cfg.BlurRadius, "blur", cfg.BlurRadius, "blur radius applied before edge detection")
	flags.BoolVar(&cfg.Preview, "preview", cfg.Preview, "show the result in the terminal")
	flags.IntVar(&cfg.Workers, "conc", runtime.NumCPU(), "number of files to process concurrently")
	flags.StringVarP(&configPath, "config", "c", "", "TOML configuration file")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	return cmd
}

// mergeFlags returns the file configuration overridden by every flag set on the command line.
func mergeFlags(cmd *cobra.Command, file, flags carve.Config) carve.Config {
	changed := cmd.Flags().Changed
	if changed("in") {
		file.Source = flags.Source
	}
	if changed("out") {
		file.Destination = flags.Destination
	}
	if changed("seams") {
		file.Seams = flags.Seams
	}
	if changed("color") {
		file.SeamColor = flags.SeamColor
	}
	if changed("window") {
		file.Window = flags.Window
	}
	if changed("sobel") {
		file.SobelThreshold = flags.SobelThreshold
	}
	if changed("blur") {
		file.BlurRadius = flags.BlurRadius
	}
	if changed("preview") {
		file.Preview = flags.Preview
	}
	if changed("conc") || file.Workers == 0 {
		file.Workers = flags.Workers
	}
	return file
}

func run(ctx context.Context, cfg carve.Config, logger *log.Logger) error {
	proc, err := cfg.Processor(logger)
	if err != nil {
		logger.Error("invalid configuration", "err", err)
		return err
	}

	spinner := utils.NewSpinner(fmt.Sprintf("%s %s",
		utils.DecorateText("⚡ CARVE", utils.StatusMessage),
		utils.DecorateText("⇢ carving image (be patient, it may take a while)...", utils.DefaultMessage),
	), 80*time.Millisecond)

	// Restore the cursor visibility when interrupted.
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		spinner.RestoreCursor()
	}()

	op := &carve.Ops{
		Src:      cfg.Source,
		Dst:      cfg.Destination,
		PipeName: pipeName,
		Workers:  cfg.Workers,
		Preview:  cfg.Preview,
		Logger:   logger,
	}
	if cfg.Destination != pipeName {
		op.Spinner = spinner
	}

	now := time.Now()
	if err := op.Execute(ctx, proc); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n\t%s\n",
			utils.DecorateText("Error carving the image ✘", utils.ErrorMessage),
			utils.DecorateText(fmt.Sprintf("Reason: %v", err), utils.DefaultMessage),
		)
		return err
	}

	if cfg.Destination != pipeName {
		fmt.Fprintf(os.Stderr, "The image has been saved as: %s\n",
			utils.DecorateText(cfg.Destination, utils.SuccessMessage))
	}
	fmt.Fprintf(os.Stderr, "Execution time: %s\n",
		utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
	return nil
}
