package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/okian/pundit/internal/snapcheck"
	"github.com/okian/pundit/pkg/logger"
)

// Default configuration constants.
const (
	defaultTimeout    = 30 * time.Second
	defaultRunTimeout = 2 * time.Minute
)

func main() {
	var (
		path        = flag.String("file", "", "Local CSV file to check")
		url         = flag.String("url", "", "Remote CSV endpoint to check")
		timeout     = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		predictions = flag.Bool("predictions", false, "Treat the input as the open-predictions sheet")
		verbose     = flag.Bool("verbose", false, "Print per-field binding detail")
		help        = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		snapcheck.ShowHelp()
		return
	}

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	config := &snapcheck.Config{
		Path:        *path,
		URL:         *url,
		Timeout:     *timeout,
		Predictions: *predictions,
		Verbose:     *verbose,
	}

	if err := snapcheck.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Check failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
