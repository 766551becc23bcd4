package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ironsheep/zoom-lens-mcp/internal/lens"
	"github.com/ironsheep/zoom-lens-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("zoom-lens-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("zoom-lens-mcp - interactive image zoom lens widget server")
			fmt.Println()
			fmt.Println("Usage: zoom-lens-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  ZOOM_LENS_LOG_LEVEL=debug    Enable debug logging")
			fmt.Println("  ZOOM_LENS_STYLE=<path>       YAML style file (border, wheel step, jpeg quality)")
			fmt.Println()
			fmt.Println("This server communicates via JSON-RPC over stdin/stdout.")
			fmt.Println("The host page embeds the widget and drives it through this process.")
			return
		}
	}

	logger := newLogger()
	defer func() { _ = logger.Sync() }()

	style := lens.DefaultStyle()
	if path := os.Getenv("ZOOM_LENS_STYLE"); path != "" {
		loaded, err := lens.LoadStyle(path)
		if err != nil {
			logger.Fatalw("failed to load style", "path", path, "error", err)
		}
		style = loaded
		logger.Infow("style loaded", "path", path)
	}

	logger.Debugw("starting", "version", Version, "build_time", BuildTime, "commit", GitCommit)

	srv := server.New(style, logger)
	if err := srv.Run(); err != nil {
		logger.Fatalw("server error", "error", err)
	}
}

// newLogger builds a stderr-only logger; stdout is reserved for the
// protocol. ZOOM_LENS_LOG_LEVEL=debug enables debug output.
func newLogger() *zap.SugaredLogger {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if os.Getenv("ZOOM_LENS_LOG_LEVEL") == "debug" {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	return logger.Sugar()
}
