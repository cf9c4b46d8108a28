// SPDX-License-Identifier: MIT

// Command kmatrix prints the default camera intrinsic matrix K.
//
// Usage:
//
//	kmatrix [--config page.yaml] [--focal-length F] [--format text|yaml] [-v]
//
// Settings resolve in order: built-in defaults, then the YAML config file,
// then --focal-length when given explicitly.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pagedewarp/intrinsics"
	"github.com/katalvlaran/pagedewarp/options"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

// errUnknownFormat is returned for an unsupported --format value.
var errUnknownFormat = errors.New("kmatrix: unknown output format")

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	if err := run(os.Args[1:], os.Stdout, log); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.WithError(err).Error("kmatrix failed")
		os.Exit(1)
	}
}

// run parses args, resolves the configuration and writes K to out.
func run(args []string, out io.Writer, log *logrus.Logger) error {
	fs := pflag.NewFlagSet("kmatrix", pflag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	configPath := fs.StringP("config", "c", "", "YAML configuration file (reads FOCAL_LENGTH)")
	focal := fs.Float32P("focal-length", "f", options.DefaultFocalLength, "focal length override")
	format := fs.String("format", formatText, "output format: text or yaml")
	verbose := fs.BoolP("verbose", "v", false, "enable debug logging")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	cfg := options.Default()
	if *configPath != "" {
		loaded, err := options.LoadFile(*configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
		log.WithField("path", *configPath).
			WithField(options.KeyFocalLength, cfg.FocalLength).
			Debug("configuration loaded")
	}
	if fs.Changed("focal-length") {
		cfg.FocalLength = *focal
		log.WithField(options.KeyFocalLength, cfg.FocalLength).Debug("focal length overridden by flag")
	}

	k := intrinsics.K(cfg)
	log.WithField("intrinsic", k.IsIntrinsic()).Debug("matrix built")

	return write(out, k, *format)
}

// write renders k in the requested format.
func write(out io.Writer, k intrinsics.Matrix, format string) error {
	switch format {
	case formatText:
		_, err := fmt.Fprint(out, k)
		return err
	case formatYAML:
		enc := yaml.NewEncoder(out)
		if err := enc.Encode(map[string]intrinsics.Matrix{"K": k}); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%q: %w", format, errUnknownFormat)
	}
}
