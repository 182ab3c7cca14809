package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-fsum/fsum"
	"github.com/cwbudde/algo-fsum/internal/config"
	"github.com/cwbudde/algo-fsum/internal/input"
)

const stdinName = "<stdin>"

// resolveConfig merges the config file, if any, with the flags. Flags win.
func resolveConfig(cli *CLI) (*config.Config, error) {
	cfg := config.Default()
	if cli.Config != "" {
		var err error
		cfg, err = config.LoadFromYAMLFile(cli.Config)
		if err != nil {
			return nil, err
		}
	}

	if cli.Mode != "" {
		cfg.Mode = config.Mode(cli.Mode)
	}
	if cli.Format != "" {
		cfg.Format = config.Format(cli.Format)
	}
	if cli.LogLevel != "" {
		cfg.LogLevel = cli.LogLevel
	}
	if cli.Naive != nil {
		cfg.Naive = *cli.Naive
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	return cfg, nil
}

func mainCore(cli *CLI, stdin io.Reader, stdout io.Writer) error {
	cfg, err := resolveConfig(cli)
	if err != nil {
		return err
	}

	logLevel, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("value of log level must be case-insensitive equal to one of trace, debug, info, warning, error, panic "+
			"and fatal but got %#v", cfg.LogLevel)
	}
	log.SetLevel(logLevel)

	values, positions, err := readInputs(cli.Files, stdin)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"count": len(values),
		"mode":  cfg.Mode,
	}).Debug("read input")

	sum, err := sumValues(cfg.Mode, values, positions)
	if err != nil {
		return err
	}

	if log.IsLevelEnabled(log.DebugLevel) {
		logExpansion(values)
	}

	if !cfg.Naive {
		_, err = fmt.Fprintln(stdout, formatFloat(sum, cfg.Format))
		return err
	}

	naive := 0.0
	for _, v := range values {
		naive += v
	}
	_, err = fmt.Fprintf(stdout, "sum\t%s\nnaive\t%s\n", formatFloat(sum, cfg.Format), formatFloat(naive, cfg.Format))

	return err
}

func sumValues(mode config.Mode, values []float64, positions []input.Position) (float64, error) {
	switch mode {
	case config.ModeIEEE:
		return fsum.SumIEEE(values), nil
	case config.ModeCore:
		return fsum.Sum(values), nil
	}

	sum, err := fsum.SumChecked(values)
	var ie *fsum.InputError
	if errors.As(err, &ie) {
		return 0, fmt.Errorf("%s: %w", positions[ie.Index], err)
	}

	return sum, err
}

// logExpansion reports the shape of the exact expansion of the finite values.
func logExpansion(values []float64) {
	acc := fsum.NewAccumulator()
	for _, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			acc.Add(v)
		}
	}

	log.WithFields(log.Fields{
		"partials": acc.Len(),
		"overflow": acc.Overflow(),
	}).Debug("exact expansion")
}

func readInputs(files []string, stdin io.Reader) ([]float64, []input.Position, error) {
	if len(files) == 0 {
		files = []string{"-"}
	}

	var (
		values    []float64
		positions []input.Position
	)

	for _, file := range files {
		r, name, closeFn, err := openInput(file, stdin)
		if err != nil {
			return nil, nil, err
		}

		vals, err := input.ReadAll(r, name)
		closeFn()
		if err != nil {
			return nil, nil, err
		}

		for _, v := range vals {
			values = append(values, v.Float)
			positions = append(positions, v.Pos)
		}

		log.WithField("file", name).Trace("consumed input")
	}

	return values, positions, nil
}

func openInput(file string, stdin io.Reader) (io.Reader, string, func(), error) {
	if file == "-" {
		return stdin, stdinName, func() {}, nil
	}

	fd, err := os.Open(file)
	if err != nil {
		return nil, "", nil, err
	}

	return fd, file, func() { _ = fd.Close() }, nil
}

func formatFloat(v float64, format config.Format) string {
	return strconv.FormatFloat(v, format[0], -1, 64)
}
