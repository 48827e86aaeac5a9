// seehuhn.de/go/psgen - a library for writing images as PostScript forms
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/term"
)

var errTerminal = errors.New("refusing to write PostScript code to a terminal")

// reportedError marks errors which have already been logged.
type reportedError struct {
	error
}

func (e *reportedError) Unwrap() error {
	return e.error
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:           "img2psform [flags] input [output]",
		Short:         "Convert an image file into a PostScript form resource",
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v, cmd)
			if err != nil {
				return err
			}
			log, err := newLogger(cfg.Verbose)
			if err != nil {
				return err
			}
			defer log.Sync()

			err = run(cmd.OutOrStdout(), cfg, args, log)
			if err != nil {
				log.Error("conversion failed", zap.Error(err))
				return &reportedError{err}
			}
			return nil
		},
	}
	addConfigFlags(cmd)
	cmd.AddCommand(newConfigCmd(v))
	return cmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.DisableStacktrace = true
	return cfg.Build()
}

// run converts the image file args[0].  The output is written to args[1],
// if given, and to stdout otherwise.
func run(stdout io.Writer, cfg *Config, args []string, log *zap.Logger) (err error) {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	src, size, err := loadSource(data, cfg, log)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	out := stdout
	if len(args) > 1 {
		f, createErr := os.Create(args[1])
		if createErr != nil {
			return createErr
		}
		defer func() {
			closeErr := f.Close()
			if err == nil {
				err = closeErr
			}
		}()
		out = f
	} else if f, ok := stdout.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return errTerminal
	}

	w := bufio.NewWriter(out)
	err = writeOutput(w, cfg, src, formSize(cfg, size.X, size.Y), log)
	if err != nil {
		return err
	}
	return w.Flush()
}
