/*
 * MIT License
 *
 * Copyright (c) 2025 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

// Package cli is the standard entry point of a standalone plugin binary.
// It exposes one subcommand:
//
//	<plugin> connect <address> [-v|-vv|...] [--tcp] [--config file]
//
// where <address> is a unix socket path (or host:port with --tcp). The
// process exits 0 on clean shutdown and 1 on connection or bootstrap
// failure. Repeating -v raises the log level from error up to debug with
// call tracing.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	liblog "github.com/nabbar/golib/logger"
	logcfg "github.com/nabbar/golib/logger/config"
	loglvl "github.com/nabbar/golib/logger/level"
	spfcbr "github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/nabbar/nvigo/plugin"
)

// New builds the root command of a standalone plugin binary.
func New(p plugin.Plugin) *spfcbr.Command {
	var (
		vrb int
		tcp bool
		cfg string
	)

	root := &spfcbr.Command{
		Use:           p.Name(),
		Short:         fmt.Sprintf("%s editor plugin", p.Name()),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cnt := &spfcbr.Command{
		Use:   "connect <address>",
		Short: "connect to the editor and serve until shutdown",
		Args:  spfcbr.ExactArgs(1),
		RunE: func(cmd *spfcbr.Command, args []string) error {
			return runConnect(cmd.Context(), p, args[0], vrb, tcp, cfg)
		},
	}

	cnt.Flags().CountVarP(&vrb, "verbose", "v", "increase log verbosity (repeatable)")
	cnt.Flags().BoolVar(&tcp, "tcp", false, "treat <address> as a tcp host:port")
	cnt.Flags().StringVar(&cfg, "config", "", "optional config file")

	root.AddCommand(cnt)

	return root
}

// Run executes the standard entry point and exits the process: 0 on clean
// shutdown, 1 on connection or bootstrap failure.
func Run(p plugin.Plugin) {
	if p == nil {
		fmt.Fprintln(os.Stderr, "error:", ErrorParamEmpty.Error(nil).Error())
		os.Exit(1)
	}

	if err := New(p).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err.Error())
		os.Exit(1)
	}

	os.Exit(0)
}

func runConnect(ctx context.Context, p plugin.Plugin, addr string, vrb int, tcp bool, cfgPath string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}

	log := newLogger(vrb, cfg.Log)
	defer func() {
		_ = log.Close()
	}()

	if ctx == nil {
		ctx = context.Background()
	}

	ctx, cnl := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cnl()

	grp, gtx := errgroup.WithContext(ctx)

	grp.Go(func() error {
		if e := plugin.Connect(gtx, cfg.rpcConfig(addr, tcp), p, func() liblog.Logger { return log }); e != nil {
			return e
		}
		return nil
	})

	return grp.Wait()
}

// newLogger maps the verbosity count onto the logger levels and applies
// the optional file-provided sink options.
func newLogger(vrb int, opt *logcfg.Options) liblog.Logger {
	log := liblog.New(nil)

	switch {
	case vrb <= 0:
		log.SetLevel(loglvl.ErrorLevel)
	case vrb == 1:
		log.SetLevel(loglvl.WarnLevel)
	case vrb == 2:
		log.SetLevel(loglvl.InfoLevel)
	default:
		log.SetLevel(loglvl.DebugLevel)
	}

	if opt == nil {
		opt = &logcfg.Options{
			Stdout: &logcfg.OptionsStd{
				DisableTimestamp: true,
				EnableTrace:      vrb >= 4,
			},
		}
	}

	if err := log.SetOptions(opt); err != nil {
		log.Error("cannot apply logger options", nil, err)
	}

	return log
}
