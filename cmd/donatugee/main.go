// Command donatugee issues single backend operations or runs the onboarding
// smoke scenario.
//
// Usage:
//
//	donatugee [global flags] <operation> [flags]
//	donatugee [global flags] smoke [flags]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/okian/donatugee/internal/config"
	"github.com/okian/donatugee/internal/scenario"
	"github.com/okian/donatugee/pkg/donatugee"
	"github.com/okian/donatugee/pkg/logger"
)

const smokeTimeout = 5 * time.Minute

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run parses args and executes one command. It returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintln(stderr, "failed to load config:", err)
		return 2
	}

	global := flag.NewFlagSet("donatugee", flag.ContinueOnError)
	global.SetOutput(stderr)
	global.StringVar(&cfg.BaseURL, "url", cfg.BaseURL, "backend base URL")
	global.StringVar(&cfg.FillerTextURL, "filler-url", cfg.FillerTextURL, "filler-text URL prefix")
	global.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "per-request timeout, 0 for none")
	global.StringVar(&cfg.UserAgent, "user-agent", cfg.UserAgent, "User-Agent header")
	global.BoolVar(&cfg.RequestIDs, "request-ids", cfg.RequestIDs, "send X-Request-Id headers")
	global.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	global.Usage = func() { usage(global) }
	if err := global.Parse(args); err != nil {
		return 2
	}
	if err := config.Validate(ctx, cfg); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	// Logs go to stderr so stdout carries only response bodies.
	if err := logger.InitWithWriter(stderr, cfg.LogFormat); err != nil {
		fmt.Fprintln(stderr, "failed to initialize logging:", err)
		return 2
	}
	_ = logger.SetLevelString(cfg.LogLevel)
	log := logger.Named("cli")

	client, err := donatugee.New(cfg.BaseURL,
		donatugee.WithFillerTextURL(cfg.FillerTextURL),
		donatugee.WithTimeout(cfg.Timeout),
		donatugee.WithUserAgent(cfg.UserAgent),
		donatugee.WithRequestIDs(cfg.RequestIDs),
		donatugee.WithLogger(log),
	)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	rest := global.Args()
	if len(rest) == 0 {
		global.Usage()
		return 2
	}
	if rest[0] == "smoke" {
		return smoke(ctx, client, rest[1:], stderr, log)
	}

	cmd, ok := lookup(rest[0])
	if !ok {
		fmt.Fprintf(stderr, "unknown operation %q\n", rest[0])
		global.Usage()
		return 2
	}
	fs := flag.NewFlagSet(cmd.name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	do := cmd.bind(fs)
	if err := fs.Parse(rest[1:]); err != nil {
		return 2
	}

	res := do(ctx, client)
	return printResult(res, stdout, stderr)
}

// printResult writes the status line to stderr and the body to stdout.
func printResult(res donatugee.Result, stdout, stderr io.Writer) int {
	if res.Outcome == donatugee.OutcomeTransportFailure {
		fmt.Fprintf(stderr, "%s: %v\n", res.Operation, res.Error())
		return 1
	}
	fmt.Fprintf(stderr, "%s: %s\n", res.Operation, res.Response.Status)
	_, _ = stdout.Write(res.Body())
	if len(res.Body()) > 0 && res.Body()[len(res.Body())-1] != '\n' {
		fmt.Fprintln(stdout)
	}
	if !res.OK() {
		return 1
	}
	return 0
}

func smoke(ctx context.Context, client *donatugee.Client, args []string, stderr io.Writer, log logger.Logger) int {
	cfg := scenario.DefaultConfig()
	fs := flag.NewFlagSet("smoke", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&cfg.Challenges, "challenges", cfg.Challenges, "challenges to post")
	fs.IntVar(&cfg.Techfugees, "techfugees", cfg.Techfugees, "techfugees to onboard")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "concurrent workers")
	fs.BoolVar(&cfg.FillerText, "filler", cfg.FillerText, "use filler text for introductions")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "log every step")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	ctx, cancel := context.WithTimeout(ctx, smokeTimeout)
	defer cancel()
	if _, err := scenario.NewRunner(client, cfg, log.Named("smoke")).Run(ctx); err != nil {
		if errors.Is(err, scenario.ErrInvalidConfig) {
			fmt.Fprintln(stderr, err)
			return 2
		}
		return 1
	}
	return 0
}

func usage(global *flag.FlagSet) {
	out := global.Output()
	fmt.Fprintln(out, "usage: donatugee [global flags] <operation> [flags]")
	fmt.Fprintln(out, "\nglobal flags:")
	global.PrintDefaults()
	fmt.Fprintln(out, "\noperations:")
	for _, c := range commands {
		fmt.Fprintf(out, "  %-26s %s\n", c.name, c.summary)
	}
	fmt.Fprintf(out, "  %-26s %s\n", "smoke", "run the onboarding scenario")
}
