// internal/runsapp/app.go
package runsapp

import (
	"context"
	"fmt"
	"io"

	"abrank/internal/appcore"
	"abrank/internal/archive"
	"abrank/internal/cliutil"
	"abrank/internal/config"
	"abrank/internal/output"
	"abrank/internal/runscli"
	"abrank/internal/writers"
	"abrank/pkg/api"
)

const name = "abrank-runs"

var errNoArchive = fmt.Errorf("%w: no archive, set --archive or ABRANK_ARCHIVE", config.ErrInvalid)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := runscli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	opts, err := runscli.ParseArgs(fs, argv)
	if err != nil {
		if opts.Examples {
			runscli.PrintExamples(stdout, name)
		}
		return appcore.ParseFailed(fs, err, stdout, stderr)
	}
	if opts.Version {
		return appcore.PrintVersion(stdout, name)
	}

	// Listing must not record a run of its own, so Setup gets no archive.
	var path string
	env, err := appcore.Setup(name, opts.Common, opts.Set(), func(cfg *config.Config) {
		path, cfg.Archive = cfg.Archive, ""
	}, stdout, stderr)
	if err != nil {
		return appcore.Finish(stderr, err)
	}
	defer env.Close()
	return appcore.Finish(stderr, run(parent, env, opts, path))
}

func run(ctx context.Context, env *appcore.Env, opts runscli.Options, path string) error {
	if path == "" {
		return errNoArchive
	}
	if err := cliutil.CheckInputs(false, path); err != nil {
		return err
	}
	a, err := archive.Open(path)
	if err != nil {
		return err
	}
	defer a.Close()
	if err := ctx.Err(); err != nil {
		return err
	}

	if opts.Run != "" {
		t, err := a.LoadTable(opts.Run, opts.Stage)
		if err != nil {
			return err
		}
		return writers.WriteTableFile(opts.Out, opts.Format, env.Stdout, t)
	}

	runs, err := a.Runs()
	if err != nil {
		return err
	}
	rs := make([]api.RunV1, 0, len(runs))
	for _, r := range runs {
		rs = append(rs, api.RunV1{ID: r.ID, Command: r.Command, Version: r.Version, CreatedAt: r.CreatedAt, Stages: r.Stages})
	}
	if err := writers.WriteTableFile(opts.Out, opts.Format, env.Stdout, output.RunsTable(rs)); err != nil {
		return err
	}
	if len(rs) == 0 {
		return appcore.ErrNoResults
	}
	return nil
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
