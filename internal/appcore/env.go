// internal/appcore/env.go
package appcore

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"abrank/internal/archive"
	"abrank/internal/clibase"
	"abrank/internal/config"
	"abrank/internal/logging"
	"abrank/internal/output"
	"abrank/internal/pipeline"
	"abrank/internal/pretty"
	"abrank/internal/version"
	"abrank/internal/writers"
)

// Env is the per-run state shared by the abrank tools.
type Env struct {
	Name    string
	RunID   string
	Config  config.Config
	Common  clibase.Common
	Log     *zap.Logger
	Archive *archive.Archive // nil unless --archive/ABRANK_ARCHIVE is set

	Stdout io.Writer
	Stderr io.Writer
}

// Setup loads the layered config, lets apply copy explicitly set flags over
// it, validates the result and opens the logger and archive.
func Setup(name string, c clibase.Common, set map[string]bool, apply func(*config.Config), stdout, stderr io.Writer) (*Env, error) {
	cfg, err := config.Load(c.ConfigFile)
	if err != nil {
		return nil, err
	}
	c.Apply(set, &cfg)
	if apply != nil {
		apply(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Env{
		Name:   name,
		RunID:  uuid.New().String(),
		Config: cfg,
		Common: c,
		Stdout: stdout,
		Stderr: stderr,
	}
	e.Log = logging.New(logging.Options{
		File:    cfg.LogFile,
		Quiet:   c.Quiet,
		Verbose: c.Verbose,
		RunID:   e.RunID,
		Command: name,
	}, stderr)

	if cfg.Archive != "" {
		a, err := archive.Open(cfg.Archive)
		if err != nil {
			_ = e.Log.Sync()
			return nil, err
		}
		if err := a.StartRun(e.RunID, name, version.Version); err != nil {
			a.Close()
			_ = e.Log.Sync()
			return nil, err
		}
		e.Archive = a
	}
	e.Log.Debug("config loaded", zap.String("config", c.ConfigFile), zap.Int("threads", cfg.Threads))
	return e, nil
}

// Close flushes the logger and closes the archive.
func (e *Env) Close() {
	if e.Archive != nil {
		if err := e.Archive.Close(); err != nil {
			e.Log.Warn("close archive", zap.Error(err))
		}
	}
	_ = e.Log.Sync()
}

// Pipeline is the worker-pool setting of this run.
func (e *Env) Pipeline() pipeline.Config {
	return pipeline.Config{Threads: e.Config.Threads}
}

// Pretty is the console summary setting of this run.
func (e *Env) Pretty() pretty.Options {
	if e.Common.Quiet {
		return pretty.Options{}
	}
	return pretty.Options{Top: e.Common.Top, NoColor: e.Common.NoColor}
}

// Emit writes t to path (format empty: inferred from the extension) and
// records it in the archive under stage.
func (e *Env) Emit(path, format, stage string, t output.Table) error {
	if err := writers.WriteTableFile(path, format, e.Stdout, t); err != nil {
		return err
	}
	e.Log.Info("wrote table", zap.String("stage", stage), zap.String("path", displayPath(path)), zap.Int("rows", t.Len()))
	if e.Archive != nil {
		if err := e.Archive.SaveTable(e.RunID, stage, t); err != nil {
			return fmt.Errorf("archive %s: %w", stage, err)
		}
	}
	return nil
}

func displayPath(p string) string {
	if writers.IsStdout(p) {
		return "<stdout>"
	}
	return p
}
