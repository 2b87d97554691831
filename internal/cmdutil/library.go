package cmdutil

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"abrank-core/fasta"
	"abrank-core/library"

	"abrank/internal/appcore"
	"abrank/internal/pipeline"
	"abrank/internal/visitors"
	"abrank/internal/writers"
)

// LibraryFiles names the FASTA outputs of a generated library.
type LibraryFiles struct {
	Fv      string
	Complex string
}

// NewLibraryFiles places {prefix}_fv.fasta and {prefix}_complex.fasta in dir.
func NewLibraryFiles(dir, prefix string) LibraryFiles {
	return LibraryFiles{
		Fv:      filepath.Join(dir, prefix+"_fv.fasta"),
		Complex: filepath.Join(dir, prefix+"_complex.fasta"),
	}
}

// GenerateLibrary builds the configured variant library of t and writes its
// monomer and complex FASTA files.
func GenerateLibrary(env *appcore.Env, t library.Template, files LibraryFiles) ([]library.Variant, error) {
	opts := env.Config.LibraryOptions(t)
	vs, err := library.Generate(opts)
	if err != nil {
		return nil, err
	}
	if err := writeFASTA(env, files.Fv, library.FvRecords(vs)); err != nil {
		return nil, err
	}
	if err := writeFASTA(env, files.Complex, library.ComplexRecords(vs, opts.Template.Antigen)); err != nil {
		return nil, err
	}
	env.Log.Info("generated library",
		zap.String("template", opts.Template.Name),
		zap.Int("variants", len(vs)),
		zap.Int("mutations_per_chain", opts.MutsPerChain),
		zap.Int64("seed", opts.Seed))
	return vs, nil
}

// VariantDomains are the VH/VL pairs of generated variants, keyed by the
// monomer id.
func VariantDomains(vs []library.Variant) []library.Domains {
	out := make([]library.Domains, len(vs))
	for i, v := range vs {
		out[i] = library.Domains{ID: v.FvID(), VH: v.VH, VL: v.VL, Linker: library.Linker}
	}
	return out
}

// SplitDomains cuts every scFv record at its linker on the worker pool.
// Records that cannot be split are skipped.
func SplitDomains(ctx context.Context, env *appcore.Env, recs []fasta.Record) ([]library.Domains, error) {
	v := visitors.Domains{MinLinker: env.Config.Liability.MinLinker, Log: env.Log}
	ds, err := pipeline.Visit(ctx, env.Pipeline(), recs, v.Visit)
	if err != nil {
		return nil, err
	}
	env.Log.Info("split scFv records", zap.Int("input", len(recs)), zap.Int("valid", len(ds)))
	return ds, nil
}

// WriteMultimers writes one {id}.fasta per candidate into dir with VH, VL
// and antigen as separate records.
func WriteMultimers(env *appcore.Env, dir string, ds []library.Domains, antigen string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("multimer dir: %w", err)
	}
	for _, d := range ds {
		path := filepath.Join(dir, d.ID+".fasta")
		if err := writers.WriteFile(path, env.Stdout, func(w io.Writer) error {
			return fasta.Write(w, library.MultimerRecords(d, antigen), 0)
		}); err != nil {
			return err
		}
	}
	env.Log.Info("wrote multimer inputs", zap.String("dir", dir), zap.Int("files", len(ds)))
	return nil
}

func writeFASTA(env *appcore.Env, path string, recs []fasta.Record) error {
	if err := writers.WriteFile(path, env.Stdout, func(w io.Writer) error {
		return fasta.Write(w, recs, 0)
	}); err != nil {
		return err
	}
	env.Log.Info("wrote sequences", zap.String("path", path), zap.Int("records", len(recs)))
	return nil
}
