// internal/integration/fixtures_test.go
package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"abrank-core/fasta"

	"abrank/internal/libraryapp"
)

const relaxedConfig = `
filters:
  min_solubility: 0
  max_nglyco: 100
`

type fixture struct {
	dir     string
	fv      string // library scFv FASTA
	af2Dir  string
	dockDir string
	config  string
	ids     []string
}

func write(t *testing.T, path, data string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func writeJSON(t *testing.T, path string, v any) {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	write(t, path, string(b))
}

func pdbCA(serial int, chain string, resSeq int) string {
	return fmt.Sprintf("ATOM  %5d %-4s ALA %1s%4d    %8.3f%8.3f%8.3f  1.00 90.00           C",
		serial, "CA", chain, resSeq, 0.0, 0.0, 0.0)
}

// newFixture generates a seeded library and fake prediction outputs for
// every variant: monomer scores under af2/ and three-chain complexes
// (2 residues each) under dock/.
func newFixture(t *testing.T, count int) fixture {
	t.Helper()
	dir := t.TempDir()
	f := fixture{
		dir:     dir,
		af2Dir:  filepath.Join(dir, "af2"),
		dockDir: filepath.Join(dir, "dock"),
		config:  write(t, filepath.Join(dir, "abrank.yaml"), relaxedConfig),
	}

	code, _, stderr := run(t, libraryapp.RunContext,
		"--count", fmt.Sprint(count), "--seed", "7", "--outdir", dir,
		"-o", filepath.Join(dir, "variants.csv"), "-q")
	require.Equal(t, 0, code, stderr)
	f.fv = filepath.Join(dir, "tezepelumab_lib_fv.fasta")

	recs, err := fasta.ReadFileCtx(context.Background(), f.fv)
	require.NoError(t, err)
	require.Len(t, recs, count)

	pdb := strings.Join([]string{
		pdbCA(1, "A", 1), pdbCA(2, "A", 2),
		pdbCA(3, "B", 1), pdbCA(4, "B", 2),
		pdbCA(5, "C", 1), pdbCA(6, "C", 2),
	}, "\n") + "\n"

	for k, r := range recs {
		f.ids = append(f.ids, r.ID)

		plddt := make([]float64, len(r.Seq))
		for i := range plddt {
			plddt[i] = 90 + float64(k%5)
		}
		writeJSON(t, filepath.Join(f.af2Dir, r.ID+"_scores_rank_001_alphafold2_ptm_model_1_seed_000.json"),
			map[string]any{"plddt": plddt, "ptm": 0.8, "max_pae": 20.0})

		cid := strings.TrimSuffix(r.ID, "_fv") + "_complex"
		pae := make([][]float64, 6)
		for i := range pae {
			pae[i] = make([]float64, 6)
			for j := range pae[i] {
				pae[i][j] = 4 + float64(k)
			}
		}
		writeJSON(t, filepath.Join(f.dockDir, cid+"_scores_rank_001_alphafold2_multimer_v3_model_1_seed_000.json"),
			map[string]any{"plddt": []float64{85, 86, 87}, "ptm": 0.7, "iptm": 0.3 + 0.1*float64(k%5), "pae": pae})
		write(t, filepath.Join(f.dockDir, cid+"_unrelaxed_rank_001_alphafold2_multimer_v3_model_1_seed_000.pdb"), pdb)
	}
	return f
}

func (f fixture) path(name string) string { return filepath.Join(f.dir, name) }
