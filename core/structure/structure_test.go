package structure

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegionConfidenceShort(t *testing.T) {
	p := []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}
	c, ok := RegionConfidence(p)
	require.True(t, ok)
	assert.InDelta(t, 55.0, c.Mean, 1e-9)
	assert.InDelta(t, 55.0, c.FW, 1e-9)
	// p[3:7]
	assert.InDelta(t, 55.0, c.CDR, 1e-9)
	assert.Equal(t, 10.0, c.Min)
	assert.Equal(t, 100.0, c.Max)
}

func TestRegionConfidenceLong(t *testing.T) {
	p := make([]float64, 200)
	for i := range p {
		p[i] = 90
	}
	for i := 80; i < 120; i++ {
		p[i] = 50
	}
	c, ok := RegionConfidence(p)
	require.True(t, ok)
	assert.InDelta(t, 90.0, c.FW, 1e-9)
	// band is p[60:140]: 40 at 90, 40 at 50
	assert.InDelta(t, 70.0, c.CDR, 1e-9)
}

func TestRegionConfidenceEmpty(t *testing.T) {
	_, ok := RegionConfidence(nil)
	assert.False(t, ok)
}

func TestParseScoresShapes(t *testing.T) {
	s, err := ParseScores(strings.NewReader(`{
		"plddt": [80, 90],
		"ptm": 0.5,
		"iptm": [0.2, 0.4],
		"iptm+ptm": "n/a",
		"pae": {"predicted_aligned_error": [[0, 1], [1, 0]]}
	}`))
	require.NoError(t, err)
	assert.Equal(t, []float64{80, 90}, s.PLDDT)
	require.NotNil(t, s.PTM)
	assert.Equal(t, 0.5, *s.PTM)
	require.NotNil(t, s.IPTM)
	assert.InDelta(t, 0.3, *s.IPTM, 1e-12)
	assert.Nil(t, s.IPTMPlusPTM)
	assert.Nil(t, s.MaxPAE)
	assert.Equal(t, [][]float64{{0, 1}, {1, 0}}, s.PAE)
	require.NotNil(t, s.MeanPLDDT())
	assert.Equal(t, 85.0, *s.MeanPLDDT())
}

func TestParseScoresMatrixKeysAndArrayRoot(t *testing.T) {
	s, err := ParseScores(strings.NewReader(`[{"predicted_aligned_error": [[1]]}]`))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1}}, s.PAE)

	s, err = ParseScores(strings.NewReader(`{"pae": [[1, 2], [3]]}`))
	require.NoError(t, err)
	assert.Nil(t, s.PAE, "ragged matrix")

	s, err = ParseScores(strings.NewReader(`{"pae": [1, 2]}`))
	require.NoError(t, err)
	assert.Nil(t, s.PAE)
}

func TestParseScoresRejectsGarbage(t *testing.T) {
	_, err := ParseScores(strings.NewReader(`{not json`))
	assert.Error(t, err)
	_, err = ParseScores(strings.NewReader(`42`))
	assert.Error(t, err)
}

func pdbAtom(serial int, atom, chain string, resSeq int, icode string) string {
	return fmt.Sprintf("ATOM  %5d %-4s ALA %1s%4d%1s   %8.3f%8.3f%8.3f  1.00 90.00           C",
		serial, atom, chain, resSeq, icode, 0.0, 0.0, 0.0)
}

func TestChainLengths(t *testing.T) {
	lines := []string{
		"HEADER    TEST",
		pdbAtom(1, "N", "A", 1, ""),
		pdbAtom(2, "CA", "A", 1, ""),
		pdbAtom(3, "CA", "A", 1, ""),
		pdbAtom(4, "CA", "A", 2, ""),
		pdbAtom(5, "CA", "A", 2, "A"),
		pdbAtom(6, "CA", "B", 1, ""),
		pdbAtom(7, "CA", " ", 1, ""),
		"HETATM    8  CA  HOH A 100       0.000   0.000   0.000",
		"END",
	}
	cs, err := ChainLengths(strings.NewReader(strings.Join(lines, "\n")))
	require.NoError(t, err)
	assert.Equal(t, []Chain{{"A", 3}, {"B", 1}, {"_", 1}}, cs)
	assert.Equal(t, "A:3;B:1;_:1", FormatChains(cs))
}

func fill(n int, v float64) [][]float64 {
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
		for j := range m[i] {
			m[i][j] = v
		}
	}
	return m
}

func TestInterfacePAEBlocks(t *testing.T) {
	chains := []Chain{{"A", 5}, {"B", 5}, {"C", 10}}

	zero := fill(20, 99)
	for i := 0; i < 10; i++ {
		for j := 10; j < 20; j++ {
			zero[i][j], zero[j][i] = 0, 0
		}
	}
	v, ok := InterfacePAE(zero, chains, TargetLast)
	require.True(t, ok)
	assert.Equal(t, 0.0, v)

	thirty := fill(20, 1)
	for i := 0; i < 10; i++ {
		for j := 10; j < 20; j++ {
			thirty[i][j], thirty[j][i] = 30, 30
		}
	}
	v, ok = InterfacePAE(thirty, chains, TargetLast)
	require.True(t, ok)
	assert.Equal(t, 30.0, v)
}

func TestInterfacePAEAsymmetricAndNamedTarget(t *testing.T) {
	m := fill(3, 0)
	m[0][2], m[1][2] = 2, 2 // partner rows x target col
	m[2][0], m[2][1] = 4, 4 // target row x partner cols
	v, ok := InterfacePAE(m, []Chain{{"H", 1}, {"L", 1}, {"T", 1}}, TargetLast)
	require.True(t, ok)
	assert.Equal(t, 3.0, v)

	v, ok = InterfacePAE(m, []Chain{{"H", 1}, {"L", 1}, {"T", 1}}, "H")
	require.True(t, ok)
	// H vs {L,T}: m[0][1], m[0][2], m[1][0], m[2][0]
	assert.Equal(t, (0+2+0+4)/4.0, v)
}

func TestInterfacePAEAbsent(t *testing.T) {
	_, ok := InterfacePAE(fill(5, 1), []Chain{{"A", 5}}, TargetLast)
	assert.False(t, ok)
	_, ok = InterfacePAE(nil, []Chain{{"A", 2}, {"B", 2}}, TargetLast)
	assert.False(t, ok)
	_, ok = InterfacePAE(fill(3, 1), []Chain{{"A", 2}, {"B", 2}}, TargetLast)
	assert.False(t, ok, "blocks past matrix")
	_, ok = InterfacePAE(fill(4, 1), []Chain{{"A", 2}, {"B", 2}}, "Z")
	assert.False(t, ok)
}

func TestJobID(t *testing.T) {
	cases := []struct{ name, id, kind string }{
		{"lib_var_0001_fv_scores_rank_001_alphafold2_ptm_model_3_seed_000.json", "lib_var_0001_fv", "scores"},
		{"lib_var_0001_complex_predicted_aligned_error_v1.json", "lib_var_0001_complex", "pae"},
		{"lib_var_0001_complex_unrelaxed_rank_001_alphafold2_multimer_v3_model_1_seed_000.pdb", "lib_var_0001_complex", "pdb"},
		{"lib_var_0001_complex_relaxed_rank_002_x.pdb", "lib_var_0001_complex", "pdb"},
	}
	for _, c := range cases {
		id, kind, ok := JobID(c.name)
		require.True(t, ok, c.name)
		assert.Equal(t, c.id, id, c.name)
		assert.Equal(t, c.kind, kind, c.name)
	}
	_, _, ok := JobID("log.txt")
	assert.False(t, ok)
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestScanAndLoadMonomer(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b_0002_fv_scores_rank_001_m1.json"), `{"plddt":[70,80],"ptm":0.6}`)
	writeFile(t, filepath.Join(dir, "b_0002_fv_scores_rank_002_m2.json"), `{"plddt":[10,10]}`)
	writeFile(t, filepath.Join(dir, "sub", "a_0001_fv_scores_rank_001_m4.json"), `{"plddt":[95,95]}`)
	writeFile(t, filepath.Join(dir, "c_0003_fv_scores_rank_002_m1.json"), `{"plddt":[50]}`)
	writeFile(t, filepath.Join(dir, "d_0004_fv_scores_rank_001_m1.json"), `{"ptm":0.1}`)

	jobs, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, jobs, 4)
	assert.Equal(t, "a_0001_fv", jobs[0].ID)

	var rows []Summary
	for _, j := range jobs {
		s, ok, err := LoadMonomer(j, 1)
		require.NoError(t, err)
		if ok {
			rows = append(rows, s)
		}
	}
	SortByMeanPLDDT(rows)
	require.Len(t, rows, 2)
	assert.Equal(t, "a_0001_fv", rows[0].ID)
	assert.Equal(t, "b_0002_fv", rows[1].ID)
	assert.Equal(t, 75.0, rows[1].Mean)
	assert.Equal(t, "b_0002_fv_scores_rank_001_m1.json", rows[1].ScoreFile)
	require.NotNil(t, rows[1].PTM)
	assert.Equal(t, 0.6, *rows[1].PTM)
}

func TestScanMissingRoot(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestLoadDocking(t *testing.T) {
	dir := t.TempDir()
	id := "lib_var_0001_complex"
	writeFile(t, filepath.Join(dir, id+"_scores_rank_001_m1.json"), `{"plddt":[80,90,70],"ptm":0.7,"iptm":0.5}`)
	writeFile(t, filepath.Join(dir, id+"_predicted_aligned_error_v1.json"),
		`{"predicted_aligned_error":[[0,6,6],[6,0,6],[8,8,0]]}`)
	pdb := strings.Join([]string{
		pdbAtom(1, "CA", "A", 1, ""),
		pdbAtom(2, "CA", "B", 1, ""),
		pdbAtom(3, "CA", "C", 1, ""),
	}, "\n")
	writeFile(t, filepath.Join(dir, id+"_unrelaxed_rank_001_m1.pdb"), pdb)

	jobs, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, jobs, 1)

	// PAE file name carries no rank tag, so only the score file matrix counts.
	d, ok, err := LoadDocking(jobs[0], 1, TargetLast)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, id, d.CandidateID)
	require.NotNil(t, d.PLDDT)
	assert.Equal(t, 80.0, *d.PLDDT)
	assert.Equal(t, []Chain{{"A", 1}, {"B", 1}, {"C", 1}}, d.Chains)
	assert.Nil(t, d.MeanInterfacePAE)

	writeFile(t, filepath.Join(dir, id+"_predicted_aligned_error_rank_001.json"),
		`{"predicted_aligned_error":[[0,6,6],[6,0,6],[8,8,0]]}`)
	jobs, err = Scan(dir)
	require.NoError(t, err)
	d, ok, err = LoadDocking(jobs[0], 1, TargetLast)
	require.NoError(t, err)
	require.True(t, ok)
	require.NotNil(t, d.MeanInterfacePAE)
	assert.Equal(t, 7.0, *d.MeanInterfacePAE)
	assert.True(t, strings.HasSuffix(d.PDBPath, ".pdb"))
}
