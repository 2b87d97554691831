package structure

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNoScores reports a result directory without score files for the
// requested rank.
var ErrNoScores = errors.New("no score files found")

// Job groups the artifact files of one prediction job.
type Job struct {
	ID     string
	Scores []string
	PAE    []string
	PDB    []string
}

// JobID derives the job id from a ColabFold artifact file name. ok is false
// for files that are not score, PAE or ranked PDB outputs.
func JobID(name string) (id string, kind string, ok bool) {
	switch {
	case strings.Contains(name, "_scores"):
		return name[:strings.Index(name, "_scores")], "scores", true
	case strings.Contains(name, "_predicted_aligned_error"):
		return name[:strings.Index(name, "_predicted")], "pae", true
	case filepath.Ext(name) == ".pdb" && strings.Contains(name, "rank_"):
		id := name
		if i := strings.Index(id, "_unrelaxed"); i >= 0 {
			id = id[:i]
		}
		if i := strings.Index(id, "_relaxed"); i >= 0 {
			id = id[:i]
		}
		return id, "pdb", true
	}
	return "", "", false
}

// Scan walks root recursively and groups artifact files by job id. Jobs are
// returned sorted by id; file lists are sorted by path.
func Scan(root string) ([]Job, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}
	byID := map[string]*Job{}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		id, kind, ok := JobID(d.Name())
		if !ok {
			return nil
		}
		j := byID[id]
		if j == nil {
			j = &Job{ID: id}
			byID[id] = j
		}
		switch kind {
		case "scores":
			j.Scores = append(j.Scores, path)
		case "pae":
			j.PAE = append(j.PAE, path)
		case "pdb":
			j.PDB = append(j.PDB, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}

	out := make([]Job, 0, len(byID))
	for _, j := range byID {
		sort.Strings(j.Scores)
		sort.Strings(j.PAE)
		sort.Strings(j.PDB)
		out = append(out, *j)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ID < out[b].ID })
	return out, nil
}

// RankTag is the file-name marker of a model rank, e.g. "rank_001".
func RankTag(rank int) string { return fmt.Sprintf("rank_%03d", rank) }

func pick(files []string, rank int, ext string) string {
	tag := RankTag(rank)
	for _, f := range files {
		base := filepath.Base(f)
		if strings.Contains(base, tag) && (ext == "" || filepath.Ext(base) == ext) {
			return f
		}
	}
	return ""
}

// Files returns the score, PAE and PDB paths for rank; missing ones are "".
func (j Job) Files(rank int) (scores, pae, pdb string) {
	return pick(j.Scores, rank, ".json"), pick(j.PAE, rank, ".json"), pick(j.PDB, rank, ".pdb")
}

// HasRank reports whether the job has a score file for rank.
func (j Job) HasRank(rank int) bool {
	s, _, _ := j.Files(rank)
	return s != ""
}

func parseScoresFile(path string) (Scores, error) {
	f, err := os.Open(path)
	if err != nil {
		return Scores{}, err
	}
	defer f.Close()
	s, err := ParseScores(f)
	if err != nil {
		return Scores{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func chainLengthsFile(path string) ([]Chain, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	cs, err := ChainLengths(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cs, nil
}
