// Package config layers abrank settings: built-in defaults, an optional
// YAML file, ABRANK_* environment variables (a .env file is honoured) and
// finally command-line flags applied by each tool.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"abrank-core/aggregate"
	"abrank-core/library"
	"abrank-core/liability"
	"abrank-core/rank"
	"abrank-core/region"
)

type Config struct {
	Threads int    `yaml:"threads" validate:"gte=0"`
	LogFile string `yaml:"log_file"`
	Archive string `yaml:"archive"`

	Scheme    SchemeConfig    `yaml:"scheme"`
	Liability LiabilityConfig `yaml:"liability"`
	Filters   FilterConfig    `yaml:"filters"`
	Weights   WeightConfig    `yaml:"weights"`
	Diversity DiversityConfig `yaml:"diversity"`
	Final     FinalConfig     `yaml:"final"`
	Library   LibraryConfig   `yaml:"library"`
	Structure StructureConfig `yaml:"structure"`
}

// SchemeConfig lists the three CDR loops per chain as half-open ranges.
type SchemeConfig struct {
	Name  string         `yaml:"name" validate:"required"`
	Heavy []region.Range `yaml:"heavy" validate:"len=3,dive"`
	Light []region.Range `yaml:"light" validate:"len=3,dive"`
}

type LiabilityConfig struct {
	Tau       float64            `yaml:"tau" validate:"gt=0"`
	MinLinker int                `yaml:"min_linker" validate:"gte=1"`
	Weights   map[string]float64 `yaml:"weights" validate:"dive,gte=0"`
}

type FilterConfig struct {
	MinMeanPLDDT  float64 `yaml:"min_mean_plddt" validate:"gte=0,lte=100"`
	MinFWPLDDT    float64 `yaml:"min_fw_plddt" validate:"gte=0,lte=100"`
	MinSolubility float64 `yaml:"min_solubility" validate:"gte=0,lte=1"`
	MaxNGlyco     int     `yaml:"max_nglyco" validate:"gte=0"`
}

type WeightConfig struct {
	StructMean float64 `yaml:"struct_mean" validate:"gte=0"`
	StructCDR  float64 `yaml:"struct_cdr" validate:"gte=0"`
	StructFW   float64 `yaml:"struct_fw" validate:"gte=0"`
	Struct     float64 `yaml:"struct" validate:"gte=0"`
	Solubility float64 `yaml:"solubility" validate:"gte=0"`
	Liability  float64 `yaml:"liability" validate:"gte=0"`
	Stability  float64 `yaml:"stability" validate:"gte=0"`
}

type DiversityConfig struct {
	Bins      int `yaml:"bins" validate:"gte=1"`
	PerBucket int `yaml:"per_bucket" validate:"gte=1"`
	Total     int `yaml:"total" validate:"gte=1"`
}

type FinalConfig struct {
	DevColumn string  `yaml:"dev_column" validate:"required"`
	MinIPTM   float64 `yaml:"min_iptm" validate:"gte=0,lte=1"`
	WDev      float64 `yaml:"w_dev" validate:"gte=0"`
	WIPTM     float64 `yaml:"w_iptm" validate:"gte=0"`
	WPAE      float64 `yaml:"w_pae" validate:"gte=0"`
	Top       int     `yaml:"top" validate:"gte=0"`
}

type LibraryConfig struct {
	Name              string `yaml:"name" validate:"required"`
	Prefix            string `yaml:"prefix" validate:"required"`
	Count             int    `yaml:"count" validate:"gte=0"`
	Seed              int64  `yaml:"seed"`
	MutationsPerChain int    `yaml:"mutations_per_chain" validate:"gte=1"`
}

type StructureConfig struct {
	Rank   int    `yaml:"rank" validate:"gte=1,lte=999"`
	Target string `yaml:"target"`
	Tag    string `yaml:"tag"` // only jobs whose id contains Tag
}

// Default mirrors the calibrated constants of the scoring packages.
func Default() Config {
	k := region.Kabat()
	w := map[string]float64{}
	for _, m := range liability.DefaultTable() {
		w[m.Name] = m.Weight
	}
	th := aggregate.DefaultThresholds()
	aw := aggregate.DefaultWeights()
	dv := aggregate.DefaultDiversity()
	rw := rank.DefaultWeights()
	lo := library.DefaultOptions()
	return Config{
		Scheme: SchemeConfig{
			Name:  k.Name,
			Heavy: append([]region.Range(nil), k.Heavy[:]...),
			Light: append([]region.Range(nil), k.Light[:]...),
		},
		Liability: LiabilityConfig{Tau: liability.DefaultTau, MinLinker: region.DefaultMinLinker, Weights: w},
		Filters: FilterConfig{
			MinMeanPLDDT:  th.MinMeanPLDDT,
			MinFWPLDDT:    th.MinFWPLDDT,
			MinSolubility: th.MinSolubility,
			MaxNGlyco:     th.MaxNGlyco,
		},
		Weights: WeightConfig{
			StructMean: aw.StructMean, StructCDR: aw.StructCDR, StructFW: aw.StructFW,
			Struct: aw.Struct, Solubility: aw.Solubility, Liability: aw.Liability, Stability: aw.Stability,
		},
		Diversity: DiversityConfig{Bins: dv.Bins, PerBucket: dv.PerBucket, Total: dv.Total},
		Final:     FinalConfig{DevColumn: "DCS", MinIPTM: rank.DefaultMinIPTM, WDev: rw.Dev, WIPTM: rw.IPTM, WPAE: rw.PAE, Top: 5},
		Library: LibraryConfig{
			Name:              lo.Template.Name,
			Prefix:            lo.Template.Name + "_lib",
			Count:             lo.Count,
			Seed:              lo.Seed,
			MutationsPerChain: lo.MutsPerChain,
		},
		Structure: StructureConfig{Rank: 1},
	}
}

// Load builds the effective configuration from path (may be empty), the
// .env file in the working directory and the environment.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.mergeYAML(path); err != nil {
			return Config{}, err
		}
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) mergeYAML(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalid, path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	c.LogFile = getEnv("ABRANK_LOG_FILE", c.LogFile)
	c.Archive = getEnv("ABRANK_ARCHIVE", c.Archive)
	var err error
	if c.Threads, err = getEnvAsInt("ABRANK_THREADS", c.Threads); err != nil {
		return err
	}
	if c.Library.Seed, err = getEnvAsInt64("ABRANK_SEED", c.Library.Seed); err != nil {
		return err
	}
	if c.Final.MinIPTM, err = getEnvAsFloat("ABRANK_MIN_IPTM", c.Final.MinIPTM); err != nil {
		return err
	}
	if c.Liability.Tau, err = getEnvAsFloat("ABRANK_TAU", c.Liability.Tau); err != nil {
		return err
	}
	return nil
}

var validate = validator.New()

// ErrInvalid marks configuration errors: bad YAML, malformed environment
// values or out-of-range settings.
var ErrInvalid = errors.New("invalid config")

// Validate checks value ranges and motif names.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	known := map[string]bool{}
	for _, n := range liability.DefaultTable().Names() {
		known[n] = true
	}
	for name := range c.Liability.Weights {
		if !known[name] {
			return fmt.Errorf("%w: unknown liability motif %q", ErrInvalid, name)
		}
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) (int, error) {
	s, ok := os.LookupEnv(key)
	if !ok || s == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fallback, fmt.Errorf("%w: %s: %w", ErrInvalid, key, err)
	}
	return v, nil
}

func getEnvAsInt64(key string, fallback int64) (int64, error) {
	s, ok := os.LookupEnv(key)
	if !ok || s == "" {
		return fallback, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fallback, fmt.Errorf("%w: %s: %w", ErrInvalid, key, err)
	}
	return v, nil
}

func getEnvAsFloat(key string, fallback float64) (float64, error) {
	s, ok := os.LookupEnv(key)
	if !ok || s == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fallback, fmt.Errorf("%w: %s: %w", ErrInvalid, key, err)
	}
	return v, nil
}
