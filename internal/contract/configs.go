package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/smellscan/smellscan/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit = 25
	MaxResultLimit     = 1000
	DefaultPrecision   = 1
	DefaultWindowSize  = 6
)

// DefaultWorkers is the default number of concurrent workers to use.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// Thresholds holds the tunable classification limits. The struct is built
// once during validation and threaded through the engine as a value, so no
// component reads ambient state.
type Thresholds struct {
	WindowSize        int     // Sliding window size for exact duplicate blocks
	FunctionLength    int     // Lines before a function counts as long
	FileLength        int     // Lines before a file counts as long
	MaxParams         int     // Parameters before a signature counts as wide
	MinCommentRatio   float64 // Comment ratio below which documentation hints fire
	MaxLineLength     int     // Columns before a line counts as long
	NearIdentical     float64 // Similarity at or above which bodies match outright
	SimilarFloor      float64 // Similarity below which pairs are never reported
	ContextConfirm    float64 // Context overlap needed for mid-band pairs
	FileNearDuplicate float64 // Whole-file ratio above which files are near-duplicates
	FileRelated       float64 // Whole-file ratio above which files are related
}

// DefaultThresholds returns the standard classification limits.
func DefaultThresholds() Thresholds {
	return Thresholds{
		WindowSize:        DefaultWindowSize,
		FunctionLength:    30,
		FileLength:        300,
		MaxParams:         4,
		MinCommentRatio:   0.1,
		MaxLineLength:     100,
		NearIdentical:     0.8,
		SimilarFloor:      0.6,
		ContextConfirm:    0.7,
		FileNearDuplicate: 0.7,
		FileRelated:       0.3,
	}
}

// ThresholdsRawInput holds threshold overrides from the YAML config file.
// Use pointers so that absent fields keep their defaults.
type ThresholdsRawInput struct {
	WindowSize        *int     `mapstructure:"window_size"`
	FunctionLength    *int     `mapstructure:"function_length"`
	FileLength        *int     `mapstructure:"file_length"`
	MaxParams         *int     `mapstructure:"max_params"`
	MinCommentRatio   *float64 `mapstructure:"min_comment_ratio"`
	MaxLineLength     *int     `mapstructure:"max_line_length"`
	NearIdentical     *float64 `mapstructure:"near_identical"`
	SimilarFloor      *float64 `mapstructure:"similar_floor"`
	ContextConfirm    *float64 `mapstructure:"context_confirm"`
	FileNearDuplicate *float64 `mapstructure:"file_near_duplicate"`
	FileRelated       *float64 `mapstructure:"file_related"`
}

// Config holds the runtime configuration for the analysis.
// This struct remains the "final, validated" config.
type Config struct {
	RootPath    string
	PathFilter  string
	ResultLimit int
	Workers     int
	Excludes    []string
	Detail      bool
	Precision   int
	Output      schema.OutputMode
	OutputFile  string
	Width       int // Terminal width override (0 = auto-detect)

	Thresholds Thresholds

	HistoryBackend   schema.DatabaseBackend
	HistoryDBConnect string // Please use env var as this is plaintext

	UseEmojis bool // Enable emojis in output headers
	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	RootPathStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Filter           string `mapstructure:"filter"`
	OutputFile       string `mapstructure:"output-file"`
	Limit            int    `mapstructure:"limit"`
	Workers          int    `mapstructure:"workers"`
	Exclude          string `mapstructure:"exclude"`
	Precision        int    `mapstructure:"precision"`
	Output           string `mapstructure:"output"`
	Detail           bool   `mapstructure:"detail"`
	Width            int    `mapstructure:"width"`
	HistoryBackend   string `mapstructure:"history-backend"`
	HistoryDBConnect string `mapstructure:"history-db-connect"`
	Emoji            string `mapstructure:"emoji"`
	Color            string `mapstructure:"color"`

	// --- Fields from smellsCmd.Flags() ---
	Window int `mapstructure:"window"`

	// --- Threshold overrides from config file ---
	Thresholds ThresholdsRawInput `mapstructure:"thresholds"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Excludes != nil {
		clone.Excludes = make([]string, len(c.Excludes))
		copy(clone.Excludes, c.Excludes)
	}
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	// All validation functions read from 'input' and populate 'cfg'.
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processThresholds(cfg, input); err != nil {
		return err
	}
	if err := resolveRootPathAndFilter(cfg, input); err != nil {
		return err
	}
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection
// strings for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("history-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("history-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateSimpleInputs processes and validates all non-path related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.PathFilter = input.Filter
	cfg.OutputFile = input.OutputFile
	cfg.Detail = input.Detail
	cfg.Width = input.Width

	// Parse emoji flag
	emojis, err := ParseBoolString(input.Emoji)
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. ResultLimit Validation ---
	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	// --- 2. Workers Validation ---
	if input.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0 (received %d)", input.Workers)
	}
	cfg.Workers = input.Workers

	// --- 3. Precision and Output Validation ---
	if input.Precision < 1 || input.Precision > 2 {
		return fmt.Errorf("precision must be 1 or 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, markdown", cfg.Output)
	}

	// --- 4. History Backend Validation ---
	cfg.HistoryBackend = schema.DatabaseBackend(strings.ToLower(input.HistoryBackend))
	if _, ok := schema.ValidHistoryBackends[cfg.HistoryBackend]; !ok {
		return fmt.Errorf("invalid history backend '%s'. must be sqlite, mysql, postgresql, none", input.HistoryBackend)
	}
	cfg.HistoryDBConnect = input.HistoryDBConnect
	if err := ValidateDatabaseConnectionString(cfg.HistoryBackend, cfg.HistoryDBConnect); err != nil {
		return err
	}

	// --- 5. Excludes Processing ---
	defaults := []string{
		"Cargo.lock", "go.sum", "package-lock.json", "yarn.lock", "pnpm-lock.yaml", "composer.lock", "uv.lock",
		".min.js", ".min.css",
		".git/", "node_modules/", "vendor/", "dist/", "build/", "out/", "target/", "bin/", "coverage/", ".next/",
		"__pycache__/", ".venv/", "venv/",
	}
	cfg.Excludes = defaults // Set defaults first

	if input.Exclude != "" {
		parts := strings.SplitSeq(input.Exclude, ",")
		for p := range parts {
			trimmedP := strings.TrimSpace(p)
			if trimmedP != "" {
				cfg.Excludes = append(cfg.Excludes, trimmedP)
			}
		}
	}

	return nil
}

// processThresholds merges the defaults, config-file overrides and the
// --window flag into the final Thresholds value.
func processThresholds(cfg *Config, input *ConfigRawInput) error {
	th := DefaultThresholds()
	raw := input.Thresholds

	if raw.WindowSize != nil {
		th.WindowSize = *raw.WindowSize
	}
	if raw.FunctionLength != nil {
		th.FunctionLength = *raw.FunctionLength
	}
	if raw.FileLength != nil {
		th.FileLength = *raw.FileLength
	}
	if raw.MaxParams != nil {
		th.MaxParams = *raw.MaxParams
	}
	if raw.MinCommentRatio != nil {
		th.MinCommentRatio = *raw.MinCommentRatio
	}
	if raw.MaxLineLength != nil {
		th.MaxLineLength = *raw.MaxLineLength
	}
	if raw.NearIdentical != nil {
		th.NearIdentical = *raw.NearIdentical
	}
	if raw.SimilarFloor != nil {
		th.SimilarFloor = *raw.SimilarFloor
	}
	if raw.ContextConfirm != nil {
		th.ContextConfirm = *raw.ContextConfirm
	}
	if raw.FileNearDuplicate != nil {
		th.FileNearDuplicate = *raw.FileNearDuplicate
	}
	if raw.FileRelated != nil {
		th.FileRelated = *raw.FileRelated
	}

	// The --window flag takes precedence over the config file.
	if input.Window > 0 {
		th.WindowSize = input.Window
	}

	// --- Range validation ---
	if th.WindowSize < 2 {
		return fmt.Errorf("window size must be at least 2 (received %d)", th.WindowSize)
	}
	if th.FunctionLength < 1 || th.FileLength < 1 || th.MaxParams < 1 || th.MaxLineLength < 1 {
		return fmt.Errorf("length thresholds must be positive")
	}
	for name, v := range map[string]float64{
		"min_comment_ratio":   th.MinCommentRatio,
		"near_identical":      th.NearIdentical,
		"similar_floor":       th.SimilarFloor,
		"context_confirm":     th.ContextConfirm,
		"file_near_duplicate": th.FileNearDuplicate,
		"file_related":        th.FileRelated,
	} {
		if v < 0.0 || v > 1.0 {
			return fmt.Errorf("threshold %s must be between 0.0 and 1.0 (received %.2f)", name, v)
		}
	}
	if th.SimilarFloor > th.NearIdentical {
		return fmt.Errorf("similar_floor (%.2f) cannot exceed near_identical (%.2f)", th.SimilarFloor, th.NearIdentical)
	}
	if th.FileRelated > th.FileNearDuplicate {
		return fmt.Errorf("file_related (%.2f) cannot exceed file_near_duplicate (%.2f)", th.FileRelated, th.FileNearDuplicate)
	}

	cfg.Thresholds = th
	return nil
}

// resolveRootPathAndFilter resolves the scan root and sets the implicit path
// filter when the user points at a subdirectory or single file.
func resolveRootPathAndFilter(cfg *Config, input *ConfigRawInput) error {
	searchPath := input.RootPathStr
	if searchPath == "" {
		searchPath = "."
	}
	absSearchPath, err := filepath.Abs(searchPath)
	if err != nil {
		return err
	}
	absSearchPath = filepath.Clean(absSearchPath)

	info, statErr := os.Stat(absSearchPath)
	if statErr != nil {
		return fmt.Errorf("cannot access path %s: %w", absSearchPath, statErr)
	}

	if info.IsDir() {
		cfg.RootPath = absSearchPath
		return nil
	}

	// A single file: scan its directory and filter down to the file.
	cfg.RootPath = filepath.Dir(absSearchPath)
	if cfg.PathFilter == "" { // User-provided --filter flag takes precedence
		cfg.PathFilter = filepath.Base(absSearchPath)
	}
	return nil
}
