// Package config holds the single immutable configuration value shared by
// the flat-text paginator and the rich-document composer.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
)

// MaxFileSize limits config input to prevent memory exhaustion (1MB).
const MaxFileSize = 1 << 20

// Sentinel errors for config operations.
var (
	ErrConfigNotFound    = errors.New("config file not found")
	ErrConfigParse       = errors.New("failed to parse config")
	ErrInvalidMargin     = errors.New("invalid margin")
	ErrInvalidThreshold  = errors.New("invalid page break threshold")
	ErrInvalidLineHeight = errors.New("invalid line height")
	ErrInvalidTableWidth = errors.New("invalid table width")
	ErrInvalidBaseName   = errors.New("invalid artifact base name")
)

// Config holds all configuration for document generation.
type Config struct {
	Document DocumentConfig `yaml:"document"`
	Flat     FlatConfig     `yaml:"flat"`
	Rich     RichConfig     `yaml:"rich"`
}

// DocumentConfig defines the title block and artifact naming.
type DocumentConfig struct {
	Title      string `yaml:"title"`
	Subtitle   string `yaml:"subtitle"`
	DateLayout string `yaml:"dateLayout"` // Go time layout for the "Generated:" date
	BaseName   string `yaml:"baseName"`   // Artifact file name without extension
}

// FlatConfig defines page geometry for the paginated PDF, in millimetres.
type FlatConfig struct {
	PageWidth  float64 `yaml:"pageWidth"`
	PageHeight float64 `yaml:"pageHeight"`
	Margin     float64 `yaml:"margin"`

	// HeadingBreakAt starts a new page before a section heading once the
	// cursor passes it; BodyBreakAt does the same per body line.
	HeadingBreakAt float64 `yaml:"headingBreakAt"`
	BodyBreakAt    float64 `yaml:"bodyBreakAt"`

	TitleStep         float64 `yaml:"titleStep"`
	SubtitleStep      float64 `yaml:"subtitleStep"`
	MetaStep          float64 `yaml:"metaStep"`
	RuleStep          float64 `yaml:"ruleStep"`
	HeadingLineHeight float64 `yaml:"headingLineHeight"`
	BodyLineHeight    float64 `yaml:"bodyLineHeight"`
	SectionSpacing    float64 `yaml:"sectionSpacing"`

	FontFamily   string  `yaml:"fontFamily"`
	TitleSize    float64 `yaml:"titleSize"`
	SubtitleSize float64 `yaml:"subtitleSize"`
	HeadingSize  float64 `yaml:"headingSize"`
	BodySize     float64 `yaml:"bodySize"`
	MutedGray    int     `yaml:"mutedGray"`
	RuleGray     int     `yaml:"ruleGray"`
}

// ContentWidth is the wrap width: page width minus both margins.
func (f FlatConfig) ContentWidth() float64 {
	return f.PageWidth - 2*f.Margin
}

// RichConfig defines styling for the word-processor document.
// Sizes are half-points, spacing is twentieths of a point, widths are DXA.
type RichConfig struct {
	Font          string `yaml:"font"`
	TitleSize     int    `yaml:"titleSize"`
	SubtitleSize  int    `yaml:"subtitleSize"`
	MetaSize      int    `yaml:"metaSize"`
	HeadingSize   int    `yaml:"headingSize"`
	BodySize      int    `yaml:"bodySize"`
	CellSize      int    `yaml:"cellSize"`
	SubtitleColor string `yaml:"subtitleColor"`
	MetaColor     string `yaml:"metaColor"`
	BorderColor   string `yaml:"borderColor"`
	BorderSize    int    `yaml:"borderSize"`
	TableWidth    int    `yaml:"tableWidth"`

	TitleSpacingAfter    int `yaml:"titleSpacingAfter"`
	SubtitleSpacingAfter int `yaml:"subtitleSpacingAfter"`
	MetaSpacingAfter     int `yaml:"metaSpacingAfter"`
	HeadingSpacingBefore int `yaml:"headingSpacingBefore"`
	HeadingSpacingAfter  int `yaml:"headingSpacingAfter"`
	BodySpacingAfter     int `yaml:"bodySpacingAfter"`
}

// Default returns the configuration used by the dashboard export buttons.
func Default() Config {
	return Config{
		Document: DocumentConfig{
			Title:      "Business Requirements Document",
			Subtitle:   "Enron Email Analysis — Project Alpha",
			DateLayout: "1/2/2006",
			BaseName:   "BRD_Document",
		},
		Flat: FlatConfig{
			PageWidth:         210,
			PageHeight:        297,
			Margin:            20,
			HeadingBreakAt:    260,
			BodyBreakAt:       275,
			TitleStep:         8,
			SubtitleStep:      6,
			MetaStep:          12,
			RuleStep:          10,
			HeadingLineHeight: 8,
			BodyLineHeight:    5,
			SectionSpacing:    8,
			FontFamily:        "Helvetica",
			TitleSize:         18,
			SubtitleSize:      11,
			HeadingSize:       13,
			BodySize:          10,
			MutedGray:         100,
			RuleGray:          200,
		},
		Rich: RichConfig{
			Font:                 "Calibri",
			TitleSize:            36,
			SubtitleSize:         22,
			MetaSize:             20,
			HeadingSize:          26,
			BodySize:             22,
			CellSize:             20,
			SubtitleColor:        "666666",
			MetaColor:            "999999",
			BorderColor:          "CCCCCC",
			BorderSize:           1,
			TableWidth:           9000,
			TitleSpacingAfter:    100,
			SubtitleSpacingAfter: 50,
			MetaSpacingAfter:     300,
			HeadingSpacingBefore: 240,
			HeadingSpacingAfter:  120,
			BodySpacingAfter:     80,
		},
	}
}

// Load reads a YAML file on top of Default(): every key the file sets
// replaces the default, including explicit zeros.
// Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return cfg, fmt.Errorf("reading config file: %w", err)
	}
	if len(data) > MaxFileSize {
		return cfg, fmt.Errorf("%w: %d bytes (max %d)", ErrConfigParse, len(data), MaxFileSize)
	}
	if strings.TrimSpace(string(data)) == "" {
		return cfg, cfg.Validate()
	}

	// Keys absent from the file keep their defaults; keys present win,
	// zero values included.
	if err := yaml.UnmarshalWithOptions(data, &cfg, yaml.Strict()); err != nil {
		return Default(), fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	return cfg, cfg.Validate()
}

// Validate checks geometry and naming invariants.
func (c Config) Validate() error {
	f := c.Flat
	if f.Margin <= 0 || f.ContentWidth() <= 0 {
		return fmt.Errorf("%w: margin %.1f leaves no content width on a %.1f wide page", ErrInvalidMargin, f.Margin, f.PageWidth)
	}
	if f.HeadingBreakAt <= 0 || f.BodyBreakAt <= f.HeadingBreakAt || f.BodyBreakAt >= f.PageHeight {
		return fmt.Errorf("%w: need 0 < headingBreakAt (%.1f) < bodyBreakAt (%.1f) < pageHeight (%.1f)",
			ErrInvalidThreshold, f.HeadingBreakAt, f.BodyBreakAt, f.PageHeight)
	}
	if f.HeadingLineHeight <= 0 || f.BodyLineHeight <= 0 {
		return fmt.Errorf("%w: heading %.1f, body %.1f", ErrInvalidLineHeight, f.HeadingLineHeight, f.BodyLineHeight)
	}
	if c.Rich.TableWidth <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidTableWidth, c.Rich.TableWidth)
	}
	name := c.Document.BaseName
	if strings.TrimSpace(name) == "" || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidBaseName, name)
	}
	return nil
}
