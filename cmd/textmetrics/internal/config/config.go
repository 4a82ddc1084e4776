// Package config loads and validates textmetrics job files.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/cairo/pkg/cairo"
)

// Job is the top-level schema of a textmetrics YAML job file.
type Job struct {
	// MinCairoVersion rejects the job when the runtime cairo is older,
	// e.g. "1.16.0". Optional.
	MinCairoVersion string `yaml:"min_cairo_version,omitempty"`
	Render          Render `yaml:"render,omitempty"`
	Defaults        Run    `yaml:"defaults,omitempty"`
	Runs            []Run  `yaml:"runs"`
}

// Render configures the optional PNG rendering of all runs.
type Render struct {
	Output string `yaml:"output,omitempty"`
	Width  int    `yaml:"width,omitempty"`
	Height int    `yaml:"height,omitempty"`
}

// Run describes one piece of text to measure.
type Run struct {
	Text          string  `yaml:"text,omitempty"`
	Family        string  `yaml:"family,omitempty"`
	Slant         string  `yaml:"slant,omitempty"`
	Weight        string  `yaml:"weight,omitempty"`
	Size          float64 `yaml:"size,omitempty"`
	Antialias     string  `yaml:"antialias,omitempty"`
	SubpixelOrder string  `yaml:"subpixel_order,omitempty"`
	HintStyle     string  `yaml:"hint_style,omitempty"`
	HintMetrics   string  `yaml:"hint_metrics,omitempty"`
	// Variations distinguishes absent from the empty string, matching the
	// two distinct states cairo stores.
	Variations *string `yaml:"variations,omitempty"`
}

// Enumeration lookups. Codes come from the tables rather than switch
// statements so additions stay one-line changes.
var (
	slants = map[string]cairo.FontSlant{
		"":        cairo.FontSlantNormal,
		"normal":  cairo.FontSlantNormal,
		"italic":  cairo.FontSlantItalic,
		"oblique": cairo.FontSlantOblique,
	}
	weights = map[string]cairo.FontWeight{
		"":       cairo.FontWeightNormal,
		"normal": cairo.FontWeightNormal,
		"bold":   cairo.FontWeightBold,
	}
	antialiases = map[string]cairo.Antialias{
		"":         cairo.AntialiasDefault,
		"default":  cairo.AntialiasDefault,
		"none":     cairo.AntialiasNone,
		"gray":     cairo.AntialiasGray,
		"subpixel": cairo.AntialiasSubpixel,
		"fast":     cairo.AntialiasFast,
		"good":     cairo.AntialiasGood,
		"best":     cairo.AntialiasBest,
	}
	subpixelOrders = map[string]cairo.SubpixelOrder{
		"":        cairo.SubpixelOrderDefault,
		"default": cairo.SubpixelOrderDefault,
		"rgb":     cairo.SubpixelOrderRGB,
		"bgr":     cairo.SubpixelOrderBGR,
		"vrgb":    cairo.SubpixelOrderVRGB,
		"vbgr":    cairo.SubpixelOrderVBGR,
	}
	hintStyles = map[string]cairo.HintStyle{
		"":        cairo.HintStyleDefault,
		"default": cairo.HintStyleDefault,
		"none":    cairo.HintStyleNone,
		"slight":  cairo.HintStyleSlight,
		"medium":  cairo.HintStyleMedium,
		"full":    cairo.HintStyleFull,
	}
	hintMetrics = map[string]cairo.HintMetrics{
		"":        cairo.HintMetricsDefault,
		"default": cairo.HintMetricsDefault,
		"off":     cairo.HintMetricsOff,
		"on":      cairo.HintMetricsOn,
	}
)

// Load reads and validates a job file.
func Load(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse validates a job read from YAML bytes and applies defaults.
func Parse(data []byte) (*Job, error) {
	var job Job
	if err := yaml.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("failed to parse job file: %w", err)
	}
	if len(job.Runs) == 0 {
		return nil, errors.New("job has no runs")
	}
	if job.MinCairoVersion != "" && !semver.IsValid("v"+job.MinCairoVersion) {
		return nil, fmt.Errorf("invalid min_cairo_version %q", job.MinCairoVersion)
	}
	if job.Render.Output != "" {
		if job.Render.Width <= 0 {
			job.Render.Width = 800
		}
		if job.Render.Height <= 0 {
			job.Render.Height = 100 * len(job.Runs)
		}
	}
	for i := range job.Runs {
		if err := job.Runs[i].applyDefaults(job.Defaults); err != nil {
			return nil, fmt.Errorf("run %d: %w", i, err)
		}
	}
	return &job, nil
}

func (r *Run) applyDefaults(defaults Run) error {
	if strings.TrimSpace(r.Text) == "" {
		return errors.New("missing text")
	}
	if r.Family == "" {
		r.Family = defaults.Family
	}
	if r.Slant == "" {
		r.Slant = defaults.Slant
	}
	if r.Weight == "" {
		r.Weight = defaults.Weight
	}
	if r.Size == 0 {
		r.Size = defaults.Size
	}
	if r.Size == 0 {
		r.Size = 16
	}
	if r.Size < 0 {
		return fmt.Errorf("negative size %v", r.Size)
	}
	if r.Antialias == "" {
		r.Antialias = defaults.Antialias
	}
	if r.SubpixelOrder == "" {
		r.SubpixelOrder = defaults.SubpixelOrder
	}
	if r.HintStyle == "" {
		r.HintStyle = defaults.HintStyle
	}
	if r.HintMetrics == "" {
		r.HintMetrics = defaults.HintMetrics
	}
	if r.Variations == nil {
		r.Variations = defaults.Variations
	}
	for name, lookup := range map[string]func() bool{
		"slant":          func() bool { _, ok := slants[r.Slant]; return ok },
		"weight":         func() bool { _, ok := weights[r.Weight]; return ok },
		"antialias":      func() bool { _, ok := antialiases[r.Antialias]; return ok },
		"subpixel_order": func() bool { _, ok := subpixelOrders[r.SubpixelOrder]; return ok },
		"hint_style":     func() bool { _, ok := hintStyles[r.HintStyle]; return ok },
		"hint_metrics":   func() bool { _, ok := hintMetrics[r.HintMetrics]; return ok },
	} {
		if !lookup() {
			return fmt.Errorf("unknown %s", name)
		}
	}
	return nil
}

// FontSlant returns the run's resolved slant code.
func (r *Run) FontSlant() cairo.FontSlant { return slants[r.Slant] }

// FontWeight returns the run's resolved weight code.
func (r *Run) FontWeight() cairo.FontWeight { return weights[r.Weight] }

// FontOptions builds a cairo font options object from the run's settings.
// The caller owns the result.
func (r *Run) FontOptions() (*cairo.FontOptions, error) {
	options, err := cairo.NewFontOptions()
	if err != nil {
		return nil, err
	}
	if err := options.SetAntialias(antialiases[r.Antialias]); err != nil {
		options.Destroy()
		return nil, err
	}
	if err := options.SetSubpixelOrder(subpixelOrders[r.SubpixelOrder]); err != nil {
		options.Destroy()
		return nil, err
	}
	if err := options.SetHintStyle(hintStyles[r.HintStyle]); err != nil {
		options.Destroy()
		return nil, err
	}
	if err := options.SetHintMetrics(hintMetrics[r.HintMetrics]); err != nil {
		options.Destroy()
		return nil, err
	}
	if r.Variations != nil {
		if err := options.SetVariations(*r.Variations); err != nil {
			options.Destroy()
			return nil, err
		}
	}
	return options, nil
}

// CheckCairoVersion verifies that the runtime cairo version `have` is at
// least `min`. Both are dotted version strings without a "v" prefix.
func CheckCairoVersion(min, have string) error {
	if min == "" {
		return nil
	}
	if !semver.IsValid("v" + have) {
		return fmt.Errorf("unparseable cairo version %q", have)
	}
	if semver.Compare("v"+have, "v"+min) < 0 {
		return fmt.Errorf("cairo %s is older than required %s", have, min)
	}
	return nil
}
