// Command textmetrics measures text with cairo's toy font API.
//
// It reads a YAML job file describing font runs, builds a scaled font per
// run, and prints font, text, and glyph metrics. With a render output
// configured, it also draws all runs onto a PNG.
//
// Usage:
//
//	textmetrics [flags] <job.yaml>
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-drift/cairo/cmd/textmetrics/internal/config"
	"github.com/go-drift/cairo/pkg/cairo"
)

func main() {
	clusters := flag.Bool("clusters", false, "print the byte-to-glyph cluster mapping per run")
	render := flag.String("render", "", "render all runs to this PNG file (overrides the job's render.output)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: textmetrics [flags] <job.yaml>\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *clusters, *render); err != nil {
		fmt.Fprintf(os.Stderr, "textmetrics: %v\n", err)
		os.Exit(1)
	}
}

func run(path string, withClusters bool, renderOverride string) error {
	job, err := config.Load(path)
	if err != nil {
		return err
	}
	if err := config.CheckCairoVersion(job.MinCairoVersion, cairo.VersionString()); err != nil {
		return err
	}
	if renderOverride != "" {
		job.Render.Output = renderOverride
		if job.Render.Width <= 0 {
			job.Render.Width = 800
		}
		if job.Render.Height <= 0 {
			job.Render.Height = 100 * len(job.Runs)
		}
	}

	fmt.Printf("cairo %s, %d run(s)\n", cairo.VersionString(), len(job.Runs))

	fonts := make([]*cairo.ScaledFont, len(job.Runs))
	defer func() {
		for _, font := range fonts {
			font.Destroy()
		}
	}()
	for i := range job.Runs {
		font, err := buildFont(&job.Runs[i])
		if err != nil {
			return fmt.Errorf("run %d: %w", i, err)
		}
		fonts[i] = font
		if err := printRun(i, &job.Runs[i], font, withClusters); err != nil {
			return fmt.Errorf("run %d: %w", i, err)
		}
	}

	if job.Render.Output != "" {
		if err := renderRuns(job, fonts); err != nil {
			return err
		}
		fmt.Printf("rendered to %s\n", job.Render.Output)
	}
	return nil
}

func buildFont(run *config.Run) (*cairo.ScaledFont, error) {
	face, err := cairo.NewToyFontFace(run.Family, run.FontSlant(), run.FontWeight())
	if err != nil {
		return nil, err
	}
	defer face.Destroy()

	options, err := run.FontOptions()
	if err != nil {
		return nil, err
	}
	defer options.Destroy()

	return cairo.NewScaledFont(face, cairo.Scaling(run.Size, run.Size), cairo.Identity(), options)
}

func printRun(index int, run *config.Run, font *cairo.ScaledFont, withClusters bool) error {
	fmt.Printf("\nrun %d: %q family=%q slant=%s weight=%s size=%g\n",
		index, run.Text, run.Family, run.FontSlant(), run.FontWeight(), run.Size)

	fe, err := font.Extents()
	if err != nil {
		return err
	}
	fmt.Printf("  font:  ascent=%.2f descent=%.2f height=%.2f\n", fe.Ascent, fe.Descent, fe.Height)

	te, err := font.TextExtents(run.Text)
	if err != nil {
		return err
	}
	fmt.Printf("  text:  width=%.2f height=%.2f advance=(%.2f, %.2f)\n",
		te.Width, te.Height, te.XAdvance, te.YAdvance)

	glyphs, clusters, _, err := font.TextToGlyphsClustered(0, 0, run.Text)
	if err != nil {
		return err
	}
	ge, err := font.GlyphExtents(glyphs)
	if err != nil {
		return err
	}
	fmt.Printf("  glyph: count=%d width=%.2f bearing=(%.2f, %.2f)\n",
		len(glyphs), ge.Width, ge.XBearing, ge.YBearing)

	if withClusters {
		offset := 0
		for _, c := range clusters {
			fmt.Printf("    cluster %q -> %d glyph(s)\n",
				run.Text[offset:offset+c.NumBytes], c.NumGlyphs)
			offset += c.NumBytes
		}
	}
	return nil
}

func renderRuns(job *config.Job, fonts []*cairo.ScaledFont) error {
	surface, err := cairo.NewImageSurface(cairo.FormatARGB32, job.Render.Width, job.Render.Height)
	if err != nil {
		return err
	}
	defer surface.Destroy()

	ctx, err := cairo.NewContext(surface)
	if err != nil {
		return err
	}
	defer ctx.Destroy()

	ctx.SetSourceRGB(1, 1, 1)
	if err := ctx.Paint(); err != nil {
		return err
	}
	ctx.SetSourceRGB(0, 0, 0)

	y := 0.0
	for i, font := range fonts {
		if err := ctx.SetScaledFont(font); err != nil {
			return err
		}
		fe, err := font.Extents()
		if err != nil {
			return err
		}
		y += fe.Ascent + 8
		text := job.Runs[i].Text
		glyphs, clusters, flags, err := font.TextToGlyphsClustered(8, y, text)
		if err != nil {
			return err
		}
		if len(glyphs) == 0 {
			continue
		}
		if err := ctx.ShowTextGlyphs(text, glyphs, clusters, flags); err != nil {
			return err
		}
		y += fe.Descent + 8
	}

	return surface.WriteToPNG(job.Render.Output)
}
