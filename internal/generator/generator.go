// Package generator runs the full QR pipeline: it checks the destination,
// resolves colors, selects the style, renders the symbol and saves it. It is
// shared by the qrgen command and the Terraform provider.
package generator

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ankek/terraform-provider-qrcode/internal/colors"
	"github.com/ankek/terraform-provider-qrcode/internal/encoder"
	"github.com/ankek/terraform-provider-qrcode/internal/format"
	"github.com/ankek/terraform-provider-qrcode/internal/logger"
	"github.com/ankek/terraform-provider-qrcode/internal/renderer"
	"github.com/ankek/terraform-provider-qrcode/internal/style"
	"github.com/ankek/terraform-provider-qrcode/internal/validation"
)

// Request describes one symbol to generate. Colors are unparsed expressions
// and Style is a style name.
type Request struct {
	Data       string
	OutputPath string
	Style      string
	FillColor  string
	BackColor  string
}

// Result describes a file written by Generate.
type Result struct {
	OutputPath string
	Format     format.Format
	Style      style.Style
	Fill       colors.RGB
	Back       colors.RGB
	Version    int
	Mode       renderer.Mode
	Width      int
	SHA256     string
}

// Options configures a Generator. The zero value is usable.
type Options struct {
	Logger  *slog.Logger
	Encoder encoder.Encoder
	// Render overrides the layout; a zero BoxSize selects the defaults.
	Render renderer.Options
}

// Generator handles the core logic of generating QR code files.
type Generator struct {
	log      *slog.Logger
	resolver *colors.Resolver
	renderer *renderer.Renderer
}

// New creates a generator from opts.
func New(opts Options) *Generator {
	log := logger.OrDefault(opts.Logger)

	renderOpts := opts.Render
	if renderOpts.BoxSize == 0 {
		renderOpts = renderer.DefaultOptions()
	}

	return &Generator{
		log:      log,
		resolver: colors.NewResolver(log),
		renderer: renderer.New(opts.Encoder, renderOpts),
	}
}

// Generate writes the symbol described by req.
//
// It performs the following steps:
//  1. Validates that the output directory exists
//  2. Resolves the fill and back colors
//  3. Selects the module style (unknown names select square)
//  4. Renders and saves the image in the format named by the extension
//
// A missing directory is reported before any rendering, wrapping
// validation.ErrDirectoryNotFound. Encoder capacity errors wrap
// encoder.ErrCapacityExceeded and write failures wrap *format.SaveError.
func (g *Generator) Generate(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := validation.ValidateOutputPath(req.OutputPath); err != nil {
		return nil, err
	}

	fill := g.resolver.Resolve(req.FillColor)
	back := g.resolver.Resolve(req.BackColor)
	s := style.Select(req.Style)

	g.log.Debug("rendering QR code",
		logger.Component("generator"),
		logger.Style(s.String()),
		logger.Color("fill", fill),
		logger.Color("back", back),
		logger.Size(len(req.Data)),
	)

	raster, err := g.renderer.Render(req.Data, fill, back, s)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f := format.FromPath(req.OutputPath)
	if err := format.Save(raster, req.OutputPath, back); err != nil {
		return nil, fmt.Errorf("error saving QR code: %w", err)
	}

	mode := raster.Mode
	if f == format.JPEG {
		mode = renderer.ModeRGB
	}

	sum, err := FileChecksum(req.OutputPath)
	if err != nil {
		return nil, err
	}

	g.log.Debug("QR code saved",
		logger.Component("generator"),
		logger.Path(req.OutputPath),
		logger.Format(f.String()),
		logger.Version(raster.Version),
		logger.Elapsed(start),
	)

	return &Result{
		OutputPath: req.OutputPath,
		Format:     f,
		Style:      s,
		Fill:       fill,
		Back:       back,
		Version:    raster.Version,
		Mode:       mode,
		Width:      raster.Image.Bounds().Dx(),
		SHA256:     sum,
	}, nil
}

// FileChecksum returns the hex SHA-256 of the file at path.
func FileChecksum(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
