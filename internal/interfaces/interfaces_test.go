package interfaces

import (
	"testing"

	"github.com/ankek/terraform-provider-qrcode/internal/colors"
	"github.com/ankek/terraform-provider-qrcode/internal/encoder"
	"github.com/ankek/terraform-provider-qrcode/internal/generator"
	"github.com/ankek/terraform-provider-qrcode/internal/renderer"
)

func TestImplementations(t *testing.T) {
	var (
		_ ColorResolver  = colors.NewResolver(nil)
		_ MatrixEncoder  = encoder.Skip2{}
		_ SymbolRenderer = renderer.New(nil, renderer.DefaultOptions())
		_ QRGenerator    = generator.New(generator.Options{})
	)
}

func TestColorResolver(t *testing.T) {
	var r ColorResolver = colors.NewResolver(nil)

	if got := r.Resolve("#FF0000"); got != (colors.RGB{R: 255}) {
		t.Errorf("Resolve() = %v, want (255, 0, 0)", got)
	}
}
