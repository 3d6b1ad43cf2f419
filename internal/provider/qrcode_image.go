package provider

import (
	"errors"
	"fmt"

	"github.com/hashicorp/terraform-plugin-framework/diag"
	"github.com/hashicorp/terraform-plugin-framework/path"
	"github.com/hashicorp/terraform-plugin-framework/types"

	"github.com/ankek/terraform-provider-qrcode/internal/encoder"
	"github.com/ankek/terraform-provider-qrcode/internal/format"
	"github.com/ankek/terraform-provider-qrcode/internal/generator"
	"github.com/ankek/terraform-provider-qrcode/internal/validation"
)

// Attribute descriptions shared by the resource and the data source.
const (
	contentDescription    = "Text or URL encoded in the QR code."
	outputPathDescription = "Path of the image file. The format follows the extension (.png, .jpg, .jpeg, .bmp, .gif, .tif, .tiff, .webp, .ico); anything else is written as PNG. The directory must already exist."
	styleDescription      = "Module style: 'square', 'rounded', 'dots', 'gapped', 'vertical' or 'horizontal'. Defaults to the provider's default_style."
	fillColorDescription  = "Module color as a name, #RGB, #RRGGBB, 'R,G,B' or a functional form such as rgb(), hsl() or hsv(). Unknown values render black. Defaults to the provider's default_fill_color."
	backColorDescription  = "Background color, in the same forms as fill_color. Defaults to the provider's default_back_color."
	formatDescription     = "Image format written, derived from the output path extension."
	versionDescription    = "QR symbol version (1-40) chosen for the content."
	sha256Description     = "Hex SHA-256 of the written file."
)

var (
	contentAttr    = path.Root("content")
	outputPathAttr = path.Root("output_path")
)

// stringOr returns the value of v, or fallback when v is null, unknown or
// empty.
func stringOr(v types.String, fallback string) string {
	if v.IsNull() || v.IsUnknown() || v.ValueString() == "" {
		return fallback
	}
	return v.ValueString()
}

// request builds a generator request from the configured attributes, filling
// unset style and colors from the provider defaults.
func (d *providerData) request(content, outputPath, styleName, fill, back types.String) generator.Request {
	return generator.Request{
		Data:       content.ValueString(),
		OutputPath: outputPath.ValueString(),
		Style:      stringOr(styleName, d.defaults.Style),
		FillColor:  stringOr(fill, d.defaults.FillColor),
		BackColor:  stringOr(back, d.defaults.BackColor),
	}
}

// generateError converts a generator error into a diagnostic with a summary
// naming the failed stage.
func generateError(err error) diag.Diagnostic {
	var saveErr *format.SaveError

	switch {
	case errors.Is(err, validation.ErrDirectoryNotFound), errors.Is(err, validation.ErrNotDirectory):
		return diag.NewAttributeErrorDiagnostic(outputPathAttr, "Invalid output path", err.Error())
	case errors.Is(err, encoder.ErrCapacityExceeded):
		return diag.NewAttributeErrorDiagnostic(contentAttr, "Content too large for a QR code", err.Error())
	case errors.As(err, &saveErr):
		return diag.NewErrorDiagnostic("Failed to save QR code", err.Error())
	}
	return diag.NewErrorDiagnostic("Failed to generate QR code", err.Error())
}

// unexpectedDataError reports provider data of the wrong type.
func unexpectedDataError(kind string, data any) diag.Diagnostic {
	return diag.NewErrorDiagnostic(
		fmt.Sprintf("Unexpected %s Configure Type", kind),
		fmt.Sprintf("Expected *providerData, got: %T. Please report this issue to the provider developers.", data),
	)
}
