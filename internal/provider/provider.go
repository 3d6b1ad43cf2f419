// Package provider implements the Terraform provider for QR code images.
// The resource and the data source share one generator that renders the
// symbol and writes it to a local file.
package provider

import (
	"context"
	"os"

	"github.com/hashicorp/terraform-plugin-framework-validators/stringvalidator"
	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/provider"
	"github.com/hashicorp/terraform-plugin-framework/provider/schema"
	"github.com/hashicorp/terraform-plugin-framework/resource"
	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
	"github.com/hashicorp/terraform-plugin-framework/types"

	"github.com/ankek/terraform-provider-qrcode/internal/config"
	"github.com/ankek/terraform-provider-qrcode/internal/generator"
	"github.com/ankek/terraform-provider-qrcode/internal/interfaces"
	"github.com/ankek/terraform-provider-qrcode/internal/logger"
	"github.com/ankek/terraform-provider-qrcode/internal/style"
)

// Ensure QRCodeProvider satisfies various provider interfaces.
var _ provider.Provider = &QRCodeProvider{}

// QRCodeProvider defines the provider implementation.
type QRCodeProvider struct {
	// version is set to the provider version on release, "dev" when the
	// provider is built and ran locally, and "test" when running acceptance
	// testing.
	version string
}

// QRCodeProviderModel describes the provider data model.
type QRCodeProviderModel struct {
	DefaultStyle     types.String `tfsdk:"default_style"`
	DefaultFillColor types.String `tfsdk:"default_fill_color"`
	DefaultBackColor types.String `tfsdk:"default_back_color"`
}

// providerData is handed to resources and data sources by Configure.
type providerData struct {
	defaults  config.Config
	generator interfaces.QRGenerator
}

func newProviderData(defaults config.Config) *providerData {
	level, err := logger.ParseLevel(defaults.LogLevel)
	if err != nil {
		level, _ = logger.ParseLevel("")
	}
	return &providerData{
		defaults:  defaults,
		generator: generator.New(generator.Options{Logger: logger.New(level, os.Stderr)}),
	}
}

func (p *QRCodeProvider) Metadata(ctx context.Context, req provider.MetadataRequest, resp *provider.MetadataResponse) {
	resp.TypeName = "qrcode"
	resp.Version = p.version
}

func (p *QRCodeProvider) Schema(ctx context.Context, req provider.SchemaRequest, resp *provider.SchemaResponse) {
	resp.Schema = schema.Schema{
		Description: "The QR code provider renders QR code images to local files in PNG, JPEG, BMP, GIF, TIFF, WEBP or ICO format.",
		Attributes: map[string]schema.Attribute{
			"default_style": schema.StringAttribute{
				Description: "Module style used when a qrcode_image does not set one. Can also be set via QRGEN_STYLE. Default is 'square'.",
				Optional:    true,
				Validators: []validator.String{
					stringvalidator.OneOf(style.Names()...),
				},
			},
			"default_fill_color": schema.StringAttribute{
				Description: "Module color used when a qrcode_image does not set one. Can also be set via QRGEN_FILL_COLOR. Default is 'black'.",
				Optional:    true,
			},
			"default_back_color": schema.StringAttribute{
				Description: "Background color used when a qrcode_image does not set one. Can also be set via QRGEN_BACK_COLOR. Default is 'white'.",
				Optional:    true,
			},
		},
	}
}

func (p *QRCodeProvider) Configure(ctx context.Context, req provider.ConfigureRequest, resp *provider.ConfigureResponse) {
	var data QRCodeProviderModel

	resp.Diagnostics.Append(req.Config.Get(ctx, &data)...)

	if resp.Diagnostics.HasError() {
		return
	}

	envCfg, err := config.FromEnv(nil)
	if err != nil {
		resp.Diagnostics.AddError("Failed to read environment", err.Error())
		return
	}

	defaults := config.Default().Merge(envCfg).Merge(config.Config{
		Style:     data.DefaultStyle.ValueString(),
		FillColor: data.DefaultFillColor.ValueString(),
		BackColor: data.DefaultBackColor.ValueString(),
	})
	if err := defaults.Validate(); err != nil {
		resp.Diagnostics.AddError("Invalid provider configuration", err.Error())
		return
	}

	// Make defaults and the generator available to resources and data sources
	pd := newProviderData(defaults)
	resp.DataSourceData = pd
	resp.ResourceData = pd
}

func (p *QRCodeProvider) Resources(ctx context.Context) []func() resource.Resource {
	return []func() resource.Resource{
		NewQRCodeImageResource,
	}
}

func (p *QRCodeProvider) DataSources(ctx context.Context) []func() datasource.DataSource {
	return []func() datasource.DataSource{
		NewQRCodeImageDataSource,
	}
}

func New(version string) func() provider.Provider {
	return func() provider.Provider {
		return &QRCodeProvider{
			version: version,
		}
	}
}
