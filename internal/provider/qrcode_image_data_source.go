package provider

import (
	"context"

	"github.com/hashicorp/terraform-plugin-framework-validators/stringvalidator"
	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/datasource/schema"
	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
	"github.com/hashicorp/terraform-plugin-framework/types"

	"github.com/ankek/terraform-provider-qrcode/internal/config"
	"github.com/ankek/terraform-provider-qrcode/internal/style"
)

// Ensure provider defined types fully satisfy framework interfaces.
var _ datasource.DataSource = &QRCodeImageDataSource{}
var _ datasource.DataSourceWithConfigure = &QRCodeImageDataSource{}

// QRCodeImageDataSource defines the data source implementation.
type QRCodeImageDataSource struct {
	data *providerData
}

func NewQRCodeImageDataSource() datasource.DataSource {
	return &QRCodeImageDataSource{}
}

// QRCodeImageDataSourceModel describes the data source data model.
type QRCodeImageDataSourceModel struct {
	ID         types.String `tfsdk:"id"`
	Content    types.String `tfsdk:"content"`
	OutputPath types.String `tfsdk:"output_path"`
	Style      types.String `tfsdk:"style"`
	FillColor  types.String `tfsdk:"fill_color"`
	BackColor  types.String `tfsdk:"back_color"`
	Format     types.String `tfsdk:"format"`
	Version    types.Int64  `tfsdk:"version"`
	SHA256     types.String `tfsdk:"sha256"`
}

func (d *QRCodeImageDataSource) Metadata(ctx context.Context, req datasource.MetadataRequest, resp *datasource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + "_image"
}

func (d *QRCodeImageDataSource) Schema(ctx context.Context, req datasource.SchemaRequest, resp *datasource.SchemaResponse) {
	resp.Schema = schema.Schema{
		MarkdownDescription: "Renders a QR code image to a local file every time it is read.",

		Attributes: map[string]schema.Attribute{
			"id": schema.StringAttribute{
				Computed:            true,
				MarkdownDescription: "Data source identifier",
			},
			"content": schema.StringAttribute{
				MarkdownDescription: contentDescription,
				Required:            true,
			},
			"output_path": schema.StringAttribute{
				MarkdownDescription: outputPathDescription,
				Required:            true,
				Validators: []validator.String{
					stringvalidator.LengthAtLeast(1),
				},
			},
			"style": schema.StringAttribute{
				MarkdownDescription: styleDescription,
				Optional:            true,
				Computed:            true,
				Validators: []validator.String{
					stringvalidator.OneOf(style.Names()...),
				},
			},
			"fill_color": schema.StringAttribute{
				MarkdownDescription: fillColorDescription,
				Optional:            true,
				Computed:            true,
			},
			"back_color": schema.StringAttribute{
				MarkdownDescription: backColorDescription,
				Optional:            true,
				Computed:            true,
			},
			"format": schema.StringAttribute{
				MarkdownDescription: formatDescription,
				Computed:            true,
			},
			"version": schema.Int64Attribute{
				MarkdownDescription: versionDescription,
				Computed:            true,
			},
			"sha256": schema.StringAttribute{
				MarkdownDescription: sha256Description,
				Computed:            true,
			},
		},
	}
}

func (d *QRCodeImageDataSource) Configure(ctx context.Context, req datasource.ConfigureRequest, resp *datasource.ConfigureResponse) {
	if req.ProviderData == nil {
		return
	}

	data, ok := req.ProviderData.(*providerData)
	if !ok {
		resp.Diagnostics.Append(unexpectedDataError("Data Source", req.ProviderData))
		return
	}

	d.data = data
}

func (d *QRCodeImageDataSource) Read(ctx context.Context, req datasource.ReadRequest, resp *datasource.ReadResponse) {
	var data QRCodeImageDataSourceModel

	resp.Diagnostics.Append(req.Config.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	pd := d.data
	if pd == nil {
		pd = newProviderData(config.Default())
	}

	genReq := pd.request(data.Content, data.OutputPath, data.Style, data.FillColor, data.BackColor)

	// Use the generator to create the image
	result, err := pd.generator.Generate(ctx, genReq)
	if err != nil {
		resp.Diagnostics.Append(generateError(err))
		return
	}

	data.Style = types.StringValue(result.Style.String())
	data.FillColor = types.StringValue(genReq.FillColor)
	data.BackColor = types.StringValue(genReq.BackColor)
	data.Format = types.StringValue(result.Format.String())
	data.Version = types.Int64Value(int64(result.Version))
	data.SHA256 = types.StringValue(result.SHA256)

	// The file checksum identifies the rendered content
	data.ID = types.StringValue(result.SHA256[:16])

	resp.Diagnostics.Append(resp.State.Set(ctx, &data)...)
}
