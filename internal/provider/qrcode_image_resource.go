package provider

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/hashicorp/terraform-plugin-framework-validators/stringvalidator"
	"github.com/hashicorp/terraform-plugin-framework/path"
	"github.com/hashicorp/terraform-plugin-framework/resource"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema/planmodifier"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema/stringplanmodifier"
	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
	"github.com/hashicorp/terraform-plugin-framework/types"

	"github.com/ankek/terraform-provider-qrcode/internal/config"
	"github.com/ankek/terraform-provider-qrcode/internal/format"
	"github.com/ankek/terraform-provider-qrcode/internal/generator"
	"github.com/ankek/terraform-provider-qrcode/internal/style"
)

// Ensure provider defined types fully satisfy framework interfaces.
var _ resource.Resource = &QRCodeImageResource{}
var _ resource.ResourceWithConfigure = &QRCodeImageResource{}
var _ resource.ResourceWithImportState = &QRCodeImageResource{}

func NewQRCodeImageResource() resource.Resource {
	return &QRCodeImageResource{}
}

// QRCodeImageResource defines the resource implementation.
type QRCodeImageResource struct {
	data *providerData
}

// QRCodeImageResourceModel describes the resource data model.
type QRCodeImageResourceModel struct {
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

func (r *QRCodeImageResource) Metadata(ctx context.Context, req resource.MetadataRequest, resp *resource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + "_image"
}

func (r *QRCodeImageResource) Schema(ctx context.Context, req resource.SchemaRequest, resp *resource.SchemaResponse) {
	resp.Schema = schema.Schema{
		MarkdownDescription: "Renders a QR code image to a local file. The file is removed when the resource is destroyed and re-created when it goes missing or is modified outside Terraform.",

		Attributes: map[string]schema.Attribute{
			"id": schema.StringAttribute{
				Computed:            true,
				MarkdownDescription: "Resource identifier, the output path.",
				PlanModifiers: []planmodifier.String{
					stringplanmodifier.UseStateForUnknown(),
				},
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
				PlanModifiers: []planmodifier.String{
					stringplanmodifier.RequiresReplace(),
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

func (r *QRCodeImageResource) Configure(ctx context.Context, req resource.ConfigureRequest, resp *resource.ConfigureResponse) {
	// Prevent panic if the provider has not been configured.
	if req.ProviderData == nil {
		return
	}

	data, ok := req.ProviderData.(*providerData)
	if !ok {
		resp.Diagnostics.Append(unexpectedDataError("Resource", req.ProviderData))
		return
	}

	r.data = data
}

func (r *QRCodeImageResource) providerData() *providerData {
	if r.data == nil {
		r.data = newProviderData(config.Default())
	}
	return r.data
}

// render writes the image described by data and fills in the computed
// attributes.
func (r *QRCodeImageResource) render(ctx context.Context, data *QRCodeImageResourceModel) error {
	pd := r.providerData()
	req := pd.request(data.Content, data.OutputPath, data.Style, data.FillColor, data.BackColor)

	result, err := pd.generator.Generate(ctx, req)
	if err != nil {
		return err
	}

	data.ID = types.StringValue(req.OutputPath)
	data.Style = types.StringValue(result.Style.String())
	data.FillColor = types.StringValue(req.FillColor)
	data.BackColor = types.StringValue(req.BackColor)
	data.Format = types.StringValue(result.Format.String())
	data.Version = types.Int64Value(int64(result.Version))
	data.SHA256 = types.StringValue(result.SHA256)
	return nil
}

func (r *QRCodeImageResource) Create(ctx context.Context, req resource.CreateRequest, resp *resource.CreateResponse) {
	var data QRCodeImageResourceModel

	resp.Diagnostics.Append(req.Plan.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	if err := r.render(ctx, &data); err != nil {
		resp.Diagnostics.Append(generateError(err))
		return
	}

	resp.Diagnostics.Append(resp.State.Set(ctx, &data)...)
}

func (r *QRCodeImageResource) Read(ctx context.Context, req resource.ReadRequest, resp *resource.ReadResponse) {
	var data QRCodeImageResourceModel

	resp.Diagnostics.Append(req.State.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	outputPath := data.OutputPath.ValueString()

	// Check if output file still exists and is unchanged
	sum, err := generator.FileChecksum(outputPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			resp.State.RemoveResource(ctx)
			return
		}
		resp.Diagnostics.AddError("Failed to read QR code image", err.Error())
		return
	}

	if !data.SHA256.IsNull() && data.SHA256.ValueString() != sum {
		resp.State.RemoveResource(ctx)
		return
	}

	data.SHA256 = types.StringValue(sum)
	data.Format = types.StringValue(format.FromPath(outputPath).String())

	resp.Diagnostics.Append(resp.State.Set(ctx, &data)...)
}

func (r *QRCodeImageResource) Update(ctx context.Context, req resource.UpdateRequest, resp *resource.UpdateResponse) {
	var data QRCodeImageResourceModel

	resp.Diagnostics.Append(req.Plan.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	// Re-render the image with the updated configuration
	if err := r.render(ctx, &data); err != nil {
		resp.Diagnostics.Append(generateError(err))
		return
	}

	resp.Diagnostics.Append(resp.State.Set(ctx, &data)...)
}

func (r *QRCodeImageResource) Delete(ctx context.Context, req resource.DeleteRequest, resp *resource.DeleteResponse) {
	var data QRCodeImageResourceModel

	resp.Diagnostics.Append(req.State.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	if err := os.Remove(data.OutputPath.ValueString()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		resp.Diagnostics.AddError("Failed to remove QR code image", err.Error())
	}
}

// ImportState adopts an existing image file; the import ID is its path.
func (r *QRCodeImageResource) ImportState(ctx context.Context, req resource.ImportStateRequest, resp *resource.ImportStateResponse) {
	resource.ImportStatePassthroughID(ctx, path.Root("id"), req, resp)
	resp.Diagnostics.Append(resp.State.SetAttribute(ctx, outputPathAttr, req.ID)...)
}
