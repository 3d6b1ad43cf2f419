package provider

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/terraform-plugin-framework/datasource"
	dsschema "github.com/hashicorp/terraform-plugin-framework/datasource/schema"
	"github.com/hashicorp/terraform-plugin-framework/provider"
	providerschema "github.com/hashicorp/terraform-plugin-framework/provider/schema"
	"github.com/hashicorp/terraform-plugin-framework/resource"
	rschema "github.com/hashicorp/terraform-plugin-framework/resource/schema"
	"github.com/hashicorp/terraform-plugin-framework/tfsdk"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/hashicorp/terraform-plugin-go/tftypes"

	"github.com/ankek/terraform-provider-qrcode/internal/config"
	"github.com/ankek/terraform-provider-qrcode/internal/encoder"
	"github.com/ankek/terraform-provider-qrcode/internal/format"
	"github.com/ankek/terraform-provider-qrcode/internal/validation"
)

// objectValue builds an object of typ with the given attributes set and
// every other attribute null.
func objectValue(typ tftypes.Type, vals map[string]tftypes.Value) tftypes.Value {
	obj := typ.(tftypes.Object)
	full := make(map[string]tftypes.Value, len(obj.AttributeTypes))
	for name, attrType := range obj.AttributeTypes {
		if v, ok := vals[name]; ok {
			full[name] = v
			continue
		}
		full[name] = tftypes.NewValue(attrType, nil)
	}
	return tftypes.NewValue(typ, full)
}

func str(s string) tftypes.Value {
	return tftypes.NewValue(tftypes.String, s)
}

func providerSchema(t *testing.T) providerschema.Schema {
	t.Helper()
	resp := &provider.SchemaResponse{}
	New("test")().Schema(context.Background(), provider.SchemaRequest{}, resp)
	if resp.Diagnostics.HasError() {
		t.Fatalf("Schema() diagnostics: %v", resp.Diagnostics)
	}
	return resp.Schema
}

func resourceSchema(t *testing.T) rschema.Schema {
	t.Helper()
	resp := &resource.SchemaResponse{}
	NewQRCodeImageResource().Schema(context.Background(), resource.SchemaRequest{}, resp)
	if resp.Diagnostics.HasError() {
		t.Fatalf("Schema() diagnostics: %v", resp.Diagnostics)
	}
	return resp.Schema
}

func dataSourceSchema(t *testing.T) dsschema.Schema {
	t.Helper()
	resp := &datasource.SchemaResponse{}
	NewQRCodeImageDataSource().Schema(context.Background(), datasource.SchemaRequest{}, resp)
	if resp.Diagnostics.HasError() {
		t.Fatalf("Schema() diagnostics: %v", resp.Diagnostics)
	}
	return resp.Schema
}

func TestProvider_Metadata(t *testing.T) {
	ctx := context.Background()

	presp := &provider.MetadataResponse{}
	New("1.2.3")().Metadata(ctx, provider.MetadataRequest{}, presp)
	if presp.TypeName != "qrcode" || presp.Version != "1.2.3" {
		t.Errorf("provider metadata = %q %q, want qrcode 1.2.3", presp.TypeName, presp.Version)
	}

	rresp := &resource.MetadataResponse{}
	NewQRCodeImageResource().Metadata(ctx, resource.MetadataRequest{ProviderTypeName: "qrcode"}, rresp)
	if rresp.TypeName != "qrcode_image" {
		t.Errorf("resource type = %q, want qrcode_image", rresp.TypeName)
	}

	dresp := &datasource.MetadataResponse{}
	NewQRCodeImageDataSource().Metadata(ctx, datasource.MetadataRequest{ProviderTypeName: "qrcode"}, dresp)
	if dresp.TypeName != "qrcode_image" {
		t.Errorf("data source type = %q, want qrcode_image", dresp.TypeName)
	}
}

func TestSchemas_ValidateImplementation(t *testing.T) {
	ctx := context.Background()

	if diags := providerSchema(t).ValidateImplementation(ctx); diags.HasError() {
		t.Errorf("provider schema: %v", diags)
	}
	if diags := resourceSchema(t).ValidateImplementation(ctx); diags.HasError() {
		t.Errorf("resource schema: %v", diags)
	}
	if diags := dataSourceSchema(t).ValidateImplementation(ctx); diags.HasError() {
		t.Errorf("data source schema: %v", diags)
	}
}

func TestProvider_Registrations(t *testing.T) {
	p := New("test")()
	if n := len(p.Resources(context.Background())); n != 1 {
		t.Errorf("Resources() = %d, want 1", n)
	}
	if n := len(p.DataSources(context.Background())); n != 1 {
		t.Errorf("DataSources() = %d, want 1", n)
	}
}

func TestProvider_Configure(t *testing.T) {
	for _, name := range []string{"QRGEN_STYLE", "QRGEN_FILL_COLOR", "QRGEN_BACK_COLOR", "QRGEN_LOG_LEVEL"} {
		t.Setenv(name, "")
	}

	ctx := context.Background()
	s := providerSchema(t)
	typ := s.Type().TerraformType(ctx)

	tests := []struct {
		name    string
		vals    map[string]tftypes.Value
		env     map[string]string
		want    config.Config
		wantErr bool
	}{
		{
			name: "defaults",
			want: config.Default(),
		},
		{
			name: "provider block",
			vals: map[string]tftypes.Value{
				"default_style":      str("dots"),
				"default_fill_color": str("navy"),
			},
			want: config.Config{Style: "dots", FillColor: "navy", BackColor: "white", LogLevel: "info"},
		},
		{
			name: "block over environment",
			vals: map[string]tftypes.Value{"default_style": str("gapped")},
			env:  map[string]string{"QRGEN_STYLE": "rounded", "QRGEN_BACK_COLOR": "ivory"},
			want: config.Config{Style: "gapped", FillColor: "black", BackColor: "ivory", LogLevel: "info"},
		},
		{
			name:    "invalid style from environment",
			env:     map[string]string{"QRGEN_STYLE": "stars"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			resp := &provider.ConfigureResponse{}
			New("test")().Configure(ctx, provider.ConfigureRequest{
				Config: tfsdk.Config{Schema: s, Raw: objectValue(typ, tt.vals)},
			}, resp)

			if tt.wantErr {
				if !resp.Diagnostics.HasError() {
					t.Fatal("Configure() expected error")
				}
				return
			}
			if resp.Diagnostics.HasError() {
				t.Fatalf("Configure() diagnostics: %v", resp.Diagnostics)
			}

			pd, ok := resp.ResourceData.(*providerData)
			if !ok {
				t.Fatalf("ResourceData = %T, want *providerData", resp.ResourceData)
			}
			if pd.defaults != tt.want {
				t.Errorf("defaults = %+v, want %+v", pd.defaults, tt.want)
			}
			if resp.DataSourceData != resp.ResourceData {
				t.Error("data sources and resources should share provider data")
			}
		})
	}
}

func TestConfigure_UnexpectedProviderData(t *testing.T) {
	rresp := &resource.ConfigureResponse{}
	NewQRCodeImageResource().(*QRCodeImageResource).Configure(context.Background(), resource.ConfigureRequest{ProviderData: "wrong"}, rresp)
	if !rresp.Diagnostics.HasError() {
		t.Error("resource Configure() expected error")
	}

	dresp := &datasource.ConfigureResponse{}
	NewQRCodeImageDataSource().(*QRCodeImageDataSource).Configure(context.Background(), datasource.ConfigureRequest{ProviderData: 42}, dresp)
	if !dresp.Diagnostics.HasError() {
		t.Error("data source Configure() expected error")
	}
}

func TestRequestDefaults(t *testing.T) {
	pd := newProviderData(config.Config{Style: "dots", FillColor: "navy", BackColor: "ivory", LogLevel: "error"})

	got := pd.request(
		types.StringValue("hello"),
		types.StringValue("/tmp/out.png"),
		types.StringNull(),
		types.StringValue(""),
		types.StringUnknown(),
	)
	if got.Data != "hello" || got.OutputPath != "/tmp/out.png" {
		t.Errorf("request() = %+v", got)
	}
	if got.Style != "dots" || got.FillColor != "navy" || got.BackColor != "ivory" {
		t.Errorf("request() defaults = %q %q %q, want dots navy ivory", got.Style, got.FillColor, got.BackColor)
	}

	got = pd.request(types.StringValue("x"), types.StringValue("o.png"), types.StringValue("vertical"), types.StringValue("red"), types.StringValue("blue"))
	if got.Style != "vertical" || got.FillColor != "red" || got.BackColor != "blue" {
		t.Errorf("request() = %+v, want explicit values", got)
	}
}

func TestGenerateError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantSummary string
	}{
		{
			name:        "missing directory",
			err:         fmt.Errorf("%w: /nope", validation.ErrDirectoryNotFound),
			wantSummary: "Invalid output path",
		},
		{
			name:        "capacity",
			err:         fmt.Errorf("failed to encode QR code: %w", encoder.ErrCapacityExceeded),
			wantSummary: "Content too large for a QR code",
		},
		{
			name:        "save",
			err:         fmt.Errorf("error saving QR code: %w", &format.SaveError{Path: "x.png", Err: os.ErrPermission}),
			wantSummary: "Failed to save QR code",
		},
		{
			name:        "other",
			err:         errors.New("boom"),
			wantSummary: "Failed to generate QR code",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := generateError(tt.err)
			if d.Summary() != tt.wantSummary {
				t.Errorf("Summary() = %q, want %q", d.Summary(), tt.wantSummary)
			}
			if d.Detail() != tt.err.Error() {
				t.Errorf("Detail() = %q, want %q", d.Detail(), tt.err.Error())
			}
		})
	}
}

func TestQRCodeImageResource_Lifecycle(t *testing.T) {
	ctx := context.Background()
	s := resourceSchema(t)
	typ := s.Type().TerraformType(ctx)
	outputPath := filepath.Join(t.TempDir(), "code.jpg")

	r := NewQRCodeImageResource().(*QRCodeImageResource)

	// Create
	plan := tfsdk.Plan{Schema: s, Raw: objectValue(typ, map[string]tftypes.Value{
		"content":     str("https://example.com"),
		"output_path": str(outputPath),
		"style":       str("dots"),
		"fill_color":  str("#1E88E5"),
	})}
	createResp := &resource.CreateResponse{State: tfsdk.State{Schema: s, Raw: tftypes.NewValue(typ, nil)}}
	r.Create(ctx, resource.CreateRequest{Plan: plan}, createResp)
	if createResp.Diagnostics.HasError() {
		t.Fatalf("Create() diagnostics: %v", createResp.Diagnostics)
	}

	var created QRCodeImageResourceModel
	if diags := createResp.State.Get(ctx, &created); diags.HasError() {
		t.Fatalf("State.Get() diagnostics: %v", diags)
	}
	if created.ID.ValueString() != outputPath {
		t.Errorf("id = %q, want %q", created.ID.ValueString(), outputPath)
	}
	if created.Format.ValueString() != "JPEG" {
		t.Errorf("format = %q, want JPEG", created.Format.ValueString())
	}
	if created.Style.ValueString() != "dots" || created.BackColor.ValueString() != "white" {
		t.Errorf("style/back = %q/%q, want dots/white", created.Style.ValueString(), created.BackColor.ValueString())
	}
	if created.Version.ValueInt64() < 1 {
		t.Errorf("version = %d, want >= 1", created.Version.ValueInt64())
	}
	if len(created.SHA256.ValueString()) != 64 {
		t.Errorf("sha256 = %q, want 64 hex digits", created.SHA256.ValueString())
	}

	// Read keeps an unchanged file
	readResp := &resource.ReadResponse{State: createResp.State}
	r.Read(ctx, resource.ReadRequest{State: createResp.State}, readResp)
	if readResp.Diagnostics.HasError() {
		t.Fatalf("Read() diagnostics: %v", readResp.Diagnostics)
	}
	if readResp.State.Raw.IsNull() {
		t.Fatal("Read() removed an unchanged resource")
	}

	// Read drops a modified file
	if err := os.WriteFile(outputPath, []byte("tampered"), 0644); err != nil {
		t.Fatalf("Failed to modify file: %v", err)
	}
	readResp = &resource.ReadResponse{State: createResp.State}
	r.Read(ctx, resource.ReadRequest{State: createResp.State}, readResp)
	if !readResp.State.Raw.IsNull() {
		t.Error("Read() should remove a resource whose file changed")
	}

	// Delete removes the file, and tolerates it being gone
	for i := 0; i < 2; i++ {
		deleteResp := &resource.DeleteResponse{State: createResp.State}
		r.Delete(ctx, resource.DeleteRequest{State: createResp.State}, deleteResp)
		if deleteResp.Diagnostics.HasError() {
			t.Fatalf("Delete() diagnostics: %v", deleteResp.Diagnostics)
		}
	}
	if _, err := os.Stat(outputPath); !os.IsNotExist(err) {
		t.Error("Delete() should remove the image file")
	}

	// Read drops a missing file
	readResp = &resource.ReadResponse{State: createResp.State}
	r.Read(ctx, resource.ReadRequest{State: createResp.State}, readResp)
	if !readResp.State.Raw.IsNull() {
		t.Error("Read() should remove a resource whose file is gone")
	}
}

func TestQRCodeImageResource_CreateMissingDirectory(t *testing.T) {
	ctx := context.Background()
	s := resourceSchema(t)
	typ := s.Type().TerraformType(ctx)

	plan := tfsdk.Plan{Schema: s, Raw: objectValue(typ, map[string]tftypes.Value{
		"content":     str("hello"),
		"output_path": str("/nonexistent/out.png"),
	})}
	resp := &resource.CreateResponse{State: tfsdk.State{Schema: s, Raw: tftypes.NewValue(typ, nil)}}
	NewQRCodeImageResource().Create(ctx, resource.CreateRequest{Plan: plan}, resp)

	if !resp.Diagnostics.HasError() {
		t.Fatal("Create() expected error")
	}
	if got := resp.Diagnostics.Errors()[0].Summary(); got != "Invalid output path" {
		t.Errorf("summary = %q, want Invalid output path", got)
	}
}

func TestQRCodeImageDataSource_Read(t *testing.T) {
	ctx := context.Background()
	s := dataSourceSchema(t)
	typ := s.Type().TerraformType(ctx)
	outputPath := filepath.Join(t.TempDir(), "code.webp")

	cfg := tfsdk.Config{Schema: s, Raw: objectValue(typ, map[string]tftypes.Value{
		"content":     str("data source"),
		"output_path": str(outputPath),
		"back_color":  str("255,248,225"),
	})}
	resp := &datasource.ReadResponse{State: tfsdk.State{Schema: s, Raw: tftypes.NewValue(typ, nil)}}
	NewQRCodeImageDataSource().Read(ctx, datasource.ReadRequest{Config: cfg}, resp)
	if resp.Diagnostics.HasError() {
		t.Fatalf("Read() diagnostics: %v", resp.Diagnostics)
	}

	var got QRCodeImageDataSourceModel
	if diags := resp.State.Get(ctx, &got); diags.HasError() {
		t.Fatalf("State.Get() diagnostics: %v", diags)
	}
	if got.Format.ValueString() != "WEBP" {
		t.Errorf("format = %q, want WEBP", got.Format.ValueString())
	}
	if got.Style.ValueString() != "square" || got.FillColor.ValueString() != "black" {
		t.Errorf("style/fill = %q/%q, want square/black", got.Style.ValueString(), got.FillColor.ValueString())
	}
	if got.ID.ValueString() != got.SHA256.ValueString()[:16] {
		t.Errorf("id = %q, want checksum prefix", got.ID.ValueString())
	}
	if _, err := os.Stat(outputPath); err != nil {
		t.Errorf("image file not written: %v", err)
	}
}
