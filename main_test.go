package main

import (
	"context"
	"testing"

	"github.com/hashicorp/terraform-plugin-framework/provider"

	qrprovider "github.com/ankek/terraform-provider-qrcode/internal/provider"
)

func TestVersion(t *testing.T) {
	// Test that version variable exists and has a default value
	if version == "" {
		t.Error("version should not be empty")
	}

	// Default version should be "dev"
	if version != "dev" {
		t.Logf("version = %s (expected 'dev' but may be set by build)", version)
	}
}

func TestProviderVersion(t *testing.T) {
	resp := &provider.MetadataResponse{}
	qrprovider.New(version)().Metadata(context.Background(), provider.MetadataRequest{}, resp)

	if resp.Version != version {
		t.Errorf("provider version = %q, want %q", resp.Version, version)
	}
	if resp.TypeName != "qrcode" {
		t.Errorf("provider type = %q, want qrcode", resp.TypeName)
	}
}
