package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"

	"github.com/ankek/terraform-provider-qrcode/internal/validation"
)

// LoadFile decodes an HCL config file. Expressions may read environ through
// the env object (env.BRAND_COLOR) and call a few string functions.
//
//	style      = "rounded"
//	fill_color = env.BRAND_COLOR
//	back_color = lower("IVORY")
func LoadFile(path string, environ map[string]string) (Config, error) {
	if err := validation.ValidateInputPath(path, false); err != nil {
		return Config{}, fmt.Errorf("invalid config file: %w", err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("HCL parse errors: %s", diags.Error())
	}

	var cfg Config
	if diags := gohcl.DecodeBody(file.Body, evalContext(environ), &cfg); diags.HasErrors() {
		return Config{}, fmt.Errorf("failed to decode %s: %s", path, diags.Error())
	}
	return cfg, nil
}

func evalContext(environ map[string]string) *hcl.EvalContext {
	vars := make(map[string]cty.Value, len(environ))
	for k, v := range environ {
		if !hclIdentifier(k) {
			continue
		}
		vars[k] = cty.StringVal(v)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(vars),
		},
		Functions: map[string]function.Function{
			"lower":     stdlib.LowerFunc,
			"upper":     stdlib.UpperFunc,
			"trimspace": stdlib.TrimSpaceFunc,
			"format":    stdlib.FormatFunc,
		},
	}
}

// hclIdentifier reports whether name can be used as an attribute name after
// "env.". Environment variables such as "=C:" on Windows cannot.
func hclIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && (r == '-' || (r >= '0' && r <= '9')):
		default:
			return false
		}
	}
	return true
}
