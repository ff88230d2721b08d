package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

type fileRoot struct {
	Chain *chainBlock `hcl:"chain,block"`
	Codes []string    `hcl:"codes,optional"`
	Log   *logBlock   `hcl:"log,block"`
}

type chainBlock struct {
	Depth   *int `hcl:"depth,optional"`
	Workers *int `hcl:"workers,optional"`
}

type logBlock struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
}

func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"depth": cty.ObjectVal(map[string]cty.Value{
				"short":  cty.NumberIntVal(ShortDepth),
				"robots": cty.NumberIntVal(RobotsDepth),
			}),
		},
	}
}

// Load reads the HCL file at path and applies its settings on top of base.
func Load(path string, base Config) (Config, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(src, path, base)
}

// Parse decodes HCL source and applies its settings on top of base. filename
// is used in diagnostics only.
func Parse(src []byte, filename string, base Config) (Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return base, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, evalContext(), &root); diags.HasErrors() {
		return base, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	c := base
	if root.Chain != nil {
		if root.Chain.Depth != nil {
			c.Depth = *root.Chain.Depth
		}
		if root.Chain.Workers != nil {
			c.Workers = *root.Chain.Workers
		}
	}
	if root.Log != nil {
		if root.Log.Level != nil {
			c.LogLevel = *root.Log.Level
		}
		if root.Log.Format != nil {
			c.LogFormat = *root.Log.Format
		}
	}
	c.Codes = append(append([]string(nil), base.Codes...), root.Codes...)
	return c, nil
}
