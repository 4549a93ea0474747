package hcl

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/Lenostatos/Orinoco-2/internal/config"
	"github.com/Lenostatos/Orinoco-2/internal/ctxlog"
	"github.com/Lenostatos/Orinoco-2/internal/fsutil"
	"github.com/Lenostatos/Orinoco-2/internal/schema"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file found in fsys and merges all function and
// category blocks into one model, in lexical file order.
func (l *Loader) Load(ctx context.Context, fsys fs.FS) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.")

	files, err := fsutil.FindFilesByExtension(fsys, ".", ".hcl")
	if err != nil {
		return nil, fmt.Errorf("failed to discover manifest files: %w", err)
	}
	if len(files) == 0 {
		logger.Warn("No .hcl manifest files found.")
	}
	logger.Debug("Discovered HCL files.", "files", files)

	model := &config.Model{}
	var orderSource string
	parser := hclparse.NewParser()

	for _, file := range files {
		src, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("failed to read manifest %s: %w", file, err)
		}

		hclFile, diags := parser.ParseHCL(src, file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root schema.ManifestFile
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, fn := range root.Functions {
			def, err := translateFunctionDefinition(fn, file)
			if err != nil {
				return nil, fmt.Errorf("in %s: %w", file, err)
			}
			model.Functions = append(model.Functions, def)
		}
		for _, cat := range root.Categories {
			model.Categories = append(model.Categories, translateCategoryDefinition(cat, file))
		}
		if root.Order != nil {
			if orderSource != "" {
				return nil, fmt.Errorf("in %s: order is already declared in %s", file, orderSource)
			}
			model.Order = append([]string(nil), root.Order.Functions...)
			orderSource = file
		}
		logger.Debug("Loaded manifest file.", "file", file, "functions", len(root.Functions), "categories", len(root.Categories))
	}

	logger.Debug("HCL loading complete.", "functions", len(model.Functions), "categories", len(model.Categories))
	return model, nil
}
