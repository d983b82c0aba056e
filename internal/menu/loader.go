package menu

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"
	"github.com/specialistvlad/taqueria/internal/ctxlog"
	"github.com/specialistvlad/taqueria/internal/fsutil"
	"github.com/zclconf/go-cty/cty"
)

// fileRoot is the top-level shape of a menu file:
//
//	item "Baja Taco" {
//	  price = 4.25
//	}
type fileRoot struct {
	Items []*itemBlock `hcl:"item,block"`
}

type itemBlock struct {
	Name  string    `hcl:"name,label"`
	Price cty.Value `hcl:"price"`
}

// Load reads a menu from path, which is either a single HCL file or a
// directory whose .hcl files together make up the menu. Prices may be
// written as numbers or as quoted decimal strings.
func Load(ctx context.Context, path string) (*Menu, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading menu.", "path", path)

	files, err := fsutil.FindMenuFiles(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered menu files.", "count", len(files))

	parser := hclparse.NewParser()
	var items []Item
	for _, filename := range files {
		file, diags := parser.ParseHCLFile(filename)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse menu file %s: %w", filename, diags)
		}
		fileItems, err := decodeItems(filename, file.Body)
		if err != nil {
			return nil, err
		}
		items = append(items, fileItems...)
	}

	m, err := New(items...)
	if err != nil {
		return nil, fmt.Errorf("invalid menu in %s: %w", path, err)
	}
	logger.Debug("Menu loaded.", "path", path, "items", m.Len())
	return m, nil
}

// Parse reads a menu from HCL source held in memory. filename is only used
// in diagnostics.
func Parse(src []byte, filename string) (*Menu, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse menu file %s: %w", filename, diags)
	}
	items, err := decodeItems(filename, file.Body)
	if err != nil {
		return nil, err
	}
	m, err := New(items...)
	if err != nil {
		return nil, fmt.Errorf("invalid menu in %s: %w", filename, err)
	}
	return m, nil
}

func decodeItems(filename string, body hcl.Body) ([]Item, error) {
	var root fileRoot
	if diags := gohcl.DecodeBody(body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode menu file %s: %w", filename, diags)
	}

	items := make([]Item, 0, len(root.Items))
	for _, blk := range root.Items {
		price, err := priceFromValue(blk.Price)
		if err != nil {
			return nil, fmt.Errorf("item %q in %s: %w", blk.Name, filename, err)
		}
		items = append(items, Item{Name: blk.Name, Price: price})
	}
	return items, nil
}

// priceFromValue converts an HCL price attribute to a decimal.
func priceFromValue(v cty.Value) (decimal.Decimal, error) {
	if v.IsNull() {
		return decimal.Zero, fmt.Errorf("price cannot be null")
	}
	if !v.IsKnown() {
		return decimal.Zero, fmt.Errorf("price must be a literal value")
	}

	switch v.Type() {
	case cty.Number:
		// Shortest decimal form at the value's precision: 4.25, not 4.2500000…
		return decimal.NewFromString(v.AsBigFloat().Text('f', -1))
	case cty.String:
		d, err := decimal.NewFromString(v.AsString())
		if err != nil {
			return decimal.Zero, fmt.Errorf("price %q is not a decimal amount: %w", v.AsString(), err)
		}
		return d, nil
	default:
		return decimal.Zero, fmt.Errorf("price must be a number or string, got %s", v.Type().FriendlyName())
	}
}
