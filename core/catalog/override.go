// Package catalog - HCL rate card overrides
// Studios negotiate their own floors; a rates.hcl file can replace
// individual lookup cells and per-unit rates without rebuilding.
package catalog

import (
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"
	"github.com/zclconf/go-cty/cty"

	"vo-quote/internal/errors"
)

// Override file shape:
//
//	rate "digital_visual" "Digital Tags" {
//	  unit_low  = 180
//	  unit_high = 230
//	}
//
//	rate "radio" "Local – Regional (Terrestrial)" {
//	  term "1 Year" {
//	    text = "$950–$1,600"
//	  }
//	}

var overrideSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "rate", LabelNames: []string{"category", "sub_type"}},
	},
}

var rateSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "unit_low"},
		{Name: "unit_high"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "term", LabelNames: []string{"key"}},
	},
}

var termSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "text", Required: true},
	},
}

// ApplyOverrides loads path and patches matching entries in place.
// A missing file is not an error; a malformed one is.
func (c *Catalog) ApplyOverrides(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrap(errors.TypeConfig, "reading rate override file", err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, path)
	if diags.HasErrors() {
		return errors.Wrap(errors.TypeConfig, "parsing rate override file", diags)
	}

	content, _, diags := file.Body.PartialContent(overrideSchema)
	if diags.HasErrors() {
		return errors.Wrap(errors.TypeConfig, "reading rate blocks", diags)
	}

	for _, block := range content.Blocks {
		if err := c.applyRateBlock(block); err != nil {
			return err
		}
	}
	return nil
}

func (c *Catalog) applyRateBlock(block *hcl.Block) error {
	cat, ok := ParseCategory(block.Labels[0])
	if !ok {
		return errors.Newf(errors.TypeConfig, "unknown category %q in override", block.Labels[0])
	}
	entry, ok := c.Get(cat, block.Labels[1])
	if !ok {
		return errors.Newf(errors.TypeConfig, "unknown sub-type %q in override", block.Labels[1])
	}

	content, _, diags := block.Body.PartialContent(rateSchema)
	if diags.HasErrors() {
		return errors.Wrap(errors.TypeConfig, "reading rate override body", diags)
	}

	if attr, ok := content.Attributes["unit_low"]; ok {
		v, err := attrNumber(attr)
		if err != nil {
			return err
		}
		entry.Rule.UnitLow = v
	}
	if attr, ok := content.Attributes["unit_high"]; ok {
		v, err := attrNumber(attr)
		if err != nil {
			return err
		}
		entry.Rule.UnitHigh = v
	}

	for _, termBlock := range content.Blocks {
		termContent, _, diags := termBlock.Body.PartialContent(termSchema)
		if diags.HasErrors() {
			return errors.Wrap(errors.TypeConfig, "reading term override", diags)
		}
		attr, ok := termContent.Attributes["text"]
		if !ok {
			continue
		}
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() || val.Type() != cty.String {
			return errors.Newf(errors.TypeConfig, "term %q override needs a string text", termBlock.Labels[0])
		}
		if entry.Rule.Table == nil {
			return errors.Newf(errors.TypeConfig, "sub-type %q has no term table to override", entry.SubType)
		}
		entry.Rule.Table[termBlock.Labels[0]] = val.AsString()
	}
	return nil
}

func attrNumber(attr *hcl.Attribute) (decimal.Decimal, error) {
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() || val.Type() != cty.Number {
		return decimal.Zero, errors.Newf(errors.TypeConfig, "%s must be a number", attr.Name)
	}
	f, _ := val.AsBigFloat().Float64()
	return d(f), nil
}
