package css

import (
	"testing"

	"go.uber.org/zap/zaptest"
)

func TestParseRulesets(t *testing.T) {
	src := `
.underline { text-decoration: underline; }
.strikeout { text-decoration: line-through; }
p, .align-center { text-align: center; margin: 0 auto; }
`
	p := NewParser(zaptest.NewLogger(t))
	sheet := p.Parse([]byte(src), "test")

	if len(sheet.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", sheet.Warnings)
	}
	if len(sheet.Rules) != 3 {
		t.Fatalf("expected 3 rules, got %d", len(sheet.Rules))
	}

	r := sheet.Rules[0]
	if len(r.Selectors) != 1 || r.Selectors[0] != ".underline" {
		t.Errorf("bad selectors for first rule: %v", r.Selectors)
	}
	if v := r.Properties["text-decoration"]; v != "underline" {
		t.Errorf("bad text-decoration value: %q", v)
	}

	r = sheet.Rules[2]
	if len(r.Selectors) != 2 || r.Selectors[0] != "p" || r.Selectors[1] != ".align-center" {
		t.Errorf("bad selectors for grouped rule: %v", r.Selectors)
	}
	if len(r.Properties) != 2 {
		t.Errorf("expected 2 properties, got %d", len(r.Properties))
	}
}

func TestParseAtRules(t *testing.T) {
	src := `
@import url("other.css");
@media screen and (max-width: 600px) {
	.monospace { font-size: 90%; }
}
.monospace { font-family: monospace; }
`
	p := NewParser(zaptest.NewLogger(t))
	sheet := p.Parse([]byte(src))

	if len(sheet.Rules) != 1 {
		t.Fatalf("expected 1 rule outside @-blocks, got %d", len(sheet.Rules))
	}
	if sheet.Rules[0].Selectors[0] != ".monospace" {
		t.Errorf("bad selector: %v", sheet.Rules[0].Selectors)
	}
	if len(sheet.Warnings) != 2 {
		t.Errorf("expected 2 warnings for skipped @-rules, got %v", sheet.Warnings)
	}
}

func TestParseEmpty(t *testing.T) {
	p := NewParser(nil)
	sheet := p.Parse(nil)
	if !sheet.Empty() {
		t.Error("expected empty stylesheet")
	}
}
