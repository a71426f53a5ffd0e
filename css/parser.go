package css

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Parser parses CSS stylesheets into structured rules.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new CSS parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// Parse parses CSS text into a Stylesheet. Rules inside @-rule blocks are not
// inspected - rendered documents carry plain rulesets only, everything else
// is recorded as a warning.
// The optional source parameter identifies what's being parsed (for debug logging).
func (p *Parser) Parse(data []byte, source ...string) *Stylesheet {
	sheet := &Stylesheet{}

	if len(source) > 0 && source[0] != "" {
		p.log.Debug("Parsing CSS", zap.String("source", source[0]), zap.Int("bytes", len(data)))
	}

	input := parse.NewInput(bytes.NewReader(data))
	parser := css.NewParser(input, false)

	var pendingSelectors []string

	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if err := parser.Err(); err != nil && err != io.EOF {
				sheet.Warnings = append(sheet.Warnings, err.Error())
				p.log.Debug("CSS parse error", zap.Error(err))
			}
			return sheet

		case css.BeginAtRuleGrammar:
			atRule := string(data)
			sheet.Warnings = append(sheet.Warnings, fmt.Sprintf("skipping %s block", atRule))
			p.skipAtRuleBlock(parser)
			p.log.Debug("Skipping @-rule", zap.String("rule", atRule))

		case css.AtRuleGrammar:
			atRule := string(data)
			sheet.Warnings = append(sheet.Warnings, fmt.Sprintf("skipping %s", atRule))
			p.log.Debug("Skipping @-rule", zap.String("rule", atRule))

		case css.QualifiedRuleGrammar:
			// selector group member, the ruleset itself follows
			pendingSelectors = append(pendingSelectors, parseSelectors(data, parser.Values())...)

		case css.BeginRulesetGrammar:
			selectors := append(pendingSelectors, parseSelectors(data, parser.Values())...)
			pendingSelectors = nil
			props := p.parseDeclarations(parser)
			if len(selectors) == 0 || len(props) == 0 {
				sheet.Warnings = append(sheet.Warnings, "dropping ruleset without selectors or declarations")
				continue
			}
			sheet.Rules = append(sheet.Rules, Rule{Selectors: selectors, Properties: props})
		}
	}
}

// skipAtRuleBlock consumes tokens until the matching end of the current
// @-rule block, honoring nested blocks.
func (p *Parser) skipAtRuleBlock(parser *css.Parser) {
	depth := 1
	for depth > 0 {
		gt, _, _ := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			return
		case css.BeginAtRuleGrammar, css.BeginRulesetGrammar:
			depth++
		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			depth--
		}
	}
}

// parseDeclarations parses property declarations until the ruleset ends.
func (p *Parser) parseDeclarations(parser *css.Parser) map[string]string {
	props := make(map[string]string)

	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar, css.EndRulesetGrammar:
			return props

		case css.DeclarationGrammar:
			var sb strings.Builder
			for _, v := range parser.Values() {
				sb.Write(v.Data)
			}
			props[string(data)] = strings.TrimSpace(sb.String())
		}
	}
}

// parseSelectors extracts selector strings from token data.
func parseSelectors(data []byte, values []css.Token) []string {
	var sb strings.Builder
	sb.Write(data)
	for _, v := range values {
		sb.Write(v.Data)
	}

	var selectors []string
	for s := range strings.SplitSeq(sb.String(), ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			selectors = append(selectors, s)
		}
	}
	return selectors
}
