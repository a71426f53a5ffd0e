// Package css performs a structural sanity check of user supplied
// stylesheets before they are merged into rendered output.
package css

// Rule is one parsed ruleset - selectors with their declarations.
type Rule struct {
	Selectors  []string
	Properties map[string]string
}

// Stylesheet is the parse result of one CSS source.
type Stylesheet struct {
	Rules    []Rule
	Warnings []string
}

// Empty reports whether parsing produced no usable rules.
func (s *Stylesheet) Empty() bool {
	return len(s.Rules) == 0
}
