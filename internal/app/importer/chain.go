package importer

// Chain tries rules in order; the first rule whose trigger matches handles the line.
type Chain struct {
	rules []Rule
}

// NewChain creates an empty rule chain.
func NewChain() *Chain {
	return &Chain{
		rules: make([]Rule, 0),
	}
}

// DefaultChain returns the delimited, separated, freeform chain.
func DefaultChain() *Chain {
	c := NewChain()
	c.Add(DelimitedRule{})
	c.Add(SeparatedRule{})
	c.Add(FreeformRule{})
	return c
}

// Add appends a rule with the lowest priority so far.
func (c *Chain) Add(r Rule) {
	c.rules = append(c.rules, r)
}

// Apply runs the first matching rule on line.
// Lower priority rules are never consulted once a trigger matches,
// even if the matching rule extracts nothing.
func (c *Chain) Apply(line string) (Extraction, string) {
	for _, r := range c.rules {
		if r.Matches(line) {
			return r.Extract(line), r.Name()
		}
	}
	return Extraction{}, ""
}

// Rules returns all rules in priority order.
func (c *Chain) Rules() []Rule {
	return c.rules
}
