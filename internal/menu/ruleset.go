package menu

// RuleSet is an ordered list of rules; the first match decides.
type RuleSet struct {
	Name  string
	rules []Rule
}

// NewRuleSet creates a rule set from rules in evaluation order.
func NewRuleSet(name string, rules ...Rule) *RuleSet {
	return &RuleSet{Name: name, rules: rules}
}

// NewRuleSetByNames resolves each name with Lookup.
func NewRuleSetByNames(name string, ruleNames []string) (*RuleSet, error) {
	rules := make([]Rule, 0, len(ruleNames))
	for _, n := range ruleNames {
		r, err := Lookup(n)
		if err != nil {
			return nil, err
		}
		rules = append(rules, r)
	}
	return NewRuleSet(name, rules...), nil
}

// Evaluate returns the visibility of the first matching rule, or invisible when none match.
func (s *RuleSet) Evaluate(ctx Context, resources []Resource) VisibilityMode {
	mode, _ := s.EvaluateWithRule(ctx, resources)
	return mode
}

// EvaluateWithRule also returns the name of the deciding rule ("" when none matched).
func (s *RuleSet) EvaluateWithRule(ctx Context, resources []Resource) (VisibilityMode, string) {
	for _, r := range s.rules {
		if r.Matches(ctx, resources) {
			return r.Visibility(ctx, resources), r.Name()
		}
	}
	return ModeInvisible, ""
}
