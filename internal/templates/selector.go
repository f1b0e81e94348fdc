package templates

import (
	"aura/internal/lexicon"
	"aura/pkg/schema"
)

// selectionRule pairs a trigger predicate with a template constructor. Rules
// fire independently: a requirement can emit up to three templates, one per
// rule, in rule order.
type selectionRule struct {
	name  string
	fires func(lexicon.Entities) bool
	build func(lexicon.Entities) schema.TestCaseTemplate
}

var rules = []selectionRule{
	{
		name:  "authentication",
		fires: func(e lexicon.Entities) bool { return containsTerm(e.ActionVerbs, "authenticate") },
		build: authenticationTemplate,
	},
	{
		name:  "patient_data",
		fires: func(e lexicon.Entities) bool { return containsTerm(e.Keywords, "patient") },
		build: patientDataTemplate,
	},
	{
		name:  "compliance",
		fires: func(e lexicon.Entities) bool { return len(e.Regulatory) > 0 },
		build: complianceTemplate,
	},
}

// Select returns the filled templates for a requirement's extracted entities.
// When no rule fires, exactly one default template is emitted; the result is
// never empty.
func Select(e lexicon.Entities) []schema.TestCaseTemplate {
	var selected []schema.TestCaseTemplate
	for _, rule := range rules {
		if rule.fires(e) {
			selected = append(selected, rule.build(e))
		}
	}

	if len(selected) == 0 {
		selected = append(selected, defaultTemplate(e))
	}
	return selected
}

func containsTerm(terms []string, want string) bool {
	for _, t := range terms {
		if t == want {
			return true
		}
	}
	return false
}
