package cli

import (
	"fmt"

	"github.com/rtighilt/MARS/internal/domain"
	"github.com/sahilm/fuzzy"
)

// checkRuleIDs rejects ids missing from the catalog, suggesting the closest
// known ids.
func checkRuleIDs(ids []string) error {
	for _, id := range ids {
		if _, ok := domain.LookupRule(domain.RuleID(id)); ok {
			continue
		}
		err := fmt.Errorf("%w %q", domain.ErrUnknownRule, id)
		if s := suggestions(id, 3); len(s) > 0 {
			err = fmt.Errorf("%w (did you mean %s?)", err, joinQuoted(s))
		}
		return err
	}
	return nil
}

func suggestions(id string, limit int) []string {
	matches := fuzzy.Find(id, domain.RuleIDs())
	var out []string
	for _, m := range matches {
		out = append(out, m.Str)
		if len(out) == limit {
			break
		}
	}
	return out
}

func joinQuoted(values []string) string {
	s := ""
	for i, v := range values {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%q", v)
	}
	return s
}
