package tui

import (
	"fmt"
	"strings"

	"github.com/rtighilt/MARS/internal/domain"
)

// RenderRules lists the rule catalog grouped by category.
func RenderRules(catalog []domain.RuleInfo) string {
	var b strings.Builder
	b.WriteString("\n")
	for _, cat := range domain.RuleCategories {
		header := false
		for _, r := range catalog {
			if r.Category != cat {
				continue
			}
			if !header {
				b.WriteString("  " + sectionHeaderStyle.Render(strings.ToUpper(string(cat))) + "\n")
				header = true
			}
			fmt.Fprintf(&b, "    %s %s\n", titleStyle.Render(padRight(string(r.ID), 30)), dimStyle.Render(r.Description))
		}
		if header {
			b.WriteString("\n")
		}
	}
	return b.String()
}
