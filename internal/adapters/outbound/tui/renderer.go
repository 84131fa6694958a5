package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rtighilt/MARS/internal/domain"
)

// ── warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle           = lipgloss.NewStyle().Foreground(dim)
	faintStyle         = lipgloss.NewStyle().Foreground(faint)
	passStyle          = lipgloss.NewStyle().Foreground(success)
	failStyle          = lipgloss.NewStyle().Foreground(danger)
	warnTagStyle       = lipgloss.NewStyle().Foreground(warning).Bold(true)
	infoTagStyle       = lipgloss.NewStyle().Foreground(info)
	entityStyle        = lipgloss.NewStyle().Foreground(fg)
	titleStyle         = lipgloss.NewStyle().Bold(true).Foreground(fg)
	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	hintStyle          = lipgloss.NewStyle().Foreground(dim).Italic(true)
	separatorLine      = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderReport formats a detection report for the terminal, grouped by rule
// category.
func RenderReport(report *domain.Report) string {
	var b strings.Builder

	// ── Header ──
	total := report.TotalFindings()
	title := headerStyle.Render("mars")
	subtitle := dimStyle.Render("Microservice Antipattern Report")
	countStyle := passStyle
	if total > 0 {
		countStyle = failStyle
	}
	count := countStyle.Bold(true).Render(fmt.Sprintf("%d findings", total))

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + count))
	b.WriteString("\n\n")

	renderSystemInfo(&b, report)

	// ── Categories ──
	sections := report.Sections()
	for _, cat := range domain.RuleCategories {
		var inCat []domain.RuleSection
		for _, s := range sections {
			if s.Category == cat {
				inCat = append(inCat, s)
			}
		}
		if len(inCat) == 0 {
			continue
		}

		b.WriteString("\n")
		b.WriteString("  " + sectionHeaderStyle.Render(strings.ToUpper(string(cat))) + "\n")
		for _, s := range inCat {
			renderSection(&b, s)
		}
	}

	// ── Warnings ──
	if len(report.Warnings) > 0 {
		b.WriteString("\n")
		b.WriteString("  " + separatorLine + "\n\n")
		b.WriteString(fmt.Sprintf("  %s  %s\n\n",
			titleStyle.Render("Warnings"),
			warnTagStyle.Render(fmt.Sprintf("%d", len(report.Warnings))),
		))
		for _, w := range report.Warnings {
			fmt.Fprintf(&b, "    %s %s %s\n",
				warnTagStyle.Render("warn "),
				dimStyle.Render(fmt.Sprintf("[%s] %s:", w.Rule, w.Entity)),
				w.Message,
			)
		}
	}

	b.WriteString("\n")
	return b.String()
}

func renderSystemInfo(b *strings.Builder, report *domain.Report) {
	st := report.Stats
	b.WriteString("  " + titleStyle.Render("System") + "\n")
	rows := [][2]string{
		{"Services", fmt.Sprintf("%d", st.NbServices)},
		{"Total LOC", fmt.Sprintf("%d", st.TotalLocs)},
		{"Total files", fmt.Sprintf("%d", st.TotalFiles)},
		{"Average LOC", fmt.Sprintf("%d", int(st.AvgLocs))},
		{"Average files", fmt.Sprintf("%d", int(st.AvgFiles))},
	}
	if report.Source != "" {
		rows = append(rows, [2]string{"Metamodel", report.Source})
	}
	if report.CommitHash != "" {
		rows = append(rows, [2]string{"Commit", shortHash(report.CommitHash)})
	}
	for _, r := range rows {
		fmt.Fprintf(b, "    %s %s\n", dimStyle.Render(padRight(r[0], 16)), r[1])
	}
}

func renderSection(b *strings.Builder, s domain.RuleSection) {
	icon := passStyle.Render("●")
	if len(s.Verdicts) > 0 {
		icon = failStyle.Render("●")
	}
	fmt.Fprintf(b, "    %s %s %s\n",
		icon,
		titleStyle.Render(padRight(s.Title, 30)),
		dimStyle.Render(fmt.Sprintf("%d", len(s.Verdicts))),
	)

	for _, v := range s.Verdicts {
		detail := describe(v.Evidence, s.Symmetric)
		fmt.Fprintf(b, "        %s  %s\n", entityStyle.Render(padRight(v.Entity, 24)), faintStyle.Render(detail))
	}

	if s.Advisory != nil && s.Advisory.Present {
		fmt.Fprintf(b, "        %s %s\n", infoTagStyle.Render("note"), hintStyle.Render(s.Advisory.Note))
	}
	if s.ID == domain.RuleNoHealthcheck && onlySystem(s.Verdicts) {
		fmt.Fprintf(b, "        %s %s\n", infoTagStyle.Render("note"),
			hintStyle.Render("only the system is listed, which needs no healthcheck of its own"))
	}
}

// describe renders the evidence payload of a verdict as one line.
func describe(ev domain.Evidence, symmetric bool) string {
	switch e := ev.(type) {
	case domain.SizeEvidence:
		return fmt.Sprintf("locs %d (threshold %d), files %d (threshold %d)",
			e.Locs, e.RequiredLocs, e.NbFiles, e.RequiredFiles)
	case domain.ToolEvidence:
		var parts []string
		if len(e.Found) > 0 {
			parts = append(parts, "found: "+strings.Join(e.Found, ", "))
		}
		if e.HasTool {
			parts = append(parts, "tools: "+strings.Join(e.Tools, ", "))
		} else {
			parts = append(parts, "no tool")
		}
		if len(e.Signals) > 0 {
			keys := make([]string, 0, len(e.Signals))
			for k := range e.Signals {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				parts = append(parts, fmt.Sprintf("%s=%s", k, yesNo(e.Signals[k])))
			}
		}
		return strings.Join(parts, "; ")
	case domain.TimeoutEvidence:
		return fmt.Sprintf("circuit breaker %s, timeout methods %s, timeout imports %s, fallback %s",
			yesNo(e.HasCircuitBreaker), yesNo(e.HasTimeoutMethods),
			yesNo(e.HasTimeoutImports), yesNo(e.HasFallbackMethods))
	case domain.PairEvidence:
		arrow := "→"
		if symmetric {
			arrow = "↔"
		}
		line := arrow + " " + e.To
		if len(e.Shared) > 0 {
			line += "  shared: " + strings.Join(e.Shared, ", ")
		}
		return line
	case domain.DockerEvidence:
		if e.HasDockerFile {
			return "Dockerfile present"
		}
		return "no Dockerfile"
	case domain.VersioningEvidence:
		return "missing apiVersion: " + strings.Join(e.UnversionedFiles, ", ")
	case domain.AdvisoryEvidence:
		return e.Note
	default:
		return ""
	}
}

func onlySystem(vs []domain.Verdict) bool {
	return len(vs) == 1 && vs[0].Entity == domain.SystemEntity
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func shortHash(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
