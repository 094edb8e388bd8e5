package ui

import (
	"fmt"
	"strings"

	"hubpick/internal/search"
)

// maxDropdownRows bounds the visible dropdown height; the window slides to
// keep the highlighted entry in view.
const maxDropdownRows = 12

func (m App) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	if m.filter != nil {
		b.WriteString(m.chipsView())
		b.WriteString("\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.open {
		b.WriteString(DropdownStyle.Render(m.dropdownView()))
		b.WriteString("\n")
	}

	b.WriteString(m.footerView())
	return b.String()
}

// chipsView renders one toggle chip per configured type, active chips
// bright and inactive ones dimmed, re-derived from the filter set on every
// render.
func (m App) chipsView() string {
	parts := make([]string, 0, len(m.filter.Configured()))
	for i, t := range m.filter.Configured() {
		cat := searchCategoryLabel(t)
		chip := fmt.Sprintf("%s %s [%d]", typeDot(t), cat, i+1)
		if m.filter.IsActive(t) {
			parts = append(parts, ChipActiveStyle.Render(chip))
		} else {
			parts = append(parts, ChipInactiveStyle.Render(chip))
		}
	}
	return strings.Join(parts, "  ")
}

type dropdownLine struct {
	text  string
	entry int // index into m.entries, -1 for category headers
}

// dropdownView renders the grouped result list, or the current status line
// when there is nothing to show.
func (m App) dropdownView() string {
	if m.status != statusNone {
		if m.status == statusFailed {
			return ErrorStyle.Render(m.status)
		}
		return MutedStyle.Render(m.status)
	}

	lines := m.dropdownLines()
	start, end := dropdownWindow(lines, m.activeIndex, maxDropdownRows)

	var b strings.Builder
	for i := start; i < end; i++ {
		if i > start {
			b.WriteString("\n")
		}
		b.WriteString(lines[i].text)
	}
	return b.String()
}

// dropdownLines flattens entries into display lines, inserting a category
// header whenever the category changes from the previous entry.
func (m App) dropdownLines() []dropdownLine {
	maxLabel := 0
	if m.width > 8 {
		maxLabel = m.width - 8
	}
	var lines []dropdownLine
	prevCategory := ""
	for i, e := range m.entries {
		if e.Category != prevCategory {
			prevCategory = e.Category
			header := fmt.Sprintf("%s %s", typeDot(e.Category), searchCategoryLabel(e.Category))
			lines = append(lines, dropdownLine{text: CategoryStyle.Render(header), entry: -1})
		}
		label := clampText(sanitizeText(e.ID), maxLabel)
		if e.Label != e.ID {
			extra := clampText(sanitizeText(e.Label), maxLabel)
			label = fmt.Sprintf("%s  %s", label, MutedStyle.Render(extra))
		}
		if i == m.activeIndex {
			lines = append(lines, dropdownLine{text: SelectedStyle.Render("> " + label), entry: i})
		} else {
			lines = append(lines, dropdownLine{text: NormalStyle.Render("  " + label), entry: i})
		}
	}
	return lines
}

// dropdownWindow picks the visible slice of lines, keeping the highlighted
// entry inside the window.
func dropdownWindow(lines []dropdownLine, activeIndex, maxRows int) (int, int) {
	if len(lines) <= maxRows {
		return 0, len(lines)
	}
	activeLine := 0
	if activeIndex >= 0 {
		for i, l := range lines {
			if l.entry == activeIndex {
				activeLine = i
				break
			}
		}
	}
	start := 0
	if activeLine >= maxRows {
		start = activeLine - maxRows + 1
	}
	end := start + maxRows
	if end > len(lines) {
		end = len(lines)
		start = end - maxRows
	}
	return start, end
}

func (m App) footerView() string {
	hints := []string{"↑/↓ navigate", "enter select", "tab fill", "ctrl+u clear", "esc quit"}
	if m.filter != nil {
		hints = append(hints, "alt+1..9 filter")
	}
	return MutedStyle.Render(strings.Join(hints, " · "))
}

func searchCategoryLabel(key string) string {
	if c := search.CategoryByKey(key); c != nil {
		return c.Label
	}
	return key
}

// clampText truncates to max runes with an ellipsis; max <= 0 disables.
func clampText(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return string(runes[:max])
	}
	return string(runes[:max-1]) + "…"
}

// sanitizeText strips control characters that would corrupt the terminal.
func sanitizeText(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 32 || r == 127 {
			return -1
		}
		return r
	}, s)
}
