package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"taskdeck/internal/display"
	"taskdeck/internal/domain"
	"taskdeck/internal/theme"
)

// scrollbar gutter width in the list pane
const gutterWidth = 4

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	// popups take over the whole screen
	switch m.popup {
	case popupNewTask:
		return m.renderEditPopup("New task")
	case popupEditTask:
		return m.renderEditPopup("Edit task")
	case popupConfirmArchive:
		return m.renderConfirmPopup()
	}

	var main string
	switch m.state {
	case stateArchived:
		main = m.renderArchived()
	case stateSettings:
		main = m.renderSettings()
	default:
		main = m.renderTasks()
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.renderTabs(),
		main,
		m.renderFooter(),
	)

	return lipgloss.NewStyle().Margin(frameMargin, frameMargin).Render(content)
}

// tab bar

var tabLabels = []string{"Active tasks", "Archived tasks", "Settings"}

func (m Model) currentTab() int {
	switch m.state {
	case stateArchived:
		return 1
	case stateSettings:
		return 2
	default:
		return 0
	}
}

func (m Model) renderTabs() string {
	current := m.currentTab()

	parts := make([]string, 0, len(tabLabels))
	for i, label := range tabLabels {
		if i == current {
			parts = append(parts, m.styles.Highlight.Render(" "+label+" "))
			continue
		}
		// accent the first letter, the rest stays plain
		parts = append(parts,
			" "+m.styles.Title.Render(label[:1])+m.styles.Default.Render(label[1:])+" ")
	}

	return strings.Join(parts, " ") + "\n"
}

// main panes

// pane wraps content in the bordered pane frame of the given outer size.
func (m Model) pane(content string, w, h int) string {
	if w < 2 || h < 2 {
		return ""
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Color(m.settings.Border)).
		Width(w - 2).
		Height(h - 2).
		MaxWidth(w).
		Render(content)
}

// joinPanes lays the two main panes out along the configured split.
func (m Model) joinPanes(left, right string) string {
	if m.settings.IsHorizontal {
		return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	}
	return lipgloss.JoinVertical(lipgloss.Left, left, right)
}

func (m Model) renderTasks() string {
	w, h := m.paneSize()

	list := m.pane(m.renderTaskRows(m.store.Tasks, m.store.FirstVisible(), w-2), w, h)
	detail := m.pane(m.renderDetail(m.store.SelectedTask(), w-2), w, h)

	return m.joinPanes(list, detail)
}

func (m Model) renderArchived() string {
	w, h := m.paneSize()

	var rows string
	var selected *domain.Task
	header := "No archived tasks"

	if batch := m.store.CurrentBatch(); batch != nil {
		tasks := make([]*domain.Task, len(batch.Tasks))
		for i := range batch.Tasks {
			tasks[i] = &batch.Tasks[i]
		}
		rows = m.renderTaskRows(tasks, m.store.ArchiveFirstVisible(), w-2)
		selected = m.store.SelectedArchived()

		header = display.FormatBatchDate(batch.Date)
		if m.store.CurrArchive > 0 {
			header = "<- " + header
		}
		if m.store.CurrArchive < len(m.store.Archive)-1 {
			header = header + " ->"
		}
	}

	listContent := m.styles.Title.Render(header) + "\n" + rows
	list := m.pane(listContent, w, h)
	detail := m.pane(m.renderDetail(selected, w-2), w, h)

	return m.joinPanes(list, detail)
}

// renderTaskRows renders the visible window of the given list: scrollbar
// gutter, checkbox and title on the left, elapsed time on the right. The
// caller passes the list's own scroll offset.
func (m Model) renderTaskRows(tasks []*domain.Task, first, innerW int) string {
	window := m.store.WindowHeight()
	if window <= 0 || len(tasks) == 0 {
		return ""
	}

	last := first + window
	if last > len(tasks) {
		last = len(tasks)
	}
	if first > len(tasks) {
		first = len(tasks)
	}

	rowW := innerW - gutterWidth
	if rowW < 0 {
		rowW = 0
	}
	titleW := rowW / 2
	elapsedW := rowW - titleW

	thumb := scrollThumb(len(tasks), first, window)

	var b strings.Builder
	for i, t := range tasks[first:last] {
		gutter := "    "
		if len(tasks) > window {
			mark := "│"
			if i >= thumb[0] && i < thumb[1] {
				mark = "█"
			}
			gutter = " " + m.styles.Border.Render(mark) + "  "
		}

		title := truncate(display.Checkbox(t)+t.Title, titleW)
		elapsed := truncate(t.ElapsedString(), elapsedW)
		row := fmt.Sprintf("%-*s%*s", titleW, title, elapsedW, elapsed)

		b.WriteString(gutter)
		b.WriteString(m.rowStyle(t).Render(row))
		if i < last-first-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// scrollThumb returns the half-open row range of the proportional thumb
// within the visible window.
func scrollThumb(total, first, window int) [2]int {
	if total <= window || total == 0 {
		return [2]int{0, window}
	}
	size := window * window / total
	if size < 1 {
		size = 1
	}
	start := first * window / total
	return [2]int{start, start + size}
}

func (m Model) rowStyle(t *domain.Task) lipgloss.Style {
	switch {
	case t.IsSelected && t.IsActive:
		return m.styles.ActiveHighlight
	case t.IsSelected:
		return m.styles.Highlight
	case t.IsActive:
		return m.styles.ActiveNormal
	default:
		return m.styles.Default
	}
}

// renderDetail shows the selected task's description, soft-wrapped to the
// pane width.
func (m Model) renderDetail(task *domain.Task, innerW int) string {
	if task == nil {
		return m.styles.Default.Render("No task selected")
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(truncate(task.Title, innerW)))
	b.WriteString("\n")
	b.WriteString(m.styles.Default.Render(
		fmt.Sprintf("created %s", display.FormatCreatedOn(task.CreatedOn))))
	b.WriteString("\n\n")
	for _, line := range wrapRunes(task.Description, m.wrapWidth()) {
		b.WriteString(m.styles.Default.Render(line))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// settings screen

func (m Model) renderSettings() string {
	w, h := m.paneSize()

	var b strings.Builder
	for f := settingField(0); f < settingCount; f++ {
		style := m.styles.Default
		if f == m.setting {
			style = m.styles.Highlight
		}

		value := theme.DisplayName(m.settingValue(f))
		if f == settingSplit {
			value = "Horizontal"
			if !m.settings.IsHorizontal {
				value = "Vertical"
			}
		}

		labelW := w - 2 - len(value) - 2
		if labelW < 0 {
			labelW = 0
		}
		b.WriteString(style.Render(fmt.Sprintf(" %-*s%s ", labelW, settingLabels[f], value)))
		if f < settingCount-1 {
			b.WriteString("\n")
		}
	}

	list := m.pane(b.String(), w, h)
	preview := m.pane(m.renderPreview(), w, h)
	return m.joinPanes(list, preview)
}

// settingValue returns the palette name behind a color slot.
func (m Model) settingValue(f settingField) string {
	switch f {
	case settingNormalFg:
		return m.settings.NormalFg
	case settingNormalBg:
		return m.settings.NormalBg
	case settingSelectFg:
		return m.settings.SelectFg
	case settingSelectBg:
		return m.settings.SelectBg
	case settingActiveFg:
		return m.settings.ActiveFg
	case settingTitleFg:
		return m.settings.TitleFg
	case settingBorder:
		return m.settings.Border
	}
	return ""
}

func (m Model) renderPreview() string {
	lines := []string{
		m.styles.Title.Render("Preview"),
		"",
		m.styles.Default.Render("[ ] a regular task"),
		m.styles.Highlight.Render("[ ] the selected task"),
		m.styles.ActiveNormal.Render("[ ] a running task"),
		m.styles.ActiveHighlight.Render("[ ] a selected running task"),
	}
	return strings.Join(lines, "\n")
}

// popups

func (m Model) renderEditPopup(heading string) string {
	w, h := m.popupSize()
	wrap := m.editWrapWidth()

	titleText := m.titleEd.Text()
	descText := m.descEd.Text()
	if m.field == fieldTitle {
		titleText = m.titleEd.Display()
	} else {
		descText = m.descEd.Display()
	}

	fieldLabel := func(label string, focused bool) string {
		if focused {
			return m.styles.Highlight.Render(" " + label + " ")
		}
		return m.styles.Title.Render(label)
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(heading))
	b.WriteString("\n\n")
	b.WriteString(fieldLabel("Title", m.field == fieldTitle))
	b.WriteString("\n")
	for _, line := range wrapRunes(titleText, wrap) {
		b.WriteString(m.styles.Default.Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(fieldLabel("Description", m.field == fieldDescription))
	b.WriteString("\n")
	for _, line := range wrapRunes(descText, wrap) {
		b.WriteString(m.styles.Default.Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.renderHelp(m.keys.editHelp()))

	box := m.pane(b.String(), w, h)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m Model) renderConfirmPopup() string {
	w, h := m.confirmSize()

	content := m.styles.Title.Render("Archive tasks") + "\n\n" +
		m.styles.Default.Render("Move all done tasks to the archive?") + "\n\n" +
		m.renderHelp(m.keys.confirmHelp())

	box := m.pane(content, w, h)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// footer

func (m Model) renderFooter() string {
	status := m.message
	if m.err != nil {
		status = fmt.Sprintf("error: %v", m.err)
		if m.message != "" {
			status = fmt.Sprintf("%s (%s)", status, m.message)
		}
	}

	var bindings []key.Binding
	switch m.state {
	case stateArchived:
		bindings = m.keys.archivedHelp()
	case stateSettings:
		bindings = m.keys.settingsHelp()
	default:
		bindings = m.keys.displayHelp()
	}

	return "\n" + m.styles.Default.Render(status) + "\n" + m.renderHelp(bindings)
}

func (m Model) renderHelp(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts,
			m.styles.Title.Render(b.Help().Key)+" "+m.styles.Default.Render(b.Help().Desc))
	}
	return strings.Join(parts, "  ")
}

// text helpers

// wrapRunes hard-wraps by code point at the given width, starting a fresh
// row at every line break. The same rule the editor's cursor math uses.
func wrapRunes(s string, width int) []string {
	if width <= 0 {
		return []string{s}
	}

	lines := []string{}
	var cur []rune
	for _, r := range s {
		if r == '\n' {
			lines = append(lines, string(cur))
			cur = nil
			continue
		}
		cur = append(cur, r)
		if len(cur) >= width {
			lines = append(lines, string(cur))
			cur = nil
		}
	}
	return append(lines, string(cur))
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 0 {
		return ""
	}
	return string(r[:width])
}
