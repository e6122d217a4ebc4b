package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"taskdeck/internal/theme"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.store.SetWindowHeight(m.listHeight())
		return m, nil

	case tickMsg:
		m.store.Advance(time.Time(msg))
		if m.state == stateEdit {
			m.focusedEditor().Blink(time.Time(msg))
		}
		return m, tickCmd()

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}

		if m.popup == popupConfirmArchive {
			return m.updateConfirmArchive(msg)
		}

		switch m.state {
		case stateEdit:
			return m.updateEdit(msg)
		case stateArchived:
			return m.updateArchived(msg)
		case stateSettings:
			return m.updateSettings(msg)
		default:
			return m.updateDisplay(msg)
		}
	}

	return m, nil
}

func (m Model) updateDisplay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.NextTab):
		m.state = stateArchived
	case key.Matches(msg, m.keys.PrevTab):
		m.state = stateSettings

	case key.Matches(msg, m.keys.Up):
		m.store.SelectPrev()
	case key.Matches(msg, m.keys.Down):
		m.store.SelectNext()

	case key.Matches(msg, m.keys.MoveUp):
		m.store.MoveSelectedUp()
	case key.Matches(msg, m.keys.MoveDown):
		m.store.MoveSelectedDown()

	case key.Matches(msg, m.keys.ToggleDone):
		m.store.ToggleDone()
	case key.Matches(msg, m.keys.ToggleActive):
		m.store.ToggleActive(time.Now())

	case key.Matches(msg, m.keys.Add):
		m.openEditor(m.store.AddTask(), popupNewTask)
	case key.Matches(msg, m.keys.Edit):
		if task := m.store.SelectedTask(); task != nil {
			m.openEditor(task, popupEditTask)
		}
	case key.Matches(msg, m.keys.Delete):
		m.store.DeleteSelected()

	case key.Matches(msg, m.keys.Archive):
		if len(m.store.Tasks) > 0 {
			m.popup = popupConfirmArchive
		}

	case key.Matches(msg, m.keys.Save):
		m.save()
	}

	return m, nil
}

func (m Model) updateConfirmArchive(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.store.ArchiveDone(time.Now())
		m.popup = popupNone

	case key.Matches(msg, m.keys.Back), msg.String() == "q", msg.String() == "n":
		m.popup = popupNone
	}

	return m, nil
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	wrap := m.editWrapWidth()
	ed := m.focusedEditor()

	switch msg.Type {
	case tea.KeyEsc:
		m.closeEditor()

	case tea.KeyTab:
		m.commitEdit()
		if m.field == fieldTitle {
			m.field = fieldDescription
		} else {
			m.field = fieldTitle
		}

	case tea.KeyEnter:
		ed.Insert('\n')
	case tea.KeyBackspace:
		ed.Backspace()

	case tea.KeyLeft:
		ed.MoveLeft()
	case tea.KeyRight:
		ed.MoveRight()
	case tea.KeyUp:
		ed.MoveUp(wrap)
	case tea.KeyDown:
		ed.MoveDown(wrap)

	case tea.KeySpace:
		ed.Insert(' ')
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			ed.Insert(r)
		}
	}

	return m, nil
}

func (m Model) updateArchived(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.NextTab):
		m.state = stateSettings
	case key.Matches(msg, m.keys.PrevTab):
		m.state = stateDisplay

	case key.Matches(msg, m.keys.Up):
		m.store.ArchiveSelectPrev()
	case key.Matches(msg, m.keys.Down):
		m.store.ArchiveSelectNext()

	case key.Matches(msg, m.keys.Left):
		m.store.OlderBatch()
	case key.Matches(msg, m.keys.Right):
		m.store.NewerBatch()

	case key.Matches(msg, m.keys.Dearchive):
		m.store.DearchiveSelected()

	case key.Matches(msg, m.keys.Save):
		m.save()
	}

	return m, nil
}

func (m Model) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	// both tab directions leave the settings screen for the task list
	case key.Matches(msg, m.keys.NextTab), key.Matches(msg, m.keys.PrevTab):
		m.state = stateDisplay

	case key.Matches(msg, m.keys.Up):
		if m.setting > 0 {
			m.setting--
		}
	case key.Matches(msg, m.keys.Down):
		if m.setting < settingCount-1 {
			m.setting++
		}

	case key.Matches(msg, m.keys.Left):
		m.cycleSetting(false)
	case key.Matches(msg, m.keys.Right):
		m.cycleSetting(true)

	case key.Matches(msg, m.keys.Save):
		m.save()
	}

	return m, nil
}

// cycleSetting steps the selected slot one position through its value
// space and rebuilds the derived styles.
func (m *Model) cycleSetting(forward bool) {
	step := theme.PrevColor
	if forward {
		step = theme.NextColor
	}

	switch m.setting {
	case settingSplit:
		m.settings.IsHorizontal = !m.settings.IsHorizontal
		// the split direction changes the list pane height
		m.store.SetWindowHeight(m.listHeight())
	case settingNormalFg:
		m.settings.NormalFg = step(m.settings.NormalFg)
	case settingNormalBg:
		m.settings.NormalBg = step(m.settings.NormalBg)
	case settingSelectFg:
		m.settings.SelectFg = step(m.settings.SelectFg)
	case settingSelectBg:
		m.settings.SelectBg = step(m.settings.SelectBg)
	case settingActiveFg:
		m.settings.ActiveFg = step(m.settings.ActiveFg)
	case settingTitleFg:
		m.settings.TitleFg = step(m.settings.TitleFg)
	case settingBorder:
		m.settings.Border = step(m.settings.Border)
	}

	m.styles = theme.NewStyles(m.settings)
}

// save flushes everything to disk and records the outcome in the footer.
func (m *Model) save() {
	if err := m.saveAll(); err != nil {
		m.err = err
		m.message = ""
		return
	}
	m.err = nil
	m.message = "saved"
}

// quit attempts a final save before exiting. A failed save keeps the
// session alive so nothing is silently lost; ctrl+c still forces the exit.
func (m Model) quit() (tea.Model, tea.Cmd) {
	if err := m.saveAll(); err != nil {
		m.err = err
		m.message = "save failed, ctrl+c quits without saving"
		return m, nil
	}
	return m, tea.Quit
}
