package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"taskdeck/internal/domain"
	"taskdeck/internal/storage"
	"taskdeck/internal/store"
)

func newTestModel(t *testing.T, titles ...string) Model {
	t.Helper()

	files, err := storage.New(t.TempDir())
	require.NoError(t, err)

	tasks := make([]*domain.Task, len(titles))
	for i, title := range titles {
		tasks[i] = &domain.Task{Title: title, CreatedOn: time.Now()}
	}
	if len(tasks) > 0 {
		tasks[0].IsSelected = true
	}

	st := store.New(tasks, nil)
	m := NewModel(st, files, domain.DefaultSettings())

	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return next.(Model)
}

func press(m Model, msg tea.KeyMsg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func keyRune(r rune) tea.KeyMsg {
	if r == ' ' {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func typeText(m Model, s string) Model {
	for _, r := range s {
		m = press(m, keyRune(r))
	}
	return m
}

func TestWindowSizeFeedsListHeight(t *testing.T) {
	m := newTestModel(t, "one")

	// 80x24 frame: 2-cell margins, tab bar and footer leave a 14-row main
	// area; the bordered list pane shows 12 rows.
	if got := m.store.WindowHeight(); got != 12 {
		t.Errorf("WindowHeight() = %d, want 12", got)
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 40})
	m = next.(Model)
	if got := m.store.WindowHeight(); got != 28 {
		t.Errorf("WindowHeight() after resize = %d, want 28", got)
	}
}

func TestTabCycling(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
		want appState
	}{
		{"display to archived", []tea.KeyMsg{{Type: tea.KeyTab}}, stateArchived},
		{"archived to settings", []tea.KeyMsg{{Type: tea.KeyTab}, {Type: tea.KeyTab}}, stateSettings},
		{"settings wraps to display", []tea.KeyMsg{{Type: tea.KeyTab}, {Type: tea.KeyTab}, {Type: tea.KeyTab}}, stateDisplay},
		{"display back to settings", []tea.KeyMsg{{Type: tea.KeyShiftTab}}, stateSettings},
		{"settings leaves to display either way", []tea.KeyMsg{{Type: tea.KeyShiftTab}, {Type: tea.KeyShiftTab}}, stateDisplay},
		{"archived back to display", []tea.KeyMsg{{Type: tea.KeyTab}, {Type: tea.KeyShiftTab}}, stateDisplay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, "one")
			for _, k := range tt.keys {
				m = press(m, k)
			}
			if m.state != tt.want {
				t.Errorf("state = %d, want %d", m.state, tt.want)
			}
		})
	}
}

func TestSelectionKeys(t *testing.T) {
	m := newTestModel(t, "one", "two", "three")

	m = press(m, keyRune('j'))
	require.Equal(t, "two", m.store.SelectedTask().Title)

	m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, "three", m.store.SelectedTask().Title)

	m = press(m, keyRune('k'))
	require.Equal(t, "two", m.store.SelectedTask().Title)
}

func TestReorderKeys(t *testing.T) {
	m := newTestModel(t, "one", "two")

	m = press(m, keyRune('i'))
	require.Equal(t, "two", m.store.Tasks[0].Title)
	require.Equal(t, "one", m.store.Tasks[1].Title)

	m = press(m, keyRune('u'))
	require.Equal(t, "one", m.store.Tasks[0].Title)
}

func TestToggleDoneKey(t *testing.T) {
	m := newTestModel(t, "one")

	m = press(m, keyRune(' '))
	require.True(t, m.store.Tasks[0].IsDone)

	m = press(m, keyRune(' '))
	require.False(t, m.store.Tasks[0].IsDone)
}

func TestToggleActiveKey(t *testing.T) {
	m := newTestModel(t, "one")

	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.store.Tasks[0].IsActive)

	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.False(t, m.store.Tasks[0].IsActive)
}

func TestAddEditCommitFlow(t *testing.T) {
	m := newTestModel(t)

	m = press(m, keyRune('a'))
	require.Equal(t, stateEdit, m.state)
	require.Equal(t, popupNewTask, m.popup)
	require.Equal(t, fieldTitle, m.field, "a fresh task starts on its title")
	require.Len(t, m.store.Tasks, 1)

	m = typeText(m, "Buy milk")
	m = press(m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, fieldDescription, m.field)
	// field switch already committed the title
	require.Equal(t, "Buy milk", m.store.Tasks[0].Title)

	m = typeText(m, "2% from the corner shop")
	m = press(m, tea.KeyMsg{Type: tea.KeyEsc})

	require.Equal(t, stateDisplay, m.state)
	require.Equal(t, popupNone, m.popup)
	require.Equal(t, "Buy milk", m.store.Tasks[0].Title)
	require.Equal(t, "2% from the corner shop", m.store.Tasks[0].Description)
	require.True(t, m.store.Tasks[0].IsSelected)
}

func TestEditStartsOnDescription(t *testing.T) {
	m := newTestModel(t, "one")
	m.store.Tasks[0].Description = "existing"

	m = press(m, keyRune('e'))
	require.Equal(t, popupEditTask, m.popup)
	require.Equal(t, fieldDescription, m.field)

	m = typeText(m, " notes")
	m = press(m, tea.KeyMsg{Type: tea.KeyEsc})

	require.Equal(t, "one", m.store.Tasks[0].Title, "title must not take the keystrokes")
	require.Equal(t, "existing notes", m.store.Tasks[0].Description)
}

func TestEditTitleStripsLineBreaks(t *testing.T) {
	m := newTestModel(t, "one")

	m = press(m, keyRune('e'))
	m = press(m, tea.KeyMsg{Type: tea.KeyTab}) // over to the title field
	require.Equal(t, fieldTitle, m.field)

	m = typeText(m, " extended")
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	m = typeText(m, "more")
	m = press(m, tea.KeyMsg{Type: tea.KeyEsc})

	require.Equal(t, "one extendedmore", m.store.Tasks[0].Title)
}

func TestEditOnEmptyListIsNoop(t *testing.T) {
	m := newTestModel(t)

	m = press(m, keyRune('e'))
	if m.state != stateDisplay {
		t.Errorf("state = %d, want stateDisplay", m.state)
	}
}

func TestArchiveConfirmFlow(t *testing.T) {
	m := newTestModel(t, "one", "two")

	m = press(m, keyRune(' ')) // mark "one" done
	m = press(m, keyRune('c'))
	require.Equal(t, popupConfirmArchive, m.popup)

	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, popupNone, m.popup)
	require.Len(t, m.store.Tasks, 1)
	require.Len(t, m.store.Archive, 1)
	require.Equal(t, "one", m.store.Archive[0].Tasks[0].Title)
}

func TestArchiveConfirmDismiss(t *testing.T) {
	m := newTestModel(t, "one")

	m = press(m, keyRune('c'))
	m = press(m, tea.KeyMsg{Type: tea.KeyEsc})

	require.Equal(t, popupNone, m.popup)
	require.Equal(t, stateDisplay, m.state)
	require.Empty(t, m.store.Archive)
}

func TestDearchiveKey(t *testing.T) {
	m := newTestModel(t, "one")

	m = press(m, keyRune(' '))
	m = press(m, keyRune('c'))
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Empty(t, m.store.Tasks)

	m = press(m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, stateArchived, m.state)

	m = press(m, keyRune(' '))
	require.Len(t, m.store.Tasks, 1)
	require.False(t, m.store.Tasks[0].IsDone)
	require.Empty(t, m.store.Archive)
}

func TestSettingsCycling(t *testing.T) {
	m := newTestModel(t)
	m = press(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Equal(t, stateSettings, m.state)

	// first slot flips the split direction
	m = press(m, tea.KeyMsg{Type: tea.KeyRight})
	require.False(t, m.settings.IsHorizontal)
	m = press(m, tea.KeyMsg{Type: tea.KeyLeft})
	require.True(t, m.settings.IsHorizontal)

	// color slots step through the palette
	m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	m = press(m, tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, "cyan", m.settings.NormalFg)
	m = press(m, tea.KeyMsg{Type: tea.KeyLeft})
	require.Equal(t, "white", m.settings.NormalFg)
}

func TestSettingFieldClamped(t *testing.T) {
	m := newTestModel(t)
	m = press(m, tea.KeyMsg{Type: tea.KeyShiftTab})

	m = press(m, tea.KeyMsg{Type: tea.KeyUp})
	require.Equal(t, settingSplit, m.setting)

	for i := 0; i < 20; i++ {
		m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	}
	require.Equal(t, settingCount-1, m.setting)
}

func TestQuitSavesAndExits(t *testing.T) {
	m := newTestModel(t, "one")

	next, cmd := m.Update(keyRune('q'))
	m = next.(Model)

	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	require.True(t, ok, "expected a quit message")

	// the save landed before exiting
	tasks, err := m.files.LoadTasks()
	require.NoError(t, err)
	require.Len(t, tasks, 1)
}

func TestForceQuitAlwaysExits(t *testing.T) {
	m := newTestModel(t, "one")
	m = press(m, keyRune('a')) // even mid-edit

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	require.True(t, ok)
}

func TestTickKeepsTicking(t *testing.T) {
	m := newTestModel(t, "one")

	next, cmd := m.Update(tickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	if _, ok := next.(Model); !ok {
		t.Fatal("tick should return the model")
	}
}
