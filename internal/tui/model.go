package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"taskdeck/internal/domain"
	"taskdeck/internal/storage"
	"taskdeck/internal/store"
	"taskdeck/internal/textedit"
	"taskdeck/internal/theme"
)

type appState int

const (
	stateDisplay appState = iota
	stateEdit
	stateArchived
	stateSettings
)

type popupKind int

const (
	popupNone popupKind = iota
	popupNewTask
	popupEditTask
	popupConfirmArchive
)

type editField int

const (
	fieldTitle editField = iota
	fieldDescription
)

// settings screen slots, top to bottom
type settingField int

const (
	settingSplit settingField = iota
	settingNormalFg
	settingNormalBg
	settingSelectFg
	settingSelectBg
	settingActiveFg
	settingTitleFg
	settingBorder

	settingCount
)

var settingLabels = map[settingField]string{
	settingSplit:    "Split direction",
	settingNormalFg: "Task text",
	settingNormalBg: "Background",
	settingSelectFg: "Selected text",
	settingSelectBg: "Selected background",
	settingActiveFg: "Active task",
	settingTitleFg:  "Titles",
	settingBorder:   "Borders",
}

type Model struct {
	store    *store.Store
	files    *storage.Files
	settings domain.Settings
	styles   *theme.Styles

	keys keyMap

	state   appState
	popup   popupKind
	field   editField
	setting settingField

	titleEd textedit.Editor
	descEd  textedit.Editor
	editing *domain.Task

	width  int
	height int

	message string
	err     error
}

func NewModel(st *store.Store, files *storage.Files, settings domain.Settings) Model {
	return Model{
		store:    st,
		files:    files,
		settings: settings,
		styles:   theme.NewStyles(settings),
		keys:     defaultKeyMap(),
		state:    stateDisplay,
		popup:    popupNone,
	}
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// frame geometry, derived from the last window size

const (
	frameMargin  = 2
	tabBarHeight = 2
	footerHeight = 4
)

// paneSize is the outer size of one of the two main panes, split 50/50
// along the configured direction.
func (m Model) paneSize() (int, int) {
	innerW := m.width - 2*frameMargin
	innerH := m.height - 2*frameMargin - tabBarHeight - footerHeight
	if innerW < 0 {
		innerW = 0
	}
	if innerH < 0 {
		innerH = 0
	}
	if m.settings.IsHorizontal {
		return innerW / 2, innerH
	}
	return innerW, innerH / 2
}

// wrapWidth is the soft-wrap width of the description pane, the pane's
// width minus its border columns.
func (m Model) wrapWidth() int {
	w, _ := m.paneSize()
	if w < 2 {
		return 0
	}
	return w - 2
}

// listHeight is how many task rows fit in the list pane.
func (m Model) listHeight() int {
	_, h := m.paneSize()
	if h < 2 {
		return 0
	}
	return h - 2
}

// popupSize is the outer size of the edit popups (60% of the screen each
// way); the confirm popup uses a quarter of each dimension.
func (m Model) popupSize() (int, int) {
	return m.width * 60 / 100, m.height * 60 / 100
}

func (m Model) confirmSize() (int, int) {
	return m.width * 25 / 100, m.height * 25 / 100
}

// editWrapWidth is the soft-wrap width inside the edit popup.
func (m Model) editWrapWidth() int {
	w, _ := m.popupSize()
	if w < 4 {
		return 0
	}
	return w - 4
}

// focusedEditor returns the editor behind the focused popup field.
func (m *Model) focusedEditor() *textedit.Editor {
	if m.field == fieldTitle {
		return &m.titleEd
	}
	return &m.descEd
}

// commitEdit writes both editor buffers back onto the task under edit.
func (m *Model) commitEdit() {
	if m.editing == nil {
		return
	}
	m.editing.Title = m.titleEd.TitleText()
	m.editing.Description = m.descEd.Text()
}

// openEditor enters the edit state over the given task. A fresh task
// starts on its empty title; editing an existing one starts on the
// description.
func (m *Model) openEditor(task *domain.Task, kind popupKind) {
	m.editing = task
	m.titleEd.Load(task.Title)
	m.descEd.Load(task.Description)
	m.field = fieldTitle
	if kind == popupEditTask {
		m.field = fieldDescription
	}
	m.state = stateEdit
	m.popup = kind
}

// closeEditor commits the buffers and drops back to the task list.
func (m *Model) closeEditor() {
	m.commitEdit()
	m.editing = nil
	m.popup = popupNone
	m.state = stateDisplay
	m.store.EnsureSelection()
}

// saveAll flushes tasks, archive and settings to disk. The first failure
// wins; the session keeps running either way.
func (m *Model) saveAll() error {
	if err := m.files.SaveTasks(m.store.Tasks); err != nil {
		return err
	}
	if err := m.files.SaveArchive(m.store.Archive); err != nil {
		return err
	}
	return m.files.SaveSettings(m.settings)
}
