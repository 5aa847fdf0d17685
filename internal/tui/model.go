// Package tui implements the dual-pane terminal front end. Two panels
// sit side by side; function keys run file operations against the
// active panel's selection with the other panel's directory as the
// implicit destination.
package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"gxplorer/internal/ai"
	"gxplorer/internal/analysis"
	"gxplorer/internal/config"
	"gxplorer/internal/log"
	"gxplorer/internal/panel"
	"gxplorer/internal/plugin"
	"gxplorer/internal/transfer"
	"gxplorer/internal/tui/styles"
	"gxplorer/internal/watch"
	"gxplorer/pkg/types"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type mode int

const (
	modeBrowse mode = iota
	modeRename
	modeMkdir
	modeFilter
	modeConfirmDelete
	modePlugins
	modeAssistant
)

// refreshMsg tells the model a watched directory changed on disk.
type refreshMsg struct {
	dir string
}

// completionMsg carries an assistant response.
type completionMsg struct {
	text string
	err  error
}

// pluginDoneMsg carries the outcome of a plugin run.
type pluginDoneMsg struct {
	name string
	out  string
	err  error
}

// editorFinishedMsg is sent when an external editor exits.
type editorFinishedMsg struct {
	err error
}

// Model is the root bubbletea model: two panels, an explicit active
// side, and the modal state for prompts and dialogs. There is no
// process-wide active-panel variable; every handler reads m.active.
type Model struct {
	cfg    *config.Config
	styles styles.Styles

	panels [2]*panel.Panel
	cursor [2]int
	active types.Side

	coord   *transfer.Coordinator
	plugins *plugin.Manager
	chat    ai.Completer
	watcher *watch.Watcher

	mode          mode
	configPath    string
	input         textinput.Model
	pendingDelete []string
	pluginCursor  int
	chatLog       []string
	chatBusy      bool

	statusMsg string
	statusErr bool
	showHelp  bool

	width  int
	height int
}

// New builds the model. The delete path runs through the coordinator
// with an always-yes confirmer because the model shows its own blocking
// dialog first; the coordinator never runs a batch the user declined.
func New(cfg *config.Config) (*Model, error) {
	left, err := panel.New(types.Left, cfg.Panels.Left, cfg.Settings.ShowHidden)
	if err != nil {
		return nil, err
	}
	right, err := panel.New(types.Right, cfg.Panels.Right, cfg.Settings.ShowHidden)
	if err != nil {
		return nil, err
	}

	plugins := plugin.NewManager(cfg.Plugins.Directory)
	if err := plugins.Discover(); err != nil {
		log.Warnf("plugin discovery: %v", err)
	}

	m := &Model{
		cfg:     cfg,
		styles:  styles.FromConfig(cfg),
		panels:  [2]*panel.Panel{left, right},
		active:  types.Left,
		coord:   transfer.New(transfer.ConfirmFunc(func(string) bool { return true })),
		plugins: plugins,
		chat:    ai.FromConfig(cfg),
		input:   textinput.New(),
	}

	if cfg.Settings.WatchRefresh {
		w, werr := watch.New()
		if werr != nil {
			log.Warnf("watch disabled: %v", werr)
		} else {
			m.watcher = w
			for _, dir := range []string{left.CurrentDir(), right.CurrentDir()} {
				if aerr := w.Add(dir); aerr != nil {
					log.Debugf("watch %s: %v", dir, aerr)
				}
			}
			w.Start()
		}
	}

	return m, nil
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return m.waitForRefresh()
}

func (m *Model) waitForRefresh() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	events := m.watcher.Events()
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return refreshMsg{dir: ev.Dir}
	}
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case refreshMsg:
		for _, p := range m.panels {
			if p.CurrentDir() == msg.dir {
				if err := p.Refresh(); err != nil {
					log.Debugf("refresh %s: %v", msg.dir, err)
				}
			}
		}
		m.clampCursors()
		return m, m.waitForRefresh()

	case completionMsg:
		m.chatBusy = false
		if msg.err != nil {
			m.chatLog = append(m.chatLog, "! "+msg.err.Error())
		} else {
			m.chatLog = append(m.chatLog, msg.text)
		}
		return m, nil

	case pluginDoneMsg:
		if msg.err != nil {
			m.setError(fmt.Sprintf("plugin %s: %v", msg.name, msg.err))
		} else {
			m.setStatus(fmt.Sprintf("plugin %s finished", msg.name))
		}
		return m, nil

	case editorFinishedMsg:
		if msg.err != nil {
			m.setError(fmt.Sprintf("editor: %v", msg.err))
		}
		m.refreshBoth()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeRename, modeMkdir, modeFilter:
		return m.handlePromptKey(msg)
	case modeConfirmDelete:
		return m.handleConfirmKey(msg)
	case modePlugins:
		return m.handlePluginKey(msg)
	case modeAssistant:
		return m.handleAssistantKey(msg)
	default:
		return m.handleBrowseKey(msg)
	}
}

func (m *Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.statusMsg = ""
	m.statusErr = false

	switch msg.String() {
	case "ctrl+c", "q", "f10":
		if m.watcher != nil {
			m.watcher.Stop()
		}
		return m, tea.Quit

	case "tab":
		m.active = m.active.Other()

	case "up", "k":
		m.moveCursor(-1)

	case "down", "j":
		m.moveCursor(1)

	case "home", "g":
		m.cursor[m.active] = 0

	case "end", "G":
		m.cursor[m.active] = len(m.activePanel().Entries()) - 1
		m.clampCursors()

	case "enter", "right", "l":
		if e, ok := m.cursorEntry(); ok && e.IsDir {
			m.navigate(m.activePanel(), e.Path)
		}

	case "backspace", "left", "h":
		p := m.activePanel()
		old := p.CurrentDir()
		if err := p.GoUp(); err != nil {
			m.setError(err.Error())
		} else {
			m.retarget(old, p.CurrentDir())
			m.cursor[m.active] = 0
		}

	case " ", "space", "insert":
		if e, ok := m.cursorEntry(); ok {
			m.activePanel().Toggle(e.Path)
			m.moveCursor(1) // commander convention: advance after toggling
		}

	case "esc":
		m.activePanel().ClearSelection()

	case "f2", "r":
		if e, ok := m.cursorEntry(); ok {
			m.mode = modeRename
			m.input = textinput.New()
			m.input.Prompt = "rename to: "
			m.input.SetValue(e.Name)
			m.input.Focus()
		}

	case "f3", "v":
		if e, ok := m.cursorEntry(); !ok || e.IsDir {
			m.setStatus("nothing to view")
		} else {
			return m, m.openCmd(e.Path)
		}

	case "f4", "e":
		if e, ok := m.cursorEntry(); !ok || e.IsDir {
			m.setStatus("nothing to edit")
		} else {
			return m, m.editCmd(e.Path)
		}

	case "f5", "c":
		m.runBatch(types.OpCopy)

	case "f6", "m":
		m.runBatch(types.OpMove)

	case "f7", "+":
		m.mode = modeMkdir
		m.input = textinput.New()
		m.input.Prompt = "new directory: "
		m.input.Focus()

	case "f8", "delete", "d":
		batch := m.operationBatch()
		if len(batch) == 0 {
			m.setStatus("nothing selected")
			break
		}
		if !m.cfg.Settings.ConfirmDelete {
			results, _ := m.coord.Delete(batch)
			m.finishBatch(types.OpDelete, results)
			break
		}
		m.pendingDelete = batch
		m.mode = modeConfirmDelete

	case "/":
		m.mode = modeFilter
		m.input = textinput.New()
		m.input.Prompt = "filter: "
		m.input.SetValue(m.activePanel().Filter())
		m.input.Focus()

	case ".":
		m.cfg.Settings.ShowHidden = !m.cfg.Settings.ShowHidden
		for _, p := range m.panels {
			if err := p.SetShowHidden(m.cfg.Settings.ShowHidden); err != nil {
				m.setError(err.Error())
			}
		}
		m.clampCursors()

	case "t":
		name := m.cfg.ToggleTheme()
		m.styles = styles.FromConfig(m.cfg)
		m.saveConfig()
		m.setStatus("theme: " + name)

	case "f9", "p":
		if len(m.plugins.Plugins()) == 0 {
			m.setStatus("no plugins installed")
			break
		}
		m.pluginCursor = 0
		m.mode = modePlugins

	case "a":
		m.mode = modeAssistant
		m.input = textinput.New()
		m.input.Prompt = "ask: "
		m.input.Focus()

	case "i":
		if e, ok := m.cursorEntry(); ok {
			m.showEntryInfo(e)
		}

	case "ctrl+r":
		m.refreshBoth()
		m.setStatus("refreshed")

	case "?":
		m.showHelp = !m.showHelp
	}

	return m, nil
}

func (m *Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		m.input.Blur()
		return m, nil

	case "enter":
		value := m.input.Value()
		prevMode := m.mode
		m.mode = modeBrowse
		m.input.Blur()

		switch prevMode {
		case modeRename:
			m.finishRename(value)
		case modeMkdir:
			m.finishMkdir(value)
		case modeFilter:
			if err := m.activePanel().SetFilter(value); err != nil {
				m.setError(err.Error())
			}
			m.clampCursors()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.mode = modeBrowse
		results, _ := m.coord.Delete(m.pendingDelete)
		m.pendingDelete = nil
		m.finishBatch(types.OpDelete, results)
	case "n", "N", "esc":
		// Declined: nothing was removed
		m.mode = modeBrowse
		m.pendingDelete = nil
		m.setStatus("delete cancelled")
	}
	return m, nil
}

func (m *Model) handlePluginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	plugins := m.plugins.Plugins()
	switch msg.String() {
	case "esc", "q":
		m.mode = modeBrowse
	case "up", "k":
		if m.pluginCursor > 0 {
			m.pluginCursor--
		}
	case "down", "j":
		if m.pluginCursor < len(plugins)-1 {
			m.pluginCursor++
		}
	case "enter":
		m.mode = modeBrowse
		desc := plugins[m.pluginCursor]
		file := ""
		if e, ok := m.cursorEntry(); ok {
			file = e.Path
		}
		dir := m.activePanel().CurrentDir()
		m.setStatus("running plugin " + desc.Name)
		return m, func() tea.Msg {
			out, err := m.plugins.Run(desc.Name, file, dir)
			return pluginDoneMsg{name: desc.Name, out: out, err: err}
		}
	}
	return m, nil
}

func (m *Model) handleAssistantKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		m.input.Blur()
		return m, nil

	case "enter":
		prompt := m.input.Value()
		if prompt == "" || m.chatBusy {
			return m, nil
		}
		m.input.SetValue("")
		m.chatLog = append(m.chatLog, ">> "+prompt)
		m.chatBusy = true
		chat := m.chat
		return m, func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			text, err := chat.Complete(ctx, prompt)
			return completionMsg{text: text, err: err}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// runBatch executes copy or move from the active panel's selection into
// the other panel's current directory.
func (m *Model) runBatch(kind types.OpKind) {
	batch := m.operationBatch()
	if len(batch) == 0 {
		m.setStatus("nothing selected")
		return
	}

	dest := m.inactivePanel().CurrentDir()
	results := m.coord.Execute(types.TransferRequest{
		Kind:    kind,
		Sources: batch,
		DestDir: dest,
	})
	m.finishBatch(kind, results)
}

// operationBatch returns the active panel's selection, falling back to
// the cursor entry when nothing is explicitly selected.
func (m *Model) operationBatch() []string {
	if sel := m.activePanel().SelectedPaths(); len(sel) > 0 {
		return sel
	}
	if e, ok := m.cursorEntry(); ok {
		return []string{e.Path}
	}
	return nil
}

// finishBatch reloads both panes, clears selection, and reports the
// outcome, failures included, in the status bar.
func (m *Model) finishBatch(kind types.OpKind, results []types.TransferResult) {
	m.refreshBoth()
	for _, p := range m.panels {
		p.ClearSelection()
	}
	m.clampCursors()

	failed := types.Failed(results)
	if len(failed) > 0 {
		first := failed[0].Error
		m.setError(fmt.Sprintf("%s: %d of %d items failed (%v)", kind, len(failed), len(results), first))
		return
	}
	m.setStatus(fmt.Sprintf("%s: %d items done", kind, len(results)))
}

func (m *Model) finishRename(newName string) {
	e, ok := m.cursorEntry()
	if !ok {
		return
	}
	if err := m.coord.Rename(e.Path, newName); err != nil {
		m.setError(err.Error())
		return
	}
	m.refreshBoth()
	for _, p := range m.panels {
		p.ClearSelection()
	}
	m.setStatus(fmt.Sprintf("renamed to %s", newName))
}

func (m *Model) finishMkdir(name string) {
	path, err := m.coord.Mkdir(m.activePanel().CurrentDir(), name)
	if err != nil {
		m.setError(err.Error())
		return
	}
	m.refreshBoth()
	for _, p := range m.panels {
		p.ClearSelection()
	}
	m.setStatus("created " + filepath.Base(path))
}

func (m *Model) navigate(p *panel.Panel, path string) {
	old := p.CurrentDir()
	if err := p.Navigate(path); err != nil {
		m.setError(err.Error())
		return
	}
	m.retarget(old, p.CurrentDir())
	m.cursor[p.Side()] = 0
}

func (m *Model) retarget(oldDir, newDir string) {
	if m.watcher == nil {
		return
	}
	if err := m.watcher.Retarget(oldDir, newDir); err != nil {
		log.Debugf("retarget watch: %v", err)
	}
}

func (m *Model) refreshBoth() {
	for _, p := range m.panels {
		if err := p.Refresh(); err != nil {
			m.setError(err.Error())
		}
	}
	m.clampCursors()
}

func (m *Model) saveConfig() {
	if m.configPath == "" {
		return
	}
	if err := config.SaveConfig(m.cfg, m.configPath); err != nil {
		log.Warnf("cannot persist config: %v", err)
	}
}

func (m *Model) activePanel() *panel.Panel {
	return m.panels[m.active]
}

func (m *Model) inactivePanel() *panel.Panel {
	return m.panels[m.active.Other()]
}

func (m *Model) cursorEntry() (types.Entry, bool) {
	entries := m.activePanel().Entries()
	i := m.cursor[m.active]
	if i < 0 || i >= len(entries) {
		return types.Entry{}, false
	}
	return entries[i], true
}

func (m *Model) moveCursor(delta int) {
	i := m.cursor[m.active] + delta
	entries := m.activePanel().Entries()
	if i < 0 {
		i = 0
	}
	if i > len(entries)-1 {
		i = len(entries) - 1
	}
	if i < 0 {
		i = 0
	}
	m.cursor[m.active] = i
}

func (m *Model) clampCursors() {
	for side, p := range m.panels {
		if m.cursor[side] >= len(p.Entries()) {
			m.cursor[side] = len(p.Entries()) - 1
		}
		if m.cursor[side] < 0 {
			m.cursor[side] = 0
		}
	}
}

func (m *Model) showEntryInfo(e types.Entry) {
	d, err := analysis.New().Inspect(e.Path)
	if err != nil {
		m.setError(err.Error())
		return
	}
	info := fmt.Sprintf("%s  %s  %s  %s",
		d.Name, d.ContentType, humanSize(d.Size), d.ModTime.Format("2006-01-02 15:04"))
	if taken, ok := d.Metadata["taken"]; ok {
		info += "  taken " + taken
	}
	m.setStatus(info)
}

func (m *Model) setStatus(msg string) {
	m.statusMsg = msg
	m.statusErr = false
}

func (m *Model) setError(msg string) {
	m.statusMsg = msg
	m.statusErr = true
	log.Debugf("ui error: %s", msg)
}

// Accessors used by the view and by tests.

// ActiveSide returns which pane currently has focus.
func (m *Model) ActiveSide() types.Side {
	return m.active
}

// Panel returns the panel for the given side.
func (m *Model) Panel(side types.Side) *panel.Panel {
	return m.panels[side]
}

// StatusMessage returns the current status line.
func (m *Model) StatusMessage() string {
	return m.statusMsg
}
