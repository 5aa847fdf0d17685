//go:build !nogui
// +build !nogui

// Package gui is the Fyne desktop front end. It drives the same panel
// and transfer layers as the terminal UI, with dialogs instead of
// modal prompts.
package gui

import (
	"fmt"

	"gxplorer/internal/config"
	"gxplorer/internal/log"
	"gxplorer/internal/panel"
	"gxplorer/internal/transfer"
	"gxplorer/pkg/types"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// App is the GUI application
type App struct {
	fyneApp    fyne.App
	mainWindow fyne.Window
	cfg        *config.Config
	coord      *transfer.Coordinator

	panels [2]*panel.Panel
	cursor [2]int
	lists  [2]*widget.List
	paths  [2]*widget.Label
	active types.Side

	statusLabel *widget.Label
}

// NewApp creates a new GUI application
func NewApp(cfg *config.Config) (*App, error) {
	left, err := panel.New(types.Left, cfg.Panels.Left, cfg.Settings.ShowHidden)
	if err != nil {
		return nil, err
	}
	right, err := panel.New(types.Right, cfg.Panels.Right, cfg.Settings.ShowHidden)
	if err != nil {
		return nil, err
	}

	a := &App{
		fyneApp: app.NewWithID("io.github.gxplorer"),
		cfg:     cfg,
		coord:   transfer.New(transfer.ConfirmFunc(func(string) bool { return true })),
		panels:  [2]*panel.Panel{left, right},
		active:  types.Left,
	}

	a.mainWindow = a.fyneApp.NewWindow("GXplorer")
	a.setupMainWindow()
	return a, nil
}

// Run shows the main window and blocks until the application exits.
func (a *App) Run() {
	a.mainWindow.Resize(fyne.NewSize(1000, 640))
	a.mainWindow.ShowAndRun()
}

func (a *App) setupMainWindow() {
	a.statusLabel = widget.NewLabel("")

	leftPane := a.buildPane(types.Left)
	rightPane := a.buildPane(types.Right)

	panes := container.NewGridWithColumns(2, leftPane, rightPane)
	content := container.NewBorder(nil, container.NewVBox(a.buildToolbar(), a.statusLabel), nil, nil, panes)
	a.mainWindow.SetContent(content)
}

func (a *App) buildPane(side types.Side) fyne.CanvasObject {
	a.paths[side] = widget.NewLabel(a.panels[side].CurrentDir())
	a.paths[side].Truncation = fyne.TextTruncateEllipsis

	list := widget.NewList(
		func() int {
			return len(a.panels[side].Entries())
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("entry")
		},
		func(i widget.ListItemID, obj fyne.CanvasObject) {
			entries := a.panels[side].Entries()
			if i >= len(entries) {
				return
			}
			e := entries[i]
			label := obj.(*widget.Label)
			text := e.Name
			switch {
			case e.IsDir:
				text += "/"
			case e.IsSymlink():
				text += "@"
			}
			if a.panels[side].IsSelected(e.Path) {
				text = "* " + text
			}
			label.SetText(text)
		},
	)
	list.OnSelected = func(i widget.ListItemID) {
		a.active = side
		a.cursor[side] = i
	}
	a.lists[side] = list

	upButton := widget.NewButton("Up", func() {
		a.active = side
		a.goUp()
	})

	header := container.NewBorder(nil, nil, nil, upButton, a.paths[side])
	return container.NewBorder(header, nil, nil, nil, list)
}

func (a *App) buildToolbar() fyne.CanvasObject {
	return container.NewHBox(
		widget.NewButton("Open", a.openCursor),
		widget.NewButton("Mark", a.toggleCursor),
		widget.NewButton("Copy", func() { a.runBatch(types.OpCopy) }),
		widget.NewButton("Move", func() { a.runBatch(types.OpMove) }),
		widget.NewButton("Delete", a.deleteSelected),
		widget.NewButton("Rename", a.renameCursor),
		widget.NewButton("MkDir", a.makeDirectory),
		widget.NewButton("Refresh", a.refreshPanes),
	)
}

func (a *App) activePanel() *panel.Panel {
	return a.panels[a.active]
}

func (a *App) inactivePanel() *panel.Panel {
	return a.panels[a.active.Other()]
}

func (a *App) cursorEntry() (types.Entry, bool) {
	entries := a.activePanel().Entries()
	i := a.cursor[a.active]
	if i < 0 || i >= len(entries) {
		return types.Entry{}, false
	}
	return entries[i], true
}

func (a *App) openCursor() {
	e, ok := a.cursorEntry()
	if !ok || !e.IsDir {
		return
	}
	if err := a.activePanel().Navigate(e.Path); err != nil {
		a.ShowError("Cannot open directory", err)
		return
	}
	a.cursor[a.active] = 0
	a.refreshPanes()
}

func (a *App) goUp() {
	if err := a.activePanel().GoUp(); err != nil {
		a.ShowError("Cannot go up", err)
		return
	}
	a.cursor[a.active] = 0
	a.refreshPanes()
}

func (a *App) toggleCursor() {
	if e, ok := a.cursorEntry(); ok {
		a.activePanel().Toggle(e.Path)
		a.lists[a.active].Refresh()
	}
}

// operationBatch falls back to the cursor entry when nothing is marked.
func (a *App) operationBatch() []string {
	if sel := a.activePanel().SelectedPaths(); len(sel) > 0 {
		return sel
	}
	if e, ok := a.cursorEntry(); ok {
		return []string{e.Path}
	}
	return nil
}

func (a *App) runBatch(kind types.OpKind) {
	batch := a.operationBatch()
	if len(batch) == 0 {
		a.setStatus("Nothing selected")
		return
	}

	results := a.coord.Execute(types.TransferRequest{
		Kind:    kind,
		Sources: batch,
		DestDir: a.inactivePanel().CurrentDir(),
	})
	a.finishBatch(kind, results)
}

func (a *App) deleteSelected() {
	batch := a.operationBatch()
	if len(batch) == 0 {
		a.setStatus("Nothing selected")
		return
	}

	run := func() {
		results, _ := a.coord.Delete(batch)
		a.finishBatch(types.OpDelete, results)
	}

	if !a.cfg.Settings.ConfirmDelete {
		run()
		return
	}
	dialog.ShowConfirm("Delete",
		fmt.Sprintf("Permanently delete %d items?", len(batch)),
		func(confirmed bool) {
			if confirmed {
				run()
			}
		}, a.mainWindow)
}

func (a *App) renameCursor() {
	e, ok := a.cursorEntry()
	if !ok {
		return
	}

	entry := widget.NewEntry()
	entry.SetText(e.Name)
	formItems := []*widget.FormItem{widget.NewFormItem("New name", entry)}
	dialog.ShowForm("Rename", "Rename", "Cancel", formItems, func(confirmed bool) {
		if !confirmed {
			return
		}
		if err := a.coord.Rename(e.Path, entry.Text); err != nil {
			a.ShowError("Rename failed", err)
			return
		}
		a.refreshPanes()
	}, a.mainWindow)
}

func (a *App) makeDirectory() {
	entry := widget.NewEntry()
	formItems := []*widget.FormItem{widget.NewFormItem("Name", entry)}
	dialog.ShowForm("New Directory", "Create", "Cancel", formItems, func(confirmed bool) {
		if !confirmed {
			return
		}
		if _, err := a.coord.Mkdir(a.activePanel().CurrentDir(), entry.Text); err != nil {
			a.ShowError("Cannot create directory", err)
			return
		}
		a.refreshPanes()
	}, a.mainWindow)
}

func (a *App) finishBatch(kind types.OpKind, results []types.TransferResult) {
	a.refreshPanes()
	for _, p := range a.panels {
		p.ClearSelection()
	}

	failed := types.Failed(results)
	if len(failed) > 0 {
		a.ShowError(fmt.Sprintf("%s finished with %d failures", kind, len(failed)), failed[0].Error)
		return
	}
	a.setStatus(fmt.Sprintf("%s: %d items done", kind, len(results)))
}

func (a *App) refreshPanes() {
	for side, p := range a.panels {
		if err := p.Refresh(); err != nil {
			log.Warnf("refresh %s pane: %v", types.Side(side), err)
		}
		if a.cursor[side] >= len(p.Entries()) {
			a.cursor[side] = len(p.Entries()) - 1
		}
		if a.cursor[side] < 0 {
			a.cursor[side] = 0
		}
		a.paths[side].SetText(p.CurrentDir())
		a.lists[side].Refresh()
	}
}

func (a *App) setStatus(message string) {
	a.statusLabel.SetText(message)
}

// ShowError displays an error dialog
func (a *App) ShowError(message string, err error) {
	log.Errorf("%s: %v", message, err)
	dialog.ShowError(fmt.Errorf("%s: %w", message, err), a.mainWindow)
}

// ShowInfo displays an information dialog
func (a *App) ShowInfo(message string) {
	dialog.ShowInformation("Information", message, a.mainWindow)
}
