package ui

import (
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ExportsList displays the files previously exported from the planner.
type ExportsList struct {
	mu        sync.Mutex
	dir       string
	files     []FileInfo
	list      *widget.List
	container *fyne.Container
}

// FileInfo holds metadata about an exported file.
type FileInfo struct {
	Name     string
	Path     string
	Size     int64
	Modified time.Time
}

// NewExportsList creates a list of exports found under dir.
func NewExportsList(dir string) *ExportsList {
	el := &ExportsList{
		dir:   dir,
		files: []FileInfo{},
	}

	el.list = widget.NewList(
		func() int {
			el.mu.Lock()
			defer el.mu.Unlock()
			return len(el.files)
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("template")
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			el.mu.Lock()
			defer el.mu.Unlock()
			if id >= len(el.files) {
				return
			}
			label := obj.(*widget.Label)
			label.SetText(el.formatFileItem(el.files[id]))
		},
	)

	// Selecting an entry opens the file in the system default application.
	el.list.OnSelected = func(id widget.ListItemID) {
		el.mu.Lock()
		if id >= len(el.files) {
			el.mu.Unlock()
			return
		}
		path := el.files[id].Path
		el.mu.Unlock()

		go el.openFile(path)

		// Deselect immediately to allow re-selection
		el.list.UnselectAll()
	}

	header := widget.NewLabel("Exported Files")
	header.TextStyle = fyne.TextStyle{Bold: true}

	el.container = container.NewBorder(
		container.NewVBox(header, widget.NewSeparator()),
		nil, nil, nil,
		el.list,
	)

	el.Refresh()

	return el
}

// Container returns the container widget.
func (el *ExportsList) Container() *fyne.Container {
	return el.container
}

// Refresh rescans the exports directory and updates the list.
func (el *ExportsList) Refresh() {
	files, err := el.scanFiles()
	if err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Error scanning exports: %v\n", err)
		return
	}
	if files == nil {
		files = []FileInfo{}
	}

	el.mu.Lock()
	el.files = files
	el.mu.Unlock()

	el.list.Refresh()
}

// scanFiles discovers cut lists, summaries, plots, and presets under the
// exports directory (recursive).
func (el *ExportsList) scanFiles() ([]FileInfo, error) {
	el.mu.Lock()
	dir := el.dir
	el.mu.Unlock()

	var files []FileInfo

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // skip unreadable entries
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".csv", ".txt", ".png", ".toml":
		default:
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		files = append(files, FileInfo{
			Name:     path,
			Path:     path,
			Size:     info.Size(),
			Modified: info.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Sort by modified time (newest first)
	sort.Slice(files, func(i, j int) bool {
		return files[i].Modified.After(files[j].Modified)
	})

	return files, nil
}

// formatFileItem formats a file entry for display.
func (el *ExportsList) formatFileItem(fi FileInfo) string {
	var sizeStr string
	if fi.Size < 1024 {
		sizeStr = fmt.Sprintf("%d B", fi.Size)
	} else if fi.Size < 1024*1024 {
		sizeStr = fmt.Sprintf("%.1f KB", float64(fi.Size)/1024)
	} else {
		sizeStr = fmt.Sprintf("%.1f MB", float64(fi.Size)/(1024*1024))
	}

	// Show time if modified today, date otherwise
	now := time.Now()
	var timeStr string
	if fi.Modified.Year() == now.Year() && fi.Modified.YearDay() == now.YearDay() {
		timeStr = fi.Modified.Format("15:04:05")
	} else {
		timeStr = fi.Modified.Format("2006-01-02")
	}

	return fmt.Sprintf("%s  (%s, %s)", fi.Name, sizeStr, timeStr)
}

// openFile opens a file with the system default application.
func (el *ExportsList) openFile(path string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}

	if err := cmd.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %s: %v\n", path, err)
	}
}
