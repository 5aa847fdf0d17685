// Package analysis inspects files and directories: content types,
// image metadata, and per-type size breakdowns for the stats command.
package analysis

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/mknote"

	serr "gxplorer/internal/errors"
	"gxplorer/internal/log"
)

func init() {
	exif.RegisterParsers(mknote.All...)
}

// Detail describes a single inspected file.
type Detail struct {
	Path        string
	Name        string
	ContentType string
	Size        int64
	ModTime     time.Time
	IsDir       bool
	Metadata    map[string]string
}

// TypeStat aggregates files sharing a content type group.
type TypeStat struct {
	Count int
	Size  int64
}

// Summary describes a directory scan.
type Summary struct {
	Dir       string
	Files     int
	Dirs      int
	TotalSize int64
	ByType    map[string]TypeStat
}

// Engine performs file inspection.
type Engine struct{}

// New creates an analysis engine.
func New() *Engine {
	return &Engine{}
}

// Inspect reads a file's content type and, for images, EXIF metadata.
func (e *Engine) Inspect(path string) (*Detail, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, serr.NewFileError("file does not exist", path, serr.NotFound, err)
		}
		return nil, serr.NewFileError("cannot stat file", path, serr.OperationFailed, err)
	}

	d := &Detail{
		Path:    path,
		Name:    filepath.Base(path),
		Size:    info.Size(),
		ModTime: info.ModTime(),
		IsDir:   info.IsDir(),
	}
	if d.IsDir {
		d.ContentType = "directory"
		return d, nil
	}

	d.ContentType = detectContentType(path)
	if strings.HasPrefix(d.ContentType, "image/") {
		d.Metadata = imageMetadata(path)
	}
	return d, nil
}

// ScanDirectory walks one directory level and aggregates size and
// count per content type group.
func (e *Engine) ScanDirectory(dir string) (*Summary, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, serr.NewFileError("directory does not exist", dir, serr.NotFound, err)
		}
		return nil, serr.NewFileError("cannot read directory", dir, serr.OperationFailed, err)
	}

	s := &Summary{
		Dir:    dir,
		ByType: make(map[string]TypeStat),
	}
	for _, entry := range entries {
		if entry.IsDir() {
			s.Dirs++
			continue
		}
		info, err := entry.Info()
		if err != nil {
			log.Debugf("skipping %s: %v", entry.Name(), err)
			continue
		}

		s.Files++
		s.TotalSize += info.Size()

		group := typeGroup(detectContentType(filepath.Join(dir, entry.Name())))
		stat := s.ByType[group]
		stat.Count++
		stat.Size += info.Size()
		s.ByType[group] = stat
	}
	return s, nil
}

// detectContentType sniffs the first 512 bytes. Unreadable or empty
// files come back as application/octet-stream.
func detectContentType(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return "application/octet-stream"
	}
	defer f.Close()

	buf := make([]byte, 512)
	n, err := f.Read(buf)
	if err != nil && n == 0 {
		return "application/octet-stream"
	}
	return http.DetectContentType(buf[:n])
}

// typeGroup collapses a MIME type to its major class for summaries.
func typeGroup(contentType string) string {
	if i := strings.IndexAny(contentType, "/;"); i > 0 {
		return contentType[:i]
	}
	return contentType
}

// imageMetadata pulls a few EXIF fields. Missing EXIF data is normal
// and returns nil.
func imageMetadata(path string) map[string]string {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return nil
	}

	meta := make(map[string]string)
	if dt, err := x.Get(exif.DateTimeOriginal); err == nil {
		if v, verr := dt.StringVal(); verr == nil && v != "" {
			meta["taken"] = v
		}
	}
	if model, err := x.Get(exif.Model); err == nil {
		if v, verr := model.StringVal(); verr == nil && v != "" {
			meta["camera"] = v
		}
	}
	if len(meta) == 0 {
		return nil
	}
	return meta
}
