package items

import (
	"io"
	"sort"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ErrNoItems is returned when a directory contains no loadable files.
var ErrNoItems = errors.New("no items found")

// ErrTooManyItems is returned when a directory holds more files than allowed.
var ErrTooManyItems = errors.New("too many items")

// Item is one named piece of content, a leaf of the tree built over a directory.
type Item struct {
	Name    string
	Content []byte
}

type LoadOptions struct {
	// MaxItems limits how many files may be loaded; 0 means unlimited
	MaxItems int

	// IncludeHidden loads files whose name starts with a dot
	IncludeHidden bool
}

// Filesystem is the part of a billy filesystem the loader reads through.
type Filesystem interface {
	billy.Basic
	billy.Dir
}

// Loader reads items from a billy filesystem.
type Loader struct {
	fs     Filesystem
	logger *zap.Logger
}

func NewLoader(fs Filesystem, logger *zap.Logger) *Loader {
	return &Loader{
		fs:     fs,
		logger: logger,
	}
}

// LoadDir reads every regular file directly inside dir, ordered by name.
// Subdirectories are skipped.
func (l *Loader) LoadDir(dir string, opts LoadOptions) ([]Item, error) {
	// memfs lists a missing path as empty, so check it exists first
	fi, err := l.fs.Stat(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read directory %s", dir)
	}
	if !fi.IsDir() {
		return nil, errors.Errorf("failed to read directory %s: not a directory", dir)
	}

	entries, err := l.fs.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read directory %s", dir)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	loaded := make([]Item, 0, len(entries))
	for _, entry := range entries {
		if !entry.Mode().IsRegular() {
			continue
		}
		if !opts.IncludeHidden && strings.HasPrefix(entry.Name(), ".") {
			l.logger.Sugar().Debugw("Skipping hidden file", "dir", dir, "name", entry.Name())
			continue
		}
		if opts.MaxItems > 0 && len(loaded) >= opts.MaxItems {
			return nil, errors.Wrapf(ErrTooManyItems, "directory %s has more than %d files", dir, opts.MaxItems)
		}

		content, err := l.readFile(l.fs.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		loaded = append(loaded, Item{Name: entry.Name(), Content: content})
	}

	if len(loaded) == 0 {
		return nil, errors.Wrapf(ErrNoItems, "directory %s", dir)
	}

	l.logger.Sugar().Debugw("Loaded items", "dir", dir, "count", len(loaded))
	return loaded, nil
}

func (l *Loader) readFile(path string) ([]byte, error) {
	f, err := l.fs.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	defer func() { _ = f.Close() }()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	return content, nil
}

// Contents returns the content of every item, in order.
func Contents(items []Item) [][]byte {
	out := make([][]byte, len(items))
	for i, item := range items {
		out[i] = item.Content
	}
	return out
}

// Names returns the name of every item, in order.
func Names(items []Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Name
	}
	return out
}
