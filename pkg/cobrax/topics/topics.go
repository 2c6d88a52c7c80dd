// Package topics serves the reference documents bundled with the prism
// binary: the markup grammar, the configuration format and anything else
// worth reading in a terminal. Topics come from an fs.FS so they embed
// cleanly with go:embed.
package topics

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/prism/pkg/errors"
)

// Topic is a single named help document.
type Topic struct {
	Name    string
	Content string
	Ext     string
}

// Manager holds the loaded topics and the renderer used to display them.
type Manager struct {
	topics   map[string]*Topic
	renderer Renderer
}

// New scans fsys for .md and .txt files and returns a Manager serving
// them. A nil renderer falls back to plain text.
func New(fsys fs.FS, r Renderer) (*Manager, error) {
	if r == nil {
		r = &PlainRenderer{}
	}
	m := &Manager{
		topics:   make(map[string]*Topic),
		renderer: r,
	}

	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := filepath.Ext(path)
		if ext != ".md" && ext != ".txt" {
			return nil
		}
		content, err := fs.ReadFile(fsys, path)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(filepath.Base(path), ext)
		m.topics[name] = &Topic{
			Name:    name,
			Content: string(content),
			Ext:     ext,
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to scan topics")
	}
	return m, nil
}

// Get retrieves a topic by name.
func (m *Manager) Get(name string) (*Topic, bool) {
	t, ok := m.topics[name]
	return t, ok
}

// Names returns the available topic names in sorted order.
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.topics))
	for name := range m.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render formats a topic for terminal display.
func (m *Manager) Render(t *Topic) string {
	return m.renderer.Render(t.Content, t.Ext)
}
