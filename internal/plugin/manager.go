// Package plugin discovers menu entries contributed by the user. A
// plugin is a YAML descriptor in the plugin directory declaring a name
// and an external command; there is no in-process code loading.
package plugin

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"gxplorer/internal/errors"
	"gxplorer/internal/log"

	"gopkg.in/yaml.v3"
)

// Descriptor is one plugin menu entry. Command arguments may carry the
// placeholders {file} and {dir}, replaced at run time with the focused
// entry and the active pane's directory.
type Descriptor struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Command     []string `yaml:"command"`
}

// Validate checks the descriptor has everything needed to appear in the
// menu.
func (d Descriptor) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return errors.NewPluginError("plugin name is required", d.Name, errors.InvalidPlugin, nil)
	}
	if len(d.Command) == 0 {
		return errors.NewPluginError("plugin command is required", d.Name, errors.InvalidPlugin, nil)
	}
	return nil
}

// Manager loads plugin descriptors from a directory and runs them.
type Manager struct {
	dir     string
	plugins []Descriptor
}

// NewManager creates a manager scanning dir.
func NewManager(dir string) *Manager {
	return &Manager{dir: dir}
}

// Discover scans the plugin directory for descriptor files. A missing
// directory simply means no plugins; a broken descriptor is logged and
// skipped, never fatal.
func (m *Manager) Discover() error {
	m.plugins = nil

	entries, err := os.ReadDir(m.dir)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debugf("plugin directory %s not found", m.dir)
			return nil
		}
		return errors.Wrapf(err, "cannot read plugin directory %s", m.dir)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		path := filepath.Join(m.dir, entry.Name())
		desc, err := loadDescriptor(path)
		if err != nil {
			log.Warnf("skipping plugin %s: %v", entry.Name(), err)
			continue
		}
		m.plugins = append(m.plugins, desc)
		log.Debugf("loaded plugin %q from %s", desc.Name, entry.Name())
	}
	return nil
}

func loadDescriptor(path string) (Descriptor, error) {
	var desc Descriptor

	data, err := os.ReadFile(path)
	if err != nil {
		return desc, errors.Wrap(err, "cannot read descriptor")
	}
	if err := yaml.Unmarshal(data, &desc); err != nil {
		return desc, errors.NewPluginError("invalid descriptor", filepath.Base(path), errors.InvalidPlugin, err)
	}
	if err := desc.Validate(); err != nil {
		return desc, err
	}
	return desc, nil
}

// Plugins returns the discovered descriptors in discovery order.
func (m *Manager) Plugins() []Descriptor {
	return m.plugins
}

// Find returns the descriptor with the given name.
func (m *Manager) Find(name string) (Descriptor, bool) {
	for _, d := range m.plugins {
		if d.Name == name {
			return d, true
		}
	}
	return Descriptor{}, false
}

// Run executes the named plugin with placeholders substituted. The
// command runs synchronously; its combined output is returned so the
// front end can show it.
func (m *Manager) Run(name, file, dir string) (string, error) {
	desc, ok := m.Find(name)
	if !ok {
		return "", errors.NewPluginError("plugin not found", name, errors.PluginNotFound, nil)
	}

	args := make([]string, len(desc.Command))
	for i, arg := range desc.Command {
		arg = strings.ReplaceAll(arg, "{file}", file)
		arg = strings.ReplaceAll(arg, "{dir}", dir)
		args[i] = arg
	}

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		return string(out), errors.NewPluginError("plugin failed", name, errors.OperationFailed, err)
	}
	return string(out), nil
}
