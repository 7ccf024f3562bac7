// Package save persists and restores full simulation state as named,
// versioned JSON save files in a save directory.
package save

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pthm-cable/caldera/creatures"
	"github.com/pthm-cable/caldera/thermal"
)

// Version is incremented when the save format changes.
const Version = 1

const fileExt = ".json"

// ErrNotFound is returned when the named save does not exist.
var ErrNotFound = errors.New("save: not found")

// GameSave is the complete on-disk simulation state.
type GameSave struct {
	Version    int     `json:"version"`
	Name       string  `json:"name"`
	Timestamp  int64   `json:"timestamp"`
	SimTimeSec float64 `json:"sim_time_sec"`

	World struct {
		Width  int `json:"width"`
		Height int `json:"height"`
	} `json:"world"`

	Temperature thermal.Snapshot  `json:"temperature"`
	Creatures   []creatures.State `json:"creatures"`
}

// Info is a save-file listing entry.
type Info struct {
	Name      string
	Timestamp time.Time
}

// Manager performs save-file CRUD under a single directory.
type Manager struct {
	dir string
}

// NewManager creates a manager rooted at dir, creating it if needed.
func NewManager(dir string) (*Manager, error) {
	if dir == "" {
		return nil, errors.New("save: empty directory")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating save directory: %w", err)
	}
	return &Manager{dir: dir}, nil
}

// Save writes the game state under the given name, overwriting any previous
// save with that name.
func (m *Manager) Save(name string, gs GameSave) error {
	if err := validateName(name); err != nil {
		return err
	}

	gs.Version = Version
	gs.Name = name
	gs.Timestamp = time.Now().Unix()
	gs.World.Width = gs.Temperature.Width
	gs.World.Height = gs.Temperature.Height

	data, err := json.Marshal(gs)
	if err != nil {
		return fmt.Errorf("encoding save %q: %w", name, err)
	}

	if err := os.WriteFile(m.path(name), data, 0644); err != nil {
		return fmt.Errorf("writing save %q: %w", name, err)
	}
	return nil
}

// Load reads and validates the named save. A file that is missing required
// temperature state is rejected so callers never partially apply it.
func (m *Manager) Load(name string) (GameSave, error) {
	if err := validateName(name); err != nil {
		return GameSave{}, err
	}

	data, err := os.ReadFile(m.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return GameSave{}, fmt.Errorf("save %q: %w", name, ErrNotFound)
		}
		return GameSave{}, fmt.Errorf("reading save %q: %w", name, err)
	}

	var gs GameSave
	if err := json.Unmarshal(data, &gs); err != nil {
		return GameSave{}, fmt.Errorf("decoding save %q: %w", name, err)
	}

	t := gs.Temperature
	if t.Width <= 0 || t.Height <= 0 || len(t.Cells) != t.Width*t.Height {
		return GameSave{}, fmt.Errorf("save %q: %w", name, thermal.ErrMalformedSnapshot)
	}

	return gs, nil
}

// List returns the available saves, most recent first.
func (m *Manager) List() ([]Info, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return nil, fmt.Errorf("listing saves: %w", err)
	}

	var infos []Info
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), fileExt) {
			continue
		}
		fi, err := e.Info()
		if err != nil {
			continue
		}
		infos = append(infos, Info{
			Name:      strings.TrimSuffix(e.Name(), fileExt),
			Timestamp: fi.ModTime(),
		})
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Timestamp.After(infos[j].Timestamp)
	})
	return infos, nil
}

// Delete removes the named save.
func (m *Manager) Delete(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	if err := os.Remove(m.path(name)); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("save %q: %w", name, ErrNotFound)
		}
		return fmt.Errorf("deleting save %q: %w", name, err)
	}
	return nil
}

func (m *Manager) path(name string) string {
	return filepath.Join(m.dir, name+fileExt)
}

// validateName rejects names that would escape the save directory or
// produce awkward filenames.
func validateName(name string) error {
	if name == "" {
		return errors.New("save: empty name")
	}
	if strings.ContainsAny(name, `/\`) || name != filepath.Base(name) {
		return fmt.Errorf("save: invalid name %q", name)
	}
	return nil
}
