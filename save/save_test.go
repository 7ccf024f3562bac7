package save

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pthm-cable/caldera/creatures"
	"github.com/pthm-cable/caldera/thermal"
)

func testSave(t *testing.T) GameSave {
	t.Helper()

	m := thermal.NewManager(0)
	if err := m.Init(10, 10, 20); err != nil {
		t.Fatalf("Init: %v", err)
	}
	snap, _ := m.Snapshot()

	return GameSave{
		SimTimeSec:  12.5,
		Temperature: snap,
		Creatures: []creatures.State{
			{X: 100, Y: 200, Energy: 80, DNA: []byte{1, 2, 3, 4}},
		},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	m, err := NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	if err := m.Save("slot1", testSave(t)); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := m.Load("slot1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got.Version != Version || got.Name != "slot1" {
		t.Errorf("header = v%d %q, want v%d slot1", got.Version, got.Name, Version)
	}
	if got.SimTimeSec != 12.5 {
		t.Errorf("sim time = %v, want 12.5", got.SimTimeSec)
	}
	if got.World.Width != 10 || got.World.Height != 10 {
		t.Errorf("world = %dx%d, want 10x10", got.World.Width, got.World.Height)
	}

	// Temperature cells must survive bit-for-bit through JSON
	want := testSave(t).Temperature
	if len(got.Temperature.Cells) != len(want.Cells) {
		t.Fatalf("cells = %d, want %d", len(got.Temperature.Cells), len(want.Cells))
	}
	for i := range want.Cells {
		if got.Temperature.Cells[i] != want.Cells[i] {
			t.Fatalf("cell %d = %v, want %v", i, got.Temperature.Cells[i], want.Cells[i])
		}
	}

	if len(got.Creatures) != 1 || got.Creatures[0].Energy != 80 {
		t.Errorf("creatures = %+v, want one with energy 80", got.Creatures)
	}

	// The loaded snapshot must restore into a fresh manager cleanly
	fresh := thermal.NewManager(0)
	if err := fresh.Restore(got.Temperature); err != nil {
		t.Fatalf("Restore(loaded): %v", err)
	}
}

func TestLoadMissingSave(t *testing.T) {
	m, err := NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	if _, err := m.Load("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load(missing) error = %v, want ErrNotFound", err)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	m, err := NewManager(dir)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	tests := []struct {
		name string
		body string
	}{
		{"garbage", "not json at all"},
		{"missing cells", `{"version":1,"temperature":{"width":10,"height":10,"ambient":20}}`},
		{"cell count mismatch", `{"version":1,"temperature":{"width":2,"height":2,"ambient":20,"cells":[1,2,3]}}`},
		{"zero dimensions", `{"version":1,"temperature":{"width":0,"height":0,"ambient":20,"cells":[]}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, "bad.json")
			if err := os.WriteFile(path, []byte(tt.body), 0644); err != nil {
				t.Fatalf("writing bad save: %v", err)
			}
			if _, err := m.Load("bad"); err == nil {
				t.Error("Load accepted a malformed save")
			}
		})
	}
}

func TestListAndDelete(t *testing.T) {
	m, err := NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	gs := testSave(t)
	for _, name := range []string{"alpha", "beta"} {
		if err := m.Save(name, gs); err != nil {
			t.Fatalf("Save(%s): %v", name, err)
		}
	}

	infos, err := m.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(infos) != 2 {
		t.Fatalf("List returned %d saves, want 2", len(infos))
	}

	if err := m.Delete("alpha"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	infos, _ = m.List()
	if len(infos) != 1 || infos[0].Name != "beta" {
		t.Errorf("after Delete, List = %+v, want just beta", infos)
	}

	if err := m.Delete("alpha"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete(missing) error = %v, want ErrNotFound", err)
	}
}

func TestSaveRejectsBadNames(t *testing.T) {
	m, err := NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	for _, name := range []string{"", "../escape", "a/b", `a\b`} {
		if err := m.Save(name, testSave(t)); err == nil {
			t.Errorf("Save(%q) accepted an invalid name", name)
		}
	}
}
