package store

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lixenwraith/flight-globe/camera"
)

type payload struct {
	Name   string    `msgpack:"name"`
	Points []float64 `msgpack:"points"`
}

func TestSaveLoad(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "nested"))

	in := payload{Name: "LAX-JFK", Points: []float64{1, 2.5, -3}}
	if err := s.Save("curve", in); err != nil {
		t.Fatalf("Save: %v", err)
	}

	var out payload
	mod, err := s.Load("curve", &out)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if mod.IsZero() {
		t.Error("Load returned zero modtime")
	}
	if out.Name != in.Name || len(out.Points) != 3 || out.Points[1] != 2.5 {
		t.Errorf("Load = %+v, want %+v", out, in)
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	for i := 0; i < 3; i++ {
		if err := s.Save("obj", i); err != nil {
			t.Fatal(err)
		}
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != filepath.Base(s.Path("obj")) {
		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Name()
		}
		t.Errorf("dir entries = %v, want only %s", names, filepath.Base(s.Path("obj")))
	}
}

func TestLoadMissing(t *testing.T) {
	s := New(t.TempDir())
	var v int
	if _, err := s.Load("absent", &v); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Load missing = %v, want fs.ErrNotExist", err)
	}
	if err := s.Remove("absent"); err != nil {
		t.Errorf("Remove missing = %v", err)
	}
}

func TestLoadCorrupt(t *testing.T) {
	s := New(t.TempDir())
	if err := os.WriteFile(s.Path("bad"), []byte("not zstd"), 0o644); err != nil {
		t.Fatal(err)
	}
	var v payload
	if _, err := s.Load("bad", &v); err == nil {
		t.Error("Load of corrupt file succeeded")
	}
}

func TestSessionRoundTrip(t *testing.T) {
	s := New(t.TempDir())
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	in := Session{
		View:        camera.View{RotX: 0.3, RotY: -1.2, Zoom: 2.5, OffsetY: -0.2},
		Mode:        "fixed",
		Origin:      "LAX",
		Dest:        "JFK",
		DustVisible: true,
		Muted:       true,
	}
	if err := s.SaveSession(in, now); err != nil {
		t.Fatal(err)
	}

	out, err := s.LoadSession()
	if err != nil {
		t.Fatalf("LoadSession: %v", err)
	}
	if out.Version != SessionVersion || !out.SavedAt.Equal(now) {
		t.Errorf("stamp = v%d at %v, want v%d at %v", out.Version, out.SavedAt, SessionVersion, now)
	}
	if out.View != in.View || out.Origin != "LAX" || out.Dest != "JFK" || !out.Muted || !out.DustVisible {
		t.Errorf("LoadSession = %+v, want %+v", out, in)
	}
}

func TestSessionVersionMismatch(t *testing.T) {
	s := New(t.TempDir())
	if err := s.Save(sessionName, &Session{Version: SessionVersion + 1}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.LoadSession(); !errors.Is(err, ErrVersionMismatch) {
		t.Errorf("LoadSession = %v, want ErrVersionMismatch", err)
	}
}
