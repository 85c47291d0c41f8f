package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadKeepsFileOrder(t *testing.T) {
	path := writeFile(t, "characters.json", `{
  "faa": ["花"],
  "fi": [],
  "baa": ["巴", "爸", "巴"],
  "aa": null
}`)

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if diff := cmp.Diff([]string{"faa", "fi", "baa", "aa"}, s.Keys()); diff != "" {
		t.Errorf("Keys mismatch:\n%s", diff)
	}
	chars, ok := s.Get("baa")
	if !ok {
		t.Fatal("baa missing")
	}
	if diff := cmp.Diff([]string{"巴", "爸", "巴"}, chars); diff != "" {
		t.Errorf("duplicates must be kept:\n%s", diff)
	}
	if chars, ok := s.Get("fi"); !ok || len(chars) != 0 {
		t.Errorf("fi should be present and empty, got %v, %v", chars, ok)
	}
	if chars, ok := s.Get("aa"); !ok || chars == nil || len(chars) != 0 {
		t.Errorf("null value should load as an empty list, got %#v", chars)
	}
}

func TestLoadRepeatedKey(t *testing.T) {
	path := writeFile(t, "characters.json", `{"si": ["詩"], "baa": ["巴"], "si": ["時"]}`)

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if diff := cmp.Diff([]string{"si", "baa"}, s.Keys()); diff != "" {
		t.Errorf("first position should win:\n%s", diff)
	}
	if chars, _ := s.Get("si"); !cmp.Equal([]string{"時"}, chars) {
		t.Errorf("last value should win, got %v", chars)
	}
}

func TestLoadErrors(t *testing.T) {
	testCases := []struct {
		data        string
		description string
	}{
		{`{"baa": ["巴"]`, "truncated"},
		{`["baa"]`, "not an object"},
		{`{"baa": "巴"}`, "value not a list"},
		{`{"baa": [1, 2]}`, "list of numbers"},
		{`{"baa": []} {}`, "trailing data"},
		{``, "empty file"},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			path := writeFile(t, "characters.json", tc.data)
			if _, err := Load(path); err == nil {
				t.Errorf("expected error for %s", tc.description)
			}
			if s := LoadOrEmpty(path); s.Len() != 0 {
				t.Errorf("LoadOrEmpty should give an empty store, got %d keys", s.Len())
			}
		})
	}
}

func TestLoadOrEmptyMissing(t *testing.T) {
	s := LoadOrEmpty(filepath.Join(t.TempDir(), "nope.json"))
	if s == nil || s.Len() != 0 {
		t.Fatalf("expected empty store, got %v", s)
	}
}

func TestStoreCopies(t *testing.T) {
	s := New()
	in := []string{"巴"}
	s.Set("baa", in)
	in[0] = "X"

	got, _ := s.Get("baa")
	if got[0] != "巴" {
		t.Error("Set must copy its input")
	}
	got[0] = "Y"
	if again, _ := s.Get("baa"); again[0] != "巴" {
		t.Error("Get must return a copy")
	}

	keys := s.Keys()
	keys[0] = "zzz"
	if !s.Has("baa") || s.Keys()[0] != "baa" {
		t.Error("Keys must return a copy")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	s := New()
	s.Set("faa", []string{"花"})
	s.Set("fi", nil)
	s.Set("baa", []string{"巴", "爸"})

	for _, name := range []string{"characters.json", "characters.msgpack"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			if err := s.Save(path); err != nil {
				t.Fatalf("Save failed: %v", err)
			}
			loaded, err := Load(path)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if diff := cmp.Diff(s.Entries(), loaded.Entries()); diff != "" {
				t.Errorf("round trip mismatch:\n%s", diff)
			}
		})
	}
}

func TestSaveJSONLayout(t *testing.T) {
	s := New()
	s.Set("baa", []string{"巴", "爸"})
	s.Set("fi", nil)

	path := filepath.Join(t.TempDir(), "characters.json")
	if err := s.Save(path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"baa\": [\"巴\",\"爸\"],\n  \"fi\": []\n}\n"
	if diff := cmp.Diff(want, string(data)); diff != "" {
		t.Errorf("unexpected file contents:\n%s", diff)
	}
}

func TestSkeleton(t *testing.T) {
	s := Skeleton([]string{"b", "p"}, []string{"aa", "i", "m"})
	want := []string{"baa", "bi", "bm", "paa", "pi", "pm"}
	if diff := cmp.Diff(want, s.Keys()); diff != "" {
		t.Errorf("Skeleton keys mismatch:\n%s", diff)
	}
	if s.CharCount() != 0 {
		t.Errorf("Skeleton should hold no characters, got %d", s.CharCount())
	}
}
