package configedit

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestList_OnlyYAMLSorted(t *testing.T) {
	d := t.TempDir()
	writeTempFile(t, d, "zeta.yaml", "a: 1\n")
	writeTempFile(t, d, "alpha.yaml", "a: 1\n")
	writeTempFile(t, d, "notes.txt", "x")
	writeTempFile(t, d, "other.yml", "a: 1\n")
	if err := os.Mkdir(filepath.Join(d, "dir.yaml"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	files, err := NewStore(d, "").List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !reflect.DeepEqual(files, []string{"alpha.yaml", "zeta.yaml"}) {
		t.Fatalf("files=%v", files)
	}
}

func TestList_MissingDir(t *testing.T) {
	_, err := NewStore(filepath.Join(t.TempDir(), "nope"), "").List()
	if !IsDirNotFound(err) {
		t.Fatalf("expected dir not found, got %v", err)
	}
}

func TestCreate_CopiesTemplateExactly(t *testing.T) {
	d := t.TempDir()
	tplDir := t.TempDir()
	tpl := "---\nname: template\nparameters:\n  model: x.gguf\n"
	tplPath := writeTempFile(t, tplDir, "model_template.yaml", tpl)
	s := NewStore(d, tplPath)

	fn, err := s.Create("foo")
	if err != nil || fn != "foo.yaml" {
		t.Fatalf("create fn=%q err=%v", fn, err)
	}
	b, err := os.ReadFile(filepath.Join(d, "foo.yaml"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(b) != tpl {
		t.Fatalf("content=%q want %q", b, tpl)
	}
}

func TestCreate_ExistingIsRejectedWithoutOverwrite(t *testing.T) {
	d := t.TempDir()
	writeTempFile(t, d, "foo.yaml", "mine: true\n")
	s := NewStore(d, "")
	if _, err := s.Create("foo"); !IsAlreadyExists(err) {
		t.Fatalf("expected already exists, got %v", err)
	}
	if _, err := s.Create("foo.yaml"); !IsAlreadyExists(err) {
		t.Fatalf("expected already exists with suffix, got %v", err)
	}
	b, _ := os.ReadFile(filepath.Join(d, "foo.yaml"))
	if string(b) != "mine: true\n" {
		t.Fatalf("file was overwritten: %q", b)
	}
}

func TestCreate_DefaultTemplateAndMissingTemplate(t *testing.T) {
	d := t.TempDir()
	if _, err := NewStore(d, "").Create("builtin"); err != nil {
		t.Fatalf("create: %v", err)
	}
	b, _ := os.ReadFile(filepath.Join(d, "builtin.yaml"))
	if string(b) != string(defaultTemplate) {
		t.Fatalf("expected built-in template")
	}
	_, err := NewStore(d, filepath.Join(d, "missing_template.yaml")).Create("bar")
	if !IsNotFound(err) {
		t.Fatalf("expected template not found, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(d, "bar.yaml")); !os.IsNotExist(err) {
		t.Fatalf("bar.yaml should not exist")
	}
}

func TestInvalidNames(t *testing.T) {
	s := NewStore(t.TempDir(), "")
	for _, bad := range []string{"", "  ", ".yaml", "../evil", "a/b", `a\b`, ".hidden", ".."} {
		if _, err := s.Create(bad); !IsInvalidName(err) {
			t.Fatalf("Create(%q): expected invalid name, got %v", bad, err)
		}
		if err := s.Delete(bad); !IsInvalidName(err) {
			t.Fatalf("Delete(%q): expected invalid name, got %v", bad, err)
		}
	}
}

func TestReadSaveDelete(t *testing.T) {
	d := t.TempDir()
	writeTempFile(t, d, "m.yaml", "old: 1\n")
	s := NewStore(d, "")

	got, err := s.Read("m.yaml")
	if err != nil || got != "old: 1\n" {
		t.Fatalf("read=%q err=%v", got, err)
	}
	if err := s.Save("m", "new: 2\n"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if got, _ := s.Read("m"); got != "new: 2\n" {
		t.Fatalf("after save=%q", got)
	}
	if err := s.Save("ghost", "x"); !IsNotFound(err) {
		t.Fatalf("save to missing file: %v", err)
	}
	if err := s.Delete("m"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.Read("m"); !IsNotFound(err) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
	if err := s.Delete("m"); !IsNotFound(err) {
		t.Fatalf("second delete: %v", err)
	}
}

func TestReference(t *testing.T) {
	sizes := ContextSizes()
	want := []string{"8k", "16k", "32k", "40k", "48k", "56k", "64k", "72k", "80k", "88k", "96k", "128k"}
	if len(sizes) != len(want) {
		t.Fatalf("sizes=%+v", sizes)
	}
	for i, s := range sizes {
		if s.Label != want[i] {
			t.Fatalf("sizes[%d]=%s, want %s", i, s.Label, want[i])
		}
	}
	if sizes[3].Tokens != 40960 || sizes[11].Tokens != 131072 {
		t.Fatalf("tokens=%+v", sizes)
	}
	if len(Reference().Parameters) == 0 {
		t.Fatalf("expected parameter hints")
	}
}
