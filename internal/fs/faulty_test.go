package fs

import (
	"errors"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFaulty_FailedOpReturnsInjectedError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "out.tsv")

	faulty := NewFaulty(NewReal())
	faulty.Fail(OpWriteFileAtomic, syscall.ENOSPC)

	err := faulty.WriteFileAtomic(path, []byte("Cat\n"), 0o644)

	if got, want := IsInjected(err), true; got != want {
		t.Fatalf("IsInjected=%v, want=%v (err=%v)", got, want, err)
	}

	if got, want := err, syscall.ENOSPC; !errors.Is(got, want) {
		t.Fatalf("err=%v, want=%v", got, want)
	}

	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Fatalf("file should not exist, stat err=%v", statErr)
	}
}

func TestFaulty_UnfailedOpsPassThrough(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "out.tsv")

	faulty := NewFaulty(NewReal())
	faulty.Fail(OpReadFile, os.ErrPermission)

	if err := faulty.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	if err := faulty.WriteFileAtomic(path, []byte("Dog\n"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic: %v", err)
	}

	exists, err := faulty.Exists(path)
	if err != nil || !exists {
		t.Fatalf("Exists=(%v, %v), want=(true, nil)", exists, err)
	}

	_, err = faulty.ReadFile(path)
	if got, want := err, os.ErrPermission; !errors.Is(got, want) {
		t.Fatalf("ReadFile err=%v, want=%v", got, want)
	}

	want := []Op{OpMkdirAll, OpWriteFileAtomic, OpExists, OpReadFile}
	if diff := cmp.Diff(want, faulty.Calls()); diff != "" {
		t.Fatalf("calls mismatch (-want +got):\n%s", diff)
	}
}

func TestIsInjected_FalseForRealErrors(t *testing.T) {
	t.Parallel()

	_, err := NewReal().ReadFile(filepath.Join(t.TempDir(), "missing"))

	if got, want := IsInjected(err), false; got != want {
		t.Fatalf("IsInjected=%v, want=%v", got, want)
	}

	if got, want := IsInjected(nil), false; got != want {
		t.Fatalf("IsInjected(nil)=%v, want=%v", got, want)
	}
}
