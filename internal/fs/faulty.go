package fs

import (
	"errors"
	"os"
	"sync"
)

// Op names an [FS] method that [Faulty] can fail.
type Op string

// Operations that can be failed by [Faulty].
const (
	OpReadFile        Op = "ReadFile"
	OpWriteFileAtomic Op = "WriteFileAtomic"
	OpMkdirAll        Op = "MkdirAll"
	OpExists          Op = "Exists"
)

// InjectedError marks an error as intentionally injected by [Faulty].
//
// It wraps the underlying error so errors.Is/As continue to work.
type InjectedError struct {
	Op   Op
	Path string
	Err  error
}

// Error returns "<op> <path>: <err>". Panics if e or e.Err is nil.
func (e *InjectedError) Error() string {
	return string(e.Op) + " " + e.Path + ": " + e.Err.Error()
}

// Unwrap returns the underlying error. Panics if e is nil.
func (e *InjectedError) Unwrap() error {
	return e.Err
}

// IsInjected reports whether err (or any wrapped error) was injected by [Faulty].
// Returns false if err is nil.
func IsInjected(err error) bool {
	if err == nil {
		return false
	}

	var injected *InjectedError

	return errors.As(err, &injected)
}

// Faulty wraps an [FS] and fails the operations registered with
// [Faulty.Fail]. Operations that are not failed pass through to the wrapped
// [FS]. Every call is recorded and available via [Faulty.Calls].
//
// Safe for concurrent use.
type Faulty struct {
	fs FS

	mu    sync.Mutex
	fails map[Op]error
	calls []Op
}

// NewFaulty returns a [Faulty] wrapping fsys.
func NewFaulty(fsys FS) *Faulty {
	return &Faulty{fs: fsys, fails: make(map[Op]error)}
}

// Fail makes every subsequent call of op return err wrapped in an
// [InjectedError]. Panics if err is nil.
func (f *Faulty) Fail(op Op, err error) {
	if err == nil {
		panic("fs: Faulty.Fail called with nil error")
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.fails[op] = err
}

// Calls returns the operations invoked so far, in order.
func (f *Faulty) Calls() []Op {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]Op(nil), f.calls...)
}

func (f *Faulty) ReadFile(path string) ([]byte, error) {
	if err := f.check(OpReadFile, path); err != nil {
		return nil, err
	}

	return f.fs.ReadFile(path)
}

func (f *Faulty) WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	if err := f.check(OpWriteFileAtomic, path); err != nil {
		return err
	}

	return f.fs.WriteFileAtomic(path, data, perm)
}

func (f *Faulty) MkdirAll(path string, perm os.FileMode) error {
	if err := f.check(OpMkdirAll, path); err != nil {
		return err
	}

	return f.fs.MkdirAll(path, perm)
}

func (f *Faulty) Exists(path string) (bool, error) {
	if err := f.check(OpExists, path); err != nil {
		return false, err
	}

	return f.fs.Exists(path)
}

// --- Private api ---

func (f *Faulty) check(op Op, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, op)

	if err, ok := f.fails[op]; ok {
		return &InjectedError{Op: op, Path: path, Err: err}
	}

	return nil
}

var _ FS = (*Faulty)(nil)
