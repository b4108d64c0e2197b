package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// fakeProber answers from a table keyed by path. A path with no entry
// does not exist.
type fakeProber struct {
	readOnly map[string]bool
	errs     map[string]error
}

func newFakeProber() *fakeProber {
	return &fakeProber{
		readOnly: make(map[string]bool),
		errs:     make(map[string]error),
	}
}

func (p *fakeProber) Exists(path string) bool {
	_, ok := p.readOnly[path]
	_, bad := p.errs[path]
	return ok || bad
}

func (p *fakeProber) ReadOnly(path string) (bool, error) {
	if err, ok := p.errs[path]; ok {
		return false, err
	}
	return p.readOnly[path], nil
}

type testEnv struct {
	root  string
	probe *fakeProber
	logs  *bytes.Buffer
	c     *controller
}

func setupTestEnv(t testing.TB) *testEnv {
	t.Helper()
	env := &testEnv{
		root:  t.TempDir(),
		probe: newFakeProber(),
		logs:  new(bytes.Buffer),
	}
	env.c = newController(env.root, env.probe, newLogger(env.logs, zerolog.DebugLevel))
	return env
}

// install creates f under the test root with the given contents and
// registers it with the probe.
func (env *testEnv) install(t testing.TB, f ControlFile, content string, readOnly bool) string {
	t.Helper()
	path := env.c.path(f)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	env.probe.readOnly[path] = readOnly
	return path
}

func readControlFile(t testing.TB, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}
