package install

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/packinit/internal/ctxlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRunner struct {
	dir  string
	name string
	args []string
	err  error
}

func (r *recordingRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	r.dir, r.name, r.args = dir, name, args
	return r.err
}

func notFound(string) (string, error) { return "", errors.New("not found") }
func found(string) (string, error)    { return "/usr/bin/yarn", nil }

func TestDetect(t *testing.T) {
	testCases := []struct {
		name     string
		files    []string
		lookPath LookPathFunc
		want     Manager
	}{
		{name: "yarn.lock", files: []string{"yarn.lock"}, lookPath: notFound, want: Yarn},
		{name: "package-lock.json", files: []string{"package-lock.json"}, lookPath: found, want: NPM},
		{name: "both lockfiles prefer yarn", files: []string{"yarn.lock", "package-lock.json"}, lookPath: notFound, want: Yarn},
		{name: "yarn on PATH", lookPath: found, want: Yarn},
		{name: "fallback npm", lookPath: notFound, want: NPM},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			for _, f := range tc.files {
				require.NoError(t, os.WriteFile(filepath.Join(dir, f), nil, 0o600))
			}

			assert.Equal(t, tc.want, Detect(dir, tc.lookPath))
		})
	}
}

func TestDetect_LockfileInParent(t *testing.T) {
	root := t.TempDir()
	pkg := filepath.Join(root, "packages", "site")
	require.NoError(t, os.MkdirAll(pkg, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "package-lock.json"), nil, 0o600))

	assert.Equal(t, NPM, Detect(pkg, found))
}

func TestParseManager(t *testing.T) {
	for in, want := range map[string]Manager{"": Auto, "auto": Auto, "NPM": NPM, " yarn ": Yarn} {
		got, err := ParseManager(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseManager("pnpm")
	assert.Error(t, err)
}

func TestInstaller_Command(t *testing.T) {
	req := Request{Dependencies: []string{"webpack", "css-loader"}}

	name, args := (&Installer{Manager: Yarn}).Command(req)
	assert.Equal(t, "yarn", name)
	assert.Equal(t, []string{"add", "--dev", "webpack", "css-loader"}, args)

	name, args = (&Installer{Manager: NPM}).Command(req)
	assert.Equal(t, "npm", name)
	assert.Equal(t, []string{"install", "--save-dev", "webpack", "css-loader"}, args)
}

func TestInstaller_CommandIgnoresProduction(t *testing.T) {
	for _, m := range []Manager{Yarn, NPM} {
		inst := &Installer{Manager: m}
		deps := []string{"webpack", "mini-css-extract-plugin"}

		devName, devArgs := inst.Command(Request{Dependencies: deps})
		prodName, prodArgs := inst.Command(Request{Dependencies: deps, Production: true})

		assert.Equal(t, devName, prodName)
		assert.Equal(t, devArgs, prodArgs, "%s installs dev-dependencies in both modes", m)
	}
}

func TestInstaller_Install(t *testing.T) {
	ctx := ctxlog.Discard(context.Background())

	t.Run("runs the command", func(t *testing.T) {
		r := &recordingRunner{}
		i := &Installer{Manager: NPM, Dir: "/proj", Runner: r}

		require.NoError(t, i.Install(ctx, Request{Dependencies: []string{"webpack"}, Production: true}))

		assert.Equal(t, "/proj", r.dir)
		assert.Equal(t, "npm", r.name)
		assert.Equal(t, []string{"install", "--save-dev", "webpack"}, r.args)
	})

	t.Run("dry run", func(t *testing.T) {
		r := &recordingRunner{}
		i := &Installer{Manager: Yarn, Runner: r, DryRun: true}

		require.NoError(t, i.Install(ctx, Request{Dependencies: []string{"webpack"}}))
		assert.Empty(t, r.name)
	})

	t.Run("nothing to install", func(t *testing.T) {
		r := &recordingRunner{}
		require.NoError(t, (&Installer{Runner: r}).Install(ctx, Request{}))
		assert.Empty(t, r.name)
	})

	t.Run("runner failure", func(t *testing.T) {
		boom := errors.New("boom")
		i := &Installer{Manager: NPM, Runner: &recordingRunner{err: boom}}

		err := i.Install(ctx, Request{Dependencies: []string{"webpack"}})
		assert.ErrorIs(t, err, boom)
	})

	t.Run("missing runner", func(t *testing.T) {
		err := (&Installer{Manager: NPM}).Install(ctx, Request{Dependencies: []string{"webpack"}})
		assert.ErrorIs(t, err, ErrNoRunner)
	})
}
