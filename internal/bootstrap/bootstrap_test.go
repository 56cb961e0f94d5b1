package bootstrap

import (
	"bytes"
	"context"
	stderrors "errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/conneroisu/expressor/internal/errors"
	"github.com/conneroisu/expressor/internal/prompt"
	"github.com/conneroisu/expressor/internal/testutils"
	"github.com/conneroisu/expressor/internal/ui"
	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const root = "/work"

// templateFetcher writes a small copy of the template repository.
type templateFetcher struct {
	fs    afero.Fs
	err   error
	calls []string
}

func (f *templateFetcher) Fetch(_ context.Context, url, dir string) error {
	f.calls = append(f.calls, url+" "+dir)
	files := map[string]string{
		".git/HEAD":      "ref: refs/heads/main\n",
		"pnpm-lock.yaml": "lockfileVersion: 9\n",
		".env.example":   "PORT=3000\n",
		"package.json":   "{}\n",
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := f.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := afero.WriteFile(f.fs, path, []byte(content), 0o644); err != nil {
			return err
		}
	}

	return f.err
}

type call struct {
	dir  string
	name string
	args []string
}

type fakeRunner struct {
	mu     sync.Mutex
	calls  []call
	err    error
	onCall func(dir string)
}

func (r *fakeRunner) Run(_ context.Context, dir, name string, args ...string) ([]byte, error) {
	r.mu.Lock()
	r.calls = append(r.calls, call{dir: dir, name: name, args: args})
	r.mu.Unlock()
	if r.onCall != nil {
		r.onCall(dir)
	}

	return nil, r.err
}

type fixture struct {
	fs      afero.Fs
	fetcher *templateFetcher
	runner  *fakeRunner
	out     *bytes.Buffer
	boot    *Bootstrapper
}

func newFixture(t *testing.T, p prompt.Prompter) *fixture {
	t.Helper()
	color.NoColor = true

	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll(root, 0o755))

	f := &fixture{
		fs:      fsys,
		fetcher: &templateFetcher{fs: fsys},
		runner:  &fakeRunner{},
		out:     &bytes.Buffer{},
	}
	opts := Options{
		Repository: "https://example.com/template.git",
		Lockfile:   "pnpm-lock.yaml",
		EnvExample: ".env.example",
		EnvFile:    ".env",
	}
	f.boot = New(fsys, root, opts, f.fetcher, f.runner, p, ui.NewPrinter(f.out), nil)

	return f
}

func exists(t *testing.T, fsys afero.Fs, path string) bool {
	t.Helper()
	ok, err := afero.Exists(fsys, path)
	require.NoError(t, err)
	return ok
}

func TestCreate(t *testing.T) {
	f := newFixture(t, prompt.NonInteractive{})
	appPath := filepath.Join(root, "shop")

	f.runner.onCall = func(dir string) {
		// Setup has fully completed before install starts.
		assert.False(t, exists(t, f.fs, filepath.Join(dir, ".git")))
		assert.False(t, exists(t, f.fs, filepath.Join(dir, "pnpm-lock.yaml")))
		assert.True(t, exists(t, f.fs, filepath.Join(dir, ".env")))
	}

	got, err := f.boot.Create(context.Background(), "shop")
	require.NoError(t, err)
	assert.Equal(t, appPath, got)

	assert.Equal(t, []string{"https://example.com/template.git " + appPath}, f.fetcher.calls)
	require.Len(t, f.runner.calls, 1)
	assert.Equal(t, call{dir: appPath, name: "npm", args: []string{"install"}}, f.runner.calls[0])

	assert.False(t, exists(t, f.fs, filepath.Join(appPath, ".env.example")))
	assert.True(t, exists(t, f.fs, filepath.Join(appPath, "package.json")))

	out := f.out.String()
	assert.Contains(t, out, "🚀 Creating shop...")
	assert.Contains(t, out, "✔ Downloading files ...")
	assert.Contains(t, out, "✔ Setting up files ...")
	assert.Contains(t, out, "✔ Installing dependencies ...")
	assert.Contains(t, out, "Your application is ready 🥳")
	assert.Contains(t, out, "       cd shop")
	assert.Contains(t, out, "       npm run dev")
	assert.Contains(t, out, "npm run build")
	assert.Contains(t, out, "npm start")
}

func TestCreatePromptsForName(t *testing.T) {
	var asked string
	p := prompt.PrompterFunc(func(_ context.Context, message string) (string, error) {
		asked = message
		return "blog", nil
	})
	f := newFixture(t, p)

	got, err := f.boot.Create(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, Question, asked)
	assert.Equal(t, filepath.Join(root, "blog"), got)
}

func TestCreateEmptyName(t *testing.T) {
	f := newFixture(t, prompt.Static("   "))

	_, err := f.boot.Create(context.Background(), "")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidName(err))
	assert.Empty(t, f.fetcher.calls)
	assert.Empty(t, f.runner.calls)

	hints := errors.Suggestions(err)
	require.Len(t, hints, 1)
	assert.Equal(t, "expressor new <name>", hints[0].Command)
}

func TestCreateLeavesExistingFile(t *testing.T) {
	f := newFixture(t, prompt.NonInteractive{})
	f.fetcher.err = stderrors.New("clone failed")
	readme := filepath.Join(root, "README.md")
	testutils.WriteFile(t, f.fs, readme, "# notes\n")

	_, err := f.boot.Create(context.Background(), "README.md")
	require.Error(t, err)
	assert.True(t, errors.IsWrite(err))
	assert.Empty(t, f.fetcher.calls)
	assert.Empty(t, f.runner.calls)
	assert.Equal(t, "# notes\n", testutils.ReadFile(t, f.fs, readme))
}

func TestCreateReusesExistingDirectory(t *testing.T) {
	f := newFixture(t, prompt.NonInteractive{})
	require.NoError(t, f.fs.MkdirAll(filepath.Join(root, "shop"), 0o755))

	_, err := f.boot.Create(context.Background(), "shop")
	require.NoError(t, err)
	assert.Len(t, f.fetcher.calls, 1)
}

func TestCreateUnsafeName(t *testing.T) {
	for _, name := range []string{"../escape", "a/b", "-rf", "."} {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t, prompt.NonInteractive{})

			_, err := f.boot.Create(context.Background(), name)
			require.Error(t, err)
			assert.True(t, errors.IsInvalidName(err))
			assert.Empty(t, f.fetcher.calls)
		})
	}
}

func TestCreateCancelled(t *testing.T) {
	p := prompt.PrompterFunc(func(context.Context, string) (string, error) {
		return "", context.Canceled
	})
	f := newFixture(t, p)

	_, err := f.boot.Create(context.Background(), "")
	require.Error(t, err)
	assert.True(t, errors.IsPromptCancelled(err))
	var ee *errors.ExpressorError
	require.True(t, stderrors.As(err, &ee))
	assert.Equal(t, CancelMessage, ee.Message)
	assert.Empty(t, f.fetcher.calls)
}

func TestCreateFetchFailureCleansUp(t *testing.T) {
	f := newFixture(t, prompt.NonInteractive{})
	f.fetcher.err = errors.NewExternalProcessError(errors.ErrCodeCloneFailed, "git clone", "fatal: not found", stderrors.New("exit status 128"))

	_, err := f.boot.Create(context.Background(), "shop")
	require.Error(t, err)
	assert.True(t, errors.IsExternalProcess(err))

	assert.False(t, exists(t, f.fs, filepath.Join(root, "shop")))
	assert.Empty(t, f.runner.calls)
	assert.True(t, errors.IsReported(err))
	assert.Contains(t, f.out.String(), "✖ Downloading files ...")
	assert.Contains(t, f.out.String(), "Failed! error: command failed: git clone: exit status 128")
	assert.NotContains(t, f.out.String(), "Your application is ready")
}

func TestCreateInstallFailureCleansUp(t *testing.T) {
	f := newFixture(t, prompt.NonInteractive{})
	f.runner.err = errors.NewExternalProcessError(errors.ErrCodeCommandFailed, "npm install", "ERR!", stderrors.New("exit status 1"))

	_, err := f.boot.Create(context.Background(), "shop")
	require.Error(t, err)
	assert.True(t, errors.IsExternalProcess(err))
	assert.False(t, exists(t, f.fs, filepath.Join(root, "shop")))
	assert.Contains(t, f.out.String(), "✖ Installing dependencies ...")
}

func TestSetupFilesToleratesMissingFiles(t *testing.T) {
	f := newFixture(t, prompt.NonInteractive{})
	appPath := filepath.Join(root, "bare")
	require.NoError(t, f.fs.MkdirAll(appPath, 0o755))

	require.NoError(t, f.boot.setupFiles(context.Background(), appPath))
	assert.False(t, exists(t, f.fs, filepath.Join(appPath, ".env")))
}

func TestNewDefaults(t *testing.T) {
	b := New(afero.NewMemMapFs(), root, Options{}, nil, nil, nil, ui.NewPrinter(&bytes.Buffer{}), nil)
	assert.Equal(t, "npm", b.opts.PackageManager)
	assert.Equal(t, []string{"install"}, b.opts.InstallArgs)
}

func TestCommandFetcher(t *testing.T) {
	r := &fakeRunner{}
	f := NewCommandFetcher(r)

	require.NoError(t, f.Fetch(context.Background(), "https://example.com/t.git", "/work/shop"))
	require.Len(t, r.calls, 1)
	assert.Equal(t, "git", r.calls[0].name)
	assert.Equal(t, []string{"clone", "--depth", "1", "--quiet", "https://example.com/t.git", "/work/shop"}, r.calls[0].args)
}

func TestGitFetcherMissingRepository(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "app")

	err := GitFetcher{}.Fetch(context.Background(), filepath.Join(t.TempDir(), "missing"), dir)
	require.Error(t, err)
	assert.True(t, errors.IsExternalProcess(err))
}
