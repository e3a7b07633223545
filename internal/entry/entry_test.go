package entry

import (
	"context"
	"testing"

	"github.com/specialistvlad/packinit/internal/ctxlog"
	"github.com/specialistvlad/packinit/internal/prompt"
	"github.com/specialistvlad/packinit/internal/webpack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCtx() context.Context {
	return ctxlog.Discard(context.Background())
}

func TestResolve_Single(t *testing.T) {
	testCases := []struct {
		name   string
		answer string
		want   *webpack.Entry
	}{
		{name: "blank means no entry", answer: "", want: nil},
		{name: "whitespace means no entry", answer: "   ", want: nil},
		{name: "plain path", answer: "./src/main", want: &webpack.Entry{Single: "./src/main"}},
		{name: "double quotes become single", answer: `"./src/main"`, want: &webpack.Entry{Single: "'./src/main'"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			src := prompt.NewReplay(tc.answer)

			got, err := Resolve(testCtx(), src, false)

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			require.Len(t, src.Asked(), 1)
			assert.Equal(t, SingularEntry, src.Asked()[0].Name)
		})
	}
}

func TestResolve_Named(t *testing.T) {
	// --- Arrange ---
	src := prompt.NewReplay("app, vendor,,app", "./src/app", "", "['./a', './b']")

	// --- Act ---
	got, err := Resolve(testCtx(), src, true)

	// --- Assert ---
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, []webpack.EntryPoint{
		{Name: "app", Location: "./src/app.js"},
		{Name: "vendor", Location: "./src/vendor.js"},
	}, got.Named)
	assert.Equal(t, 1, src.Remaining(), "duplicate names are asked once")

	asked := src.Asked()
	require.Len(t, asked, 3)
	assert.Equal(t, MultipleEntries, asked[0].Name)
	assert.Equal(t, LocationQuestion("app"), asked[1].Name)
	assert.Equal(t, LocationQuestion("vendor"), asked[2].Name)
}

func TestResolve_NamedRequiresAName(t *testing.T) {
	_, err := Resolve(testCtx(), prompt.NewReplay(" , "), true)

	require.Error(t, err)
	assert.ErrorIs(t, err, prompt.ErrInvalidAnswer)
}

func TestResolve_InvalidShape(t *testing.T) {
	_, err := Resolve(testCtx(), prompt.NewReplay(true), false)
	assert.ErrorIs(t, err, prompt.ErrInvalidAnswer)
}

func TestNormalizeLocation(t *testing.T) {
	testCases := []struct {
		name, loc, want string
	}{
		{name: "app", loc: "", want: "./src/app.js"},
		{name: "app", loc: "./lib/app.js", want: "./lib/app.js"},
		{name: "app", loc: `'./lib/app'`, want: "./lib/app.js"},
		{name: "app", loc: "['./a', './b']", want: "['./a', './b']"},
		{name: "app", loc: "path.resolve(__dirname, 'a')", want: "path.resolve(__dirname, 'a')"},
	}
	for _, tc := range testCases {
		t.Run(tc.loc, func(t *testing.T) {
			assert.Equal(t, tc.want, normalizeLocation(tc.name, tc.loc))
		})
	}
}
