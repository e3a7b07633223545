package prompt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestFile_AnswersByName(t *testing.T) {
	// --- Arrange ---
	src := []byte(`
entryType    = false
outputType   = ""
stylingType  = "SASS"
babelConfirm = true
`)
	f, err := ParseFile(src, "answers.hcl")
	require.NoError(t, err)
	ctx := testCtx()

	// --- Act ---
	entry, err1 := AskConfirm(ctx, f, Confirm("entryType", "?"))
	out, err2 := AskInput(ctx, f, Input("outputType", "?"))
	style, err3 := AskList(ctx, f, List("stylingType", "?", "SASS", "No"))
	babel, err4 := AskConfirm(ctx, f, Confirm("babelConfirm", "?"))

	// --- Assert ---
	require.NoError(t, err1)
	require.NoError(t, err2)
	require.NoError(t, err3)
	require.NoError(t, err4)
	assert.False(t, entry)
	assert.Equal(t, "", out)
	assert.Equal(t, "SASS", style)
	assert.True(t, babel)
	assert.True(t, f.Has("entryType"))
	assert.False(t, f.Has("extractPlugin"))
}

func TestFile_MissingAnswer(t *testing.T) {
	f, err := ParseFile([]byte(`a = true`), "answers.hcl")
	require.NoError(t, err)

	_, err = f.Ask(testCtx(), Confirm("b", "?"))
	assert.ErrorIs(t, err, ErrNoAnswer)
}

func TestFile_WrongShapeIsNotCoerced(t *testing.T) {
	f, err := ParseFile([]byte(`
entryType = "true"
count     = 3
`), "answers.hcl")
	require.NoError(t, err)
	ctx := testCtx()

	_, err = AskConfirm(ctx, f, Confirm("entryType", "?"))
	assert.ErrorIs(t, err, ErrInvalidAnswer)

	v, err := f.Ask(ctx, Input("count", "?"))
	require.NoError(t, err)
	_, isCty := v.(cty.Value)
	assert.True(t, isCty, "numbers are handed back as cty values")

	_, err = AskInput(ctx, f, Input("count", "?"))
	assert.ErrorIs(t, err, ErrInvalidAnswer)
}

func TestFile_RejectsBlocks(t *testing.T) {
	_, err := ParseFile([]byte(`answers { a = true }`), "answers.hcl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must only contain attributes")
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "answers.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`singularEntry = "./src/main"`), 0o600))

	f, err := LoadFile(path)
	require.NoError(t, err)
	v, err := AskInput(testCtx(), f, Input("singularEntry", "?"))
	require.NoError(t, err)
	assert.Equal(t, "./src/main", v)

	_, err = LoadFile(filepath.Join(dir, "broken.hcl"))
	assert.Error(t, err)
}
