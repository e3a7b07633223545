package emit

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/specialistvlad/packinit/internal/ctxlog"
	"github.com/specialistvlad/packinit/internal/webpack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productionDocument() webpack.Document {
	acc := webpack.New()
	acc.AddTopScope("const webpack = require('webpack')", "\n")
	acc.SetEntry(webpack.Entry{Named: []webpack.EntryPoint{
		{Name: "app", Location: "./src/app.js"},
		{Name: "my-lib", Location: "['./a', './b']"},
	}})
	acc.SetProfile(webpack.Production, "prod", nil)
	acc.AddPlugin(webpack.Plugin{Constructor: "MiniCssExtractPlugin", Filename: "style.css"})
	acc.AddRule(webpack.Rule{
		Test: `/\.css$/`,
		Use: []webpack.Loader{
			{Loader: "MiniCssExtractPlugin.loader", Ref: true},
			{Loader: "css-loader", Options: &webpack.LoaderOptions{SourceMap: true, ImportLoaders: 1}},
		},
	})
	acc.SetOptimization(webpack.Optimization{SplitChunks: &webpack.SplitChunks{
		Chunks: "async", MinSize: 30000, MinChunks: 1,
		CacheGroups: map[string]webpack.CacheGroup{"vendors": {Test: `/[\\/]node_modules[\\/]/`, Priority: -10}},
	}})
	return acc.Finalize()
}

func TestRender(t *testing.T) {
	out := string(Render(productionDocument()))

	assert.True(t, strings.HasPrefix(out, "const webpack = require('webpack')\n\n"))
	assert.Contains(t, out, "module.exports = {")
	assert.Contains(t, out, "mode: 'production',")
	assert.Contains(t, out, "app: './src/app.js',")
	assert.Contains(t, out, "'my-lib': ['./a', './b'],")
	assert.Contains(t, out, "new MiniCssExtractPlugin({ filename:'style.css' }),")
	assert.Contains(t, out, `test: /\.css$/,`)
	assert.Contains(t, out, "loader: MiniCssExtractPlugin.loader,")
	assert.Contains(t, out, "loader: 'css-loader',")
	assert.Contains(t, out, "importLoaders: 1,")
	assert.Contains(t, out, "chunks: 'async',")
	assert.Contains(t, out, "name: false,")
	assert.Contains(t, out, `test: /[\\/]node_modules[\\/]/,`)
	assert.True(t, strings.HasSuffix(out, "};\n"))
	assert.NotContains(t, out, "output:")
}

func TestRender_SingleEntryAndOutput(t *testing.T) {
	acc := webpack.New()
	acc.SetEntry(webpack.Entry{Single: "./src/index"})
	acc.SetOutput(webpack.Output{Filename: "[name].js", ChunkFilename: "[id].js", Path: webpack.ResolvePath("dist")})
	acc.SetProfile(webpack.Development, "dev", []webpack.Plugin{{Constructor: "UglifyJSPlugin"}})

	out := string(Render(acc.Finalize()))

	assert.Contains(t, out, "entry: './src/index',")
	assert.Contains(t, out, "filename: '[name].js',")
	assert.Contains(t, out, "chunkFilename: '[id].js',")
	assert.Contains(t, out, "path: path.resolve(__dirname, 'dist'),")
	assert.Contains(t, out, "new UglifyJSPlugin(),")
	assert.NotContains(t, out, "optimization")
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	doc := productionDocument()

	path, err := WriteFile(ctxlog.Discard(context.Background()), dir, doc)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "webpack.prod.js"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Render(doc), data)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "webpack.dev.js", Filename(webpack.Document{ConfigName: "dev"}))
	assert.Equal(t, "webpack.config.js", Filename(webpack.Document{}))
}

func TestRender_EscapesUserText(t *testing.T) {
	// --- Arrange ---
	acc := webpack.New()
	acc.SetEntry(webpack.Entry{Named: []webpack.EntryPoint{
		{Name: "vendor", Location: "./src/vendor.js"},
		{Name: "1x", Location: "./src/1x.js"},
		{Name: "it's", Location: "./src/it's.js"},
	}})
	acc.SetOutput(webpack.Output{Filename: "[name].js", Path: webpack.ResolvePath("it's")})
	acc.SetProfile(webpack.Production, "prod", nil)
	acc.AddPlugin(webpack.Plugin{Constructor: "MiniCssExtractPlugin", Filename: `a'b\c.[chunkhash].css`})

	// --- Act ---
	out := string(Render(acc.Finalize()))

	// --- Assert ---
	assert.Contains(t, out, "vendor: './src/vendor.js',")
	assert.Contains(t, out, "'1x': './src/1x.js',")
	assert.Contains(t, out, `'it\'s': './src/it\'s.js',`)
	assert.Contains(t, out, `path: path.resolve(__dirname, 'it\'s'),`)
	assert.Contains(t, out, `new MiniCssExtractPlugin({ filename:'a\'b\\c.[chunkhash].css' }),`)
}

func TestKey(t *testing.T) {
	testCases := map[string]string{
		"app":    "app",
		"$main_": "$main_",
		"v2":     "v2",
		"2v":     "'2v'",
		"my-lib": "'my-lib'",
		"":       "''",
	}
	for in, want := range testCases {
		assert.Equal(t, want, key(in), "key(%q)", in)
	}
}
