package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"index.html": `<div class="page"><div style="width: 40; height: 20; background-color: red"></div><counter></counter></div>`,
		"styles.css": `.page { flex-direction: column; spacing: 4; }`,
		"components/counter.html": `<div on-click="increment">{{ count }}</div>
<script>
function init() { return { count: 0 }; }
function update(state, cmd) { if (cmd.name === "increment") { return { count: state.count + 1 }; } }
</script>`,
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRenderWritesPNG(t *testing.T) {
	project := writeProject(t)
	output := filepath.Join(t.TempDir(), "frame.png")

	stdout, err := run(t, "render", project, "-o", output, "--width", "320", "--height", "200")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Rendered")

	f, err := os.Open(output)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 320, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())

	r, g, b, _ := img.At(5, 5).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Zero(t, g)
	assert.Zero(t, b)
}

func TestRenderUsesConfigFile(t *testing.T) {
	project := writeProject(t)
	cfgPath := filepath.Join(t.TempDir(), "trellis.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("viewport:\n  width: 64\n  height: 48\n"), 0o644))
	output := filepath.Join(t.TempDir(), "frame.png")

	_, err := run(t, "render", project, "-c", cfgPath, "-o", output)
	require.NoError(t, err)

	f, err := os.Open(output)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.Width)
	assert.Equal(t, 48, cfg.Height)
}

func TestRenderMissingProject(t *testing.T) {
	_, err := run(t, "render", filepath.Join(t.TempDir(), "missing"), "-o", filepath.Join(t.TempDir(), "x.png"))
	assert.Error(t, err)
}

func TestDumpPrintsLayout(t *testing.T) {
	project := writeProject(t)

	stdout, err := run(t, "dump", project)
	require.NoError(t, err)

	var nodes []map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &nodes))
	require.NotEmpty(t, nodes)
	assert.Equal(t, "div", nodes[0]["tag"])

	var tags []string
	for _, n := range nodes {
		tags = append(tags, n["tag"].(string))
	}
	assert.Contains(t, tags, "counter")
}

func TestCheckWritesThenMatchesReference(t *testing.T) {
	project := writeProject(t)
	dir := t.TempDir()
	reference := filepath.Join(dir, "refs", "frame.png")

	stdout, err := run(t, "check", project, "-r", reference, "--width", "100", "--height", "80")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Wrote reference")
	require.FileExists(t, reference)

	stdout, err = run(t, "check", project, "-r", reference, "--width", "100", "--height", "80")
	require.NoError(t, err)
	assert.Contains(t, stdout, "OK")
}

func TestCheckReportsMismatch(t *testing.T) {
	project := writeProject(t)
	dir := t.TempDir()
	reference := filepath.Join(dir, "frame.png")
	diff := filepath.Join(dir, "diff.png")

	_, err := run(t, "check", project, "-r", reference, "--width", "100", "--height", "80")
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(project, "styles.css"), []byte(`.page { padding: 10; }`), 0o644))
	_, err = run(t, "check", project, "-r", reference, "--diff", diff, "--width", "100", "--height", "80")
	assert.ErrorIs(t, err, errFrameMismatch)
	assert.FileExists(t, diff)
}

func TestDumpExampleProject(t *testing.T) {
	stdout, err := run(t, "dump", filepath.Join("..", "..", "examples", "counter"))
	require.NoError(t, err)

	var nodes []struct {
		Tag    string         `json:"tag"`
		Scroll map[string]any `json:"scroll"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &nodes))

	counters, scrollers := 0, 0
	for _, n := range nodes {
		if n.Tag == "counter" {
			counters++
		}
		if n.Scroll != nil {
			scrollers++
		}
	}
	assert.Equal(t, 2, counters)
	assert.GreaterOrEqual(t, scrollers, 1)
}
