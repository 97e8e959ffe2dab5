package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const densityXVG = `# This file was created by gmx energy
@    title "GROMACS Energies"
@    xaxis  label "Time (ps)"
@    yaxis  label "(kg/m^3)"
@ s0 legend "Density"
0.000000  997.100000
10.000000  997.300000
20.000000  996.900000
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestPlotWritesImage(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "density.xvg", densityXVG)
	out := filepath.Join(dir, "density.png")

	_, stderr, err := run(t, in, "-o", out, "--average", "--dpi", "72")
	require.NoError(t, err)
	assert.Contains(t, stderr, "plot written")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))
}

func TestPlotSubcommandSVG(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "density.xvg", densityXVG)
	out := filepath.Join(dir, "density.svg")

	_, _, err := run(t, "plot", in, "-o", out, "--average", "--legend-from", "legend")
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
	assert.Contains(t, string(data), "Density, ave=997.100")
}

func TestPlotFileNamedLikeSubcommand(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "stats", densityXVG)
	t.Chdir(dir)

	_, _, err := run(t, "plot", "stats", "-o", "stats.png", "--dpi", "72")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "stats.png"))
}

func TestRootHelpMentionsPlotSubcommand(t *testing.T) {
	cmd := newRootCmd(&bytes.Buffer{}, &bytes.Buffer{})
	assert.Contains(t, cmd.Long, `"xvgplot plot <files>"`)
}

func TestPlotRejectsInvalidLegendSource(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "density.xvg", densityXVG)

	_, _, err := run(t, "plot", in, "-o", filepath.Join(dir, "x.png"), "--legend-from", "title")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid flags")
}

func TestExportJSON(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "density.xvg", densityXVG)

	stdout, _, err := run(t, "export", in)
	require.NoError(t, err)

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(stdout), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "Time (ps)", decoded[0]["x_label"])
	assert.Equal(t, "Density", decoded[0]["legend_label"])
	assert.EqualValues(t, 3, decoded[0]["sample_count"])
	assert.InDelta(t, 997.1, decoded[0]["mean_y"], 1e-9)
}

func TestExportJSONLines(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "density.xvg", densityXVG)
	empty := writeFile(t, dir, "empty.xvg", "# nothing here\n")

	stdout, _, err := run(t, "export", in, empty, "--format", "jsonl")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 2)

	var first, second map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, in, first["source_name"])
	assert.InDelta(t, 997.1, first["mean_y"], 1e-9)
	assert.Equal(t, empty, second["source_name"])
	assert.Nil(t, second["mean_y"])
}

func TestExportCSVToFile(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "density.xvg", densityXVG)
	out := filepath.Join(dir, "density.csv")

	stdout, _, err := run(t, "export", in, "--format", "csv", "-o", out)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "source,x,y", lines[0])
	assert.Equal(t, in+",0,997.1", lines[1])
}

func TestExportXLSX(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "density.xvg", densityXVG)
	out := filepath.Join(dir, "density.xlsx")

	_, _, err := run(t, "export", in, "--format", "xlsx", "-o", out)
	require.NoError(t, err)

	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"Summary", "density"}, f.GetSheetList())
}

func TestExportErrors(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "density.xvg", densityXVG)

	_, _, err := run(t, "export", in, "--format", "xlsx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--output is required")

	_, _, err = run(t, "export", in, "--format", "yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestStats(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "density.xvg", densityXVG)
	empty := writeFile(t, dir, "empty.xvg", "# nothing here\n")

	stdout, _, err := run(t, "stats", in, empty)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "FILE"))
	assert.Contains(t, lines[1], "Density")
	assert.Contains(t, lines[1], "997.100")
	assert.True(t, strings.HasSuffix(lines[2], "n/a"))
}

func TestSkipInvalid(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "density.xvg", densityXVG)
	bad := writeFile(t, dir, "bad.xvg", "0.0 1.0\nnot numbers\n")

	_, _, err := run(t, "stats", good, bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.xvg")

	stdout, stderr, err := run(t, "stats", "--skip-invalid", good, bad)
	require.NoError(t, err)
	assert.Contains(t, stdout, "997.100")
	assert.NotContains(t, stdout, "bad.xvg")
	assert.Contains(t, stderr, "skipping file")

	_, _, err = run(t, "stats", "--skip-invalid", bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no input file could be parsed")
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "density.xvg", densityXVG)
	out := filepath.Join(dir, "from-config.svg")
	cfg := writeFile(t, dir, "xvgplot.yaml", "plot:\n  output: "+out+"\n  dpi: 72\n")

	_, _, err := run(t, "plot", "--config", cfg, in)
	require.NoError(t, err)
	assert.FileExists(t, out)
}
