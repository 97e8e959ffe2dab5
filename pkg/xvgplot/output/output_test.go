package output

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/xvgplot-go/pkg/xvgplot/models"
)

func strPtr(s string) *string { return &s }

func testSeries() []*models.ParsedSeries {
	return []*models.ParsedSeries{
		{
			SourceName:  "runs/density.xvg",
			XLabel:      strPtr("Time (ps)"),
			YLabel:      strPtr("Density (kg/m^3)"),
			LegendLabel: strPtr("Density"),
			HeaderLines: 4,
			Samples:     models.Series{{X: 0, Y: 997.1}, {X: 1, Y: 997.3}, {X: 2, Y: 996.9}},
		},
		{
			SourceName:  "empty.xvg",
			HeaderLines: 1,
		},
	}
}

func TestToJSON(t *testing.T) {
	data, err := ToJSON(testSeries(), false)
	require.NoError(t, err)

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 2)

	first := decoded[0]
	assert.Equal(t, "runs/density.xvg", first["source_name"])
	assert.Equal(t, "Time (ps)", first["x_label"])
	assert.Equal(t, "Density", first["legend_label"])
	assert.EqualValues(t, 4, first["header_line_count"])
	assert.EqualValues(t, 3, first["sample_count"])
	assert.InDelta(t, 997.1, first["mean_y"], 1e-9)
	require.Len(t, first["samples"], 3)

	second := decoded[1]
	assert.Contains(t, second, "mean_y")
	assert.Nil(t, second["mean_y"], "empty series must serialize a null mean, not 0")
	assert.NotContains(t, second, "x_label")
}

func TestSeriesToJSONPretty(t *testing.T) {
	data, err := SeriesToJSON(testSeries()[0], true)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "{\n  "))
	assert.Contains(t, string(data), `"y_label": "Density (kg/m^3)"`)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, testSeries()))

	expected := "source,x,y\n" +
		"runs/density.xvg,0,997.1\n" +
		"runs/density.xvg,1,997.3\n" +
		"runs/density.xvg,2,996.9\n"
	assert.Equal(t, expected, buf.String())
}

func TestWriteWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "series.xlsx")
	require.NoError(t, WriteWorkbook(path, testSeries(), DefaultWorkbookOptions()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Summary", "density", "empty"}, f.GetSheetList())

	rows, err := f.GetRows(SummarySheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"source", "legend", "x_label", "y_label", "header_lines", "samples", "mean_y"}, rows[0])
	assert.Equal(t, "runs/density.xvg", rows[1][0])
	assert.Equal(t, "Density", rows[1][1])
	assert.Equal(t, "3", rows[1][5])
	assert.Equal(t, "997.1", rows[1][6])
	assert.Equal(t, "0", rows[2][5])
	assert.Len(t, rows[2], 6, "empty series leaves the mean cell blank")

	data, err := f.GetRows("density")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Time (ps)", "Density (kg/m^3)"},
		{"0", "997.1"},
		{"1", "997.3"},
		{"2", "996.9"},
	}, data)

	empty, err := f.GetRows("empty")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"x", "y"}}, empty)

	var found bool
	for _, dn := range f.GetDefinedName() {
		if strings.EqualFold(dn.Name, "_xlnm.Print_Area") && dn.Scope == "density" {
			found = true
			assert.Contains(t, dn.RefersTo, "$A$1:$B$4")
		}
	}
	assert.True(t, found, "expected a print area on the density sheet")
}

func TestWriteWorkbookWithoutExtras(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.xlsx")
	require.NoError(t, WriteWorkbook(path, testSeries(), WorkbookOptions{}))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Empty(t, f.GetDefinedName())
}

func TestUniqueSheetName(t *testing.T) {
	used := map[string]bool{}

	assert.Equal(t, "density", uniqueSheetName("a/density.xvg", used))
	assert.Equal(t, "density (2)", uniqueSheetName("b/density.xvg", used))
	assert.Equal(t, "DENSITY (3)", uniqueSheetName("c/DENSITY.xvg", used))
	assert.Equal(t, "summary (2)", uniqueSheetName("summary.xvg", used))
	assert.Equal(t, "e_m__gy", uniqueSheetName("e[m]:gy.xvg", used))
	assert.Equal(t, "series", uniqueSheetName(".xvg", used))

	long := strings.Repeat("x", 40) + ".xvg"
	name := uniqueSheetName(long, used)
	assert.Len(t, name, maxSheetName)
	name = uniqueSheetName(long, used)
	assert.Len(t, name, maxSheetName)
	assert.True(t, strings.HasSuffix(name, " (2)"))
}
