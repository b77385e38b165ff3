package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleDocument() Document {
	return Document{
		Title:    "Portfolio Compliance Report",
		Subtitle: "Evaluated 2026-03-01",
		Summary: []Field{
			{Label: "Score", Value: "60%"},
			{Label: "Maximum exposure", Value: "£41,000"},
		},
		Sections: []Section{
			{
				Title: "Properties",
				Data: Dataset{
					Headers: []string{"Address", "Gas Safety"},
					Rows: []map[string]string{
						{"Address": "1 High Street", "Gas Safety": "Yes"},
						{"Address": "2 Low Road", "Gas Safety": "N/A"},
					},
				},
			},
			{
				Title: "Risk",
				Data: Dataset{
					Headers: []string{"Dimension", "Max fine"},
					Rows:    []map[string]string{{"Dimension": "EICR (1 property)", "Max fine": "£30,000"}},
				},
			},
		},
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatPDF, f)

	f, err = ParseFormat("xlsx")
	require.NoError(t, err)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", f.ContentType())

	_, err = ParseFormat("docx")
	assert.Error(t, err)
}

func TestCSVExporterRender(t *testing.T) {
	out, err := NewCSVExporter().Render(sampleDocument())
	require.NoError(t, err)

	r := csv.NewReader(bytes.NewReader(out))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	require.NoError(t, err)

	assert.Equal(t, []string{"Portfolio Compliance Report"}, records[0])
	assert.Equal(t, []string{"Score", "60%"}, records[1])
	assert.Contains(t, records, []string{"Address", "Gas Safety"})
	assert.Contains(t, records, []string{"2 Low Road", "N/A"})
	assert.Contains(t, records, []string{"EICR (1 property)", "£30,000"})
}

func TestRenderRejectsHeaderlessSection(t *testing.T) {
	doc := Document{Sections: []Section{{Title: "Empty"}}}
	for _, f := range []Format{FormatCSV, FormatPDF, FormatXLSX} {
		_, err := NewRenderer(f).Render(doc)
		assert.Error(t, err, string(f))
	}
}

func TestPDFExporterRender(t *testing.T) {
	out, err := NewPDFExporter().Render(sampleDocument())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestXLSXExporterRender(t *testing.T) {
	out, err := NewXLSXExporter().Render(sampleDocument())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Summary", "Properties", "Risk"}, f.GetSheetList())

	score, err := f.GetCellValue("Summary", "B3")
	require.NoError(t, err)
	assert.Equal(t, "60%", score)

	addr, err := f.GetCellValue("Properties", "A3")
	require.NoError(t, err)
	assert.Equal(t, "2 Low Road", addr)
}

func TestSheetNameDeduplicates(t *testing.T) {
	used := map[string]int{"Summary": 1}
	assert.Equal(t, "Summary (2)", sheetName("Summary", 0, used))
	assert.Equal(t, "Section 2", sheetName(" / ", 1, used))
	assert.Len(t, sheetName("A very long section title that exceeds the limit", 2, used), maxSheetName)
}
