package export

import "fmt"

// Format names an export encoding.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat validates a user supplied format, defaulting to PDF.
func ParseFormat(raw string) (Format, error) {
	switch Format(raw) {
	case "":
		return FormatPDF, nil
	case FormatPDF, FormatCSV, FormatXLSX:
		return Format(raw), nil
	}
	return "", fmt.Errorf("unsupported export format %q", raw)
}

// ContentType returns the MIME type of f.
func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/pdf"
	}
}

// Dataset defines tabular export content.
type Dataset struct {
	Headers []string
	Rows    []map[string]string
}

// Field is one labelled value of a report summary.
type Field struct {
	Label string
	Value string
}

// Section is a titled table within a report.
type Section struct {
	Title string
	Data  Dataset
}

// Document is a report: a title, summary fields and any number of tables.
type Document struct {
	Title    string
	Subtitle string
	Summary  []Field
	Sections []Section
}

func (d Document) validate() error {
	for _, s := range d.Sections {
		if len(s.Data.Headers) == 0 {
			return fmt.Errorf("section %q requires at least one header", s.Title)
		}
	}
	return nil
}

// Renderer encodes a Document.
type Renderer interface {
	Render(doc Document) ([]byte, error)
}

// NewRenderer returns the renderer for f.
func NewRenderer(f Format) Renderer {
	switch f {
	case FormatCSV:
		return NewCSVExporter()
	case FormatXLSX:
		return NewXLSXExporter()
	default:
		return NewPDFExporter()
	}
}
