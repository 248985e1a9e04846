package export

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

type Format string

const (
	FormatExcel Format = "excel"
	FormatPDF   Format = "pdf"
)

const (
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypePDF  = "application/pdf"
)

// ParseFormat accepts the export menu values plus a few aliases.
func ParseFormat(v string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "excel", "xlsx", "tabular", "spreadsheet":
		return FormatExcel, nil
	case "pdf", "document":
		return FormatPDF, nil
	}
	return "", fmt.Errorf("unsupported export format %q", v)
}

func (f Format) Extension() string {
	if f == FormatPDF {
		return ".pdf"
	}
	return ".xlsx"
}

func (f Format) ContentType() string {
	if f == FormatPDF {
		return ContentTypePDF
	}
	return ContentTypeXLSX
}

var whitespace = regexp.MustCompile(`\s`)

// FileBaseName builds {label}_{DDMMYYYY_HHmm} with each whitespace rune
// replaced by an underscore.
func FileBaseName(label string, generatedAt time.Time) string {
	return whitespace.ReplaceAllString(label, "_") + "_" + generatedAt.Format("02012006_1504")
}
