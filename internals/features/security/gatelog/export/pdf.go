package export

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// DocumentStyle mirrors the report look: dark header, striped body, 8pt text.
type DocumentStyle struct {
	TitleSize    float64
	SubtitleSize float64
	BodySize     float64
	CellPadding  float64
	HeadFill     [3]int
	HeadText     [3]int
	StripeFill   [3]int
	MarginLeft   float64
	MarginRight  float64
	MarginTop    float64
	MarginBottom float64
	// ColumnWeights is relative; it is scaled to the printable width.
	ColumnWeights []float64
}

var DefaultDocumentStyle = DocumentStyle{
	TitleSize:     16,
	SubtitleSize:  10,
	BodySize:      8,
	CellPadding:   2,
	HeadFill:      [3]int{0, 0, 0},
	HeadText:      [3]int{255, 255, 255},
	StripeFill:    [3]int{245, 245, 245},
	MarginLeft:    14,
	MarginRight:   14,
	MarginTop:     25,
	MarginBottom:  10,
	ColumnWeights: []float64{32, 26, 26, 14, 30, 30, 51, 30, 30},
}

const ptToMM = 25.4 / 72

type pdfTable struct {
	pdf    *fpdf.Fpdf
	style  DocumentStyle
	widths []float64
	tr     func(string) string
}

// EncodePDF renders a landscape A4 report: title, subtitle, then the table,
// starting a new page (with the header repeated) whenever a row would not fit.
func EncodePDF(title, subtitle string, header []string, rows [][]string, style DocumentStyle) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(style.MarginLeft, style.MarginTop, style.MarginRight)
	pdf.SetAutoPageBreak(false, style.MarginBottom)
	pdf.SetTitle(title, true)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pageW, pageH := pdf.GetPageSize()

	pdf.SetFont("Helvetica", "", style.TitleSize)
	pdf.Text(style.MarginLeft, 15, tr(title))
	pdf.SetFont("Helvetica", "", style.SubtitleSize)
	pdf.Text(style.MarginLeft, 22, tr(subtitle))

	t := &pdfTable{
		pdf:    pdf,
		style:  style,
		widths: columnWidths(pageW-style.MarginLeft-style.MarginRight, len(header), style.ColumnWeights),
		tr:     tr,
	}

	y := t.drawRow(style.MarginTop, header, true, false)
	for i, row := range rows {
		h := t.rowHeight(row, false)
		if y+h > pageH-style.MarginBottom {
			pdf.AddPage()
			y = t.drawRow(style.MarginTop, header, true, false)
		}
		y = t.drawRow(y, row, false, i%2 == 1)
	}

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func columnWidths(total float64, n int, weights []float64) []float64 {
	out := make([]float64, n)
	if len(weights) != n {
		for i := range out {
			out[i] = total / float64(n)
		}
		return out
	}
	sum := 0.0
	for _, w := range weights {
		sum += w
	}
	for i, w := range weights {
		out[i] = total * w / sum
	}
	return out
}

func (t *pdfTable) lineHeight() float64 {
	return t.style.BodySize * ptToMM * 1.15
}

func (t *pdfTable) setFont(head bool) {
	if head {
		t.pdf.SetFont("Helvetica", "B", t.style.BodySize)
		return
	}
	t.pdf.SetFont("Helvetica", "", t.style.BodySize)
}

func (t *pdfTable) cellLines(row []string) [][]string {
	out := make([][]string, len(t.widths))
	for i := range t.widths {
		txt := ""
		if i < len(row) {
			txt = t.tr(row[i])
		}
		inner := t.widths[i] - 2*t.style.CellPadding
		lines := t.pdf.SplitText(txt, inner)
		if len(lines) == 0 {
			lines = []string{""}
		}
		out[i] = lines
	}
	return out
}

func (t *pdfTable) rowHeight(row []string, head bool) float64 {
	t.setFont(head)
	most := 1
	for _, lines := range t.cellLines(row) {
		if len(lines) > most {
			most = len(lines)
		}
	}
	return float64(most)*t.lineHeight() + 2*t.style.CellPadding
}

// drawRow paints one row at y and returns the y below it.
func (t *pdfTable) drawRow(y float64, row []string, head, stripe bool) float64 {
	h := t.rowHeight(row, head)
	lines := t.cellLines(row)
	pdf := t.pdf

	switch {
	case head:
		pdf.SetFillColor(t.style.HeadFill[0], t.style.HeadFill[1], t.style.HeadFill[2])
		pdf.SetTextColor(t.style.HeadText[0], t.style.HeadText[1], t.style.HeadText[2])
	case stripe:
		pdf.SetFillColor(t.style.StripeFill[0], t.style.StripeFill[1], t.style.StripeFill[2])
		pdf.SetTextColor(0, 0, 0)
	default:
		pdf.SetTextColor(0, 0, 0)
	}

	x := t.style.MarginLeft
	for i, w := range t.widths {
		if head || stripe {
			pdf.Rect(x, y, w, h, "F")
		}
		for k, line := range lines[i] {
			pdf.SetXY(x+t.style.CellPadding, y+t.style.CellPadding+float64(k)*t.lineHeight())
			pdf.CellFormat(w-2*t.style.CellPadding, t.lineHeight(), line, "", 0, "L", false, 0, "")
		}
		x += w
	}
	return y + h
}
