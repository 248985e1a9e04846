// Package export encodes filtered gate-log rows as an xlsx workbook or a
// paginated pdf report.
package export

import (
	"fmt"
	"log"
	"time"

	"hostel_admin_backend/internals/features/security/gatelog/model"
	"hostel_admin_backend/internals/features/security/gatelog/notify"
	"hostel_admin_backend/internals/features/security/gatelog/resolver"
)

const msgNoData = "No data to export"

type Encoder struct {
	Resolver resolver.Resolver
	Sink     Sink
	Notifier notify.Notifier
	Style    DocumentStyle
	Now      func() time.Time
}

func NewEncoder(r resolver.Resolver, sink Sink, n notify.Notifier) *Encoder {
	if n == nil {
		n = notify.LogNotifier{}
	}
	return &Encoder{
		Resolver: r,
		Sink:     sink,
		Notifier: n,
		Style:    DefaultDocumentStyle,
		Now:      time.Now,
	}
}

// Build generates the file without saving or notifying.
func (e *Encoder) Build(requests []model.LeaveRequest, label string, format Format) (File, error) {
	generatedAt := e.Now().In(e.Resolver.Loc())
	rows := ShapeRows(requests, e.Resolver)
	base := FileBaseName(label, generatedAt)

	var (
		data []byte
		err  error
	)
	switch format {
	case FormatExcel:
		data, err = EncodeXLSX(Header, rows)
	case FormatPDF:
		subtitle := "Generated on: " + generatedAt.Format(resolver.DisplayLayout)
		data, err = EncodePDF(label, subtitle, Header, rows, e.Style)
	default:
		return File{}, fmt.Errorf("unsupported export format %q", format)
	}
	if err != nil {
		return File{}, err
	}
	return File{Name: base + format.Extension(), ContentType: format.ContentType(), Data: data}, nil
}

// Export generates and saves one file for the given rows. Every outcome is
// reported through the notifier; the bool says whether a file was saved.
func (e *Encoder) Export(requests []model.LeaveRequest, label string, format Format) bool {
	if len(requests) == 0 {
		e.Notifier.Notify(notify.Warning, msgNoData)
		return false
	}

	file, err := e.Build(requests, label, format)
	if err != nil {
		log.Printf("[ERROR] export %s (%s): %v", label, format, err)
		e.Notifier.Notify(notify.Error, fmt.Sprintf("Failed to export %s", label))
		return false
	}

	if e.Sink == nil {
		log.Printf("[ERROR] export %s: no sink configured", label)
		e.Notifier.Notify(notify.Error, fmt.Sprintf("Failed to export %s", label))
		return false
	}
	if err := e.Sink.Save(file); err != nil {
		log.Printf("[ERROR] save export %s: %v", file.Name, err)
		e.Notifier.Notify(notify.Error, fmt.Sprintf("Failed to export %s", label))
		return false
	}

	e.Notifier.Notify(notify.Success, fmt.Sprintf("%s exported successfully", label))
	return true
}
