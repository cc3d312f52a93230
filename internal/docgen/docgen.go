// Package docgen renders section sequences into downloadable OOXML artifacts.
//
// Both formats are ZIP packages of XML parts, written directly with
// archive/zip. The slide deck and the flow document share the section
// iteration contract but differ on blank body lines on purpose: slides keep
// them as empty paragraphs for vertical rhythm, the document drops them and
// relies on paragraph spacing.
package docgen

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
)

// MIME types and extensions of the two supported artifact formats.
const (
	MIMESlides   = "application/vnd.openxmlformats-officedocument.presentationml.presentation"
	MIMEDocument = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

	ExtSlides   = ".pptx"
	ExtDocument = ".docx"
)

// Artifact is an in-memory binary document ready for download.
type Artifact struct {
	Data []byte
	MIME string
	Ext  string
}

// Aspect selects the slide canvas preset.
type Aspect string

const (
	Aspect4x3  Aspect = "4x3"
	Aspect16x9 Aspect = "16x9"
)

// ParseAspect maps a query-string value to an Aspect. The empty string
// defaults to 16:9.
func ParseAspect(s string) (Aspect, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "16x9", "16:9":
		return Aspect16x9, nil
	case "4x3", "4:3":
		return Aspect4x3, nil
	default:
		return "", fmt.Errorf("unknown aspect %q (want 4x3 or 16x9)", s)
	}
}

// Size returns the slide canvas dimensions in EMU. It depends on nothing but
// the aspect value.
func (a Aspect) Size() (cx, cy int64) {
	if a == Aspect4x3 {
		return 9144000, 6858000
	}
	return 12192000, 6858000
}

// Suffix is appended to the filename base of slide exports.
func (a Aspect) Suffix() string {
	if a == Aspect4x3 {
		return "_4x3"
	}
	return "_16x9"
}

// archivePart is one named file inside an OOXML package.
type archivePart struct {
	name string
	data []byte
}

// writeArchive serializes the parts into a ZIP package.
func writeArchive(parts []archivePart) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, p := range parts {
		w, err := zw.Create(p.name)
		if err != nil {
			return nil, fmt.Errorf("create part %s: %w", p.name, err)
		}
		if _, err := w.Write(p.data); err != nil {
			return nil, fmt.Errorf("write part %s: %w", p.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close archive: %w", err)
	}
	return buf.Bytes(), nil
}

// escapeXML escapes text for embedding in an XML element or attribute.
func escapeXML(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
