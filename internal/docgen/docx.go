package docgen

import (
	"encoding/xml"
	"fmt"
	"strings"

	"reportgen-ai/internal/sections"
)

const wordNamespace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

const docxContentTypes = xml.Header + `<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>` +
	`</Types>`

const docxRootRels = xml.Header + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`</Relationships>`

const docxDocumentRels = xml.Header + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>` +
	`</Relationships>`

// Normal is 12pt 微軟正黑體; Heading2 matches the section headings the flow
// document emits. Sizes are half-points.
const docxStyles = xml.Header + `<w:styles xmlns:w="` + wordNamespace + `">` +
	`<w:style w:type="paragraph" w:styleId="Normal" w:default="1">` +
	`<w:name w:val="Normal"/>` +
	`<w:rPr><w:rFonts w:ascii="微軟正黑體" w:eastAsia="微軟正黑體"/><w:sz w:val="24"/></w:rPr>` +
	`</w:style>` +
	`<w:style w:type="paragraph" w:styleId="Heading2">` +
	`<w:name w:val="heading 2"/><w:basedOn w:val="Normal"/>` +
	`<w:pPr><w:outlineLvl w:val="1"/></w:pPr>` +
	`<w:rPr><w:b/><w:sz w:val="30"/></w:rPr>` +
	`</w:style>` +
	`</w:styles>`

type docXML struct {
	XMLName xml.Name `xml:"w:document"`
	XmlnsW  string   `xml:"xmlns:w,attr"`
	Body    docBody  `xml:"w:body"`
}

type docBody struct {
	Paragraphs []docParagraph `xml:"w:p"`
}

type docParagraph struct {
	Props *docParaProps `xml:"w:pPr,omitempty"`
	Runs  []docRun      `xml:"w:r"`
}

type docParaProps struct {
	Style *docStyleRef `xml:"w:pStyle,omitempty"`
}

type docStyleRef struct {
	Val string `xml:"w:val,attr"`
}

type docRun struct {
	Text docText `xml:"w:t"`
}

type docText struct {
	Space string `xml:"xml:space,attr,omitempty"`
	Value string `xml:",chardata"`
}

func headingParagraph(title string) docParagraph {
	return docParagraph{
		Props: &docParaProps{Style: &docStyleRef{Val: "Heading2"}},
		Runs:  []docRun{{Text: docText{Space: "preserve", Value: title}}},
	}
}

func textParagraph(text string) docParagraph {
	return docParagraph{
		Runs: []docRun{{Text: docText{Space: "preserve", Value: text}}},
	}
}

// BuildDocument renders the sections as a flow document. With no sections the
// raw text becomes a single paragraph. Sections with an empty title get no
// heading element; blank body lines are dropped.
func BuildDocument(secs []sections.Section, rawText string) (Artifact, error) {
	var paras []docParagraph

	if len(secs) == 0 {
		paras = append(paras, textParagraph(rawText))
	} else {
		for _, s := range secs {
			if s.Title != "" {
				paras = append(paras, headingParagraph(s.Title))
			}
			for _, line := range strings.Split(s.Body, "\n") {
				if strings.TrimSpace(line) == "" {
					continue
				}
				paras = append(paras, textParagraph(line))
			}
		}
	}

	doc := docXML{XmlnsW: wordNamespace, Body: docBody{Paragraphs: paras}}
	body, err := xml.Marshal(doc)
	if err != nil {
		return Artifact{}, fmt.Errorf("marshal document.xml: %w", err)
	}

	data, err := writeArchive([]archivePart{
		{"[Content_Types].xml", []byte(docxContentTypes)},
		{"_rels/.rels", []byte(docxRootRels)},
		{"word/_rels/document.xml.rels", []byte(docxDocumentRels)},
		{"word/styles.xml", []byte(docxStyles)},
		{"word/document.xml", append([]byte(xml.Header), body...)},
	})
	if err != nil {
		return Artifact{}, err
	}

	return Artifact{Data: data, MIME: MIMEDocument, Ext: ExtDocument}, nil
}
