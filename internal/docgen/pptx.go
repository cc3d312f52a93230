package docgen

import (
	"encoding/xml"
	"fmt"
	"strings"

	"reportgen-ai/internal/sections"
)

// PresentationML needs a master/layout/theme chain even for plain text
// slides, so the fixed parts are canned and only presentation.xml and the
// slides themselves are generated.

const pptxXmlns = `xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" ` +
	`xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" ` +
	`xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"`

const pptxRootRels = xml.Header + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="ppt/presentation.xml"/>` +
	`</Relationships>`

const pptxEmptySpTree = `<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>` +
	`<p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/><a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr>`

const pptxSlideMaster = xml.Header + `<p:sldMaster ` + pptxXmlns + `>` +
	`<p:cSld><p:spTree>` + pptxEmptySpTree + `</p:spTree></p:cSld>` +
	`<p:clrMap bg1="lt1" tx1="dk1" bg2="lt2" tx2="dk2" accent1="accent1" accent2="accent2" accent3="accent3" accent4="accent4" accent5="accent5" accent6="accent6" hlink="hlink" folHlink="folHlink"/>` +
	`<p:sldLayoutIdLst><p:sldLayoutId id="2147483649" r:id="rId1"/></p:sldLayoutIdLst>` +
	`</p:sldMaster>`

const pptxSlideMasterRels = xml.Header + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout" Target="../slideLayouts/slideLayout1.xml"/>` +
	`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme" Target="../theme/theme1.xml"/>` +
	`</Relationships>`

const pptxSlideLayout = xml.Header + `<p:sldLayout ` + pptxXmlns + ` type="blank">` +
	`<p:cSld name="Blank"><p:spTree>` + pptxEmptySpTree + `</p:spTree></p:cSld>` +
	`<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>` +
	`</p:sldLayout>`

const pptxSlideLayoutRels = xml.Header + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster" Target="../slideMasters/slideMaster1.xml"/>` +
	`</Relationships>`

const pptxSlideRels = xml.Header + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout" Target="../slideLayouts/slideLayout1.xml"/>` +
	`</Relationships>`

const pptxTheme = xml.Header + `<a:theme xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" name="Office">` +
	`<a:themeElements>` +
	`<a:clrScheme name="Office">` +
	`<a:dk1><a:sysClr val="windowText" lastClr="000000"/></a:dk1>` +
	`<a:lt1><a:sysClr val="window" lastClr="FFFFFF"/></a:lt1>` +
	`<a:dk2><a:srgbClr val="44546A"/></a:dk2>` +
	`<a:lt2><a:srgbClr val="E7E6E6"/></a:lt2>` +
	`<a:accent1><a:srgbClr val="4472C4"/></a:accent1>` +
	`<a:accent2><a:srgbClr val="ED7D31"/></a:accent2>` +
	`<a:accent3><a:srgbClr val="A5A5A5"/></a:accent3>` +
	`<a:accent4><a:srgbClr val="FFC000"/></a:accent4>` +
	`<a:accent5><a:srgbClr val="5B9BD5"/></a:accent5>` +
	`<a:accent6><a:srgbClr val="70AD47"/></a:accent6>` +
	`<a:hlink><a:srgbClr val="0563C1"/></a:hlink>` +
	`<a:folHlink><a:srgbClr val="954F72"/></a:folHlink>` +
	`</a:clrScheme>` +
	`<a:fontScheme name="Office">` +
	`<a:majorFont><a:latin typeface="微軟正黑體"/><a:ea typeface="微軟正黑體"/><a:cs typeface=""/></a:majorFont>` +
	`<a:minorFont><a:latin typeface="微軟正黑體"/><a:ea typeface="微軟正黑體"/><a:cs typeface=""/></a:minorFont>` +
	`</a:fontScheme>` +
	`<a:fmtScheme name="Office">` +
	`<a:fillStyleLst><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:fillStyleLst>` +
	`<a:lnStyleLst><a:ln><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln><a:ln><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln><a:ln><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln></a:lnStyleLst>` +
	`<a:effectStyleLst><a:effectStyle><a:effectLst/></a:effectStyle><a:effectStyle><a:effectLst/></a:effectStyle><a:effectStyle><a:effectLst/></a:effectStyle></a:effectStyleLst>` +
	`<a:bgFillStyleLst><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:bgFillStyleLst>` +
	`</a:fmtScheme>` +
	`</a:themeElements>` +
	`</a:theme>`

const (
	slideFont       = "微軟正黑體"
	slideMargin     = int64(457200) // 0.5 inch
	titleFontSize   = 4800          // hundredths of a point
	headingFontSize = 3200
	bodyFontSize    = 2400
	headingColor    = "006CB8"
	slideHeadingTop = int64(274638)
	slideHeadingH   = int64(1143000)
	slideBodyTop    = int64(1600200)
	titleBoxH       = int64(1600000)
)

// textBoxPara is one rendered paragraph inside a slide text box.
type textBoxPara struct {
	text     string
	size     int    // hundredths of a point
	bold     bool
	color    string // optional RRGGBB
	centered bool
}

func (p textBoxPara) xml() string {
	if strings.TrimSpace(p.text) == "" {
		// Empty paragraph, kept for vertical spacing.
		return fmt.Sprintf(`<a:p><a:endParaRPr lang="zh-TW" sz="%d"/></a:p>`, p.size)
	}
	algn := "l"
	if p.centered {
		algn = "ctr"
	}
	bold := "0"
	if p.bold {
		bold = "1"
	}
	var fill string
	if p.color != "" {
		fill = fmt.Sprintf(`<a:solidFill><a:srgbClr val="%s"/></a:solidFill>`, p.color)
	}
	return fmt.Sprintf(
		`<a:p><a:pPr algn="%s"/><a:r><a:rPr lang="zh-TW" sz="%d" b="%s">%s<a:latin typeface="%s"/><a:ea typeface="%s"/></a:rPr><a:t>%s</a:t></a:r></a:p>`,
		algn, p.size, bold, fill, slideFont, slideFont, escapeXML(p.text))
}

// textBox renders one positioned text shape.
func textBox(id int, name string, x, y, w, h int64, anchor string, paras []textBoxPara) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<p:sp><p:nvSpPr><p:cNvPr id="%d" name="%s"/><p:cNvSpPr txBox="1"/><p:nvPr/></p:nvSpPr>`, id, escapeXML(name))
	fmt.Fprintf(&b, `<p:spPr><a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm><a:prstGeom prst="rect"><a:avLst/></a:prstGeom></p:spPr>`, x, y, w, h)
	fmt.Fprintf(&b, `<p:txBody><a:bodyPr wrap="square" anchor="%s"/><a:lstStyle/>`, anchor)
	for _, p := range paras {
		b.WriteString(p.xml())
	}
	b.WriteString(`</p:txBody></p:sp>`)
	return b.String()
}

func slideXML(shapes ...string) string {
	var b strings.Builder
	b.WriteString(xml.Header)
	b.WriteString(`<p:sld ` + pptxXmlns + `><p:cSld><p:spTree>` + pptxEmptySpTree)
	for _, s := range shapes {
		b.WriteString(s)
	}
	b.WriteString(`</p:spTree></p:cSld><p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr></p:sld>`)
	return b.String()
}

// titleSlide renders the deck's opening slide: the title alone, centered,
// in the report kind's accent color.
func titleSlide(title, accent string, cx, cy int64) string {
	box := textBox(2, "Title", slideMargin, cy/2-titleBoxH/2, cx-2*slideMargin, titleBoxH, "ctr",
		[]textBoxPara{{text: title, size: titleFontSize, bold: true, color: accent, centered: true}})
	return slideXML(box)
}

// contentSlide renders one section: heading on top, one paragraph per body
// line below, blank lines preserved as empty paragraphs.
func contentSlide(heading, body string, cx, cy int64) string {
	headingBox := textBox(2, "Heading", slideMargin, slideHeadingTop, cx-2*slideMargin, slideHeadingH, "t",
		[]textBoxPara{{text: heading, size: headingFontSize, bold: true, color: headingColor}})

	var paras []textBoxPara
	for _, line := range strings.Split(body, "\n") {
		paras = append(paras, textBoxPara{text: line, size: bodyFontSize})
	}
	bodyBox := textBox(3, "Body", slideMargin, slideBodyTop, cx-2*slideMargin, cy-slideBodyTop-slideMargin, "t", paras)

	return slideXML(headingBox, bodyBox)
}

func presentationXML(slideCount int, cx, cy int64) string {
	var b strings.Builder
	b.WriteString(xml.Header)
	b.WriteString(`<p:presentation ` + pptxXmlns + `>`)
	b.WriteString(`<p:sldMasterIdLst><p:sldMasterId id="2147483648" r:id="rId1"/></p:sldMasterIdLst>`)
	b.WriteString(`<p:sldIdLst>`)
	for i := 0; i < slideCount; i++ {
		fmt.Fprintf(&b, `<p:sldId id="%d" r:id="rId%d"/>`, 256+i, 2+i)
	}
	b.WriteString(`</p:sldIdLst>`)
	fmt.Fprintf(&b, `<p:sldSz cx="%d" cy="%d"/><p:notesSz cx="6858000" cy="9144000"/>`, cx, cy)
	b.WriteString(`</p:presentation>`)
	return b.String()
}

func presentationRels(slideCount int) string {
	var b strings.Builder
	b.WriteString(xml.Header)
	b.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	b.WriteString(`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster" Target="slideMasters/slideMaster1.xml"/>`)
	for i := 0; i < slideCount; i++ {
		fmt.Fprintf(&b, `<Relationship Id="rId%d" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide" Target="slides/slide%d.xml"/>`, 2+i, 1+i)
	}
	b.WriteString(`</Relationships>`)
	return b.String()
}

func pptxContentTypes(slideCount int) string {
	var b strings.Builder
	b.WriteString(xml.Header)
	b.WriteString(`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">`)
	b.WriteString(`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>`)
	b.WriteString(`<Default Extension="xml" ContentType="application/xml"/>`)
	b.WriteString(`<Override PartName="/ppt/presentation.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/slideMasters/slideMaster1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/slideLayouts/slideLayout1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/theme/theme1.xml" ContentType="application/vnd.openxmlformats-officedocument.theme+xml"/>`)
	for i := 0; i < slideCount; i++ {
		fmt.Fprintf(&b, `<Override PartName="/ppt/slides/slide%d.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slide+xml"/>`, 1+i)
	}
	b.WriteString(`</Types>`)
	return b.String()
}

// BuildSlides renders a deck with a centered title slide followed by one
// content slide per section. The accent color (RRGGBB, may be empty) applies
// to the title slide only. With no sections the whole raw text goes on a
// single content slide headed by the document title. A section with an empty
// title also falls back to the document title for its heading.
func BuildSlides(secs []sections.Section, rawText, title, accent string, aspect Aspect) (Artifact, error) {
	cx, cy := aspect.Size()

	slides := []string{titleSlide(title, accent, cx, cy)}
	if len(secs) == 0 {
		slides = append(slides, contentSlide(title, rawText, cx, cy))
	} else {
		for _, s := range secs {
			heading := s.Title
			if heading == "" {
				heading = title
			}
			slides = append(slides, contentSlide(heading, s.Body, cx, cy))
		}
	}

	parts := []archivePart{
		{"[Content_Types].xml", []byte(pptxContentTypes(len(slides)))},
		{"_rels/.rels", []byte(pptxRootRels)},
		{"ppt/presentation.xml", []byte(presentationXML(len(slides), cx, cy))},
		{"ppt/_rels/presentation.xml.rels", []byte(presentationRels(len(slides)))},
		{"ppt/slideMasters/slideMaster1.xml", []byte(pptxSlideMaster)},
		{"ppt/slideMasters/_rels/slideMaster1.xml.rels", []byte(pptxSlideMasterRels)},
		{"ppt/slideLayouts/slideLayout1.xml", []byte(pptxSlideLayout)},
		{"ppt/slideLayouts/_rels/slideLayout1.xml.rels", []byte(pptxSlideLayoutRels)},
		{"ppt/theme/theme1.xml", []byte(pptxTheme)},
	}
	for i, s := range slides {
		parts = append(parts,
			archivePart{fmt.Sprintf("ppt/slides/slide%d.xml", 1+i), []byte(s)},
			archivePart{fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", 1+i), []byte(pptxSlideRels)},
		)
	}

	data, err := writeArchive(parts)
	if err != nil {
		return Artifact{}, err
	}
	return Artifact{Data: data, MIME: MIMESlides, Ext: ExtSlides}, nil
}
