package docx

import (
	"encoding/xml"
	"strconv"
)

const (
	wordprocessingNS = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	relationshipsNS  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
)

// WordprocessingML element tree. Tags carry the "w:" prefix literally so the output
// matches what word processors write, with the namespace declared once on the root.

type document struct {
	XMLName xml.Name `xml:"w:document"`
	W       string   `xml:"xmlns:w,attr"`
	R       string   `xml:"xmlns:r,attr"`
	Body    body     `xml:"w:body"`
}

// block is a body-level element: a paragraph or a table
type block interface {
	isBlock()
}

type body struct {
	Blocks  []block
	Section sectionProps
}

// MarshalXML keeps paragraphs and tables interleaved in document order
func (b body) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, blk := range b.Blocks {
		if err := e.Encode(blk); err != nil {
			return err
		}
	}
	if err := e.Encode(b.Section); err != nil {
		return err
	}
	return e.EncodeToken(start.End())
}

type paragraph struct {
	XMLName xml.Name        `xml:"w:p"`
	Props   *paragraphProps `xml:"w:pPr,omitempty"`
	Runs    []run           `xml:"w:r"`
}

func (paragraph) isBlock() {}

type paragraphProps struct {
	Spacing *spacing `xml:"w:spacing,omitempty"`
	Justify *valAttr `xml:"w:jc,omitempty"`
}

type spacing struct {
	Before string `xml:"w:before,attr,omitempty"`
	After  string `xml:"w:after,attr,omitempty"`
}

type valAttr struct {
	Val string `xml:"w:val,attr"`
}

type onOff struct{}

type run struct {
	Props *runProps `xml:"w:rPr,omitempty"`
	Text  runText   `xml:"w:t"`
}

type runProps struct {
	Bold   *onOff   `xml:"w:b,omitempty"`
	Color  *valAttr `xml:"w:color,omitempty"`
	Size   *valAttr `xml:"w:sz,omitempty"`
	SizeCS *valAttr `xml:"w:szCs,omitempty"`
}

type runText struct {
	Space string `xml:"xml:space,attr,omitempty"`
	Value string `xml:",chardata"`
}

type table struct {
	XMLName xml.Name   `xml:"w:tbl"`
	Props   tableProps `xml:"w:tblPr"`
	Grid    tableGrid  `xml:"w:tblGrid"`
	Rows    []tableRow `xml:"w:tr"`
}

func (table) isBlock() {}

type tableProps struct {
	Width   width        `xml:"w:tblW"`
	Borders tableBorders `xml:"w:tblBorders"`
}

type width struct {
	W    string `xml:"w:w,attr"`
	Type string `xml:"w:type,attr"`
}

type border struct {
	Val   string `xml:"w:val,attr"`
	Size  string `xml:"w:sz,attr"`
	Space string `xml:"w:space,attr"`
	Color string `xml:"w:color,attr"`
}

type tableBorders struct {
	Top     border `xml:"w:top"`
	Left    border `xml:"w:left"`
	Bottom  border `xml:"w:bottom"`
	Right   border `xml:"w:right"`
	InsideH border `xml:"w:insideH"`
	InsideV border `xml:"w:insideV"`
}

type tableGrid struct {
	Cols []gridCol `xml:"w:gridCol"`
}

type gridCol struct {
	W string `xml:"w:w,attr"`
}

type tableRow struct {
	Cells []tableCell `xml:"w:tc"`
}

type tableCell struct {
	Props      cellProps   `xml:"w:tcPr"`
	Paragraphs []paragraph `xml:"w:p"`
}

type cellProps struct {
	Width width `xml:"w:tcW"`
}

type sectionProps struct {
	XMLName  xml.Name    `xml:"w:sectPr"`
	PageSize pageSize    `xml:"w:pgSz"`
	Margins  pageMargins `xml:"w:pgMar"`
}

type pageSize struct {
	W string `xml:"w:w,attr"`
	H string `xml:"w:h,attr"`
}

type pageMargins struct {
	Top    string `xml:"w:top,attr"`
	Right  string `xml:"w:right,attr"`
	Bottom string `xml:"w:bottom,attr"`
	Left   string `xml:"w:left,attr"`
	Header string `xml:"w:header,attr"`
	Footer string `xml:"w:footer,attr"`
	Gutter string `xml:"w:gutter,attr"`
}

// ===== Builders =====

func itoa(n int) string { return strconv.Itoa(n) }

func newRun(text string, style RunStyle) run {
	r := run{Text: runText{Value: text}}
	if text != "" && (text[0] == ' ' || text[len(text)-1] == ' ') {
		r.Text.Space = "preserve"
	}

	props := &runProps{}
	if style.Bold {
		props.Bold = &onOff{}
	}
	if style.Color != "" {
		props.Color = &valAttr{Val: style.Color}
	}
	if style.Size > 0 {
		props.Size = &valAttr{Val: itoa(style.Size)}
		props.SizeCS = &valAttr{Val: itoa(style.Size)}
	}
	if props.Bold != nil || props.Color != nil || props.Size != nil {
		r.Props = props
	}
	return r
}

func newParagraph(text string, rs RunStyle, ps ParagraphStyle) paragraph {
	p := paragraph{Runs: []run{newRun(text, rs)}}

	props := &paragraphProps{}
	if ps.Before > 0 || ps.After > 0 {
		props.Spacing = &spacing{}
		if ps.Before > 0 {
			props.Spacing.Before = itoa(ps.Before)
		}
		if ps.After > 0 {
			props.Spacing.After = itoa(ps.After)
		}
	}
	if ps.Center {
		props.Justify = &valAttr{Val: "center"}
	}
	if props.Spacing != nil || props.Justify != nil {
		p.Props = props
	}
	return p
}

func singleBorder() border {
	return border{Val: "single", Size: "4", Space: "0", Color: "auto"}
}

func newTable(rows []tableRow) table {
	b := singleBorder()
	return table{
		Props: tableProps{
			Width:   width{W: itoa(tableWidthPct), Type: "pct"},
			Borders: tableBorders{Top: b, Left: b, Bottom: b, Right: b, InsideH: b, InsideV: b},
		},
		Grid: tableGrid{Cols: []gridCol{{W: itoa(categoryGridCol)}, {W: itoa(itemsGridCol)}}},
		Rows: rows,
	}
}

func newCell(p paragraph, widthPct int) tableCell {
	return tableCell{
		Props:      cellProps{Width: width{W: itoa(widthPct), Type: "pct"}},
		Paragraphs: []paragraph{p},
	}
}

func letterSection() sectionProps {
	m := itoa(pageMargin)
	return sectionProps{
		PageSize: pageSize{W: itoa(pageWidth), H: itoa(pageHeight)},
		Margins:  pageMargins{Top: m, Right: m, Bottom: m, Left: m, Header: "720", Footer: "720", Gutter: "0"},
	}
}
