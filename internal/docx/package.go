package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"time"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

const contentTypesXML = xmlHeader + `<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>` +
	`<Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>` +
	`</Types>`

const packageRelsXML = xmlHeader + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/>` +
	`</Relationships>`

const documentRelsXML = xmlHeader + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>` +
	`</Relationships>`

const stylesXML = xmlHeader + `<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
	`<w:docDefaults><w:rPrDefault><w:rPr>` +
	`<w:rFonts w:ascii="Calibri" w:hAnsi="Calibri" w:eastAsia="Calibri" w:cs="Calibri"/>` +
	`<w:sz w:val="22"/><w:szCs w:val="22"/><w:lang w:val="en-US"/>` +
	`</w:rPr></w:rPrDefault><w:pPrDefault/></w:docDefaults>` +
	`<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/><w:qFormat/></w:style>` +
	`<w:style w:type="table" w:default="1" w:styleId="TableNormal"><w:name w:val="Normal Table"/>` +
	`<w:tblPr><w:tblInd w:w="0" w:type="dxa"/><w:tblCellMar>` +
	`<w:top w:w="0" w:type="dxa"/><w:left w:w="108" w:type="dxa"/><w:bottom w:w="0" w:type="dxa"/><w:right w:w="108" w:type="dxa"/>` +
	`</w:tblCellMar></w:tblPr></w:style>` +
	`</w:styles>`

type coreProperties struct {
	XMLName xml.Name `xml:"cp:coreProperties"`
	CP      string   `xml:"xmlns:cp,attr"`
	DC      string   `xml:"xmlns:dc,attr"`
	Title   string   `xml:"dc:title,omitempty"`
	Creator string   `xml:"dc:creator"`
}

// part is one entry of the OOXML package
type part struct {
	name    string
	content []byte
}

// pack writes the parts into a zip archive. Entries get a fixed timestamp so equal
// inputs produce equal bytes.
func pack(parts []part, modified time.Time) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, p := range parts {
		header := &zip.FileHeader{
			Name:     p.name,
			Method:   zip.Deflate,
			Modified: modified,
		}
		w, err := zw.CreateHeader(header)
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", p.name, err)
		}
		if _, err := w.Write(p.content); err != nil {
			return nil, fmt.Errorf("write %s: %w", p.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close package: %w", err)
	}
	return buf.Bytes(), nil
}

func marshalPart(v interface{}) ([]byte, error) {
	out, err := xml.Marshal(v)
	if err != nil {
		return nil, err
	}
	return append([]byte(xmlHeader), out...), nil
}

// buildParts assembles every package part around the given document body
func buildParts(doc document, title, creator string) ([]part, error) {
	documentXML, err := marshalPart(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}

	coreXML, err := marshalPart(coreProperties{
		CP:      "http://schemas.openxmlformats.org/package/2006/metadata/core-properties",
		DC:      "http://purl.org/dc/elements/1.1/",
		Title:   title,
		Creator: creator,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal core properties: %w", err)
	}

	return []part{
		{name: "[Content_Types].xml", content: []byte(contentTypesXML)},
		{name: "_rels/.rels", content: []byte(packageRelsXML)},
		{name: "word/document.xml", content: documentXML},
		{name: "word/styles.xml", content: []byte(stylesXML)},
		{name: "word/_rels/document.xml.rels", content: []byte(documentRelsXML)},
		{name: "docProps/core.xml", content: coreXML},
	}, nil
}
