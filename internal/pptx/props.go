package pptx

import (
	"encoding/xml"
	"fmt"
)

const (
	corePropsPath = "docProps/core.xml"
	appPropsPath  = "docProps/app.xml"
)

// Metadata represents the document properties of a presentation
type Metadata struct {
	Title          string
	Subject        string
	Creator        string
	LastModifiedBy string
	Created        string // W3CDTF timestamp, as stored
	Modified       string // W3CDTF timestamp, as stored
	Application    string
	Company        string
	SlideCount     int
}

// coreProperties represents docProps/core.xml (OPC core properties)
type coreProperties struct {
	XMLName        xml.Name `xml:"http://schemas.openxmlformats.org/package/2006/metadata/core-properties coreProperties"`
	Title          string   `xml:"http://purl.org/dc/elements/1.1/ title"`
	Subject        string   `xml:"http://purl.org/dc/elements/1.1/ subject"`
	Creator        string   `xml:"http://purl.org/dc/elements/1.1/ creator"`
	LastModifiedBy string   `xml:"http://schemas.openxmlformats.org/package/2006/metadata/core-properties lastModifiedBy"`
	Created        string   `xml:"http://purl.org/dc/terms/ created"`
	Modified       string   `xml:"http://purl.org/dc/terms/ modified"`
}

// appProperties represents docProps/app.xml (extended properties)
type appProperties struct {
	XMLName     xml.Name `xml:"Properties"`
	Application string   `xml:"Application"`
	Company     string   `xml:"Company"`
	Slides      int      `xml:"Slides"`
}

// ReadMetadata parses the document property parts of the package. Both
// parts are optional; a missing part leaves its fields zero-valued. A
// present part that fails to parse is an error.
func (r *Reader) ReadMetadata() (Metadata, error) {
	var md Metadata

	if content, err := r.ReadFile(corePropsPath); err == nil {
		var core coreProperties
		if err := xml.Unmarshal(content, &core); err != nil {
			return md, fmt.Errorf("failed to parse %s: %w", corePropsPath, err)
		}
		md.Title = core.Title
		md.Subject = core.Subject
		md.Creator = core.Creator
		md.LastModifiedBy = core.LastModifiedBy
		md.Created = core.Created
		md.Modified = core.Modified
	}

	if content, err := r.ReadFile(appPropsPath); err == nil {
		var app appProperties
		if err := xml.Unmarshal(content, &app); err != nil {
			return md, fmt.Errorf("failed to parse %s: %w", appPropsPath, err)
		}
		md.Application = app.Application
		md.Company = app.Company
		md.SlideCount = app.Slides
	}

	return md, nil
}
