package export

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"strings"
	"time"
)

// pdfDocument assembles finished page content streams into a complete PDF
// file: header, object table, xref, and trailer.
type pdfDocument struct {
	compress bool
	title    string
	author   string
	objects  []string
	pageObjs []int
}

func newPDFDocument(title, author string, compress bool) *pdfDocument {
	return &pdfDocument{
		compress: compress,
		title:    title,
		author:   author,
		objects:  make([]string, 0),
		pageObjs: make([]int, 0),
	}
}

// addObject adds an object and returns its local object number. Local
// numbers are shifted past the fixed catalog/pages/font objects in build.
func (d *pdfDocument) addObject(content string) int {
	d.objects = append(d.objects, content)
	return len(d.objects)
}

// fixedObjects is the count of objects preceding page content: catalog,
// page tree, and the three font dictionaries.
const fixedObjects = 5

// addPage appends one page with the given content stream.
func (d *pdfDocument) addPage(width, height float64, content string) {
	var streamData []byte
	var filter string

	if d.compress {
		var buf bytes.Buffer
		w := zlib.NewWriter(&buf)
		w.Write([]byte(content))
		w.Close()
		streamData = buf.Bytes()
		filter = "/Filter /FlateDecode\n"
	} else {
		streamData = []byte(content)
	}

	streamObj := fmt.Sprintf("<< /Length %d\n%s>>\nstream\n%sendstream",
		len(streamData), filter, streamData)
	streamNum := d.addObject(streamObj)

	pageObj := fmt.Sprintf("<< /Type /Page\n/Parent 2 0 R\n/MediaBox [0 0 %.2f %.2f]\n/Contents %d 0 R\n/Resources << /Font << /F1 3 0 R /F2 4 0 R /F3 5 0 R >> >>\n>>",
		width, height, streamNum+fixedObjects)
	pageNum := d.addObject(pageObj)

	d.pageObjs = append(d.pageObjs, pageNum)
}

// build generates the complete PDF file.
func (d *pdfDocument) build() []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("%%PDF-%s\n", pdfVersion))
	buf.WriteString("%\xE2\xE3\xCF\xD3\n")

	var kids strings.Builder
	kids.WriteString("[")
	for i, pageNum := range d.pageObjs {
		if i > 0 {
			kids.WriteString(" ")
		}
		kids.WriteString(fmt.Sprintf("%d 0 R", pageNum+fixedObjects))
	}
	kids.WriteString("]")

	finalObjects := make([]string, 0, len(d.objects)+fixedObjects+1)

	// Objects 1-2: catalog and page tree.
	finalObjects = append(finalObjects, "<< /Type /Catalog\n/Pages 2 0 R\n>>")
	finalObjects = append(finalObjects, fmt.Sprintf("<< /Type /Pages\n/Kids %s\n/Count %d\n>>",
		kids.String(), len(d.pageObjs)))

	// Objects 3-5: the built-in faces.
	for _, base := range []string{"Helvetica", "Helvetica-Bold", "Helvetica-Oblique"} {
		finalObjects = append(finalObjects, fmt.Sprintf(
			"<< /Type /Font\n/Subtype /Type1\n/BaseFont /%s\n/Encoding /WinAnsiEncoding\n>>", base))
	}

	finalObjects = append(finalObjects, d.objects...)

	infoObj := d.buildInfoDict()
	finalObjects = append(finalObjects, infoObj)
	infoNum := len(finalObjects)

	xref := make([]int, len(finalObjects)+1)
	for i, obj := range finalObjects {
		xref[i+1] = buf.Len()
		buf.WriteString(fmt.Sprintf("%d 0 obj\n%s\nendobj\n", i+1, obj))
	}

	xrefPos := buf.Len()
	buf.WriteString("xref\n")
	buf.WriteString(fmt.Sprintf("0 %d\n", len(finalObjects)+1))
	buf.WriteString("0000000000 65535 f \n")
	for i := 1; i <= len(finalObjects); i++ {
		buf.WriteString(fmt.Sprintf("%010d 00000 n \n", xref[i]))
	}

	buf.WriteString("trailer\n")
	buf.WriteString(fmt.Sprintf("<< /Size %d\n/Root 1 0 R\n/Info %d 0 R\n>>", len(finalObjects)+1, infoNum))
	buf.WriteString("\nstartxref\n")
	buf.WriteString(fmt.Sprintf("%d\n", xrefPos))
	buf.WriteString("%%EOF\n")

	return buf.Bytes()
}

// buildInfoDict creates the PDF Info dictionary for metadata.
func (d *pdfDocument) buildInfoDict() string {
	var sb strings.Builder
	sb.WriteString("<<\n")

	if d.title != "" {
		sb.WriteString(fmt.Sprintf("/Title (%s)\n", escapeString(d.title)))
	}
	if d.author != "" {
		sb.WriteString(fmt.Sprintf("/Author (%s)\n", escapeString(d.author)))
	}
	sb.WriteString(fmt.Sprintf("/Producer (%s)\n", escapeString(pdfProducer)))

	dateStr := time.Now().UTC().Format("D:20060102150405Z")
	sb.WriteString(fmt.Sprintf("/CreationDate (%s)\n", dateStr))
	sb.WriteString(fmt.Sprintf("/ModDate (%s)\n", dateStr))

	sb.WriteString(">>")
	return sb.String()
}
