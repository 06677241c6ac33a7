package cvtest

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

// PDF assembles a minimal PDF with one page per entry of pages. Each line is
// drawn as its own text object in Helvetica. A page without lines has no
// content stream at all. Lines must not contain parentheses or backslashes.
func PDF(t testing.TB, pages ...[]string) []byte {
	t.Helper()

	// objs[i] is the body of object i+1; catalog and page tree are filled last
	objs := []string{"", "", "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>"}
	add := func(body string) int {
		objs = append(objs, body)
		return len(objs)
	}

	kids := make([]string, 0, len(pages))
	for _, lines := range pages {
		page := "<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >>"
		if len(lines) > 0 {
			var content strings.Builder
			y := 720
			for _, l := range lines {
				if strings.ContainsAny(l, `()\`) {
					t.Fatalf("unsupported characters in pdf line %q", l)
				}
				fmt.Fprintf(&content, "BT /F1 12 Tf 72 %d Td (%s) Tj ET\n", y, l)
				y -= 16
			}
			c := content.String()
			id := add(fmt.Sprintf("<< /Length %d >>\nstream\n%sendstream", len(c), c))
			page += fmt.Sprintf(" /Contents %d 0 R", id)
		}
		kids = append(kids, fmt.Sprintf("%d 0 R", add(page+" >>")))
	}
	objs[0] = "<< /Type /Catalog /Pages 2 0 R >>"
	objs[1] = fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(kids))

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objs))
	for i, body := range objs {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, body)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objs)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objs)+1, xref)
	return buf.Bytes()
}
