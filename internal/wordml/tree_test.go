package wordml

import (
	"strings"
	"testing"

	"golang.org/x/text/encoding/unicode"
)

func TestParseBuildsTree(t *testing.T) {
	src := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="` + Namespace + `">
  <w:body>
    <w:p><w:r><w:t>Hello</w:t></w:r></w:p>
  </w:body>
</w:document>`

	root, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if root.Name.Local != "document" || root.Name.Space != Namespace {
		t.Errorf("unexpected root name: %+v", root.Name)
	}
	if len(root.Children) != 1 || root.Children[0].Name.Local != "body" {
		t.Fatalf("expected single body child, got %d children", len(root.Children))
	}

	var texts []string
	root.Walk(func(e *Element) {
		if IsTextRun(e.Name) {
			texts = append(texts, e.Text)
		}
	})
	if len(texts) != 1 || texts[0] != "Hello" {
		t.Errorf("expected [Hello], got %q", texts)
	}
}

func TestParseTextStopsAtFirstChild(t *testing.T) {
	root, err := Parse(strings.NewReader(`<t>lead<x/>tail</t>`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if root.Text != "lead" {
		t.Errorf("expected text %q, got %q", "lead", root.Text)
	}
}

func TestParseKeepsCDATAAndDropsComments(t *testing.T) {
	root, err := Parse(strings.NewReader(`<t>a<!-- note -->b<![CDATA[<c>]]></t>`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if root.Text != "ab<c>" {
		t.Errorf("expected text %q, got %q", "ab<c>", root.Text)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"empty", ""},
		{"whitespace only", "  \n"},
		{"unclosed", "<w:document><w:p>"},
		{"mismatched", "<a><b></a></b>"},
		{"two roots", "<a/><b/>"},
		{"trailing text", "<a/>junk"},
		{"unknown encoding", `<?xml version="1.0" encoding="x-no-such-charset"?><a/>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(tt.src)); err == nil {
				t.Errorf("expected error for %q", tt.src)
			}
		})
	}
}

func TestParseUTF8BOM(t *testing.T) {
	root, err := Parse(strings.NewReader("\xEF\xBB\xBF<t>bom</t>"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if root.Text != "bom" {
		t.Errorf("expected %q, got %q", "bom", root.Text)
	}
}

func TestParseUTF16WithBOM(t *testing.T) {
	src := `<?xml version="1.0" encoding="UTF-16"?><w:t xmlns:w="` + Namespace + `">첫째 줄</w:t>`

	for _, endian := range []unicode.Endianness{unicode.LittleEndian, unicode.BigEndian} {
		enc := unicode.UTF16(endian, unicode.UseBOM).NewEncoder()
		encoded, err := enc.String(src)
		if err != nil {
			t.Fatalf("encode failed: %v", err)
		}

		root, err := Parse(strings.NewReader(encoded))
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if root.Text != "첫째 줄" {
			t.Errorf("expected %q, got %q", "첫째 줄", root.Text)
		}
	}
}

func TestParseDeclaredLatin1(t *testing.T) {
	src := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?><t>caf\xe9</t>"

	root, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if root.Text != "café" {
		t.Errorf("expected %q, got %q", "café", root.Text)
	}
}
