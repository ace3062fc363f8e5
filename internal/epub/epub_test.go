// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package epub

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeArchive writes a zip with the given name/content pairs and returns
// its path.
func writeArchive(t *testing.T, entries map[string]string) string {
	t.Helper()

	file := filepath.Join(t.TempDir(), "issue.epub")
	out, err := os.Create(file)
	if err != nil {
		t.Fatalf("creating archive: %v", err)
	}
	defer out.Close()

	w := zip.NewWriter(out)
	for name, content := range entries {
		entry, err := w.Create(name)
		if err != nil {
			t.Fatalf("creating entry %s: %v", name, err)
		}
		if _, err := entry.Write([]byte(content)); err != nil {
			t.Fatalf("writing entry %s: %v", name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("closing archive: %v", err)
	}
	return file
}

const containerEntry = `<?xml version="1.0"?>
<container version="1.0" xmlns="urn:oasis:names:tc:opendocument:xmlns:container">
  <rootfiles>
    <rootfile full-path="OEBPS/content.opf" media-type="application/oebps-package+xml"/>
  </rootfiles>
</container>`

const opfEntry = `<?xml version="1.0"?>
<package xmlns="http://www.idpf.org/2007/opf" version="3.0">
  <manifest>
    <item id="ch2" href="chapter2.xhtml" media-type="application/xhtml+xml"/>
    <item id="ch1" href="chapter1.xhtml" media-type="application/xhtml+xml"/>
    <item id="css" href="style.css" media-type="text/css"/>
  </manifest>
  <spine>
    <itemref idref="ch1"/>
    <itemref idref="ch2"/>
    <itemref idref="css"/>
  </spine>
</package>`

func TestDocumentsFollowsSpineOrder(t *testing.T) {
	file := writeArchive(t, map[string]string{
		"META-INF/container.xml": containerEntry,
		"OEBPS/content.opf":      opfEntry,
		"OEBPS/chapter2.xhtml":   "<html><body><p>Second chapter text.</p></body></html>",
		"OEBPS/chapter1.xhtml":   "<html><body><p>First chapter text.</p></body></html>",
		"OEBPS/style.css":        "p { margin: 0 }",
	})

	docs, err := Documents(file)
	if err != nil {
		t.Fatalf("Documents: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("got %d documents, want 2", len(docs))
	}
	if !strings.Contains(docs[0].Text, "First chapter") {
		t.Errorf("doc 0 = %q, want first chapter", docs[0].Text)
	}
	if !strings.Contains(docs[1].Text, "Second chapter") {
		t.Errorf("doc 1 = %q, want second chapter", docs[1].Text)
	}
	for i, doc := range docs {
		if doc.DocumentIndex != i {
			t.Errorf("doc %d has index %d", i, doc.DocumentIndex)
		}
		if doc.SourceFile != file {
			t.Errorf("doc %d source = %q, want %q", i, doc.SourceFile, file)
		}
	}
}

func TestDocumentsStripsMarkup(t *testing.T) {
	file := writeArchive(t, map[string]string{
		"META-INF/container.xml": containerEntry,
		"OEBPS/content.opf": `<?xml version="1.0"?>
<package xmlns="http://www.idpf.org/2007/opf" version="3.0">
  <manifest>
    <item id="ch1" href="chapter1.xhtml" media-type="application/xhtml+xml"/>
  </manifest>
  <spine><itemref idref="ch1"/></spine>
</package>`,
		"OEBPS/chapter1.xhtml": `<html><body>
<h1>The Headline</h1>
<p>Opening <em>paragraph</em> text.</p>
<script>var tracked = true;</script>
<style>p { color: red }</style>
<p>Closing paragraph.</p>
</body></html>`,
	})

	docs, err := Documents(file)
	if err != nil {
		t.Fatalf("Documents: %v", err)
	}
	text := docs[0].Text
	if strings.Contains(text, "tracked") || strings.Contains(text, "color") {
		t.Errorf("script or style content leaked into %q", text)
	}
	if !strings.Contains(text, "Opening paragraph text.") {
		t.Errorf("inline markup broke the paragraph: %q", text)
	}
	// Block elements become line boundaries.
	if !strings.Contains(text, "The Headline\n") {
		t.Errorf("headline not on its own line: %q", text)
	}
}

func TestDocumentsFallsBackWithoutContainer(t *testing.T) {
	file := writeArchive(t, map[string]string{
		"b_second.xhtml": "<html><body><p>Beta text.</p></body></html>",
		"a_first.xhtml":  "<html><body><p>Alpha text.</p></body></html>",
		"notes.txt":      "not markup",
	})

	docs, err := Documents(file)
	if err != nil {
		t.Fatalf("Documents: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("got %d documents, want 2", len(docs))
	}
	if !strings.Contains(docs[0].Text, "Alpha") || !strings.Contains(docs[1].Text, "Beta") {
		t.Errorf("fallback did not sort entries: %q, %q", docs[0].Text, docs[1].Text)
	}
}

func TestDocumentsRejectsNonArchive(t *testing.T) {
	file := filepath.Join(t.TempDir(), "broken.epub")
	if err := os.WriteFile(file, []byte("this is not a zip"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Documents(file); err == nil {
		t.Fatal("expected an error for a non-zip file")
	}
}

func TestDocumentsRejectsEmptyArchive(t *testing.T) {
	file := writeArchive(t, map[string]string{"mimetype": "application/epub+zip"})
	if _, err := Documents(file); err == nil {
		t.Fatal("expected an error for an archive with no documents")
	}
}
