// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package epub decodes EPUB containers into plain-text documents, one per
// spine item. It resolves the OPF package through META-INF/container.xml
// and strips each content document to prose with block-level newlines.
// When the container metadata is broken it degrades to a sorted scan of
// the archive's HTML entries.
package epub

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/mweiqi/magazine-collector/pkg/types"
)

const containerPath = "META-INF/container.xml"

type containerXML struct {
	Rootfiles []struct {
		FullPath string `xml:"full-path,attr"`
	} `xml:"rootfiles>rootfile"`
}

type packageXML struct {
	Manifest struct {
		Items []struct {
			ID        string `xml:"id,attr"`
			Href      string `xml:"href,attr"`
			MediaType string `xml:"media-type,attr"`
		} `xml:"item"`
	} `xml:"manifest"`
	Spine struct {
		ItemRefs []struct {
			IDRef string `xml:"idref,attr"`
		} `xml:"itemref"`
	} `xml:"spine"`
}

// Documents decodes one EPUB file into its ordered internal documents.
// Documents that fail to parse individually are skipped; the error return
// covers only failures that make the whole file unreadable.
func Documents(file string) ([]types.RawDocument, error) {
	r, err := zip.OpenReader(file)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", file, err)
	}
	defer r.Close()

	entries := make(map[string]*zip.File, len(r.File))
	for _, f := range r.File {
		entries[f.Name] = f
	}

	hrefs, err := spineOrder(entries)
	if err != nil || len(hrefs) == 0 {
		hrefs = htmlEntries(entries)
	}
	if len(hrefs) == 0 {
		return nil, fmt.Errorf("%s: no readable documents", file)
	}

	var docs []types.RawDocument
	for _, href := range hrefs {
		entry, ok := entries[href]
		if !ok {
			continue
		}
		text, err := stripHTML(entry)
		if err != nil || strings.TrimSpace(text) == "" {
			continue
		}
		docs = append(docs, types.RawDocument{
			SourceFile:    file,
			DocumentIndex: len(docs),
			Text:          text,
		})
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("%s: no decodable documents", file)
	}
	return docs, nil
}

// spineOrder resolves the reading-order hrefs through the OPF package.
func spineOrder(entries map[string]*zip.File) ([]string, error) {
	rootfile, err := rootfilePath(entries)
	if err != nil {
		return nil, err
	}

	opfEntry, ok := entries[rootfile]
	if !ok {
		return nil, fmt.Errorf("rootfile %s missing from archive", rootfile)
	}
	var pkg packageXML
	if err := decodeXML(opfEntry, &pkg); err != nil {
		return nil, fmt.Errorf("parsing OPF: %w", err)
	}

	type item struct{ href, mediaType string }
	manifest := make(map[string]item, len(pkg.Manifest.Items))
	for _, it := range pkg.Manifest.Items {
		manifest[it.ID] = item{href: it.Href, mediaType: it.MediaType}
	}

	base := path.Dir(rootfile)
	var hrefs []string
	for _, ref := range pkg.Spine.ItemRefs {
		it, ok := manifest[ref.IDRef]
		if !ok || !htmlMediaType(it.mediaType) {
			continue
		}
		href := it.href
		if base != "." {
			href = path.Join(base, href)
		}
		hrefs = append(hrefs, path.Clean(href))
	}
	return hrefs, nil
}

func rootfilePath(entries map[string]*zip.File) (string, error) {
	entry, ok := entries[containerPath]
	if !ok {
		return "", fmt.Errorf("%s missing", containerPath)
	}
	var c containerXML
	if err := decodeXML(entry, &c); err != nil {
		return "", fmt.Errorf("parsing container.xml: %w", err)
	}
	if len(c.Rootfiles) == 0 || c.Rootfiles[0].FullPath == "" {
		return "", fmt.Errorf("container.xml declares no rootfile")
	}
	return c.Rootfiles[0].FullPath, nil
}

func decodeXML(entry *zip.File, v any) error {
	rc, err := entry.Open()
	if err != nil {
		return err
	}
	defer rc.Close()
	return xml.NewDecoder(rc).Decode(v)
}

func htmlMediaType(mt string) bool {
	return mt == "application/xhtml+xml" || mt == "text/html"
}

// htmlEntries returns the archive's HTML documents in sorted name order,
// the degraded path for EPUBs with broken container metadata.
func htmlEntries(entries map[string]*zip.File) []string {
	var hrefs []string
	for name := range entries {
		lower := strings.ToLower(name)
		if strings.HasSuffix(lower, ".xhtml") || strings.HasSuffix(lower, ".html") ||
			strings.HasSuffix(lower, ".htm") {
			hrefs = append(hrefs, name)
		}
	}
	sort.Strings(hrefs)
	return hrefs
}

// blockTags are the elements that terminate a text run with a newline,
// mirroring how a line-per-block text dump of the markup reads.
var blockTags = map[string]struct{}{
	"p": {}, "div": {}, "br": {}, "li": {}, "tr": {}, "table": {},
	"h1": {}, "h2": {}, "h3": {}, "h4": {}, "h5": {}, "h6": {},
	"section": {}, "article": {}, "header": {}, "footer": {},
	"blockquote": {}, "figcaption": {}, "ul": {}, "ol": {},
}

// stripHTML extracts prose from one content document, dropping script and
// style subtrees and inserting newlines at block boundaries.
func stripHTML(entry *zip.File) (string, error) {
	rc, err := entry.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	doc, err := goquery.NewDocumentFromReader(rc)
	if err != nil {
		return "", err
	}
	doc.Find("script, style, noscript").Remove()

	root := doc.Get(0)
	if root == nil {
		return "", fmt.Errorf("empty document")
	}

	var b strings.Builder
	walkText(root, &b)
	return b.String(), nil
}

func walkText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkText(c, b)
	}
	if n.Type == html.ElementNode {
		if _, block := blockTags[n.Data]; block {
			b.WriteByte('\n')
		}
	}
}
