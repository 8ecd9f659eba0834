package changelog

import (
	"fmt"
	"os"
	"strings"
)

// defaultHeader seeds a changelog document that does not exist yet.
const defaultHeader = `# Changelog

All notable changes to this project will be documented in this file.
`

// Document is the persisted changelog file.
type Document struct {
	Path    string
	content string
}

// LoadOrSeed reads the changelog at path, seeding a fresh document with
// the standard header when the file does not exist.
func LoadOrSeed(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Document{Path: path, content: defaultHeader}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading changelog %s: %w", path, err)
	}
	return &Document{Path: path, content: string(data)}, nil
}

// Content returns the current document text.
func (d *Document) Content() string {
	return d.content
}

// Insert places a rendered entry directly above the first existing entry
// heading, keeping the document newest-first. A document without entries
// gets the new entry appended after the header block; scanning for the
// entry marker instead of assuming a fixed header length keeps insertion
// correct for any header.
func (d *Document) Insert(entry string) {
	entry = strings.TrimRight(entry, "\n") + "\n"

	idx := firstEntryOffset(d.content)
	if idx < 0 {
		base := strings.TrimRight(d.content, "\n")
		if base == "" {
			d.content = entry
			return
		}
		d.content = base + "\n\n" + entry
		return
	}

	d.content = d.content[:idx] + entry + "\n" + d.content[idx:]
}

// firstEntryOffset returns the byte offset of the first line starting
// with the entry marker, or -1 when the document has no entries.
func firstEntryOffset(content string) int {
	offset := 0
	for _, line := range strings.SplitAfter(content, "\n") {
		if strings.HasPrefix(line, entryMarker) {
			return offset
		}
		offset += len(line)
	}
	return -1
}

// Write persists the document with a trailing newline.
func (d *Document) Write() error {
	content := strings.TrimRight(d.content, "\n") + "\n"
	if err := os.WriteFile(d.Path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing changelog %s: %w", d.Path, err)
	}
	d.content = content
	return nil
}
