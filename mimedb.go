// Package mimedb provides bidirectional lookup between MIME types and file
// extensions, backed by a database embedded into the binary. The database
// is decoded once on first use; all lookups after that are plain map reads
// and are safe for concurrent use.
//
// The lookups are exact-match and perform no normalization themselves:
// keys must be lowercase, carry no ;parameters and no leading dot. Values
// coming from the wire should be passed through Normalize first.
package mimedb

import (
	"strings"
	"sync"

	"github.com/indigo-web/iter"
	"github.com/indigo-web/mimedb/internal/dataset"
	"github.com/indigo-web/mimedb/internal/strutil"
	"github.com/indigo-web/utils/strcomp"
)

type MIME = string

const (
	OctetStream MIME = "application/octet-stream"
	Plain       MIME = "text/plain"
	HTML        MIME = "text/html"
	XML         MIME = "application/xml"
	JSON        MIME = "application/json"
	PDF         MIME = "application/pdf"
	ZIP         MIME = "application/zip"
	GZIP        MIME = "application/gzip"
	CSS         MIME = "text/css"
	GIF         MIME = "image/gif"
	JPEG        MIME = "image/jpeg"
	PNG         MIME = "image/png"
	SVG         MIME = "image/svg+xml"
	WEBP        MIME = "image/webp"
	JAVASCRIPT  MIME = "text/javascript"
	WASM        MIME = "application/wasm"
	// feel free to add more widespread types!
)

// Entry is a single database record: a MIME type and its file extensions
// in preference order, the first one being preferred.
type Entry = dataset.Entry

var (
	once   sync.Once
	db     []Entry
	byType map[string][]string
	byExt  map[string]string
)

// load builds both indexes exactly once, no matter how many goroutines
// arrive at the first lookup simultaneously. Neither map is ever written
// again, so no further synchronization is needed.
func load() {
	once.Do(func() {
		db = dataset.Load()
		byType = make(map[string][]string, len(db))
		byExt = make(map[string]string, len(db))

		for _, entry := range db {
			byType[entry.Type] = entry.Extensions

			for _, ext := range entry.Extensions {
				// the first type claiming an extension is its canonical
				// type; database order pre-resolves the conflicts
				if _, occupied := byExt[ext]; !occupied {
					byExt[ext] = entry.Type
				}
			}
		}
	})
}

// ExtensionsByType returns all known file extensions for the MIME type in
// preference order, the first one being preferred. False is returned when
// the type is unknown; this is an ordinary outcome, not an error.
func ExtensionsByType(mime MIME) ([]string, bool) {
	load()
	exts, found := byType[mime]
	return exts, found
}

// ExtensionByType returns only the preferred extension for the MIME type.
func ExtensionByType(mime MIME) (string, bool) {
	exts, found := ExtensionsByType(mime)
	if !found || len(exts) == 0 {
		return "", false
	}

	return exts[0], true
}

// TypeByExtension returns the canonical MIME type for a bare extension
// without the leading dot.
func TypeByExtension(ext string) (MIME, bool) {
	load()
	mime, found := byExt[ext]
	return mime, found
}

// Normalize brings an arbitrary media type value to the form the lookups
// expect: parameters cut off, whitespaces stripped, lowercase. The lookups
// never call it themselves.
func Normalize(mime string) MIME {
	mime, _ = strutil.CutParams(mime)
	return strings.ToLower(strutil.LStripWS(mime))
}

// Match reports whether a possibly-parameterized header value names the
// given MIME type, ignoring case. Empty value is considered to match any
// type.
func Match(mime MIME, value string) bool {
	value, _ = strutil.CutParams(value)
	return len(value) == 0 || strcomp.EqualFold(mime, value)
}

// Iter returns an iterator over all database records in database order.
func Iter() iter.Iterator[Entry] {
	load()
	return iter.Slice(db)
}

// Size returns the number of records in the database.
func Size() int {
	load()
	return len(db)
}
