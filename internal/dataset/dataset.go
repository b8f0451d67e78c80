package dataset

import (
	_ "embed"
	"fmt"

	json "github.com/json-iterator/go"
)

// Entry is a single database record: a MIME type and its file extensions
// in preference order, the first one being preferred. When multiple types
// share an extension, the record appearing earlier in the database owns it;
// the conflicts are resolved at generation time, not at runtime.
type Entry struct {
	Type       string   `json:"type"`
	Extensions []string `json:"extensions"`
}

// Raw database bytes compiled into the binary. The file is generated from
// a public MIME registry; see the type comment on Entry for its ordering
// guarantees.
//
//go:embed db.json
var raw []byte

// Load decodes the embedded database. The database is generated and
// verified ahead of time, so a decode failure can only mean a corrupted
// artifact and panics instead of surfacing an error nobody can handle.
func Load() []Entry {
	var entries []Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		panic(fmt.Errorf("mimedb: embedded database is corrupted: %v", err))
	}

	return entries
}
