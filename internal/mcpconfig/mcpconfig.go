// Package mcpconfig reads, merges and writes the host's MCP configuration file,
// a JSON object of the form { "mcpServers": { "<name>": { "command": ..., "args": [...] } } }.
//
// Only the server entries this installer owns are touched; every other
// top-level field and server entry is carried through unchanged.
package mcpconfig

import (
	"errors"
)

// serversKey is the top-level field holding the server mapping.
const serversKey = "mcpServers"

// ErrMalformed is returned by Store.Load when the existing file is not a JSON object.
// The accompanying Document is empty and safe to use.
var ErrMalformed = errors.New("mcp config is not valid JSON")

// Document is the whole configuration object. Values are kept as decoded JSON
// so unknown fields round-trip.
type Document map[string]any

// Server is one entry of the mcpServers mapping.
type Server struct {
	Command string   `json:"command"`
	Args    []string `json:"args"`
}

// Store loads and saves a Document. FileStore is the on-disk implementation;
// tests substitute an in-memory one.
type Store interface {
	Load() (Document, error)
	Save(doc Document) error
}

// ServerEntry returns the record used to launch mcp-mermaid on the given GOOS.
// Windows needs the cmd /c wrapper because npx is a batch script there.
func ServerEntry(goos string) Server {
	if goos == "windows" {
		return Server{Command: "cmd", Args: []string{"/c", "npx", "-y", "mcp-mermaid"}}
	}
	return Server{Command: "npx", Args: []string{"-y", "mcp-mermaid"}}
}

// Register sets doc.mcpServers[name] to entry, creating the mapping when it
// is missing or not an object. Other entries are left as they are.
func Register(doc Document, name string, entry Server) Document {
	if doc == nil {
		doc = Document{}
	}
	servers := serversOf(doc)
	servers[name] = map[string]any{
		"command": entry.Command,
		"args":    toAnySlice(entry.Args),
	}
	doc[serversKey] = servers
	return doc
}

// Unregister removes doc.mcpServers[name]. It reports whether an entry was removed.
func Unregister(doc Document, name string) bool {
	if doc == nil {
		return false
	}
	servers, ok := doc[serversKey].(map[string]any)
	if !ok {
		return false
	}
	if _, ok := servers[name]; !ok {
		return false
	}
	delete(servers, name)
	return true
}

// Servers returns the names currently registered under mcpServers.
func Servers(doc Document) []string {
	servers, ok := doc[serversKey].(map[string]any)
	if !ok {
		return nil
	}
	names := make([]string, 0, len(servers))
	for name := range servers {
		names = append(names, name)
	}
	return names
}

func serversOf(doc Document) map[string]any {
	if servers, ok := doc[serversKey].(map[string]any); ok && servers != nil {
		return servers
	}
	return map[string]any{}
}

func toAnySlice(in []string) []any {
	out := make([]any, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}
