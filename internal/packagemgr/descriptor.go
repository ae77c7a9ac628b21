package packagemgr

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"skill-setup/internal/logger"
)

// DescriptorName is the package descriptor file inside the scripts directory.
const DescriptorName = "package.json"

type field struct {
	Key   string
	Value json.RawMessage
}

// descriptor is a JSON object that keeps its keys in file order, so rewriting
// package.json does not reshuffle what npm or the user wrote.
type descriptor []field

// set replaces the value of key in place, or appends it.
func (d descriptor) set(key string, value json.RawMessage) descriptor {
	for i := range d {
		if d[i].Key == key {
			d[i].Value = value
			return d
		}
	}
	return append(d, field{Key: key, Value: value})
}

// setValue encodes v and stores it under key.
func (d descriptor) setValue(key string, v any) (descriptor, error) {
	raw, err := encodeJSON(v)
	if err != nil {
		return d, err
	}
	return d.set(key, raw), nil
}

// defaultDescriptor mirrors the fields and order `npm init -y` writes.
func defaultDescriptor(name string) (descriptor, error) {
	var (
		d   descriptor
		err error
	)
	for _, f := range []struct {
		key   string
		value any
	}{
		{"name", name},
		{"version", "1.0.0"},
		{"description", ""},
		{"main", "index.js"},
		{"scripts", map[string]string{"test": "echo \"Error: no test specified\" && exit 1"}},
		{"keywords", []string{}},
		{"author", ""},
		{"license", "ISC"},
	} {
		if d, err = d.setValue(f.key, f.value); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// parseDescriptor decodes a top-level JSON object without losing key order.
// Later duplicates of a key win, as with json.Unmarshal.
func parseDescriptor(raw []byte) (descriptor, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("not an object")
	}

	d := descriptor{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", tok)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		d = d.set(key, value)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("trailing data after object")
	}
	return d, nil
}

// marshal renders d indented by two spaces, without HTML escaping and
// without a trailing newline.
func (d descriptor) marshal() ([]byte, error) {
	if len(d) == 0 {
		return []byte("{}"), nil
	}

	var buf bytes.Buffer
	buf.WriteString("{\n")
	for i, f := range d {
		key, err := encodeJSON(f.Key)
		if err != nil {
			return nil, err
		}
		buf.WriteString("  ")
		buf.Write(key)
		buf.WriteString(": ")
		if err := json.Indent(&buf, f.Value, "  ", "  "); err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Key, err)
		}
		if i < len(d)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("}")
	return buf.Bytes(), nil
}

func encodeJSON(v any) (json.RawMessage, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// EnsureDescriptor writes a default package.json into dir unless one already exists.
// It reports whether a new descriptor was created.
func EnsureDescriptor(dir string) (bool, error) {
	path := filepath.Join(dir, DescriptorName)
	if _, err := os.Stat(path); err == nil {
		logger.Debug("[DEBUG] %s already exists\n", path)
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	pkg, err := defaultDescriptor(filepath.Base(dir))
	if err != nil {
		return false, fmt.Errorf("failed to build default %s: %w", path, err)
	}
	if err := writeDescriptor(path, pkg); err != nil {
		return false, err
	}
	logger.Debug("[DEBUG] Created default %s\n", path)
	return true, nil
}

// SetModuleType marks the package as an ES module ("type": "module").
// The descriptor must be a valid JSON object; anything else is an error and
// the file is left untouched. All other fields keep their values and order.
func SetModuleType(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	pkg, err := parseDescriptor(raw)
	if err != nil {
		return fmt.Errorf("malformed package descriptor %s: %w", path, err)
	}
	if pkg, err = pkg.setValue("type", "module"); err != nil {
		return err
	}
	return writeDescriptor(path, pkg)
}

func writeDescriptor(path string, pkg descriptor) error {
	data, err := pkg.marshal()
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
