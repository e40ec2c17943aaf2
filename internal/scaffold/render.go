package scaffold

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// DatabaseName lower-cases name and maps every rune outside [a-z0-9_] to '_'.
// The result is a fixed point: DatabaseName(DatabaseName(s)) == DatabaseName(s).
func DatabaseName(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			return r
		}
		return '_'
	}, strings.ToLower(name))
}

// RenderEnv replaces every literal occurrence of placeholder with dbName.
// Nothing else in content is touched.
func RenderEnv(content, placeholder, dbName string) string {
	if placeholder == "" {
		return content
	}
	return strings.ReplaceAll(content, placeholder, dbName)
}

var errManifestNotObject = errors.New("manifest root must be a JSON object")

// RewriteManifest sets the top-level "name" field of a JSON object and
// re-serializes it with two-space indentation. Other top-level keys keep their
// original order and values; a missing "name" is appended last.
func RewriteManifest(data []byte, name string) ([]byte, error) {
	keys, values, err := decodeObject(data)
	if err != nil {
		return nil, err
	}

	encodedName, err := marshalNoEscape(name)
	if err != nil {
		return nil, err
	}
	if _, ok := values["name"]; !ok {
		keys = append(keys, "name")
	}
	values["name"] = encodedName

	var compact bytes.Buffer
	compact.WriteByte('{')
	for i, key := range keys {
		if i > 0 {
			compact.WriteByte(',')
		}
		encodedKey, err := marshalNoEscape(key)
		if err != nil {
			return nil, err
		}
		compact.Write(encodedKey)
		compact.WriteByte(':')
		compact.Write(values[key])
	}
	compact.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

// decodeObject reads the top level of a JSON object, remembering key order.
// A key that appears twice keeps its first position and its last value.
func decodeObject(data []byte) ([]string, map[string]json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, nil, errManifestNotObject
	}

	var keys []string
	values := make(map[string]json.RawMessage)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, nil, fmt.Errorf("unexpected token %v", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, nil, err
		}
		if _, seen := values[key]; !seen {
			keys = append(keys, key)
		}
		values[key] = raw
	}
	if _, err := dec.Token(); err != nil {
		return nil, nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, nil, errors.New("unexpected data after manifest object")
	}
	return keys, values, nil
}

func marshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
