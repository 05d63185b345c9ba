package api

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"sync"

	"github.com/qri-io/jsonschema"

	"github.com/PONGPONGz/GearMate/internal/service"
)

//go:embed schemas/*.json
var schemaFiles embed.FS

// PayloadValidator checks request bodies against the embedded JSON schemas,
// one per resource, keyed by file name without extension.
type PayloadValidator struct {
	mu    sync.RWMutex
	cache map[string]*jsonschema.Schema
}

func NewPayloadValidator() (*PayloadValidator, error) {
	v := &PayloadValidator{cache: make(map[string]*jsonschema.Schema)}
	if err := v.Reload(schemaFiles); err != nil {
		return nil, err
	}

	return v, nil
}

// Reload compiles every schemas/*.json file in fsys and swaps the cache.
func (v *PayloadValidator) Reload(fsys fs.FS) error {
	entries, err := fs.ReadDir(fsys, "schemas")
	if err != nil {
		return fmt.Errorf("read schemas: %w", err)
	}

	newCache := make(map[string]*jsonschema.Schema)
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".json" {
			continue
		}
		b, err := fs.ReadFile(fsys, path.Join("schemas", e.Name()))
		if err != nil {
			return fmt.Errorf("read schema %s: %w", e.Name(), err)
		}
		rs := &jsonschema.Schema{}
		if err := json.Unmarshal(b, rs); err != nil {
			return fmt.Errorf("compile schema %s: %w", e.Name(), err)
		}
		newCache[strings.TrimSuffix(e.Name(), ".json")] = rs
	}

	v.mu.Lock()
	v.cache = newCache
	v.mu.Unlock()

	return nil
}

// Validate returns a service validation error describing every schema violation in body.
func (v *PayloadValidator) Validate(ctx context.Context, name string, body []byte) error {
	v.mu.RLock()
	rs, ok := v.cache[name]
	v.mu.RUnlock()
	if !ok {
		return fmt.Errorf("no payload schema %q", name)
	}

	if !json.Valid(body) {
		return service.ValidationError("request body is not valid JSON")
	}

	verrs, err := rs.ValidateBytes(ctx, body)
	if err != nil {
		return service.ValidationError("request body: %v", err)
	}
	if len(verrs) > 0 {
		msgs := make([]string, 0, len(verrs))
		for _, ke := range verrs {
			msgs = append(msgs, fmt.Sprintf("%s: %s", ke.PropertyPath, ke.Message))
		}
		return service.ValidationError("%s", strings.Join(msgs, "; "))
	}

	return nil
}

// decodeBody reads r's body, validates it against schema and unmarshals it into dst.
func (v *PayloadValidator) decodeBody(w http.ResponseWriter, r *http.Request, schema string, dst any) error {
	body, err := readBody(w, r)
	if err != nil {
		return err
	}
	if err := v.Validate(r.Context(), schema, body); err != nil {
		return err
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return service.ValidationError("decode %s: %v", schema, err)
	}
	return nil
}
