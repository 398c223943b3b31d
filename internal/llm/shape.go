package llm

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// compiledShapes caches compiled schemas by shape name. Shapes are
// package-level singletons in practice, so the cache stays tiny.
var compiledShapes sync.Map

// Check validates raw against the shape's schema. A nil shape accepts
// anything. Shape violations come back as *MalformedReplyError.
func (s *OutputShape) Check(raw json.RawMessage) error {
	if s == nil {
		return nil
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return &MalformedReplyError{Raw: raw, Err: fmt.Errorf("reply is not JSON: %w", err)}
	}

	compiled, err := s.compiled()
	if err != nil {
		return fmt.Errorf("shape %q: %w", s.Name, err)
	}
	if err := compiled.Validate(doc); err != nil {
		return &MalformedReplyError{Raw: raw, Err: fmt.Errorf("reply does not match shape %q: %w", s.Name, err)}
	}
	return nil
}

func (s *OutputShape) compiled() (*jsonschema.Schema, error) {
	if hit, ok := compiledShapes.Load(s.Name); ok {
		return hit.(*jsonschema.Schema), nil
	}

	// The compiler wants a decoded JSON document rather than an
	// arbitrary Go map; round-trip through encoding/json to normalize
	// the value types.
	blob, err := json.Marshal(s.Schema)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(blob, &doc); err != nil {
		return nil, err
	}

	compiler := jsonschema.NewCompiler()
	url := "drill://shapes/" + s.Name
	if err := compiler.AddResource(url, doc); err != nil {
		return nil, err
	}
	compiled, err := compiler.Compile(url)
	if err != nil {
		return nil, err
	}
	compiledShapes.Store(s.Name, compiled)
	return compiled, nil
}
