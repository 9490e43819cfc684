package mix

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrDuplicateParam is returned when two keys name the same parameter once
// case is ignored.
var ErrDuplicateParam = errors.New("duplicate parameter")

// DecodeRequest reads a single request document (YAML or JSON) mapping
// parameter keys to values. Keys are case-insensitive; omitted keys keep
// their defaults.
func DecodeRequest(r io.Reader) (Request, error) {
	var doc map[string]float64
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Defaults(), nil
		}
		return Request{}, fmt.Errorf("decode request: %w", err)
	}

	req := Defaults()
	seen := make(map[string]string, len(doc))
	for k, v := range doc {
		key := strings.ToUpper(strings.TrimSpace(k))
		if prev, ok := seen[key]; ok {
			return Request{}, fmt.Errorf("%w: %q and %q both set %s", ErrDuplicateParam, prev, k, key)
		}
		seen[key] = k

		var err error
		req, err = req.With(key, v)
		if err != nil {
			return Request{}, err
		}
	}
	return req, nil
}
