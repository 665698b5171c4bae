package config

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// StringSlice accepts either a single string or a list of strings. A single
// string may hold comma separated ids, e.g. "fast, slow".
type StringSlice []string

func (s *StringSlice) add(v string) {
	for _, id := range strings.Split(v, ",") {
		if id = strings.TrimSpace(id); id != "" {
			*s = append(*s, id)
		}
	}
}

func (s *StringSlice) decode(a interface{}) error {
	switch d := a.(type) {
	case string:
		s.add(d)

	case []interface{}:
		for _, de := range d {
			if err := s.decode(de); err != nil {
				return err
			}
		}

	default:
		return errors.Errorf("unexpected type %T for StringSlice: %+v", d, d)
	}

	return nil
}

func (s *StringSlice) UnmarshalYAML(value *yaml.Node) error {
	var a interface{}
	if err := value.Decode(&a); err != nil {
		return err
	}

	*s = nil
	return errors.Wrapf(s.decode(a), "line %d", value.Line)
}

func (s *StringSlice) UnmarshalJSON(b []byte) error {
	var a interface{}
	var err = json.Unmarshal(b, &a)
	if err != nil {
		return err
	}

	*s = nil
	return s.decode(a)
}
