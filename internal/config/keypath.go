package config

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// GetValue retrieves a value from a Config by key. Unset keys report their
// zero value.
func GetValue(cfg *Config, key string) (any, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}
	m, err := ToMap(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	if v, ok := m[key]; ok {
		return v, nil
	}
	return zeroValue(key), nil
}

// SetValue sets a key in a raw YAML map, coercing rawValue to the type of
// the matching Config field.
func SetValue(data map[string]any, key, rawValue string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	if _, isBool := zeroValue(key).(bool); isBool {
		b, err := strconv.ParseBool(rawValue)
		if err != nil {
			return fmt.Errorf("key %q expects true or false, got %q", key, rawValue)
		}
		data[key] = b
		return nil
	}
	data[key] = rawValue
	return nil
}

// ValidateKey checks that key names a Config field. It uses yaml struct tags
// to build the valid key set.
func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("empty key")
	}
	keys := Keys()
	for _, k := range keys {
		if k == key {
			return nil
		}
	}
	return fmt.Errorf("unknown key %q; valid keys: %s", key, strings.Join(keys, ", "))
}

// Keys returns the sorted yaml key names of Config.
func Keys() []string {
	keys := make([]string, 0, len(fieldKinds))
	for k := range fieldKinds {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ToMap converts a Config to a map via YAML round-trip, omitting zero values.
func ToMap(cfg *Config) (map[string]any, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if m == nil {
		m = make(map[string]any)
	}
	return m, nil
}

// fieldKinds maps yaml tag names to the kind of their Config field.
var fieldKinds = yamlKinds(reflect.TypeOf(Config{}))

func yamlKinds(t reflect.Type) map[string]reflect.Kind {
	kinds := make(map[string]reflect.Kind)
	for i := range t.NumField() {
		f := t.Field(i)
		tag := f.Tag.Get("yaml")
		if tag == "" || tag == "-" {
			continue
		}
		if name := strings.Split(tag, ",")[0]; name != "" {
			kinds[name] = f.Type.Kind()
		}
	}
	return kinds
}

func zeroValue(key string) any {
	if fieldKinds[key] == reflect.Bool {
		return false
	}
	return ""
}
