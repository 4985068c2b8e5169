package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// object is a JSON object keeping the order of its keys.
type object struct {
	keys   []string
	values map[string]json.RawMessage
}

func newObject() *object {
	return &object{values: map[string]json.RawMessage{}}
}

// UnmarshalJSON implements json.Unmarshaler.
func (obj *object) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	token, err := decoder.Token()
	if err != nil {
		return err
	}
	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected JSON object, got %v", token)
	}

	obj.keys = []string{}
	obj.values = map[string]json.RawMessage{}
	for decoder.More() {
		token, err = decoder.Token()
		if err != nil {
			return err
		}
		key, ok := token.(string)
		if !ok {
			return fmt.Errorf("unexpected object key %v", token)
		}
		var value json.RawMessage
		if err = decoder.Decode(&value); err != nil {
			return err
		}
		obj.set(key, value)
	}
	_, err = decoder.Token()
	return err
}

// MarshalJSON implements json.Marshaler.
func (obj object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range obj.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		encodedKey, err := marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(encodedKey)
		buf.WriteByte(':')
		buf.Write(obj.values[key])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (obj *object) has(key string) bool {
	_, found := obj.values[key]
	return found
}

func (obj *object) set(key string, value json.RawMessage) {
	if !obj.has(key) {
		obj.keys = append(obj.keys, key)
	}
	obj.values[key] = value
}

// setValue encodes value and stores it by key.
func (obj *object) setValue(key string, value any) error {
	encoded, err := marshal(value)
	if err != nil {
		return err
	}
	obj.set(key, encoded)
	return nil
}

// getString returns a string value stored by key.
func (obj *object) getString(key string) (string, bool) {
	raw, found := obj.values[key]
	if !found {
		return "", false
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", false
	}
	return value, true
}

// getObject returns a nested object stored by key. Missing key results in an
// empty object.
func (obj *object) getObject(key string) (*object, error) {
	nested := newObject()
	raw, found := obj.values[key]
	if !found {
		return nested, nil
	}
	if err := json.Unmarshal(raw, nested); err != nil {
		return nil, fmt.Errorf("%q is not an object: %s", key, err)
	}
	return nested, nil
}

// sortKeys sorts object keys alphabetically.
func (obj *object) sortKeys() {
	sort.Strings(obj.keys)
}

// marshal encodes value without escaping HTML characters.
func marshal(value any) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(value); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
