package chart

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"

	"lukechampine.com/blake3"
)

// Key returns the chart's content fingerprint: the BLAKE3 hash of
// "chart\n" plus the chart's canonical JSON, as a hex string. Identical
// charts always produce identical keys, so downstream layers can use the
// key to memoize or identify reports.
func (c *Chart) Key() (string, error) {
	payload, err := canonicalJSON(c)
	if err != nil {
		return "", fmt.Errorf("encoding chart: %w", err)
	}

	data := append([]byte("chart\n"), payload...)
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// canonicalJSON converts a value to canonical JSON (stable key ordering).
func canonicalJSON(v interface{}) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	var obj interface{}
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, err
	}

	return canonicalMarshal(obj)
}

func canonicalMarshal(v interface{}) ([]byte, error) {
	switch val := v.(type) {
	case map[string]interface{}:
		return marshalSortedMap(val)
	case []interface{}:
		return marshalArray(val)
	default:
		return json.Marshal(v)
	}
}

func marshalSortedMap(m map[string]interface{}) ([]byte, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		keyBytes, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(keyBytes)
		buf.WriteByte(':')

		valBytes, err := canonicalMarshal(m[k])
		if err != nil {
			return nil, err
		}
		buf.Write(valBytes)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func marshalArray(arr []interface{}) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')

	for i, v := range arr {
		if i > 0 {
			buf.WriteByte(',')
		}
		valBytes, err := canonicalMarshal(v)
		if err != nil {
			return nil, err
		}
		buf.Write(valBytes)
	}

	buf.WriteByte(']')
	return buf.Bytes(), nil
}
