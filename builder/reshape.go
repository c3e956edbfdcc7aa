package builder

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
)

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// coerceDates walks data with the selection's tags and replaces every date
// leaf by a time.Time, in place.
func coerceDates(s *Selection, data map[string]any) error {
	if data == nil {
		return nil
	}
	for _, e := range s.entries {
		raw, ok := data[e.name]
		if !ok || raw == nil {
			continue
		}
		switch e.value.Kind {
		case KindScalar, KindScalarList:
			if e.value.Scalar != ScalarDate {
				continue
			}
			v, err := coerceDateValue(raw)
			if err != nil {
				return fmt.Errorf("builder: field %q: %w", e.name, err)
			}
			data[e.name] = v
		case KindNested, KindNestedList:
			if e.value.Nested == nil {
				continue
			}
			nested := e.value.Nested.SelectionSet()
			member := ""
			if e.value.fragment {
				member = nested.typeName
			}
			if err := coerceNested(nested, raw, member); err != nil {
				return err
			}
		}
	}
	return nil
}

// coerceNested applies one nested selection to an object or to every element
// of a (possibly nested) list of objects. For fragments, member is the
// fragment's type and objects whose __typename differs are left alone.
func coerceNested(s *Selection, raw any, member string) error {
	switch v := raw.(type) {
	case map[string]any:
		if tn, ok := v[typenameField].(string); ok && member != "" && tn != member {
			return nil
		}
		return coerceDates(s, v)
	case []any:
		for _, item := range v {
			if err := coerceNested(s, item, member); err != nil {
				return err
			}
		}
	}
	return nil
}

func coerceDateValue(raw any) (any, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case time.Time:
		return v, nil
	case []any:
		for i, item := range v {
			c, err := coerceDateValue(item)
			if err != nil {
				return nil, err
			}
			v[i] = c
		}
		return v, nil
	case string:
		t, err := parseDate(v)
		if err != nil {
			return nil, err
		}
		return t, nil
	case float64:
		// epoch milliseconds
		return time.UnixMilli(int64(v)).UTC(), nil
	}
	return nil, fmt.Errorf("cannot convert %T to a date", raw)
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse %q as a date", s)
}

func decodeData(data map[string]any, out any) error {
	if data == nil {
		return nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:    "json",
		Result:     out,
		DecodeHook: mapstructure.StringToTimeHookFunc(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}
	return dec.Decode(data)
}
