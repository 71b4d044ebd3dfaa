// Package feeljson renders feelvalue.Value as JSON for logging and test
// assertions (spec.md §6), keyed construction via sjson.SetRaw so Context
// entries serialize in insertion order rather than sjson's own default
// (alphabetical, if it built the object from a map).
package feeljson

import (
	"strconv"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/cwbudde/go-dmn-feel/internal/feelvalue"
)

// Jsonify renders value as a JSON document. Scalars map onto their natural
// JSON counterpart (Null as the JSON literal null); Date/Time/DateTime/
// Duration values render as JSON strings via their FEEL string form
// (reversible only with a schema, since bare JSON has no date/time type);
// ranges render as a {"start",
// "start_closed", "end", "end_closed"} object; functions render as a
// string naming the function (they aren't data).
func Jsonify(value feelvalue.Value) string {
	doc, err := jsonifyInto("", value)
	if err != nil {
		return "null"
	}
	return doc
}

func jsonifyInto(path string, value feelvalue.Value) (string, error) {
	switch v := value.(type) {
	case feelvalue.NullValue:
		return setRaw(path, "null")
	case feelvalue.BooleanValue:
		return setRaw(path, strconv.FormatBool(bool(v)))
	case feelvalue.NumberValue:
		return setRaw(path, v.N.String())
	case feelvalue.StringValue:
		return setRaw(path, strconv.Quote(string(v)))
	case feelvalue.ListValue:
		return jsonifyList(path, v)
	case *feelvalue.ContextValue:
		return jsonifyContext(path, v)
	case feelvalue.RangeValue:
		return jsonifyRange(path, v)
	default:
		// Date/Time/DateTime/Durations/Function: render via FEEL string form.
		return setRaw(path, strconv.Quote(value.String()))
	}
}

func jsonifyList(path string, v feelvalue.ListValue) (string, error) {
	doc, err := setRaw(path, "[]")
	if err != nil {
		return "", err
	}
	for i, item := range v.Items {
		itemPath := indexPath(path, i)
		itemJSON, err := jsonifyInto("", item)
		if err != nil {
			return "", err
		}
		doc, err = sjson.SetRaw(doc, itemPath, itemJSON)
		if err != nil {
			return "", err
		}
	}
	return doc, nil
}

func jsonifyContext(path string, v *feelvalue.ContextValue) (string, error) {
	doc, err := setRaw(path, "{}")
	if err != nil {
		return "", err
	}
	for _, entry := range v.Entries() {
		entryPath := fieldPath(path, entry.Name.String())
		entryJSON, err := jsonifyInto("", entry.Value)
		if err != nil {
			return "", err
		}
		doc, err = sjson.SetRaw(doc, entryPath, entryJSON)
		if err != nil {
			return "", err
		}
	}
	return doc, nil
}

func jsonifyRange(path string, v feelvalue.RangeValue) (string, error) {
	startJSON, err := jsonifyInto("", v.Start)
	if err != nil {
		return "", err
	}
	endJSON, err := jsonifyInto("", v.End)
	if err != nil {
		return "", err
	}
	doc, err := setRaw(path, "{}")
	if err != nil {
		return "", err
	}
	if doc, err = sjson.SetRaw(doc, fieldPath(path, "start"), startJSON); err != nil {
		return "", err
	}
	if doc, err = sjson.Set(doc, fieldPath(path, "start_closed"), v.StartClosed); err != nil {
		return "", err
	}
	if doc, err = sjson.SetRaw(doc, fieldPath(path, "end"), endJSON); err != nil {
		return "", err
	}
	return sjson.Set(doc, fieldPath(path, "end_closed"), v.EndClosed)
}

// setRaw writes a raw JSON fragment at path, treating an empty path (the
// document root) as "replace the whole document" rather than a field set.
func setRaw(path, raw string) (string, error) {
	if path == "" {
		return raw, nil
	}
	return sjson.SetRaw("{}", path, raw)
}

func indexPath(path string, i int) string {
	if path == "" {
		return strconv.Itoa(i)
	}
	return path + "." + strconv.Itoa(i)
}

func fieldPath(path, field string) string {
	if path == "" {
		return field
	}
	return path + "." + field
}

// Get queries a previously-rendered Jsonify document with a gjson path
// expression, returning the matched sub-document's raw text and whether
// anything matched. Used by golden-value tests to assert on a sub-field
// without re-deriving the whole expected document.
func Get(doc, path string) (string, bool) {
	result := gjson.Get(doc, path)
	if !result.Exists() {
		return "", false
	}
	return result.Raw, true
}
