package output

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// fieldKind decides how a summary value is displayed
type fieldKind int

const (
	kindText fieldKind = iota
	kindMoney
	kindPercent
	kindNumber
)

// Field is one scalar value of a result, keyed by its JSON name. Fields of
// nested result structs are prefixed with the parent name and a dot.
type Field struct {
	Key   string
	Value any
	kind  fieldKind
}

var decimalType = reflect.TypeOf(decimal.Decimal{})

// percentSuffixes mark decimal fields holding percentages
var percentSuffixes = []string{"rate", "return", "cagr", "yield", "ratio", "to_value", "percent"}

// plainNames mark decimal fields holding counts or prices per unit
var plainNames = []string{"units", "quantity", "nav", "years"}

// SummaryFields flattens the scalar fields of a result struct in declaration
// order. Embedded structs are inlined; slices and the error field are
// skipped.
func SummaryFields(result any) []Field {
	v := reflect.ValueOf(result)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}
	var fields []Field
	collectFields(v, "", &fields)
	return fields
}

func collectFields(v reflect.Value, prefix string, out *[]Field) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		fv := v.Field(i)
		if sf.Anonymous && fv.Kind() == reflect.Struct {
			collectFields(fv, prefix, out)
			continue
		}
		key := prefix + jsonName(sf)
		if key == prefix+"-" || sf.Name == "Error" {
			continue
		}
		switch {
		case sf.Type == decimalType:
			*out = append(*out, Field{Key: key, Value: fv.Interface(), kind: decimalKind(key)})
		case fv.Kind() == reflect.Struct:
			collectFields(fv, key+".", out)
		case fv.Kind() == reflect.String:
			if fv.String() != "" {
				*out = append(*out, Field{Key: key, Value: fv.String(), kind: kindText})
			}
		case fv.Kind() == reflect.Bool:
			*out = append(*out, Field{Key: key, Value: fv.Bool(), kind: kindText})
		case fv.CanInt():
			*out = append(*out, Field{Key: key, Value: fv.Int(), kind: kindNumber})
		}
	}
}

func decimalKind(key string) fieldKind {
	name := key[strings.LastIndex(key, ".")+1:]
	for _, s := range percentSuffixes {
		if strings.HasSuffix(name, s) {
			return kindPercent
		}
	}
	for _, s := range plainNames {
		if name == s || strings.HasSuffix(name, "_"+s) {
			return kindNumber
		}
	}
	return kindMoney
}

// Display renders the value for people: currency for money, a percent sign
// for rates.
func (f Field) Display() string {
	switch f.kind {
	case kindMoney:
		return FormatCurrency(f.Value.(decimal.Decimal))
	case kindPercent:
		return FormatPercentage(f.Value.(decimal.Decimal))
	}
	return f.Raw()
}

// Raw renders the value for machines
func (f Field) Raw() string {
	switch x := f.Value.(type) {
	case decimal.Decimal:
		return x.String()
	case int64:
		return strconv.FormatInt(x, 10)
	case bool:
		return boolToString(x)
	case string:
		return x
	}
	return ""
}

// Schedule returns the first non-empty slice of structs found in a result,
// searching embedded and nested structs depth first, as a header of JSON
// names and one row of raw values per entry.
func Schedule(result any) (header []string, rows [][]string) {
	v := reflect.ValueOf(result)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, nil
	}
	s, ok := findSchedule(v)
	if !ok {
		return nil, nil
	}
	elem := s.Type().Elem()
	for i := 0; i < elem.NumField(); i++ {
		header = append(header, jsonName(elem.Field(i)))
	}
	for i := 0; i < s.Len(); i++ {
		entry := s.Index(i)
		row := make([]string, 0, entry.NumField())
		for j := 0; j < entry.NumField(); j++ {
			row = append(row, rawValue(entry.Field(j)))
		}
		rows = append(rows, row)
	}
	return header, rows
}

func rawValue(v reflect.Value) string {
	if v.Type() == decimalType {
		return v.Interface().(decimal.Decimal).String()
	}
	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Bool:
		return boolToString(v.Bool())
	}
	if v.CanInt() {
		return strconv.FormatInt(v.Int(), 10)
	}
	return ""
}

func findSchedule(v reflect.Value) (reflect.Value, bool) {
	for i := 0; i < v.NumField(); i++ {
		fv := v.Field(i)
		if !v.Type().Field(i).IsExported() {
			continue
		}
		switch fv.Kind() {
		case reflect.Slice:
			if fv.Len() > 0 && fv.Type().Elem().Kind() == reflect.Struct {
				return fv, true
			}
		case reflect.Struct:
			if fv.Type() == decimalType {
				continue
			}
			if s, ok := findSchedule(fv); ok {
				return s, true
			}
		}
	}
	return reflect.Value{}, false
}

func jsonName(sf reflect.StructField) string {
	name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
	if name == "" {
		return sf.Name
	}
	return name
}

// Label turns a JSON key into a display label: "new_regime.total_tax"
// becomes "New Regime Total Tax".
func Label(key string) string {
	words := strings.FieldsFunc(key, func(r rune) bool { return r == '_' || r == '.' })
	for i, w := range words {
		switch w {
		case "emi", "cagr", "gst", "cgst", "sgst", "igst", "hra", "ctc", "nav", "pmi", "hoa", "epf", "ppf":
			words[i] = strings.ToUpper(w)
		default:
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

func boolToString(b bool) string { return strconv.FormatBool(b) }
