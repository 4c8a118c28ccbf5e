package binder

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

func bytesReader(b []byte) io.Reader {
	return bytes.NewReader(b)
}

// Query binds URL query parameters using `query` tags.
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		values := r.URL.Query()
		return bindFields(v, "query", ErrInvalidQuery, func(name string) (string, bool) {
			if !values.Has(name) {
				return "", false
			}
			return values.Get(name), true
		})
	}
}

// Path binds router path parameters using `path` tags. extractor is the
// router's lookup, chi.URLParam for chi.
func Path(extractor func(r *http.Request, name string) string) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if extractor == nil {
			return fmt.Errorf("%w: extractor is nil", ErrInvalidPath)
		}
		return bindFields(v, "path", ErrInvalidPath, func(name string) (string, bool) {
			raw := extractor(r, name)
			if raw == "" {
				return "", false
			}
			if unescaped, err := url.PathUnescape(raw); err == nil {
				raw = unescaped
			}
			return raw, true
		})
	}
}

func bindFields(v any, tag string, errKind error, lookup func(string) (string, bool)) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return ErrInvalidTarget
	}
	rv = rv.Elem()
	rt := rv.Type()

	for i := range rt.NumField() {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		name, ok := tagName(sf, tag)
		if !ok {
			continue
		}
		raw, ok := lookup(name)
		if !ok {
			continue
		}
		if err := setValue(rv.Field(i), raw); err != nil {
			return fmt.Errorf("%w: %s: %v", errKind, name, err)
		}
	}
	return nil
}

func tagName(sf reflect.StructField, tag string) (string, bool) {
	value, ok := sf.Tag.Lookup(tag)
	if !ok {
		return "", false
	}
	name, _, _ := strings.Cut(value, ",")
	switch name {
	case "-":
		return "", false
	case "":
		return strings.ToLower(sf.Name), true
	}
	return name, true
}

func setValue(field reflect.Value, raw string) error {
	if field.Kind() == reflect.Pointer {
		ptr := reflect.New(field.Type().Elem())
		if err := setValue(ptr.Elem(), raw); err != nil {
			return err
		}
		field.Set(ptr)
		return nil
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		field.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, field.Type().Bits())
		if err != nil {
			return err
		}
		field.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(raw, 10, field.Type().Bits())
		if err != nil {
			return err
		}
		field.SetUint(n)
	default:
		return fmt.Errorf("unsupported kind %s", field.Kind())
	}
	return nil
}
