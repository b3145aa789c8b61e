package validator

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"swapi/internal/pkg/apierr"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	// report json names so messages read "Specify rotation_period"
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Body is a request body decoded as a JSON object.
type Body struct {
	raw    []byte
	fields map[string]json.RawMessage
}

// ReadBody decodes the request body as a JSON object. An absent, empty,
// null or non-object body is a MissingBodyError carrying emptyMessage.
func ReadBody(c *gin.Context, emptyMessage string) (*Body, error) {
	if c.Request.Body == nil {
		return nil, apierr.MissingBody(emptyMessage)
	}
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, err
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, apierr.MissingBody(emptyMessage)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return nil, apierr.MissingBody(emptyMessage)
	}
	return &Body{raw: raw, fields: fields}, nil
}

// Has reports whether field is present in the body. A null value counts as absent.
func (b *Body) Has(field string) bool {
	raw, ok := b.fields[field]
	return ok && string(raw) != "null"
}

// Require checks fields in the given order and reports the first one missing.
func (b *Body) Require(fields ...string) error {
	for _, f := range fields {
		if !b.Has(f) {
			return apierr.MissingField(f)
		}
	}
	return nil
}

// Int64 returns field as an integer id.
func (b *Body) Int64(field string) (int64, error) {
	if !b.Has(field) {
		return 0, apierr.MissingField(field)
	}
	var id int64
	if err := json.Unmarshal(b.fields[field], &id); err != nil {
		return 0, apierr.InvalidValue(field)
	}
	return id, nil
}

// Decode unmarshals the body into v. Only keys that match a json tag of v
// exactly are decoded, so "NAME" never fills name. Type mismatches name the field.
func (b *Body) Decode(v any) error {
	raw, err := b.exact(v)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return apierr.InvalidValue(typeErr.Field)
		}
		return apierr.InvalidValue("request body")
	}
	return nil
}

// exact re-encodes the body keeping only the exact json tag names of the
// struct v points to. Non-struct targets get the body unchanged.
func (b *Body) exact(v any) ([]byte, error) {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return b.raw, nil
	}

	kept := make(map[string]json.RawMessage, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		name := strings.SplitN(t.Field(i).Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			continue
		}
		if raw, ok := b.fields[name]; ok {
			kept[name] = raw
		}
	}
	return json.Marshal(kept)
}

// Struct runs the validate tags of v and reports the first failing field,
// in declaration order, as missing.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		return apierr.MissingField(errs[0].Field())
	}
	return err
}

// Bind reads, decodes and validates a create request into v.
func Bind(c *gin.Context, emptyMessage string, v any) error {
	b, err := ReadBody(c, emptyMessage)
	if err != nil {
		return err
	}
	if err := b.Decode(v); err != nil {
		return err
	}
	return Struct(v)
}

// PathID parses the named path parameter as a row id.
func PathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		return 0, apierr.InvalidValue(name)
	}
	return id, nil
}
