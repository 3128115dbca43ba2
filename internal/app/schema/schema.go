// Package schema defines the typed draft structures edited by the dashboard
// forms and the pure validation functions that turn a draft into a normalized
// record. Validation is never fail-fast: every violated field is reported in a
// single pass, keyed by its wire field name.
package schema

import (
	"errors"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DateLayout is the canonical serialization of calendar dates.
const DateLayout = "2006-01-02"

// FieldErrors maps a field path (e.g. "name", "qualifications.0.degree") to a
// human-readable message.
type FieldErrors map[string]string

// Error implements the error interface.
func (e FieldErrors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	msg := "validation failed"
	for _, k := range keys {
		msg += "; " + k + ": " + e[k]
	}
	return msg
}

// Fields flattens a validation error into FieldErrors. Nested errors (slice
// elements, embedded structs) are joined with dots, so a broken degree on the
// first qualification row surfaces as "qualifications.0.degree".
func Fields(err error) FieldErrors {
	if err == nil {
		return nil
	}

	out := FieldErrors{}
	flattenInto(out, "", err)
	if len(out) == 0 {
		return nil
	}
	return out
}

func flattenInto(out FieldErrors, prefix string, err error) {
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		if prefix == "" {
			prefix = "_record"
		}
		out[prefix] = err.Error()
		return
	}

	for field, ferr := range verrs {
		path := field
		if prefix != "" {
			path = prefix + "." + field
		}
		flattenInto(out, path, ferr)
	}
}

// AsFieldErrors reports whether err is a validation failure and, if so,
// returns its flattened per-field messages.
func AsFieldErrors(err error) (FieldErrors, bool) {
	if err == nil {
		return nil, false
	}

	var fe FieldErrors
	if errors.As(err, &fe) {
		return fe, true
	}

	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return Fields(verrs), true
	}

	return nil, false
}
