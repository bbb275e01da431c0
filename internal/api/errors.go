package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a failed action. Every failure is terminal for that
// action; there is no retry policy anywhere in the client.
type Kind int

const (
	// KindValidation is raised before any network call.
	KindValidation Kind = iota
	// KindAuth covers 401s and missing-session conditions; callers
	// resolve it by tearing the session down.
	KindAuth
	// KindTransport covers network failures and non-JSON responses.
	KindTransport
	// KindBusiness is a well-formed response with success=false; its
	// message is shown verbatim.
	KindBusiness
)

type Error struct {
	Kind    Kind
	Status  int
	Message string
	Fields  map[string][]string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if len(e.Fields) > 0 {
		return e.FlatFields()
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("request failed (status %d)", e.Status)
}

func (e *Error) Unwrap() error { return e.Err }

// FlatFields joins all field-level errors into one toast-sized line.
func (e *Error) FlatFields() string {
	var msgs []string
	for _, list := range e.Fields {
		msgs = append(msgs, list...)
	}
	return strings.Join(msgs, ", ")
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func kindOf(err error, want Kind) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == want
}

func IsValidation(err error) bool { return kindOf(err, KindValidation) }
func IsAuth(err error) bool       { return kindOf(err, KindAuth) }
func IsTransport(err error) bool  { return kindOf(err, KindTransport) }
func IsBusiness(err error) bool   { return kindOf(err, KindBusiness) }

// decodeFields tolerates both DRF shapes: value as a list of strings
// or as a single string.
func decodeFields(raw map[string]json.RawMessage) map[string][]string {
	if len(raw) == 0 {
		return nil
	}
	fields := make(map[string][]string, len(raw))
	for key, val := range raw {
		var list []string
		if err := json.Unmarshal(val, &list); err == nil {
			fields[key] = list
			continue
		}
		var single string
		if err := json.Unmarshal(val, &single); err == nil {
			fields[key] = []string{single}
		}
	}
	return fields
}
