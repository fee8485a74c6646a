package contactbot

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Extraction errors.
var (
	ErrMalformedPayload  = errors.New("payload is not valid JSON")
	ErrUnexpectedPayload = errors.New("payload is not a JSON object")
)

// Parameter keys the chatbot agent fills in.
const (
	nameParam    = "userName"
	emailParam   = "userEmail"
	phoneParam   = "userPhone"
	messageParam = "userMessage"
)

// Contact holds the details a user left with the chatbot.
// Fields the user never supplied are NotAvailable, never empty.
type Contact struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// FirstName returns the first word of the name, or "friend" when no name is known.
func (c Contact) FirstName() string {
	if c.Name == NotAvailable {
		return "friend"
	}
	fields := strings.Fields(c.Name)
	if len(fields) == 0 {
		return "friend"
	}
	return fields[0]
}

// Extract parses a fulfillment request body and pulls out the contact parameters.
func Extract(body []byte) (Contact, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber() // keep phone numbers in their literal form

	var root interface{}
	if err := dec.Decode(&root); err != nil {
		return Contact{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return Contact{}, fmt.Errorf("%w: trailing data after JSON value", ErrMalformedPayload)
	}

	request, ok := root.(map[string]interface{})
	if !ok {
		return Contact{}, fmt.Errorf("%w: got %T", ErrUnexpectedPayload, root)
	}

	params := object(object(request["queryResult"])["parameters"])

	name := params[nameParam]
	if nested, ok := name.(map[string]interface{}); ok {
		name = nested["name"]
	}

	return Contact{
		Name:    text(name),
		Email:   text(params[emailParam]),
		Phone:   text(params[phoneParam]),
		Message: text(params[messageParam]),
	}, nil
}

// object returns v as a JSON object, or an empty one.
func object(v interface{}) map[string]interface{} {
	if m, ok := v.(map[string]interface{}); ok {
		return m
	}
	return map[string]interface{}{}
}

// text renders a decoded JSON value as a string, NotAvailable when absent.
func text(v interface{}) string {
	switch v := v.(type) {
	case nil:
		return NotAvailable
	case string:
		return v
	case json.Number:
		return v.String()
	case map[string]interface{}, []interface{}:
		data, err := json.Marshal(v)
		if err != nil {
			return NotAvailable
		}
		return string(data)
	default:
		return fmt.Sprint(v)
	}
}
