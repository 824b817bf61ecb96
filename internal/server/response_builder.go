// internal/server/response_builder.go
package server

import (
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ResponseBuilder provides utilities for constructing consistent API responses.
type ResponseBuilder struct{}

// newResponseBuilder creates a new response builder instance.
func newResponseBuilder() *ResponseBuilder { return &ResponseBuilder{} }

// InvalidSlotResponse holds a single rejected slot's details.
type InvalidSlotResponse struct {
	Row              int
	Number           string
	ValidationErrors map[string]string
}

// ErrorResponse standardizes error responses.
type ErrorResponse struct {
	Success bool
	Error   string
	Message string
	Details any
}

// ValidationFailedResponse is returned when any slot of a request is rejected.
type ValidationFailedResponse struct {
	Success      bool
	Message      string
	Error        string
	InvalidSlots ValidationFailedResponseDetails
}

// ValidationFailedResponseDetails contains the rejected slots summary and details.
type ValidationFailedResponseDetails struct {
	Count   int
	Details []InvalidSlotResponse
}

// BuildErrorResponse constructs a standardized error response, converting keys to camelCase.
func (rb *ResponseBuilder) BuildErrorResponse(errorCode, errorMessage string, details any) any {
	response := ErrorResponse{
		Success: false,
		Error:   errorCode,
		Message: errorMessage,
		Details: details,
	}
	return toCamelCaseMap(response)
}

// BuildValidationFailedResponse constructs a response for rejected slots, converting keys to camelCase.
func (rb *ResponseBuilder) BuildValidationFailedResponse(rowErrors []RowError) any {
	response := ValidationFailedResponse{
		Success: false,
		Message: MessageValidationFailed,
		Error:   ErrorCodeValidationFailed,
		InvalidSlots: ValidationFailedResponseDetails{
			Count:   len(rowErrors),
			Details: rb.ConvertRowErrorsToResponse(rowErrors),
		},
	}
	return toCamelCaseMap(response)
}

// ConvertRowErrorsToResponse transforms row errors to response format.
func (rb *ResponseBuilder) ConvertRowErrorsToResponse(rowErrors []RowError) []InvalidSlotResponse {
	response := make([]InvalidSlotResponse, 0, len(rowErrors))
	for _, re := range rowErrors {
		response = append(response, InvalidSlotResponse{
			Row:              re.Row,
			Number:           re.Number,
			ValidationErrors: re.Errors,
		})
	}
	return response
}

func toCamelCaseMap(data any) any {
	val := reflect.ValueOf(data)

	// Handle Pointers
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return nil
		}
		val = val.Elem()
	}

	// Handle Slices/Arrays
	if val.Kind() == reflect.Slice || val.Kind() == reflect.Array {
		out := make([]any, val.Len())
		for i := 0; i < val.Len(); i++ {
			out[i] = toCamelCaseMap(val.Index(i).Interface())
		}
		return out
	}

	// Handle Structs
	if val.Kind() == reflect.Struct {
		out := make(map[string]any)
		typ := val.Type()
		for i := 0; i < val.NumField(); i++ {
			field := typ.Field(i)
			// Skip unexported fields
			if field.PkgPath != "" {
				continue
			}

			// Recursively convert the field value
			fieldVal := toCamelCaseMap(val.Field(i).Interface())

			// Determine the new key name
			key := field.Name

			// Handle common acronyms manually for cleaner API design
			if key == "ID" || strings.HasSuffix(key, "ID") {
				// e.g., "ID" -> "id", "SlotID" -> "slotId"
				if key == "ID" {
					key = "id"
				} else {
					prefix := key[:len(key)-2]
					key = lowerFirst(prefix) + "Id"
				}
			} else if key == "URL" || strings.HasSuffix(key, "URL") {
				if key == "URL" {
					key = "url"
				} else {
					prefix := key[:len(key)-3]
					key = lowerFirst(prefix) + "Url"
				}
			} else {
				// Default camelCase conversion (lower first letter)
				key = lowerFirst(key)
			}

			out[key] = fieldVal
		}
		return out
	}

	// Return primitives as-is
	return data
}

// lowerFirst lowers the first rune of a string
func lowerFirst(s string) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}
