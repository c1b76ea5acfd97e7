package quoteit

import (
	"fmt"
	"strings"
)

// ValidationError represents a structured validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors collects multiple field errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (ve *ValidationErrors) Add(field, message string) {
	ve.Errors = append(ve.Errors, ValidationError{Field: field, Message: message})
}

func (ve *ValidationErrors) HasErrors() bool {
	return len(ve.Errors) > 0
}

func (ve *ValidationErrors) Error() string {
	msgs := make([]string, len(ve.Errors))
	for i, e := range ve.Errors {
		msgs[i] = e.Field + ": " + e.Message
	}
	return strings.Join(msgs, "; ")
}

// RequireField checks a required string field is non-empty.
func RequireField(ve *ValidationErrors, field, value string) {
	if Normalize(value) == "" {
		ve.Add(field, "is required")
	}
}

// ValidateEmailField checks a field looks like an email when present.
func ValidateEmailField(ve *ValidationErrors, field, value string) {
	if Normalize(value) == "" {
		return
	}
	if !IsEmail(value) {
		ve.Add(field, "must be a valid email address")
	}
}

// ValidateEnum checks a field is one of allowed values.
func ValidateEnum(ve *ValidationErrors, field, value string, allowed []string) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	ve.Add(field, fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")))
}

// ValidateNonNegativeNumber checks a field parses as a number >= 0 when
// present.
func ValidateNonNegativeNumber(ve *ValidationErrors, field, value string) {
	if Normalize(value) == "" {
		return
	}
	n, ok := ToNumber(value)
	if !ok {
		ve.Add(field, "must be a number")
		return
	}
	if n < 0 {
		ve.Add(field, "must not be negative")
	}
}

// ValidateRequest reports entry-point problems with a request record. Used at
// boundaries only; the gate predicates themselves never reject.
func ValidateRequest(r RequestRecord) *ValidationErrors {
	ve := &ValidationErrors{}
	RequireField(ve, "title", r.Title)
	RequireField(ve, "spec", r.Spec)
	RequireField(ve, "estimatedCost", r.EstimatedCost)
	ValidateNonNegativeNumber(ve, "estimatedCost", r.EstimatedCost)
	return ve
}

// ValidateQuickAddVendor gates the quick-add action: name, a valid email and
// a phone number are all required.
func ValidateQuickAddVendor(name, email, phone string) *ValidationErrors {
	ve := &ValidationErrors{}
	RequireField(ve, "name", name)
	RequireField(ve, "email", email)
	ValidateEmailField(ve, "email", email)
	RequireField(ve, "phone", phone)
	return ve
}

// ValidateVendor reports field problems on a full vendor record.
func ValidateVendor(v VendorRecord) *ValidationErrors {
	ve := &ValidationErrors{}
	ValidateEmailField(ve, "email", v.Email)
	if v.ContactMethod != "" {
		ValidateEnum(ve, "contactMethod", v.ContactMethod, ContactMethods)
	}
	return ve
}

// ValidateQuote reports field problems on a quote record.
func ValidateQuote(q QuoteRecord) *ValidationErrors {
	ve := &ValidationErrors{}
	RequireField(ve, "vendorId", q.VendorID)
	ValidateNonNegativeNumber(ve, "amount", q.Amount)
	ValidateEnum(ve, "paymentTerms", q.PaymentTerms, PaymentTermsValues)
	return ve
}
