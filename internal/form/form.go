package form

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/bhushankhairnar-QA/giftshop/internal/domain"
)

// Widget is the input control inferred for a field.
type Widget string

const (
	WidgetText     Widget = "text"
	WidgetEmail    Widget = "email"
	WidgetPhone    Widget = "phone"
	WidgetTextarea Widget = "textarea"
	WidgetSelect   Widget = "select"
)

// Field describes one renderable input: computed once per content record
// and immutable afterwards.
type Field struct {
	Key         string   `json:"key"`
	Label       string   `json:"label"`
	Widget      Widget   `json:"widget"`
	Options     []string `json:"options,omitempty"`
	Placeholder string   `json:"placeholder,omitempty"`
	Required    bool     `json:"required"`
}

// fieldPriority is the human-friendly ordering for common field names.
// Fields present in the record appear in this order first; anything else
// follows after.
var fieldPriority = []string{
	"first_name", "last_name", "full_name", "name",
	"email", "phone", "mobile", "contact_number",
	"address", "street_address", "city", "state", "country", "zip_code", "postal_code",
	"company", "organization",
	"payment_method", "payment_type",
	"notes", "comments", "message",
	"date_of_birth", "birth_date",
	"gender", "age",
}

// systemFields are CMS-internal names that must never render as inputs.
var systemFields = map[string]bool{
	"uid": true, "created_at": true, "updated_at": true,
	"created_by": true, "updated_by": true, "_version": true,
	"ACL": true, "locale": true, "locales": true, "publish_details": true,
	"in_progress": true, "tags": true, "title": true,
	"in_progress_status": true, "status": true,
	"workflow": true, "workflow_status": true,
	"place_order": true, "order_date": true, "date": true,
	"placeordermessage": true,
}

// systemSubstrings catch workflow and audit fields the exact list misses.
var systemSubstrings = []string{
	"progress", "workflow", "order_date", "created_at", "updated_at", "date",
}

// optionSuffixes are the companion keys a record may carry for a
// dropdown field's option list.
var optionSuffixes = []string{"_options", "_values", "_choices", "_options_list"}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Engine tracks one form visit: the derived field descriptors, the
// current values, and the validation errors. It is built fresh per
// visit and discarded afterwards, never persisted.
type Engine struct {
	fields []Field
	order  []string
	values map[string]string
	errors map[string]string
}

// New derives the ordered, de-duplicated field set from a schema-less
// content record. Priority names come first, remaining record keys
// follow (alphabetically, for a stable order across fetches), and
// system fields are never included.
func New(record domain.Record) *Engine {
	e := &Engine{
		values: make(map[string]string),
		errors: make(map[string]string),
	}

	seen := make(map[string]bool)
	appendField := func(key string) {
		if seen[key] || isSystemField(key) || isOptionCompanion(key) {
			return
		}
		seen[key] = true
		e.order = append(e.order, key)
		e.fields = append(e.fields, describeField(key, record))
		e.values[key] = record.String(key)
	}

	for _, key := range fieldPriority {
		if record.Has(key) {
			appendField(key)
		}
	}

	rest := make([]string, 0, len(record))
	for key := range record {
		if !seen[key] {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	for _, key := range rest {
		appendField(key)
	}

	return e
}

// Fields returns the immutable field descriptors in render order.
func (e *Engine) Fields() []Field {
	out := make([]Field, len(e.fields))
	copy(out, e.fields)
	return out
}

// FieldOrder returns the ordered field keys.
func (e *Engine) FieldOrder() []string {
	out := make([]string, len(e.order))
	copy(out, e.order)
	return out
}

// SetValue records a field edit and clears only that field's error, so
// feedback is immediate without waiting for the next submit.
func (e *Engine) SetValue(key, value string) {
	e.values[key] = value
	delete(e.errors, key)
}

// SetValues applies a batch of edits.
func (e *Engine) SetValues(values map[string]string) {
	for key, value := range values {
		e.SetValue(key, value)
	}
}

// Value returns the current value for the key.
func (e *Engine) Value(key string) string {
	return e.values[key]
}

// Values returns a copy of all current values.
func (e *Engine) Values() map[string]string {
	out := make(map[string]string, len(e.values))
	for k, v := range e.values {
		out[k] = v
	}
	return out
}

// Validate recomputes the whole error map: every field is required, and
// fields whose key mentions email must look like local@domain.tld.
// Stale errors for now-valid fields are dropped by the wholesale rebuild.
func (e *Engine) Validate() bool {
	errs := make(map[string]string)
	for key, value := range e.values {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			errs[key] = labelFor(key) + " is required"
			continue
		}
		if strings.Contains(strings.ToLower(key), "email") && !emailPattern.MatchString(trimmed) {
			errs[key] = "Email is invalid"
		}
	}
	e.errors = errs
	return len(errs) == 0
}

// Errors returns a copy of the per-field validation messages.
func (e *Engine) Errors() map[string]string {
	out := make(map[string]string, len(e.errors))
	for k, v := range e.errors {
		out[k] = v
	}
	return out
}

func isSystemField(key string) bool {
	if systemFields[key] {
		return true
	}
	lower := strings.ToLower(key)
	for _, sub := range systemSubstrings {
		if strings.Contains(lower, sub) {
			return true
		}
	}
	return false
}

// isOptionCompanion hides the "<field>_options" style entries that only
// exist to feed dropdowns.
func isOptionCompanion(key string) bool {
	for _, suffix := range optionSuffixes {
		if strings.HasSuffix(key, suffix) {
			return true
		}
	}
	return strings.HasSuffix(key, "_placeholder")
}

// describeField classifies a key into a widget by substring heuristics.
// Ambiguous or unmatched names default to plain single-line text.
func describeField(key string, record domain.Record) Field {
	f := Field{
		Key:         key,
		Label:       labelFor(key),
		Widget:      WidgetText,
		Placeholder: record.String(key + "_placeholder"),
		Required:    true,
	}

	lower := strings.ToLower(key)
	contains := func(subs ...string) bool {
		for _, sub := range subs {
			if strings.Contains(lower, sub) {
				return true
			}
		}
		return false
	}

	if contains("payment_method", "payment_type", "country", "state", "gender") {
		if options := dropdownOptions(key, record); options != nil {
			f.Widget = WidgetSelect
			f.Options = options
			return f
		}
	}
	if contains("notes", "comments", "message", "description") {
		f.Widget = WidgetTextarea
		return f
	}

	switch {
	case contains("email"):
		f.Widget = WidgetEmail
	case contains("phone", "mobile", "contact"):
		f.Widget = WidgetPhone
	}
	return f
}

func dropdownOptions(key string, record domain.Record) []string {
	for _, suffix := range optionSuffixes {
		if options := record.Strings(key + suffix); len(options) > 0 {
			return options
		}
	}
	return nil
}

// labelFor turns snake_case keys into display labels ("full_name" ->
// "Full Name").
func labelFor(key string) string {
	words := strings.Split(key, "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
