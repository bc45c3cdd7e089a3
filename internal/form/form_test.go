package form

import (
	"testing"

	"github.com/bhushankhairnar-QA/giftshop/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_OrderingAndDenylist(t *testing.T) {
	record := domain.Record{
		"uid":          "x",
		"created_at":   "2026-01-01",
		"email":        "",
		"full_name":    "",
		"random_field": "",
	}

	eng := New(record)
	assert.Equal(t, []string{"full_name", "email", "random_field"}, eng.FieldOrder())
}

func TestNew_PriorityOrderBeforeLeftovers(t *testing.T) {
	record := domain.Record{
		"zzz_custom": "",
		"city":       "",
		"email":      "",
		"first_name": "",
		"aaa_custom": "",
	}

	eng := New(record)
	assert.Equal(t, []string{"first_name", "email", "city", "aaa_custom", "zzz_custom"}, eng.FieldOrder())
}

func TestNew_SystemSubstringsExcluded(t *testing.T) {
	record := domain.Record{
		"workflow_stage":  "draft",
		"sync_progress":   "50",
		"order_date_real": "x",
		"delivery_date":   "x",
		"email":           "",
	}

	eng := New(record)
	assert.Equal(t, []string{"email"}, eng.FieldOrder())
}

func TestNew_OptionCompanionsHidden(t *testing.T) {
	record := domain.Record{
		"country":           "",
		"country_options":   []any{"India", "USA"},
		"email_placeholder": "you@example.com",
		"email":             "",
	}

	eng := New(record)
	assert.Equal(t, []string{"email", "country"}, eng.FieldOrder())
}

func TestWidgetClassification(t *testing.T) {
	record := domain.Record{
		"email":                  "",
		"phone":                  "",
		"mobile":                 "",
		"contact_number":         "",
		"notes":                  "",
		"message":                "",
		"address":                "",
		"payment_method":         "",
		"payment_method_options": []any{"card", "cod"},
		"gender":                 "", // no companion options -> plain text
		"nickname":               "",
	}

	eng := New(record)
	widgets := make(map[string]Widget)
	options := make(map[string][]string)
	for _, f := range eng.Fields() {
		widgets[f.Key] = f.Widget
		options[f.Key] = f.Options
	}

	assert.Equal(t, WidgetEmail, widgets["email"])
	assert.Equal(t, WidgetPhone, widgets["phone"])
	assert.Equal(t, WidgetPhone, widgets["mobile"])
	assert.Equal(t, WidgetPhone, widgets["contact_number"])
	assert.Equal(t, WidgetTextarea, widgets["notes"])
	assert.Equal(t, WidgetTextarea, widgets["message"])
	assert.Equal(t, WidgetText, widgets["address"])
	assert.Equal(t, WidgetSelect, widgets["payment_method"])
	assert.Equal(t, []string{"card", "cod"}, options["payment_method"])
	assert.Equal(t, WidgetText, widgets["gender"])
	assert.Equal(t, WidgetText, widgets["nickname"])
}

func TestField_LabelsAndPlaceholders(t *testing.T) {
	record := domain.Record{
		"full_name":             "",
		"full_name_placeholder": "Jane Doe",
	}

	eng := New(record)
	fields := eng.Fields()
	require.Len(t, fields, 1)
	assert.Equal(t, "Full Name", fields[0].Label)
	assert.Equal(t, "Jane Doe", fields[0].Placeholder)
	assert.True(t, fields[0].Required)
}

func TestValidate_RequiredFields(t *testing.T) {
	eng := New(domain.Record{"full_name": "", "email": ""})

	assert.False(t, eng.Validate())
	errs := eng.Errors()
	assert.Equal(t, "Full Name is required", errs["full_name"])
	assert.Equal(t, "Email is required", errs["email"])

	eng.SetValue("full_name", "Jane")
	eng.SetValue("email", "jane@example.com")
	assert.True(t, eng.Validate())
	assert.Empty(t, eng.Errors())
}

func TestValidate_EmailShape(t *testing.T) {
	eng := New(domain.Record{"email": ""})

	eng.SetValue("email", "not-an-email")
	assert.False(t, eng.Validate())
	assert.Equal(t, "Email is invalid", eng.Errors()["email"])

	eng.SetValue("email", "jane@example.com")
	assert.True(t, eng.Validate())
}

func TestValidate_WhitespaceOnlyIsEmpty(t *testing.T) {
	eng := New(domain.Record{"full_name": ""})
	eng.SetValue("full_name", "   ")
	assert.False(t, eng.Validate())
}

func TestSetValue_ClearsOnlyThatError(t *testing.T) {
	eng := New(domain.Record{"full_name": "", "email": ""})
	require.False(t, eng.Validate())

	eng.SetValue("full_name", "Jane")
	errs := eng.Errors()
	assert.NotContains(t, errs, "full_name")
	assert.Contains(t, errs, "email")
}

func TestValidate_RecomputesWholesale(t *testing.T) {
	eng := New(domain.Record{"full_name": "", "email": ""})
	require.False(t, eng.Validate())

	eng.SetValue("full_name", "Jane")
	eng.SetValue("email", "jane@example.com")
	// a later edit re-empties one field; the old error set must not leak
	eng.SetValue("full_name", "")

	assert.False(t, eng.Validate())
	errs := eng.Errors()
	assert.Contains(t, errs, "full_name")
	assert.NotContains(t, errs, "email")
}

func TestValues_DefaultsFromRecord(t *testing.T) {
	eng := New(domain.Record{"city": "Mumbai"})
	assert.Equal(t, "Mumbai", eng.Value("city"))
}
