package validation

import (
	"encoding/json"
	"errors"
	"testing"

	"MotivationGenerator/internal/models"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	single = models.NewVariants("data")[models.VariantSingle]
	daily  = models.NewVariants("data")[models.VariantDaily]
)

func baseRecord() map[string]any {
	return map[string]any{
		"name":              "Ana",
		"age":               json.Number("29"),
		"pregnancy_status":  "pregnant",
		"pregnancy_week":    json.Number("20"),
		"current_situation": "working from home",
		"challenges":        "tired in the evenings",
		"goals":             "stay calm and rested",
	}
}

func fieldsOf(t *testing.T, err error) map[string][]string {
	t.Helper()
	var ve *ValidationError
	require.True(t, errors.As(err, &ve), "expected *ValidationError, got %T: %v", err, err)
	return ve.Messages()
}

func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }

func TestValidate_ValidPregnantProfile(t *testing.T) {
	rec := baseRecord()
	rec["child_name"] = "Leo"
	rec["emotional_state"] = "hopeful"

	got, err := New().Validate(rec, single)
	require.NoError(t, err)

	want := models.UserProfile{
		Name:             "Ana",
		ChildName:        strPtr("Leo"),
		Age:              29,
		PregnancyStatus:  models.StatusPregnant,
		PregnancyWeek:    intPtr(20),
		CurrentSituation: "working from home",
		Challenges:       "tired in the evenings",
		Goals:            "stay calm and rested",
		EmotionalState:   strPtr("hopeful"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("profile mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate_ConditionalRequirements(t *testing.T) {
	tests := []struct {
		name      string
		status    string
		week      any
		childAge  any
		wantField string
	}{
		{name: "pregnant without week", status: "pregnant", wantField: "pregnancy_week"},
		{name: "pregnant with week", status: "pregnant", week: json.Number("12")},
		{name: "postpartum without child age", status: "postpartum", wantField: "child_age"},
		{name: "postpartum with child age zero", status: "postpartum", childAge: json.Number("0")},
		{name: "not pregnant needs neither", status: "not_pregnant"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := baseRecord()
			rec["pregnancy_status"] = tt.status
			delete(rec, "pregnancy_week")
			if tt.week != nil {
				rec["pregnancy_week"] = tt.week
			}
			if tt.childAge != nil {
				rec["child_age"] = tt.childAge
			}

			_, err := New().Validate(rec, single)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			fields := fieldsOf(t, err)
			assert.Len(t, fields, 1)
			assert.Contains(t, fields, tt.wantField)
		})
	}
}

func TestValidate_FieldRules(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(map[string]any)
		field   string
		message string
	}{
		{"blank name", func(r map[string]any) { r["name"] = "   " }, "name", "this field cannot be empty or whitespace"},
		{"missing goals", func(r map[string]any) { delete(r, "goals") }, "goals", "field required"},
		{"negative age", func(r map[string]any) { r["age"] = json.Number("-1") }, "age", "must be greater than or equal to 0"},
		{"fractional age", func(r map[string]any) { r["age"] = json.Number("29.5") }, "age", "must be an integer"},
		{"string age", func(r map[string]any) { r["age"] = "29" }, "age", "must be an integer"},
		{"unknown status", func(r map[string]any) { r["pregnancy_status"] = "unknown" }, "pregnancy_status", "must be one of: pregnant, postpartum, not_pregnant"},
		{"week above range", func(r map[string]any) { r["pregnancy_week"] = json.Number("43") }, "pregnancy_week", "must be less than or equal to 42"},
		{"week below range", func(r map[string]any) { r["pregnancy_week"] = json.Number("-2") }, "pregnancy_week", "must be greater than or equal to 0"},
		{"child name wrong type", func(r map[string]any) { r["child_name"] = json.Number("3") }, "child_name", "must be a string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := baseRecord()
			tt.mutate(rec)

			_, err := New().Validate(rec, single)
			fields := fieldsOf(t, err)
			assert.Equal(t, map[string][]string{tt.field: {tt.message}}, fields)
		})
	}
}

func TestValidate_IntegralFloatAccepted(t *testing.T) {
	rec := baseRecord()
	rec["age"] = 29.0

	got, err := New().Validate(rec, single)
	require.NoError(t, err)
	assert.Equal(t, 29, got.Age)
}

func TestValidate_AggregatesAllFailures(t *testing.T) {
	rec := map[string]any{
		"name":             "",
		"age":              json.Number("-3"),
		"pregnancy_status": "pregnant",
	}

	_, err := New().Validate(rec, single)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)

	var names []string
	for _, f := range ve.Fields {
		names = append(names, f.Field)
	}
	assert.Equal(t, []string{"name", "age", "pregnancy_week", "current_situation", "challenges", "goals"}, names)
	assert.Contains(t, ve.Error(), "6 validation error(s)")
}

func TestValidate_DailyVariantDropsEmotionalState(t *testing.T) {
	rec := baseRecord()
	rec["emotional_state"] = json.Number("7")

	got, err := New().Validate(rec, daily)
	require.NoError(t, err, "daily shape does not carry emotional_state at all")
	assert.Nil(t, got.EmotionalState)

	_, err = New().Validate(rec, single)
	fields := fieldsOf(t, err)
	assert.Contains(t, fields, "emotional_state")
}

func TestParseUpload(t *testing.T) {
	v := New()

	_, err := v.ParseUpload([]byte(`{"user_info": `), single)
	assert.ErrorIs(t, err, ErrMalformedJSON)

	_, err = v.ParseUpload([]byte(`[1, 2]`), single)
	assert.ErrorIs(t, err, ErrMalformedJSON)

	_, err = v.ParseUpload([]byte(`{"profile": {}}`), single)
	assert.Equal(t, map[string][]string{"user_info": {"field required"}}, fieldsOf(t, err))

	_, err = v.ParseUpload([]byte(`{"user_info": "Ana"}`), single)
	assert.Equal(t, map[string][]string{"user_info": {"must be an object"}}, fieldsOf(t, err))

	body := `{"user_info":{"name":"Ana","age":29,"pregnancy_status":"pregnant","pregnancy_week":20,` +
		`"current_situation":"...","challenges":"...","goals":"...","hobby":"ignored"}}`
	got, err := v.ParseUpload([]byte(body), single)
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Name)
	require.NotNil(t, got.PregnancyWeek)
	assert.Equal(t, 20, *got.PregnancyWeek)
}
