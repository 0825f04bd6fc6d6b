package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"MotivationGenerator/internal/models"

	"github.com/go-playground/validator/v10"
)

var fieldOrder = []string{
	models.UserInfoKey,
	"name",
	"child_name",
	"age",
	"pregnancy_status",
	"pregnancy_week",
	"child_age",
	"current_situation",
	"challenges",
	"goals",
	"emotional_state",
	"extra_notes",
}

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("notblank", notBlank); err != nil {
		panic(err)
	}
	v.RegisterStructValidation(conditionalFields, models.UserProfile{})
	return &Validator{validate: v}
}

// DecodeDocument parses a JSON document that must be an object.
func DecodeDocument(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after top-level value", ErrMalformedJSON)
	}
	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: top-level value must be an object", ErrMalformedJSON)
	}
	return obj, nil
}

// Envelope extracts the nested profile record from an upload document.
func Envelope(doc map[string]any) (map[string]any, error) {
	raw, ok := doc[models.UserInfoKey]
	if !ok || raw == nil {
		ve := &ValidationError{}
		ve.add(models.UserInfoKey, "field required")
		return nil, ve
	}
	info, ok := raw.(map[string]any)
	if !ok {
		ve := &ValidationError{}
		ve.add(models.UserInfoKey, "must be an object")
		return nil, ve
	}
	return info, nil
}

// ParseUpload decodes, unwraps and validates an uploaded document in one step.
func (v *Validator) ParseUpload(data []byte, variant models.Variant) (models.UserProfile, error) {
	doc, err := DecodeDocument(data)
	if err != nil {
		return models.UserProfile{}, err
	}
	info, err := Envelope(doc)
	if err != nil {
		return models.UserProfile{}, err
	}
	return v.Validate(info, variant)
}

// Validate turns an untyped record into a UserProfile for the given variant.
// Every violation is reported in one *ValidationError.
func (v *Validator) Validate(raw map[string]any, variant models.Variant) (models.UserProfile, error) {
	d := &decoder{raw: raw, errs: &ValidationError{}}

	profile := models.UserProfile{
		Name:             d.requiredString("name"),
		ChildName:        d.optionalString("child_name"),
		Age:              d.requiredInt("age"),
		PregnancyStatus:  models.PregnancyStatus(d.requiredString("pregnancy_status")),
		PregnancyWeek:    d.optionalInt("pregnancy_week"),
		ChildAge:         d.optionalInt("child_age"),
		CurrentSituation: d.requiredString("current_situation"),
		Challenges:       d.requiredString("challenges"),
		Goals:            d.requiredString("goals"),
		ExtraNotes:       d.optionalString("extra_notes"),
	}
	if variant.AcceptsEmotionalState {
		profile.EmotionalState = d.optionalString("emotional_state")
	}

	if err := v.validate.Struct(profile); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return models.UserProfile{}, err
		}
		for _, fe := range fieldErrs {
			// decoding already explained this field
			if d.errs.has(fe.Field()) {
				continue
			}
			d.errs.add(fe.Field(), describe(fe))
		}
	}

	if !d.errs.empty() {
		d.errs.sortBy(fieldOrder)
		return models.UserProfile{}, d.errs
	}
	return profile, nil
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func conditionalFields(sl validator.StructLevel) {
	p, ok := sl.Current().Interface().(models.UserProfile)
	if !ok {
		return
	}
	if p.PregnancyStatus == models.StatusPregnant && p.PregnancyWeek == nil {
		sl.ReportError(p.PregnancyWeek, "pregnancy_week", "PregnancyWeek", "required_if_pregnant", "")
	}
	if p.PregnancyStatus == models.StatusPostpartum && p.ChildAge == nil {
		sl.ReportError(p.ChildAge, "child_age", "ChildAge", "required_if_postpartum", "")
	}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "notblank":
		return "this field cannot be empty or whitespace"
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "required_if_pregnant":
		return "pregnancy_week is required when pregnancy_status is 'pregnant'"
	case "required_if_postpartum":
		return "child_age is required when pregnancy_status is 'postpartum'"
	default:
		return "failed on the '" + fe.Tag() + "' rule"
	}
}

// decoder reads typed values out of an untyped record, recording type errors
// per field instead of stopping at the first one.
type decoder struct {
	raw  map[string]any
	errs *ValidationError
}

func (d *decoder) lookup(key string) (any, bool) {
	v, ok := d.raw[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

func (d *decoder) requiredString(key string) string {
	v, ok := d.lookup(key)
	if !ok {
		d.errs.add(key, "field required")
		return ""
	}
	s, ok := v.(string)
	if !ok {
		d.errs.add(key, "must be a string")
		return ""
	}
	return s
}

func (d *decoder) optionalString(key string) *string {
	v, ok := d.lookup(key)
	if !ok {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		d.errs.add(key, "must be a string")
		return nil
	}
	return &s
}

func (d *decoder) requiredInt(key string) int {
	v, ok := d.lookup(key)
	if !ok {
		d.errs.add(key, "field required")
		return 0
	}
	n, ok := toInt(v)
	if !ok {
		d.errs.add(key, "must be an integer")
		return 0
	}
	return n
}

func (d *decoder) optionalInt(key string) *int {
	v, ok := d.lookup(key)
	if !ok {
		return nil
	}
	n, ok := toInt(v)
	if !ok {
		d.errs.add(key, "must be an integer")
		return nil
	}
	return &n
}

// toInt accepts integral JSON numbers only, so 29 and 29.0 pass but 29.5 and
// "29" do not.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), true
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return floatToInt(f)
	case float64:
		return floatToInt(n)
	default:
		return 0, false
	}
}

func floatToInt(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int(f), true
}
