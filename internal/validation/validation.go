// Package validation shape-checks request bodies and query strings and
// reports problems as *errors.ValidationError with stable messages.
package validation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"unicode/utf8"

	apperrors "gogomedia/internal/errors"
	"gogomedia/internal/model"
)

// Query parameter names accepted by the media listing.
const (
	QueryConsumedState       = "consumed-state"
	QueryConsumedStateLegacy = "consumed"
	QueryMedium              = "medium"
)

const msgNotObject = "Request body must be a JSON object."

// MissingBodyParam is the message for an absent media body field.
func MissingBodyParam(field string) string {
	return fmt.Sprintf("Request body is missing the parameter '%s'.", field)
}

// MissingUserParam is the message for an absent credential field.
func MissingUserParam(field string) string {
	return fmt.Sprintf("Request body is missing the parameter '%s'", field)
}

func notString(field string) string {
	return fmt.Sprintf("The parameter '%s' must be a string.", field)
}

// TooLong is the message for a string field longer than max characters.
func TooLong(field string, max int) string {
	return fmt.Sprintf("The parameter '%s' must be at most %d characters.", field, max)
}

func notOneOf(field, vocabulary string) string {
	return fmt.Sprintf("The parameter '%s' must be one of %s.", field, vocabulary)
}

func queryNotOneOf(param, vocabulary string) string {
	return fmt.Sprintf("The query parameter '%s' must be one of %s.", param, vocabulary)
}

// object decodes body as a JSON object. An empty body is an empty object.
func object(body []byte) (map[string]json.RawMessage, error) {
	obj := map[string]json.RawMessage{}
	if len(bytes.TrimSpace(body)) == 0 {
		return obj, nil
	}
	if err := json.Unmarshal(body, &obj); err != nil || obj == nil {
		return nil, apperrors.NewValidationError("", msgNotObject)
	}
	return obj, nil
}

// optionalString returns ok=false when field is absent or null.
func optionalString(obj map[string]json.RawMessage, field string) (value string, ok bool, isString bool) {
	raw, present := obj[field]
	if !present || string(raw) == "null" {
		return "", false, true
	}
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", true, false
	}
	return value, true, true
}

func requiredString(obj map[string]json.RawMessage, field string, missing func(string) string) (string, error) {
	value, ok, isString := optionalString(obj, field)
	if !ok {
		return "", apperrors.NewValidationError(field, missing(field))
	}
	if !isString {
		return "", apperrors.NewValidationError(field, notString(field))
	}
	return value, nil
}

func mediaName(obj map[string]json.RawMessage) (string, error) {
	name, err := requiredString(obj, "name", MissingBodyParam)
	if err != nil {
		return "", err
	}
	if utf8.RuneCountInString(name) > model.MaxMediaNameLength {
		return "", apperrors.NewValidationError("name", TooLong("name", model.MaxMediaNameLength))
	}
	return name, nil
}

// ParseUpsertBody validates {name, consumed_state?, medium?}. Fields that
// are absent are left nil in the patch.
func ParseUpsertBody(body []byte) (string, model.MediaPatch, error) {
	var patch model.MediaPatch

	obj, err := object(body)
	if err != nil {
		return "", patch, err
	}
	name, err := mediaName(obj)
	if err != nil {
		return "", patch, err
	}

	if raw, ok, isString := optionalString(obj, "consumed_state"); ok {
		state, err := model.ParseConsumedState(raw)
		if !isString || err != nil {
			return "", patch, apperrors.NewValidationError("consumed_state", notOneOf("consumed_state", model.ConsumedStateVocabulary()))
		}
		patch.ConsumedState = &state
	}

	if raw, ok, isString := optionalString(obj, "medium"); ok {
		medium, err := model.ParseMedium(raw)
		if !isString || err != nil {
			return "", patch, apperrors.NewValidationError("medium", notOneOf("medium", model.MediumVocabulary()))
		}
		patch.Medium = &medium
	}

	return name, patch, nil
}

// ParseRemoveBody validates {name}.
func ParseRemoveBody(body []byte) (string, error) {
	obj, err := object(body)
	if err != nil {
		return "", err
	}
	return mediaName(obj)
}

// ParseMediaQuery reads the listing filters. consumed-state wins over its
// legacy spelling when both are given.
func ParseMediaQuery(values url.Values) (model.MediaFilter, error) {
	var filter model.MediaFilter

	param := QueryConsumedState
	if !values.Has(param) && values.Has(QueryConsumedStateLegacy) {
		param = QueryConsumedStateLegacy
	}
	if values.Has(param) {
		state, err := model.ParseConsumedState(values.Get(param))
		if err != nil {
			return filter, apperrors.NewValidationError(param, queryNotOneOf(param, model.ConsumedStateVocabulary()))
		}
		filter.ConsumedState = &state
	}

	if values.Has(QueryMedium) {
		medium, err := model.ParseMedium(values.Get(QueryMedium))
		if err != nil {
			return filter, apperrors.NewValidationError(QueryMedium, queryNotOneOf(QueryMedium, model.MediumVocabulary()))
		}
		filter.Medium = &medium
	}

	return filter, nil
}

// Credentials is the register and login body.
type Credentials struct {
	Username string `json:"username" validate:"required,max=50"`
	Password string `json:"password" validate:"required"`
}

// ParseCredentials type-checks the register and login body. Presence is
// left to the struct tags so it can run through echo's validator.
func ParseCredentials(body []byte) (Credentials, error) {
	var creds Credentials

	obj, err := object(body)
	if err != nil {
		return creds, err
	}
	for _, f := range []struct {
		name string
		dst  *string
	}{{"username", &creds.Username}, {"password", &creds.Password}} {
		value, ok, isString := optionalString(obj, f.name)
		if ok && !isString {
			return creds, apperrors.NewValidationError(f.name, notString(f.name))
		}
		*f.dst = value
	}
	return creds, nil
}
