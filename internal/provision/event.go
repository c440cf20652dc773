package provision

import (
	"errors"
	"strings"

	"github.com/tidwall/gjson"
)

// ErrMalformedPayload marks a body that is not valid JSON.
var ErrMalformedPayload = errors.New("provision: malformed event payload")

// ParseEvent normalizes an inbound webhook body into a canonical Event.
// Payload shapes differ across provider versions: the user record may sit at
// "record", "user", or the root; confirmation may arrive as a timestamp, a
// boolean, or a dedicated event marker; metadata keys may be snake_case or
// camelCase. Everything is resolved here so the provisioner never has to care.
func ParseEvent(body []byte) (Event, error) {
	if !gjson.ValidBytes(body) {
		return Event{}, ErrMalformedPayload
	}
	payload := gjson.ParseBytes(body)
	if !payload.IsObject() {
		return Event{}, ErrMalformedPayload
	}

	record := payload.Get("record")
	if !record.Exists() {
		record = payload.Get("user")
	}
	if !record.Exists() {
		record = payload
	}

	event := Event{
		Kind:      classifyKind(payload),
		UserID:    strings.TrimSpace(record.Get("id").String()),
		Email:     strings.TrimSpace(record.Get("email").String()),
		Confirmed: isConfirmed(payload, record),
	}

	meta := record.Get("raw_user_meta_data")
	if !meta.Exists() {
		meta = record.Get("user_metadata")
	}
	if meta.IsObject() {
		if value, ok := meta.Value().(map[string]any); ok {
			event.Metadata = value
		}
		event.FirstName = firstNonEmpty(meta.Get("first_name").String(), meta.Get("firstName").String())
		event.LastName = firstNonEmpty(meta.Get("last_name").String(), meta.Get("lastName").String())
	}

	return event, nil
}

func classifyKind(payload gjson.Result) EventKind {
	kind := strings.ToLower(strings.TrimSpace(firstNonEmpty(
		payload.Get("type").String(),
		payload.Get("event").String(),
	)))
	switch kind {
	case "insert", "user.created":
		return KindInsert
	case "update", "user.updated", "user_verified":
		return KindUpdate
	}
	return KindUnknown
}

// isConfirmed accepts any recognized confirmation signal: a non-empty
// timestamp string, a boolean flag, or the USER_VERIFIED event marker.
func isConfirmed(payload, record gjson.Result) bool {
	for _, field := range []string{"email_confirmed_at", "confirmed_at", "email_confirmed"} {
		if truthy(record.Get(field)) {
			return true
		}
	}
	return strings.EqualFold(payload.Get("event").String(), "USER_VERIFIED")
}

func truthy(value gjson.Result) bool {
	switch value.Type {
	case gjson.True:
		return true
	case gjson.String:
		return strings.TrimSpace(value.Str) != ""
	default:
		return false
	}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
