package models

import (
	"bytes"
	"encoding/json"
	"reflect"
	"time"
)

// Role is the role attached to a user account
type Role string

const (
	RoleAdmin Role = "admin"
)

// DefaultRole is assigned when registration omits a role
const DefaultRole = RoleAdmin

// ContactStatus is the workflow state of a contact message
type ContactStatus string

const (
	ContactStatusUnread   ContactStatus = "unread"
	ContactStatusRead     ContactStatus = "read"
	ContactStatusReplied  ContactStatus = "replied"
	ContactStatusArchived ContactStatus = "archived"
)

// RegistrationStatus is the workflow state of a student registration
type RegistrationStatus string

const (
	RegistrationStatusPending  RegistrationStatus = "pending"
	RegistrationStatusReviewed RegistrationStatus = "reviewed"
	RegistrationStatusAccepted RegistrationStatus = "accepted"
	RegistrationStatusRejected RegistrationStatus = "rejected"
)

// NewsFilter narrows a news listing; nil fields apply no filter
type NewsFilter struct {
	Published *bool
}

// AlumniFilter narrows an alumni listing; nil fields apply no filter
type AlumniFilter struct {
	Approved *bool
	Featured *bool
}

// EventFilter narrows an event listing; nil fields apply no filter
type EventFilter struct {
	IsPublic *bool
}

// FlexibleTime accepts RFC 3339 timestamps or plain YYYY-MM-DD dates in JSON
type FlexibleTime struct {
	time.Time
}

var flexibleLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

// UnmarshalJSON implements json.Unmarshaler
func (t *FlexibleTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	// the decoder fills in the field name of an UnmarshalTypeError
	invalid := &json.UnmarshalTypeError{Value: string(data), Type: reflect.TypeOf(time.Time{})}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return invalid
	}

	for _, layout := range flexibleLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return invalid
}

// MarshalJSON implements json.Marshaler
func (t FlexibleTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Time.UTC())
}

// NewFlexibleTime wraps tm
func NewFlexibleTime(tm time.Time) *FlexibleTime {
	return &FlexibleTime{Time: tm}
}

// PublishedAtAfterUpdate returns the publish timestamp a news article has after an update.
// It is set on a false to true transition, cleared when unpublishing and kept otherwise.
func PublishedAtAfterUpdate(wasPublished bool, current *time.Time, published *bool, now time.Time) *time.Time {
	if published == nil {
		return current
	}
	switch {
	case *published && !wasPublished:
		return &now
	case !*published:
		return nil
	default:
		return current
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setNullable(dst **string, src *string) {
	if src != nil {
		v := *src
		*dst = &v
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
