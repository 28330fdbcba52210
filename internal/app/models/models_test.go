package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexibleTime_Unmarshal(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{`"2025-01-15"`, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)},
		{`"2025-01-15T08:30:00"`, time.Date(2025, 1, 15, 8, 30, 0, 0, time.UTC)},
		{`"2025-01-15T08:30:00+07:00"`, time.Date(2025, 1, 15, 1, 30, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		var in AcademicEventInput
		require.NoError(t, json.Unmarshal([]byte(`{"eventDate":`+tt.in+`}`), &in), tt.in)
		require.NotNil(t, in.EventDate)
		assert.True(t, tt.want.Equal(in.EventDate.Time), tt.in)
	}

	var in AcademicEventInput
	for _, body := range []string{`{"eventDate":"next tuesday"}`, `{"eventDate":20250115}`} {
		var typeErr *json.UnmarshalTypeError
		require.ErrorAs(t, json.Unmarshal([]byte(body), &in), &typeErr, body)
		assert.Equal(t, "eventDate", typeErr.Field, body)
	}

	in = AcademicEventInput{}
	require.NoError(t, json.Unmarshal([]byte(`{"eventDate":null}`), &in))
	assert.Nil(t, in.EventDate)
}

func TestPublishedAtAfterUpdate(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	earlier := now.Add(-48 * time.Hour)
	yes, no := true, false

	// publish transition stamps now
	assert.Equal(t, &now, PublishedAtAfterUpdate(false, nil, &yes, now))
	// re-asserting published keeps the original stamp
	assert.Equal(t, &earlier, PublishedAtAfterUpdate(true, &earlier, &yes, now))
	// unpublishing clears it
	assert.Nil(t, PublishedAtAfterUpdate(true, &earlier, &no, now))
	// untouched flag keeps whatever was there
	assert.Equal(t, &earlier, PublishedAtAfterUpdate(true, &earlier, nil, now))
	assert.Nil(t, PublishedAtAfterUpdate(false, nil, nil, now))
}

func TestContactMessageInput_Trim(t *testing.T) {
	in := ContactMessageInput{Name: "  Ani ", Email: " ani@example.com", Subject: " Hi  ", Message: "\tHello there\n"}
	in.Trim()
	assert.Equal(t, ContactMessageInput{Name: "Ani", Email: "ani@example.com", Subject: "Hi", Message: "Hello there"}, in)
}

func TestUserPasswordNotSerialized(t *testing.T) {
	out, err := json.Marshal(User{ID: "u1", Username: "admin", Password: "$2a$hash", Role: RoleAdmin})
	require.NoError(t, err)
	assert.NotContains(t, string(out), "hash")
	assert.Contains(t, string(out), `"role":"admin"`)
}

func TestPrepareForInsert(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	u := &User{Username: "admin"}
	u.PrepareForInsert(now)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, RoleAdmin, u.Role)

	m := &ContactMessage{}
	m.PrepareForInsert(now)
	assert.Equal(t, ContactStatusUnread, m.Status)
	assert.Equal(t, now, m.CreatedAt)

	r := &StudentRegistration{ID: "fixed"}
	r.PrepareForInsert(now)
	assert.Equal(t, "fixed", r.ID)
	assert.Equal(t, RegistrationStatusPending, r.Status)

	draft := &NewsArticle{}
	draft.PrepareForInsert(now)
	assert.Nil(t, draft.PublishedAt)

	live := &NewsArticle{Published: true}
	live.PrepareForInsert(now)
	require.NotNil(t, live.PublishedAt)
	assert.Equal(t, now, *live.PublishedAt)

	a, b := &Alumni{}, &Alumni{}
	a.PrepareForInsert(now)
	b.PrepareForInsert(now)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestNewsArticleApply(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	title, pub := "Updated", true

	a := &NewsArticle{Title: "Old", Content: "Body", Published: false}
	a.Apply(&NewsArticleInput{Title: &title, Published: &pub}, now)

	assert.Equal(t, "Updated", a.Title)
	assert.Equal(t, "Body", a.Content)
	assert.True(t, a.Published)
	require.NotNil(t, a.PublishedAt)
	assert.Equal(t, now, *a.PublishedAt)
}

func TestNewAlumniIgnoresModerationFlags(t *testing.T) {
	var in AlumniInput
	require.NoError(t, json.Unmarshal([]byte(`{"fullName":"Siti","graduationYear":2015,"program":"IPA","approved":true,"featured":true}`), &in))

	a := NewAlumni(&in)
	assert.False(t, a.Approved)
	assert.False(t, a.Featured)
	assert.Equal(t, 2015, a.GraduationYear)
	assert.Nil(t, a.Email)

	company := "Pertamina"
	a.Approved = true
	a.Apply(&AlumniInput{Company: &company})
	assert.True(t, a.Approved)
	assert.Equal(t, "Pertamina", *a.Company)
}

func TestNewStudentRegistrationIgnoresNotes(t *testing.T) {
	var in StudentRegistrationInput
	require.NoError(t, json.Unmarshal([]byte(`{"fullName":"Ahmad","program":"IPA","documents":"ijazah.pdf","notes":"accept this one"}`), &in))

	r := NewStudentRegistration(&in)
	assert.Nil(t, r.Notes)
	assert.Equal(t, RegistrationStatusPending, r.Status)
	require.NotNil(t, r.Documents)
	assert.Equal(t, "ijazah.pdf", *r.Documents)
}

func TestNewAcademicEventDefaultsPublic(t *testing.T) {
	title, cat := "Ujian Semester", "exam"
	e := NewAcademicEvent(&AcademicEventInput{Title: &title, Category: &cat, EventDate: NewFlexibleTime(time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC))})
	assert.True(t, e.IsPublic)
	assert.Equal(t, 2025, e.EventDate.Year())

	private := false
	e.Apply(&AcademicEventInput{IsPublic: &private})
	assert.False(t, e.IsPublic)
	assert.Equal(t, "Ujian Semester", e.Title)
}
