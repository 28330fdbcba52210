package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/madrasah/internal/pkg/apperrors"
)

type sampleInput struct {
	Title    *string `json:"title" validate:"required,notblank"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Year     *int    `json:"graduationYear" validate:"required,min=1900,max=2100"`
	Featured *bool   `json:"featured"`
}

type messageInput struct {
	Message string `json:"message" validate:"required,min=10"`
}

func str(s string) *string { return &s }
func num(n int) *int       { return &n }

func asErrors(t *testing.T, err error) Errors {
	t.Helper()
	var verrs Errors
	require.True(t, errors.As(err, &verrs), "expected validation.Errors, got %v", err)
	return verrs
}

func TestValidate_RequiredAndJSONNames(t *testing.T) {
	v := New()

	verrs := asErrors(t, v.Validate(&sampleInput{Email: str("nope")}))

	byField := map[string]FieldError{}
	for _, fe := range verrs {
		byField[fe.Field] = fe
	}
	require.Len(t, byField, 3)
	assert.Equal(t, "required", byField["title"].Rule)
	assert.Equal(t, "required", byField["graduationYear"].Rule)
	assert.Equal(t, "email", byField["email"].Rule)
	assert.NotEmpty(t, byField["email"].Message)
}

func TestValidate_MinLengthBoundary(t *testing.T) {
	v := New()

	verrs := asErrors(t, v.Validate(&messageInput{Message: "123456789"}))
	require.Len(t, verrs, 1)
	assert.Equal(t, "message", verrs[0].Field)
	assert.Equal(t, "min", verrs[0].Rule)
	assert.Contains(t, verrs[0].Message, "at least")

	assert.NoError(t, v.Validate(&messageInput{Message: "1234567890"}))
}

func TestValidate_NotBlank(t *testing.T) {
	v := New()

	verrs := asErrors(t, v.Validate(&sampleInput{Title: str("   "), Year: num(2010)}))
	require.Len(t, verrs, 1)
	assert.Equal(t, "notblank", verrs[0].Rule)
	assert.Equal(t, "title cannot be blank", verrs[0].Message)
}

func TestValidatePartial(t *testing.T) {
	v := New()

	// nothing supplied: nothing to check
	assert.NoError(t, v.ValidatePartial(&sampleInput{}))

	// only supplied fields are checked, required ones may be absent
	assert.NoError(t, v.ValidatePartial(&sampleInput{Featured: boolPtr(true)}))

	verrs := asErrors(t, v.ValidatePartial(&sampleInput{Year: num(1800)}))
	require.Len(t, verrs, 1)
	assert.Equal(t, "graduationYear", verrs[0].Field)
	assert.Equal(t, "min", verrs[0].Rule)

	verrs = asErrors(t, v.ValidatePartial(&sampleInput{Title: str(""), Email: str("a@b.co")}))
	require.Len(t, verrs, 1)
	assert.Equal(t, "title", verrs[0].Field)
}

func TestErrorsMatchSentinel(t *testing.T) {
	err := error(Errors{{Field: "name", Rule: "min", Message: "too short"}})
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
	assert.False(t, errors.Is(err, apperrors.ErrResourceNotFound))
	assert.Equal(t, "validation failed: too short", err.Error())
}

func TestFromBindError(t *testing.T) {
	var in sampleInput
	err := json.Unmarshal([]byte(`{"graduationYear":"2010"}`), &in)
	require.Error(t, err)

	verrs := FromBindError(err)
	require.Len(t, verrs, 1)
	assert.Equal(t, "graduationYear", verrs[0].Field)
	assert.Equal(t, "type", verrs[0].Rule)
	assert.Equal(t, "graduationYear must be of type number", verrs[0].Message)

	err = json.Unmarshal([]byte(`{"title":`), &in)
	require.Error(t, err)
	verrs = FromBindError(err)
	require.Len(t, verrs, 1)
	assert.Equal(t, "body", verrs[0].Field)
	assert.Equal(t, "json", verrs[0].Rule)
	assert.Equal(t, "request body is not valid JSON", verrs[0].Message)

	dateErr := fmt.Errorf("bind: %w", &json.UnmarshalTypeError{Value: `"soon"`, Type: reflect.TypeOf(time.Time{}), Field: "eventDate"})
	verrs = FromBindError(dateErr)
	require.Len(t, verrs, 1)
	assert.Equal(t, "eventDate", verrs[0].Field)
	assert.Equal(t, "date", verrs[0].Rule)
}

func boolPtr(b bool) *bool { return &b }
