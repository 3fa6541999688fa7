package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2024-06-10")
	assert.True(t, ok)
	_, ok = IsValidDate("10-06-2024")
	assert.False(t, ok)
	_, ok = IsValidMonth("2024-06")
	assert.True(t, ok)
	_, ok = IsValidMonth("2024-6-1")
	assert.False(t, ok)
}

type sampleRequest struct {
	Email  string  `json:"email" validate:"required,email"`
	Role   string  `json:"role" validate:"omitempty,oneof=employee manager"`
	Salary float64 `json:"salary" validate:"gte=0"`
}

func TestStruct_UsesJSONFieldNames(t *testing.T) {
	errs := Struct(sampleRequest{Email: "nope", Role: "boss", Salary: -1})
	require.Len(t, errs, 3)

	details := errs.ToMap()
	assert.Equal(t, "email must be a valid email address", details["email"])
	assert.Equal(t, "role must be one of: employee, manager", details["role"])
	assert.Equal(t, "salary must be greater than or equal to 0", details["salary"])
}

func TestStruct_Valid(t *testing.T) {
	errs := Struct(sampleRequest{Email: "a@b.cd", Role: "manager"})
	assert.Nil(t, errs)
	assert.NoError(t, errs.Err())
}

func TestValidationErrors_ErrorString(t *testing.T) {
	var errs ValidationErrors
	errs.Add("from_date", "from_date is required")
	errs.Add("to_date", "to_date is required")

	assert.Equal(t, "from_date: from_date is required; to_date: to_date is required", errs.Error())
	assert.Error(t, errs.Err())
}
