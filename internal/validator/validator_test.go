package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type commentInput struct {
	Content string `json:"content" validate:"required,not_blank,max=20"`
}

type salaryInput struct {
	FromSalary *float64 `json:"from_salary" validate:"omitempty,min=0"`
	ToSalary   *float64 `json:"to_salary" validate:"omitempty,min=0,salary_gte=FromSalary"`
}

func f(v float64) *float64 { return &v }

func TestValidate_NotBlank(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&commentInput{Content: "Great place"}))

	err := v.Validate(&commentInput{Content: "   "})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "This field may not be blank", verr.Errors["content"])

	err = v.Validate(&commentInput{Content: "this comment is definitely too long"})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Must be at most 20", verr.Errors["content"])
}

func TestValidate_SalaryRange(t *testing.T) {
	v := New()

	tests := []struct {
		name  string
		input salaryInput
		ok    bool
	}{
		{"both empty", salaryInput{}, true},
		{"only upper bound", salaryInput{ToSalary: f(100)}, true},
		{"equal bounds", salaryInput{FromSalary: f(100), ToSalary: f(100)}, true},
		{"upper above lower", salaryInput{FromSalary: f(100), ToSalary: f(200)}, true},
		{"upper below lower", salaryInput{FromSalary: f(300), ToSalary: f(200)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.input)
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, "Must be greater than or equal to from_salary", verr.Errors["to_salary"])
		})
	}
}

func TestValidate_UsesJSONNames(t *testing.T) {
	type input struct {
		Email string `json:"email" validate:"required,email"`
	}

	err := New().Validate(&input{Email: "nope"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, map[string]string{"email": "Must be a valid email address"}, verr.Errors)
	assert.Contains(t, err.Error(), "field 'email'")
}
