package validator

import (
	"testing"

	"apptrack/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }

func TestValidateCreateJobRequest(t *testing.T) {
	t.Parallel()

	v := New()

	valid := &dto.CreateJobRequest{
		CompanyID:     "8b8f0d9c-1111-4222-8333-444455556666",
		PositionTitle: "Backend Engineer",
		Status:        "APPLIED",
		Priority:      4,
	}
	assert.NoError(t, v.Validate(valid))
}

func TestValidateMissingRequiredFields(t *testing.T) {
	t.Parallel()

	v := New()

	err := v.Validate(&dto.CreateJobRequest{})
	require.Error(t, err)

	ve, ok := err.(*ValidationError)
	require.True(t, ok)
	// errors keyed by json field name
	assert.Contains(t, ve.Errors, "company_id")
	assert.Contains(t, ve.Errors, "position_title")
}

func TestValidateEnumTags(t *testing.T) {
	t.Parallel()

	v := New()

	bad := &dto.CreateJobRequest{
		CompanyID:      "8b8f0d9c-1111-4222-8333-444455556666",
		PositionTitle:  "Backend Engineer",
		Status:         "DAYDREAMING",
		SalaryCurrency: strp("DOGE"),
		RoleType:       strp("INTERN"),
	}
	err := v.Validate(bad)
	require.Error(t, err)

	ve, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, ve.Errors, "status")
	assert.Contains(t, ve.Errors, "salary_currency")
	assert.Contains(t, ve.Errors, "role_type")
}

func TestValidatePriorityRange(t *testing.T) {
	t.Parallel()

	v := New()

	bad := &dto.CreateJobRequest{
		CompanyID:     "8b8f0d9c-1111-4222-8333-444455556666",
		PositionTitle: "Backend Engineer",
		Priority:      9,
	}
	err := v.Validate(bad)
	require.Error(t, err)

	ve, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, ve.Errors, "priority")
}

func TestValidateCompanySizeBucket(t *testing.T) {
	t.Parallel()

	v := New()

	assert.NoError(t, v.Validate(&dto.CreateCompanyRequest{Name: "Acme", Size: strp("11-50")}))

	err := v.Validate(&dto.CreateCompanyRequest{Name: "Acme", Size: strp("huge")})
	require.Error(t, err)

	ve, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, ve.Errors, "size")
}
