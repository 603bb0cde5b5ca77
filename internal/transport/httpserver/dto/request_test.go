package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gear-catalog-service/internal/validator"
)

func newTestValidator() *validator.Validator {
	return validator.New()
}

// TestReviewsRequest_Validation_Valid tests valid review listing requests.
func TestReviewsRequest_Validation_Valid(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		name string
		req  ReviewsRequest
	}{
		{
			name: "empty request",
			req:  ReviewsRequest{},
		},
		{
			name: "category only",
			req:  ReviewsRequest{Category: "camping-gear"},
		},
		{
			name: "full request",
			req:  ReviewsRequest{Category: "footwear", Limit: 20, Offset: 40},
		},
		{
			name: "max limit",
			req:  ReviewsRequest{Limit: 500},
		},
		{
			name: "category at max length",
			req:  ReviewsRequest{Category: string(make([]byte, 50))},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)
			assert.NoError(t, err)
		})
	}
}

// TestReviewsRequest_Validation_Invalid tests invalid review listing requests.
func TestReviewsRequest_Validation_Invalid(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		name        string
		req         ReviewsRequest
		expectField string
		expectTag   string
	}{
		{
			name:        "category too long",
			req:         ReviewsRequest{Category: string(make([]byte, 51))},
			expectField: "category",
			expectTag:   "max",
		},
		{
			name:        "limit too large",
			req:         ReviewsRequest{Limit: 501},
			expectField: "limit",
			expectTag:   "max",
		},
		{
			name:        "negative limit",
			req:         ReviewsRequest{Limit: -1},
			expectField: "limit",
			expectTag:   "min",
		},
		{
			name:        "negative offset",
			req:         ReviewsRequest{Offset: -5},
			expectField: "offset",
			expectTag:   "min",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)
			require.Error(t, err)

			validationErrs, ok := err.(validator.ValidationErrors)
			require.True(t, ok, "expected ValidationErrors type")
			require.NotEmpty(t, validationErrs)

			found := false
			for _, ve := range validationErrs {
				if ve.Field == tt.expectField {
					found = true
					assert.Equal(t, tt.expectTag, ve.Tag)
				}
			}
			assert.True(t, found, "expected error for field %s", tt.expectField)
		})
	}
}

// TestGuidesRequest_Validation tests guide listing requests.
func TestGuidesRequest_Validation(t *testing.T) {
	v := newTestValidator()

	assert.NoError(t, v.Validate(&GuidesRequest{}))
	assert.NoError(t, v.Validate(&GuidesRequest{Category: "all", Query: "tent"}))

	err := v.Validate(&GuidesRequest{Query: string(make([]byte, 201))})
	require.Error(t, err)

	validationErrs, ok := err.(validator.ValidationErrors)
	require.True(t, ok)
	require.NotEmpty(t, validationErrs)
	assert.Equal(t, "q", validationErrs[0].Field)
	assert.Equal(t, "max", validationErrs[0].Tag)
}

// TestReviewsRequest_Window tests slice bound computation for pagination.
func TestReviewsRequest_Window(t *testing.T) {
	tests := []struct {
		name          string
		req           ReviewsRequest
		n             int
		expectedStart int
		expectedEnd   int
	}{
		{
			name:          "no limit returns everything",
			req:           ReviewsRequest{},
			n:             10,
			expectedStart: 0,
			expectedEnd:   10,
		},
		{
			name:          "limit within bounds",
			req:           ReviewsRequest{Limit: 3},
			n:             10,
			expectedStart: 0,
			expectedEnd:   3,
		},
		{
			name:          "offset and limit",
			req:           ReviewsRequest{Limit: 3, Offset: 4},
			n:             10,
			expectedStart: 4,
			expectedEnd:   7,
		},
		{
			name:          "limit past end is clamped",
			req:           ReviewsRequest{Limit: 100, Offset: 8},
			n:             10,
			expectedStart: 8,
			expectedEnd:   10,
		},
		{
			name:          "offset past end yields empty window",
			req:           ReviewsRequest{Offset: 50},
			n:             10,
			expectedStart: 10,
			expectedEnd:   10,
		},
		{
			name:          "empty collection",
			req:           ReviewsRequest{Limit: 5, Offset: 2},
			n:             0,
			expectedStart: 0,
			expectedEnd:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := tt.req.Window(tt.n)
			assert.Equal(t, tt.expectedStart, start)
			assert.Equal(t, tt.expectedEnd, end)
			assert.LessOrEqual(t, start, end)
		})
	}
}
