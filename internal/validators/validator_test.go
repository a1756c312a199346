// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/fave-tweets/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestStructValidator_TweetUpdateRequest(t *testing.T) {
	v := NewStructValidator()

	tests := []struct {
		name       string
		req        models.TweetUpdateRequest
		wantFields []string
	}{
		{
			name: "valid",
			req:  models.TweetUpdateRequest{Archived: ptr(true), TagList: ptr("go, redis")},
		},
		{
			name: "empty tag list is allowed",
			req:  models.TweetUpdateRequest{Archived: ptr(false), TagList: ptr("")},
		},
		{
			name:       "missing archived",
			req:        models.TweetUpdateRequest{TagList: ptr("go")},
			wantFields: []string{"archived"},
		},
		{
			name:       "missing both",
			req:        models.TweetUpdateRequest{},
			wantFields: []string{"archived", "tag_list"},
		},
		{
			name:       "tag list too long",
			req:        models.TweetUpdateRequest{Archived: ptr(true), TagList: ptr(strings.Repeat("a", 1025))},
			wantFields: []string{"tag_list"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), &tt.req)
			if len(tt.wantFields) == 0 {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput))

			var fieldErrs FieldErrors
			require.True(t, errors.As(err, &fieldErrs))
			assert.Len(t, fieldErrs, len(tt.wantFields))
			for _, f := range tt.wantFields {
				assert.Contains(t, fieldErrs, f)
			}
		})
	}
}

func TestStructValidator_Partial(t *testing.T) {
	v := NewStructValidator()

	err := v.Validate(context.Background(), &models.TweetUpdateRequest{TagList: ptr("go")}, "TagList")
	require.NoError(t, err)

	err = v.Validate(context.Background(), &models.TweetUpdateRequest{TagList: ptr("go")}, "Archived")
	require.Error(t, err)
}

func TestStructValidator_UnsupportedType(t *testing.T) {
	err := NewStructValidator().Validate(context.Background(), 42)
	require.ErrorIs(t, err, ErrUnsupportedType)
}

func TestFieldErrors_ErrorIsSorted(t *testing.T) {
	err := FieldErrors{"tag_list": "is required", "archived": "is required"}
	assert.Equal(t, "invalid input: archived is required; tag_list is required", err.Error())
}
