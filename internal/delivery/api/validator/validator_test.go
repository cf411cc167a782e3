package validator

import (
	"testing"

	"docgate/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		input   any
		wantErr string
	}{
		{
			name:  "valid share request",
			input: &usecase.ShareDocumentInput{Email: "bob@example.com", Role: "writer"},
		},
		{
			name:    "missing file name",
			input:   &usecase.CreateDocumentInput{Content: "hello"},
			wantErr: "fileName is required",
		},
		{
			name:    "bad email and role",
			input:   &usecase.ShareDocumentInput{Email: "not-an-email", Role: "owner"},
			wantErr: "email must be a valid email address; role must be one of: reader writer commenter",
		},
		{
			name:  "empty permission type is allowed",
			input: &usecase.ShareableLinkInput{},
		},
		{
			name:    "unknown permission type",
			input:   &usecase.ShareableLinkInput{PermissionType: "owner"},
			wantErr: "permissionType must be one of: reader writer commenter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.input)
			if tt.wantErr == "" {
				require.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}
