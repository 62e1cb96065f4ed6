//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type validatable interface{ Validate() error }

func TestAuthRequests_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     validatable
		wantTag string
	}{
		{"register ok", &CreateUserRequest{Name: "Ada", Email: "ada@example.com", Password: "password123"}, ""},
		{"register with next", &CreateUserRequest{Name: "Ada", Email: "ada@example.com", Password: "password123", Next: "/sessions/x/export"}, ""},
		{"register missing name", &CreateUserRequest{Email: "ada@example.com", Password: "password123"}, "required"},
		{"register bad email", &CreateUserRequest{Name: "Ada", Email: "ada", Password: "password123"}, "email"},
		{"register short password", &CreateUserRequest{Name: "Ada", Email: "ada@example.com", Password: "1234567"}, "min"},
		{"login ok", &LoginRequest{Email: "ada@example.com", Password: "x"}, ""},
		{"login missing password", &LoginRequest{Email: "ada@example.com"}, "required"},
		{"login bad email", &LoginRequest{Email: "ada@", Password: "x"}, "email"},
		{"password ok", &UpdatePasswordRequest{CurrentPassword: "old", NewPassword: "newpassword"}, ""},
		{"password missing current", &UpdatePasswordRequest{NewPassword: "newpassword"}, "required"},
		{"password too short", &UpdatePasswordRequest{CurrentPassword: "old", NewPassword: "short"}, "min"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantTag == "" {
				assert.NoError(t, err)
				return
			}
			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			require.NotEmpty(t, verrs)
			assert.Equal(t, tt.wantTag, verrs[0].Tag())
		})
	}
}

func TestLoginResponse_JSON(t *testing.T) {
	resp := LoginResponse{User: &User{ID: uuid.New(), Name: "Ada", Email: "ada@example.com"}, Token: "tok"}

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"next"`)
	assert.Contains(t, string(data), `"token":"tok"`)

	resp.Next = "/sessions/x/export"
	data, err = json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"next":"/sessions/x/export"`)
}
