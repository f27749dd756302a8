package app

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRegistration(t *testing.T) {
	testCases := []struct {
		name     string
		username string
		password string
		email    string
		wantMsg  string
	}{
		{
			name:     "valid without email",
			username: "alice1",
			password: "secret9",
		},
		{
			name:     "valid with email",
			username: "alice1",
			password: "secret9",
			email:    "a@example.com",
		},
		{
			name:     "missing username",
			username: "",
			password: "secret9",
			wantMsg:  "Username and password are required",
		},
		{
			name:     "missing password",
			username: "alice1",
			password: "",
			wantMsg:  "Username and password are required",
		},
		{
			name:     "username too short",
			username: "ab",
			password: "secret9",
			wantMsg:  "Username must be between 3 and 20 characters",
		},
		{
			name:     "username too long",
			username: strings.Repeat("a", 21),
			password: "secret9",
			wantMsg:  "Username must be between 3 and 20 characters",
		},
		{
			name:     "username with invalid characters",
			username: "alice-1",
			password: "secret9",
			wantMsg:  "Username can only contain letters, numbers and underscores",
		},
		{
			name:     "username with spaces",
			username: "alice 1",
			password: "secret9",
			wantMsg:  "Username can only contain letters, numbers and underscores",
		},
		{
			name:     "underscore allowed",
			username: "alice_1",
			password: "secret9",
		},
		{
			name:     "password too short",
			username: "alice1",
			password: "a1b2c",
			wantMsg:  "Password must be between 6 and 50 characters",
		},
		{
			name:     "password too long",
			username: "alice1",
			password: "a1" + strings.Repeat("x", 49),
			wantMsg:  "Password must be between 6 and 50 characters",
		},
		{
			name:     "password without digit",
			username: "alice1",
			password: "secrets",
			wantMsg:  "Password must contain at least one letter and one number",
		},
		{
			name:     "password without letter",
			username: "alice1",
			password: "1234567",
			wantMsg:  "Password must contain at least one letter and one number",
		},
		{
			name:     "invalid email",
			username: "alice1",
			password: "secret9",
			email:    "not-an-email",
			wantMsg:  "Please provide a valid email address",
		},
		{
			name:     "email without tld",
			username: "alice1",
			password: "secret9",
			email:    "a@example",
			wantMsg:  "Please provide a valid email address",
		},
		{
			name:     "length check runs before charset check",
			username: "a-",
			password: "secret9",
			wantMsg:  "Username must be between 3 and 20 characters",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateRegistration(tc.username, tc.password, tc.email)
			if tc.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.wantMsg, vErr.Error())
		})
	}
}
