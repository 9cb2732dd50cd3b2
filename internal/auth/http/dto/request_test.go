package dto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignUpRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		request SignUpRequest
		wantErr string
	}{
		{name: "valid", request: SignUpRequest{Username: "alice", Password: "secret1"}},
		{name: "valid with symbols", request: SignUpRequest{Username: "a.b_c-1", Password: "secret1"}},
		{name: "missing username", request: SignUpRequest{Password: "secret1"}, wantErr: "username"},
		{name: "blank username", request: SignUpRequest{Username: "   ", Password: "secret1"}, wantErr: "username"},
		{name: "username with spaces", request: SignUpRequest{Username: "al ice", Password: "secret1"}, wantErr: "username"},
		{
			name:    "username too long",
			request: SignUpRequest{Username: strings.Repeat("a", 256), Password: "secret1"},
			wantErr: "username",
		},
		{name: "missing password", request: SignUpRequest{Username: "alice"}, wantErr: "password"},
		{name: "short password", request: SignUpRequest{Username: "alice", Password: "abc"}, wantErr: "at least 6"},
		{
			name:    "password too long",
			request: SignUpRequest{Username: "alice", Password: strings.Repeat("p", 129)},
			wantErr: "password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoginRequest_Validate(t *testing.T) {
	assert.NoError(t, (&LoginRequest{Username: "alice", Password: "x"}).Validate())
	assert.Error(t, (&LoginRequest{Username: "", Password: "x"}).Validate())
	assert.Error(t, (&LoginRequest{Username: "alice", Password: ""}).Validate())
}

func TestRequest_ToDomain(t *testing.T) {
	signUp := (&SignUpRequest{Username: "alice", Password: "secret1"}).ToDomain()
	assert.Equal(t, "alice", signUp.Username)
	assert.Equal(t, "secret1", signUp.Password)

	login := (&LoginRequest{Username: "alice", Password: "secret1"}).ToDomain()
	assert.Equal(t, "alice", login.Username)
	assert.Equal(t, "secret1", login.Password)
}
