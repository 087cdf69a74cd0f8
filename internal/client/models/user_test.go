package models

import (
	"testing"

	"github.com/dmitrijs2005/railticket/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialsFor(t *testing.T) {
	tests := []struct {
		in   string
		want Credentials
	}{
		{"alice", Credentials{UserName: "alice", Password: "pw"}},
		{"  bob@example.com ", Credentials{Email: "bob@example.com", Password: "pw"}},
		{"+1 (555) 010-9999", Credentials{Phone: "+1 (555) 010-9999", Password: "pw"}},
		{"5550100", Credentials{Phone: "5550100", Password: "pw"}},
		{"agent007", Credentials{UserName: "agent007", Password: "pw"}},
		{"1234", Credentials{UserName: "1234", Password: "pw"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, CredentialsFor(tt.in, "pw"))
		})
	}
}

func validNewUser() NewUser {
	return NewUser{
		FirstName: "Alice",
		LastName:  "Liddell",
		UserName:  "alice",
		Email:     "alice@example.com",
		Phone:     "+15550100",
		Password:  "secret123",
	}
}

func TestNewUser_Validate(t *testing.T) {
	require.NoError(t, validNewUser().Validate())

	broken := map[string]func(*NewUser){
		"no first name":    func(n *NewUser) { n.FirstName = " " },
		"no email":         func(n *NewUser) { n.Email = "" },
		"bad email":        func(n *NewUser) { n.Email = "alice" },
		"bad phone":        func(n *NewUser) { n.Phone = "call me" },
		"spaced user name": func(n *NewUser) { n.UserName = "al ice" },
		"short password":   func(n *NewUser) { n.Password = "12345" },
	}
	for name, mutate := range broken {
		t.Run(name, func(t *testing.T) {
			n := validNewUser()
			mutate(&n)
			require.ErrorIs(t, n.Validate(), common.ErrorValidation)
		})
	}
}

func TestProfilePatch_Empty(t *testing.T) {
	assert.True(t, ProfilePatch{}.Empty())
	name := "Al"
	assert.False(t, ProfilePatch{FirstName: &name}.Empty())
}

func TestUser_FullName(t *testing.T) {
	assert.Equal(t, "Alice Liddell", (&User{FirstName: "Alice", LastName: "Liddell"}).FullName())
	assert.Equal(t, "Alice", (&User{FirstName: "Alice"}).FullName())
}
