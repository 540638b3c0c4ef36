package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    float64
		wantErr bool
	}{
		{name: "plain integer", value: "25", want: 25},
		{name: "decimal", value: "19.99", want: 19.99},
		{name: "whitespace trimmed", value: " 3.50 ", want: 3.5},
		{name: "empty is zero", value: "", want: 0},
		{name: "non-numeric rejected", value: "abc", wantErr: true},
		{name: "trailing junk rejected", value: "12x", wantErr: true},
		{name: "negative rejected", value: "-5", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMoney("price paid", tt.value)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUserValidate(t *testing.T) {
	tests := []struct {
		name    string
		user    User
		wantErr error
	}{
		{name: "valid", user: User{Username: "alice", Password: "pw", Role: RoleUser}},
		{name: "missing username", user: User{Password: "pw", Role: RoleUser}, wantErr: ErrValidation},
		{name: "missing password", user: User{Username: "alice", Role: RoleUser}, wantErr: ErrValidation},
		{name: "bad role", user: User{Username: "alice", Password: "pw", Role: "Owner"}, wantErr: ErrValidation},
		{name: "bad status", user: User{Username: "alice", Password: "pw", Role: RoleUser, UserStatus: "Gone"}, wantErr: ErrInvalidStatus},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.user.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestEntityValidateRequiredFields(t *testing.T) {
	assert.ErrorIs(t, (&Collection{User: "alice"}).Validate(), ErrValidation)
	assert.ErrorIs(t, (&Collection{CollectionName: "Coins"}).Validate(), ErrValidation)
	assert.NoError(t, (&Collection{CollectionName: "Coins", User: "alice"}).Validate())

	assert.ErrorIs(t, (&Item{Collection: "Coins", User: "alice"}).Validate(), ErrValidation)
	assert.ErrorIs(t, (&Item{ItemName: "Penny", User: "alice"}).Validate(), ErrValidation)
	assert.ErrorIs(t, (&Item{ItemName: "Penny", Collection: "Coins"}).Validate(), ErrValidation)
	assert.NoError(t, (&Item{ItemName: "Penny", Collection: "Coins", User: "alice"}).Validate())

	assert.ErrorIs(t, (&Source{}).Validate(), ErrValidation)
	assert.NoError(t, (&Source{BusinessName: "Coin Shop"}).Validate())
}

func TestConfigValidate(t *testing.T) {
	assert.ErrorIs(t, Config{}.Validate(), ErrDBPathEmpty)
	assert.NoError(t, Config{DBPath: "collections.sqlite"}.Validate())
}
