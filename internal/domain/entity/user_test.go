package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_JSONHidesProviderSubject(t *testing.T) {
	user := &User{
		ID:             42,
		Email:          "eater@example.com",
		AuthProvider:   ProviderGoogle,
		AuthProviderID: "google-sub-1",
	}

	data, err := json.Marshal(user)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))

	assert.NotContains(t, fields, "auth_provider_id")
	assert.Equal(t, "google", fields["auth_provider"])
}

func TestSocialProvider_IsValid(t *testing.T) {
	assert.True(t, ProviderGoogle.IsValid())
	assert.True(t, ProviderHuawei.IsValid())
	assert.False(t, SocialProvider("myspace").IsValid())
	assert.False(t, SocialProvider("").IsValid())
}
