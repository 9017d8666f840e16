package session_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ultradian/alexa-genome-match/internal/model/genome"
	"github.com/ultradian/alexa-genome-match/internal/service/session"
)

func TestStateFromAttributesDegradesGracefully(t *testing.T) {
	logger := zap.NewNop()

	state := session.StateFromAttributes(nil, logger)
	require.NotNil(t, state.Data)
	assert.Equal(t, 0, state.Data.Len())

	state = session.StateFromAttributes(json.RawMessage(`{broken`), logger)
	require.NotNil(t, state.Data)
	assert.Equal(t, 0, state.Data.Len())
}

func TestStateAttributesRoundTrip(t *testing.T) {
	state := session.NewState()
	state.Data.Put("Bob", genome.TraitRecord{"anger": {Score: 4, Phrase: "They have high anger"}})
	state.Remember("hello", "again")
	state.TestUser = 5

	attrs, err := state.Attributes()
	require.NoError(t, err)

	restored := session.StateFromAttributes(attrs, zap.NewNop())
	assert.Equal(t, []string{"Bob"}, restored.Data.Names())
	assert.Equal(t, "hello", restored.LastSpeech)
	assert.Equal(t, "again", restored.LastReprompt)
	assert.Equal(t, 5, restored.TestUser)
}

func TestAccessTokenResolution(t *testing.T) {
	state := session.NewState()
	assert.Equal(t, "", state.AccessToken(""))

	state.BeginTestIdentity()
	assert.Equal(t, "GENOMELINKTEST001", state.AccessToken(""))

	// A platform token wins and retires the test identity.
	assert.Equal(t, "real-token", state.AccessToken("real-token"))
	assert.Equal(t, 0, state.TestUser)
	assert.Equal(t, "", state.AccessToken(""))
}

func TestClearAccessTokenCapsCounter(t *testing.T) {
	state := session.NewState()
	state.BeginTestIdentity()
	for i := 0; i < 20; i++ {
		state.ClearAccessToken()
	}
	assert.Equal(t, 9, state.TestUser)
	assert.Equal(t, "GENOMELINKTEST009", state.AccessToken(""))
}

func TestBeginTestIdentityDoesNotResetProgress(t *testing.T) {
	state := session.NewState()
	state.BeginTestIdentity()
	state.ClearAccessToken()
	state.BeginTestIdentity()
	assert.Equal(t, 2, state.TestUser)
}
