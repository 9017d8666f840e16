// Package session tracks per-conversation state and dispatches intents
// to their handlers.
package session

import (
	"encoding/json"
	"strconv"

	"go.uber.org/zap"

	"github.com/ultradian/alexa-genome-match/internal/model/genome"
)

// testTokenPrefix builds the synthetic sample-account tokens used while
// real account linking is stubbed out. The counter suffix rotates
// through distinct sample identities.
const (
	testTokenPrefix = "GENOMELINKTEST00"
	maxTestUser     = 9
)

// State is the typed form of the session attribute bag carried between
// turns. JSON keys match the attribute names persisted by earlier
// deployments, so in-flight conversations survive an upgrade.
type State struct {
	Data         *genome.DataSets `json:"genome data"`
	LastSpeech   string           `json:"speechOutput,omitempty"`
	LastReprompt string           `json:"repromptText,omitempty"`
	TestUser     int              `json:"testUser,omitempty"`
}

// NewState returns an empty session state.
func NewState() *State {
	return &State{Data: genome.NewDataSets()}
}

// StateFromAttributes decodes the attribute payload of an inbound
// envelope. Missing or malformed attributes degrade to a fresh state.
func StateFromAttributes(raw json.RawMessage, logger *zap.Logger) *State {
	state := NewState()
	if len(raw) == 0 {
		return state
	}
	if err := json.Unmarshal(raw, state); err != nil {
		logger.Warn("discarding malformed session attributes", zap.Error(err))
		return NewState()
	}
	if state.Data == nil {
		state.Data = genome.NewDataSets()
	}
	return state
}

// Attributes encodes the state for the outbound envelope.
func (s *State) Attributes() (json.RawMessage, error) {
	return json.Marshal(s)
}

// Remember records the turn's speech so a repeat request can replay it
// verbatim.
func (s *State) Remember(speech, reprompt string) {
	s.LastSpeech = speech
	s.LastReprompt = reprompt
}

// AccessToken resolves the usable token for this turn. A platform
// token always wins and retires any test identity. Without one, a
// synthetic test token is issued while the test counter is active.
func (s *State) AccessToken(platformToken string) string {
	if platformToken != "" {
		s.TestUser = 0
		return platformToken
	}
	if s.TestUser > 0 {
		return testTokenPrefix + strconv.Itoa(s.TestUser)
	}
	return ""
}

// BeginTestIdentity activates the test-token scheme if no identity is
// in progress.
func (s *State) BeginTestIdentity() {
	if s.TestUser == 0 {
		s.TestUser = 1
	}
}

// ClearAccessToken rotates to the next sample identity after a
// download attempt, capped so the suffix stays a single digit. The
// platform token itself lives outside the session and cannot be
// revoked from here.
func (s *State) ClearAccessToken() {
	if s.TestUser > 0 && s.TestUser < maxTestUser {
		s.TestUser++
	}
}
