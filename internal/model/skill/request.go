// Package skill defines the speech-platform request and response
// envelopes exchanged with the skill endpoint.
package skill

import "encoding/json"

// Request types carried in the envelope.
const (
	TypeLaunchRequest       = "LaunchRequest"
	TypeIntentRequest       = "IntentRequest"
	TypeSessionEndedRequest = "SessionEndedRequest"
)

// Intent names the skill responds to.
const (
	IntentLoad    = "LoadIntent"
	IntentName    = "NameIntent"
	IntentList    = "ListIntent"
	IntentCompare = "CompareIntent"
	IntentRepeat  = "AMAZON.RepeatIntent"
	IntentCancel  = "AMAZON.CancelIntent"
	IntentStop    = "AMAZON.StopIntent"
	IntentHelp    = "AMAZON.HelpIntent"
)

// Slot names used by NameIntent and CompareIntent.
const (
	SlotName  = "name"
	SlotNameA = "nameA"
	SlotNameB = "nameB"
)

// RequestEnvelope is the inbound message from the speech platform.
type RequestEnvelope struct {
	Version string  `json:"version"`
	Session Session `json:"session"`
	Request Request `json:"request"`
}

// Session carries the user identity and the attributes persisted across
// turns of one conversation.
type Session struct {
	SessionID  string          `json:"sessionId,omitempty"`
	User       User            `json:"user"`
	Attributes json.RawMessage `json:"attributes,omitempty"`
	New        bool            `json:"new,omitempty"`
}

// User identifies the caller; AccessToken is set only after account
// linking completes.
type User struct {
	UserID      string `json:"userId"`
	AccessToken string `json:"accessToken,omitempty"`
}

// Request is the typed payload of one turn.
type Request struct {
	Type      string `json:"type"`
	RequestID string `json:"requestId,omitempty"`
	Locale    string `json:"locale,omitempty"`
	Intent    Intent `json:"intent,omitempty"`
}

// Intent names the user's action and carries its slot values.
type Intent struct {
	Name  string          `json:"name"`
	Slots map[string]Slot `json:"slots,omitempty"`
}

// Slot is one named value captured from the utterance.
type Slot struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// SlotValue returns the value of the named slot, or "" when the slot is
// absent or unfilled.
func (i Intent) SlotValue(name string) string {
	return i.Slots[name].Value
}
