package skill

import "encoding/json"

// Response envelope limits imposed by the platform: speech must not
// exceed 8000 characters and the whole response 24 kilobytes.

const (
	speechTypeSSML  = "SSML"
	cardLinkAccount = "LinkAccount"
)

// ResponseEnvelope is the outbound message returned to the platform.
type ResponseEnvelope struct {
	Version           string          `json:"version"`
	SessionAttributes json.RawMessage `json:"sessionAttributes,omitempty"`
	Response          Response        `json:"response"`
}

// Response is the speech payload of one turn.
type Response struct {
	OutputSpeech     *OutputSpeech `json:"outputSpeech,omitempty"`
	Card             *Card         `json:"card,omitempty"`
	Reprompt         *Reprompt     `json:"reprompt,omitempty"`
	ShouldEndSession bool          `json:"shouldEndSession"`
}

// OutputSpeech wraps spoken text as SSML.
type OutputSpeech struct {
	Type string `json:"type"`
	SSML string `json:"ssml"`
}

// Card is a visual prompt shown in the companion app.
type Card struct {
	Type string `json:"type"`
}

// Reprompt is spoken when the user stays silent after an ask.
type Reprompt struct {
	OutputSpeech OutputSpeech `json:"outputSpeech"`
}

func ssml(text string) OutputSpeech {
	return OutputSpeech{Type: speechTypeSSML, SSML: "<speak>" + text + "</speak>"}
}

// Tell speaks output and ends the conversation.
func Tell(output string) Response {
	speech := ssml(output)
	return Response{OutputSpeech: &speech, ShouldEndSession: true}
}

// Ask speaks output, keeps the conversation open, and reprompts on
// silence.
func Ask(output, reprompt string) Response {
	speech := ssml(output)
	return Response{
		OutputSpeech:     &speech,
		Reprompt:         &Reprompt{OutputSpeech: ssml(reprompt)},
		ShouldEndSession: false,
	}
}

// TellWithLinkCard is Tell plus an account-linking card.
func TellWithLinkCard(output string) Response {
	response := Tell(output)
	response.Card = &Card{Type: cardLinkAccount}
	return response
}

// AskWithLinkCard is Ask plus an account-linking card.
func AskWithLinkCard(output, reprompt string) Response {
	response := Ask(output, reprompt)
	response.Card = &Card{Type: cardLinkAccount}
	return response
}
