package session

import (
	"github.com/ultradian/alexa-genome-match/internal/locale"
	"github.com/ultradian/alexa-genome-match/internal/model/genome"
)

// optionsMessages builds the "what you can do next" suffix appended to
// most responses, plus its reprompt, from the current data sets:
// nothing stored yet steers to loading, an untitled set demands a name,
// and otherwise the count is stated with either a compare prompt (two
// or more sets) or load-more guidance with account-link instructions
// (fewer). Only the last case needs the link card shown.
func optionsMessages(data *genome.DataSets, res locale.Resource) (message, reprompt string, linkCard bool) {
	if data.Len() == 0 {
		message = res.Text(locale.KeyNoData) + res.Text(locale.KeyLoadOption)
		return message, res.Text(locale.KeyNoDataReprompt), false
	}
	if data.Has(genome.Untitled) {
		message = res.Text(locale.KeyNameless) + res.Text(locale.KeyGiveName)
		return message, res.Text(locale.KeyGiveName), false
	}
	message = res.Textf(locale.KeyDataCount, data.Len())
	if data.Len() >= 2 {
		message += res.Text(locale.KeySelect)
		return message, res.Text(locale.KeySelectReprompt), false
	}
	message += res.Text(locale.KeyMoreData) + res.Text(locale.KeyLinkAccount)
	return message, res.Text(locale.KeyLinkReprompt), true
}
