package session

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ultradian/alexa-genome-match/internal/locale"
	"github.com/ultradian/alexa-genome-match/internal/model/genome"
	"github.com/ultradian/alexa-genome-match/internal/model/skill"
	"github.com/ultradian/alexa-genome-match/internal/service/compare"
	"github.com/ultradian/alexa-genome-match/internal/store"
)

// ReportLoader downloads a complete trait record for an access token.
type ReportLoader interface {
	FetchAll(ctx context.Context, token string) (genome.TraitRecord, error)
}

// Dispatcher routes envelope requests to intent handlers. State flows
// through the envelope attributes: each turn decodes them, mutates the
// typed state, and returns it with the response. The durable store is
// only read at launch and written at session end.
type Dispatcher struct {
	store   store.Store
	reports ReportLoader
	logger  *zap.Logger
}

// NewDispatcher wires the dispatcher's collaborators.
func NewDispatcher(st store.Store, reports ReportLoader, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{store: st, reports: reports, logger: logger}
}

// Handle processes one envelope and produces the response to return to
// the platform. User-recoverable conditions become spoken responses;
// an error is returned only for malformed requests.
func (d *Dispatcher) Handle(ctx context.Context, env *skill.RequestEnvelope) (*skill.ResponseEnvelope, error) {
	res := locale.Resolve(env.Request.Locale)
	state := StateFromAttributes(env.Session.Attributes, d.logger)

	switch env.Request.Type {
	case skill.TypeLaunchRequest:
		return d.handleLaunch(ctx, env, state, res)
	case skill.TypeIntentRequest:
		return d.handleIntent(ctx, env, state, res)
	case skill.TypeSessionEndedRequest:
		return d.handleSessionEnded(ctx, env, state)
	default:
		return nil, fmt.Errorf("unknown request type %q", env.Request.Type)
	}
}

func (d *Dispatcher) handleIntent(ctx context.Context, env *skill.RequestEnvelope, state *State, res locale.Resource) (*skill.ResponseEnvelope, error) {
	intent := env.Request.Intent
	d.logger.Info("dispatching intent", zap.String("intent", intent.Name))

	switch intent.Name {
	case skill.IntentLoad:
		return d.handleLoad(ctx, env, state, res)
	case skill.IntentName:
		return d.handleName(intent, state, res)
	case skill.IntentList:
		return d.handleList(state, res)
	case skill.IntentCompare:
		return d.handleCompare(intent, state, res)
	case skill.IntentRepeat:
		return d.handleRepeat(state)
	case skill.IntentCancel, skill.IntentStop:
		return d.handleStop(state, res)
	default:
		// AMAZON.HelpIntent and anything unrecognized.
		return d.helpResponse(state, res)
	}
}

func (d *Dispatcher) handleLaunch(ctx context.Context, env *skill.RequestEnvelope, state *State, res locale.Resource) (*skill.ResponseEnvelope, error) {
	userID := d.userID(env)
	data, err := d.store.Get(ctx, userID)
	if err != nil {
		// Degrade to an empty history rather than failing the turn.
		d.logger.Error("loading stored data sets",
			zap.String("userId", userID), zap.Error(err))
		data = genome.NewDataSets()
	}
	state.Data = data

	suffix, reprompt, linkCard := optionsMessages(state.Data, res)
	speech := res.Text(locale.KeyWelcome) + suffix
	state.Remember(speech, reprompt)
	return d.envelope(state, askResponse(speech, reprompt, linkCard))
}

// handleLoad decides between the account-link flow, the forced naming
// detour, and an actual download.
func (d *Dispatcher) handleLoad(ctx context.Context, env *skill.RequestEnvelope, state *State, res locale.Resource) (*skill.ResponseEnvelope, error) {
	token := state.AccessToken(env.Session.User.AccessToken)
	if token == "" {
		return d.linkAccount(state, res)
	}
	if state.Data.Has(genome.Untitled) {
		// The pending set must be named before another download;
		// listing ends with the name prompt.
		return d.handleList(state, res)
	}
	return d.downloadReports(ctx, state, res, token)
}

func (d *Dispatcher) linkAccount(state *State, res locale.Resource) (*skill.ResponseEnvelope, error) {
	if state.Data.Has(genome.Untitled) {
		speech := res.Text(locale.KeyNameless) + res.Text(locale.KeyGiveName)
		return d.envelope(state, skill.Ask(speech, res.Text(locale.KeyGiveName)))
	}
	state.BeginTestIdentity()
	speech := res.Text(locale.KeyLinkAccount)
	reprompt := res.Text(locale.KeyLinkReprompt)
	state.Remember(speech, reprompt)
	return d.envelope(state, skill.AskWithLinkCard(speech, reprompt))
}

func (d *Dispatcher) downloadReports(ctx context.Context, state *State, res locale.Resource, token string) (*skill.ResponseEnvelope, error) {
	record, err := d.reports.FetchAll(ctx, token)
	// The token is single-use: spent on success and discarded on
	// failure so a retry starts from a clean link.
	state.ClearAccessToken()

	var speech, reprompt string
	if err != nil {
		d.logger.Warn("report download failed", zap.Error(err))
		speech = res.Text(locale.KeyLoadError)
		reprompt = res.Text(locale.KeyTryAgain)
	} else {
		state.Data.Put(genome.Untitled, record)
		speech = res.Text(locale.KeyLoadConfirm) + res.Text(locale.KeyNameOption)
		reprompt = res.Text(locale.KeyNameOption)
	}
	state.Remember(speech, reprompt)
	return d.envelope(state, skill.Ask(speech, reprompt))
}

func (d *Dispatcher) handleName(intent skill.Intent, state *State, res locale.Resource) (*skill.ResponseEnvelope, error) {
	if !state.Data.Has(genome.Untitled) {
		suffix, reprompt, linkCard := optionsMessages(state.Data, res)
		speech := res.Text(locale.KeyNoNameless) + suffix
		state.Remember(speech, reprompt)
		return d.envelope(state, askResponse(speech, reprompt, linkCard))
	}

	name := intent.SlotValue(skill.SlotName)
	if name == "" {
		speech := res.Text(locale.KeyGiveName)
		state.Remember(speech, speech)
		return d.envelope(state, skill.Ask(speech, speech))
	}
	if state.Data.Has(name) {
		speech := res.Text(locale.KeyNewName)
		state.Remember(speech, speech)
		return d.envelope(state, skill.Ask(speech, speech))
	}

	state.Data.Rename(genome.Untitled, name)
	suffix, reprompt, linkCard := optionsMessages(state.Data, res)
	speech := res.Textf(locale.KeyNameConfirm, name) + suffix
	state.Remember(speech, reprompt)
	return d.envelope(state, askResponse(speech, reprompt, linkCard))
}

func (d *Dispatcher) handleList(state *State, res locale.Resource) (*skill.ResponseEnvelope, error) {
	names := state.Data.Names()
	var speech string
	if len(names) == 0 {
		speech = res.Text(locale.KeyEmptyList)
	} else {
		speech = res.Text(locale.KeyList) + locale.SpeakList(res, names)
	}
	suffix, reprompt, linkCard := optionsMessages(state.Data, res)
	speech += suffix
	state.Remember(speech, reprompt)
	return d.envelope(state, askResponse(speech, reprompt, linkCard))
}

func (d *Dispatcher) handleCompare(intent skill.Intent, state *State, res locale.Resource) (*skill.ResponseEnvelope, error) {
	if state.Data.Len() < 2 {
		speech := res.Text(locale.KeyMoreData)
		reprompt := res.Text(locale.KeyLoadOption)
		state.Remember(speech, reprompt)
		return d.envelope(state, skill.Ask(speech, reprompt))
	}

	nameA := intent.SlotValue(skill.SlotNameA)
	nameB := intent.SlotValue(skill.SlotNameB)
	if nameA == "" || nameB == "" {
		speech := res.Text(locale.KeySelect)
		reprompt := res.Text(locale.KeySelectReprompt)
		state.Remember(speech, reprompt)
		return d.envelope(state, skill.Ask(speech, reprompt))
	}
	if !state.Data.Has(nameA) || !state.Data.Has(nameB) {
		badName := nameA
		if state.Data.Has(nameA) {
			badName = nameB
		}
		speech := res.Textf(locale.KeyNoNamed, badName) + res.Text(locale.KeySelect)
		reprompt := res.Text(locale.KeySelectReprompt)
		state.Remember(speech, reprompt)
		return d.envelope(state, skill.Ask(speech, reprompt))
	}

	recordA, _ := state.Data.Get(nameA)
	recordB, _ := state.Data.Get(nameB)
	result := compare.Compare(recordA, recordB)
	d.logger.Info("compared data sets",
		zap.String("nameA", nameA), zap.String("nameB", nameB),
		zap.Int("high", len(result.High)), zap.Int("moderate", len(result.Moderate)))

	speech := compare.Speak(result, nameA, nameB, res)
	speech += res.Text(locale.KeyRepeatOption)
	speech += res.Text(locale.KeyLoadOption)
	speech += res.Text(locale.KeyListOption) + res.Text(locale.KeyOr)
	speech += res.Text(locale.KeyCompareOption)
	reprompt := res.Text(locale.KeyLLCReprompt)
	state.Remember(speech, reprompt)
	return d.envelope(state, skill.Ask(speech, reprompt))
}

// handleRepeat replays the last stored speech without mutating state.
func (d *Dispatcher) handleRepeat(state *State) (*skill.ResponseEnvelope, error) {
	return d.envelope(state, skill.Ask(state.LastSpeech, state.LastReprompt))
}

func (d *Dispatcher) handleStop(state *State, res locale.Resource) (*skill.ResponseEnvelope, error) {
	return d.envelope(state, skill.Tell(res.Text(locale.KeyStop)))
}

func (d *Dispatcher) helpResponse(state *State, res locale.Resource) (*skill.ResponseEnvelope, error) {
	return d.envelope(state, skill.Ask(res.Text(locale.KeyHelp), res.Text(locale.KeyHelpReprompt)))
}

// handleSessionEnded persists the data sets; store failures are logged
// and the save dropped, never surfaced to the platform.
func (d *Dispatcher) handleSessionEnded(ctx context.Context, env *skill.RequestEnvelope, state *State) (*skill.ResponseEnvelope, error) {
	userID := d.userID(env)
	if err := d.store.Put(ctx, userID, state.Data); err != nil {
		d.logger.Error("persisting data sets",
			zap.String("userId", userID), zap.Error(err))
	}
	return d.envelope(state, skill.Response{})
}

// userID falls back to a generated identifier so anonymous envelopes
// still get a valid store key.
func (d *Dispatcher) userID(env *skill.RequestEnvelope) string {
	if id := env.Session.User.UserID; id != "" {
		return id
	}
	id := uuid.NewString()
	d.logger.Warn("envelope without user id", zap.String("generatedId", id))
	return id
}

func (d *Dispatcher) envelope(state *State, response skill.Response) (*skill.ResponseEnvelope, error) {
	attrs, err := state.Attributes()
	if err != nil {
		d.logger.Error("encoding session attributes", zap.Error(err))
		attrs = nil
	}
	return &skill.ResponseEnvelope{
		Version:           "1.0",
		SessionAttributes: attrs,
		Response:          response,
	}, nil
}

func askResponse(speech, reprompt string, linkCard bool) skill.Response {
	if linkCard {
		return skill.AskWithLinkCard(speech, reprompt)
	}
	return skill.Ask(speech, reprompt)
}
