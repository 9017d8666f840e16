// Command skilltester drives the intent dispatcher from a terminal so
// dialogue flows can be exercised without a speech device or a real
// genome link account.
//
// Commands: launch, load, name <name>, list, compare <a> <b>, repeat,
// help, stop, end, quit.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"hash/fnv"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/ultradian/alexa-genome-match/internal/model/genome"
	"github.com/ultradian/alexa-genome-match/internal/model/skill"
	"github.com/ultradian/alexa-genome-match/internal/service/report"
	"github.com/ultradian/alexa-genome-match/internal/service/session"
	"github.com/ultradian/alexa-genome-match/internal/store"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file, using system environment: %v", err)
	}

	user := flag.String("user", "tester", "user identifier for the simulated session")
	loc := flag.String("locale", "en-US", "request locale")
	seed := flag.Int("seed", 0, "number of sample data sets to preload")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	st := store.NewMemory()
	if *seed > 0 {
		if err := st.Put(ctx, *user, seedDataSets(*seed)); err != nil {
			log.Fatalf("failed to seed store: %v", err)
		}
		log.Printf("seeded %d sample data sets for %s", *seed, *user)
	}

	fetcher := report.NewFetcher(sampleProvider{}, report.DefaultFetchTimeout, logger)
	dispatcher := session.NewDispatcher(st, fetcher, logger)

	runLoop(ctx, dispatcher, *user, *loc)
}

func runLoop(ctx context.Context, dispatcher *session.Dispatcher, user, loc string) {
	env := &skill.RequestEnvelope{
		Version: "1.0",
		Session: skill.Session{User: skill.User{UserID: user}},
	}

	fmt.Println("genome match tester; type launch to begin, quit to exit")
	scanner := bufio.NewScanner(os.Stdin)
	for fmt.Print("> "); scanner.Scan(); fmt.Print("> ") {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		request, ok := buildRequest(fields, loc)
		if !ok {
			if fields[0] == "quit" {
				return
			}
			fmt.Println("commands: launch, load, name <name>, list, compare <a> <b>, repeat, help, stop, end, quit")
			continue
		}
		env.Request = request

		response, err := dispatcher.Handle(ctx, env)
		if err != nil {
			log.Printf("dispatch error: %v", err)
			continue
		}
		env.Session.Attributes = response.SessionAttributes

		if speech := response.Response.OutputSpeech; speech != nil {
			fmt.Println("  speech:  ", stripSSML(speech.SSML))
		}
		if reprompt := response.Response.Reprompt; reprompt != nil {
			fmt.Println("  reprompt:", stripSSML(reprompt.OutputSpeech.SSML))
		}
		if response.Response.Card != nil {
			fmt.Println("  card:    ", response.Response.Card.Type)
		}
		if response.Response.ShouldEndSession {
			fmt.Println("  session ended")
			env.Session.Attributes = nil
		}
	}
}

func buildRequest(fields []string, loc string) (skill.Request, bool) {
	request := skill.Request{Type: skill.TypeIntentRequest, Locale: loc}
	switch fields[0] {
	case "launch":
		request.Type = skill.TypeLaunchRequest
	case "end":
		request.Type = skill.TypeSessionEndedRequest
	case "load":
		request.Intent = skill.Intent{Name: skill.IntentLoad}
	case "name":
		request.Intent = skill.Intent{
			Name:  skill.IntentName,
			Slots: map[string]skill.Slot{skill.SlotName: {Name: skill.SlotName, Value: strings.Join(fields[1:], " ")}},
		}
	case "list":
		request.Intent = skill.Intent{Name: skill.IntentList}
	case "compare":
		if len(fields) != 3 {
			return skill.Request{}, false
		}
		request.Intent = skill.Intent{
			Name: skill.IntentCompare,
			Slots: map[string]skill.Slot{
				skill.SlotNameA: {Name: skill.SlotNameA, Value: fields[1]},
				skill.SlotNameB: {Name: skill.SlotNameB, Value: fields[2]},
			},
		}
	case "repeat":
		request.Intent = skill.Intent{Name: skill.IntentRepeat}
	case "help":
		request.Intent = skill.Intent{Name: skill.IntentHelp}
	case "stop":
		request.Intent = skill.Intent{Name: skill.IntentStop}
	default:
		return skill.Request{}, false
	}
	return request, true
}

func stripSSML(s string) string {
	s = strings.TrimPrefix(s, "<speak>")
	return strings.TrimSuffix(s, "</speak>")
}

// sampleSummaries index by score, shaped like real report texts so the
// phrase cleaner has something to chew on.
var sampleSummaries = []string{
	"Weak tendency",
	"Slight tendency",
	"Intermediate tendency",
	"Stronger tendency",
	"Strong tendency",
}

// sampleProvider fabricates deterministic reports: the score depends
// on the token and trait, so each rotated test identity produces a
// distinct but repeatable data set.
type sampleProvider struct{}

func (sampleProvider) Fetch(_ context.Context, trait, token string) (report.Summary, error) {
	h := fnv.New32a()
	_, _ = h.Write([]byte(token + "/" + trait))
	score := int(h.Sum32() % 5)
	return report.Summary{Score: score, Text: sampleSummaries[score]}, nil
}

func seedDataSets(n int) *genome.DataSets {
	data := genome.NewDataSets()
	for i := 0; i < n; i++ {
		record := make(genome.TraitRecord, len(genome.Traits))
		for j, trait := range genome.Traits {
			score := (i + j) % 5
			record[trait] = genome.TraitValue{
				Score:  score,
				Phrase: report.CleanPhrase(trait, sampleSummaries[score]),
			}
		}
		data.Put(fmt.Sprintf("sample%d", i+1), record)
	}
	return data
}
