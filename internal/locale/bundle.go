// Package locale holds the spoken message tables for the skill.
//
// When editing messages pay attention to punctuation: speech output is
// concatenated from these fragments, so trailing spaces and periods are
// load-bearing.
package locale

import "fmt"

// DefaultLocale is used when a request carries no locale, an unknown
// locale, or a locale whose table is missing a key.
const DefaultLocale = "en-US"

// Key identifies one message template.
type Key string

const (
	KeyAnd            Key = "AND"
	KeyOr             Key = "OR"
	KeySkillName      Key = "SKILL_NAME"
	KeyHelp           Key = "HELP_MESSAGE"
	KeyHelpReprompt   Key = "HELP_REPROMPT"
	KeyNameOption     Key = "NAME_OPTION"
	KeyListOption     Key = "LIST_OPTION"
	KeyCompareOption  Key = "COMPARE_OPTION"
	KeyLoadOption     Key = "LOAD_OPTION"
	KeyRepeatOption   Key = "REPEAT_OPTION"
	KeyLLCReprompt    Key = "LLC_REPROMPT"
	KeyTryAgain       Key = "TRY_AGAIN_MESSAGE"
	KeyStop           Key = "STOP_MESSAGE"
	KeyWelcome        Key = "WELCOME_MESSAGE"
	KeyNoData         Key = "NO_DATA_MESSAGE"
	KeyNoDataReprompt Key = "NO_DATA_REPROMPT"
	KeyLinkAccount    Key = "GENOMELINK_MESSAGE"
	KeyLinkReprompt   Key = "GENOMELINK_REPROMPT"
	KeyLoadConfirm    Key = "GENOMELOAD_CONFIRM"
	KeyLoadError      Key = "GENOMELOAD_ERROR"
	KeyDataCount      Key = "DATA_COUNT_MESSAGE"
	KeyMoreData       Key = "MORE_DATA_MESSAGE"
	KeyList           Key = "LIST_MESSAGE"
	KeyEmptyList      Key = "EMPTY_LIST_MESSAGE"
	KeySelect         Key = "SELECT_MESSAGE"
	KeySelectReprompt Key = "SELECT_REPROMPT"
	KeyNameless       Key = "NAMELESS_MESSAGE"
	KeyNoNameless     Key = "NO_NAMELESS_MESSAGE"
	KeyNoNamed        Key = "NO_NAMED_MESSAGE"
	KeyGiveName       Key = "GIVE_NAME_MESSAGE"
	KeyNewName        Key = "NEW_NAME_MESSAGE"
	KeyNameConfirm    Key = "NAME_CONFIRM_MESSAGE"
	KeyNoMatch        Key = "NO_MATCH_MESSAGE"
	KeyHighMatch      Key = "HIGH_MATCH_MESSAGE"
	KeyModerateMatch  Key = "MOD_MATCH_MESSAGE"
	KeyMatchStart     Key = "MATCH_START_MESSAGE"
)

var tables = map[string]map[Key]string{
	"en-US": {
		KeyAnd:       "and ",
		KeyOr:        "or ",
		KeySkillName: "Genome match",
		KeyHelp: "This skill compares the traits from two genomes " +
			"that you have access to on genome link. ",
		KeyHelpReprompt: "Try again. ",
		KeyNameOption: "You can give a name to a recently downloaded " +
			"data set by saying name the data, then " +
			"the name like Bob, or mom, or test ",
		KeyListOption: "You can have me say the list of names of the " +
			"data sets by saying who is on my list? ",
		KeyCompareOption: "You can have me compare two data sets by " +
			"saying compare, then the two names. ",
		KeyLoadOption: "You can have me load a new data set by saying " +
			"load more data. ",
		KeyRepeatOption: "Say repeat if you want me to repeat the " +
			"last thing I said. ",
		KeyLLCReprompt:    "Say load data, list names, or compare data.  ",
		KeyTryAgain:       "Try again. ",
		KeyStop:           "Goodbye!",
		KeyWelcome:        "Welcome to genome match. ",
		KeyNoData:         "I have no records of previous data. ",
		KeyNoDataReprompt: "I have no records of previous data. ",
		KeyLinkAccount: "I am sending information to your " +
			"alexa app so you can log into genome " +
			"link with the user name and password for " +
			"the data set you want me to download. " +
			"Go there and click on link account. " +
			"When you are done, say load data. ",
		KeyLinkReprompt: "I'm shutting off while you take " +
			"care of the genome link authentication " +
			"and permissions. Continue when you are " +
			"ready by saying open genome match, " +
			"then load data. ",
		KeyLoadConfirm: "I have downloaded the data set. ",
		KeyLoadError: "I got an error while trying " +
			"to download data. You can try again, " +
			"or you can go back to the alexa app " +
			"and try to link account again. ",
		KeyDataCount: "You have %d data sets you can compare. ",
		KeyMoreData: "You need at least two data sets to be able " +
			"to compare them. Please load a data set. ",
		KeyList:      "I currenly have data for ",
		KeyEmptyList: "Your list of data sets is empty. ",
		KeySelect: "Please pick two names from the list to " +
			"compare them. ",
		KeySelectReprompt: "Please pick two names. ",
		KeyNameless:       "You have an nameless data set. ",
		KeyNoNameless:     "There are no nameless data sets to name. ",
		KeyNoNamed:        "There are no data sets named %s. ",
		KeyGiveName: "What name would you like to give " +
			"this data set? ",
		KeyNewName: "That name is already in use.  Please " +
			"pick another one. ",
		KeyNameConfirm: "I have named the data set %s. ",
		KeyNoMatch: "There are no strong matches in genetic " +
			"similarity for the traits I examined. ",
		KeyHighMatch: "There was a strong match in %d traits. ",
		KeyModerateMatch: "There was a moderately strong match " +
			"in %d traits. ",
		KeyMatchStart: "For %s and %s, ",
	},
	// en-GB has no translations yet; every lookup falls through to
	// the default table.
	"en-GB": {},
}

// Resource resolves message keys for one request's locale.
type Resource struct {
	table    map[Key]string
	fallback map[Key]string
}

// Resolve returns the Resource for loc, falling back to DefaultLocale
// for empty or unknown locales.
func Resolve(loc string) Resource {
	fallback := tables[DefaultLocale]
	table, ok := tables[loc]
	if !ok {
		table = fallback
	}
	return Resource{table: table, fallback: fallback}
}

// Text returns the message for key, consulting the default locale when
// the resolved table has no entry.
func (r Resource) Text(key Key) string {
	if msg, ok := r.table[key]; ok {
		return msg
	}
	return r.fallback[key]
}

// Textf formats the message template for key with args.
func (r Resource) Textf(key Key, args ...any) string {
	return fmt.Sprintf(r.Text(key), args...)
}

// SpeakList punctuates names for speech: a localized "and " joins the
// last pair, commas separate the rest, and the list ends with ". ".
// Two names take no comma ("A and B. "); three or more keep the serial
// comma ("A, B, and C. ").
func SpeakList(r Resource, words []string) string {
	switch len(words) {
	case 0:
		return ""
	case 1:
		return words[0] + ". "
	case 2:
		return words[0] + " " + r.Text(KeyAnd) + words[1] + ". "
	}
	output := ""
	for _, word := range words[:len(words)-1] {
		output += word + ", "
	}
	return output + r.Text(KeyAnd) + words[len(words)-1] + ". "
}
