// Package awards maps free text onto the ceremony's fixed category taxonomy.
// Matching is tiered: exact/alias patterns, then coarse keyword rules, then
// fuzzy edit-distance resolution for mangled "best ..." fragments.
package awards

import "strings"

// Canonical is the closed set of official category names, in declared order.
// Iteration order is the deterministic tie-break for overlapping matches.
var Canonical = []string{
	"best motion picture - drama",
	"best motion picture - comedy or musical",
	"best performance by an actor in a motion picture - drama",
	"best performance by an actress in a motion picture - drama",
	"best performance by an actor in a motion picture - comedy or musical",
	"best performance by an actress in a motion picture - comedy or musical",
	"best performance by an actor in a supporting role in a motion picture",
	"best performance by an actress in a supporting role in a motion picture",
	"best director - motion picture",
	"best screenplay - motion picture",
	"best original score - motion picture",
	"best original song - motion picture",
	"best animated feature film",
	"best foreign language film",
	"best television series - drama",
	"best television series - comedy or musical",
	"best mini-series or motion picture made for television",
	"best performance by an actor in a television series - drama",
	"best performance by an actress in a television series - drama",
	"best performance by an actor in a television series - comedy or musical",
	"best performance by an actress in a television series - comedy or musical",
	"best performance by an actor in a mini-series or motion picture made for television",
	"best performance by an actress in a mini-series or motion picture made for television",
	"best performance by an actor in a supporting role in a series, mini-series or motion picture made for television",
	"best performance by an actress in a supporting role in a series, mini-series or motion picture made for television",
	"cecil b. demille award",
}

// Aliases are curated shorthand forms fans actually type, keyed by canonical
// name. Each alias matches with the same flexible separator rules as the
// canonical form.
var Aliases = map[string][]string{
	"best motion picture - drama":                                                                                        {"best picture drama", "best motion picture drama", "best film drama"},
	"best motion picture - comedy or musical":                                                                            {"best picture musical", "best picture comedy", "best motion picture musical", "best motion picture comedy"},
	"best director - motion picture":                                                                                     {"best director"},
	"best screenplay - motion picture":                                                                                   {"best screenplay", "best original screenplay"},
	"best original score - motion picture":                                                                               {"best score", "best original score"},
	"best original song - motion picture":                                                                                {"best song", "best original song"},
	"best animated feature film":                                                                                         {"best animated film", "best animated feature"},
	"best foreign language film":                                                                                         {"best foreign film"},
	"best television series - drama":                                                                                     {"best tv series drama", "best tv drama"},
	"best television series - comedy or musical":                                                                         {"best tv series comedy", "best tv comedy", "best tv musical"},
	"best mini-series or motion picture made for television":                                                             {"best miniseries", "best tv movie", "best limited series"},
	"best performance by an actor in a motion picture - drama":                                                           {"best actor drama", "actor drama"},
	"best performance by an actress in a motion picture - drama":                                                         {"best actress drama", "actress drama"},
	"best performance by an actor in a motion picture - comedy or musical":                                               {"best actor comedy", "actor musical", "actor comedy"},
	"best performance by an actress in a motion picture - comedy or musical":                                             {"best actress comedy", "actress musical", "actress comedy"},
	"best performance by an actor in a supporting role in a motion picture":                                              {"best supporting actor"},
	"best performance by an actress in a supporting role in a motion picture":                                            {"best supporting actress"},
	"best performance by an actor in a television series - drama":                                                        {"best actor tv drama"},
	"best performance by an actress in a television series - drama":                                                      {"best actress tv drama"},
	"best performance by an actor in a television series - comedy or musical":                                            {"best actor tv comedy", "best actor tv musical"},
	"best performance by an actress in a television series - comedy or musical":                                          {"best actress tv comedy", "best actress tv musical"},
	"best performance by an actor in a mini-series or motion picture made for television":                                {"best actor miniseries", "best actor tv movie", "best actor limited series"},
	"best performance by an actress in a mini-series or motion picture made for television":                              {"best actress miniseries", "best actress tv movie", "best actress limited series"},
	"best performance by an actor in a supporting role in a series, mini-series or motion picture made for television":   {"best supporting actor tv"},
	"best performance by an actress in a supporting role in a series, mini-series or motion picture made for television": {"best supporting actress tv"},
	"cecil b. demille award":                                                                                             {"cecil b demille", "lifetime achievement"},
}

// WinnerVerbs are the celebratory verbs that signal a win; also used as
// phrase boundaries when mining award names out of free text.
var WinnerVerbs = []string{
	"wins", "won", "winner", "takes", "took", "goes to", "goes-to",
	"accepts", "accepted", "congrats", "congratulations", "awarded", "award goes to",
	"best goes to", "picks up", "takes home", "snags", "grabs", "nabs",
}

// IsCanonical reports whether name is a member of the fixed taxonomy.
func IsCanonical(name string) bool {
	for _, a := range Canonical {
		if a == name {
			return true
		}
	}
	return false
}

// ExpectedLabels returns the entity labels a candidate must carry to be
// plausible for the award: acting and lifetime categories expect people,
// picture and song categories expect works.
func ExpectedLabels(award string) []string {
	a := award
	if containsAny(a, "actor", "actress", "director", "demille") {
		return []string{"PERSON"}
	}
	if containsAny(a, "television series", "mini-series", "series") {
		return []string{"WORK_OF_ART", "ORG", "EVENT"}
	}
	if containsAny(a, "motion picture", "film", "song", "score", "screenplay") {
		return []string{"WORK_OF_ART"}
	}
	return nil
}

// ExpectsPerson reports whether the award's winner should be a person.
func ExpectsPerson(award string) bool {
	for _, l := range ExpectedLabels(award) {
		if l == "PERSON" {
			return true
		}
	}
	return false
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
