package chatbot

import (
	"sort"
	"strings"
)

// MaxResults caps how many matches Search returns.
const MaxResults = 5

// tokenize lowercases the input and splits it into unique word tokens.
func tokenize(s string) map[string]struct{} {
	out := make(map[string]struct{})
	for _, tok := range strings.Fields(strings.ToLower(s)) {
		tok = strings.Trim(tok, ".,!?;:\"'()")
		if len(tok) < 2 {
			continue
		}
		out[tok] = struct{}{}
	}
	return out
}

// score counts how many query tokens appear in the entry's keywords or
// question, weighted so keyword hits rank above question hits.
func score(query map[string]struct{}, e Entry) float64 {
	if len(query) == 0 {
		return 0
	}
	kw := make(map[string]struct{}, len(e.Keywords))
	for _, k := range e.Keywords {
		kw[strings.ToLower(strings.TrimSpace(k))] = struct{}{}
	}
	qTokens := tokenize(e.Question)

	var s float64
	for tok := range query {
		if _, ok := kw[tok]; ok {
			s += 2
			continue
		}
		if _, ok := qTokens[tok]; ok {
			s++
		}
	}
	return s / float64(len(query))
}

// Search ranks active entries against the query, best first. Entries with
// no token overlap are dropped.
func Search(entries []Entry, query string) []Match {
	qTokens := tokenize(query)
	if len(qTokens) == 0 {
		return nil
	}

	var matches []Match
	for _, e := range entries {
		if !e.Active {
			continue
		}
		if s := score(qTokens, e); s > 0 {
			matches = append(matches, Match{Entry: e, Score: s})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if len(matches) > MaxResults {
		matches = matches[:MaxResults]
	}
	return matches
}
