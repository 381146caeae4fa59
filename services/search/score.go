package search

import "strings"

// Relevance weights. The values and their interplay are load-bearing: callers
// depend on the resulting order (e.g. an exact keyword hit outranking a name
// substring hit but not a name prefix hit), so they must not be retuned.
const (
	scoreNameExact    = 100
	scoreNamePrefix   = 80
	scoreNameWord     = 60
	scoreNameContains = 40

	scoreKeywordExact   = 50
	scoreKeywordPartial = 20

	scoreDescription = 10

	scoreAllWords = 30
	scorePerWord  = 5

	scoreCategoryName = 15
)

// scoreItem computes the relevance of one index entry for the lowercased
// query q and its whitespace-split tokens. The name tiers are mutually
// exclusive; every other bonus stacks on top.
func scoreItem(it *item, q string, words []string) int {
	score := 0

	switch {
	case it.nameLower == q:
		score += scoreNameExact
	case strings.HasPrefix(it.nameLower, q):
		score += scoreNamePrefix
	case strings.Contains(it.nameLower, " "+q) || strings.Contains(it.nameLower, q+" "):
		score += scoreNameWord
	case strings.Contains(it.nameLower, q):
		score += scoreNameContains
	}

	for _, keyword := range it.keywordsLower {
		if keyword == q {
			score += scoreKeywordExact
			break
		}
	}
	for _, keyword := range it.keywordsLower {
		if strings.Contains(keyword, q) || strings.Contains(q, keyword) {
			score += scoreKeywordPartial
		}
	}

	if strings.Contains(it.descriptionLower, q) {
		score += scoreDescription
	}

	if len(words) > 1 {
		matched := 0
		for _, word := range words {
			if wordMatches(it, word) {
				matched++
			}
		}
		if matched == len(words) {
			score += scoreAllWords
		} else if matched > 0 {
			score += scorePerWord * matched
		}
	}

	if it.Type == TypeTool && it.categoryNameLower != "" && strings.Contains(it.categoryNameLower, q) {
		score += scoreCategoryName
	}

	return score
}

func wordMatches(it *item, word string) bool {
	if strings.Contains(it.nameLower, word) {
		return true
	}
	for _, keyword := range it.keywordsLower {
		if strings.Contains(keyword, word) {
			return true
		}
	}
	return strings.Contains(it.descriptionLower, word)
}
