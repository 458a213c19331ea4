// Package score ranks candidate directory names against a live query.
package score

import (
	"math"
	"time"
	"unicode"

	"github.com/kk-code-lab/try/internal/textutil"
)

// Tunable weights for the ranking formula.
const (
	datePrefixBonus = 2.0
	lengthSmoothing = 10.0
	createdWeight   = 2.0
	modifiedWeight  = 3.0
)

// Calculate scores text against query, with recency boosts from the
// created/modified timestamps. Zero timestamps contribute nothing, and so
// do timestamps ahead of now. The result is deterministic for a fixed now.
//
// A non-empty query must appear as a case-insensitive ordered subsequence
// of text or the score is exactly 0.
func Calculate(text, query string, created, modified, now time.Time) float64 {
	s := 0.0
	if textutil.HasDatePrefix(text) {
		s += datePrefixBonus
	}

	if query != "" {
		matched, sub := subsequenceScore(text, query)
		if !matched {
			return 0.0
		}
		s += sub.points

		// Reward matches concentrated near the start of the name, then
		// smooth by length so short names win on equal match quality.
		s *= float64(sub.queryLen) / float64(sub.lastPos+1)
		s *= lengthSmoothing / (float64(sub.textLen) + lengthSmoothing)
	}

	if !created.IsZero() && !created.After(now) {
		days := now.Sub(created).Seconds() / 86_400
		s += createdWeight / math.Sqrt(days+1)
	}
	if !modified.IsZero() && !modified.After(now) {
		hours := now.Sub(modified).Seconds() / 3_600
		s += modifiedWeight / math.Sqrt(hours+1)
	}
	return s
}

type subResult struct {
	points   float64
	queryLen int
	textLen  int
	lastPos  int
}

func subsequenceScore(text, query string) (bool, subResult) {
	queryRunes := foldRunes(query)
	textRunes := foldRunes(text)

	res := subResult{
		queryLen: len(queryRunes),
		textLen:  len(textRunes),
	}

	qi := 0
	lastPos := -1
	var prev rune
	hasPrev := false

	for pos, r := range textRunes {
		if qi >= len(queryRunes) {
			break
		}
		if r == queryRunes[qi] {
			res.points += 1.0
			if !hasPrev || !isAlphanumeric(prev) {
				res.points += 1.0 // word boundary
			}
			if lastPos >= 0 {
				gap := float64(pos - lastPos - 1)
				res.points += 1.0 / math.Sqrt(gap+1)
			}
			lastPos = pos
			qi++
		}
		prev = r
		hasPrev = true
	}

	if qi < len(queryRunes) {
		return false, subResult{}
	}
	res.lastPos = lastPos
	return true, res
}

func foldRunes(s string) []rune {
	runes := []rune(s)
	for i, r := range runes {
		runes[i] = unicode.ToLower(r)
	}
	return runes
}

func isAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
