package lessons

import "strings"

// Document is the text of one generated content item, as far as the
// matcher cares. Any field may be empty; a missing keyword list scores
// like an empty one.
type Document struct {
	Title        string
	Summary      string
	RelatedTopic string
	Keywords     []string
}

// Match scores the document against every catalog lesson and returns the
// best-matching one. The second return is false when no keyword matched
// at all, in which case callers must leave the lesson reference null.
//
// Scoring, per lesson keyword:
//   - +1 if the lowercased title+summary+topic text contains the keyword
//   - +2 if any of the document's own keywords contains the lesson
//     keyword as a substring (case-insensitive)
//
// The catalog is walked in fixed order and the best lesson is replaced
// only on a strictly greater score, so ties keep the earliest entry.
func Match(doc Document) (Lesson, bool) {
	haystack := strings.ToLower(doc.Title + " " + doc.Summary)
	if doc.RelatedTopic != "" {
		haystack += " " + strings.ToLower(doc.RelatedTopic)
	}

	docKeywords := make([]string, 0, len(doc.Keywords))
	for _, k := range doc.Keywords {
		docKeywords = append(docKeywords, strings.ToLower(k))
	}

	var best Lesson
	maxScore := 0
	for _, lesson := range Catalog {
		score := 0
		for _, keyword := range lesson.Keywords {
			kw := strings.ToLower(keyword)
			if strings.Contains(haystack, kw) {
				score++
			}
			for _, dk := range docKeywords {
				if strings.Contains(dk, kw) {
					score += 2
					break
				}
			}
		}
		if score > maxScore {
			maxScore = score
			best = lesson
		}
	}

	return best, maxScore > 0
}
