package engine

import (
	"sort"
	"strings"
	"unicode"
)

// CatalogItem is an external, read-only product entry.
type CatalogItem struct {
	ID             string
	Name           string
	Brand          string
	Category       string
	EffectTags     []string
	KeyIngredients []string
	Note           string
}

// Recommendation is a catalog item attributed to exactly one prioritized need.
type Recommendation struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Brand          string   `json:"brand"`
	Category       string   `json:"category"`
	Reason         string   `json:"reason"`
	Focus          []string `json:"focus"`
	KeyIngredients []string `json:"key_ingredients"`
	Note           string   `json:"note,omitempty"`
}

const (
	rankWeight      = 1.5
	categoryBonus   = 1.2
	ingredientBonus = 0.3
	maxIngredients  = 4
)

type candidate struct {
	rec   Recommendation
	score float64
	order int
}

// Recommend scores catalog items against the prioritized needs. Each item is
// attributed to its single best-matching need; items matching no need are
// dropped. The result is ranked by descending match score with catalog order
// as the stable tie-break, and contains no duplicate ids.
func Recommend(catalog []CatalogItem, needs []PrioritizedNeed, ctx *Context, reg *Registry) []Recommendation {
	synonyms := make(map[NeedTag]map[string]bool, len(needs))
	categories := make(map[NeedTag]map[string]bool, len(needs))
	for _, n := range needs {
		def, ok := reg.Need(n.ID)
		if !ok {
			continue
		}
		synonyms[n.ID] = normalizeSet(def.Synonyms)
		categories[n.ID] = normalizeSet(def.PreferredCategories)
	}

	candidates := make([]candidate, 0, len(catalog))
	for i, item := range catalog {
		tags := normalizeSet(item.EffectTags)
		category := normalizeToken(item.Category)

		bestRank := -1
		bestScore := 0.0
		for rank, n := range needs {
			if !intersects(tags, synonyms[n.ID]) {
				continue
			}
			score := float64(len(needs)-rank) * rankWeight
			if category != "" && categories[n.ID][category] {
				score += categoryBonus
			}
			if bestRank == -1 || score > bestScore {
				bestRank = rank
				bestScore = score
			}
		}
		if bestRank == -1 {
			continue
		}

		if len(item.KeyIngredients) > 0 {
			bestScore += ingredientBonus
		}

		need := needs[bestRank]
		reason, ok := ctx.FirstReason(need.ID)
		if !ok {
			if def, defOK := reg.Need(need.ID); defOK {
				reason = def.FallbackReason
			}
		}

		ingredients := item.KeyIngredients
		if len(ingredients) > maxIngredients {
			ingredients = ingredients[:maxIngredients]
		}

		candidates = append(candidates, candidate{
			rec: Recommendation{
				ID:             item.ID,
				Name:           item.Name,
				Brand:          item.Brand,
				Category:       item.Category,
				Reason:         reason,
				Focus:          []string{need.Label},
				KeyIngredients: append([]string(nil), ingredients...),
				Note:           item.Note,
			},
			score: bestScore,
			order: i,
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].order < candidates[j].order
	})

	seen := make(map[string]bool, len(candidates))
	recs := make([]Recommendation, 0, len(candidates))
	for _, c := range candidates {
		if seen[c.rec.ID] {
			continue
		}
		seen[c.rec.ID] = true
		recs = append(recs, c.rec)
	}
	return recs
}

// SplitTags accepts the catalog's loose tag format: an array already split, or
// a single comma/pipe-delimited string.
func SplitTags(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		for _, part := range strings.FieldsFunc(r, func(c rune) bool {
			return c == ',' || c == '|'
		}) {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// normalizeToken lowercases and collapses every non-letter/digit run into a
// single underscore, so "Vitamin C", "vitamin-c" and "vitamin_c" all match.
func normalizeToken(s string) string {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastUnderscore = false
			continue
		}
		if !lastUnderscore && b.Len() > 0 {
			b.WriteByte('_')
			lastUnderscore = true
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}

func normalizeSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		if t := normalizeToken(v); t != "" {
			set[t] = true
		}
	}
	return set
}

func intersects(a, b map[string]bool) bool {
	for t := range a {
		if b[t] {
			return true
		}
	}
	return false
}
