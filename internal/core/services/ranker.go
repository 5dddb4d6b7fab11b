package services

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/vocalis-labs/vocalis/internal/core/domain"
	"github.com/vocalis-labs/vocalis/internal/core/ports/driven"
	"github.com/vocalis-labs/vocalis/internal/core/ports/driving"
	"github.com/vocalis-labs/vocalis/internal/logger"
)

// Ensure RankService implements the interface.
var _ driving.Searcher = (*RankService)(nil)

const (
	// DefaultSearchLimit is used when the caller passes limit <= 0.
	DefaultSearchLimit = 5

	// prefilterCap bounds the coarse candidate set before ranking.
	prefilterCap = 300

	// minScore discards candidates the composite score cannot defend.
	minScore = 70.0
)

// extensionIntents maps spoken document-type keywords to extensions.
var extensionIntents = map[string]string{
	"pdf":          ".pdf",
	"word":         ".docx",
	"doc":          ".docx",
	"excel":        ".xlsx",
	"sheet":        ".xlsx",
	"powerpoint":   ".pptx",
	"presentation": ".pptx",
}

// RankService turns free-text queries into ranked catalog entries.
type RankService struct {
	store driven.CatalogStore

	// now is injectable so recency scoring is testable.
	now func() time.Time
}

// NewRankService creates a ranking engine over the catalog store.
func NewRankService(store driven.CatalogStore) *RankService {
	return &RankService{
		store: store,
		now:   time.Now,
	}
}

// scoredEntry pairs a candidate with its composite score.
type scoredEntry struct {
	entry domain.FileSystemEntry
	score float64
}

// Search returns up to limit entries ordered by descending score.
// An empty or unmatchable query yields an empty list.
func (s *RankService) Search(ctx context.Context, query string, limit int) ([]domain.FileSystemEntry, error) {
	logger.Section("Search Execution")
	logger.Debug("Query: %q", query)

	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	normalized := normalizeQuery(query)
	tokens := strings.Fields(normalized)
	if len(tokens) == 0 {
		logger.Debug("Empty query, returning no results")
		return []domain.FileSystemEntry{}, nil
	}
	logger.Debug("Normalized: %q, tokens: %v, limit: %d", normalized, tokens, limit)

	candidates, err := s.store.QueryCandidates(ctx, tokens, prefilterCap)
	if err != nil {
		return nil, fmt.Errorf("prefilter: %w", err)
	}
	logger.Debug("Prefilter: %d candidates", len(candidates))

	now := s.now()
	scored := make([]scoredEntry, 0, len(candidates))
	for _, candidate := range candidates {
		score := scoreCandidate(normalized, tokens, candidate, now)
		if score < minScore {
			continue
		}
		scored = append(scored, scoredEntry{entry: candidate, score: score})
	}

	// Stable: ties keep prefilter order, so results are deterministic.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}

	results := make([]domain.FileSystemEntry, len(scored))
	for i, sc := range scored {
		results[i] = sc.entry
		logger.Debug("  [%d] %.1f %s", i+1, sc.score, sc.entry.Path)
	}

	logger.Info("Final results: %d", len(results))
	return results, nil
}

// scoreCandidate sums the seven independent scoring terms.
func scoreCandidate(query string, tokens []string, candidate domain.FileSystemEntry, now time.Time) float64 {
	name := normalizeFilename(candidate.Name)
	path := strings.ToLower(candidate.Path)

	return fuzzyBase(query, name, path) +
		exactBoost(query, name) +
		nameVsPathBoost(query, name) +
		recencyBoost(candidate.LastModified, now) +
		extensionIntentBoost(query, candidate.Extension) +
		folderContextBoost(tokens, path) -
		depthPenalty(path)
}

// normalizeQuery and normalizeFilename share one rule set: strip a file
// extension if present, turn separators into spaces, collapse
// whitespace, lowercase.
func normalizeQuery(query string) string {
	return normalizeFilename(query)
}

func normalizeFilename(name string) string {
	if ext := filepath.Ext(name); ext != "" {
		name = strings.TrimSuffix(name, ext)
	}
	name = strings.NewReplacer("_", " ", "-", " ").Replace(name)
	name = strings.Join(strings.Fields(name), " ")
	return strings.ToLower(name)
}

// fuzzyBase is the token-set similarity against the better of the
// normalized filename and the lowercased path, in [0,100].
func fuzzyBase(query, name, path string) float64 {
	nameScore := fuzzy.TokenSetRatio(query, name)
	pathScore := fuzzy.TokenSetRatio(query, path)
	if pathScore > nameScore {
		return float64(pathScore)
	}
	return float64(nameScore)
}

// exactBoost rewards exact (+40) or substring (+20) filename matches.
func exactBoost(query, name string) float64 {
	switch {
	case query == name:
		return 40
	case strings.Contains(name, query):
		return 20
	default:
		return 0
	}
}

// nameVsPathBoost prefers filename hits over path-only hits (+15).
// It intentionally stacks with the +20 substring branch of exactBoost.
func nameVsPathBoost(query, name string) float64 {
	if strings.Contains(name, query) {
		return 15
	}
	return 0
}

// recencyBoost rewards recently modified entries.
func recencyBoost(lastModified, now time.Time) float64 {
	age := now.Sub(lastModified)
	switch {
	case age < 24*time.Hour:
		return 20
	case age < 7*24*time.Hour:
		return 10
	case age < 30*24*time.Hour:
		return 5
	default:
		return 0
	}
}

// extensionIntentBoost rewards candidates whose extension matches a
// document-type keyword in the query (+25).
func extensionIntentBoost(query, extension string) float64 {
	for keyword, ext := range extensionIntents {
		if strings.Contains(query, keyword) && extension == ext {
			return 25
		}
	}
	return 0
}

// folderContextBoost adds +5 for every query token found in the path,
// cumulative across tokens.
func folderContextBoost(tokens []string, path string) float64 {
	boost := 0.0
	for _, token := range tokens {
		if strings.Contains(path, token) {
			boost += 5
		}
	}
	return boost
}

// depthPenalty subtracts 0.5 per path separator: shallow paths win ties.
func depthPenalty(path string) float64 {
	return 0.5 * float64(strings.Count(path, string(filepath.Separator)))
}
