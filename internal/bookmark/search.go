package bookmark

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/akolanti/LinkAPI/internal/config"
	"github.com/akolanti/LinkAPI/internal/domain/linkModel"
	"github.com/akolanti/LinkAPI/internal/metrics"
)

type scoredChunk struct {
	chunkId int
	score   float32
}

// Search embeds the query, pulls the top candidate chunks from the vector
// index and folds them into per-document results ranked by each document's
// best chunk score. At most SearchResultLimit documents come back, each with
// its matching chunk ids from best to worst.
func (s *service) Search(ctx context.Context, query string) ([]linkModel.SearchResult, error) {
	inMethodLogger := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY))

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("link_search", time.Since(start)) }()

	matches, err := s.vectors.Query(ctx, query, config.SearchCandidatePoolSize)
	if err != nil {
		return nil, fmt.Errorf("vector query: %w", err)
	}

	// Group chunk hits by owning document, tracking each document's best score.
	docMatches := make(map[string][]scoredChunk)
	docBestScores := make(map[string]float32)
	docOrder := make([]string, 0, len(matches))

	for _, match := range matches {
		docId := match.Metadata.DocumentId
		if _, seen := docBestScores[docId]; !seen {
			docOrder = append(docOrder, docId)
			docBestScores[docId] = match.Score
		} else if match.Score > docBestScores[docId] {
			docBestScores[docId] = match.Score
		}
		docMatches[docId] = append(docMatches[docId], scoredChunk{
			chunkId: match.Metadata.ChunkId,
			score:   match.Score,
		})
	}

	// Rank documents by best score, descending. The comparator is false for
	// NaN on either side, so NaN scores sort as equal to everything and the
	// stable sort keeps their arrival order.
	sort.SliceStable(docOrder, func(i, j int) bool {
		return docBestScores[docOrder[i]] > docBestScores[docOrder[j]]
	})
	if len(docOrder) > config.SearchResultLimit {
		docOrder = docOrder[:config.SearchResultLimit]
	}

	results := make([]linkModel.SearchResult, 0, len(docOrder))
	for _, docId := range docOrder {
		doc, err := s.meta.GetById(ctx, docId)
		if errors.Is(err, linkModel.ErrNotFound) {
			// the index can hold chunks for a document whose record is gone,
			// a hit like that is dropped rather than failing the search
			inMethodLogger.Warn("Skipping hit with no metadata record", "docId", docId)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("resolve document %s: %w", docId, err)
		}

		chunks := docMatches[docId]
		sort.SliceStable(chunks, func(i, j int) bool {
			return chunks[i].score > chunks[j].score
		})
		chunkIds := make([]int, 0, len(chunks))
		for _, c := range chunks {
			chunkIds = append(chunkIds, c.chunkId)
		}

		results = append(results, linkModel.SearchResult{
			Document: doc,
			ChunkIds: chunkIds,
		})
	}

	inMethodLogger.Debug("Search done", "candidates", len(matches), "results", len(results))
	return results, nil
}
