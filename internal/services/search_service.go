package services

import (
	"context"

	"rentmap-backend/internal/models"
	"rentmap-backend/internal/translator"
	"rentmap-backend/pkg/lbc"
	"rentmap-backend/pkg/logger"
)

// SearchService orchestrates one search: translate the filter form, issue the
// upstream call, normalize every result record in upstream order.
type SearchService struct {
	client     *lbc.Client
	translator translator.QueryTranslator
	normalizer translator.ListingNormalizer
}

func NewSearchService(
	client *lbc.Client,
	queryTrans translator.QueryTranslator,
	normalizer translator.ListingNormalizer,
) *SearchService {
	return &SearchService{
		client:     client,
		translator: queryTrans,
		normalizer: normalizer,
	}
}

// Search fails with *lbc.UpstreamError when the upstream call does not
// complete successfully. It never validates the request: the translator is
// total, garbage input just means fewer active filters.
func (s *SearchService) Search(ctx context.Context, req *models.SearchRequest) ([]models.Listing, error) {
	body := s.translator.BuildSearchBody(req)

	hits, err := s.client.Search(ctx, body)
	if err != nil {
		logger.GlobalLogger.Errorf("Search failed: zipcodes=%q, error=%v", req.Zipcodes, err)
		return nil, err
	}

	listings := make([]models.Listing, 0, len(hits))
	for _, hit := range hits {
		listings = append(listings, s.normalizer.Normalize(hit))
	}

	logger.GlobalLogger.Debugf("Search returned %d listings: zipcodes=%q", len(listings), req.Zipcodes)
	return listings, nil
}
