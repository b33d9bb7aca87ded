package translator

import (
	"rentmap-backend/internal/models"
	"rentmap-backend/pkg/lbc"
)

type QueryTranslator interface {
	BuildSearchBody(req *models.SearchRequest) lbc.SearchBody
}

type ListingNormalizer interface {
	Normalize(record map[string]interface{}) models.Listing
}
