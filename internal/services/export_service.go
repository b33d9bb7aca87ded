package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"rentmap-backend/internal/models"
)

// csvHeader is a fixed external contract; column order must not change.
var csvHeader = []string{"url", "title", "price", "surface", "pieces", "chambres", "location", "lat", "lng", "state", "note"}

// ExportService renders a result batch plus the user's stored decisions as CSV.
type ExportService struct {
	decisions *DecisionService
}

func NewExportService(decisions *DecisionService) *ExportService {
	return &ExportService{decisions: decisions}
}

func (s *ExportService) Export(ctx context.Context, userID string, listings []models.Listing) ([]byte, error) {
	stored, err := s.decisions.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	byURL := make(map[string]models.Decision, len(stored))
	for _, d := range stored {
		byURL[d.ListingURL] = d
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %v", err)
	}

	for _, listing := range listings {
		lat, lng := "", ""
		if listing.Coords != nil {
			lat = strconv.FormatFloat(listing.Coords[0], 'f', -1, 64)
			lng = strconv.FormatFloat(listing.Coords[1], 'f', -1, 64)
		}
		decision := byURL[listing.URL]
		row := []string{
			listing.URL,
			listing.Title,
			listing.Price,
			listing.Surface,
			listing.Pieces,
			listing.Chambres,
			listing.Location,
			lat,
			lng,
			decision.State,
			decision.Note,
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %v", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %v", err)
	}
	return buf.Bytes(), nil
}
