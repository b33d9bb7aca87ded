package lbc

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"rentmap-backend/pkg/logger"
	"rentmap-backend/pkg/metrics"
)

const searchPath = "/finder/search"

// hitsKeys are the top-level keys the finder API has been observed to wrap
// its result collection in. The envelope key has changed across API versions,
// so the first present key wins.
var hitsKeys = []string{"ads", "data", "results"}

// Search performs one finder call and returns the raw result records. The
// finder API is undocumented and rejects requests that do not look like the
// mobile app, hence the fixed client-identity headers. A success response
// without a recognizable result collection is a normal upstream behavior and
// yields zero records, not an error.
func (c *Client) Search(ctx context.Context, body SearchBody) ([]map[string]interface{}, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, &UpstreamError{Status: http.StatusBadGateway, Detail: truncateDetail(err.Error())}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+searchPath, bytes.NewReader(payload))
	if err != nil {
		return nil, &UpstreamError{Status: http.StatusBadGateway, Detail: truncateDetail(err.Error())}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json, text/plain, */*")
	req.Header.Set("User-Agent", "leboncoin/10.0 (iPhone; iOS 16.4; Scale/3.00)")
	req.Header.Set("Origin", "https://www.leboncoin.fr")
	req.Header.Set("Referer", "https://www.leboncoin.fr/")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.UpstreamSearchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamErrorsTotal.WithLabelValues("transport").Inc()
		logger.GlobalLogger.Errorf("Upstream search transport failure: %v", err)
		return nil, &UpstreamError{Status: http.StatusBadGateway, Detail: truncateDetail(err.Error())}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.UpstreamErrorsTotal.WithLabelValues("transport").Inc()
		return nil, &UpstreamError{Status: http.StatusBadGateway, Detail: truncateDetail(err.Error())}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.UpstreamErrorsTotal.WithLabelValues(strconv.Itoa(resp.StatusCode)).Inc()
		logger.GlobalLogger.Errorf("Upstream search failed: status=%d", resp.StatusCode)
		return nil, &UpstreamError{Status: resp.StatusCode, Detail: truncateDetail(string(raw))}
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		logger.GlobalLogger.Errorf("Upstream search returned an unparseable body: %v", err)
		return nil, nil
	}

	return extractHits(doc), nil
}

// extractHits pulls the result records out of whichever envelope key is
// present, skipping entries that are not objects.
func extractHits(doc map[string]interface{}) []map[string]interface{} {
	for _, key := range hitsKeys {
		arr, ok := doc[key].([]interface{})
		if !ok {
			continue
		}
		hits := make([]map[string]interface{}, 0, len(arr))
		for _, entry := range arr {
			if record, ok := entry.(map[string]interface{}); ok {
				hits = append(hits, record)
			}
		}
		return hits
	}
	return nil
}
