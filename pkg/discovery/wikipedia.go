package discovery

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

const wikipediaEndpoint = "https://en.wikipedia.org/api/rest_v1/page/summary/"

type wikipediaSummary struct {
	Title       string `json:"title"`
	Extract     string `json:"extract"`
	Type        string `json:"type"`
	ContentURLs struct {
		Desktop struct {
			Page string `json:"page"`
		} `json:"desktop"`
	} `json:"content_urls"`
}

// lookupWikipedia resolves single terms to article summaries.
// Disambiguation pages are skipped since they carry no content.
func lookupWikipedia(ctx context.Context, client *http.Client, terms []string) ([]Resource, error) {
	var resources []Resource
	var lastErr error
	for _, term := range terms {
		page := url.PathEscape(strings.ReplaceAll(strings.TrimSpace(term), " ", "_"))
		var summary wikipediaSummary
		if err := fetchJSON(ctx, client, wikipediaEndpoint+page, &summary); err != nil {
			lastErr = err
			continue
		}
		if summary.Type == "disambiguation" || summary.Extract == "" {
			continue
		}
		resources = append(resources, Resource{
			Title:       summary.Title,
			Source:      "Wikipedia",
			URL:         summary.ContentURLs.Desktop.Page,
			Description: summary.Extract,
			Type:        "Encyclopedia",
			Quality:     "High",
		})
	}
	if len(resources) == 0 && lastErr != nil {
		return nil, lastErr
	}
	return resources, nil
}
