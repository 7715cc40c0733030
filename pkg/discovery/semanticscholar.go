package discovery

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

const semanticScholarEndpoint = "https://api.semanticscholar.org/graph/v1/paper/search"

type semanticScholarResponse struct {
	Data []struct {
		Title    string `json:"title"`
		Abstract string `json:"abstract"`
		URL      string `json:"url"`
		Year     int    `json:"year"`
		Authors  []struct {
			Name string `json:"name"`
		} `json:"authors"`
	} `json:"data"`
}

func searchSemanticScholar(ctx context.Context, client *http.Client, query string, max int) ([]Paper, error) {
	endpoint := fmt.Sprintf("%s?query=%s&limit=%d&fields=title,abstract,url,year,authors",
		semanticScholarEndpoint, url.QueryEscape(query), max)

	var resp semanticScholarResponse
	if err := fetchJSON(ctx, client, endpoint, &resp); err != nil {
		return nil, err
	}

	papers := make([]Paper, 0, len(resp.Data))
	for _, p := range resp.Data {
		authors := make([]string, 0, len(p.Authors))
		for _, a := range p.Authors {
			authors = append(authors, a.Name)
		}
		published := ""
		if p.Year > 0 {
			published = fmt.Sprint(p.Year)
		}
		papers = append(papers, Paper{
			Title:     p.Title,
			Authors:   authors,
			Abstract:  p.Abstract,
			URL:       p.URL,
			Source:    "Semantic Scholar",
			Published: published,
		})
	}
	return papers, nil
}
