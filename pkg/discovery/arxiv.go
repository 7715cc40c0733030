package discovery

import (
	"ai-study-assistant-be/pkg/utils"
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
)

const arxivEndpoint = "http://export.arxiv.org/api/query"

type arxivFeed struct {
	Entries []arxivEntry `xml:"entry"`
}

type arxivEntry struct {
	Title     string        `xml:"title"`
	Summary   string        `xml:"summary"`
	ID        string        `xml:"id"`
	Published string        `xml:"published"`
	Authors   []arxivAuthor `xml:"author"`
}

type arxivAuthor struct {
	Name string `xml:"name"`
}

// searchArxiv queries the arXiv Atom API for papers matching the query.
func searchArxiv(ctx context.Context, client *http.Client, query string, max int) ([]Paper, error) {
	endpoint := fmt.Sprintf("%s?search_query=all:%s&start=0&max_results=%d",
		arxivEndpoint, url.QueryEscape(fmt.Sprintf("%q", query)), max)

	body, err := fetch(ctx, client, endpoint)
	if err != nil {
		return nil, err
	}

	var feed arxivFeed
	if err := xml.Unmarshal(body, &feed); err != nil {
		return nil, fmt.Errorf("decode arxiv feed: %w", err)
	}

	papers := make([]Paper, 0, len(feed.Entries))
	for _, e := range feed.Entries {
		authors := make([]string, 0, len(e.Authors))
		for _, a := range e.Authors {
			authors = append(authors, a.Name)
		}
		papers = append(papers, Paper{
			Title:     utils.CleanWhitespace(e.Title),
			Authors:   authors,
			Abstract:  utils.CleanWhitespace(e.Summary),
			URL:       e.ID,
			Source:    "arXiv",
			Published: e.Published,
		})
	}
	return papers, nil
}
