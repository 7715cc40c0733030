package discovery

import (
	"context"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"
)

const MaxPapers = 15

// PapersAgent finds academic papers across arXiv, Semantic Scholar and
// PubMed.
type PapersAgent struct {
	runner *Runner
	client *http.Client
}

func NewPapersAgent(runner *Runner) *PapersAgent {
	return &PapersAgent{
		runner: runner,
		client: newHTTPClient(20 * time.Second),
	}
}

// Discover returns up to max ranked papers. An all-sources failure
// yields placeholder records instead of an empty list.
func (a *PapersAgent) Discover(ctx context.Context, keywords []string, topic string, max int) []Paper {
	if max <= 0 || max > MaxPapers {
		max = MaxPapers
	}
	primary, combined := buildQueries(keywords, topic)

	strategies := []Strategy[Paper]{
		{Name: "arxiv_topic", Search: func(ctx context.Context) ([]Paper, error) {
			return searchArxiv(ctx, a.client, primary, max)
		}},
		{Name: "semantic_scholar_topic", Search: func(ctx context.Context) ([]Paper, error) {
			return searchSemanticScholar(ctx, a.client, primary, max)
		}},
		{Name: "pubmed_topic", Search: func(ctx context.Context) ([]Paper, error) {
			return searchPubMed(ctx, a.client, primary, max)
		}},
	}
	if combined != primary {
		strategies = append(strategies, Strategy[Paper]{
			Name: "arxiv_keywords",
			Search: func(ctx context.Context) ([]Paper, error) {
				return searchArxiv(ctx, a.client, combined, max)
			},
		})
	}

	papers := Collect(ctx, a.runner, strategies, func(p Paper) string { return p.Title })
	if len(papers) == 0 {
		return placeholderPapers(keywords, topic)
	}

	rankPapers(papers, keywords)
	if len(papers) > max {
		papers = papers[:max]
	}
	return papers
}

// buildQueries derives the primary search term and a combined keyword
// query from what keyword extraction produced.
func buildQueries(keywords []string, topic string) (primary, combined string) {
	primary = strings.TrimSpace(topic)
	if primary == "" && len(keywords) > 0 {
		primary = keywords[0]
	}
	if primary == "" {
		primary = "study material"
	}
	terms := keywords
	if len(terms) > 3 {
		terms = terms[:3]
	}
	combined = strings.TrimSpace(strings.Join(terms, " "))
	if combined == "" {
		combined = primary
	}
	return primary, combined
}

// rankPapers orders by keyword hits, title matches weighted over
// abstract matches. Ties keep accumulation order.
func rankPapers(papers []Paper, keywords []string) {
	score := func(p Paper) int {
		title := strings.ToLower(p.Title)
		abstract := strings.ToLower(p.Abstract)
		s := 0
		for _, kw := range keywords {
			kw = strings.ToLower(kw)
			if strings.Contains(title, kw) {
				s += 2
			}
			if strings.Contains(abstract, kw) {
				s++
			}
		}
		return s
	}
	sort.SliceStable(papers, func(i, j int) bool {
		return score(papers[i]) > score(papers[j])
	})
}

func placeholderPapers(keywords []string, topic string) []Paper {
	terms := keywords
	if len(terms) > 3 {
		terms = terms[:3]
	}
	if len(terms) == 0 {
		terms = []string{topic}
	}
	papers := make([]Paper, 0, len(terms))
	for _, kw := range terms {
		if strings.TrimSpace(kw) == "" {
			continue
		}
		papers = append(papers, Paper{
			Title:    "Academic Paper on " + kw,
			Abstract: "Paper search services are temporarily unavailable. Use the link to search for this topic manually.",
			URL:      "https://scholar.google.com/scholar?q=" + url.QueryEscape(kw),
			Source:   SourcePlaceholder,
		})
	}
	return papers
}
