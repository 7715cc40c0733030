package discovery

import (
	"ai-study-assistant-be/pkg/utils"
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

const (
	pubmedSearchEndpoint = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/esearch.fcgi"
	pubmedFetchEndpoint  = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/efetch.fcgi"
)

type pubmedSearchResponse struct {
	ESearchResult struct {
		IDList []string `json:"idlist"`
	} `json:"esearchresult"`
}

type pubmedArticleSet struct {
	Articles []struct {
		PMID    string `xml:"MedlineCitation>PMID"`
		Article struct {
			Title    string   `xml:"ArticleTitle"`
			Abstract []string `xml:"Abstract>AbstractText"`
			Authors  []struct {
				LastName string `xml:"LastName"`
				ForeName string `xml:"ForeName"`
			} `xml:"AuthorList>Author"`
		} `xml:"MedlineCitation>Article"`
	} `xml:"PubmedArticle"`
}

// searchPubMed runs the two step esearch then efetch flow.
func searchPubMed(ctx context.Context, client *http.Client, query string, max int) ([]Paper, error) {
	searchURL := fmt.Sprintf("%s?db=pubmed&term=%s&retmax=%d&retmode=json",
		pubmedSearchEndpoint, url.QueryEscape(query), max)

	var search pubmedSearchResponse
	if err := fetchJSON(ctx, client, searchURL, &search); err != nil {
		return nil, err
	}
	if len(search.ESearchResult.IDList) == 0 {
		return nil, nil
	}

	fetchURL := fmt.Sprintf("%s?db=pubmed&id=%s&retmode=xml",
		pubmedFetchEndpoint, strings.Join(search.ESearchResult.IDList, ","))
	body, err := fetch(ctx, client, fetchURL)
	if err != nil {
		return nil, err
	}

	var set pubmedArticleSet
	if err := xml.Unmarshal(body, &set); err != nil {
		return nil, fmt.Errorf("decode pubmed articles: %w", err)
	}

	papers := make([]Paper, 0, len(set.Articles))
	for _, a := range set.Articles {
		authors := make([]string, 0, len(a.Article.Authors))
		for _, au := range a.Article.Authors {
			authors = append(authors, strings.TrimSpace(au.ForeName+" "+au.LastName))
		}
		papers = append(papers, Paper{
			Title:    utils.CleanWhitespace(a.Article.Title),
			Authors:  authors,
			Abstract: utils.CleanWhitespace(strings.Join(a.Article.Abstract, " ")),
			URL:      "https://pubmed.ncbi.nlm.nih.gov/" + a.PMID + "/",
			Source:   "PubMed",
		})
	}
	return papers, nil
}
