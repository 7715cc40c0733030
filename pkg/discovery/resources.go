package discovery

import (
	"context"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"
)

const MaxResources = 15

var qualityRank = map[string]int{
	"Excellent": 4,
	"High":      3,
	"Good":      2,
	"Fair":      1,
}

// ResourcesAgent gathers web learning resources: Wikipedia lookups plus
// curated learning platform links built from the extracted keywords.
type ResourcesAgent struct {
	runner *Runner
	client *http.Client
}

func NewResourcesAgent(runner *Runner) *ResourcesAgent {
	return &ResourcesAgent{
		runner: runner,
		client: newHTTPClient(15 * time.Second),
	}
}

func (a *ResourcesAgent) Discover(ctx context.Context, keywords []string, topic string, max int) []Resource {
	if max <= 0 || max > MaxResources {
		max = MaxResources
	}
	primary, _ := buildQueries(keywords, topic)
	terms := keywords
	if len(terms) > 3 {
		terms = terms[:3]
	}
	if len(terms) == 0 {
		terms = []string{primary}
	}

	strategies := []Strategy[Resource]{
		{Name: "wikipedia_terms", Search: func(ctx context.Context) ([]Resource, error) {
			return lookupWikipedia(ctx, a.client, terms)
		}},
		{Name: "educational_platforms", Search: func(ctx context.Context) ([]Resource, error) {
			return educationalPlatforms(primary), nil
		}},
		{Name: "academic_platforms", Search: func(ctx context.Context) ([]Resource, error) {
			return academicPlatforms(primary), nil
		}},
		{Name: "tutorial_platforms", Search: func(ctx context.Context) ([]Resource, error) {
			return tutorialPlatforms(primary), nil
		}},
	}

	resources := Collect(ctx, a.runner, strategies, func(r Resource) string { return r.Title })
	if len(resources) == 0 {
		return placeholderResources(keywords, topic)
	}

	rankResources(resources, keywords, topic)
	if len(resources) > max {
		resources = resources[:max]
	}
	return resources
}

// rankResources orders by curated quality plus topic and keyword hits.
func rankResources(resources []Resource, keywords []string, topic string) {
	topic = strings.ToLower(topic)
	score := func(r Resource) int {
		title := strings.ToLower(r.Title)
		s := qualityRank[r.Quality]
		if topic != "" && strings.Contains(title, topic) {
			s += 2
		}
		for _, kw := range keywords {
			if strings.Contains(title, strings.ToLower(kw)) {
				s++
			}
		}
		return s
	}
	sort.SliceStable(resources, func(i, j int) bool {
		return score(resources[i]) > score(resources[j])
	})
}

func educationalPlatforms(query string) []Resource {
	q := url.QueryEscape(query)
	return []Resource{
		{Title: "Khan Academy: " + query, Source: "Khan Academy", URL: "https://www.khanacademy.org/search?page_search_query=" + q, Type: "Course", Quality: "Excellent"},
		{Title: "Coursera Courses on " + query, Source: "Coursera", URL: "https://www.coursera.org/search?query=" + q, Type: "Course", Quality: "Excellent"},
		{Title: "edX Courses on " + query, Source: "edX", URL: "https://www.edx.org/search?q=" + q, Type: "Course", Quality: "High"},
		{Title: "Udemy Courses on " + query, Source: "Udemy", URL: "https://www.udemy.com/courses/search/?q=" + q, Type: "Course", Quality: "Good"},
	}
}

func academicPlatforms(query string) []Resource {
	q := url.QueryEscape(query)
	return []Resource{
		{Title: "MIT OpenCourseWare: " + query, Source: "MIT OCW", URL: "https://ocw.mit.edu/search/?q=" + q, Type: "Lecture", Quality: "Excellent"},
		{Title: "Stanford Online: " + query, Source: "Stanford Online", URL: "https://online.stanford.edu/search-catalog?keywords=" + q, Type: "Lecture", Quality: "Excellent"},
		{Title: "Harvard Online Learning: " + query, Source: "Harvard Online", URL: "https://pll.harvard.edu/catalog?keywords=" + q, Type: "Lecture", Quality: "High"},
	}
}

func tutorialPlatforms(query string) []Resource {
	q := url.QueryEscape(query)
	return []Resource{
		{Title: query + " Tutorials", Source: "TutorialsPoint", URL: "https://www.tutorialspoint.com/search.php?search_string=" + q, Type: "Tutorial", Quality: "Good"},
		{Title: query + " on W3Schools", Source: "W3Schools", URL: "https://www.w3schools.com/", Type: "Tutorial", Quality: "Good"},
	}
}

func placeholderResources(keywords []string, topic string) []Resource {
	terms := keywords
	if len(terms) > 3 {
		terms = terms[:3]
	}
	if len(terms) == 0 {
		terms = []string{topic}
	}
	resources := make([]Resource, 0, len(terms))
	for _, kw := range terms {
		if strings.TrimSpace(kw) == "" {
			continue
		}
		resources = append(resources, Resource{
			Title:       kw + " Learning Resource",
			Source:      SourcePlaceholder,
			URL:         "https://example-learning.com/" + url.PathEscape(kw),
			Description: "Resource search is temporarily unavailable. Try a learning platform directly.",
			Type:        "Website",
			Quality:     "Fair",
		})
	}
	return resources
}
