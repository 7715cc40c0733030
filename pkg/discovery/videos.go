package discovery

import (
	"context"
	"net/http"
	"sort"
	"strings"
	"time"
)

const MaxVideos = 12

var (
	educationalKeywords = []string{"tutorial", "course", "lecture", "learn", "explained", "guide", "introduction"}
	qualityChannels     = []string{"khan", "mit", "stanford", "coursera", "edx", "crash course"}
	lowValueMarkers     = []string{"#shorts", "tiktok", "meme", "funny", "prank"}
)

// VideosAgent finds educational videos, preferring the YouTube Data API
// and degrading to page scraping without a key.
type VideosAgent struct {
	runner *Runner
	client *http.Client
	apiKey string
}

func NewVideosAgent(runner *Runner, apiKey string) *VideosAgent {
	return &VideosAgent{
		runner: runner,
		client: newHTTPClient(15 * time.Second),
		apiKey: apiKey,
	}
}

func (a *VideosAgent) Discover(ctx context.Context, keywords []string, topic string, max int) []Video {
	if max <= 0 || max > MaxVideos {
		max = MaxVideos
	}
	primary, _ := buildQueries(keywords, topic)

	var strategies []Strategy[Video]
	if a.apiKey != "" {
		strategies = append(strategies, Strategy[Video]{
			Name: "youtube_api_tutorial",
			Search: func(ctx context.Context) ([]Video, error) {
				return searchYouTubeAPI(ctx, a.client, a.apiKey, primary+" tutorial", max)
			},
		})
	}
	strategies = append(strategies,
		Strategy[Video]{Name: "youtube_scrape_tutorial", Search: func(ctx context.Context) ([]Video, error) {
			return scrapeYouTube(ctx, a.client, primary+" tutorial", max)
		}},
		Strategy[Video]{Name: "youtube_scrape_explained", Search: func(ctx context.Context) ([]Video, error) {
			return scrapeYouTube(ctx, a.client, primary+" explained", max)
		}},
	)

	videos := Collect(ctx, a.runner, strategies, func(v Video) string { return v.Title })
	if len(videos) == 0 {
		return placeholderVideos(keywords, topic)
	}

	rankVideos(videos)
	if len(videos) > max {
		videos = videos[:max]
	}
	return videos
}

// rankVideos scores educational signals up and throwaway content down.
func rankVideos(videos []Video) {
	score := func(v Video) int {
		title := strings.ToLower(v.Title)
		channel := strings.ToLower(v.Channel)
		s := 0
		for _, kw := range educationalKeywords {
			if strings.Contains(title, kw) {
				s += 2
			}
		}
		for _, ch := range qualityChannels {
			if strings.Contains(channel, ch) {
				s += 3
			}
		}
		for _, neg := range lowValueMarkers {
			if strings.Contains(title, neg) {
				s -= 5
			}
		}
		return s
	}
	sort.SliceStable(videos, func(i, j int) bool {
		return score(videos[i]) > score(videos[j])
	})
}

func placeholderVideos(keywords []string, topic string) []Video {
	terms := keywords
	if len(terms) > 3 {
		terms = terms[:3]
	}
	if len(terms) == 0 {
		terms = []string{topic}
	}
	videos := make([]Video, 0, len(terms))
	for _, kw := range terms {
		if strings.TrimSpace(kw) == "" {
			continue
		}
		videos = append(videos, Video{
			Title:    "Educational Video: " + kw + " Tutorial",
			Channel:  "Educational Channel",
			URL:      "https://youtu.be/placeholder",
			Duration: "15:30",
			Views:    "10K views",
			Source:   SourcePlaceholder,
		})
	}
	return videos
}
