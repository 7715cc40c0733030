package discovery

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
)

const (
	youtubeAPIEndpoint    = "https://www.googleapis.com/youtube/v3/search"
	youtubeSearchEndpoint = "https://www.youtube.com/results"
)

type youtubeAPIResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title        string `json:"title"`
			ChannelTitle string `json:"channelTitle"`
			Description  string `json:"description"`
		} `json:"snippet"`
	} `json:"items"`
}

// searchYouTubeAPI uses the Data API when a key is configured.
func searchYouTubeAPI(ctx context.Context, client *http.Client, apiKey, query string, max int) ([]Video, error) {
	endpoint := fmt.Sprintf("%s?part=snippet&q=%s&type=video&maxResults=%d&key=%s",
		youtubeAPIEndpoint, url.QueryEscape(query), max, apiKey)

	var resp youtubeAPIResponse
	if err := fetchJSON(ctx, client, endpoint, &resp); err != nil {
		return nil, err
	}

	videos := make([]Video, 0, len(resp.Items))
	for _, item := range resp.Items {
		videos = append(videos, Video{
			Title:       item.Snippet.Title,
			Channel:     item.Snippet.ChannelTitle,
			URL:         "https://www.youtube.com/watch?v=" + item.ID.VideoID,
			Description: item.Snippet.Description,
			Source:      "YouTube API",
		})
	}
	return videos, nil
}

// videoIDPattern matches the initial-data blobs in the results page.
var videoIDPattern = regexp.MustCompile(`"videoId":"([^"]+)".{0,200}?"title":\{"runs":\[\{"text":"([^"]+)"`)

// scrapeYouTube falls back to parsing the public results page when the
// Data API is unavailable.
func scrapeYouTube(ctx context.Context, client *http.Client, query string, max int) ([]Video, error) {
	endpoint := youtubeSearchEndpoint + "?search_query=" + url.QueryEscape(query)
	body, err := fetch(ctx, client, endpoint)
	if err != nil {
		return nil, err
	}

	matches := videoIDPattern.FindAllStringSubmatch(string(body), max)
	videos := make([]Video, 0, len(matches))
	seen := make(map[string]bool)
	for _, m := range matches {
		id, title := m[1], m[2]
		if seen[id] {
			continue
		}
		seen[id] = true
		videos = append(videos, Video{
			Title:   title,
			Channel: "YouTube",
			URL:     "https://www.youtube.com/watch?v=" + id,
			Source:  "YouTube Search",
		})
	}
	if len(videos) == 0 {
		return nil, fmt.Errorf("no videos parsed from results page")
	}
	return videos, nil
}
