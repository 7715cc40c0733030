package discovery

// SourcePlaceholder tags records generated locally when every external
// source failed, so clients can render them distinctly.
const SourcePlaceholder = "placeholder"

type Paper struct {
	Title     string   `json:"title"`
	Authors   []string `json:"authors"`
	Abstract  string   `json:"abstract"`
	URL       string   `json:"url"`
	Source    string   `json:"source"`
	Published string   `json:"published,omitempty"`
}

type Video struct {
	Title       string `json:"title"`
	Channel     string `json:"channel"`
	URL         string `json:"url"`
	Duration    string `json:"duration,omitempty"`
	Views       string `json:"views,omitempty"`
	Description string `json:"description,omitempty"`
	Source      string `json:"source"`
}

type Resource struct {
	Title       string `json:"title"`
	Source      string `json:"source"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type,omitempty"`
	Quality     string `json:"quality,omitempty"`
}
