package webpath

const (
	Home    = "/"
	Event   = "/events/:id"
	Summary = "/events/:id/summary"
	Metrics = "/metrics"
)

func Path() map[string]string {
	return map[string]string{
		"Home":    Home,
		"Event":   "/events/",
		"Summary": "/summary",
	}
}
