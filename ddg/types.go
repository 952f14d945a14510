package ddg

// SafeSearch is the DuckDuckGo safe-search level.
type SafeSearch string

const (
	SafeSearchOn       SafeSearch = "on"
	SafeSearchModerate SafeSearch = "moderate"
	SafeSearchOff      SafeSearch = "off"
)

// TimeLimit restricts results to a recency window.
type TimeLimit string

const (
	TimeLimitDay   TimeLimit = "d"
	TimeLimitWeek  TimeLimit = "w"
	TimeLimitMonth TimeLimit = "m"
	TimeLimitYear  TimeLimit = "y"
)

type (
	TextRequest struct {
		Keywords   string
		Region     string
		SafeSearch SafeSearch
		TimeLimit  TimeLimit
		MaxResults int
	}

	TextResult struct {
		Title string `json:"title"`
		Href  string `json:"href"`
		Body  string `json:"body"`
	}

	ImageRequest struct {
		Keywords     string
		Region       string
		SafeSearch   SafeSearch
		TimeLimit    TimeLimit
		Size         string
		Color        string
		TypeImage    string
		Layout       string
		LicenseImage string
		MaxResults   int
	}

	ImageResult struct {
		Title     string `json:"title"`
		Image     string `json:"image"`
		Thumbnail string `json:"thumbnail"`
		URL       string `json:"url"`
		Height    int    `json:"height"`
		Width     int    `json:"width"`
		Source    string `json:"source"`
	}

	NewsRequest struct {
		Keywords   string
		Region     string
		SafeSearch SafeSearch
		TimeLimit  TimeLimit
		MaxResults int
	}

	NewsResult struct {
		Date   string `json:"date"`
		Title  string `json:"title"`
		Body   string `json:"body"`
		URL    string `json:"url"`
		Image  string `json:"image"`
		Source string `json:"source"`
	}

	VideoRequest struct {
		Keywords      string
		Region        string
		SafeSearch    SafeSearch
		TimeLimit     TimeLimit
		Resolution    string
		Duration      string
		LicenseVideos string
		MaxResults    int
	}

	VideoResult struct {
		Content     string `json:"content"`
		Description string `json:"description"`
		Duration    string `json:"duration"`
		Published   string `json:"published"`
		Publisher   string `json:"publisher"`
		Title       string `json:"title"`
		Uploader    string `json:"uploader"`
	}

	ChatRequest struct {
		Keywords string
		Model    string
	}
)

// htmlParam maps a safe-search level to the HTML vertical's kp parameter.
func (s SafeSearch) htmlParam() string {
	switch s {
	case SafeSearchOn:
		return "1"
	case SafeSearchOff:
		return "-2"
	default:
		return "-1"
	}
}

// imageParam maps a safe-search level to i.js's p parameter. The image
// vertical only distinguishes off from everything else.
func (s SafeSearch) imageParam() string {
	if s == SafeSearchOff {
		return "-1"
	}
	return "1"
}

// newsParam maps a safe-search level to the p parameter shared by the
// news.js and v.js verticals.
func (s SafeSearch) newsParam() string {
	switch s {
	case SafeSearchOn:
		return "1"
	case SafeSearchOff:
		return "-2"
	default:
		return "-1"
	}
}
