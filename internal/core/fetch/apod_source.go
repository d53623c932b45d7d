package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/penwyp/go-apod-widget/internal/core/constants"
	"github.com/penwyp/go-apod-widget/internal/util"
)

const (
	DefaultAPODURL = "https://api.nasa.gov/planetary/apod"
	DemoAPIKey     = "DEMO_KEY"
)

// APODSource fetches the picture of the day from NASA's APOD API
type APODSource struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	images     *ImageLoader
}

// apodResponse mirrors the fields of the APOD API answer we use
type apodResponse struct {
	Date         string `json:"date"`
	Title        string `json:"title"`
	Explanation  string `json:"explanation"`
	MediaType    string `json:"media_type"`
	URL          string `json:"url"`
	HDURL        string `json:"hdurl"`
	ThumbnailURL string `json:"thumbnail_url"`
	Copyright    string `json:"copyright"`
}

// NewAPODSource creates a new APOD API source. Empty baseURL and apiKey fall
// back to the public endpoint and the demo key.
func NewAPODSource(baseURL, apiKey string, images *ImageLoader) *APODSource {
	if baseURL == "" {
		baseURL = DefaultAPODURL
	}
	if apiKey == "" {
		apiKey = DemoAPIKey
	}
	if images == nil {
		images = NewImageLoader(nil, nil)
	}
	return &APODSource{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: constants.FetchTimeout,
		},
		images: images,
	}
}

// GetSourceName returns the name of this source
func (s *APODSource) GetSourceName() string {
	return "apod"
}

// FetchPicture fetches today's entry and downloads its image
func (s *APODSource) FetchPicture(ctx context.Context) (Picture, error) {
	endpoint, err := s.endpoint()
	if err != nil {
		return Picture{}, err
	}
	util.LogDebug(fmt.Sprintf("Fetching APOD entry from %s", s.baseURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Picture{}, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		util.LogDebug(fmt.Sprintf("Failed to fetch APOD entry: %v", err))
		return Picture{}, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		util.LogDebug(fmt.Sprintf("Unexpected HTTP status code: %d", resp.StatusCode))
		return Picture{}, fmt.Errorf("%w: unexpected status code: %d", ErrSourceUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Picture{}, fmt.Errorf("failed to read response body: %w", err)
	}

	var raw apodResponse
	if err := sonic.Unmarshal(body, &raw); err != nil {
		return Picture{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if raw.Title == "" && raw.URL == "" {
		return Picture{}, fmt.Errorf("%w: empty entry", ErrMalformedPayload)
	}

	pic := Picture{
		Date:         raw.Date,
		Title:        strings.TrimSpace(raw.Title),
		Explanation:  strings.TrimSpace(raw.Explanation),
		MediaType:    raw.MediaType,
		URL:          raw.URL,
		HDURL:        raw.HDURL,
		ThumbnailURL: raw.ThumbnailURL,
		Copyright:    strings.TrimSpace(raw.Copyright),
	}

	imageURL, err := displayURL(pic)
	if err != nil {
		return Picture{}, err
	}

	img, err := s.images.Load(ctx, imageURL)
	if err != nil {
		return Picture{}, err
	}
	pic.Image = img

	util.LogDebug(fmt.Sprintf("Fetched APOD entry %s: %q (%s)", pic.Date, pic.Title, pic.MediaType))
	return pic, nil
}

func (s *APODSource) endpoint() (string, error) {
	u, err := url.Parse(s.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid APOD url %q: %w", s.baseURL, err)
	}
	q := u.Query()
	q.Set("api_key", s.apiKey)
	q.Set("thumbs", "true")
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// displayURL picks the URL of a still image for the entry
func displayURL(pic Picture) (string, error) {
	switch pic.MediaType {
	case "image", "":
		if pic.URL == "" {
			return "", fmt.Errorf("%w: image entry without url", ErrMalformedPayload)
		}
		return pic.URL, nil
	case "video":
		if pic.ThumbnailURL != "" {
			return pic.ThumbnailURL, nil
		}
		return "", fmt.Errorf("%w: video without thumbnail", ErrUnsupportedMedia)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedMedia, pic.MediaType)
	}
}
