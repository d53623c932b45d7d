package fetch

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"

	"github.com/penwyp/go-apod-widget/internal/core/constants"
	"github.com/penwyp/go-apod-widget/internal/util"
)

const DefaultRSSURL = "https://apod.nasa.gov/apod.rss"

// RSSSource reads the picture of the day from an RSS feed whose newest item
// embeds the image in its HTML description
type RSSSource struct {
	feedURL string
	parser  *gofeed.Parser
	images  *ImageLoader
}

// NewRSSSource creates a new RSS source
func NewRSSSource(feedURL string, images *ImageLoader) *RSSSource {
	if feedURL == "" {
		feedURL = DefaultRSSURL
	}
	if images == nil {
		images = NewImageLoader(nil, nil)
	}
	parser := gofeed.NewParser()
	parser.Client = &http.Client{Timeout: constants.FetchTimeout}
	return &RSSSource{
		feedURL: feedURL,
		parser:  parser,
		images:  images,
	}
}

// GetSourceName returns the name of this source
func (s *RSSSource) GetSourceName() string {
	return "rss"
}

// FetchPicture parses the feed and downloads the image of its newest item
func (s *RSSSource) FetchPicture(ctx context.Context) (Picture, error) {
	util.LogDebug(fmt.Sprintf("Fetching RSS feed from %s", s.feedURL))

	feed, err := s.parser.ParseURLWithContext(s.feedURL, ctx)
	if err != nil {
		if errors.Is(err, gofeed.ErrFeedTypeNotDetected) {
			return Picture{}, fmt.Errorf("%w: failed to parse RSS feed: %v", ErrMalformedPayload, err)
		}
		return Picture{}, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	if len(feed.Items) == 0 {
		return Picture{}, fmt.Errorf("%w: feed has no items", ErrMalformedPayload)
	}

	item := feed.Items[0]
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(item.Description))
	if err != nil {
		return Picture{}, fmt.Errorf("%w: failed to parse item description: %v", ErrMalformedPayload, err)
	}

	src, ok := doc.Find("img").First().Attr("src")
	if !ok || strings.TrimSpace(src) == "" {
		if item.Image != nil && item.Image.URL != "" {
			src = item.Image.URL
		} else if enc := imageEnclosure(item); enc != "" {
			src = enc
		} else {
			return Picture{}, fmt.Errorf("%w: item has no image", ErrUnsupportedMedia)
		}
	}

	imageURL, err := resolveURL(item.Link, strings.TrimSpace(src))
	if err != nil {
		return Picture{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	pic := Picture{
		Title:       strings.TrimSpace(item.Title),
		Explanation: collapseSpace(doc.Text()),
		MediaType:   "image",
		URL:         imageURL,
	}
	if item.PublishedParsed != nil {
		pic.Date = item.PublishedParsed.Format("2006-01-02")
	}

	img, err := s.images.Load(ctx, imageURL)
	if err != nil {
		return Picture{}, err
	}
	pic.Image = img

	util.LogDebug(fmt.Sprintf("Fetched RSS item %q with image %s", pic.Title, imageURL))
	return pic, nil
}

func imageEnclosure(item *gofeed.Item) string {
	for _, enc := range item.Enclosures {
		if enc != nil && strings.HasPrefix(enc.Type, "image/") {
			return enc.URL
		}
	}
	return ""
}

// resolveURL resolves ref against base; absolute refs are returned unchanged
func resolveURL(base, ref string) (string, error) {
	refURL, err := url.Parse(ref)
	if err != nil {
		return "", err
	}
	if refURL.IsAbs() {
		return refURL.String(), nil
	}
	baseURL, err := url.Parse(base)
	if err != nil || !baseURL.IsAbs() {
		return "", fmt.Errorf("cannot resolve relative image url %q", ref)
	}
	return baseURL.ResolveReference(refURL).String(), nil
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
