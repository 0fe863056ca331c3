package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/newsint"
)

// Ensure FeedDiscoverer implements newsint.FeedDiscoverer at compile time.
var _ newsint.FeedDiscoverer = (*FeedDiscoverer)(nil)

// feedPaths are the well-known feed locations probed in order.
var feedPaths = []string{"/rss.xml", "/rss", "/feed", "/feed.xml", "/index.xml", "/sitemap.xml"}

// FeedDiscoverer expands a news site address into individual article URLs
// by reading the site's RSS or Atom feed, falling back to its sitemap.
type FeedDiscoverer struct {
	client *http.Client
}

// NewFeedDiscoverer creates a FeedDiscoverer with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewFeedDiscoverer(client *http.Client) *FeedDiscoverer {
	if client == nil {
		client = http.DefaultClient
	}
	return &FeedDiscoverer{client: client}
}

// Discover probes well-known feed locations under the site's root and
// returns the article URLs of the first document that yields any,
// deduplicated and filtered to the site's own host. Returns an empty
// slice (not nil) when no feed is found.
func (d *FeedDiscoverer) Discover(ctx context.Context, siteURL string) ([]string, error) {
	base, err := url.Parse(siteURL)
	if err != nil {
		return nil, newsint.Errorf(newsint.EINVALID, "invalid site URL: %v", err)
	}

	root := *base
	root.Path = ""
	root.RawQuery = ""

	for _, path := range feedPaths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		feedURL := root.ResolveReference(&url.URL{Path: path}).String()
		body, err := d.fetch(ctx, feedURL)
		if err != nil {
			continue // probing; absence of one location is not an error
		}

		links := parseFeedLinks(body)
		if len(links) == 0 {
			continue
		}

		var articles []string
		seen := make(map[string]bool)
		for _, link := range links {
			u, err := url.Parse(link)
			if err != nil || u.Host != base.Host {
				continue
			}
			if !seen[link] {
				seen[link] = true
				articles = append(articles, link)
			}
		}
		if len(articles) > 0 {
			return articles, nil
		}
	}

	return []string{}, nil
}

func (d *FeedDiscoverer) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	return io.ReadAll(resp.Body)
}

// parseFeedLinks extracts entry links from an RSS, Atom, or sitemap
// document. Unparseable or unrecognized documents yield no links.
func parseFeedLinks(body []byte) []string {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(body); err != nil {
		return nil
	}

	root := doc.Root()
	if root == nil {
		return nil
	}

	var links []string
	switch root.Tag {
	case "rss":
		for _, item := range root.FindElements("./channel/item") {
			if link := item.SelectElement("link"); link != nil {
				if text := strings.TrimSpace(link.Text()); text != "" {
					links = append(links, text)
				}
			}
		}
	case "feed":
		for _, entry := range root.FindElements("./entry") {
			for _, link := range entry.SelectElements("link") {
				rel := link.SelectAttrValue("rel", "alternate")
				href := strings.TrimSpace(link.SelectAttrValue("href", ""))
				if rel == "alternate" && href != "" {
					links = append(links, href)
					break
				}
			}
		}
	case "urlset":
		for _, u := range root.FindElements("./url") {
			if loc := u.SelectElement("loc"); loc != nil {
				if text := strings.TrimSpace(loc.Text()); text != "" {
					links = append(links, text)
				}
			}
		}
	}

	return links
}
