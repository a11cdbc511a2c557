package crawlability

import (
	"encoding/xml"
	"strings"
)

// SitemapStatus reports whether the analyzed URL appears in the site's
// sitemap.xml.
type SitemapStatus struct {
	SitemapExists bool   `json:"sitemap_exists"`
	URLInSitemap  bool   `json:"url_in_sitemap"`
	SitemapURL    string `json:"sitemap_url"`
	Explanation   string `json:"explanation"`
}

type sitemapDoc struct {
	URLs []struct {
		Loc string `xml:"loc"`
	} `xml:"url"`
}

// SitemapURLs extracts the <loc> entries from sitemap XML. Malformed
// XML yields an empty list rather than an error.
func SitemapURLs(content string) []string {
	var doc sitemapDoc
	if err := xml.Unmarshal([]byte(content), &doc); err != nil {
		return nil
	}
	urls := make([]string, 0, len(doc.URLs))
	for _, u := range doc.URLs {
		if loc := strings.TrimSpace(u.Loc); loc != "" {
			urls = append(urls, loc)
		}
	}
	return urls
}

// CheckSitemap resolves the sitemap status for pageURL given the
// fetched sitemap content.
func CheckSitemap(pageURL, sitemapURL, content string, exists bool) SitemapStatus {
	status := SitemapStatus{SitemapURL: sitemapURL}
	if !exists {
		status.Explanation = "No sitemap.xml found"
		return status
	}

	status.SitemapExists = true
	for _, loc := range SitemapURLs(content) {
		if strings.Contains(loc, pageURL) {
			status.URLInSitemap = true
			break
		}
	}
	if status.URLInSitemap {
		status.Explanation = "URL is included in sitemap.xml"
	} else {
		status.Explanation = "URL is not included in sitemap.xml"
	}
	return status
}
