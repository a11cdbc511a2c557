package scraper

import (
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const topKeywordCount = 10

var (
	wordPattern     = regexp.MustCompile(`[a-zA-Z0-9_]+`)
	charsetPattern  = regexp.MustCompile(`charset=([^\s;]+)`)
	analyticsScript = regexp.MustCompile(`gtag|ga\(|analytics`)
	unclosedTag     = regexp.MustCompile(`(?m)<[^>]+$`)
)

var semanticTags = []string{"header", "nav", "main", "article", "section", "footer"}

// Extract parses raw HTML into the typed Extraction record. stopWords
// filters the keyword table; a nil set disables filtering. The record
// is sparse rather than wrong on malformed input: goquery tolerates
// broken markup and missing elements simply leave zero values.
func Extract(html string, baseURL string, stopWords map[string]bool) (*Extraction, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	ext := &Extraction{
		URL:          baseURL,
		OGTags:       make(map[string]string),
		TwitterCards: make(map[string]string),
		Headings:     make(map[string]int),
	}

	extractMetaTags(doc, ext)
	extractTechnical(doc, ext)
	extractStructure(doc, html, ext)
	extractHeadings(doc, ext)
	extractImages(doc, ext)
	extractLinks(doc, baseURL, ext)

	// Visible text only: scripts and styles are not content. Removal
	// happens after the technical flags so analytics detection still
	// sees the script bodies.
	doc.Find("script, style, noscript").Remove()
	extractContent(doc, html, ext)
	extractKeywords(ext.Text, stopWords, ext)
	extractURLInfo(baseURL, ext)

	return ext, nil
}

func extractMetaTags(doc *goquery.Document, ext *Extraction) {
	title := strings.TrimSpace(doc.Find("title").First().Text())
	ext.Title = TagInfo{Found: title != "", Content: title, Length: len(title)}

	desc, found := doc.Find("meta[name='description']").Attr("content")
	ext.MetaDescription = TagInfo{Found: found, Content: desc, Length: len(desc)}

	ext.Robots, _ = doc.Find("meta[name='robots']").Attr("content")
	ext.Viewport, _ = doc.Find("meta[name='viewport']").Attr("content")
	ext.Canonical, _ = doc.Find("link[rel='canonical']").Attr("href")
	ext.Charset = extractCharset(doc)

	doc.Find("meta[property^='og:']").Each(func(_ int, s *goquery.Selection) {
		prop, _ := s.Attr("property")
		content, _ := s.Attr("content")
		ext.OGTags[prop] = content
	})
	doc.Find("meta[name^='twitter:']").Each(func(_ int, s *goquery.Selection) {
		name, _ := s.Attr("name")
		content, _ := s.Attr("content")
		ext.TwitterCards[name] = content
	})
}

func extractCharset(doc *goquery.Document) string {
	if charset, found := doc.Find("meta[charset]").Attr("charset"); found {
		return charset
	}
	if content, found := doc.Find("meta[http-equiv='Content-Type']").Attr("content"); found {
		if m := charsetPattern.FindStringSubmatch(content); m != nil {
			return m[1]
		}
	}
	return ""
}

func extractTechnical(doc *goquery.Document, ext *Extraction) {
	hasAnalytics := false
	doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		src, _ := s.Attr("src")
		if analyticsScript.MatchString(s.Text()) || analyticsScript.MatchString(src) {
			hasAnalytics = true
			return false
		}
		return true
	})

	ext.Technical = TechnicalFlags{
		HasViewport:       doc.Find("meta[name='viewport']").Length() > 0,
		HasFavicon:        doc.Find("link[rel='icon'], link[rel='shortcut icon']").Length() > 0,
		HasStructuredData: doc.Find("script[type='application/ld+json']").Length() > 0,
		HasSitemapLink:    doc.Find("link[rel='sitemap']").Length() > 0,
		HasRobotsMeta:     doc.Find("meta[name='robots']").Length() > 0,
		HasAnalytics:      hasAnalytics,
	}
}

func extractStructure(doc *goquery.Document, html string, ext *Extraction) {
	semantic := 0
	for _, tag := range semanticTags {
		semantic += doc.Find(tag).Length()
	}
	ext.Structure = StructureInfo{
		SemanticCount: semantic,
		SectionCount:  semantic + doc.Find("div").Length(),
		UnclosedTags:  len(unclosedTag.FindAllString(html, -1)),
	}
}

func extractHeadings(doc *goquery.Document, ext *Extraction) {
	for i := 1; i <= 6; i++ {
		ext.Headings[fmt.Sprintf("h%d", i)] = doc.Find(fmt.Sprintf("h%d", i)).Length()
	}
	doc.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, s *goquery.Selection) {
		name := goquery.NodeName(s)
		if len(name) == 2 {
			ext.HeadingSequence = append(ext.HeadingSequence, int(name[1]-'0'))
		}
	})
}

func extractImages(doc *goquery.Document, ext *Extraction) {
	doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		src, _ := s.Attr("src")
		alt, _ := s.Attr("alt")
		title, _ := s.Attr("title")
		width, _ := s.Attr("width")
		height, _ := s.Attr("height")

		img := Image{
			Src:           src,
			Alt:           alt,
			Title:         title,
			HasAlt:        alt != "",
			HasDimensions: width != "" && height != "",
		}
		ext.Images = append(ext.Images, img)
		ext.TotalImages++
		if img.HasAlt {
			ext.ImagesWithAlt++
		}
		if img.HasDimensions {
			ext.ImagesWithDimensions++
		}
	})
}

func extractLinks(doc *goquery.Document, baseURL string, ext *Extraction) {
	base, err := url.Parse(baseURL)
	if err != nil {
		base = &url.URL{}
	}

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		ref, err := url.Parse(strings.TrimSpace(href))
		if err != nil {
			return
		}
		resolved := base.ResolveReference(ref)
		rel, _ := s.Attr("rel")
		title, _ := s.Attr("title")

		link := Link{
			URL:      resolved.String(),
			Text:     strings.TrimSpace(s.Text()),
			Title:    title,
			NoFollow: strings.Contains(rel, "nofollow"),
		}
		if resolved.Host == base.Host {
			ext.InternalLinks = append(ext.InternalLinks, link)
		} else {
			ext.ExternalLinks = append(ext.ExternalLinks, link)
		}
	})
}

func extractContent(doc *goquery.Document, html string, ext *Extraction) {
	paragraphs := doc.Find("p")
	ext.ParagraphCount = paragraphs.Length()
	if ext.ParagraphCount > 0 {
		total := 0
		paragraphs.Each(func(_ int, s *goquery.Selection) {
			total += len(strings.TrimSpace(s.Text()))
		})
		ext.ParagraphLength = float64(total) / float64(ext.ParagraphCount)
	}

	ext.Text = strings.Join(strings.Fields(doc.Text()), " ")
	ext.ContentLength = len(ext.Text)
	if len(html) > 0 {
		ext.TextHTMLRatio = float64(len(ext.Text)) / float64(len(html)) * 100
	}
}

func extractKeywords(text string, stopWords map[string]bool, ext *Extraction) {
	raw := wordPattern.FindAllString(strings.ToLower(text), -1)
	words := make([]string, 0, len(raw))
	for _, w := range raw {
		if len(w) > 2 && !stopWords[w] {
			words = append(words, w)
		}
	}

	freq := make(map[string]int, len(words))
	for _, w := range words {
		freq[w]++
	}
	ext.TotalWords = len(words)
	ext.UniqueWords = len(freq)

	unique := make([]string, 0, len(freq))
	for w := range freq {
		unique = append(unique, w)
	}
	sort.Slice(unique, func(i, j int) bool {
		if freq[unique[i]] != freq[unique[j]] {
			return freq[unique[i]] > freq[unique[j]]
		}
		return unique[i] < unique[j]
	})
	if len(unique) > topKeywordCount {
		unique = unique[:topKeywordCount]
	}

	for _, w := range unique {
		density := 0.0
		if ext.TotalWords > 0 {
			density = float64(freq[w]) / float64(ext.TotalWords) * 100
		}
		ext.TopKeywords = append(ext.TopKeywords, Keyword{Word: w, Count: freq[w], Density: density})
	}
}

func extractURLInfo(rawURL string, ext *Extraction) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return
	}
	segments := make([]string, 0)
	for _, seg := range strings.Split(parsed.Path, "/") {
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	ext.URLInfo = URLInfo{
		Scheme:       parsed.Scheme,
		Domain:       parsed.Host,
		PathDepth:    len(segments),
		PathSegments: segments,
		HasQuery:     parsed.RawQuery != "",
		HasFragment:  parsed.Fragment != "",
		IsClean:      parsed.RawQuery == "" && parsed.Fragment == "",
	}
}
