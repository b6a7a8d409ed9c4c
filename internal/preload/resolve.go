package preload

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// imageFromHTML finds the picture a page reference stands for: its og:image
// or twitter:image, else the first <img>. The result is absolute.
func imageFromHTML(base string, body []byte) (string, bool) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return "", false
	}

	var src string
	for _, selector := range []string{
		"meta[property='og:image']",
		"meta[name='og:image']",
		"meta[name='twitter:image']",
	} {
		if value, ok := doc.Find(selector).First().Attr("content"); ok && strings.TrimSpace(value) != "" {
			src = strings.TrimSpace(value)
			break
		}
	}
	if src == "" {
		doc.Find("img[src]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
			value, _ := s.Attr("src")
			value = strings.TrimSpace(value)
			if value == "" || strings.HasPrefix(value, "data:") {
				return true
			}
			src = value
			return false
		})
	}
	if src == "" {
		return "", false
	}
	return absoluteURL(base, src), true
}

func absoluteURL(base string, href string) string {
	if href == "" {
		return ""
	}
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	if strings.HasPrefix(href, "//") {
		return "https:" + href
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return baseURL.ResolveReference(ref).String()
}

func isRemote(ref string) bool {
	lower := strings.ToLower(strings.TrimSpace(ref))
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
