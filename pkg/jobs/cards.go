package jobs

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Card is a job card parsed from a LinkedIn search results page.
type Card struct {
	Title    string `json:"title"`
	Company  string `json:"company"`
	Location string `json:"location"`
	Posted   string `json:"posted"`
	URL      string `json:"url"`
}

func parseCards(html string) ([]Card, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	cards := []Card{}
	doc.Find("div.base-card").Each(func(_ int, s *goquery.Selection) {
		title := strings.TrimSpace(s.Find(".base-search-card__title").First().Text())
		if title == "" {
			return
		}

		link, _ := s.Find("a.base-card__full-link").First().Attr("href")
		if i := strings.Index(link, "?"); i >= 0 {
			link = link[:i]
		}

		posted, _ := s.Find("time").First().Attr("datetime")

		cards = append(cards, Card{
			Title:    title,
			Company:  strings.TrimSpace(s.Find(".base-search-card__subtitle").First().Text()),
			Location: strings.TrimSpace(s.Find(".job-search-card__location").First().Text()),
			Posted:   posted,
			URL:      link,
		})
	})
	return cards, nil
}
