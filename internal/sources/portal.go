package sources

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"

	"github.com/inmoval/api/internal/models"
)

const portalUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

// PortalSource scrapes a listing portal's search results page for active
// listings near the query point. It is a best-effort enrichment path: any
// HTTP or parse failure surfaces as an error to Gather, which treats it as
// zero candidates.
type PortalSource struct {
	name    string
	baseURL string
	client  *http.Client
}

// NewPortalSource creates a scraping Source for the portal at baseURL.
// The client's own timeout is left unset; Gather bounds each fetch through
// the context.
func NewPortalSource(name, baseURL string) *PortalSource {
	return &PortalSource{
		name:    name,
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

func (s *PortalSource) Name() string { return s.name }

// Fetch requests the portal's search page and parses listing cards into
// comparable sale candidates. Listings are current offers, so their sale
// date is the fetch time.
func (s *PortalSource) Fetch(ctx context.Context, q Query) ([]models.ComparableSale, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.searchURL(q), nil)
	if err != nil {
		return nil, fmt.Errorf("building portal request: %w", err)
	}
	req.Header.Set("User-Agent", portalUserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching portal %s: %w", s.name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("portal %s returned status %d", s.name, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing portal %s response: %w", s.name, err)
	}

	return s.parseListings(doc, q), nil
}

func (s *PortalSource) searchURL(q Query) string {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(q.Latitude, 'f', 6, 64))
	params.Set("lng", strconv.FormatFloat(q.Longitude, 'f', 6, 64))
	if q.PropertyType != "" {
		params.Set("type", q.PropertyType)
	}
	if q.Country != "" {
		params.Set("country", q.Country)
	}
	return s.baseURL + "/search?" + params.Encode()
}

// parseListings extracts listing cards. Cards missing a price or coordinates
// are skipped; they cannot be ranked.
func (s *PortalSource) parseListings(doc *goquery.Document, q Query) []models.ComparableSale {
	now := time.Now()
	var sales []models.ComparableSale

	doc.Find("article.listing-card").Each(func(_ int, card *goquery.Selection) {
		price := parseAmount(card.Find(".listing-price").Text())
		lat := parseAmount(card.AttrOr("data-lat", ""))
		lng := parseAmount(card.AttrOr("data-lng", ""))
		if price <= 0 || (lat == 0 && lng == 0) {
			return
		}

		area := parseAmount(card.Find(".listing-area").Text())

		sale := models.ComparableSale{
			ID:           s.name + ":" + card.AttrOr("data-id", uuid.NewString()),
			Address:      strings.TrimSpace(card.Find(".listing-address").Text()),
			PropertyType: strings.TrimSpace(card.AttrOr("data-type", q.PropertyType)),
			TotalArea:    area,
			PriceUSD:     price,
			Latitude:     lat,
			Longitude:    lng,
			SaleDate:     now,
			Country:      q.Country,
			Source:       s.name,
		}
		if area > 0 {
			sale.PricePerSqmUSD = price / area
		}

		sales = append(sales, sale)
	})

	return sales
}

// parseAmount pulls a float out of free-form portal text such as
// "US$ 152,300" or "120 m²". Returns 0 when no number is present.
func parseAmount(text string) float64 {
	var b strings.Builder
	for _, r := range strings.TrimSpace(text) {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return v
}
