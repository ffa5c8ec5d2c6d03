// internal/adapters/gateway/http.go
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/rkarim/chatcart/internal/domain"
)

// HTTPGateway talks to the category, item and billing services.
type HTTPGateway struct {
	client      *http.Client
	categoryURL string
	itemsBase   string
	billURL     string
	log         logrus.FieldLogger
}

func New(categoryURL, itemsBase, billURL string, timeout time.Duration, log logrus.FieldLogger) *HTTPGateway {
	return &HTTPGateway{
		client:      &http.Client{Timeout: timeout},
		categoryURL: categoryURL,
		itemsBase:   strings.TrimRight(itemsBase, "/"),
		billURL:     billURL,
		log:         log,
	}
}

type categoryRecord struct {
	CategoryName string `json:"categoryName"`
	IsEnable     bool   `json:"isEnable"`
}

// FetchCategories returns the enabled category names, trimmed. The caller
// treats any error as "no categories".
func (g *HTTPGateway) FetchCategories(ctx context.Context) ([]string, error) {
	var records []categoryRecord
	if err := g.getJSON(ctx, g.categoryURL, &records); err != nil {
		return nil, errors.Wrap(err, "fetch categories")
	}
	var names []string
	for _, r := range records {
		name := strings.TrimSpace(r.CategoryName)
		if r.IsEnable && name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}

type itemRecord struct {
	ItemName string   `json:"itemName"`
	Price    *float64 `json:"price"`
	Sales    *float64 `json:"sales"`
}

// FetchItems lists a category's items. Upstream records are tolerated with
// schema drift: a missing name becomes "Unknown" and the price falls back to
// the sales field, then to zero.
func (g *HTTPGateway) FetchItems(ctx context.Context, category string) ([]domain.Item, error) {
	u := g.itemsBase + "/" + url.PathEscape(strings.TrimSpace(category))
	var records []itemRecord
	if err := g.getJSON(ctx, u, &records); err != nil {
		return nil, errors.Wrapf(err, "fetch items for %q", category)
	}
	items := make([]domain.Item, 0, len(records))
	for _, r := range records {
		name := r.ItemName
		if name == "" {
			name = "Unknown"
		}
		price := 0.0
		if r.Price != nil && *r.Price != 0 {
			price = *r.Price
		} else if r.Sales != nil && *r.Sales != 0 {
			price = *r.Sales
		}
		items = append(items, domain.Item{Name: name, Price: price})
	}
	return items, nil
}

// SubmitBill posts the user and cart to the billing service. Failures come
// back as a domain.GatewayError carrying the upstream error text.
func (g *HTTPGateway) SubmitBill(ctx context.Context, user *domain.UserProfile, lines []domain.CartLine) (map[string]any, error) {
	body, err := json.Marshal(map[string]any{"user": user, "items": lines})
	if err != nil {
		return nil, &domain.GatewayError{Op: "billing", Err: err}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.billURL, bytes.NewReader(body))
	if err != nil {
		return nil, &domain.GatewayError{Op: "billing", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := g.client.Do(req)
	if err != nil {
		return nil, &domain.GatewayError{Op: "billing", Err: err}
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.GatewayError{Op: "billing", Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.GatewayError{Op: "billing", Err: errors.Errorf("upstream status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))}
	}
	var parsed map[string]any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, &domain.GatewayError{Op: "billing", Err: errors.Wrap(err, "decode response")}
	}
	if bill, ok := parsed["bill"].(map[string]any); ok {
		return bill, nil
	}
	return parsed, nil
}

func (g *HTTPGateway) getJSON(ctx context.Context, u string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("upstream status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
