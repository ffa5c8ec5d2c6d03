// internal/domain/models.go
package domain

import (
	"regexp"
	"strconv"
	"strings"
)

// Action names the dispatcher understands.
const (
	ActionGreet          = "greet"
	ActionLoginProgress  = "login_progress"
	ActionLogin          = "login"
	ActionListCategories = "list_categories"
	ActionListItems      = "list_items"
	ActionAddToCart      = "add_to_cart"
	ActionShowCart       = "show_cart"
	ActionCheckout       = "checkout"
	ActionLogout         = "logout"
)

type Language string

const (
	LangEnglish Language = "en"
	LangUrdu    Language = "ur"
)

// ParseLanguage maps anything that is not urdu to english.
func ParseLanguage(s string) Language {
	if Language(strings.ToLower(strings.TrimSpace(s))) == LangUrdu {
		return LangUrdu
	}
	return LangEnglish
}

var phoneRe = regexp.MustCompile(`^[0-9]{10,11}$`)

type UserProfile struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	PaymentMethod string `json:"payment_method,omitempty"`
}

func NewUserProfile(name, phone, address string) (*UserProfile, error) {
	if strings.TrimSpace(name) == "" {
		return nil, &ValidationError{Reason: "name is required"}
	}
	if !phoneRe.MatchString(phone) {
		return nil, &ValidationError{Reason: "phone must be 10 or 11 digits"}
	}
	if strings.TrimSpace(address) == "" {
		return nil, &ValidationError{Reason: "address is required"}
	}
	return &UserProfile{Name: name, Phone: phone, Address: address}, nil
}

// UserProfileFromPayload builds a profile from a structured login payload.
func UserProfileFromPayload(p map[string]any) (*UserProfile, error) {
	return NewUserProfile(stringField(p, "name"), stringField(p, "phone"), stringField(p, "address"))
}

type CartLine struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

func NewCartLine(name string, quantity int, price float64) (CartLine, error) {
	if strings.TrimSpace(name) == "" {
		return CartLine{}, &ValidationError{Reason: "item name is required"}
	}
	if quantity <= 0 {
		return CartLine{}, &ValidationError{Reason: "quantity must be greater than 0"}
	}
	if price <= 0 {
		return CartLine{}, &ValidationError{Reason: "price must be greater than 0"}
	}
	return CartLine{Name: name, Quantity: quantity, Price: price}, nil
}

// CartLineFromPayload decodes an add_to_cart payload. JSON numbers arrive as
// float64; the quantity must still be a whole number.
func CartLineFromPayload(p map[string]any) (CartLine, error) {
	name := stringField(p, "name")
	qty, ok := numberField(p, "quantity")
	if !ok || qty != float64(int(qty)) {
		return CartLine{}, &ValidationError{Reason: "quantity must be a positive integer"}
	}
	price, ok := numberField(p, "price")
	if !ok {
		return CartLine{}, &ValidationError{Reason: "price must be a positive number"}
	}
	return NewCartLine(name, int(qty), price)
}

// Cart holds at most one line per item name, in first-add order.
type Cart struct {
	lines []CartLine
}

// Add merges the line into the cart. Adding a name that is already present
// increments its quantity instead of appending a duplicate line. The returned
// line is the resulting state; merged reports whether an existing line was
// updated.
func (c *Cart) Add(line CartLine) (CartLine, bool) {
	for i := range c.lines {
		if c.lines[i].Name == line.Name {
			c.lines[i].Quantity += line.Quantity
			return c.lines[i], true
		}
	}
	c.lines = append(c.lines, line)
	return line, false
}

func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Empty() bool { return len(c.lines) == 0 }

func (c *Cart) Clear() { c.lines = nil }

type CartSummary struct {
	Lines []SummaryLine `json:"lines"`
	Total float64       `json:"total"`
}

type SummaryLine struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Subtotal float64 `json:"subtotal"`
}

func (c *Cart) Summary() CartSummary {
	var sum CartSummary
	for _, l := range c.lines {
		sub := float64(l.Quantity) * l.Price
		sum.Lines = append(sum.Lines, SummaryLine{Name: l.Name, Quantity: l.Quantity, Price: l.Price, Subtotal: sub})
		sum.Total += sub
	}
	return sum
}

// Item is a catalog entry as returned by the item service.
type Item struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Classification is the structured reading of a free-text message.
type Classification struct {
	Action   string         `json:"action"`
	Payload  map[string]any `json:"payload"`
	Language Language       `json:"lang"`
}

type ChatRequest struct {
	Action  string         `json:"action,omitempty"`
	Payload map[string]any `json:"payload,omitempty"`
	Message string         `json:"message,omitempty"`
}

type ChatResponse struct {
	Action     string       `json:"action,omitempty"`
	Message    string       `json:"message"`
	Categories []string     `json:"categories,omitempty"`
	Items      []Item       `json:"items,omitempty"`
	Cart       *CartSummary `json:"cart,omitempty"`
	User       *UserProfile `json:"user,omitempty"`
	Bill       any          `json:"bill,omitempty"`
}

// CoerceString renders a payload value as a trimmed string. Model-produced
// payloads sometimes carry numbers where text is expected (a phone sent as a
// JSON number); those are formatted rather than dropped.
func CoerceString(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return ""
	}
}

func stringField(p map[string]any, key string) string {
	return CoerceString(p[key])
}

func numberField(p map[string]any, key string) (float64, bool) {
	switch v := p[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
