// internal/domain/models_test.go
package domain

import (
	"testing"
)

func TestNewUserProfile_PhoneValidation(t *testing.T) {
	tests := []struct {
		name    string
		phone   string
		wantErr bool
	}{
		{name: "10 digits", phone: "0312345678", wantErr: false},
		{name: "11 digits", phone: "03123456789", wantErr: false},
		{name: "9 digits", phone: "031234567", wantErr: true},
		{name: "12 digits", phone: "031234567890", wantErr: true},
		{name: "letters", phone: "0312abc678", wantErr: true},
		{name: "empty", phone: "", wantErr: true},
		{name: "spaces", phone: "0312 345678", wantErr: true},
		{name: "plus prefix", phone: "+9231234567", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewUserProfile("Hamid", tt.phone, "Karachi")
			if (err != nil) != tt.wantErr {
				t.Errorf("NewUserProfile() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewUserProfile_RequiredFields(t *testing.T) {
	if _, err := NewUserProfile("", "0312345678", "Karachi"); err == nil {
		t.Error("expected error for empty name")
	}
	if _, err := NewUserProfile("Hamid", "0312345678", ""); err == nil {
		t.Error("expected error for empty address")
	}
}

func TestCart_AddMergesByName(t *testing.T) {
	var cart Cart

	first, _ := NewCartLine("Burger", 2, 100)
	second, _ := NewCartLine("Burger", 3, 100)

	if _, merged := cart.Add(first); merged {
		t.Error("first add should not merge")
	}
	result, merged := cart.Add(second)
	if !merged {
		t.Error("second add of same name should merge")
	}
	if result.Quantity != 5 {
		t.Errorf("merged quantity = %d, want 5", result.Quantity)
	}
	if len(cart.Lines()) != 1 {
		t.Errorf("cart has %d lines, want 1", len(cart.Lines()))
	}
}

func TestCart_SummaryTotals(t *testing.T) {
	var cart Cart
	a, _ := NewCartLine("A", 2, 100)
	b, _ := NewCartLine("B", 1, 50)
	cart.Add(a)
	cart.Add(b)

	sum := cart.Summary()
	if len(sum.Lines) != 2 {
		t.Fatalf("summary has %d lines, want 2", len(sum.Lines))
	}
	if sum.Lines[0].Subtotal != 200 || sum.Lines[1].Subtotal != 50 {
		t.Errorf("subtotals = %v, %v, want 200, 50", sum.Lines[0].Subtotal, sum.Lines[1].Subtotal)
	}
	if sum.Total != 250 {
		t.Errorf("total = %v, want 250", sum.Total)
	}
}

func TestCart_InsertionOrder(t *testing.T) {
	var cart Cart
	for _, name := range []string{"C", "A", "B"} {
		line, _ := NewCartLine(name, 1, 10)
		cart.Add(line)
	}
	lines := cart.Lines()
	got := []string{lines[0].Name, lines[1].Name, lines[2].Name}
	want := []string{"C", "A", "B"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %s, want %s (first-add order)", i, got[i], want[i])
		}
	}
}

func TestCartLineFromPayload(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]any
		wantErr bool
	}{
		{name: "valid", payload: map[string]any{"name": "Burger", "quantity": float64(2), "price": float64(100)}, wantErr: false},
		{name: "empty payload", payload: map[string]any{}, wantErr: true},
		{name: "zero quantity", payload: map[string]any{"name": "Burger", "quantity": float64(0), "price": float64(100)}, wantErr: true},
		{name: "fractional quantity", payload: map[string]any{"name": "Burger", "quantity": 1.5, "price": float64(100)}, wantErr: true},
		{name: "negative price", payload: map[string]any{"name": "Burger", "quantity": float64(1), "price": float64(-5)}, wantErr: true},
		{name: "missing name", payload: map[string]any{"quantity": float64(1), "price": float64(100)}, wantErr: true},
		{name: "numeric strings", payload: map[string]any{"name": "Burger", "quantity": "2", "price": "100"}, wantErr: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CartLineFromPayload(tt.payload)
			if (err != nil) != tt.wantErr {
				t.Errorf("CartLineFromPayload() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseLanguage(t *testing.T) {
	if ParseLanguage("ur") != LangUrdu {
		t.Error("ur should parse as urdu")
	}
	if ParseLanguage("UR ") != LangUrdu {
		t.Error("language parsing should trim and lowercase")
	}
	for _, s := range []string{"en", "", "fr", "english"} {
		if ParseLanguage(s) != LangEnglish {
			t.Errorf("ParseLanguage(%q) should default to english", s)
		}
	}
}

func TestCoerceString(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"trims text", "  Hamid  ", "Hamid"},
		{"formats a JSON number", float64(312), "312"},
		{"nil", nil, ""},
		{"unsupported type", true, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CoerceString(tt.in); got != tt.want {
				t.Errorf("CoerceString(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
