// pkg/locales/locales.go
package locales

// Phrases holds the canned response strings for one language.
type Phrases struct {
	Welcome        string
	AskName        string
	AskPhone       string
	AskAddress     string
	LoggedIn       string // takes the user's name
	LoggedOut      string
	CartEmpty      string
	RunningTotal   string // takes the formatted total
	Added          string // takes quantity, item name
	Updated        string // takes item name, quantity
	SelectCategory string
	ItemsIn        string // takes the category name
	ItemsHint      string
	ChoosePayment  string
	CheckoutDone   string
}

var byLang = map[string]Phrases{
	"en": {
		Welcome:        "Welcome! What's your name?",
		AskName:        "What's your name?",
		AskPhone:       "Enter phone number (10/11 digits):",
		AskAddress:     "Enter your address:",
		LoggedIn:       "Welcome %s! You're logged in.",
		LoggedOut:      "Logged out & cart cleared.",
		CartEmpty:      "Cart is empty.",
		RunningTotal:   "Running Total: Rs%s",
		Added:          "Added %d x %s",
		Updated:        "Updated %s qty = %d",
		SelectCategory: "Please select a category:",
		ItemsIn:        "Items in '%s':",
		ItemsHint:      "(type item number to add, 'back' for categories, 'checkout' to finish)",
		ChoosePayment:  "Choose payment: 1. Cash on Delivery  2. Online Transfer",
		CheckoutDone:   "Checkout complete!",
	},
	"ur": {
		Welcome:        "Khush amdeed! Aap ka naam kya hai?",
		AskName:        "Aap ka naam kya hai?",
		AskPhone:       "Phone number likhein (10/11 digits):",
		AskAddress:     "Apna address likhein:",
		LoggedIn:       "Khush amdeed %s! Aap login ho gaye.",
		LoggedOut:      "Aap logout ho gaye, cart saaf ho gayi.",
		CartEmpty:      "Cart khaali hai.",
		RunningTotal:   "Total: Rs%s",
		Added:          "%d x %s cart mein daal diya",
		Updated:        "%s ki miqdaar ab %d hai",
		SelectCategory: "Koi category chunein:",
		ItemsIn:        "'%s' ki cheezein:",
		ItemsHint:      "(item number likhein, 'back' categories ke liye, 'checkout' mukammal karne ke liye)",
		ChoosePayment:  "Payment chunein: 1. Cash on Delivery  2. Online Transfer",
		CheckoutDone:   "Checkout mukammal!",
	},
}

// For returns the phrase set for lang, falling back to english.
func For(lang string) Phrases {
	if p, ok := byLang[lang]; ok {
		return p
	}
	return byLang["en"]
}
