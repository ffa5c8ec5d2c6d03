// internal/application/chat_service.go
package application

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/rkarim/chatcart/internal/domain"
	"github.com/rkarim/chatcart/internal/ports"
	"github.com/rkarim/chatcart/pkg/locales"
)

var acceptedPayments = []string{"Cash on Delivery", "Online Transfer"}

var loginFields = []string{"name", "phone", "address"}

// ChatService dispatches one structured action against a session. Free text
// is classified first; a structured action in the same request is ignored
// when text is present.
type ChatService struct {
	catalog    *CatalogService
	gateway    ports.GatewayPort
	classifier *Classifier
	log        logrus.FieldLogger
}

func NewChatService(catalog *CatalogService, gateway ports.GatewayPort, classifier *Classifier, log logrus.FieldLogger) *ChatService {
	return &ChatService{catalog: catalog, gateway: gateway, classifier: classifier, log: log}
}

func (s *ChatService) Handle(ctx context.Context, sess *Session, req domain.ChatRequest) (*domain.ChatResponse, error) {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	var action string
	var payload map[string]any
	switch {
	case req.Message != "":
		cls := s.classifier.Classify(ctx, req.Message)
		action = strings.ToLower(cls.Action)
		payload = cls.Payload
		sess.Lang = cls.Language
	case req.Action != "":
		action = strings.ToLower(req.Action)
		payload = req.Payload
	default:
		return nil, &domain.PreconditionError{Reason: "invalid request"}
	}
	if payload == nil {
		payload = map[string]any{}
	}

	s.log.WithFields(logrus.Fields{"session": sess.ID, "action": action}).Debug("dispatching")

	resp, err := s.dispatch(ctx, sess, action, payload)
	if err != nil {
		return nil, err
	}
	resp.Action = action
	return resp, nil
}

func (s *ChatService) dispatch(ctx context.Context, sess *Session, action string, payload map[string]any) (*domain.ChatResponse, error) {
	switch action {
	case domain.ActionGreet:
		return &domain.ChatResponse{Message: s.phrases(sess).Welcome}, nil
	case domain.ActionLoginProgress:
		return s.loginProgress(sess, payload)
	case domain.ActionLogin:
		return s.login(sess, payload)
	case domain.ActionListCategories:
		return s.listCategories(ctx)
	case domain.ActionListItems:
		return s.listItems(ctx, payload)
	case domain.ActionAddToCart:
		return s.addToCart(sess, payload)
	case domain.ActionShowCart:
		return s.showCart(sess)
	case domain.ActionCheckout:
		return s.checkout(ctx, sess, payload)
	case domain.ActionLogout:
		return s.logout(sess)
	default:
		return nil, &domain.PreconditionError{Reason: "invalid action"}
	}
}

// loginProgress collects name/phone/address across turns. Once all three are
// present the profile is constructed; a validation failure is reported in the
// message with the session left untouched, so the user can resend the bad
// field.
func (s *ChatService) loginProgress(sess *Session, payload map[string]any) (*domain.ChatResponse, error) {
	for _, f := range loginFields {
		if v, ok := payload[f]; ok {
			if str := domain.CoerceString(v); str != "" {
				sess.PendingLogin[f] = str
			}
		}
	}
	var missing []string
	for _, f := range loginFields {
		if _, ok := sess.PendingLogin[f]; !ok {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		p := s.phrases(sess)
		prompts := map[string]string{"name": p.AskName, "phone": p.AskPhone, "address": p.AskAddress}
		return &domain.ChatResponse{Message: prompts[missing[0]]}, nil
	}
	user, err := domain.NewUserProfile(sess.PendingLogin["name"], sess.PendingLogin["phone"], sess.PendingLogin["address"])
	if err != nil {
		return &domain.ChatResponse{Message: "Error: " + err.Error()}, nil
	}
	sess.User = user
	sess.Cart.Clear()
	sess.PendingLogin = make(map[string]string)
	return &domain.ChatResponse{
		Message: fmt.Sprintf(s.phrases(sess).LoggedIn, user.Name),
		User:    user,
	}, nil
}

// login constructs the profile from a complete structured payload in one
// shot, unlike the turn-by-turn login_progress path.
func (s *ChatService) login(sess *Session, payload map[string]any) (*domain.ChatResponse, error) {
	user, err := domain.UserProfileFromPayload(payload)
	if err != nil {
		return nil, err
	}
	sess.User = user
	sess.Cart.Clear()
	sess.PendingLogin = make(map[string]string)
	return &domain.ChatResponse{
		Message: fmt.Sprintf(s.phrases(sess).LoggedIn, user.Name),
		User:    user,
	}, nil
}

func (s *ChatService) listCategories(ctx context.Context) (*domain.ChatResponse, error) {
	cats := s.catalog.Categories(ctx)
	if len(cats) == 0 {
		return nil, &domain.UnavailableError{Reason: "No categories available"}
	}
	var b strings.Builder
	b.WriteString(locales.For("en").SelectCategory)
	for i, c := range cats {
		b.WriteString(fmt.Sprintf("\n%d. %s", i+1, c))
	}
	return &domain.ChatResponse{Categories: cats, Message: b.String()}, nil
}

func (s *ChatService) listItems(ctx context.Context, payload map[string]any) (*domain.ChatResponse, error) {
	cat, _ := payload["category_name"].(string)
	if cat == "" {
		return nil, &domain.PreconditionError{Reason: "Missing 'category_name'"}
	}
	items := s.catalog.Items(ctx, cat)
	p := locales.For("en")
	var b strings.Builder
	b.WriteString(fmt.Sprintf(p.ItemsIn, cat))
	for i, it := range items {
		b.WriteString(fmt.Sprintf("\n%d. %s - Rs%s", i+1, it.Name, money(it.Price)))
	}
	b.WriteString("\n" + p.ItemsHint)
	return &domain.ChatResponse{Items: items, Message: b.String()}, nil
}

func (s *ChatService) addToCart(sess *Session, payload map[string]any) (*domain.ChatResponse, error) {
	if sess.User == nil {
		return nil, domain.ErrLoginRequired
	}
	line, err := domain.CartLineFromPayload(payload)
	if err != nil {
		return nil, err
	}
	p := s.phrases(sess)
	result, merged := sess.Cart.Add(line)
	var msg string
	if merged {
		msg = fmt.Sprintf(p.Updated, result.Name, result.Quantity)
	} else {
		msg = fmt.Sprintf(p.Added, result.Quantity, result.Name)
	}
	sum := sess.Cart.Summary()
	return &domain.ChatResponse{
		Message: msg + "\n\n" + s.cartText(sess),
		Cart:    &sum,
	}, nil
}

func (s *ChatService) showCart(sess *Session) (*domain.ChatResponse, error) {
	if sess.Cart.Empty() {
		return &domain.ChatResponse{Message: s.phrases(sess).CartEmpty}, nil
	}
	sum := sess.Cart.Summary()
	return &domain.ChatResponse{Message: s.cartText(sess), Cart: &sum}, nil
}

// checkout prompts for the payment method without touching state, rejects
// anything but the two accepted methods, and only clears the cart after the
// billing call succeeds.
func (s *ChatService) checkout(ctx context.Context, sess *Session, payload map[string]any) (*domain.ChatResponse, error) {
	if sess.User == nil {
		return nil, domain.ErrLoginRequired
	}
	if sess.Cart.Empty() {
		return nil, &domain.PreconditionError{Reason: "Cart is empty"}
	}
	pm, _ := payload["payment_method"].(string)
	if pm == "" {
		return &domain.ChatResponse{Message: s.phrases(sess).ChoosePayment}, nil
	}
	canonical := ""
	for _, accepted := range acceptedPayments {
		if strings.EqualFold(strings.TrimSpace(pm), accepted) {
			canonical = accepted
			break
		}
	}
	if canonical == "" {
		return nil, &domain.ValidationError{Reason: "payment_method must be 'Cash on Delivery' or 'Online Transfer'"}
	}
	sess.User.PaymentMethod = canonical
	bill, err := s.gateway.SubmitBill(ctx, sess.User, sess.Cart.Lines())
	if err != nil {
		return nil, err
	}
	sess.Cart.Clear()
	return &domain.ChatResponse{Message: s.phrases(sess).CheckoutDone, Bill: bill}, nil
}

func (s *ChatService) logout(sess *Session) (*domain.ChatResponse, error) {
	sess.User = nil
	sess.Cart.Clear()
	sess.PendingLogin = make(map[string]string)
	return &domain.ChatResponse{Message: s.phrases(sess).LoggedOut}, nil
}

func (s *ChatService) phrases(sess *Session) locales.Phrases {
	return locales.For(string(sess.Lang))
}

func (s *ChatService) cartText(sess *Session) string {
	p := s.phrases(sess)
	sum := sess.Cart.Summary()
	if len(sum.Lines) == 0 {
		return p.CartEmpty
	}
	var b strings.Builder
	for i, l := range sum.Lines {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("%d. %s x %d = Rs%s", i+1, l.Name, l.Quantity, money(l.Subtotal)))
	}
	b.WriteString("\n\n" + fmt.Sprintf(p.RunningTotal, money(sum.Total)))
	return b.String()
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
