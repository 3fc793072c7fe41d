package assistant

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// keywordModel is the model name reported by the rule-based resolver.
const keywordModel = "keyword-assistant"

// KeywordResolver maps messages to operations with fixed substring checks.
// It is fully deterministic and needs no external service.
type KeywordResolver struct {
	ops *Ops
}

func NewKeywordResolver(ops *Ops) *KeywordResolver {
	return &KeywordResolver{ops: ops}
}

var (
	addKeywords       = []string{"add", "buy", "want to buy", "put"}
	cartKeywords      = []string{"cart", "basket"}
	searchKeywords    = []string{"find", "search", "show", "looking for", "do you have"}
	recommendKeywords = []string{"recommend", "suggest", "breakfast", "advice"}
)

// Resolve picks exactly one intent per message. Checks run in priority
// order: add to cart, cart contents, search, recommendation, greeting.
func (r *KeywordResolver) Resolve(ctx context.Context, userID, message string) (*Resolution, error) {
	lower := strings.ToLower(message)

	switch {
	case containsAny(lower, addKeywords):
		return r.resolveAdd(ctx, userID, lower)
	case containsAny(lower, cartKeywords):
		return r.resolveCartInfo(ctx, userID)
	case containsAny(lower, searchKeywords):
		return r.resolveSearch(ctx, lower)
	case containsAny(lower, recommendKeywords):
		return r.resolveRecommend(ctx)
	default:
		return &Resolution{Message: greeting, Operations: []Operation{}, Model: keywordModel}, nil
	}
}

func (r *KeywordResolver) resolveAdd(ctx context.Context, userID, lower string) (*Resolution, error) {
	name, quantity := parseAddRequest(lower)
	if name == "" {
		return &Resolution{
			Message:    "I couldn't tell which product you want to add. Could you name it?",
			Operations: []Operation{},
			Model:      keywordModel,
		}, nil
	}

	result := r.ops.SearchAndAddToCart(ctx, userID, name, quantity)
	op := Operation{
		Function: opSearchAndAddToCart,
		Args:     map[string]interface{}{"productName": name, "quantity": quantity},
		Result:   result,
	}
	return &Resolution{Message: result.Message, Operations: []Operation{op}, Model: keywordModel}, nil
}

func (r *KeywordResolver) resolveCartInfo(ctx context.Context, userID string) (*Resolution, error) {
	result := r.ops.GetCartInfo(ctx, userID)
	op := Operation{Function: opGetCartInfo, Args: map[string]interface{}{}, Result: result}

	if result.TotalItems == 0 {
		return &Resolution{
			Message:    "Your cart is empty. Want to add something?",
			Operations: []Operation{op},
			Model:      keywordModel,
		}, nil
	}

	var b strings.Builder
	b.WriteString("In your cart:\n\n")
	for _, item := range result.Items {
		fmt.Fprintf(&b, "- %s x%d ($%s)\n", item.Name, item.Quantity, item.Price)
	}
	fmt.Fprintf(&b, "\nTotal: %d item(s) for $%s", result.TotalItems, result.TotalAmount)

	return &Resolution{Message: b.String(), Operations: []Operation{op}, Model: keywordModel}, nil
}

func (r *KeywordResolver) resolveSearch(ctx context.Context, lower string) (*Resolution, error) {
	query := parseSearchQuery(lower)
	result := r.ops.SearchProducts(ctx, SearchArgs{Query: query})
	op := Operation{Function: opSearchProducts, Args: map[string]interface{}{"query": query}, Result: result}

	if result.Count == 0 {
		return &Resolution{
			Message:    "I couldn't find anything matching that. Try another name!",
			Operations: []Operation{op},
			Model:      keywordModel,
		}, nil
	}

	var b strings.Builder
	b.WriteString("Here's what I found:\n\n")
	for _, p := range result.Products {
		fmt.Fprintf(&b, "- %s ($%s)\n", p.Name, p.Price)
	}
	b.WriteString("\nWant me to add something to your cart?")

	return &Resolution{Message: b.String(), Operations: []Operation{op}, Model: keywordModel}, nil
}

func (r *KeywordResolver) resolveRecommend(ctx context.Context) (*Resolution, error) {
	result := r.ops.SearchProducts(ctx, SearchArgs{})
	op := Operation{Function: opSearchProducts, Args: map[string]interface{}{}, Result: result}

	if result.Count == 0 {
		return &Resolution{
			Message:    "Nothing to recommend right now, sorry!",
			Operations: []Operation{op},
			Model:      keywordModel,
		}, nil
	}

	var b strings.Builder
	b.WriteString("Here are some picks for you:\n\n")
	for _, p := range result.Products {
		if p.ShortDescription != nil {
			fmt.Fprintf(&b, "- %s ($%s) — %s\n", p.Name, p.Price, *p.ShortDescription)
		} else {
			fmt.Fprintf(&b, "- %s ($%s)\n", p.Name, p.Price)
		}
	}
	b.WriteString("\nWant me to add something to your cart?")

	return &Resolution{Message: b.String(), Operations: []Operation{op}, Model: keywordModel}, nil
}

const greeting = `Hi! I'm your BigShop shopping assistant.

I can help you:
- find products ("find milk")
- add items to your cart ("add 2 bananas")
- check your cart ("what's in my cart?")
- pick something out ("what do you recommend for breakfast?")`

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

// addStopwords are tokens dropped while extracting the product name from an
// add-to-cart message.
var addStopwords = map[string]bool{
	"to": true, "my": true, "the": true, "a": true, "an": true, "some": true,
	"please": true, "of": true, "cart": true, "basket": true, "in": true,
	"into": true, "x": true, "pcs": true, "units": true,
}

// parseAddRequest pulls a product name and quantity out of a lowercased
// add-to-cart message. The first integer token becomes the quantity.
func parseAddRequest(lower string) (string, int) {
	quantity := 1
	fields := strings.Fields(lower)

	start := -1
	for i, f := range fields {
		if f == "add" || f == "buy" || f == "put" {
			start = i + 1
			break
		}
	}
	if start < 0 || start >= len(fields) {
		return "", quantity
	}

	var nameParts []string
	for _, f := range fields[start:] {
		f = strings.Trim(f, ".,!?")
		if n, err := strconv.Atoi(f); err == nil && n > 0 {
			quantity = n
			continue
		}
		if addStopwords[f] {
			continue
		}
		nameParts = append(nameParts, f)
	}
	return strings.Join(nameParts, " "), quantity
}

var searchStopwords = map[string]bool{
	"find": true, "search": true, "show": true, "looking": true, "for": true,
	"do": true, "you": true, "have": true, "me": true, "some": true, "a": true,
	"an": true, "the": true, "please": true, "products": true, "product": true,
	"any": true, "got": true, "i'm": true, "im": true,
}

// parseSearchQuery strips intent words and keeps the rest as the search
// term. An empty term lists the catalog's first page.
func parseSearchQuery(lower string) string {
	var parts []string
	for _, f := range strings.Fields(lower) {
		f = strings.Trim(f, ".,!?")
		if searchStopwords[f] {
			continue
		}
		parts = append(parts, f)
	}
	return strings.Join(parts, " ")
}
