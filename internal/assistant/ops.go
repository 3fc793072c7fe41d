package assistant

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/bigshop/bigshop-golang/internal/models"
	"github.com/bigshop/bigshop-golang/internal/services"
)

// Operation names exposed to intent resolvers.
const (
	opSearchProducts     = "search_products"
	opSearchAndAddToCart = "search_and_add_to_cart"
	opAddToCart          = "add_to_cart"
	opGetCartInfo        = "get_cart_info"
)

// Operation is one invoked operation with its arguments and result, in the
// order the resolver called them.
type Operation struct {
	Function string                 `json:"function"`
	Args     map[string]interface{} `json:"args"`
	Result   interface{}            `json:"result"`
}

// catalogAPI and cartAPI are the slices of the services the operations use.
type catalogAPI interface {
	ListProducts(ctx context.Context, f services.ProductFilter) (*services.ProductPage, error)
	FindProductByName(ctx context.Context, name string) (*models.Product, error)
}

type cartAPI interface {
	GetCart(ctx context.Context, userID string) (*services.Cart, error)
	AddToCart(ctx context.Context, userID, productID string, quantity int) (*services.CartMutation, error)
}

// Ops executes the catalog/cart operations a resolver may invoke. Every
// method returns a plain result value, never an error: failures become
// user-readable messages so a resolver can phrase them.
type Ops struct {
	catalog catalogAPI
	cart    cartAPI
}

func NewOps(catalog catalogAPI, cart cartAPI) *Ops {
	return &Ops{catalog: catalog, cart: cart}
}

// SearchArgs are the optional filters for search_products.
type SearchArgs struct {
	Query    string
	Category string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
}

// ProductHit is the compact product shape returned to resolvers.
type ProductHit struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	ShortDescription *string `json:"shortDescription"`
	Price            string  `json:"price"`
	ComparePrice     *string `json:"comparePrice,omitempty"`
	Inventory        int     `json:"inventory"`
}

// SearchResult is the result of search_products.
type SearchResult struct {
	Products []ProductHit `json:"products"`
	Count    int          `json:"count"`
	Message  string       `json:"message"`
}

// SearchProducts lists up to ten active products matching the filters.
func (o *Ops) SearchProducts(ctx context.Context, args SearchArgs) SearchResult {
	page, err := o.catalog.ListProducts(ctx, services.ProductFilter{
		CategoryID: args.Category,
		Search:     args.Query,
		MinPrice:   args.MinPrice,
		MaxPrice:   args.MaxPrice,
		Limit:      10,
	})
	if err != nil {
		return SearchResult{Products: []ProductHit{}, Message: "Something went wrong while searching for products"}
	}

	hits := make([]ProductHit, 0, len(page.Data))
	for _, p := range page.Data {
		hit := ProductHit{
			ID:               p.ID,
			Name:             p.Name,
			ShortDescription: p.ShortDescription,
			Price:            p.Price.StringFixed(2),
			Inventory:        p.Inventory,
		}
		if p.ComparePrice != nil {
			cp := p.ComparePrice.StringFixed(2)
			hit.ComparePrice = &cp
		}
		hits = append(hits, hit)
	}

	message := "No products matched your request"
	if len(hits) > 0 {
		message = fmt.Sprintf("Found %d product(s)", len(hits))
	}
	return SearchResult{Products: hits, Count: len(hits), Message: message}
}

// AddResult is the result of add_to_cart and search_and_add_to_cart.
type AddResult struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Product  string `json:"product,omitempty"`
	Quantity int    `json:"quantity,omitempty"`
	Price    string `json:"price,omitempty"`
}

// SearchAndAddToCart resolves a free-text product name to the first
// substring match and adds it to the cart with the usual stock checks.
func (o *Ops) SearchAndAddToCart(ctx context.Context, userID, productName string, quantity int) AddResult {
	if quantity < 1 {
		quantity = 1
	}

	product, err := o.catalog.FindProductByName(ctx, productName)
	if errors.Is(err, services.ErrProductNotFound) {
		return AddResult{Message: fmt.Sprintf("Couldn't find %q. Try another name.", productName)}
	}
	if err != nil {
		return AddResult{Message: "Something went wrong while searching for the product"}
	}

	return o.addProduct(ctx, userID, product.ID, quantity)
}

// AddToCart adds a known product id to the cart.
func (o *Ops) AddToCart(ctx context.Context, userID, productID string, quantity int) AddResult {
	return o.addProduct(ctx, userID, productID, quantity)
}

func (o *Ops) addProduct(ctx context.Context, userID, productID string, quantity int) AddResult {
	mutation, err := o.cart.AddToCart(ctx, userID, productID, quantity)
	if err != nil {
		var stockErr *services.InsufficientStockError
		switch {
		case errors.As(err, &stockErr):
			return AddResult{Message: fmt.Sprintf("Not enough stock. Available: %d", stockErr.Available)}
		case errors.Is(err, services.ErrProductNotFound):
			return AddResult{Message: "Product not found or unavailable"}
		default:
			return AddResult{Message: "Something went wrong while adding the product to your cart"}
		}
	}

	return AddResult{
		Success:  true,
		Message:  fmt.Sprintf("%q added to your cart! You now have %d.", mutation.Product.Name, mutation.Item.Quantity),
		Product:  mutation.Product.Name,
		Quantity: mutation.Item.Quantity,
		Price:    mutation.Product.Price.StringFixed(2),
	}
}

// CartInfoItem is one cart line in a get_cart_info result.
type CartInfoItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
}

// CartInfoResult is the result of get_cart_info.
type CartInfoResult struct {
	Items       []CartInfoItem `json:"items"`
	TotalItems  int            `json:"totalItems"`
	TotalAmount string         `json:"totalAmount"`
	Message     string         `json:"message"`
}

// GetCartInfo summarizes the user's current cart.
func (o *Ops) GetCartInfo(ctx context.Context, userID string) CartInfoResult {
	cart, err := o.cart.GetCart(ctx, userID)
	if err != nil {
		return CartInfoResult{Items: []CartInfoItem{}, TotalAmount: "0.00", Message: "Something went wrong while reading your cart"}
	}

	items := make([]CartInfoItem, 0, len(cart.Items))
	for _, line := range cart.Items {
		items = append(items, CartInfoItem{
			Name:     line.Product.Name,
			Quantity: line.Quantity,
			Price:    line.Product.Price.StringFixed(2),
		})
	}

	message := "Your cart is empty"
	if cart.TotalItems > 0 {
		message = fmt.Sprintf("Your cart has %d item(s) totalling $%s", cart.TotalItems, cart.TotalAmount)
	}
	return CartInfoResult{
		Items:       items,
		TotalItems:  cart.TotalItems,
		TotalAmount: cart.TotalAmount,
		Message:     message,
	}
}
