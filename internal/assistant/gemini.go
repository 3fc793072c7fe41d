package assistant

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"github.com/shopspring/decimal"
	"google.golang.org/api/option"
)

// DefaultGeminiModel is used when no model name is configured.
const DefaultGeminiModel = "gemini-1.5-flash"

// maxToolRounds bounds the function-call loop so a misbehaving model cannot
// spin forever.
const maxToolRounds = 8

// GeminiResolver delegates intent recognition to Gemini with the shop
// operations declared as callable tools. Results of every called operation
// are sent back to the model, whose final text becomes the reply.
type GeminiResolver struct {
	client *genai.Client
	model  string
	ops    *Ops
}

func NewGeminiResolver(ctx context.Context, apiKey, modelName string, ops *Ops) (*GeminiResolver, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	if modelName == "" {
		modelName = DefaultGeminiModel
	}
	return &GeminiResolver{client: client, model: modelName, ops: ops}, nil
}

func (r *GeminiResolver) Close() error {
	return r.client.Close()
}

var shopTools = []*genai.Tool{{
	FunctionDeclarations: []*genai.FunctionDeclaration{
		{
			Name:        opSearchProducts,
			Description: "Search the grocery catalog by name, category or price range.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"query":    {Type: genai.TypeString, Description: "Product name search text"},
					"category": {Type: genai.TypeString, Description: "Category id to filter by"},
					"minPrice": {Type: genai.TypeNumber, Description: "Minimum price in dollars"},
					"maxPrice": {Type: genai.TypeNumber, Description: "Maximum price in dollars"},
				},
			},
		},
		{
			Name:        opSearchAndAddToCart,
			Description: "Find a product by name and add it to the user's cart.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"productName": {Type: genai.TypeString, Description: "Product name to find, e.g. 'bananas' or 'milk'"},
					"quantity":    {Type: genai.TypeNumber, Description: "How many to add (default 1)"},
				},
				Required: []string{"productName"},
			},
		},
		{
			Name:        opAddToCart,
			Description: "Add a product to the cart by its exact id.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"productId": {Type: genai.TypeString, Description: "Product id from a previous search"},
					"quantity":  {Type: genai.TypeNumber, Description: "How many to add"},
				},
				Required: []string{"productId", "quantity"},
			},
		},
		{
			Name:        opGetCartInfo,
			Description: "Get the current contents of the user's cart.",
			Parameters:  &genai.Schema{Type: genai.TypeObject, Properties: map[string]*genai.Schema{}},
		},
	},
}}

const systemPrompt = `You are the shopping assistant of BigShop, a grocery store.

Your role:
- help users find products (search_products)
- add products to their cart when asked (search_and_add_to_cart with the product name, or add_to_cart with an id from a search)
- answer what is in their cart (get_cart_info)
- recommend products and help with choices

When the user asks to ADD something, you must actually call a cart operation,
not just describe it. Be friendly and concise.`

// Resolve runs one stateless assistant turn: send the message, execute any
// function calls the model makes, feed the results back, and return the
// model's final text.
func (r *GeminiResolver) Resolve(ctx context.Context, userID, message string) (*Resolution, error) {
	model := r.client.GenerativeModel(r.model)
	model.Tools = shopTools
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemPrompt)}}

	cs := model.StartChat()
	res, err := cs.SendMessage(ctx, genai.Text(message))
	if err != nil {
		return nil, fmt.Errorf("error sending message: %w", err)
	}

	resolution := &Resolution{Operations: []Operation{}, Model: r.model}
	if res.UsageMetadata != nil {
		resolution.Usage.TotalTokens = int(res.UsageMetadata.TotalTokenCount)
	}

	for round := 0; round < maxToolRounds; round++ {
		part, ok := firstPart(res)
		if !ok {
			resolution.Message = "No response."
			return resolution, nil
		}
		funcCall, ok := part.(genai.FunctionCall)
		if !ok {
			resolution.Message = fmt.Sprintf("%v", part)
			return resolution, nil
		}

		op := r.dispatch(ctx, userID, funcCall)
		resolution.Operations = append(resolution.Operations, op)

		res, err = cs.SendMessage(ctx, genai.FunctionResponse{
			Name:     funcCall.Name,
			Response: map[string]interface{}{"result": op.Result},
		})
		if err != nil {
			return nil, fmt.Errorf("tool response error: %w", err)
		}
		if res.UsageMetadata != nil {
			resolution.Usage.TotalTokens = int(res.UsageMetadata.TotalTokenCount)
		}
	}

	resolution.Message = "No response."
	return resolution, nil
}

// firstPart returns the leading part of the first candidate. Blocked
// candidates (safety finish reasons) arrive with a nil Content.
func firstPart(res *genai.GenerateContentResponse) (genai.Part, bool) {
	if len(res.Candidates) == 0 {
		return nil, false
	}
	content := res.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return nil, false
	}
	return content.Parts[0], true
}

// dispatch executes one declared operation. Unknown names produce an error
// result for the model instead of failing the turn.
func (r *GeminiResolver) dispatch(ctx context.Context, userID string, call genai.FunctionCall) Operation {
	op := Operation{Function: call.Name, Args: call.Args}

	switch call.Name {
	case opSearchProducts:
		op.Result = r.ops.SearchProducts(ctx, SearchArgs{
			Query:    stringArg(call.Args, "query"),
			Category: stringArg(call.Args, "category"),
			MinPrice: decimalArg(call.Args, "minPrice"),
			MaxPrice: decimalArg(call.Args, "maxPrice"),
		})
	case opSearchAndAddToCart:
		op.Result = r.ops.SearchAndAddToCart(ctx, userID,
			stringArg(call.Args, "productName"), intArg(call.Args, "quantity", 1))
	case opAddToCart:
		op.Result = r.ops.AddToCart(ctx, userID,
			stringArg(call.Args, "productId"), intArg(call.Args, "quantity", 1))
	case opGetCartInfo:
		op.Result = r.ops.GetCartInfo(ctx, userID)
	default:
		op.Result = map[string]interface{}{"error": "unknown function"}
	}
	return op
}

func stringArg(args map[string]interface{}, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}

func intArg(args map[string]interface{}, key string, def int) int {
	if v, ok := args[key].(float64); ok && v > 0 {
		return int(v)
	}
	return def
}

func decimalArg(args map[string]interface{}, key string) *decimal.Decimal {
	if v, ok := args[key].(float64); ok {
		d := decimal.NewFromFloat(v)
		return &d
	}
	return nil
}
