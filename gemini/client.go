// Package gemini resolves free-text asset identifiers into structured
// metadata by asking a Gemini model, constrained to a fixed JSON response
// schema. It is the only market-data source of the tracker.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Client performs natural-language asset lookups. It makes a single attempt
// per call; retrying is the caller's decision.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient initializes the Gemini client. The API credential is read from
// the process environment by the SDK; a missing credential surfaces as a
// lookup error on the first call, not here.
func NewClient(ctx context.Context) (*Client, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not initialize Gemini's client: %w", err)
	}
	return &Client{client: client, model: model}, nil
}

// assetSchema constrains a lookup response to exactly the fields the
// tracker needs. Field names are part of the wire contract.
var assetSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"name": {
			Type:        genai.TypeString,
			Description: "The usual display name of the cryptocurrency, e.g. \"Bitcoin\".",
		},
		"symbol": {
			Type:        genai.TypeString,
			Description: "The ticker symbol, e.g. \"BTC\".",
		},
		"blockchain": {
			Type:        genai.TypeString,
			Description: "The blockchain or network the asset lives on.",
		},
		"price_usd": {
			Type:        genai.TypeNumber,
			Description: "The current unit price in USD.",
		},
		"ath_usd": {
			Type:        genai.TypeNumber,
			Description: "The all-time-high unit price in USD.",
		},
	},
	Required: []string{"name", "symbol", "blockchain", "price_usd", "ath_usd"},
}

// batchSchema wraps a list of asset objects with the USD to EUR rate.
var batchSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"assets": {
			Type:  genai.TypeArray,
			Items: assetSchema,
		},
		"eur_rate": {
			Type:        genai.TypeNumber,
			Description: "The current USD to EUR exchange rate.",
		},
	},
	Required: []string{"assets", "eur_rate"},
}

const systemInstruction = `You are a cryptocurrency market data service.
You answer with your best knowledge of current prices, in JSON only,
strictly following the response schema. Prices are in USD. Never invent an
asset: if you cannot identify the requested cryptocurrency, leave every
field of its object empty.`

// generate issues one schema-constrained request and returns the raw JSON
// payload text.
func (c *Client) generate(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	config := &genai.GenerateContentConfig{
		ResponseMIMEType:  "application/json",
		ResponseSchema:    schema,
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
	}
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), config)
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from model")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
