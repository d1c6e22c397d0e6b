package gemini

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/coinfolio"
)

// LookupOne resolves a single free-text identifier (name or symbol) into an
// asset seed. Transport failures and malformed payloads are both reported as
// a *coinfolio.LookupError naming the identifier.
func (c *Client) LookupOne(ctx context.Context, identifier string) (coinfolio.AssetSeed, error) {
	prompt := fmt.Sprintf("Give the current market data for the cryptocurrency %q.", identifier)
	payload, err := c.generate(ctx, prompt, assetSchema)
	if err != nil {
		return coinfolio.AssetSeed{}, &coinfolio.LookupError{Identifier: identifier, Err: err}
	}
	seed, err := parseSeed([]byte(payload))
	if err != nil {
		return coinfolio.AssetSeed{}, &coinfolio.LookupError{Identifier: identifier, Err: err}
	}
	return seed, nil
}

// LookupSeedBatch resolves the fixed startup list plus the USD to EUR
// exchange rate. The batch is all-or-nothing: a partial response is a single
// failure and nothing is seeded.
func (c *Client) LookupSeedBatch(ctx context.Context, identifiers []string) ([]coinfolio.AssetSeed, coinfolio.Quantity, error) {
	prompt := fmt.Sprintf("Give the current market data for each of the following cryptocurrencies: %q. Also give the current USD to EUR exchange rate.", identifiers)
	batch := fmt.Sprintf("%v", identifiers)
	payload, err := c.generate(ctx, prompt, batchSchema)
	if err != nil {
		return nil, coinfolio.Quantity{}, &coinfolio.LookupError{Identifier: batch, Err: err}
	}
	seeds, rate, err := parseSeedBatch([]byte(payload), len(identifiers))
	if err != nil {
		return nil, coinfolio.Quantity{}, &coinfolio.LookupError{Identifier: batch, Err: err}
	}
	return seeds, rate, nil
}

// parseSeed parses one asset object. It is strict: a missing field, a wrong
// type, or a value violating the data model is an error, and nothing is
// returned.
func parseSeed(payload []byte) (coinfolio.AssetSeed, error) {
	var jobj any
	if err := json.Unmarshal(payload, &jobj); err != nil {
		return coinfolio.AssetSeed{}, fmt.Errorf("unparsable payload: %w", err)
	}
	return seedFrom(jobj)
}

// parseSeedBatch parses the seed list and the exchange rate. A list shorter
// or longer than requested means some identifiers went unresolved, which is
// one hard failure.
func parseSeedBatch(payload []byte, want int) ([]coinfolio.AssetSeed, coinfolio.Quantity, error) {
	var jobj any
	if err := json.Unmarshal(payload, &jobj); err != nil {
		return nil, coinfolio.Quantity{}, fmt.Errorf("unparsable payload: %w", err)
	}

	jassets, err := jsonpath.Get("$.assets", jobj)
	if err != nil {
		return nil, coinfolio.Quantity{}, fmt.Errorf("missing assets list: %w", err)
	}
	jlist, ok := jassets.([]any)
	if !ok {
		return nil, coinfolio.Quantity{}, fmt.Errorf("assets is not a list but %T", jassets)
	}
	if len(jlist) != want {
		return nil, coinfolio.Quantity{}, fmt.Errorf("partial response: asked %d assets, got %d", want, len(jlist))
	}

	seeds := make([]coinfolio.AssetSeed, 0, len(jlist))
	for _, jasset := range jlist {
		seed, err := seedFrom(jasset)
		if err != nil {
			return nil, coinfolio.Quantity{}, err
		}
		seeds = append(seeds, seed)
	}

	rate, err := numberAt(jobj, "$.eur_rate")
	if err != nil {
		return nil, coinfolio.Quantity{}, err
	}
	if rate < 0 {
		return nil, coinfolio.Quantity{}, fmt.Errorf("negative exchange rate %v", rate)
	}
	return seeds, coinfolio.Q(rate), nil
}

// seedFrom extracts and validates one asset seed from a decoded JSON value.
func seedFrom(jobj any) (coinfolio.AssetSeed, error) {
	name, err := stringAt(jobj, "$.name")
	if err != nil {
		return coinfolio.AssetSeed{}, err
	}
	symbol, err := stringAt(jobj, "$.symbol")
	if err != nil {
		return coinfolio.AssetSeed{}, err
	}
	chain, err := stringAt(jobj, "$.blockchain")
	if err != nil {
		return coinfolio.AssetSeed{}, err
	}
	price, err := numberAt(jobj, "$.price_usd")
	if err != nil {
		return coinfolio.AssetSeed{}, err
	}
	ath, err := numberAt(jobj, "$.ath_usd")
	if err != nil {
		return coinfolio.AssetSeed{}, err
	}

	seed := coinfolio.AssetSeed{
		Name:   name,
		Symbol: symbol,
		Chain:  chain,
		Price:  coinfolio.M(price, coinfolio.QuoteCurrency),
		ATH:    coinfolio.M(ath, coinfolio.QuoteCurrency),
	}
	return seed, seed.Validate()
}

// stringAt reads a required string field with a jsonpath query.
func stringAt(jobj any, path string) (string, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return "", fmt.Errorf("missing field %q: %w", path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1
	// answer, or a single answer: by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("field %q is not a string but %T", path, jval)
	}
	return val, nil
}

// numberAt reads a required numeric field with a jsonpath query.
func numberAt(jobj any, path string) (float64, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("missing field %q: %w", path, err)
	}
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("field %q is not a number but %T", path, jval)
	}
	return val, nil
}
