package tool

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	rajaongkirx "github.com/farhanfadillahr/shipping-price-checker/pkg/rajaongkir"
)

// PricingAPI is the slice of the pricing gateway the tools consume.
type PricingAPI interface {
	SearchDestination(ctx context.Context, keyword string) rajaongkirx.SearchResponse
	CalculateShippingCost(ctx context.Context, req rajaongkirx.CalculateRequest) rajaongkirx.CalculateResponse
}

func executeSearchDestination(ctx context.Context, api PricingAPI, args map[string]any) string {
	keyword, err := stringArg(args, "keyword")
	if err != nil {
		return fmt.Sprintf("Error searching for location: %s", err)
	}

	resp := api.SearchDestination(ctx, keyword)
	locations := rajaongkirx.FormatLocationOptions(resp)

	if len(locations) == 0 {
		return fmt.Sprintf("No locations found for '%s'. Please try a different spelling or use "+
			"a more general term (e.g., city name instead of specific address).", keyword)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d location(s) for '%s':\n\n", len(locations), keyword)
	for i, loc := range locations {
		fmt.Fprintf(&b, "%d. ID: %d - %s\n", i+1, loc.ID, loc.DisplayName)
		fmt.Fprintf(&b, "%s, %s, %s, %s\n", loc.Subdistrict, loc.District, loc.City, loc.Province)
		fmt.Fprintf(&b, "ZIP: %s\n\n", loc.ZipCode)
	}
	return b.String()
}

func executeCalculateShippingCost(ctx context.Context, api PricingAPI, args map[string]any) string {
	shipperID, err := intArg(args, "shipper_destination_id")
	if err != nil {
		return fmt.Sprintf("Error calculating shipping cost: %s", err)
	}
	receiverID, err := intArg(args, "receiver_destination_id")
	if err != nil {
		return fmt.Sprintf("Error calculating shipping cost: %s", err)
	}
	weight, err := floatArg(args, "weight")
	if err != nil {
		return fmt.Sprintf("Error calculating shipping cost: %s", err)
	}
	itemValue, err := floatArg(args, "item_value")
	if err != nil {
		return fmt.Sprintf("Error calculating shipping cost: %s", err)
	}

	req := rajaongkirx.CalculateRequest{
		ShipperDestinationID:  shipperID,
		ReceiverDestinationID: receiverID,
		WeightGrams:           weight,
		ItemValue:             itemValue,
		COD:                   optionalBoolArg(args, "cod"),
		OriginPinPoint:        optionalStringArg(args, "origin_pin_point"),
		DestinationPinPoint:   optionalStringArg(args, "destination_pin_point"),
	}

	return rajaongkirx.FormatShippingResults(api.CalculateShippingCost(ctx, req))
}

/* ----------------------------- arg coercion ----------------------------- */

func stringArg(args map[string]any, key string) (string, error) {
	raw, ok := args[key]
	if !ok {
		return "", fmt.Errorf("%s is required", key)
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%s must be a string", key)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%s is empty", key)
	}
	return s, nil
}

func optionalStringArg(args map[string]any, key string) string {
	s, _ := args[key].(string)
	return strings.TrimSpace(s)
}

// intArg accepts the numeric shapes a JSON tool-call payload can produce.
func intArg(args map[string]any, key string) (int, error) {
	raw, ok := args[key]
	if !ok {
		return 0, fmt.Errorf("%s is required", key)
	}
	switch v := raw.(type) {
	case float64:
		return int(v), nil
	case int:
		return v, nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("%s must be an integer", key)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("%s must be an integer", key)
	}
}

func floatArg(args map[string]any, key string) (float64, error) {
	raw, ok := args[key]
	if !ok {
		return 0, fmt.Errorf("%s is required", key)
	}
	switch v := raw.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("%s must be a number", key)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%s must be a number", key)
	}
}

func optionalBoolArg(args map[string]any, key string) bool {
	b, _ := args[key].(bool)
	return b
}
