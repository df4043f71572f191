// Package tool declares the schema-validated operations exposed to the agent
// loop and their executors. Tool output is always plain text; failures are
// rendered into the text so the orchestration layer never sees an error.
package tool

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/schema"

	contractx "github.com/farhanfadillahr/shipping-price-checker/agent/contract"
)

const (
	ToolSearchDestination     = "search_destination"
	ToolCalculateShippingCost = "calculate_shipping_cost"
)

// Infos returns the tool declarations consumed by the agent loop. The
// descriptions steer tool selection and are part of the contract.
func Infos() []*schema.ToolInfo {
	return []*schema.ToolInfo{
		{
			Name: ToolSearchDestination,
			Desc: "Search for location information based on a keyword. Use this tool when you need " +
				"to find location IDs for shipping calculations. The keyword can be a city name, " +
				"district, or subdistrict name. Returns a list of matching locations with their IDs " +
				"and full address details.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"keyword": {
					Type:     schema.String,
					Desc:     "Location keyword to search for (city, district, subdistrict name)",
					Required: true,
				},
			}),
		},
		{
			Name: ToolCalculateShippingCost,
			Desc: "Calculate shipping costs between two locations. Use this tool after you have " +
				"obtained both origin and destination location IDs from the search_destination tool. " +
				"Returns detailed shipping options with costs, delivery times, and courier information.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"shipper_destination_id": {
					Type:     schema.Integer,
					Desc:     "Origin location ID from destination search",
					Required: true,
				},
				"receiver_destination_id": {
					Type:     schema.Integer,
					Desc:     "Destination location ID from destination search",
					Required: true,
				},
				"weight": {
					Type:     schema.Number,
					Desc:     "Package weight in grams",
					Required: true,
				},
				"item_value": {
					Type:     schema.Number,
					Desc:     "Value of the item being shipped in Rupiah",
					Required: true,
				},
				"cod": {
					Type: schema.Boolean,
					Desc: "Cash on delivery option (true/false)",
				},
				"origin_pin_point": {
					Type: schema.String,
					Desc: "Specific origin coordinates (optional)",
				},
				"destination_pin_point": {
					Type: schema.String,
					Desc: "Specific destination coordinates (optional)",
				},
			}),
		},
	}
}

// NewExecutor routes tool calls to their implementations over the given
// pricing API.
func NewExecutor(api PricingAPI) contractx.ToolExecutor {
	return func(ctx context.Context, tool string, args map[string]any) string {
		switch tool {
		case ToolSearchDestination:
			return executeSearchDestination(ctx, api, args)
		case ToolCalculateShippingCost:
			return executeCalculateShippingCost(ctx, api, args)
		default:
			return fmt.Sprintf("Error: tool %q is not available", tool)
		}
	}
}
