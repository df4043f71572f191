package rajaongkir

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// FormatLocationOptions reshapes a search payload into presentation entries,
// preserving input order. A non-success Meta yields an empty slice.
func FormatLocationOptions(resp SearchResponse) []LocationOption {
	if !resp.Meta.OK() {
		return nil
	}

	locations := make([]LocationOption, 0, len(resp.Data))
	for _, item := range resp.Data {
		locations = append(locations, LocationOption{
			ID:          item.ID,
			DisplayName: item.Label,
			Subdistrict: item.SubdistrictName,
			District:    item.DistrictName,
			City:        item.CityName,
			Province:    item.ProvinceName,
			ZipCode:     item.ZipCode,
		})
	}
	return locations
}

// FormatShippingResults renders a calculation payload as readable text. Tiers
// appear in fixed order: regular, cargo, instant. A non-success Meta yields the
// payload message with no tier headers.
func FormatShippingResults(resp CalculateResponse) string {
	if !resp.Meta.OK() {
		msg := resp.Meta.Message
		if msg == "" {
			msg = "Unknown error"
		}
		return fmt.Sprintf("Error: %s", msg)
	}

	var b strings.Builder
	b.WriteString("Shipping Options Available:\n\n")

	writeTier(&b, "Regular Shipping", resp.Data.Reguler, "Contact courier")
	writeTier(&b, "Cargo Shipping", resp.Data.Cargo, "Contact courier")
	writeTier(&b, "Instant Shipping", resp.Data.Instant, "Same day")

	if len(resp.Data.Reguler) == 0 && len(resp.Data.Cargo) == 0 && len(resp.Data.Instant) == 0 {
		b.WriteString("No shipping options available for this route.")
	}

	return b.String()
}

func writeTier(b *strings.Builder, header string, rates []Rate, etdFallback string) {
	if len(rates) == 0 {
		return
	}

	fmt.Fprintf(b, "**%s:**\n", header)
	for _, rate := range rates {
		codText := "No COD"
		if rate.IsCOD {
			codText = "COD Available"
		}
		etdText := rate.ETD
		if etdText == "-" {
			etdText = etdFallback
		}

		fmt.Fprintf(b, "• %s - %s\n", rate.ShippingName, rate.ServiceName)
		fmt.Fprintf(b, "Cost: Rp %s\n", humanize.Comma(rate.ShippingCost))
		fmt.Fprintf(b, "Net Cost: Rp %s\n", humanize.Comma(rate.ShippingCostNet))
		fmt.Fprintf(b, "Total: Rp %s\n", humanize.Comma(rate.GrandTotal))
		fmt.Fprintf(b, "%s | %s\n\n", codText, etdText)
	}
}
