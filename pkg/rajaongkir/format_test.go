package rajaongkir

import (
	"strings"
	"testing"
)

func successMeta() Meta {
	return Meta{Message: "OK", Code: 200, Status: "success"}
}

func TestFormatLocationOptionsSuccess(t *testing.T) {
	t.Parallel()

	resp := SearchResponse{
		Meta: successMeta(),
		Data: []Destination{
			{
				ID:              421,
				Label:           "Gambir, Jakarta Pusat",
				SubdistrictName: "Gambir",
				DistrictName:    "Gambir",
				CityName:        "Jakarta Pusat",
				ProvinceName:    "DKI Jakarta",
				ZipCode:         "10110",
			},
			{
				ID:              508,
				Label:           "Kebayoran Baru, Jakarta Selatan",
				SubdistrictName: "Kebayoran Baru",
				DistrictName:    "Kebayoran Baru",
				CityName:        "Jakarta Selatan",
				ProvinceName:    "DKI Jakarta",
				ZipCode:         "12110",
			},
		},
	}

	locations := FormatLocationOptions(resp)
	if len(locations) != 2 {
		t.Fatalf("expected 2 locations, got %d", len(locations))
	}
	if locations[0].ID != 421 || locations[1].ID != 508 {
		t.Fatalf("input order not preserved: %+v", locations)
	}
	if locations[0].DisplayName != "Gambir, Jakarta Pusat" {
		t.Fatalf("unexpected display name: %s", locations[0].DisplayName)
	}
	if locations[1].City != "Jakarta Selatan" {
		t.Fatalf("unexpected city: %s", locations[1].City)
	}
}

func TestFormatLocationOptionsNonSuccess(t *testing.T) {
	t.Parallel()

	resp := SearchResponse{
		Meta: Meta{Message: "upstream broke", Code: 500, Status: "error"},
		Data: []Destination{{ID: 1, Label: "should be ignored"}},
	}

	if got := FormatLocationOptions(resp); len(got) != 0 {
		t.Fatalf("expected empty slice for error meta, got %d entries", len(got))
	}
}

func TestFormatShippingResultsNonSuccess(t *testing.T) {
	t.Parallel()

	resp := CalculateResponse{
		Meta: Meta{Message: "invalid destination id", Code: 400, Status: "error"},
	}

	out := FormatShippingResults(resp)
	if !strings.Contains(out, "invalid destination id") {
		t.Fatalf("expected payload message in output, got %q", out)
	}
	for _, header := range []string{"Regular Shipping", "Cargo Shipping", "Instant Shipping"} {
		if strings.Contains(out, header) {
			t.Fatalf("unexpected tier header %q in error output", header)
		}
	}
}

func TestFormatShippingResultsNoOptions(t *testing.T) {
	t.Parallel()

	out := FormatShippingResults(CalculateResponse{Meta: successMeta()})
	if !strings.Contains(out, "No shipping options available for this route.") {
		t.Fatalf("expected no-options message, got %q", out)
	}
}

func TestFormatShippingResultsTierOrderAndSeparators(t *testing.T) {
	t.Parallel()

	resp := CalculateResponse{
		Meta: successMeta(),
		Data: CalculateData{
			Reguler: []Rate{
				{
					ShippingName:    "JNE",
					ServiceName:     "CTC",
					ShippingCost:    150000,
					ShippingCostNet: 145000,
					GrandTotal:      150000,
					IsCOD:           true,
					ETD:             "2-3 days",
				},
			},
			Cargo: []Rate{
				{
					ShippingName:    "SAP",
					ServiceName:     "DRGREG",
					ShippingCost:    98000,
					ShippingCostNet: 95000,
					GrandTotal:      98000,
					ETD:             "-",
				},
			},
			Instant: []Rate{
				{
					ShippingName:    "GOSEND",
					ServiceName:     "Instant",
					ShippingCost:    25000,
					ShippingCostNet: 25000,
					GrandTotal:      25000,
					ETD:             "-",
				},
			},
		},
	}

	out := FormatShippingResults(resp)

	regular := strings.Index(out, "Regular Shipping")
	cargo := strings.Index(out, "Cargo Shipping")
	instant := strings.Index(out, "Instant Shipping")
	if regular < 0 || cargo < 0 || instant < 0 {
		t.Fatalf("missing tier header in output:\n%s", out)
	}
	if !(regular < cargo && cargo < instant) {
		t.Fatalf("tiers out of order: regular=%d cargo=%d instant=%d", regular, cargo, instant)
	}

	if !strings.Contains(out, "Cost: Rp 150,000") {
		t.Fatalf("expected thousands-separated cost, got:\n%s", out)
	}
	if !strings.Contains(out, "COD Available") || !strings.Contains(out, "No COD") {
		t.Fatalf("expected COD markers, got:\n%s", out)
	}
	// "-" renders tier-specific fallback text.
	if !strings.Contains(out, "Contact courier") {
		t.Fatalf("expected cargo ETD fallback, got:\n%s", out)
	}
	if !strings.Contains(out, "Same day") {
		t.Fatalf("expected instant ETD fallback, got:\n%s", out)
	}
}
