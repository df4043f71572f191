package rajaongkir

// Meta is the envelope status block carried by every API response.
type Meta struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
	Status  string `json:"status"`
}

const statusSuccess = "success"

// OK reports whether the response completed successfully. Non-success metas are
// the sole error signal; the client never returns a Go error for API failures.
func (m Meta) OK() bool {
	return m.Status == statusSuccess
}

// Destination is one raw entry of a destination search response.
type Destination struct {
	ID              int    `json:"id"`
	Label           string `json:"label"`
	SubdistrictName string `json:"subdistrict_name"`
	DistrictName    string `json:"district_name"`
	CityName        string `json:"city_name"`
	ProvinceName    string `json:"province_name"`
	ZipCode         string `json:"zip_code"`
}

// SearchResponse is the payload of GET /tariff/api/v1/destination/search.
type SearchResponse struct {
	Meta Meta          `json:"meta"`
	Data []Destination `json:"data"`
}

// Rate is a single shipping quote inside one service tier.
type Rate struct {
	ShippingName    string `json:"shipping_name"`
	ServiceName     string `json:"service_name"`
	ShippingCost    int64  `json:"shipping_cost"`
	ShippingCostNet int64  `json:"shipping_cost_net"`
	GrandTotal      int64  `json:"grandtotal"`
	IsCOD           bool   `json:"is_cod"`
	ETD             string `json:"etd"`
}

// CalculateData groups rates into the three service tiers. The tiers are
// independent; all three empty means no options, not an error.
type CalculateData struct {
	Reguler []Rate `json:"calculate_reguler"`
	Cargo   []Rate `json:"calculate_cargo"`
	Instant []Rate `json:"calculate_instant"`
}

// CalculateResponse is the payload of GET /tariff/api/v1/calculate.
type CalculateResponse struct {
	Meta Meta          `json:"meta"`
	Data CalculateData `json:"data"`
}

// CalculateRequest carries the parameters of a cost calculation. Origin and
// destination must be location IDs obtained from a destination search, never
// free-text names.
type CalculateRequest struct {
	ShipperDestinationID  int
	ReceiverDestinationID int
	WeightGrams           float64
	ItemValue             float64
	COD                   bool
	OriginPinPoint        string
	DestinationPinPoint   string
}

// LocationOption is a search entry reshaped for presentation. Produced
// transiently; never persisted.
type LocationOption struct {
	ID          int    `json:"id"`
	DisplayName string `json:"display_name"`
	Subdistrict string `json:"subdistrict"`
	District    string `json:"district"`
	City        string `json:"city"`
	Province    string `json:"province"`
	ZipCode     string `json:"zip_code"`
}
