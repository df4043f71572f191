package knowledge

import contractx "github.com/farhanfadillahr/shipping-price-checker/agent/contract"

// seedCorpus is the static domain knowledge indexed on first startup.
var seedCorpus = []contractx.Passage{
	{
		Category: "indonesia_cities",
		Content: `Indonesian Shipping Regions and Areas:

DKI Jakarta includes areas like Jakarta Pusat, Jakarta Utara, Jakarta Selatan, Jakarta Barat, Jakarta Timur.
Common misspellings: Jakrta, Jakarata, Djakarta.

Major cities in Java:
- Surabaya (East Java) - often misspelled as Surabaja, Surubaya
- Bandung (West Java) - sometimes written as Bandoeng
- Semarang (Central Java)
- Yogyakarta (DIY) - also known as Jogja, Jogjakarta
- Malang (East Java)

Major cities in Sumatra:
- Medan (North Sumatra)
- Palembang (South Sumatra)
- Padang (West Sumatra)
- Pekanbaru (Riau)
- Bandar Lampung (Lampung)`,
	},
	{
		Category: "weight_guidelines",
		Content: `Shipping Weight Guidelines:

Weight should be specified in grams:
- 1 kg = 1000 grams
- 500g = 0.5 kg
- 2.5 kg = 2500 grams

Common package weights:
- Documents/letters: 50-200 grams
- Books: 200-1000 grams
- Clothing: 200-800 grams
- Electronics (small): 500-2000 grams
- Electronics (large): 2000-10000 grams

If user mentions "small package", estimate 500g
If user mentions "medium package", estimate 1000g
If user mentions "large package", estimate 2000g`,
	},
	{
		Category: "item_value",
		Content: `Item Value Guidelines:

Item value affects insurance and COD options.
Common item value ranges in Rupiah:

- Documents: Rp 10,000 - Rp 50,000
- Books: Rp 50,000 - Rp 200,000
- Clothing: Rp 100,000 - Rp 500,000
- Electronics: Rp 500,000 - Rp 10,000,000
- Jewelry: Rp 1,000,000 - Rp 50,000,000

If user doesn't specify value:
- Ask for approximate item value
- Explain that it affects insurance calculation
- Suggest reasonable ranges based on item type`,
	},
	{
		Category: "service_types",
		Content: `Courier Services Information:

Available couriers and their characteristics:

JNE (Jalur Nugraha Ekakurir):
- Wide coverage across Indonesia
- Services: CTC (City to City), CTCJTR (Cargo)
- Reliable for inter-city shipping

NINJA:
- Fast growing courier service
- Good for e-commerce
- Standard service available

SAP (SAP Express):
- Cargo and regular services
- UDRREG (Regular), DRGREG (Cargo)
- Good for heavy items

LION:
- REGPACK service
- Reliable for regular packages
- Good coverage in major cities

COD (Cash on Delivery) may not be available for all services.`,
	},
	{
		Category: "common_questions",
		Content: `Common User Questions and Responses:

Q: "How much to send to [city]?"
A: Need to know: origin city, package weight, item value

Q: "Shipping cost from [origin] to [destination]"
A: Need to know: exact weight in grams, item value

Q: "What's the cheapest shipping?"
A: Compare all available options and highlight lowest cost

Q: "Can I use COD?"
A: Check COD availability in results, explain COD option

Q: "How long for delivery?"
A: Check ETD (Estimated Time Delivery) in results

Always ask for clarification if:
- Multiple locations match the search
- Weight or value not specified
- Origin or destination unclear`,
	},
}
