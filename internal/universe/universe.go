package universe

import "CanslimScanner/internal/model"

// Default is the built-in scan set, grouped by sector.
var Default = []model.SymbolEntry{
	{Symbol: "NVDA", Name: "NVIDIA Corporation", Sector: "Technology", Industry: "Semiconductors"},
	{Symbol: "AVGO", Name: "Broadcom Inc", Sector: "Technology", Industry: "Semiconductors"},
	{Symbol: "AMD", Name: "Advanced Micro Devices", Sector: "Technology", Industry: "Semiconductors"},
	{Symbol: "ARM", Name: "ARM Holdings", Sector: "Technology", Industry: "Semiconductors"},
	{Symbol: "MRVL", Name: "Marvell Technology", Sector: "Technology", Industry: "Semiconductors"},
	{Symbol: "MU", Name: "Micron Technology", Sector: "Technology", Industry: "Semiconductors"},
	{Symbol: "LRCX", Name: "Lam Research", Sector: "Technology", Industry: "Semicon Equipment"},
	{Symbol: "KLAC", Name: "KLA Corporation", Sector: "Technology", Industry: "Semicon Equipment"},
	{Symbol: "AMAT", Name: "Applied Materials", Sector: "Technology", Industry: "Semicon Equipment"},
	{Symbol: "SMCI", Name: "Super Micro Computer", Sector: "Technology", Industry: "Hardware"},
	{Symbol: "META", Name: "Meta Platforms", Sector: "Technology", Industry: "Internet"},
	{Symbol: "GOOGL", Name: "Alphabet Inc", Sector: "Technology", Industry: "Internet"},
	{Symbol: "MSFT", Name: "Microsoft Corporation", Sector: "Technology", Industry: "Software"},
	{Symbol: "AAPL", Name: "Apple Inc", Sector: "Technology", Industry: "Electronics"},
	{Symbol: "CRM", Name: "Salesforce Inc", Sector: "Technology", Industry: "Software"},
	{Symbol: "NOW", Name: "ServiceNow Inc", Sector: "Technology", Industry: "Software"},
	{Symbol: "PANW", Name: "Palo Alto Networks", Sector: "Technology", Industry: "Cybersecurity"},
	{Symbol: "CRWD", Name: "CrowdStrike", Sector: "Technology", Industry: "Cybersecurity"},
	{Symbol: "SNPS", Name: "Synopsys Inc", Sector: "Technology", Industry: "Software"},
	{Symbol: "CDNS", Name: "Cadence Design", Sector: "Technology", Industry: "Software"},
	{Symbol: "ANET", Name: "Arista Networks", Sector: "Technology", Industry: "Networking"},
	{Symbol: "PLTR", Name: "Palantir", Sector: "Technology", Industry: "Software"},
	{Symbol: "TSM", Name: "Taiwan Semiconductor", Sector: "Technology", Industry: "Semiconductors"},
	{Symbol: "ASML", Name: "ASML Holding", Sector: "Technology", Industry: "Semicon Equipment"},
	{Symbol: "LLY", Name: "Eli Lilly", Sector: "Healthcare", Industry: "Pharma"},
	{Symbol: "NVO", Name: "Novo Nordisk", Sector: "Healthcare", Industry: "Pharma"},
	{Symbol: "UNH", Name: "UnitedHealth", Sector: "Healthcare", Industry: "Insurance"},
	{Symbol: "ISRG", Name: "Intuitive Surgical", Sector: "Healthcare", Industry: "Med Devices"},
	{Symbol: "VRTX", Name: "Vertex Pharma", Sector: "Healthcare", Industry: "Biotech"},
	{Symbol: "REGN", Name: "Regeneron", Sector: "Healthcare", Industry: "Biotech"},
	{Symbol: "BSX", Name: "Boston Scientific", Sector: "Healthcare", Industry: "Med Devices"},
	{Symbol: "SYK", Name: "Stryker Corp", Sector: "Healthcare", Industry: "Med Devices"},
	{Symbol: "COST", Name: "Costco", Sector: "Consumer", Industry: "Retail"},
	{Symbol: "WMT", Name: "Walmart", Sector: "Consumer", Industry: "Retail"},
	{Symbol: "DECK", Name: "Deckers Outdoor", Sector: "Consumer", Industry: "Footwear"},
	{Symbol: "LULU", Name: "Lululemon", Sector: "Consumer", Industry: "Apparel"},
	{Symbol: "CMG", Name: "Chipotle", Sector: "Consumer", Industry: "Restaurants"},
	{Symbol: "BKNG", Name: "Booking Holdings", Sector: "Consumer", Industry: "Travel"},
	{Symbol: "ABNB", Name: "Airbnb", Sector: "Consumer", Industry: "Travel"},
	{Symbol: "ORLY", Name: "O'Reilly Auto", Sector: "Consumer", Industry: "Auto Parts"},
	{Symbol: "V", Name: "Visa Inc", Sector: "Financial", Industry: "Payments"},
	{Symbol: "MA", Name: "Mastercard", Sector: "Financial", Industry: "Payments"},
	{Symbol: "GS", Name: "Goldman Sachs", Sector: "Financial", Industry: "Banking"},
	{Symbol: "BLK", Name: "BlackRock", Sector: "Financial", Industry: "Asset Mgmt"},
	{Symbol: "SPGI", Name: "S&P Global", Sector: "Financial", Industry: "Data"},
	{Symbol: "ICE", Name: "ICE", Sector: "Financial", Industry: "Exchanges"},
	{Symbol: "CAT", Name: "Caterpillar", Sector: "Industrial", Industry: "Machinery"},
	{Symbol: "GE", Name: "GE Aerospace", Sector: "Industrial", Industry: "Aerospace"},
	{Symbol: "LMT", Name: "Lockheed Martin", Sector: "Industrial", Industry: "Defense"},
	{Symbol: "UBER", Name: "Uber", Sector: "Industrial", Industry: "Transport"},
	{Symbol: "XOM", Name: "Exxon Mobil", Sector: "Energy", Industry: "Oil & Gas"},
	{Symbol: "CVX", Name: "Chevron", Sector: "Energy", Industry: "Oil & Gas"},
}

// Symbols returns the ticker of every entry, in order.
func Symbols(entries []model.SymbolEntry) []string {
	syms := make([]string, len(entries))
	for i, e := range entries {
		syms[i] = e.Symbol
	}
	return syms
}

// Resolve returns override when it is non-empty, otherwise Default.
func Resolve(override []model.SymbolEntry) []model.SymbolEntry {
	if len(override) > 0 {
		return override
	}
	return Default
}
