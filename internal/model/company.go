package model

// CompanyRef pairs a human-readable display name with its ticker symbol.
type CompanyRef struct {
	DisplayName string
	Ticker      string
}

// CompanyMetadata is a point-in-time snapshot of company facts from the
// data provider. MarketCap and CurrentPrice are nil when the provider did
// not supply them, which is distinct from a legitimate zero value.
type CompanyMetadata struct {
	Name         string
	Sector       string
	Industry     string
	Summary      string
	MarketCap    *float64
	CurrentPrice *float64
}

// Unknown reports whether every field is absent. A fully unknown record is
// what the fetch boundary returns on provider failure.
func (m CompanyMetadata) Unknown() bool {
	return m.Name == "" && m.Sector == "" && m.Industry == "" &&
		m.Summary == "" && m.MarketCap == nil && m.CurrentPrice == nil
}
