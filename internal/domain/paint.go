package domain

// Paint is a catalog entry matched from a submitted product code. Read-only
// to the orchestrator; the catalog is the source of truth.
type Paint struct {
	ProductCode  string
	Name         string
	ColorHex     string
	Manufacturer string
	Finish       string
	PriceCents   int
}
