package financing

import "fmt"

// Annual percentage rates by indexer and system.
var rateTable = map[Indexer]map[System]float64{
	TR:       {SAC: 11.49, PRICE: 10.99},
	Poupanca: {SAC: 5.06, PRICE: 4.12},
	IPCA:     {SAC: 4.5, PRICE: 4.0},
	Fixed:    {SAC: 11.0, PRICE: 10.5},
}

// AnnualRate looks up the annual percentage rate (e.g. 11.49) for the pair.
func AnnualRate(ix Indexer, s System) (float64, error) {
	bySystem, ok := rateTable[ix]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownIndexer, ix)
	}
	rate, ok := bySystem[s]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSystem, s)
	}
	return rate, nil
}

// MonthlyRate converts an annual percentage into a monthly fraction.
func MonthlyRate(annualPercent float64) float64 { return annualPercent / 12 / 100 }

// Indexers lists the supported indexers in display order.
func Indexers() []Indexer { return []Indexer{TR, Poupanca, IPCA, Fixed} }
