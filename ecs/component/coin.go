package component

// Coin is a pickup. SpinSpeed is in degrees per second.
type Coin struct {
	Value     int
	SpinSpeed float64
	Angle     float64
	Collected bool
}

var CoinComponent = NewComponent[Coin]()
