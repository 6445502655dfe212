package booking

import "find-my-space/internal/domain/money"

type CostCalculator interface {
	Cost(pricePerHour money.Money, r TimeRange) money.Money
}

// HourlyCostCalculator charges hours × hourly price, pro rata per minute.
type HourlyCostCalculator struct{}

func NewHourlyCostCalculator() *HourlyCostCalculator {
	return &HourlyCostCalculator{}
}

func (HourlyCostCalculator) Cost(pricePerHour money.Money, r TimeRange) money.Money {
	minutes := int64(r.Minutes())
	if minutes <= 0 {
		return money.Zero()
	}
	// round half up on the paisa
	paise := (pricePerHour.Paise()*minutes + 30) / 60
	m, _ := money.FromPaise(paise)
	return m
}
