package money

import (
	"errors"
	"math"
)

var ErrNegativeAmount = errors.New("amount cannot be negative")

// Money is an INR amount in paise.
type Money struct {
	paise int64
}

func FromPaise(paise int64) (Money, error) {
	if paise < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{paise: paise}, nil
}

// FromRupees rounds to the nearest paisa.
func FromRupees(rupees float64) (Money, error) {
	if rupees < 0 || math.IsNaN(rupees) || math.IsInf(rupees, 0) {
		return Money{}, ErrNegativeAmount
	}
	return Money{paise: int64(math.Round(rupees * 100))}, nil
}

func Zero() Money {
	return Money{}
}

func (m Money) Paise() int64 {
	return m.paise
}

func (m Money) Rupees() float64 {
	return float64(m.paise) / 100.0
}

func (m Money) Add(other Money) Money {
	return Money{paise: m.paise + other.paise}
}

// Fraction returns m × f rounded half up, f in [0,1].
func (m Money) Fraction(f float64) Money {
	if f <= 0 {
		return Money{}
	}
	if f >= 1 {
		return m
	}
	return Money{paise: int64(math.Round(float64(m.paise) * f))}
}

func (m Money) Sub(other Money) Money {
	if other.paise >= m.paise {
		return Money{}
	}
	return Money{paise: m.paise - other.paise}
}

func (m Money) IsZero() bool {
	return m.paise == 0
}
