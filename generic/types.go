/*
Package generic provides the calculation primitives for the settlement engine.

PURPOSE:
  This package contains domain-agnostic types and algorithms used by the
  severance settlement calculator: exact money arithmetic, calendar-date
  math, progressive bracket tables, and effective-dated rate lookups.

KEY CONCEPTS IN THIS FILE (types.go):
  - Money: An exact monetary amount (BRL throughout this system)

DESIGN PRINCIPLES:
  1. Precision: Uses decimal.Decimal to avoid floating-point errors
  2. Immutability: Money values are never mutated, every operation returns
     a new value
  3. Clamping over erroring: negative intermediate amounts are a computed
     artifact of subtraction, not an error condition (see ClampZero)

USAGE:
  pay := generic.NewMoney(2500)
  daily := pay.DivInt(30)
  line := daily.MulInt(days)

SEE ALSO:
  - time.go: TimePoint and calendar arithmetic
  - brackets.go: Progressive tax schedules
  - lookup.go: Effective-dated value tables
*/
package generic

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// MONEY - Exact monetary amount
// =============================================================================

type Money struct {
	Value decimal.Decimal
}

func NewMoney(value float64) Money {
	return Money{Value: decimal.NewFromFloat(value)}
}

func NewMoneyFromInt(value int) Money {
	return Money{Value: decimal.NewFromInt(int64(value))}
}

func ZeroMoney() Money {
	return Money{Value: decimal.Zero}
}

// MustParseMoney parses a decimal string, returning zero on bad input.
// Intended for wiring static rate tables, where inputs are literals.
func MustParseMoney(s string) Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return ZeroMoney()
	}
	return Money{Value: d}
}

func (m Money) Add(o Money) Money            { return Money{Value: m.Value.Add(o.Value)} }
func (m Money) Sub(o Money) Money            { return Money{Value: m.Value.Sub(o.Value)} }
func (m Money) Mul(s decimal.Decimal) Money  { return Money{Value: m.Value.Mul(s)} }
func (m Money) Div(s decimal.Decimal) Money  { return Money{Value: m.Value.Div(s)} }
func (m Money) MulInt(n int) Money           { return m.Mul(decimal.NewFromInt(int64(n))) }
func (m Money) DivInt(n int) Money           { return m.Div(decimal.NewFromInt(int64(n))) }
func (m Money) Neg() Money                   { return Money{Value: m.Value.Neg()} }
func (m Money) IsNegative() bool             { return m.Value.IsNegative() }
func (m Money) IsZero() bool                 { return m.Value.IsZero() }
func (m Money) IsPositive() bool             { return m.Value.IsPositive() }
func (m Money) GreaterThan(o Money) bool     { return m.Value.GreaterThan(o.Value) }
func (m Money) LessThan(o Money) bool        { return m.Value.LessThan(o.Value) }
func (m Money) LessThanOrEqual(o Money) bool { return m.Value.LessThanOrEqual(o.Value) }
func (m Money) Equal(o Money) bool           { return m.Value.Equal(o.Value) }

func (m Money) Min(o Money) Money {
	if m.LessThan(o) {
		return m
	}
	return o
}

func (m Money) Max(o Money) Money {
	if m.GreaterThan(o) {
		return m
	}
	return o
}

// ClampZero returns max(0, m). Negative bases produced by subtraction are
// clamped rather than rejected.
func (m Money) ClampZero() Money {
	if m.IsNegative() {
		return ZeroMoney()
	}
	return m
}

// Round2 rounds to 2 decimal places, half away from zero. This is the
// rounding the tax schedules prescribe; other settlement lines stay
// unrounded until display.
func (m Money) Round2() Money {
	return Money{Value: m.Value.Round(2)}
}

func (m Money) Float64() float64 {
	f, _ := m.Value.Float64()
	return f
}

// StringFixed renders with exactly 2 decimal places ("3000.00").
func (m Money) StringFixed() string {
	return m.Value.StringFixed(2)
}

func (m Money) String() string {
	return m.Value.String()
}
