package loans

import (
	"iter"

	"github.com/iwvelando/mli-select/pkg/constants"
)

// Period holds the values for one monthly payment of an amortization schedule.
type Period struct {
	Number    int
	Interest  float64
	Principal float64
	Balance   float64
}

// Schedule is a level-payment amortization schedule. Periods are computed on
// demand each time the schedule is iterated; nothing is stored between calls.
type Schedule struct {
	principal float64
	rate      float64 // periodic (monthly) rate
	periods   int
	payment   float64
}

// NewSchedule builds the monthly schedule for principal borrowed over years at
// an annual percentage rate.
func NewSchedule(annualInterestRate float64, years int, principal float64) (*Schedule, error) {
	payment, err := MonthlyPayment(annualInterestRate, years, principal)
	if err != nil {
		return nil, err
	}
	return &Schedule{
		principal: principal,
		rate:      monthlyRate(annualInterestRate),
		periods:   years * constants.MonthsPerYear,
		payment:   payment,
	}, nil
}

// Payment returns the level monthly payment.
func (s *Schedule) Payment() float64 {
	return s.payment
}

// Periods returns the number of monthly payments.
func (s *Schedule) Periods() int {
	return s.periods
}

// Principal returns the amount borrowed.
func (s *Schedule) Principal() float64 {
	return s.principal
}

// TotalInterest returns the interest paid over the life of the loan.
func (s *Schedule) TotalInterest() float64 {
	return s.payment*float64(s.periods) - s.principal
}

// All yields periods 1..n using balance[k] = balance[k-1]*(1+r) - payment.
// The sequence can be ranged over repeatedly and stopped early.
func (s *Schedule) All() iter.Seq[Period] {
	return func(yield func(Period) bool) {
		balance := s.principal
		for k := 1; k <= s.periods; k++ {
			interest := balance * s.rate
			balance = balance*(1+s.rate) - s.payment
			if !yield(Period{
				Number:    k,
				Interest:  interest,
				Principal: s.payment - interest,
				Balance:   balance,
			}) {
				return
			}
		}
	}
}

// BalanceAt returns the remaining balance after period k. Period 0 is the
// original principal; k beyond the term returns the terminal balance.
func (s *Schedule) BalanceAt(k int) float64 {
	balance := s.principal
	for p := range s.All() {
		if p.Number > k {
			break
		}
		balance = p.Balance
	}
	return balance
}
