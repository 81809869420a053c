package calculations

import (
	"math"
	"testing"

	"cloud.google.com/go/civil"
)

func TestAnnuityPayment(t *testing.T) {
	tests := []struct {
		name        string
		loanBase    float64
		monthlyRate float64
		months      int
		want        float64
		tolerance   float64
	}{
		{
			name:        "one year at 10 percent",
			loanBase:    1000000,
			monthlyRate: MonthlyRate(10),
			months:      12,
			want:        87915.89,
			tolerance:   0.01,
		},
		{
			name:        "zero rate",
			loanBase:    1200000,
			monthlyRate: 0,
			months:      12,
			want:        100000,
			tolerance:   0,
		},
		{
			name:        "thirty years at 7.5 percent",
			loanBase:    5000000,
			monthlyRate: MonthlyRate(7.5),
			months:      360,
			want:        34960.73,
			tolerance:   0.01,
		},
		{
			name:        "zero months",
			loanBase:    1000,
			monthlyRate: MonthlyRate(10),
			months:      0,
			want:        0,
			tolerance:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnnuityPayment(tt.loanBase, tt.monthlyRate, tt.months)
			if math.IsNaN(got) || math.IsInf(got, 0) {
				t.Fatalf("AnnuityPayment() = %v, want finite", got)
			}
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("AnnuityPayment() = %.4f, want %.4f", got, tt.want)
			}
		})
	}
}

func TestFixedAnnuityPaymentUsesLoanBase(t *testing.T) {
	terms := annuityTerms()
	terms.DownPayment = 200000

	want := AnnuityPayment(800000, terms.MonthlyRate(), 12)
	if got := terms.FixedAnnuityPayment(); got != want {
		t.Errorf("FixedAnnuityPayment() = %f, want %f", got, want)
	}
}

func TestAnnuitySchedule(t *testing.T) {
	tests := []struct {
		name  string
		terms MortgageTerms
	}{
		{name: "one year at 10 percent", terms: annuityTerms()},
		{
			name: "thirty years with down payment",
			terms: MortgageTerms{
				Principal:         6000000,
				AnnualRatePercent: 7.5,
				TermYears:         30,
				OriginationDate:   "15.03.2020",
				PaymentScheme:     SchemeAnnuity,
				DownPayment:       1000000,
			},
		},
		{
			name: "zero rate",
			terms: MortgageTerms{
				Principal:         300000,
				AnnualRatePercent: 0,
				TermYears:         5,
				OriginationDate:   "31.01.2024",
				PaymentScheme:     SchemeAnnuity,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schedule, err := tt.terms.BuildSchedule()
			if err != nil {
				t.Fatalf("BuildSchedule() error = %v", err)
			}

			n := tt.terms.TermYears * 12
			if len(schedule.Entries) != n {
				t.Fatalf("expected %d entries, got %d", n, len(schedule.Entries))
			}

			start, _ := ParseDate(tt.terms.OriginationDate)
			for k, e := range schedule.Entries {
				if want := addMonths(start, k+1); e.PaymentDate != want {
					t.Errorf("entry %d: date = %s, want %s", k, e.PaymentDate, want)
				}
				if e.RemainingDebt < 0 || e.InterestPart < 0 || e.PrincipalPart < 0 || e.TotalPayment < 0 {
					t.Errorf("entry %d has negative amounts: %+v", k, e)
				}
				if math.Abs(e.TotalPayment-(e.InterestPart+e.PrincipalPart)) > 1e-3 {
					t.Errorf("entry %d: payment %f != interest %f + principal %f",
						k, e.TotalPayment, e.InterestPart, e.PrincipalPart)
				}
				if k > 0 {
					prev := schedule.Entries[k-1]
					if prev.RemainingDebt >= e.TotalPayment && e.RemainingDebt > prev.RemainingDebt {
						t.Errorf("entry %d: remaining debt grew from %f to %f", k, prev.RemainingDebt, e.RemainingDebt)
					}
					if e.PaymentDate.Before(prev.PaymentDate) || e.PaymentDate == prev.PaymentDate {
						t.Errorf("entry %d is not after entry %d", k, k-1)
					}
				}
			}

			last := schedule.Entries[n-1]
			if last.RemainingDebt != 0 {
				t.Errorf("expected remaining debt 0 at term end, got %f", last.RemainingDebt)
			}
		})
	}
}

func TestAnnuityScheduleScenario(t *testing.T) {
	schedule, err := annuityTerms().BuildSchedule()
	if err != nil {
		t.Fatalf("BuildSchedule() error = %v", err)
	}

	first := schedule.Entries[0]
	last := schedule.Entries[len(schedule.Entries)-1]

	if want := (civil.Date{Year: 2023, Month: 2, Day: 1}); first.PaymentDate != want {
		t.Errorf("first date = %s, want %s", first.PaymentDate, want)
	}
	if want := (civil.Date{Year: 2024, Month: 1, Day: 1}); last.PaymentDate != want {
		t.Errorf("last date = %s, want %s", last.PaymentDate, want)
	}
	if math.Abs(first.TotalPayment-87915.89) > 1 {
		t.Errorf("monthly payment = %f, want about 87916", first.TotalPayment)
	}
	for k, e := range schedule.Entries {
		if e.TotalPayment != first.TotalPayment {
			t.Errorf("entry %d: annuity payment changed to %f", k, e.TotalPayment)
		}
	}
}

func TestProjectOutstandingBalanceMatchesSchedule(t *testing.T) {
	terms := annuityTerms()
	terms.DownPayment = 150000

	schedule, err := terms.BuildSchedule()
	if err != nil {
		t.Fatalf("BuildSchedule() error = %v", err)
	}

	for k, e := range schedule.Entries {
		if got := terms.ProjectOutstandingBalance(k + 1); got != e.RemainingDebt {
			t.Errorf("month %d: ProjectOutstandingBalance() = %f, schedule has %f", k+1, got, e.RemainingDebt)
		}
	}

	want := terms.LoanBase() * (1 + terms.MonthlyRate())
	if got := terms.ProjectOutstandingBalance(0); got != want {
		t.Errorf("ProjectOutstandingBalance(0) = %f, want %f", got, want)
	}
}

func TestSettleOutstandingBalance(t *testing.T) {
	const payment = 1000.0

	tests := []struct {
		name string
		debt float64
		want float64
	}{
		{name: "regular balance", debt: 5000, want: 5000},
		{name: "within tolerance", debt: PayoffTolerance / 2, want: 0},
		{name: "exactly tolerance", debt: PayoffTolerance, want: 0},
		{name: "just outside tolerance", debt: 1, want: 1},
		{name: "float noise below zero", debt: -1e-9, want: 0},
		{name: "already retired", debt: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := settleOutstandingBalance(tt.debt, payment); got != tt.want {
				t.Errorf("settleOutstandingBalance() = %f, want %f", got, tt.want)
			}
		})
	}

	// допуск растет вместе с платежом
	if got := settleOutstandingBalance(0.5, 1e9); got != 0 {
		t.Errorf("settleOutstandingBalance() for large payment = %f, want 0", got)
	}
}

func TestProjectOutstandingBalanceBoundaries(t *testing.T) {
	for _, rate := range []float64{0, 10, 60, 200} {
		terms := annuityTerms()
		terms.AnnualRatePercent = rate
		n := terms.TotalMonths()
		payment := terms.FixedAnnuityPayment()

		if got := terms.ProjectOutstandingBalance(n); got != 0 {
			t.Errorf("rate %v: balance at term end = %f, want 0", rate, got)
		}
		if got := terms.ProjectOutstandingBalance(n + 5); got != 0 {
			t.Errorf("rate %v: balance after term = %f, want 0", rate, got)
		}
		// перед последним платежом остается ровно один платеж
		if got := terms.ProjectOutstandingBalance(n - 1); math.Abs(got-payment) > payment*1e-9 {
			t.Errorf("rate %v: balance before last payment = %f, want %f", rate, got, payment)
		}
	}
}

func TestAnnuityScheduleAtExtremeTerms(t *testing.T) {
	tests := []struct {
		name              string
		rate              float64
		wantNegativeFirst bool
	}{
		{name: "tiny rate", rate: 0.01},
		{name: "sixty percent", rate: 60, wantNegativeFirst: true},
		{name: "two hundred percent", rate: 200, wantNegativeFirst: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			terms := MortgageTerms{
				Principal:         1e10,
				AnnualRatePercent: tt.rate,
				TermYears:         50,
				OriginationDate:   "01.01.2024",
				PaymentScheme:     SchemeAnnuity,
			}

			schedule, err := terms.BuildSchedule()
			if err != nil {
				t.Fatalf("BuildSchedule() error = %v", err)
			}
			if len(schedule.Entries) != 600 {
				t.Fatalf("expected 600 entries, got %d", len(schedule.Entries))
			}

			payment := terms.FixedAnnuityPayment()
			for k, e := range schedule.Entries {
				if math.IsNaN(e.RemainingDebt) || math.IsInf(e.RemainingDebt, 0) || e.RemainingDebt < 0 {
					t.Fatalf("entry %d: remaining debt %v", k, e.RemainingDebt)
				}
				if e.RemainingDebt > terms.LoanBase()*(1+terms.MonthlyRate()) {
					t.Fatalf("entry %d: remaining debt %f exceeds the loan", k, e.RemainingDebt)
				}
				if k > 0 && e.RemainingDebt > schedule.Entries[k-1].RemainingDebt {
					t.Fatalf("entry %d: remaining debt grew from %f to %f",
						k, schedule.Entries[k-1].RemainingDebt, e.RemainingDebt)
				}
				if math.Abs(e.TotalPayment-(e.InterestPart+e.PrincipalPart)) > 1e-3 {
					t.Errorf("entry %d: payment %f != interest %f + principal %f",
						k, e.TotalPayment, e.InterestPart, e.PrincipalPart)
				}
			}

			penultimate := schedule.Entries[598].RemainingDebt
			if math.Abs(penultimate-payment) > payment*1e-9 {
				t.Errorf("balance before last payment = %f, want one payment %f", penultimate, payment)
			}
			if last := schedule.Entries[599].RemainingDebt; last != 0 {
				t.Errorf("expected remaining debt 0 at term end, got %f", last)
			}

			// проценты берутся с остатка, уже включающего проценты за месяц,
			// поэтому при высоких ставках основная часть первых платежей отрицательна
			first := schedule.Entries[0]
			if (first.PrincipalPart < 0) != tt.wantNegativeFirst {
				t.Errorf("first principal part = %f, want negative = %v", first.PrincipalPart, tt.wantNegativeFirst)
			}
		})
	}
}

func TestAnnuityPrincipalPart(t *testing.T) {
	terms := annuityTerms()
	payment := terms.FixedAnnuityPayment()

	got := terms.AnnuityPrincipalPart(OutstandingBalance(500000))
	want := payment - 500000*terms.MonthlyRate()
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("AnnuityPrincipalPart() = %f, want %f", got, want)
	}
}

func annuityTerms() MortgageTerms {
	return MortgageTerms{
		Principal:         1000000,
		AnnualRatePercent: 10,
		TermYears:         1,
		OriginationDate:   "01.01.2023",
		PaymentScheme:     SchemeAnnuity,
	}
}
