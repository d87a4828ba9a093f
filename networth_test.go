package finplan

import "testing"

func TestNetWorthTrajectory(t *testing.T) {
	points := NetWorthTrajectory(INR(100000), INR(5000), 10, 5)
	if len(points) != 6 {
		t.Fatalf("NetWorthTrajectory() has %d points, want 6", len(points))
	}

	// Both lines start from the current net worth.
	if !points[0].Invested.Equal(INR(100000)) || !points[0].Projected.Equal(INR(100000)) {
		t.Errorf("year 0 = invested %v projected %v, want both %v",
			points[0].Invested, points[0].Projected, INR(100000))
	}

	// The invested line is straight accumulation.
	if got, want := points[3].Invested, INR(100000+3*12*5000); !got.Equal(want) {
		t.Errorf("Invested[3] = %v, want %v", got, want)
	}

	// With a positive rate the projection dominates the invested line.
	for _, p := range points[1:] {
		if !p.Projected.GreaterThan(p.Invested) {
			t.Errorf("year %d: projected %v is not above invested %v", p.Year, p.Projected, p.Invested)
		}
	}
}

func TestPortfolioSeries(t *testing.T) {
	classes := []AssetClass{
		{Name: "stocks", Value: INR(200000), Monthly: INR(5000), Rate: 12},
		{Name: "fd", Value: INR(100000), Rate: 8},
	}
	points := PortfolioSeries(classes, 3)
	if len(points) != 4 {
		t.Fatalf("PortfolioSeries() has %d points, want 4", len(points))
	}

	if got, want := points[0].Total, INR(300000); !got.Equal(want) {
		t.Errorf("year 0 total = %v, want %v", got, want)
	}

	// Each year's total is the sum of its class values.
	for _, p := range points {
		var sum Money
		for _, v := range p.Classes {
			sum = sum.Add(v)
		}
		if !p.Total.Equal(sum) {
			t.Errorf("year %d: total %v does not match class sum %v", p.Year, p.Total, sum)
		}
	}

	// Each class compounds independently at its own rate.
	if got, want := points[3].Classes["fd"], FutureValue(INR(100000), NO(0), 8, 36); !got.Equal(want) {
		t.Errorf("fd at year 3 = %v, want %v", got, want)
	}
}
