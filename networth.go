package finplan

// TrajectoryPoint compares, for one year, the straight accumulation of
// contributions against the compounded projection. Both lines start from the
// same value at year 0.
type TrajectoryPoint struct {
	Year      int
	Invested  Money // contributions only, no market return
	Projected Money // full compounding at the given rate
}

// NetWorthTrajectory produces the year-by-year comparison of invested versus
// projected net worth.
func NetWorthTrajectory(current, monthly Money, annual Percent, years int) []TrajectoryPoint {
	if years < 0 {
		years = 0
	}
	points := make([]TrajectoryPoint, 0, years+1)
	for year := 0; year <= years; year++ {
		points = append(points, TrajectoryPoint{
			Year:      year,
			Invested:  current.Add(monthly.MulInt(12 * year)),
			Projected: FutureValue(current, monthly, annual, 12*year),
		})
	}
	return points
}

// AssetClass is one slice of the portfolio projected at its own rate.
type AssetClass struct {
	Name    string
	Value   Money
	Monthly Money // recurring contribution into this class, usually for SIPs
	Rate    Percent
}

// PortfolioPoint is one year of the stacked portfolio projection.
type PortfolioPoint struct {
	Year    int
	Classes map[string]Money
	Total   Money
}

// PortfolioSeries projects each asset class independently at its own rate and
// stacks the results per year, from year 0 to the horizon.
func PortfolioSeries(classes []AssetClass, years int) []PortfolioPoint {
	if years < 0 {
		years = 0
	}
	points := make([]PortfolioPoint, 0, years+1)
	for year := 0; year <= years; year++ {
		p := PortfolioPoint{Year: year, Classes: make(map[string]Money, len(classes))}
		for _, c := range classes {
			v := FutureValue(c.Value, c.Monthly, c.Rate, 12*year)
			p.Classes[c.Name] = p.Classes[c.Name].Add(v)
			p.Total = p.Total.Add(v)
		}
		points = append(points, p)
	}
	return points
}
