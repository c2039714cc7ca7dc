package stats

import "gonum.org/v1/gonum/stat/distuv"

// ZVal returns the two-tailed Z-value for a confidence level given in
// percent.
func ZVal(pct float64) float64 {
	dist := distuv.Normal{Mu: 0, Sigma: 1}
	return dist.Quantile((1 + pct/100) / 2)
}
