package report

// AggregateSummaries sums counts and revenue across summaries. The average is
// recomputed from the sums rather than averaged.
func AggregateSummaries(items []Summary) Summary {
	total := newSummary()
	for _, s := range items {
		total.Counts.Confirmed += s.Counts.Confirmed
		total.Counts.PendingPayment += s.Counts.PendingPayment
		total.Counts.PendingConfirmation += s.Counts.PendingConfirmation
		total.Counts.Cancelled += s.Counts.Cancelled
		total.Revenue.Actual = total.Revenue.Actual.Add(s.Revenue.Actual)
		total.Revenue.Projected = total.Revenue.Projected.Add(s.Revenue.Projected)
	}
	return total.withAverage()
}

func propertySummaries(properties []PropertySummary) []Summary {
	out := make([]Summary, 0, len(properties))
	for _, p := range properties {
		out = append(out, p.Summary)
	}
	return out
}
