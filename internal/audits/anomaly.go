package audits

import "math"

// minSampleSize guards the statistical test: below this, amount outliers
// are not meaningful and only flagged items count as anomalies.
const minSampleSize = 4

// DetectAnomalies returns the items that warrant investigation: every
// flagged item, plus amount outliers more than two population standard
// deviations from the mean once the sample is large enough. The function
// is pure; running it twice over the same items yields the same report.
func DetectAnomalies(items []AuditItem) AnomalyReport {
	report := AnomalyReport{Anomalies: []Anomaly{}}

	var mean, sigma float64
	useStats := len(items) >= minSampleSize
	if useStats {
		var sum float64
		for _, item := range items {
			sum += amountFloat(item)
		}
		mean = sum / float64(len(items))
		var variance float64
		for _, item := range items {
			d := amountFloat(item) - mean
			variance += d * d
		}
		sigma = math.Sqrt(variance / float64(len(items)))
	}

	for _, item := range items {
		reason := ""
		switch {
		case item.Status == ItemFlagged:
			reason = "flagged during review"
		case useStats && math.Abs(amountFloat(item)-mean) > 2*sigma:
			reason = "amount deviates from the audit population"
		}
		if reason == "" {
			continue
		}
		report.Anomalies = append(report.Anomalies, Anomaly{
			ItemID:      item.ID,
			Category:    item.Category,
			Description: item.Description,
			Amount:      item.Amount,
			Reason:      reason,
		})
	}
	report.Count = len(report.Anomalies)
	return report
}

func amountFloat(item AuditItem) float64 {
	f, _ := item.Amount.Float64()
	return f
}
