package audits

// AssessRisk scores the audit exposure from item review states. Flagged
// items carry most of the weight; unreviewed items contribute a smaller
// share. A risk score never decreases when an item flips to flagged.
func AssessRisk(items []AuditItem) RiskScores {
	out := RiskScores{
		OverallScore: riskScore(items),
		ByCategory:   map[string]float64{},
	}
	for category, group := range groupByCategory(items) {
		out.ByCategory[category] = riskScore(group)
	}
	return out
}

func riskScore(items []AuditItem) float64 {
	if len(items) == 0 {
		return 0
	}
	var flagged, pending float64
	for _, item := range items {
		switch item.Status {
		case ItemFlagged:
			flagged++
		case ItemPending:
			pending++
		}
	}
	n := float64(len(items))
	score := 0.7*(flagged/n) + 0.3*(pending/n)
	if score > 1 {
		score = 1
	}
	return score
}

func groupByCategory(items []AuditItem) map[string][]AuditItem {
	groups := make(map[string][]AuditItem)
	for _, item := range items {
		groups[item.Category] = append(groups[item.Category], item)
	}
	return groups
}
