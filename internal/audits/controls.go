package audits

// TestControls scores how well the review controls are operating: the
// cleared proportion dominates, with a penalty for flagged exceptions.
// An empty item set reports full effectiveness (no exceptions observed).
func TestControls(items []AuditItem) ControlEffectiveness {
	out := ControlEffectiveness{
		OverallEffectiveness: effectiveness(items),
		ByCategory:           map[string]float64{},
	}
	for category, group := range groupByCategory(items) {
		out.ByCategory[category] = effectiveness(group)
	}
	return out
}

func effectiveness(items []AuditItem) float64 {
	if len(items) == 0 {
		return 1
	}
	var cleared, flagged float64
	for _, item := range items {
		switch item.Status {
		case ItemCleared:
			cleared++
		case ItemFlagged:
			flagged++
		}
	}
	n := float64(len(items))
	return 0.8*(cleared/n) + 0.2*(1-flagged/n)
}
