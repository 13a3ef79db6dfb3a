package sentiment

// narrativeRule pairs a predicate over the computed report with the
// phrase it selects. Rules are evaluated top to bottom and the first
// match wins, so the priority order is the slice order.
type narrativeRule struct {
	when    func(Report) bool
	message string
}

var narrativeRules = []narrativeRule{
	{
		when: func(r Report) bool { return r.ConsistentlyNegative && r.EpisodicSpikes },
		message: "Coverage is consistently negative, punctuated by episodic spikes " +
			"of sharply negative reporting.",
	},
	{
		when: func(r Report) bool {
			return r.ConsistentlyNegative && r.Trend.Declining() && r.Trend.Significant()
		},
		message: "Coverage is consistently negative and still deteriorating.",
	},
	{
		when:    func(r Report) bool { return r.ConsistentlyNegative },
		message: "Coverage is consistently negative across the period.",
	},
	{
		when: func(r Report) bool { return r.EpisodicSpikes },
		message: "Coverage is mixed overall but punctuated by episodic spikes " +
			"of sharply negative reporting.",
	},
	{
		when:    func(r Report) bool { return r.Trend.Declining() && r.Trend.Significant() },
		message: "Coverage sentiment is deteriorating over the period.",
	},
	{
		when:    func(r Report) bool { return r.Trend.Improving() && r.Trend.Significant() },
		message: "Coverage sentiment is improving over the period.",
	},
	{
		when:    func(r Report) bool { return r.MostlyNegative },
		message: "Coverage leans negative without a clear trend.",
	},
	{
		when:    func(Report) bool { return true },
		message: "Coverage sentiment is broadly stable over the period.",
	},
}

func narrate(r Report) string {
	for _, rule := range narrativeRules {
		if rule.when(r) {
			return rule.message
		}
	}
	return ""
}
