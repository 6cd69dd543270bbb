package service

import (
	"strings"
)

// adviceSignals are the keyword hits the rule-based advice is keyed on.
type adviceSignals struct {
	vegetarian  bool
	vegan       bool
	cholesterol bool
	diabetes    bool
	weightLoss  bool
	muscleGain  bool
	active      bool
	medication  bool
}

func containsAny(text string, keywords ...string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

func detectSignals(summary string) adviceSignals {
	text := strings.ToLower(summary)
	return adviceSignals{
		vegetarian:  strings.Contains(text, "vegetarian"),
		vegan:       strings.Contains(text, "vegan"),
		cholesterol: strings.Contains(text, "cholesterol"),
		diabetes:    strings.Contains(text, "diabetes"),
		weightLoss:  containsAny(text, "weight loss", "lose weight"),
		muscleGain:  containsAny(text, "muscle", "build"),
		active:      containsAny(text, "gym", "exercise"),
		medication:  strings.Contains(text, "medication"),
	}
}

type adviceRule struct {
	when  func(s adviceSignals) bool
	lines []string
}

type adviceSection struct {
	title string
	rules []adviceRule
}

func always(adviceSignals) bool { return true }

const (
	adviceIntro      = "Based on your health profile, here are personalized dietary recommendations:\n"
	adviceDisclaimer = "**Important:** This advice is based on general nutritional principles. For personalized guidance, especially with health conditions or medications, please consult with a registered dietitian or healthcare professional.\n"
)

// adviceSections is evaluated top to bottom; each section header is always emitted and
// followed by the lines of every matching rule, in order.
var adviceSections = []adviceSection{
	{
		title: "Recommended Foods",
		rules: []adviceRule{
			{
				when: func(s adviceSignals) bool { return s.vegetarian || s.vegan },
				lines: []string{
					"Legumes (lentils, chickpeas, black beans) for protein",
					"Quinoa, brown rice, and whole grain breads",
					"Nuts and seeds (almonds, walnuts, chia seeds)",
				},
			},
			{
				when:  func(s adviceSignals) bool { return s.vegetarian && !s.vegan },
				lines: []string{"Greek yogurt and eggs for additional protein"},
			},
			{
				when: func(s adviceSignals) bool { return !s.vegetarian && !s.vegan },
				lines: []string{
					"Lean proteins (chicken breast, fish, turkey)",
					"Fatty fish (salmon, mackerel) twice weekly",
				},
			},
			{
				when: func(s adviceSignals) bool { return s.cholesterol },
				lines: []string{
					"Oats, barley, and soluble fiber-rich foods",
					"Avocados and olive oil for healthy fats",
					"Berries and leafy greens for antioxidants",
				},
			},
			{
				when: func(s adviceSignals) bool { return s.muscleGain && s.active },
				lines: []string{
					"Adequate protein at each meal (20-30g)",
					"Complex carbohydrates around workouts",
				},
			},
		},
	},
	{
		title: "Foods to Limit",
		rules: []adviceRule{
			{
				when: func(s adviceSignals) bool { return s.cholesterol },
				lines: []string{
					"Saturated fats and trans fats",
					"High-sodium processed foods",
				},
			},
			{
				when: func(s adviceSignals) bool { return s.diabetes },
				lines: []string{
					"Refined sugars and simple carbohydrates",
					"Processed snacks and sugary drinks",
				},
			},
			{
				when: func(s adviceSignals) bool { return !s.diabetes },
				lines: []string{
					"Processed foods and added sugars",
					"Excessive sodium and refined grains",
				},
			},
		},
	},
	{
		title: "Portion Guidelines",
		rules: []adviceRule{
			{
				when: func(s adviceSignals) bool { return s.weightLoss },
				lines: []string{
					"Use smaller plates to control portions",
					"Fill half your plate with vegetables",
					"Protein portion: palm-sized serving",
				},
			},
			{
				when: func(s adviceSignals) bool { return !s.weightLoss && s.muscleGain },
				lines: []string{
					"Protein: 1.6-2.2g per kg body weight daily",
					"Carbohydrates: Focus around workout times",
				},
			},
		},
	},
	{
		title: "Meal Timing",
		rules: []adviceRule{
			{
				when: func(s adviceSignals) bool { return s.active },
				lines: []string{
					"Eat protein within 2 hours post-workout",
					"Include carbs before and after exercise",
				},
			},
			{
				when: always,
				lines: []string{
					"Eat regular meals every 3-4 hours",
					"Stay hydrated with 8-10 glasses of water daily",
				},
			},
		},
	},
	{
		title: "Special Considerations",
		rules: []adviceRule{
			{
				when:  func(s adviceSignals) bool { return s.medication },
				lines: []string{"Consult your doctor about food-drug interactions"},
			},
			{
				when: func(s adviceSignals) bool { return s.cholesterol },
				lines: []string{
					"Consider plant stanols/sterols in foods",
					"Monitor cholesterol levels regularly",
				},
			},
		},
	},
}

// GenerateFallbackAdvice builds rule-based advice from a profile summary.
// The output depends only on summary.
func GenerateFallbackAdvice(summary string) string {
	signals := detectSignals(summary)

	var b strings.Builder
	b.WriteString(adviceIntro)
	for _, section := range adviceSections {
		b.WriteString("\n**")
		b.WriteString(section.title)
		b.WriteString(":**\n")
		for _, rule := range section.rules {
			if !rule.when(signals) {
				continue
			}
			for _, line := range rule.lines {
				b.WriteString("• ")
				b.WriteString(line)
				b.WriteString("\n")
			}
		}
	}
	b.WriteString("\n")
	b.WriteString(adviceDisclaimer)
	return b.String()
}
