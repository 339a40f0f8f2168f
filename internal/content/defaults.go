package content

// Default returns the built-in site content, used when no content file is
// supplied. It doubles as the reference document for the YAML schema.
func Default() Site {
	return Site{
		Brand:   "FORGE / CARTER",
		Tagline: "Personal training, done properly.",

		Hero: Hero{
			Headline: "Stronger in 12 weeks. Guaranteed.",
			Subhead:  "One-to-one coaching for people who are done guessing in the gym.",
			CTA:      "Book a free consult",
		},

		About: About{
			Heading: "Meet your coach",
			Bio: "I'm **Alex Carter**, a strength and conditioning coach with " +
				"ten years under the bar and eight coaching clients from first " +
				"session to first competition.\n\n" +
				"My approach is simple: *measure, program, adjust*. No fads, no " +
				"detox teas, no six-week shreds. Just progressive overload, " +
				"honest nutrition, and a plan that survives real life.",
			Credentials: []string{
				"BSc Sport & Exercise Science",
				"NSCA Certified Strength & Conditioning Specialist",
				"Precision Nutrition L2",
			},
		},

		Results: []Transformation{
			{
				Client:   "Priya",
				Duration: "16 weeks",
				Before:   "Deadlift 60kg, desk-bound, back pain",
				After:    "Deadlift 120kg, pain-free, hiking again",
				Note:     "Trained twice a week, nothing heroic. Consistency did the rest.",
			},
			{
				Client:   "Marcus",
				Duration: "12 weeks",
				Before:   "94kg, winded on stairs",
				After:    "84kg, first 5k without stopping",
				Note:     "Mostly kitchen changes. The running followed.",
			},
			{
				Client:   "Dana",
				Duration: "24 weeks",
				Before:   "Post-physio, afraid of the barbell",
				After:    "Squatting bodyweight for reps",
				Note:     "Slow rebuild, zero setbacks.",
			},
		},

		Programs: []Plan{
			{
				Name:   "Foundations",
				Price:  "$149",
				Period: "per month",
				Features: []string{
					"Custom program, updated monthly",
					"Form checks by video",
					"Email support",
				},
			},
			{
				Name:      "Coaching",
				Price:     "$299",
				Period:    "per month",
				Highlight: true,
				Features: []string{
					"Weekly 1:1 sessions",
					"Nutrition targets & check-ins",
					"Program adjusted every week",
					"Priority messaging",
				},
			},
			{
				Name:   "Competition Prep",
				Price:  "$499",
				Period: "per month",
				Features: []string{
					"Meet-day handling",
					"Peaking & attempt selection",
					"Daily readiness tracking",
					"Everything in Coaching",
				},
			},
		},

		Testimonials: []Testimonial{
			{
				Quote:  "Alex is the first trainer who *listened* before writing a program. Two years of nagging shoulder pain, gone in a month.",
				Author: "Priya S.",
				Detail: "Client since 2023",
			},
			{
				Quote:  "I thought I hated the gym. Turns out I hated bad programming.",
				Author: "Marcus T.",
				Detail: "Down 10kg and holding",
			},
			{
				Quote:  "Went from scared of the bar to a 100kg squat. The patience was the product.",
				Author: "Dana R.",
				Detail: "Post-rehab client",
			},
		},

		Contact: Contact{
			Heading: "Start your comeback",
			Blurb:   "Tell me where you are and where you want to be. I read every message myself.",
			Email:   "alex@forgecarter.fit",
			Phone:   "+1 (555) 010-4417",
			Goals: []string{
				"strength|Get stronger",
				"hypertrophy|Build muscle",
				"fat-loss|Lose fat",
				"mobility|Move better",
			},
		},
	}
}
