package guidance

import "strings"

const shortCVWordCount = 150

type CVFeedback struct {
	FeedbackPoints  []string
	PromptQuestions []string
}

// ReviewCV applies a fixed set of containment and length checks to CV text.
func ReviewCV(cvText string) CVFeedback {
	lower := strings.ToLower(cvText)
	fb := CVFeedback{FeedbackPoints: []string{}, PromptQuestions: []string{}}

	add := func(point, question string) {
		fb.FeedbackPoints = append(fb.FeedbackPoints, point)
		if question != "" {
			fb.PromptQuestions = append(fb.PromptQuestions, question)
		}
	}

	if strings.Contains(lower, "team player") || strings.Contains(lower, "hard-working") {
		add("Avoid vague phrases like 'team player'. Replace them with specific examples.",
			"What's a project where you worked in a team and what was the outcome?")
	}

	if !strings.Contains(lower, "summary") && !strings.Contains(lower, "profile") {
		add("Add a personal summary at the top: who you are, what you bring, and your goals.",
			"What kind of roles are you targeting, and what makes you a good fit?")
	}

	if len(strings.Fields(cvText)) < shortCVWordCount {
		add("Your CV looks short. Consider expanding with results, skills, and examples.",
			"Can you add a section for achievements, tools used, or quantified results?")
	}

	if strings.Contains(lower, "figma") || strings.Contains(lower, "sql") {
		add("Good job including industry tools. Make sure they appear in key sections.", "")
	}

	if len(fb.FeedbackPoints) == 0 {
		add("Looks solid. You might still customise it for the job you're applying to.",
			"Would you like help tailoring this to a specific job description?")
	}

	return fb
}
