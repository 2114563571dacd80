package guidance

const StatusNotStarted = "not started"

type Application struct {
	JobTitle   string
	Company    string
	Deadline   string
	TailoredCV bool
	Status     string
}

type ApplicationAdvice struct {
	NextStep        string
	IsUrgent        string
	SuggestedAction string
}

// AdviseApplication derives the next step for one tracked application.
// Status is compared as given; callers default it to StatusNotStarted only
// when the application carries no status at all.
func AdviseApplication(a Application) ApplicationAdvice {
	adv := ApplicationAdvice{NextStep: "Submit application", IsUrgent: "No"}
	if !a.TailoredCV {
		adv.NextStep = "Tailor CV and cover letter"
	}
	if a.Deadline != "" && a.Status == StatusNotStarted {
		adv.IsUrgent = "Yes"
	}

	switch {
	case !a.TailoredCV:
		adv.SuggestedAction = "Focus on CV tailoring"
	case a.Status == "in progress":
		adv.SuggestedAction = "Check deadline and submit"
	default:
		adv.SuggestedAction = "Track response"
	}
	return adv
}
