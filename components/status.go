package components

// Status classifies an agent for display.
type Status uint8

const (
	StatusPaired Status = iota
	StatusUnpairedMale
	StatusUnpairedFemale
)

// Classify returns the display status for an agent.
func Classify(g Gender, paired bool) Status {
	if paired {
		return StatusPaired
	}
	if g == Male {
		return StatusUnpairedMale
	}
	return StatusUnpairedFemale
}

// String returns the display name for a Status.
func (s Status) String() string {
	names := StatusNames()
	if int(s) < len(names) {
		return names[s]
	}
	return "Unknown"
}

// StatusNames returns the display names for all statuses.
// The order matches the Status constants.
func StatusNames() []string {
	return []string{"paired", "unpaired_male", "unpaired_female"}
}
