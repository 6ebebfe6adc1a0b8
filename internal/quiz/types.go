package quiz

// Question is a single multiple-choice question.
type Question struct {
	// Prompt is the question text shown to the player.
	Prompt string `json:"prompt" yaml:"prompt"`

	// AnswerOptions lists the choices in display order. No fixed cardinality.
	AnswerOptions []string `json:"answerOptions" yaml:"answerOptions"`

	// CorrectAnswer must equal one element of AnswerOptions exactly.
	CorrectAnswer string `json:"correctAnswer" yaml:"correctAnswer"`
}

// IsCorrect reports whether answer matches the correct answer.
// Exact string equality is the only test: no case folding or trimming.
func (q Question) IsCorrect(answer string) bool {
	return answer == q.CorrectAnswer
}

// Bank is an ordered, validated question list.
type Bank struct {
	// Version is the semver of the bank format, e.g. "v1.0.0".
	Version string `json:"version" yaml:"version"`

	// Title is a display name for the bank.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	Questions []Question `json:"questions" yaml:"questions"`
}

// Len returns the number of questions in the bank.
func (b *Bank) Len() int {
	if b == nil {
		return 0
	}
	return len(b.Questions)
}
