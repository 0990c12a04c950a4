package models

// Section groups related prompts under a heading shown on the form.
type Section struct {
	Title   string   `json:"title"`
	Prompts []string `json:"prompts"`
}

// QuestionSet is the fixed questionnaire. It is built once at startup and
// never mutated.
type QuestionSet struct {
	Sections []Section `json:"sections"`
}

// FreeWritePrompt is shown as the placeholder of the free-write area.
const FreeWritePrompt = "⚡ For 3 minutes, write without thinking. Don’t censor. Don’t try to be smart. " +
	"Just bleed onto the page about who you are, what you fear, or what you want most."

func DefaultQuestionSet() *QuestionSet {
	return &QuestionSet{
		Sections: []Section{
			{
				Title: "Control & Identity",
				Prompts: []string{
					"When you’re overwhelmed, what’s the first thing you try to control?",
					"Do you seek truth more to understand reality — or to control your future?",
					"What part of you feels “non-negotiable” no matter what life throws at you?",
					"Do you feel closer to yourself when you’re thinking or when you’re acting?",
					"What kind of chaos feels weirdly comforting?",
				},
			},
			{
				Title: "Trust & Filtering",
				Prompts: []string{
					"What type of person do you almost never trust — no matter how “nice” they seem?",
					"What do you instinctively filter out when making decisions?",
					"Do you run toward intensity or away from it? Why?",
					"In your internal monologue, who are you always trying to explain yourself to?",
					"What do you deeply wish you believed — but can't?",
				},
			},
			{
				Title: "Imagery & Metaphor",
				Prompts: []string{
					"If your inner world had a landscape, what would it look like?",
					"What metaphor describes how your mind moves through a problem?",
					"What emotion do you treat like a luxury — only feeling when it's safe?",
				},
			},
		},
	}
}

// Prompts returns every prompt in form order.
func (qs *QuestionSet) Prompts() []string {
	var all []string
	for _, s := range qs.Sections {
		all = append(all, s.Prompts...)
	}
	return all
}

func (qs *QuestionSet) Len() int {
	n := 0
	for _, s := range qs.Sections {
		n += len(s.Prompts)
	}
	return n
}

// Contains reports whether prompt is part of the set.
func (qs *QuestionSet) Contains(prompt string) bool {
	for _, s := range qs.Sections {
		for _, p := range s.Prompts {
			if p == prompt {
				return true
			}
		}
	}
	return false
}
