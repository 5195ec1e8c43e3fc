package bot

// Agent is the computer opponent of a hosted match: a persona that players
// see and the brain that makes its choices.
type Agent struct {
	Persona Persona
	Brain   Brain
}

// NewAgent pairs the persona at index with a uniform brain driven by sel.
func NewAgent(index int, sel Selector) *Agent {
	return &Agent{Persona: GetPersona(index), Brain: NewUniformBrain(sel)}
}

// Name returns the persona's display name.
func (a *Agent) Name() string {
	if a.Persona.DisplayName == "" {
		return a.Persona.Username
	}
	return a.Persona.DisplayName
}
