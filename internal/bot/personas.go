package bot

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

type Persona struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	AvatarIndex int    `json:"avatar_index"`
}

var (
	personas    []Persona
	personaOnce sync.Once
	personaErr  error
)

// LoadPersonas loads the computer personas from the given path.
func LoadPersonas(path string) error {
	personaOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			personaErr = fmt.Errorf("failed to read personas: %w", err)
			return
		}
		var loaded []Persona
		if err := json.Unmarshal(data, &loaded); err != nil {
			personaErr = fmt.Errorf("failed to unmarshal personas: %w", err)
			return
		}
		personas = loaded
	})
	return personaErr
}

// GetPersona returns a persona by index (mod pool size). Without loaded
// personas a generic one is synthesized.
func GetPersona(index int) Persona {
	if len(personas) == 0 {
		return Persona{
			Username:    fmt.Sprintf("computer-%d", index),
			DisplayName: "Computer",
		}
	}
	if index < 0 {
		index = -index
	}
	return personas[index%len(personas)]
}

// PersonaCount returns the size of the loaded pool.
func PersonaCount() int {
	return len(personas)
}
