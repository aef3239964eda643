package chat

import (
	"fmt"
	"strings"

	"github.com/atenea/rumbo/ai"
	"github.com/atenea/rumbo/core"
	"github.com/atenea/rumbo/profile"
)

const introSystemPrompt = "Eres un coach vocacional amable y práctico. " +
	"Haces preguntas cortas, conectas intereses con cursos y justificas " +
	"sugerencias con claridad. No inventes datos del catálogo."

const explainSystemPrompt = "Eres un asesor que explica rutas de aprendizaje " +
	"en lenguaje claro, de básico a avanzado, conectando intereses/valores " +
	"del usuario con los cursos."

// maxExplainCourses caps the course bullets sent to the explanation prompt.
const maxExplainCourses = 6

// introMessages builds the conversation for a short coaching reply to one
// user message.
func introMessages(state profile.State, userMessage string) []ai.Message {
	return []ai.Message{
		{Role: ai.RoleSystem, Content: introSystemPrompt},
		{
			Role:    ai.RoleUser,
			Content: fmt.Sprintf("Idioma: %s. Usuario dice: %s.", state.Language, userMessage),
		},
	}
}

// explainMessages builds the conversation asking the model to explain why
// the ranked courses fit the profile and in which order to take them.
func explainMessages(state profile.State, candidates []core.Candidate) []ai.Message {
	bullets := make([]string, 0, maxExplainCourses)
	for _, c := range candidates {
		if len(bullets) == maxExplainCourses {
			break
		}
		bullets = append(bullets, fmt.Sprintf("- %s · %s · %s",
			orPlaceholder(c.Course.Title), c.Course.Level, c.Course.Duration))
	}
	plan := strings.Join(bullets, "\n")

	return []ai.Message{
		{Role: ai.RoleSystem, Content: explainSystemPrompt},
		{
			Role: ai.RoleUser,
			Content: fmt.Sprintf(
				"Perfil: %s. Propón un orden (starter, aplicado, proyecto), 4-8 cursos. "+
					"Lista breve:\n%s\nExplica cómo encaja con sus intereses/estilo. "+
					"Cierra preguntando si desea cambios.",
				state.Summary(), plan),
		},
	}
}

func orPlaceholder(title string) string {
	if title == "" {
		return "(sin nombre)"
	}
	return title
}
