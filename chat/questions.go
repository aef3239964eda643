package chat

// Scripted interview material. The Spanish set is the canonical one; the
// English set mirrors it for sessions opened with language "en".

var evocativeQuestionsES = []string{
	"¡Hola! 😊 ¿Cómo estás hoy? ¿Qué edad tienes?",
	"Cuéntame un poco sobre ti: ¿qué te entusiasma últimamente?",
	"¿Cómo te describirías en pocas palabras (p. ej., creativo, analítico, práctico, social)?",
	"¿Qué intereses o hobbies tienes (ej.: tecnología, diseño, negocios, ciencia, arte, servicio social)?",
	"¿Qué valoras más al aprender: resultados rápidos, profundidad teórica, proyectos, comunidad?",
	"¿Cómo te gusta aprender: cursos cortos, retos prácticos, lecturas, videos, mentores?",
	"En esta plataforma: ¿qué esperas lograr en 1–3 meses?",
	"¿Cuántas horas a la semana podrías dedicar? (número aproximado)",
}

var followupsES = []string{
	"Con lo que me cuentas, ¿te gustaría empezar por fundamentos o prefieres saltar directo a cosas aplicadas?",
	"¿Te interesan rutas con certificación/constancia o te basta con aprender práctico?",
	"¿Hay alguna restricción o preferencia técnica? (acceso REA/Moodle, conexión, dispositivo)",
	"¿Te gusta este path inicial? ¿Qué le cambiarías o agregarías?",
}

var evocativeQuestionsEN = []string{
	"Hi! 😊 How are you today? How old are you?",
	"Tell me a bit about yourself: what has you excited lately?",
	"How would you describe yourself in a few words (e.g., creative, analytical, practical, social)?",
	"What interests or hobbies do you have (e.g., technology, design, business, science, art, social service)?",
	"What do you value most when learning: quick results, theoretical depth, projects, community?",
	"How do you like to learn: short courses, practical challenges, readings, videos, mentors?",
	"On this platform: what do you hope to achieve in 1-3 months?",
	"How many hours per week could you dedicate? (approximate number)",
}

var followupsEN = []string{
	"From what you tell me, would you like to start with fundamentals or jump straight into applied work?",
	"Are you interested in paths with certification, or is practical learning enough?",
	"Any technical restriction or preference? (REA/Moodle access, connectivity, device)",
	"Do you like this initial path? What would you change or add?",
}

const (
	greetingES = "¡Hola! Soy tu coach. 😊 ¿Cómo estás hoy? ¿Qué edad tienes?"
	greetingEN = "Hi! I'm your coach. 😊 How are you today? How old are you?"

	offerPathES = "¿Te propongo una ruta inicial y la ajustamos juntos?"
	offerPathEN = "Shall I propose an initial path so we can adjust it together?"
)

func questionsFor(language string) []string {
	if language == "en" {
		return evocativeQuestionsEN
	}
	return evocativeQuestionsES
}

func followupsFor(language string) []string {
	if language == "en" {
		return followupsEN
	}
	return followupsES
}

// Greeting returns the opening coach message for a new session.
func Greeting(language string) string {
	if language == "en" {
		return greetingEN
	}
	return greetingES
}

// nextPrompt returns the scripted continuation for the given interview step:
// the next evocative question, then the first follow-up, then the offer to
// build the path.
func nextPrompt(step int, language string) string {
	questions := questionsFor(language)
	switch {
	case step < len(questions):
		return questions[step]
	case step == len(questions):
		return followupsFor(language)[0]
	default:
		if language == "en" {
			return offerPathEN
		}
		return offerPathES
	}
}
