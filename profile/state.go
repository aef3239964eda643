package profile

import (
	"fmt"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/atenea/rumbo/rank"
)

// MaxInterests caps the accumulated interests set.
const MaxInterests = 10

// State is the accumulated profile of one session. Values, not pointers:
// every transition returns a fresh copy and never mutates its input.
type State struct {
	Language string

	// Explicit facet filters, mirrored by the catalog columns.
	Area         string
	Level        string
	MaxHours     float64 // NaN means no ceiling
	Access       string
	Population   string
	KeywordsText string

	// Conversational attributes filled by the guided interview.
	Age           int // 0 while unknown
	ShortBio      string
	SelfStyle     string
	Interests     []string // Deduplicated, insertion-ordered, capped
	Values        []string
	LearningStyle string
	Goals         string
	Constraints   string

	// Conversation control.
	Step      int
	Confirmed bool
}

// NewState creates the initial profile for a session.
func NewState(language string) State {
	if language == "" {
		language = "es"
	}
	return State{Language: language, MaxHours: 40}
}

// Facets projects the explicit filter selections for the metadata filter
// and the feature scorer.
func (s State) Facets() rank.Facets {
	return rank.Facets{
		Area:       s.Area,
		Level:      s.Level,
		Access:     s.Access,
		Population: s.Population,
		MaxHours:   s.MaxHours,
	}
}

// HasCeiling reports whether a duration ceiling is set.
func (s State) HasCeiling() bool {
	return !math.IsNaN(s.MaxHours)
}

// clone copies the state including its slices.
func (s State) clone() State {
	s.Interests = slices.Clone(s.Interests)
	s.Values = slices.Clone(s.Values)
	return s
}

var firstNumber = regexp.MustCompile(`\d+`)

// extractNumber returns the first integer in the text, or 0.
func extractNumber(text string) int {
	m := firstNumber.FindString(text)
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return n
}

// interestVocabulary lists the interest words the slot-filling heuristic
// recognizes in free text.
var interestVocabulary = map[string]bool{
	"datos": true, "data": true, "marketing": true, "diseño": true,
	"programación": true, "ia": true, "inteligencia": true, "excel": true,
	"python": true, "finanzas": true, "proyectos": true,
	"emprendimiento": true, "servicio": true, "social": true, "salud": true,
	"docencia": true, "seguridad": true, "ciberseguridad": true, "cloud": true,
}

// ApplyMessage folds a free-text user message into the profile: the first
// number becomes the age while unknown, recognized interest words merge into
// the interests set, and project-flavored wording fixes the learning style.
func ApplyMessage(s State, message string) State {
	next := s.clone()

	if next.Age == 0 {
		if age := extractNumber(message); age > 0 {
			next.Age = age
		}
	}

	for _, segment := range splitSegments(message) {
		if len(segment) < 2 || len(segment) > 32 {
			continue
		}
		if interestVocabulary[segment] {
			next.Interests = appendInterest(next.Interests, segment)
		}
	}

	if next.LearningStyle == "" {
		lower := strings.ToLower(message)
		for _, marker := range []string{"proyecto", "proyectos", "hands-on", "práctic"} {
			if strings.Contains(lower, marker) {
				next.LearningStyle = "proyectos"
				break
			}
		}
	}

	return next
}

// Advance increments the guided-interview step counter.
func Advance(s State) State {
	next := s.clone()
	next.Step++
	return next
}

// appendInterest adds an interest if new, keeping insertion order and the
// size cap.
func appendInterest(interests []string, interest string) []string {
	if slices.Contains(interests, interest) {
		return interests
	}
	if len(interests) >= MaxInterests {
		return interests
	}
	return append(interests, interest)
}

// Summary renders the one-line human-readable profile description used by
// the PDF export and the coach explanation prompt.
func (s State) Summary() string {
	orND := func(v string) string {
		if v == "" {
			return "N/D"
		}
		return v
	}
	age := "N/D"
	if s.Age > 0 {
		age = strconv.Itoa(s.Age)
	}
	hours := "N/D"
	if s.HasCeiling() {
		hours = strconv.FormatFloat(s.MaxHours, 'f', -1, 64)
	}
	joinOrND := func(vs []string) string {
		if len(vs) == 0 {
			return "N/D"
		}
		return strings.Join(vs, ", ")
	}
	return fmt.Sprintf(
		"Idioma: %s | Edad: %s | Estilo: %s | Intereses: %s | Valores: %s | Meta: %s | Tiempo/semana: %s h | Área: %s | Nivel: %s | Acceso: %s",
		s.Language, age, orND(s.SelfStyle), joinOrND(s.Interests),
		joinOrND(s.Values), orND(s.Goals), hours, orND(s.Area),
		orND(s.Level), orND(s.Access),
	)
}
