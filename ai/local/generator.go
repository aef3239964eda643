package local

import (
	"context"
	"log/slog"

	"github.com/atenea/rumbo/ai"
)

// Generator is the deterministic no-model fallback: it always answers with
// the same heuristic coaching text, echoing the start of the last message.
// The pipeline stays fully functional without any model configured.
type Generator struct {
	logger *slog.Logger
}

var _ ai.TextGenerator = (*Generator)(nil)

// NewGenerator creates the local fallback generator.
func NewGenerator() *Generator {
	return &Generator{logger: slog.Default().With("component", "local-generator")}
}

// Generate returns the fixed heuristic reply. It never fails.
func (g *Generator) Generate(_ context.Context, messages []ai.Message) (string, error) {
	last := ""
	if len(messages) > 0 {
		last = messages[len(messages)-1].Content
	}
	if runes := []rune(last); len(runes) > 200 {
		last = string(runes[:200])
	}
	g.logger.Debug("serving local fallback reply", "lastLength", len(last))
	return ai.FallbackMarker + " Entiendo. A partir de lo que me cuentas, " +
		"priorizaré cursos intro y prácticos; si te gusta la creatividad " +
		"y el análisis, mezclaré IA básica + marketing digital + proyectos cortos. " +
		"Mensaje recibido: " + last + "...", nil
}
