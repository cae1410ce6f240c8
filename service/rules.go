package service

import (
	"strings"

	"forohub/models"
	"forohub/pkg/response"
)

// TopicRules motor de reglas de resolución. Funciones puras sobre el estado
// en memoria de tópico y respuestas; sin I/O. El servicio de tópicos las
// invoca antes de cualquier mutación.
type TopicRules struct{}

func NewTopicRules() *TopicRules {
	return &TopicRules{}
}

// CheckUniqueSolution un tópico solo puede tener una solución. Requiere las
// respuestas del tópico ya cargadas.
func (r *TopicRules) CheckUniqueSolution(replies []*models.Reply) error {
	for _, reply := range replies {
		if reply.IsSolution {
			return response.RuleViolation(
				response.RuleSolutionExists,
				"Este tópico ya tiene una solución marcada. Solo se permite una solución por tópico.",
			)
		}
	}
	return nil
}

// CheckAuthorNotSelf el autor del tópico no puede marcar su propia respuesta
// como solución (comparación sin distinguir mayúsculas).
func (r *TopicRules) CheckAuthorNotSelf(topicAuthor, replyAuthor string) error {
	if strings.EqualFold(topicAuthor, replyAuthor) {
		return response.RuleViolation(
			response.RuleSelfSolution,
			"El autor del tópico no puede marcar su propia respuesta como solución.",
		)
	}
	return nil
}

// CheckMessageQuality el mensaje debe tener al menos 20 caracteres; el título,
// si se proporciona, al menos 10.
func (r *TopicRules) CheckMessageQuality(message string, title *string) error {
	if len([]rune(message)) < 20 {
		return response.RuleViolation(
			response.RuleMessageTooShort,
			"El mensaje debe tener al menos 20 caracteres.",
		)
	}
	if title != nil && len([]rune(*title)) < 10 {
		return response.RuleViolation(
			response.RuleTitleTooShort,
			"El título debe tener al menos 10 caracteres.",
		)
	}
	return nil
}
