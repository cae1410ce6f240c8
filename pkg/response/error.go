package response

// Kind clasifica los fallos de dominio. Cada operación del servicio devuelve
// a lo sumo un DomainError; el adaptador HTTP lo traduce a un código 4xx.
type Kind string

const (
	KindInvalidInput  Kind = "invalid_input"
	KindConflict      Kind = "conflict"
	KindNotFound      Kind = "not_found"
	KindRuleViolation Kind = "rule_violation"
)

// Códigos de regla de negocio (motor de resolución).
const (
	RuleSolutionExists  = "solution-exists"
	RuleSelfSolution    = "self-solution"
	RuleMessageTooShort = "message-too-short"
	RuleTitleTooShort   = "title-too-short"
)

type DomainError struct {
	Kind Kind
	Code string // código de regla, solo para KindRuleViolation
	Msg  string
}

func (e *DomainError) Error() string {
	return e.Msg
}

func InvalidInput(msg string) *DomainError {
	return &DomainError{Kind: KindInvalidInput, Msg: msg}
}

func Conflict(msg string) *DomainError {
	return &DomainError{Kind: KindConflict, Msg: msg}
}

func NotFound(msg string) *DomainError {
	return &DomainError{Kind: KindNotFound, Msg: msg}
}

func RuleViolation(code, msg string) *DomainError {
	return &DomainError{Kind: KindRuleViolation, Code: code, Msg: msg}
}

// HTTPStatus: 404 para entidades ausentes, 400 para el resto de fallos 4xx.
func (e *DomainError) HTTPStatus() int {
	if e.Kind == KindNotFound {
		return 404
	}
	return 400
}
