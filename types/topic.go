package types

import "time"

// RegisterTopicRequest alta de un tópico. cursoId llega como texto libre y se
// valida en el servicio (entero positivo).
type RegisterTopicRequest struct {
	Titulo  string `json:"titulo" binding:"required"`
	Mensaje string `json:"mensaje" binding:"required"`
	Autor   string `json:"autor" binding:"required"`
	CursoID string `json:"cursoId" binding:"required"`
}

// UpdateTopicRequest actualización parcial: solo se aplican los campos no nulos.
type UpdateTopicRequest struct {
	ID            int64      `json:"id"`
	Titulo        *string    `json:"titulo"`
	Mensaje       *string    `json:"mensaje"`
	FechaCreacion *time.Time `json:"fechaCreacion"`
	Status        *string    `json:"status"`
	Autor         *string    `json:"autor"`
	CursoID       *string    `json:"cursoId"`
}

// SearchTopicFilter filtro del cuerpo de POST /topicos/buscar. Ambos campos
// son obligatorios; ano se valida como dígitos en el servicio.
type SearchTopicFilter struct {
	NombreCurso string `json:"nombreCurso"`
	Ano         string `json:"ano"`
}

// TopicDetail vista de detalle de un tópico. Solucion solo se rellena en la
// lectura profunda (con respuestas cargadas).
type TopicDetail struct {
	ID            int64     `json:"id"`
	Titulo        string    `json:"titulo"`
	Mensaje       string    `json:"mensaje"`
	FechaCreacion time.Time `json:"fechaCreacion"`
	Status        string    `json:"status"`
	Autor         string    `json:"autor"`
	Curso         string    `json:"curso"`
	Solucion      *string   `json:"solucion"`
}

// TopicListItem elemento de los listados paginados.
type TopicListItem struct {
	ID            int64     `json:"id"`
	Titulo        string    `json:"titulo"`
	Mensaje       string    `json:"mensaje"`
	FechaCreacion time.Time `json:"fechaCreacion"`
	Status        string    `json:"status"`
	Autor         string    `json:"autor"`
	Curso         string    `json:"curso"`
}
