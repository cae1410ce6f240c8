package types

import "time"

// ReplyRequest alta de respuesta. Solucion llega como texto y debe parsear a
// "true" o "false" (sin distinguir mayúsculas).
type ReplyRequest struct {
	Mensaje  string `json:"mensaje" binding:"required"`
	Autor    string `json:"autor" binding:"required"`
	Solucion string `json:"solucion" binding:"required"`
}

// WriteSolutionRequest cuerpo de POST /topicos/soluciones: la misma respuesta
// pero con el tópico referenciado en el propio cuerpo.
type WriteSolutionRequest struct {
	TopicoID int64  `json:"topicoId" binding:"required"`
	Mensaje  string `json:"mensaje" binding:"required"`
	Autor    string `json:"autor" binding:"required"`
	Solucion string `json:"solucion" binding:"required"`
}

// ReplyDetail vista de una respuesta.
type ReplyDetail struct {
	ID            int64     `json:"id"`
	Mensaje       string    `json:"mensaje"`
	FechaCreacion time.Time `json:"fechaCreacion"`
	Autor         string    `json:"autor"`
	Solucion      bool      `json:"solucion"`
	TopicoID      int64     `json:"topicoId"`
}
