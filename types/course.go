package types

// RegisterCourseRequest alta de curso. Nombre y categoría solo admiten letras
// (incluye acentos) y espacios; el servicio aplica el patrón.
type RegisterCourseRequest struct {
	Nombre    string `json:"nombre" binding:"required"`
	Categoria string `json:"categoria" binding:"required"`
}

// CourseDetail vista de un curso.
type CourseDetail struct {
	ID        int64  `json:"id"`
	Nombre    string `json:"nombre"`
	Categoria string `json:"categoria"`
}
