package service

import (
	"context"
	"regexp"

	"forohub/dao"
	"forohub/models"
	"forohub/pkg/response"
	"forohub/pkg/snowflake"
	"forohub/types"
)

var _ ICourseService = (*CourseService)(nil)

type ICourseService interface {
	Register(ctx context.Context, req *types.RegisterCourseRequest) (*types.CourseDetail, error)
	List(ctx context.Context) ([]*types.CourseDetail, error)
}

// CourseService registro de cursos: unicidad de nombre y validación de forma.
type CourseService struct {
	CourseDAO *dao.Course
}

// letras (incluye acentos latinos) y espacios
var lettersAndSpaces = regexp.MustCompile(`^[a-zA-ZÀ-ÿ\s]+$`)

func (s *CourseService) Register(ctx context.Context, req *types.RegisterCourseRequest) (*types.CourseDetail, error) {
	if !lettersAndSpaces.MatchString(req.Nombre) {
		return nil, response.InvalidInput("El nombre solo puede contener letras y espacios.")
	}
	if !lettersAndSpaces.MatchString(req.Categoria) {
		return nil, response.InvalidInput("La categoría solo puede contener letras y espacios.")
	}

	exists, err := s.CourseDAO.ExistsByName(ctx, req.Nombre)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, response.Conflict("Ya existe un curso con ese nombre.")
	}

	course := &models.Course{
		ID:       snowflake.GenID(),
		Name:     req.Nombre,
		Category: req.Categoria,
	}
	if err := s.CourseDAO.Create(ctx, course); err != nil {
		return nil, err
	}

	return courseDetail(course), nil
}

func (s *CourseService) List(ctx context.Context) ([]*types.CourseDetail, error) {
	courses, err := s.CourseDAO.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*types.CourseDetail, 0, len(courses))
	for _, c := range courses {
		result = append(result, courseDetail(c))
	}
	return result, nil
}

func courseDetail(c *models.Course) *types.CourseDetail {
	return &types.CourseDetail{
		ID:        c.ID,
		Nombre:    c.Name,
		Categoria: c.Category,
	}
}
