package service

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"forohub/dao"
	"forohub/models"
	"forohub/pkg/log"
	"forohub/pkg/response"
	"forohub/pkg/snowflake"
	"forohub/types"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ ITopicService = (*TopicService)(nil)

type ITopicService interface {
	Register(ctx context.Context, req *types.RegisterTopicRequest) (*types.TopicDetail, error)
	GetByID(ctx context.Context, id int64) (*types.TopicDetail, error)
	GetByIDWithSolution(ctx context.Context, id int64) (*types.TopicDetail, error)
	WriteReply(ctx context.Context, topicID int64, req *types.ReplyRequest) (*types.ReplyDetail, error)
	WriteSolution(ctx context.Context, req *types.WriteSolutionRequest) (*types.TopicDetail, error)
	Update(ctx context.Context, req *types.UpdateTopicRequest) (*types.TopicDetail, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, nombreCurso, anoRaw string, page, size int) (*types.Page[types.TopicListItem], error)
	Search(ctx context.Context, filter *types.SearchTopicFilter, page, size int) (*types.Page[types.TopicListItem], error)
	ListResolved(ctx context.Context, page, size int) (*types.Page[types.TopicListItem], error)
}

// TopicService orquesta el ciclo de vida del tópico: alta, respuestas,
// aceptación de solución, actualización parcial, borrado lógico y búsquedas.
// Cada operación pública de escritura corre dentro de una transacción.
type TopicService struct {
	DB        *gorm.DB
	TopicDAO  *dao.Topic
	CourseDAO *dao.Course
	ReplyDAO  *dao.Reply
	Rules     *TopicRules
}

var digitsOnly = regexp.MustCompile(`^\d+$`)

// parseCourseID valida que cursoId sea un entero positivo.
func parseCourseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, response.InvalidInput("El cursoId debe ser un número entero válido.")
	}
	if id <= 0 {
		return 0, response.InvalidInput("El cursoId debe ser un número entero positivo.")
	}
	return id, nil
}

func (s *TopicService) Register(ctx context.Context, req *types.RegisterTopicRequest) (*types.TopicDetail, error) {
	courseID, err := parseCourseID(req.CursoID)
	if err != nil {
		return nil, err
	}

	if err := s.Rules.CheckMessageQuality(req.Mensaje, &req.Titulo); err != nil {
		return nil, err
	}

	exists, err := s.TopicDAO.ExistsActiveByTitleAndBody(ctx, req.Titulo, req.Mensaje)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, response.Conflict("Ya existe un tópico con ese título y mensaje.")
	}

	course, err := s.CourseDAO.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, response.NotFound("Curso no encontrado.")
	}

	topic := &models.Topic{
		ID:        snowflake.GenID(),
		Title:     req.Titulo,
		Body:      req.Mensaje,
		CreatedAt: time.Now(),
		Status:    models.TopicStatusOpen,
		Author:    req.Autor,
		Active:    true,
		CourseID:  course.ID,
	}
	if err := s.TopicDAO.Create(ctx, topic); err != nil {
		return nil, err
	}

	log.L.Info("topic registered",
		zap.Int64("topic_id", topic.ID),
		zap.String("course", course.Name),
	)

	return topicDetail(topic, course.Name, nil), nil
}

// GetByID lectura superficial: no carga respuestas, solucion siempre null.
func (s *TopicService) GetByID(ctx context.Context, id int64) (*types.TopicDetail, error) {
	if id <= 0 {
		return nil, response.InvalidInput("El ID del tópico es obligatorio y debe ser válido.")
	}
	topic, err := s.TopicDAO.GetByID(ctx, id, false)
	if err != nil {
		return nil, err
	}
	if topic == nil {
		return nil, response.NotFound("Tópico no encontrado.")
	}
	return topicDetail(topic, topic.Course.Name, nil), nil
}

// GetByIDWithSolution lectura profunda: carga las respuestas y extrae el
// mensaje de la marcada como solución, si existe.
func (s *TopicService) GetByIDWithSolution(ctx context.Context, id int64) (*types.TopicDetail, error) {
	if id <= 0 {
		return nil, response.InvalidInput("El ID del tópico es obligatorio y debe ser válido.")
	}
	topic, err := s.TopicDAO.GetByID(ctx, id, true)
	if err != nil {
		return nil, err
	}
	if topic == nil {
		return nil, response.NotFound("Tópico no encontrado.")
	}
	return topicDetail(topic, topic.Course.Name, topic.Solution()), nil
}

func (s *TopicService) WriteReply(ctx context.Context, topicID int64, req *types.ReplyRequest) (*types.ReplyDetail, error) {
	if topicID <= 0 {
		return nil, response.InvalidInput("El ID del tópico es obligatorio y debe ser válido.")
	}
	reply, err := s.writeReply(ctx, topicID, req.Mensaje, req.Autor, req.Solucion)
	if err != nil {
		return nil, err
	}
	return replyDetail(reply), nil
}

// WriteSolution igual que WriteReply, pero devuelve el detalle refrescado del
// tópico con el texto de la solución.
func (s *TopicService) WriteSolution(ctx context.Context, req *types.WriteSolutionRequest) (*types.TopicDetail, error) {
	if req.TopicoID <= 0 {
		return nil, response.InvalidInput("El ID del tópico es obligatorio y debe ser válido.")
	}
	if _, err := s.writeReply(ctx, req.TopicoID, req.Mensaje, req.Autor, req.Solucion); err != nil {
		return nil, err
	}
	return s.GetByIDWithSolution(ctx, req.TopicoID)
}

// writeReply núcleo compartido. Reglas, en orden: parseo de la bandera,
// campos obligatorios si es solución, calidad del mensaje, autor distinto,
// solución única, respuesta no duplicada. El alta de la respuesta y la
// transición OPEN -> RESOLVED se confirman en una sola transacción; la fila
// del tópico se bloquea (FOR UPDATE) cuando la respuesta es solución, de modo
// que dos aceptaciones concurrentes no puedan pasar ambas la comprobación de
// unicidad.
func (s *TopicService) writeReply(ctx context.Context, topicID int64, mensaje, autor, solucionRaw string) (*models.Reply, error) {
	flag := strings.TrimSpace(solucionRaw)
	if !strings.EqualFold(flag, "true") && !strings.EqualFold(flag, "false") {
		return nil, response.InvalidInput("El campo 'solucion' solo puede ser 'true' o 'false'.")
	}
	isSolution := strings.EqualFold(flag, "true")

	if isSolution {
		if strings.TrimSpace(mensaje) == "" {
			return nil, response.InvalidInput("El campo 'mensaje' es obligatorio cuando se marca como solución.")
		}
		if strings.TrimSpace(autor) == "" {
			return nil, response.InvalidInput("El campo 'autor' es obligatorio cuando se marca como solución.")
		}
	}

	var created *models.Reply
	err := s.TopicDAO.Transaction(ctx, func(tx *gorm.DB) error {
		var (
			topic *models.Topic
			err   error
		)
		if isSolution {
			topic, err = s.TopicDAO.GetByIDForUpdate(tx, topicID)
		} else {
			topic, err = s.TopicDAO.GetByIDTx(tx, topicID)
		}
		if err != nil {
			return err
		}
		if topic == nil {
			return response.NotFound("Tópico no encontrado.")
		}

		if err := s.Rules.CheckMessageQuality(mensaje, nil); err != nil {
			return err
		}

		if isSolution {
			if err := s.Rules.CheckAuthorNotSelf(topic.Author, autor); err != nil {
				return err
			}
			replies, err := s.ReplyDAO.ListByTopicTx(tx, topicID)
			if err != nil {
				return err
			}
			if err := s.Rules.CheckUniqueSolution(replies); err != nil {
				return err
			}
		}

		exists, err := s.ReplyDAO.ExistsByMessageAuthorTopicTx(tx, mensaje, autor, topicID)
		if err != nil {
			return err
		}
		if exists {
			return response.Conflict("Ya existe una respuesta idéntica para este tópico.")
		}

		reply := &models.Reply{
			ID:         snowflake.GenID(),
			Message:    mensaje,
			CreatedAt:  time.Now(),
			Author:     autor,
			IsSolution: isSolution,
			Active:     true,
			TopicID:    topicID,
		}
		if err := s.ReplyDAO.CreateTx(tx, reply); err != nil {
			return err
		}

		if isSolution {
			if err := s.TopicDAO.MarkResolvedTx(tx, topicID); err != nil {
				return err
			}
			log.L.Info("topic resolved",
				zap.Int64("topic_id", topicID),
				zap.String("author", autor),
			)
		}

		created = reply
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *TopicService) Update(ctx context.Context, req *types.UpdateTopicRequest) (*types.TopicDetail, error) {
	if req.ID <= 0 {
		return nil, response.InvalidInput("El campo 'id' es obligatorio y debe ser positivo.")
	}

	topic, err := s.TopicDAO.GetByID(ctx, req.ID, false)
	if err != nil {
		return nil, err
	}
	if topic == nil {
		return nil, response.NotFound("Tópico no encontrado.")
	}

	if req.Mensaje != nil {
		if err := s.Rules.CheckMessageQuality(*req.Mensaje, nil); err != nil {
			return nil, err
		}
	}

	values := map[string]any{}
	if req.Titulo != nil {
		values["title"] = *req.Titulo
	}
	if req.Mensaje != nil {
		values["body"] = *req.Mensaje
	}
	if req.FechaCreacion != nil {
		values["created_at"] = *req.FechaCreacion
	}
	if req.Status != nil {
		// la sobrescritura manual del estado está permitida; puede divergir
		// de la solución derivada de las respuestas y no se oculta
		if !models.ValidTopicStatus(*req.Status) {
			return nil, response.InvalidInput("Status inválido; valores permitidos: OPEN, RESOLVED.")
		}
		values["status"] = *req.Status
	}
	if req.Autor != nil {
		values["author"] = *req.Autor
	}
	if req.CursoID != nil {
		courseID, err := parseCourseID(*req.CursoID)
		if err != nil {
			return nil, err
		}
		course, err := s.CourseDAO.GetByID(ctx, courseID)
		if err != nil {
			return nil, err
		}
		if course == nil {
			return nil, response.NotFound("Curso no encontrado.")
		}
		values["course_id"] = course.ID
	}

	if len(values) > 0 {
		if err := s.TopicDAO.Updates(ctx, req.ID, values); err != nil {
			return nil, err
		}
	}

	return s.GetByID(ctx, req.ID)
}

// Delete borrado lógico. Una segunda llamada sobre el mismo id no falla.
func (s *TopicService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return response.InvalidInput("El ID del tópico es obligatorio.")
	}
	topic, err := s.TopicDAO.GetByIDAnyState(ctx, id)
	if err != nil {
		return err
	}
	if topic == nil {
		return response.NotFound("Tópico no encontrado.")
	}
	return s.TopicDAO.SoftDelete(ctx, id)
}

// List listado con filtros opcionales (GET /topicos).
func (s *TopicService) List(ctx context.Context, nombreCurso, anoRaw string, page, size int) (*types.Page[types.TopicListItem], error) {
	var (
		courseName *string
		year       *int
	)
	if strings.TrimSpace(nombreCurso) != "" {
		trimmed := strings.TrimSpace(nombreCurso)
		courseName = &trimmed
	}
	if strings.TrimSpace(anoRaw) != "" {
		y, err := parseYear(anoRaw)
		if err != nil {
			return nil, err
		}
		year = &y
	}

	topics, total, err := s.TopicDAO.FindPage(ctx, courseName, year, page, size)
	if err != nil {
		return nil, err
	}
	return topicPage(topics, page, size, total), nil
}

// Search búsqueda con filtros obligatorios (POST /topicos/buscar).
func (s *TopicService) Search(ctx context.Context, filter *types.SearchTopicFilter, page, size int) (*types.Page[types.TopicListItem], error) {
	if strings.TrimSpace(filter.NombreCurso) == "" {
		return nil, response.InvalidInput("El campo 'nombreCurso' es obligatorio.")
	}
	if strings.TrimSpace(filter.Ano) == "" {
		return nil, response.InvalidInput("El campo 'ano' es obligatorio.")
	}
	year, err := parseYear(filter.Ano)
	if err != nil {
		return nil, err
	}

	courseName := strings.TrimSpace(filter.NombreCurso)
	topics, total, err := s.TopicDAO.FindPage(ctx, &courseName, &year, page, size)
	if err != nil {
		return nil, err
	}
	if len(topics) == 0 {
		return nil, response.NotFound(fmt.Sprintf(
			"No se encontraron tópicos para el curso '%s' en el año %d.", courseName, year))
	}
	return topicPage(topics, page, size, total), nil
}

func (s *TopicService) ListResolved(ctx context.Context, page, size int) (*types.Page[types.TopicListItem], error) {
	topics, total, err := s.TopicDAO.FindResolvedPage(ctx, page, size)
	if err != nil {
		return nil, err
	}
	return topicPage(topics, page, size, total), nil
}

func parseYear(raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	if !digitsOnly.MatchString(trimmed) {
		return 0, response.InvalidInput("El campo 'ano' debe contener SOLO números (ej: 2023, 2024).")
	}
	year, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, response.InvalidInput("El campo 'ano' debe contener SOLO números (ej: 2023, 2024).")
	}
	return year, nil
}

func topicDetail(t *models.Topic, courseName string, solution *string) *types.TopicDetail {
	return &types.TopicDetail{
		ID:            t.ID,
		Titulo:        t.Title,
		Mensaje:       t.Body,
		FechaCreacion: t.CreatedAt,
		Status:        string(t.Status),
		Autor:         t.Author,
		Curso:         courseName,
		Solucion:      solution,
	}
}

func topicPage(topics []*models.Topic, page, size int, total int64) *types.Page[types.TopicListItem] {
	items := make([]types.TopicListItem, 0, len(topics))
	for _, t := range topics {
		items = append(items, types.TopicListItem{
			ID:            t.ID,
			Titulo:        t.Title,
			Mensaje:       t.Body,
			FechaCreacion: t.CreatedAt,
			Status:        string(t.Status),
			Autor:         t.Author,
			Curso:         t.Course.Name,
		})
	}
	return types.NewPage(items, page, size, total)
}

func replyDetail(r *models.Reply) *types.ReplyDetail {
	return &types.ReplyDetail{
		ID:            r.ID,
		Mensaje:       r.Message,
		FechaCreacion: r.CreatedAt,
		Autor:         r.Author,
		Solucion:      r.IsSolution,
		TopicoID:      r.TopicID,
	}
}
