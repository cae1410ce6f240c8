package service

import (
	"context"

	"forohub/dao"
	"forohub/models"
	"forohub/pkg/response"
	"forohub/types"
)

var _ IReplyService = (*ReplyService)(nil)

type IReplyService interface {
	ListByTopic(ctx context.Context, topicID int64) ([]*types.ReplyDetail, error)
	ListSolutions(ctx context.Context, topicID int64) ([]*types.ReplyDetail, error)
}

// ReplyService consultas sobre el libro de respuestas de un tópico.
type ReplyService struct {
	TopicDAO *dao.Topic
	ReplyDAO *dao.Reply
}

func (s *ReplyService) ListByTopic(ctx context.Context, topicID int64) ([]*types.ReplyDetail, error) {
	if err := s.requireTopic(ctx, topicID); err != nil {
		return nil, err
	}
	replies, err := s.ReplyDAO.ListByTopic(ctx, topicID)
	if err != nil {
		return nil, err
	}
	return replyDetails(replies), nil
}

// ListSolutions respuestas marcadas como solución. Debería haber 0 o 1; se
// devuelve la lista completa para no ocultar una violación de la regla.
func (s *ReplyService) ListSolutions(ctx context.Context, topicID int64) ([]*types.ReplyDetail, error) {
	if err := s.requireTopic(ctx, topicID); err != nil {
		return nil, err
	}
	replies, err := s.ReplyDAO.ListSolutionsByTopic(ctx, topicID)
	if err != nil {
		return nil, err
	}
	return replyDetails(replies), nil
}

func (s *ReplyService) requireTopic(ctx context.Context, topicID int64) error {
	if topicID <= 0 {
		return response.InvalidInput("El ID del tópico es obligatorio y debe ser válido.")
	}
	topic, err := s.TopicDAO.GetByID(ctx, topicID, false)
	if err != nil {
		return err
	}
	if topic == nil {
		return response.NotFound("Tópico no encontrado.")
	}
	return nil
}

func replyDetails(replies []*models.Reply) []*types.ReplyDetail {
	result := make([]*types.ReplyDetail, 0, len(replies))
	for _, r := range replies {
		result = append(result, replyDetail(r))
	}
	return result
}
