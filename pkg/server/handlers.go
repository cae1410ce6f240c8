package server

import (
	"forohub/handler"
)

type Handlers struct {
	Auth   *handler.AuthHandler
	Course *handler.CourseHandler
	Topic  *handler.TopicHandler
	Reply  *handler.ReplyHandler
}
