package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewTopicRules,

	wire.Struct(new(TopicService), "*"),
	wire.Bind(new(ITopicService), new(*TopicService)),

	wire.Struct(new(CourseService), "*"),
	wire.Bind(new(ICourseService), new(*CourseService)),

	wire.Struct(new(ReplyService), "*"),
	wire.Bind(new(IReplyService), new(*ReplyService)),

	wire.Struct(new(AuthService), "*"),
	wire.Bind(new(IAuthService), new(*AuthService)),
)
