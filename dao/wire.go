package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewCourse,
	NewTopic,
	NewReply,
	NewUser,
)
