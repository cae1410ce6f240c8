package snowflake

import "github.com/bwmarrin/snowflake"

var node *snowflake.Node

func init() {
	node, _ = snowflake.NewNode(1)
}

// GenID genera un ID único para tópicos, respuestas y cursos.
func GenID() int64 {
	return node.Generate().Int64()
}
