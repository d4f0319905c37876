package common

import (
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	idNode *snowflake.Node
	idOnce sync.Once
)

// UUIDint64 returns a snowflake-derived int64 identifier. Used for journal
// rows where a database sequence is not wanted.
func UUIDint64() int64 {
	idOnce.Do(func() {
		node, err := snowflake.NewNode(1)
		if err != nil {
			panic(err)
		}
		idNode = node
	})
	return idNode.Generate().Int64()
}
