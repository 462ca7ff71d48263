package idgen

import (
	"log"

	"github.com/bwmarrin/snowflake"
)

var node *snowflake.Node

// Init 初始化 snowflake 节点，用于审计日志等行内序号
func Init(nodeID int64) {
	n, err := snowflake.NewNode(nodeID)
	if err != nil {
		log.Fatalf("snowflake init failed: %v", err)
	}
	node = n
}

// Next 生成一个 snowflake ID
func Next() uint64 {
	if node == nil {
		Init(1)
	}
	return uint64(node.Generate().Int64())
}
