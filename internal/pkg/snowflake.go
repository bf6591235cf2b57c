package pkg

import "github.com/bwmarrin/snowflake"

// IDGenerator 生成全局唯一、按时间可排序的字符串 id
type IDGenerator struct {
	node *snowflake.Node
}

func NewIDGenerator(nodeID int64) (*IDGenerator, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, err
	}
	return &IDGenerator{node: node}, nil
}

func (g *IDGenerator) Generate() string {
	return g.node.Generate().String()
}
