// Package idgen hands out ids for records created without one.
package idgen

import (
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
)

// Generator returns a new, unique id on every call.
type Generator interface {
	Next() int64
}

func init() {
	// Ids travel to the UI as JSON numbers, so they must stay below 2^53:
	// 41 bits of milliseconds since 2024, 5 node bits, 7 sequence bits.
	snowflake.Epoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
	snowflake.NodeBits = 5
	snowflake.StepBits = 7
}

// MaxNode is the largest accepted node id.
const MaxNode = 1<<5 - 1

type Node struct {
	node *snowflake.Node
}

func NewNode(nodeID int64) (*Node, error) {
	if nodeID < 0 || nodeID > MaxNode {
		return nil, fmt.Errorf("node id %d out of range [0, %d]", nodeID, MaxNode)
	}
	n, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("failed to create id node: %w", err)
	}
	return &Node{node: n}, nil
}

func (n *Node) Next() int64 {
	return n.node.Generate().Int64()
}

// Sequence is a Generator counting up from a fixed start. Tests use it to
// get predictable ids.
type Sequence struct {
	next int64
}

func NewSequence(start int64) *Sequence {
	return &Sequence{next: start}
}

func (s *Sequence) Next() int64 {
	id := s.next
	s.next++
	return id
}
