package idgen

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/bwmarrin/snowflake"
)

// Generator produces unique booking references.
type Generator interface {
	BookingRef() string
}

// SnowflakeGenerator implements Generator using Twitter Snowflake IDs,
// rendered in base36 so references stay short enough for ticketing systems.
type SnowflakeGenerator struct {
	node *snowflake.Node
	mu   sync.Mutex
}

// NewSnowflakeGenerator initializes a new reference generator.
// nodeID must be unique per server instance (0-1023) to prevent collisions.
func NewSnowflakeGenerator(nodeID int64) (*SnowflakeGenerator, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("failed to create snowflake node: %w", err)
	}

	return &SnowflakeGenerator{node: node}, nil
}

// BookingRef returns a new unique reference, e.g. "SKD-1N4G2XQZB".
func (g *SnowflakeGenerator) BookingRef() string {
	g.mu.Lock()
	id := g.node.Generate().Int64()
	g.mu.Unlock()

	return "SKD-" + strings.ToUpper(strconv.FormatInt(id, 36))
}
