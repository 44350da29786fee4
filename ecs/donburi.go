package ecs

import (
	"github.com/phanxgames/blocky"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// MoveEventType carries one blocky.MoveEvent per move that reached a block,
// including refused smashes (Applied is false for those). Events queue in
// the world until a system calls ProcessEvents.
var MoveEventType = events.NewEventType[blocky.MoveEvent]()

// worldMoveSink forwards board moves into a single Donburi world.
type worldMoveSink struct {
	world donburi.World
}

// NewDonburiStore returns a blocky.EventStore for Board.SetEventStore. Each
// move the board reports, with its score before and after, is queued on
// MoveEventType in world.
func NewDonburiStore(world donburi.World) blocky.EventStore {
	return &worldMoveSink{world: world}
}

func (s *worldMoveSink) EmitMove(event blocky.MoveEvent) {
	MoveEventType.Publish(s.world, event)
}
