// Package ecs connects a blocky Board to a [Donburi] ECS world.
//
// Attach the store to a board and every rotate, reflect or smash that hits a
// block is queued as a [MoveEventType] event carrying the move, whether it
// changed the board, the score before and after, and the move count:
//
//	board.SetEventStore(ecs.NewDonburiStore(world))
//	ecs.MoveEventType.Subscribe(world, func(w donburi.World, e blocky.MoveEvent) {
//		// e.g. update a score component or trigger an effect
//	})
//	// each tick
//	ecs.MoveEventType.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
