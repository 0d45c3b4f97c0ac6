// Package pathfinding is a grid pathfinding engine with timed playback.
//
// What is inside?
//
//	gridgraph/     the board: cell states, 4/8-connected neighbors, text layouts
//	pathfind/      Dijkstra and A* returning an animation trace and a path
//	playback/      a pause/resume/cancel scheduler that replays a result
//	orchestrator/  settings, board edits and the play lifecycle
//	config/        YAML + GRIDPATH_* environment configuration
//	cmd/gridpath/  terminal front end
//
// Data flow:
//
//	edits ─▶ orchestrator ─▶ pathfind.Search(snapshot) ─▶ (trace, path)
//	                                                     │
//	board ◀── onStep / onFinished ◀── playback.Scheduler ◀┘
//
// Quick start:
//
//	go run ./cmd/gridpath --rows 10 --columns 20 play
//	go run ./cmd/gridpath -a astar --config board.yaml solve
package pathfinding
