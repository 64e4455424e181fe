package ui

import (
	"fmt"

	"github.com/Hunterosmun/conways-game/internal/core"
)

// Status captures what the hosts show next to the board.
func Status(e core.Engine) core.ParameterSnapshot {
	rows, cols := e.Dimensions()
	state := "stopped"
	if e.IsRunning() {
		state = "running"
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				core.IntParam("rows", "Rows", rows),
				core.IntParam("cols", "Cols", cols),
				core.StringParam("topology", "Edges", e.Topology().String()),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				core.StringParam("state", "State", state),
				core.Uint64Param("generation", "Generation", e.Generation()),
				core.IntParam("live", "Live", e.LiveCount()),
			},
		},
	}}
}

// StatusLine renders the snapshot on one line, e.g.
// "30x20 bounded | stopped | gen 0 | live 0".
func StatusLine(s core.ParameterSnapshot) string {
	get := func(key string) string {
		p, ok := s.Lookup(key)
		if !ok {
			return "--"
		}
		return p.Value
	}
	return fmt.Sprintf("%sx%s %s | %s | gen %s | live %s",
		get("rows"), get("cols"), get("topology"), get("state"), get("generation"), get("live"))
}

// KeyHelp lists the GUI key bindings.
const KeyHelp = "space run/stop  n step  1/2/3 +5/+10/+20  r random  c clear  t edges  arrows size  d default"
