package server

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// scoreboardPage renders a static lane scoreboard for screens that cannot run
// the WebSocket client.
func scoreboardPage(s Snapshot) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<!DOCTYPE html><html><head><meta charset="utf-8"><meta http-equiv="refresh" content="2">`)
		fmt.Fprintf(&b, `<title>Lane %s</title></head><body>`, templ.EscapeString(s.LaneID))
		fmt.Fprintf(&b, `<h1>Lane %s</h1>`, templ.EscapeString(s.LaneID))
		if s.Bowler != "" {
			fmt.Fprintf(&b, `<p class="bowler">Bowler: %s</p>`, templ.EscapeString(s.Bowler))
		}
		if s.Game == nil {
			b.WriteString(`<p class="status">Waiting for the bowler to start</p></body></html>`)
			_, err := io.WriteString(w, b.String())
			return err
		}

		g := s.Game
		fmt.Fprintf(&b, `<p class="phase">%s</p>`, templ.EscapeString(g.Phase))
		b.WriteString(`<table>`)
		fmt.Fprintf(&b, `<tr><th>Score</th><td class="score">%d</td></tr>`, g.Score)
		turn := g.CurrentTurn
		if turn > g.MaxTurns {
			turn = g.MaxTurns
		}
		fmt.Fprintf(&b, `<tr><th>Turn</th><td class="turn">%d / %d</td></tr>`, turn, g.MaxTurns)
		fmt.Fprintf(&b, `<tr><th>Balls</th><td class="balls">%d</td></tr>`, g.RemainingBalls)
		fmt.Fprintf(&b, `<tr><th>Strikes</th><td class="strikes">%d</td></tr>`, g.Strikes)
		b.WriteString(`</table><ol class="pins">`)
		for _, p := range g.Pins {
			if p.Down {
				b.WriteString(`<li class="down">down</li>`)
			} else {
				b.WriteString(`<li class="up">up</li>`)
			}
		}
		b.WriteString(`</ol></body></html>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}
