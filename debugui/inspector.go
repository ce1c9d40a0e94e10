package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/blockfall/session"
	"github.com/plus3/blockfall/tetris"
)

// Inspector shows the live game state and offers controls that go through
// the session's input queue.
type Inspector struct {
	session *session.Session
	cache   *ReflectionCache
}

func NewInspector(s *session.Session) *Inspector {
	return &Inspector{session: s, cache: globalReflectionCache}
}

func (in *Inspector) Render() {
	game := in.session.Game

	imgui.SetNextWindowPosV(imgui.NewVec2(440, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 520), imgui.CondOnce)

	if !imgui.BeginV("Game Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Score: %d", game.Score()))
	imgui.Text(fmt.Sprintf("Drop Interval: %s", game.DropInterval()))
	imgui.Text(fmt.Sprintf("Queued Inputs: %d", in.session.Input.Len()))

	if imgui.Button("Restart") {
		in.session.Input.Push(tetris.ActionRestart)
	}
	imgui.SameLine()
	if imgui.Button("Drop") {
		in.session.Input.Push(tetris.ActionSoftDrop)
	}
	imgui.SameLine()
	if imgui.Button("Rotate") {
		in.session.Input.Push(tetris.ActionRotate)
	}

	imgui.Separator()
	in.renderFields("Totals", game.Totals())

	current := game.Current()
	in.renderFields("Current Piece", struct {
		Shape string
		X, Y  int
	}{current.Color.String(), current.X, current.Y})

	if imgui.TreeNodeStr("Arena") {
		for _, line := range ArenaLines(game.Snapshot()) {
			imgui.Text(line)
		}
		imgui.TreePop()
	}

	imgui.End()
}

func (in *Inspector) renderFields(label string, v any) {
	if !imgui.TreeNodeStr(label) {
		return
	}
	for _, f := range in.cache.Describe(v) {
		imgui.BulletText(fmt.Sprintf("%s: %s", f.Name, f.Value))
	}
	imgui.TreePop()
}

// ArenaLines renders a snapshot as text, one line per row. Locked and
// falling cells show their shape letter, empty cells a dot.
func ArenaLines(snap tetris.Snapshot) []string {
	lines := make([]string, snap.Height)
	var b strings.Builder
	for y := range snap.Height {
		b.Reset()
		for x := range snap.Width {
			if id := snap.At(x, y); id != tetris.Empty {
				b.WriteString(id.String())
			} else {
				b.WriteByte('.')
			}
		}
		lines[y] = b.String()
	}
	return lines
}
