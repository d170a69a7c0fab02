package window

import rl "github.com/gen2brain/raylib-go/raylib"

type binding struct {
	keys   []int32
	dx, dy int
}

var bindings = []binding{
	{keys: []int32{rl.KeyUp, rl.KeyW}, dy: -1},
	{keys: []int32{rl.KeyDown, rl.KeyS}, dy: 1},
	{keys: []int32{rl.KeyLeft, rl.KeyA}, dx: -1},
	{keys: []int32{rl.KeyRight, rl.KeyD}, dx: 1},
}

// keyActive reports a fresh press or an OS key repeat.
func keyActive(key int32) bool {
	return rl.IsKeyPressed(key) || rl.IsKeyPressedRepeat(key)
}

// direction sums the cursor steps of every active binding. Opposite keys
// cancel out.
func direction(active func(int32) bool) (dx, dy int) {
	for _, b := range bindings {
		for _, k := range b.keys {
			if active(k) {
				dx += b.dx
				dy += b.dy
				break
			}
		}
	}
	return dx, dy
}
