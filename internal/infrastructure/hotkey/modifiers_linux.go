//go:build linux && cgo && x11hotkey

package hotkey

import "golang.design/x/hotkey"

// X11 puts Alt on Mod1 and Super on Mod4.
var modifierMap = map[string]hotkey.Modifier{
	"ctrl":   hotkey.ModCtrl,
	"shift":  hotkey.ModShift,
	"alt":    hotkey.Mod1,
	"option": hotkey.Mod1,
	"cmd":    hotkey.Mod4,
	"super":  hotkey.Mod4,
}
