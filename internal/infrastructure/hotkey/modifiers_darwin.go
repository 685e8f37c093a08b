//go:build darwin && cgo

package hotkey

import "golang.design/x/hotkey"

var modifierMap = map[string]hotkey.Modifier{
	"ctrl":   hotkey.ModCtrl,
	"shift":  hotkey.ModShift,
	"alt":    hotkey.ModOption,
	"option": hotkey.ModOption,
	"cmd":    hotkey.ModCmd,
	"super":  hotkey.ModCmd,
}
