package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/fieldtris/field"
)

var ebitenKeys = map[ebiten.Key]field.Key{
	ebiten.KeyA: 'a', ebiten.KeyB: 'b', ebiten.KeyC: 'c', ebiten.KeyD: 'd',
	ebiten.KeyE: 'e', ebiten.KeyF: 'f', ebiten.KeyG: 'g', ebiten.KeyH: 'h',
	ebiten.KeyI: 'i', ebiten.KeyJ: 'j', ebiten.KeyK: 'k', ebiten.KeyL: 'l',
	ebiten.KeyM: 'm', ebiten.KeyN: 'n', ebiten.KeyO: 'o', ebiten.KeyP: 'p',
	ebiten.KeyQ: 'q', ebiten.KeyS: 's', ebiten.KeyT: 't', ebiten.KeyU: 'u',
	ebiten.KeyV: 'v', ebiten.KeyW: 'w', ebiten.KeyX: 'x', ebiten.KeyY: 'y',
	ebiten.KeyZ: 'z',

	ebiten.KeySpace:      field.KeySpace,
	ebiten.KeyArrowUp:    field.KeyUp,
	ebiten.KeyArrowDown:  field.KeyDown,
	ebiten.KeyArrowLeft:  field.KeyLeft,
	ebiten.KeyArrowRight: field.KeyRight,
}

// translateKey maps an Ebiten key to the engine's key space. R is left out
// because the host uses it to restart.
func translateKey(k ebiten.Key) (field.Key, bool) {
	key, ok := ebitenKeys[k]
	return key, ok
}
