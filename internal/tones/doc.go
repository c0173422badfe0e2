// Package tones exposes one function per stock alert sound.
//
// Each sound X gets X, which follows the player's configured trimming,
// and XTrimmed, which always removes trailing silence first. The bindings
// in tones_gen.go are generated by mactone-gen.
package tones

//go:generate go run ../../cmd/mactone-gen --names Basso,Blow,Bottle,Frog,Funk,Glass,Hero,Morse,Ping,Pop,Purr,Sosumi,Submarine,Tink -o tones_gen.go

import "context"

// Player plays a sound by name. *tone.Service satisfies it.
type Player interface {
	Tone(ctx context.Context, name string) error
	ToneTrimmed(ctx context.Context, name string) error
}
