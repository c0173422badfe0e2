// Package audio decodes sound files into beep buffers, encodes them back
// to WAV and plays them through an external command or the beep speaker.
package audio
