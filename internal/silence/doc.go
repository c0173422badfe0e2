// Package silence detects silent and non-silent regions in decoded audio
// and trims trailing silence from beep buffers.
//
// Positions are whole milliseconds. A region is silent when the RMS
// amplitude of every MinSilenceLen window in it is at or below the
// Threshold, expressed in dBFS where 0 is full scale.
package silence
