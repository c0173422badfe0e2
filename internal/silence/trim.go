package silence

import (
	"github.com/gopxl/beep/v2"
)

// Trim drops trailing silence from buf.
//
// The result is the prefix of buf ending at the end of its last
// non-silent interval. Leading silence is kept. When there is no
// non-silent interval, or the last one already reaches the end, buf
// itself is returned. buf is never modified.
func Trim(buf *beep.Buffer, opts Options) *beep.Buffer {
	if buf == nil {
		return nil
	}

	idx := newEnergyIndex(buf)
	spans, total := detectNonsilent(idx, opts)
	if len(spans) == 0 {
		return buf
	}

	end := spans[len(spans)-1].end
	if end >= total {
		return buf
	}

	frames := idx.frameAt(end)
	if frames >= buf.Len() {
		return buf
	}

	out := beep.NewBuffer(buf.Format())
	out.Append(buf.Streamer(0, frames))
	return out
}
