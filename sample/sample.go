package sample

import "gitlab.com/gomidi/midi/v2/smf"

func isEndOfTrack(msg smf.Message) bool {
	return len(msg) >= 2 && msg[0] == 0xFF && msg[1] == 0x2F
}

// Create cuts a preview out of mf starting at ticksOffset. Meta events before
// the offset are kept at its start; at most maxNotes notes are played.
func Create(mf *smf.SMF, ticksOffset uint64, maxNotes int) *smf.SMF {
	var res smf.SMF
	res.TimeFormat = mf.TimeFormat

	for _, track := range mf.Tracks {
		var newTrack smf.Track
		var absTicks, lastTicks uint64
		var numNoteOn int
		pending := make(map[uint8]bool)

	TrackEventLoop:
		for _, evt := range track {
			absTicks += uint64(evt.Delta)

			var pos uint64
			if absTicks > ticksOffset {
				pos = absTicks - ticksOffset
			}

			var ch, key, vel uint8
			switch {
			case isEndOfTrack(evt.Message):
				continue
			case evt.Message.GetNoteOn(&ch, &key, &vel):
				if absTicks < ticksOffset {
					continue
				}
				if numNoteOn >= maxNotes {
					if len(pending) == 0 {
						break TrackEventLoop
					}
					continue
				}
				numNoteOn += 1
				pending[key] = true
			case evt.Message.GetNoteOff(&ch, &key, &vel):
				if !pending[key] {
					continue
				}
				delete(pending, key)
			default:
				if absTicks >= ticksOffset && numNoteOn >= maxNotes {
					continue
				}
			}

			newTrack.Add(uint32(pos-lastTicks), evt.Message)
			lastTicks = pos
			if numNoteOn >= maxNotes && len(pending) == 0 {
				break
			}
		}

		newTrack.Close(0)
		res.Tracks = append(res.Tracks, newTrack)
	}

	return &res
}
