package midi

import (
	"bytes"
	"io"
	"math"
	"os"
	"sort"

	"github.com/jsphweid/tjadex/model"
	"github.com/pkg/errors"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	Resolution = 960

	// General MIDI percussion lives on channel 10
	DrumChannel = 9

	velocity    = 100
	velocityBig = 127
	noteTicks   = Resolution / 8
)

var drumKeys = map[model.NoteKind]uint8{
	model.Don:      36,
	model.DonBig:   36,
	model.Kat:      37,
	model.KatBig:   37,
	model.Renda:    42,
	model.RendaBig: 42,
	model.Balloon:  42,
	model.End:      46,
}

func BeatToTicks(beat float64) uint32 {
	return uint32(math.Round(beat * Resolution))
}

// DemoOffset is the tick of the first note at or after the given time.
func DemoOffset(tl model.Timeline, seconds float64) uint64 {
	for _, n := range tl.Notes {
		if n.Time >= seconds {
			return uint64(BeatToTicks(n.Beat))
		}
	}
	return 0
}

type timedMessage struct {
	tick uint32
	off  bool
	msg  []byte
}

// note offs sort before note ons on the same tick
func sortByTick(msgs []timedMessage) {
	sort.SliceStable(msgs, func(i, j int) bool {
		if msgs[i].tick != msgs[j].tick {
			return msgs[i].tick < msgs[j].tick
		}
		return msgs[i].off && !msgs[j].off
	})
}

// addAll appends msgs, which must be in tick order, to the track.
func addAll(track *smf.Track, msgs []timedMessage) {
	var last uint32
	for _, m := range msgs {
		track.Add(m.tick-last, m.msg)
		last = m.tick
	}
}

// Build converts a timeline into an SMF with a tempo track and a drum track.
func Build(tl model.Timeline) (*smf.SMF, error) {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(Resolution)

	var conductor smf.Track
	conductor.Add(0, smf.MetaTrackSequenceName(tl.Course.String()))
	var tempos []timedMessage
	for _, e := range tl.Events {
		if e.Kind == model.EventBPM && e.Value > 0 {
			tempos = append(tempos, timedMessage{tick: BeatToTicks(e.Beat), msg: smf.MetaTempo(e.Value)})
		}
	}
	addAll(&conductor, tempos)
	conductor.Close(0)

	var drums smf.Track
	var notes []timedMessage
	for _, n := range tl.Notes {
		key := drumKeys[n.Kind]
		vel := uint8(velocity)
		if n.Kind.IsBig() || n.Kind == model.RendaBig {
			vel = velocityBig
		}
		tick := BeatToTicks(n.Beat)
		notes = append(notes,
			timedMessage{tick: tick, msg: gomidi.NoteOn(DrumChannel, key, vel)},
			timedMessage{tick: tick + noteTicks, off: true, msg: gomidi.NoteOff(DrumChannel, key)},
		)
	}
	sortByTick(notes)
	addAll(&drums, notes)
	drums.Close(0)

	if err := s.Add(conductor); err != nil {
		return nil, errors.Wrap(err, "adding conductor track")
	}
	if err := s.Add(drums); err != nil {
		return nil, errors.Wrap(err, "adding drum track")
	}
	return s, nil
}

func Export(w io.Writer, tl model.Timeline) error {
	s, err := Build(tl)
	if err != nil {
		return err
	}
	_, err = s.WriteTo(w)
	return errors.Wrap(err, "writing midi")
}

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return &blank, errors.Wrap(err, "Error reading midi file...")
	}

	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return &blank, errors.Wrap(err, "Error parsing midi file...")
	}

	return res, nil
}
