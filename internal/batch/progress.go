package batch

// Status is the progress state of one citation in a run.
type Status string

const (
	StatusChecking Status = "checking"
	StatusValid    Status = "valid"
	StatusInvalid  Status = "invalid"
)

// Event reports progress for the input at Index.
type Event struct {
	Index  int
	Status Status
}

// ProgressSink consumes progress events. Run calls OnEvent from worker
// goroutines.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

type nopSink struct{}

func (nopSink) OnEvent(Event) {}
