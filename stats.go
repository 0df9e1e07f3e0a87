package morse

// Stats counts what a Decoder has seen since it was created or last reset.
type Stats struct {
	BytesConsumed int64 // symbols fed, terminators included
	BytesProduced int64 // characters written to the sink
	Letters       int64 // terminators fed, emitted or not
	Unknown       int64 // letters that landed on an unassigned code
	Overflows     int64 // letters longer than MaxSymbols
}

// Add accumulates o into s.
func (s *Stats) Add(o Stats) {
	s.BytesConsumed += o.BytesConsumed
	s.BytesProduced += o.BytesProduced
	s.Letters += o.Letters
	s.Unknown += o.Unknown
	s.Overflows += o.Overflows
}
