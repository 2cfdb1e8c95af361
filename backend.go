package fbdev

// Backend is the capability set a recovery UI drives: Init once, draw into
// the returned Surface, Flip to publish it, Blank around power transitions,
// and Exit once at the end.
//
// Implementations are not safe for concurrent use.
type Backend interface {
	// Init opens the display and returns a zeroed Surface to draw into.
	Init() (*Surface, error)
	// Flip publishes the current Surface and returns the one to draw next.
	Flip() *Surface
	// Blank powers the display down when on is true and back up otherwise.
	Blank(on bool)
	// Exit releases what Init acquired.
	Exit()
}

var _ Backend = (*Dev)(nil)
