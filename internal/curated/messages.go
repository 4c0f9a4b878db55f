package curated

// error message patterns, grouped by the subsystem that raises them (see
// spec.md §7 for the taxonomy these map onto).
const (
	// sh1 core
	IllegalInstruction     = "sh1: illegal instruction (%#04x) at pc %#06x"
	SlotIllegalInstruction = "sh1: illegal instruction in delay slot (%#04x) at pc %#06x"
	BusError               = "sh1: bus error at address %#08x"
	DMABusError            = "sh1: dmac channel %d: bus error at address %#08x"

	// memory / bus
	UnreadableAddress = "bus: unreadable address (%#08x)"
	UnwritableAddress = "bus: unwritable address (%#08x)"
	UnrecognisedWidth = "bus: unrecognised access width (%d)"

	// vdp1
	CommandListCorrupt = "vdp1: command list corrupt at %#06x: %v"
	UnknownCommandType = "vdp1: unknown command type (%#04x) at %#06x"
	JumpToZero         = "vdp1: jump to zero treated as end-of-frame safeguard"

	// vdp2
	RotationTableError = "vdp2: rotation parameter table error: %v"
	WindowLogicError   = "vdp2: window logic error: %v"

	// raster driver
	UnknownTimingMode = "raster: unknown timing mode (hres=%v vres=%v pal=%v)"

	// threaded dispatcher
	QueueOverflow  = "dispatch: event queue overflow (capacity %d)"
	QueueShutdown  = "dispatch: queue is shut down"
	BarrierTimeout = "dispatch: save-state barrier did not complete"

	// save state
	SaveStateMismatch  = "savestate: hash mismatch for %s"
	SaveStateRangeError = "savestate: %s out of range: %v"
	SaveStateCorrupt   = "savestate: corrupt record: %v"

	// configuration
	PrefsError   = "prefs: %v"
	PrefsNoFile  = "prefs: no file (%s)"
	PrefsInvalid = "prefs: not a valid configuration file (%s)"

	// database (save-state session ledger)
	DatabaseError       = "database: %v"
	DatabaseReadError   = "database: %v [line %d]"
	DatabaseKeyError    = "database: no such key (%v)"
	DatabaseFileMissing = "database: cannot open database (%v)"
)
