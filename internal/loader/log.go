package loader

// Outcome is the terminal result of ingesting one recipe record.
type Outcome int

const (
	// OutcomeStoredClean: every ingredient line resolved, recipe stored.
	OutcomeStoredClean Outcome = iota
	// OutcomeStoredWithUnknowns: recipe stored carrying backlog entries.
	OutcomeStoredWithUnknowns
	// OutcomeRejectedDuplicate: title or url collision. Logged but not
	// counted; the record is neither new data nor a parsing failure.
	OutcomeRejectedDuplicate
	// OutcomeError: malformed record (fewer than title+url fields).
	OutcomeError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeStoredClean:
		return "stored-clean"
	case OutcomeStoredWithUnknowns:
		return "stored-with-unknowns"
	case OutcomeRejectedDuplicate:
		return "rejected-duplicate"
	case OutcomeError:
		return "error"
	default:
		return "unknown"
	}
}

// Counts is a point-in-time read of the ingestion log.
type Counts struct {
	Successes    int // clean recipes stored
	WithUnknowns int // recipes stored carrying unresolved fragments
	Errors       int // malformed input records
}

// IngestLog accumulates ingestion outcomes. Counters only ever grow;
// duplicate rejections are intentionally excluded from all three.
type IngestLog struct {
	counts Counts
}

// Record adds one outcome to the log.
func (l *IngestLog) Record(o Outcome) {
	switch o {
	case OutcomeStoredClean:
		l.counts.Successes++
	case OutcomeStoredWithUnknowns:
		l.counts.WithUnknowns++
	case OutcomeError:
		l.counts.Errors++
	}
}

// Counts returns the counters as of call time.
func (l *IngestLog) Counts() Counts {
	return l.counts
}
