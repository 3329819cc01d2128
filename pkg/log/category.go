package log

// Category classifies a log line, controlling its emoji prefix and the
// severity submitted to the platform sink.
type Category int

const (
	CategoryDefault Category = iota
	CategoryInfo
	CategoryDebug
	CategoryFault
	CategoryFailure
)

// Severity is the level tag handed to the platform log facility,
// mirroring its own level set rather than the Category enumeration.
type Severity int

const (
	SeverityDefault Severity = iota
	SeverityFault
	SeverityError
)

// categoryTraits is the read-only lookup table behind the Category
// accessors. CategoryDefault, CategoryInfo and CategoryDebug all map to
// the facility's default severity.
var categoryTraits = [...]struct {
	name     string
	emoji    string
	severity Severity
}{
	CategoryDefault: {"default", "🔹", SeverityDefault},
	CategoryInfo:    {"info", "ℹ️", SeverityDefault},
	CategoryDebug:   {"debug", "🐞", SeverityDefault},
	CategoryFault:   {"fault", "💥", SeverityFault},
	CategoryFailure: {"failure", "❌", SeverityError},
}

// clamp maps out-of-range values to CategoryDefault so the accessors
// stay total.
func (c Category) clamp() Category {
	if c < CategoryDefault || c > CategoryFailure {
		return CategoryDefault
	}
	return c
}

// Emoji returns the decorative prefix for the category.
func (c Category) Emoji() string {
	return categoryTraits[c.clamp()].emoji
}

// Severity returns the platform severity derived from the category.
func (c Category) Severity() Severity {
	return categoryTraits[c.clamp()].severity
}

func (c Category) String() string {
	return categoryTraits[c.clamp()].name
}

func (s Severity) String() string {
	switch s {
	case SeverityFault:
		return "fault"
	case SeverityError:
		return "error"
	default:
		return "default"
	}
}
