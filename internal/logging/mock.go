package logging

// MockLogger captures log entries for verification in tests.
type MockLogger struct {
	Entries []LogEntry
}

// LogEntry is a single captured log call.
type LogEntry struct {
	Level   string
	Message string
	Fields  []Field
	Error   error
}

func (m *MockLogger) record(level, msg string, fields []Field) {
	m.Entries = append(m.Entries, LogEntry{
		Level:   level,
		Message: msg,
		Fields:  fields,
	})
}

func (m *MockLogger) Debug(msg string, fields ...Field) { m.record("DEBUG", msg, fields) }
func (m *MockLogger) Info(msg string, fields ...Field)  { m.record("INFO", msg, fields) }
func (m *MockLogger) Warn(msg string, fields ...Field)  { m.record("WARN", msg, fields) }
func (m *MockLogger) Error(msg string, fields ...Field) { m.record("ERROR", msg, fields) }

// WithError attaches an error to subsequent entries. The mock shares the
// entry slice with the parent so tests can assert on one logger.
func (m *MockLogger) WithError(err error) Logger {
	return &mockChild{parent: m, err: err}
}

// WithField attaches a field to subsequent entries.
func (m *MockLogger) WithField(key string, value interface{}) Logger {
	f := Field{Key: key, Value: value}
	return &mockChild{parent: m, field: &f}
}

// HasEntry reports whether an entry with the given level and message was
// recorded.
func (m *MockLogger) HasEntry(level, msg string) bool {
	for _, e := range m.Entries {
		if e.Level == level && e.Message == msg {
			return true
		}
	}
	return false
}

type mockChild struct {
	parent *MockLogger
	err    error
	field  *Field
}

func (c *mockChild) record(level, msg string, fields []Field) {
	all := fields
	if c.field != nil {
		all = append([]Field{*c.field}, fields...)
	}
	c.parent.Entries = append(c.parent.Entries, LogEntry{
		Level:   level,
		Message: msg,
		Fields:  all,
		Error:   c.err,
	})
}

func (c *mockChild) Debug(msg string, fields ...Field) { c.record("DEBUG", msg, fields) }
func (c *mockChild) Info(msg string, fields ...Field)  { c.record("INFO", msg, fields) }
func (c *mockChild) Warn(msg string, fields ...Field)  { c.record("WARN", msg, fields) }
func (c *mockChild) Error(msg string, fields ...Field) { c.record("ERROR", msg, fields) }

func (c *mockChild) WithError(err error) Logger {
	return &mockChild{parent: c.parent, err: err, field: c.field}
}

func (c *mockChild) WithField(key string, value interface{}) Logger {
	f := Field{Key: key, Value: value}
	return &mockChild{parent: c.parent, err: c.err, field: &f}
}
