package docspell

import "fmt"

// Diagnostics accumulates non-fatal problems grouped by task, preserving
// the order in which tasks first reported something. Nothing here aborts a
// run; everything is surfaced together at the end.
type Diagnostics struct {
	order    []string
	messages map[string][]string
}

// NewDiagnostics returns an empty accumulator.
func NewDiagnostics() *Diagnostics {
	return &Diagnostics{messages: make(map[string][]string)}
}

// Add records a message under task.
func (d *Diagnostics) Add(task, message string) {
	if _, ok := d.messages[task]; !ok {
		d.order = append(d.order, task)
	}
	d.messages[task] = append(d.messages[task], message)
}

// Addf records a formatted message under task.
func (d *Diagnostics) Addf(task, format string, args ...any) {
	d.Add(task, fmt.Sprintf(format, args...))
}

// Empty reports whether nothing was recorded.
func (d *Diagnostics) Empty() bool {
	return len(d.order) == 0
}

// Tasks returns the tasks that recorded messages, in first-report order.
func (d *Diagnostics) Tasks() []string {
	return d.order
}

// Messages returns the messages recorded under task, in report order.
func (d *Diagnostics) Messages(task string) []string {
	return d.messages[task]
}
