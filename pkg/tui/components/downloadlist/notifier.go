package downloadlist

// Notifier shows a message to the user.
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(message string)

// Notify implements Notifier.
func (f NotifierFunc) Notify(message string) { f(message) }

// Recorder is a Notifier that keeps every message, for tests and headless use.
type Recorder struct {
	Messages []string
}

// Notify implements Notifier.
func (r *Recorder) Notify(message string) {
	r.Messages = append(r.Messages, message)
}

// Last returns the most recent message.
func (r *Recorder) Last() string {
	if len(r.Messages) == 0 {
		return ""
	}
	return r.Messages[len(r.Messages)-1]
}
