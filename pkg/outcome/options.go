package outcome

import "maps"

// Option populates an outcome during Create. Options are how factory code
// attaches messages, a status code and metadata before the outcome is handed
// out; the status code cannot be changed afterwards.
type Option func(*settings)

type settings struct {
	messages   []string
	statusCode *int
	keys       map[string]any
}

// WithMessages appends messages in order.
func WithMessages(msgs ...string) Option {
	return func(s *settings) { s.messages = append(s.messages, msgs...) }
}

// WithStatusCode sets the status code. Any int is accepted.
func WithStatusCode(code int) Option {
	return func(s *settings) { s.statusCode = &code }
}

// WithKey sets one metadata entry, replacing an earlier value for key.
func WithKey(key string, value any) Option {
	return func(s *settings) {
		if s.keys == nil {
			s.keys = make(map[string]any)
		}
		s.keys[key] = value
	}
}

// WithKeys copies every entry of keys into the metadata.
func WithKeys(keys map[string]any) Option {
	return func(s *settings) {
		if s.keys == nil {
			s.keys = make(map[string]any, len(keys))
		}
		maps.Copy(s.keys, keys)
	}
}
