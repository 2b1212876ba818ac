// SPDX-License-Identifier: GPL-3.0-or-later

package scanner

// Option configures an ArpScanner
type Option = func(s *ArpScanner)

// WithAttempts overrides the per-host receive budget
func WithAttempts(n int) Option {
	return func(s *ArpScanner) {
		if n > 0 {
			s.attempts = n
		}
	}
}

// WithRequestNotifications registers a callback invoked as each probe
// is sent; used to drive progress output
func WithRequestNotifications(cb func(r *Request)) Option {
	return func(s *ArpScanner) {
		s.notifier = cb
	}
}
