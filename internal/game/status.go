package game

// errorStatus holds the error shown in the status line.
type errorStatus struct {
	err error
}

// report shows err and returns true when it differs from the error already
// shown, so repeated failures are logged once.
func (s *errorStatus) report(err error) bool {
	if err == nil {
		return false
	}
	if s.err != nil && s.err.Error() == err.Error() {
		return false
	}
	s.err = err
	return true
}

func (s *errorStatus) clear() { s.err = nil }

func (s *errorStatus) String() string {
	if s.err == nil {
		return ""
	}
	return " | Error: " + s.err.Error()
}
