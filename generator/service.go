package generator

import (
	"sync"

	"scriptweaver/assembly"
	"scriptweaver/globals"
)

// Service composes the current assembly on demand and remembers the last
// generated artifact. A failed generation (empty assembly) leaves the
// previous result untouched.
type Service struct {
	mu       sync.RWMutex
	assembly *assembly.Manager
	globals  *globals.Manager
	last     Result
	has      bool
}

func NewService(am *assembly.Manager, gm *globals.Manager) *Service {
	return &Service{assembly: am, globals: gm}
}

// Generate composes the current state and stores the result on success.
func (s *Service) Generate() (Result, error) {
	res, err := Compose(s.assembly.List(), s.globals.Map())
	if err != nil {
		return Result{}, err
	}

	s.mu.Lock()
	s.last = res
	s.has = true
	s.mu.Unlock()
	return res, nil
}

// Preview composes the current state without storing it. Used by the live
// preview channel so mutations don't silently overwrite the generated
// artifact a user asked for.
func (s *Service) Preview() (Result, error) {
	return Compose(s.assembly.List(), s.globals.Map())
}

// Last returns the most recently generated result, if any.
func (s *Service) Last() (Result, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last, s.has
}
