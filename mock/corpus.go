package mock

import "github.com/eranif/lexilla"

// Compile-time interface verification.
var (
	_ lexilla.CaseLoader = (*CaseLoader)(nil)
	_ lexilla.CaseSaver  = (*CaseSaver)(nil)
)

// CaseLoader is a mock implementation of lexilla.CaseLoader.
type CaseLoader struct {
	LoadFn func(path string) ([]lexilla.Case, error)
}

func (l *CaseLoader) Load(path string) ([]lexilla.Case, error) {
	return l.LoadFn(path)
}

// CaseSaver is a mock implementation of lexilla.CaseSaver.
type CaseSaver struct {
	SaveFn func(path string, cases []lexilla.Case) error
}

func (s *CaseSaver) Save(path string, cases []lexilla.Case) error {
	return s.SaveFn(path, cases)
}
