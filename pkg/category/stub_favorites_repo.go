package category

// StubFavoritesRepo keeps favorites in memory and counts saves, for tests.
type StubFavoritesRepo struct {
	Stored    []string
	SaveCalls int
	SaveErr   error
}

func NewStubFavoritesRepo() *StubFavoritesRepo {
	return &StubFavoritesRepo{Stored: []string{}}
}

func (r *StubFavoritesRepo) Load() []string {
	result := make([]string, len(r.Stored))
	copy(result, r.Stored)
	return result
}

func (r *StubFavoritesRepo) Save(ids []string) error {
	r.SaveCalls++
	if r.SaveErr != nil {
		return r.SaveErr
	}
	r.Stored = make([]string, len(ids))
	copy(r.Stored, ids)
	return nil
}
