package serviceImp

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mycolab/pkg/apperr"
	"mycolab/pkg/httpx"
	"mycolab/pkg/library/importer"
	"mycolab/pkg/library/repositoryImp"
	"mycolab/pkg/library/service"
	"mycolab/pkg/testutil"
)

type stubFetcher struct {
	page *importer.Page
	err  error
}

func (f stubFetcher) Fetch(_ context.Context, url string) (*importer.Page, error) {
	if f.err != nil {
		return nil, f.err
	}
	p := *f.page
	p.URL = url
	return &p, nil
}

func newSvc(t *testing.T, f pageFetcher) *librarySvc {
	t.Helper()
	return NewLibraryService(repositoryImp.New(testutil.OpenDB(t)), f).(*librarySvc)
}

func TestSpecies(t *testing.T) {
	t.Run("should slug names uniquely", func(t *testing.T) {
		s := newSvc(t, nil)
		a, err := s.CreateSpecies(service.SpeciesInput{Name: "Pink Oyster", ScientificName: "Pleurotus djamor"})
		require.NoError(t, err)
		assert.Equal(t, "pink-oyster", a.Slug)
		b, err := s.CreateSpecies(service.SpeciesInput{Name: "pink oyster"})
		require.NoError(t, err)
		assert.Equal(t, "pink-oyster-2", b.Slug)

		up, err := s.UpdateSpecies(a.SpeciesID, service.SpeciesInput{Name: "Pink Oyster", Description: "toothed"})
		require.NoError(t, err)
		assert.Equal(t, "pink-oyster", up.Slug)
		assert.Equal(t, "toothed", up.Description)
	})

	t.Run("should search by scientific name", func(t *testing.T) {
		s := newSvc(t, nil)
		_, err := s.CreateSpecies(service.SpeciesInput{Name: "Oyster", ScientificName: "Pleurotus ostreatus"})
		require.NoError(t, err)
		_, err = s.CreateSpecies(service.SpeciesInput{Name: "Shiitake", ScientificName: "Lentinula edodes"})
		require.NoError(t, err)

		list, err := s.ListSpecies("pleurotus")
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "Oyster", list[0].Name)
	})

	t.Run("should refuse deleting a species with strains", func(t *testing.T) {
		s := newSvc(t, nil)
		sp, err := s.CreateSpecies(service.SpeciesInput{Name: "Oyster"})
		require.NoError(t, err)
		st, err := s.CreateStrain(service.StrainInput{SpeciesID: sp.SpeciesID, Name: "Blue Oyster"})
		require.NoError(t, err)

		assert.True(t, errors.Is(s.DeleteSpecies(sp.SpeciesID), apperr.ErrConflict))
		require.NoError(t, s.DeleteStrain(st.StrainID))
		assert.NoError(t, s.DeleteSpecies(sp.SpeciesID))
		assert.True(t, errors.Is(s.DeleteSpecies(sp.SpeciesID), apperr.ErrNotFound))
	})
}

func TestStrains(t *testing.T) {
	t.Run("should require an existing species", func(t *testing.T) {
		s := newSvc(t, nil)
		_, err := s.CreateStrain(service.StrainInput{SpeciesID: 42, Name: "Ghost"})
		assert.True(t, errors.Is(err, apperr.ErrNotFound))
	})

	t.Run("should invalidate the cache on update and delete", func(t *testing.T) {
		s := newSvc(t, nil)
		sp, err := s.CreateSpecies(service.SpeciesInput{Name: "Cubensis"})
		require.NoError(t, err)
		st, err := s.CreateStrain(service.StrainInput{SpeciesID: sp.SpeciesID, Name: "Blue Meanie", ColonizationDays: httpx.Ptr(18)})
		require.NoError(t, err)

		got, err := s.GetStrain(st.StrainID)
		require.NoError(t, err)
		assert.Equal(t, 18, *got.ColonizationDays)
		assert.True(t, s.strains.Contains(st.StrainID))

		_, err = s.UpdateStrain(st.StrainID, service.StrainInput{SpeciesID: sp.SpeciesID, Name: "Blue Meanie", ColonizationDays: httpx.Ptr(21)})
		require.NoError(t, err)
		assert.False(t, s.strains.Contains(st.StrainID))
		got, err = s.GetStrain(st.StrainID)
		require.NoError(t, err)
		assert.Equal(t, 21, *got.ColonizationDays)

		require.NoError(t, s.DeleteStrain(st.StrainID))
		_, err = s.GetStrain(st.StrainID)
		assert.True(t, errors.Is(err, apperr.ErrNotFound))
	})

	t.Run("should reject nonsense durations", func(t *testing.T) {
		s := newSvc(t, nil)
		_, err := s.CreateStrain(service.StrainInput{SpeciesID: 1, Name: "x", FruitingDays: httpx.Ptr(0)})
		assert.True(t, errors.Is(err, apperr.ErrValidation))
	})
}

func TestImportSpecies(t *testing.T) {
	page := &importer.Page{Title: "Hericium erinaceus", Text: "A toothed fungus."}

	t.Run("should create a species from the page title", func(t *testing.T) {
		s := newSvc(t, stubFetcher{page: page})
		sp, err := s.ImportSpecies(context.Background(), service.ImportInput{URL: "https://wiki.example.org/hericium"})
		require.NoError(t, err)
		assert.Equal(t, "Hericium erinaceus", sp.Name)
		assert.Equal(t, "hericium-erinaceus", sp.Slug)
		assert.Equal(t, "A toothed fungus.", sp.Description)
		assert.Equal(t, "https://wiki.example.org/hericium", sp.SourceURL)

		again, err := s.ImportSpecies(context.Background(), service.ImportInput{URL: "https://wiki.example.org/hericium-2"})
		require.NoError(t, err)
		assert.Equal(t, sp.SpeciesID, again.SpeciesID)
		assert.Equal(t, "https://wiki.example.org/hericium-2", again.SourceURL)
	})

	t.Run("should update the named species", func(t *testing.T) {
		s := newSvc(t, stubFetcher{page: page})
		sp, err := s.CreateSpecies(service.SpeciesInput{Name: "Lions Mane"})
		require.NoError(t, err)
		got, err := s.ImportSpecies(context.Background(), service.ImportInput{URL: "https://wiki.example.org/x", SpeciesID: &sp.SpeciesID})
		require.NoError(t, err)
		assert.Equal(t, "Lions Mane", got.Name)
		assert.Equal(t, "A toothed fungus.", got.Description)
	})

	t.Run("should cut long descriptions on a character boundary", func(t *testing.T) {
		long := &importer.Page{Title: "Pleurotus djamor", Text: "a" + strings.Repeat("é", 15000)}
		s := newSvc(t, stubFetcher{page: long})
		sp, err := s.ImportSpecies(context.Background(), service.ImportInput{URL: "https://wiki.example.org/pink"})
		require.NoError(t, err)
		assert.True(t, utf8.ValidString(sp.Description))
		assert.LessOrEqual(t, len(sp.Description), maxDescriptionLen)
		assert.Greater(t, len(sp.Description), maxDescriptionLen-2)
	})

	t.Run("should pass fetch errors through", func(t *testing.T) {
		s := newSvc(t, stubFetcher{err: apperr.ErrForbidden})
		_, err := s.ImportSpecies(context.Background(), service.ImportInput{URL: "https://evil.example.com/"})
		assert.True(t, errors.Is(err, apperr.ErrForbidden))
	})

	t.Run("should be unavailable without a fetcher", func(t *testing.T) {
		s := newSvc(t, nil)
		_, err := s.ImportSpecies(context.Background(), service.ImportInput{URL: "https://wiki.example.org/x"})
		assert.True(t, errors.Is(err, apperr.ErrUnavailable))
	})
}
