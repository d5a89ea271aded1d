package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubSource struct {
	catalog []Exercise
	err     error
	loads   int
}

func (s *stubSource) Load(ctx context.Context) ([]Exercise, error) {
	s.loads++
	if s.err != nil {
		return nil, s.err
	}
	return s.catalog, nil
}

type refreshableSource struct {
	stubSource
	refreshes int
}

func (s *refreshableSource) Refresh(ctx context.Context) error {
	s.refreshes++
	return nil
}

func TestServiceRecommendUsesSource(t *testing.T) {
	source := &stubSource{catalog: []Exercise{
		{ID: "a", TagGoal: []string{"mobility"}, TagPattern: []string{"p1"}},
	}}
	service := NewService(source, Options{})

	results, err := service.Recommend(context.Background(), Profile{Goals: []string{"mobility"}}, Options{})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, 1, source.loads)
}

func TestServiceRecommendWrapsLoadFailure(t *testing.T) {
	sentinel := errors.New("upstream down")
	service := NewService(&stubSource{err: sentinel}, Options{})

	_, err := service.Recommend(context.Background(), Profile{}, Options{})
	require.ErrorIs(t, err, sentinel)
}

func TestServiceAppliesDeploymentDefaults(t *testing.T) {
	catalog := []Exercise{
		{ID: "p1", TagGoal: []string{"strength"}, TagPattern: []string{"press"}},
		{ID: "p2", TagGoal: []string{"strength"}, TagPattern: []string{"press"}},
		{ID: "p3", TagGoal: []string{"strength"}, TagPattern: []string{"press"}},
	}
	service := NewService(&stubSource{catalog: catalog}, Options{MaxPerPattern: 1})

	results, err := service.Recommend(context.Background(), Profile{Goals: []string{"strength"}}, Options{})
	require.NoError(t, err)
	require.Len(t, results, 1, "deployment default caps one per pattern")

	// Per-request options still win over deployment defaults.
	results, err = service.Recommend(context.Background(), Profile{Goals: []string{"strength"}}, Options{MaxPerPattern: 3})
	require.NoError(t, err)
	require.Len(t, results, 3)
}

func TestServiceListExercises(t *testing.T) {
	source := &stubSource{catalog: []Exercise{
		{ID: "a", Name: "Wall Slide"},
		{ID: "b", Name: "Dead Bug"},
		{ID: "c", Name: "Side-Lying Windmill"},
	}}
	service := NewService(source, Options{})

	results, err := service.ListExercises(context.Background(), "slide", 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, "a", results[0].ID)

	results, err = service.ListExercises(context.Background(), "", 2)
	require.NoError(t, err)
	require.Len(t, results, 2)
}

func TestServiceRefreshCatalog(t *testing.T) {
	plain := &stubSource{}
	service := NewService(plain, Options{})
	require.ErrorIs(t, service.RefreshCatalog(context.Background()), ErrRefreshUnsupported)

	refreshable := &refreshableSource{}
	service = NewService(refreshable, Options{})
	require.NoError(t, service.RefreshCatalog(context.Background()))
	require.Equal(t, 1, refreshable.refreshes)
}
