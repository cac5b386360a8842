package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"

	"github.com/verte-zerg/keytest/internal/model"
	"github.com/verte-zerg/keytest/internal/store"
)

type StoreSuite struct {
	suite.Suite
	store *store.Store
	base  time.Time
}

func (s *StoreSuite) SetupTest() {
	st, err := store.OpenMemory(zaptest.NewLogger(s.T()))
	s.Require().NoError(err)
	s.store = st
	s.base = time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC)
}

func (s *StoreSuite) TearDownTest() {
	s.Require().NoError(s.store.Close())
}

func (s *StoreSuite) insert(offset time.Duration, vocab string, duration, wpm int) model.TestResult {
	r, err := s.store.InsertResult(context.Background(), model.TestResult{
		FinishedAt: s.base.Add(offset),
		Duration:   duration,
		Vocab:      vocab,
		WPM:        wpm,
		Accuracy:   90,
	})
	s.Require().NoError(err)
	return r
}

func (s *StoreSuite) TestInsertAndList() {
	ctx := context.Background()
	in := model.TestResult{
		FinishedAt:    s.base,
		Duration:      60,
		Vocab:         "common",
		WPM:           42,
		Accuracy:      97,
		Errors:        1,
		WordsTyped:    30,
		CorrectChars:  210,
		TotalChars:    216,
		ElapsedMs:     45000,
		TimeRemaining: 15,
		EndedEarly:    true,
	}

	stored, err := s.store.InsertResult(ctx, in)
	s.Require().NoError(err)
	s.Assert().NotEmpty(stored.ID)

	got, err := s.store.ListResults(ctx, model.HistoryFilter{})
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	if diff := cmp.Diff(stored, got[0]); diff != "" {
		s.Failf("result mismatch", "(-want +got):\n%s", diff)
	}
}

func (s *StoreSuite) TestInsertKeepsGivenID() {
	r, err := s.store.InsertResult(context.Background(), model.TestResult{ID: "fixed", Vocab: "quotes"})
	s.Require().NoError(err)
	s.Assert().Equal("fixed", r.ID)
	s.Assert().False(r.FinishedAt.IsZero())
}

func (s *StoreSuite) TestListOrdersWithinOneSecond() {
	s.insert(5*time.Second, "whole", 15, 1)
	s.insert(5*time.Second+500*time.Millisecond, "half", 15, 2)
	s.insert(5*time.Second+120*time.Millisecond, "twelve", 15, 3)
	s.insert(5*time.Second+123*time.Millisecond, "three", 15, 4)

	ctx := context.Background()
	newest, err := s.store.ListResults(ctx, model.HistoryFilter{Limit: 1})
	s.Require().NoError(err)
	s.Require().Len(newest, 1)
	s.Assert().Equal("half", newest[0].Vocab)

	all, err := s.store.ListResults(ctx, model.HistoryFilter{})
	s.Require().NoError(err)
	vocabs := make([]string, len(all))
	for i, r := range all {
		vocabs[i] = r.Vocab
	}
	s.Assert().Equal([]string{"whole", "twelve", "three", "half"}, vocabs)
}

func (s *StoreSuite) TestListSameInstantKeepsInsertOrder() {
	for i := 0; i < 3; i++ {
		s.insert(0, "common", 15, i)
	}

	got, err := s.store.ListResults(context.Background(), model.HistoryFilter{Limit: 2})
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Assert().Equal([]int{1, 2}, []int{got[0].WPM, got[1].WPM})
}

func (s *StoreSuite) TestListOrdersOldestFirst() {
	s.insert(2*time.Minute, "common", 30, 30)
	s.insert(0, "common", 30, 10)
	s.insert(time.Minute, "common", 30, 20)

	got, err := s.store.ListResults(context.Background(), model.HistoryFilter{})
	s.Require().NoError(err)
	s.Require().Len(got, 3)
	s.Assert().Equal([]int{10, 20, 30}, []int{got[0].WPM, got[1].WPM, got[2].WPM})
}

func (s *StoreSuite) TestListFilters() {
	s.insert(0, "common", 30, 10)
	s.insert(time.Minute, "quotes", 30, 20)
	s.insert(2*time.Minute, "quotes", 60, 30)

	ctx := context.Background()
	quotes, err := s.store.ListResults(ctx, model.HistoryFilter{Vocab: "quotes"})
	s.Require().NoError(err)
	s.Assert().Len(quotes, 2)

	sixty, err := s.store.ListResults(ctx, model.HistoryFilter{Vocab: "quotes", Duration: 60})
	s.Require().NoError(err)
	s.Require().Len(sixty, 1)
	s.Assert().Equal(30, sixty[0].WPM)
}

func (s *StoreSuite) TestListLimitKeepsMostRecent() {
	for i := 0; i < 5; i++ {
		s.insert(time.Duration(i)*time.Minute, "common", 15, i)
	}

	got, err := s.store.ListResults(context.Background(), model.HistoryFilter{Limit: 2})
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Assert().Equal(3, got[0].WPM)
	s.Assert().Equal(4, got[1].WPM)
}

func (s *StoreSuite) TestCount() {
	n, err := s.store.Count(context.Background())
	s.Require().NoError(err)
	s.Assert().Zero(n)

	s.insert(0, "common", 15, 1)
	n, err = s.store.Count(context.Background())
	s.Require().NoError(err)
	s.Assert().Equal(1, n)
}

func (s *StoreSuite) TestEachStoreIsPrivate() {
	s.insert(0, "common", 15, 1)

	other, err := store.OpenMemory(nil)
	s.Require().NoError(err)
	defer func() { s.Require().NoError(other.Close()) }()

	n, err := other.Count(context.Background())
	s.Require().NoError(err)
	s.Assert().Zero(n)
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}
