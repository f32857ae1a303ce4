package pending

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	id "warden/pkg/domain"
)

type EvidenceTrackerSuite struct {
	suite.Suite
	tracker *MemoryEvidenceTracker
	ctx     context.Context
}

func TestEvidenceTrackerSuite(t *testing.T) {
	suite.Run(t, new(EvidenceTrackerSuite))
}

func (s *EvidenceTrackerSuite) SetupTest() {
	s.tracker = NewMemoryEvidenceTracker()
	s.ctx = context.Background()
}

func (s *EvidenceTrackerSuite) TestConsumeReturnsExpectation() {
	s.Require().NoError(s.tracker.Expect(s.ctx, "user-1", 7))

	sid, ok, err := s.tracker.Consume(s.ctx, "user-1")
	s.NoError(err)
	s.True(ok)
	s.Equal(id.SanctionID(7), sid)
}

func (s *EvidenceTrackerSuite) TestConsumeIsAtMostOnce() {
	s.Require().NoError(s.tracker.Expect(s.ctx, "user-1", 7))

	_, ok, err := s.tracker.Consume(s.ctx, "user-1")
	s.NoError(err)
	s.True(ok)

	_, ok, err = s.tracker.Consume(s.ctx, "user-1")
	s.NoError(err)
	s.False(ok)
}

func (s *EvidenceTrackerSuite) TestConsumeWithoutExpectation() {
	_, ok, err := s.tracker.Consume(s.ctx, "user-1")
	s.NoError(err)
	s.False(ok)
}

func (s *EvidenceTrackerSuite) TestNewerExpectationReplacesOlder() {
	s.Require().NoError(s.tracker.Expect(s.ctx, "user-1", 7))
	s.Require().NoError(s.tracker.Expect(s.ctx, "user-1", 9))

	sid, ok, err := s.tracker.Consume(s.ctx, "user-1")
	s.NoError(err)
	s.True(ok)
	s.Equal(id.SanctionID(9), sid)
}

func (s *EvidenceTrackerSuite) TestExpectationsAreKeyedByActor() {
	s.Require().NoError(s.tracker.Expect(s.ctx, "user-1", 7))
	s.Require().NoError(s.tracker.Expect(s.ctx, "user-2", 8))

	sid, ok, _ := s.tracker.Consume(s.ctx, "user-1")
	s.True(ok)
	s.Equal(id.SanctionID(7), sid)

	sid, ok, _ = s.tracker.Consume(s.ctx, "user-2")
	s.True(ok)
	s.Equal(id.SanctionID(8), sid)
}

func (s *EvidenceTrackerSuite) TestConcurrentConsumeYieldsSingleWinner() {
	s.Require().NoError(s.tracker.Expect(s.ctx, "user-1", 7))

	const workers = 16
	var wg sync.WaitGroup
	wins := make(chan id.SanctionID, workers)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if sid, ok, err := s.tracker.Consume(s.ctx, "user-1"); err == nil && ok {
				wins <- sid
			}
		}()
	}
	wg.Wait()
	close(wins)

	var got []id.SanctionID
	for sid := range wins {
		got = append(got, sid)
	}
	s.Len(got, 1)
	s.Equal(id.SanctionID(7), got[0])
}

type DisputeTokensSuite struct {
	suite.Suite
	tokens *MemoryDisputeTokens
	ctx    context.Context
}

func TestDisputeTokensSuite(t *testing.T) {
	suite.Run(t, new(DisputeTokensSuite))
}

func (s *DisputeTokensSuite) SetupTest() {
	s.tokens = NewMemoryDisputeTokens()
	s.ctx = context.Background()
}

func (s *DisputeTokensSuite) TestOpenRegistersToken() {
	opened, err := s.tokens.Open(s.ctx, 3)
	s.NoError(err)
	s.True(opened)

	open, err := s.tokens.IsOpen(s.ctx, 3)
	s.NoError(err)
	s.True(open)
}

func (s *DisputeTokensSuite) TestSecondOpenIsRejected() {
	opened, _ := s.tokens.Open(s.ctx, 3)
	s.True(opened)

	opened, err := s.tokens.Open(s.ctx, 3)
	s.NoError(err)
	s.False(opened)
}

func (s *DisputeTokensSuite) TestCloseTakesTokenExactlyOnce() {
	_, _ = s.tokens.Open(s.ctx, 3)

	taken, err := s.tokens.Close(s.ctx, 3)
	s.NoError(err)
	s.True(taken)

	taken, err = s.tokens.Close(s.ctx, 3)
	s.NoError(err)
	s.False(taken)

	open, _ := s.tokens.IsOpen(s.ctx, 3)
	s.False(open)
}

func (s *DisputeTokensSuite) TestReopenAfterClose() {
	_, _ = s.tokens.Open(s.ctx, 3)
	_, _ = s.tokens.Close(s.ctx, 3)

	opened, err := s.tokens.Open(s.ctx, 3)
	s.NoError(err)
	s.True(opened)
}

func TestToken(t *testing.T) {
	if got := Token(42); got != "redress_42" {
		t.Fatalf("Token(42) = %q, want %q", got, "redress_42")
	}
}
