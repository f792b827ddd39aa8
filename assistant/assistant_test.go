package assistant

import (
	"context"
	"errors"
	"sync"
	"testing"
	"wandervoice/agi"
	"wandervoice/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCompleter struct {
	mu       sync.Mutex
	calls    []agi.Request
	response string
	err      error
}

func (f *fakeCompleter) Complete(ctx context.Context, req agi.Request) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, req)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeCompleter) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func emptySearch(ctx context.Context, q string) models.SearchResults {
	return models.SearchResults{}
}

func newTestAssistant(search func(context.Context, string) models.SearchResults, c agi.Completer) *Assistant {
	return New(search, c, nil)
}

func TestGuardShortCircuitsOnRecoIntentWithNoResults(t *testing.T) {
	fc := &fakeCompleter{response: "should not be used"}
	a := newTestAssistant(emptySearch, fc)

	reply := a.HandleTurn(context.Background(), "s1", "recommend a hotel")

	assert.Equal(t, clarifyMessage, reply.Content)
	assert.Equal(t, 0, fc.callCount(), "completion endpoint must not be called")
	assert.Nil(t, reply.SearchResults)
}

func TestNonRecoMessageProceedsDespiteZeroResults(t *testing.T) {
	fc := &fakeCompleter{response: "สวัสดีครับ"}
	a := newTestAssistant(emptySearch, fc)

	reply := a.HandleTurn(context.Background(), "s1", "hello, how are you")

	assert.Equal(t, 1, fc.callCount())
	assert.Equal(t, "สวัสดีครับ", reply.Content)
}

func TestRecoMessageWithResultsCallsModelWithAllowedNames(t *testing.T) {
	results := models.SearchResults{
		Hotels: []models.Hotel{{HotelID: "h1", Name: "Sea View Hotel"}},
		Places: []models.Place{{PlaceID: "p1", Name: "Big Buddha"}},
	}
	fc := &fakeCompleter{response: "ลองดู Sea View Hotel ครับ"}
	a := newTestAssistant(func(ctx context.Context, q string) models.SearchResults {
		return results
	}, fc)

	reply := a.HandleTurn(context.Background(), "s1", "recommend a hotel")

	require.Equal(t, 1, fc.callCount())
	req := fc.calls[0]

	grounding := req.Messages[len(req.Messages)-1]
	assert.Equal(t, agi.RoleSystem, grounding.Role)
	assert.Contains(t, grounding.Content, "Sea View Hotel")
	assert.Contains(t, grounding.Content, "Big Buddha")

	require.NotNil(t, reply.SearchResults)
	assert.Equal(t, 2, reply.SearchResults.Total())
	assert.ElementsMatch(t, []string{"Sea View Hotel", "Big Buddha"}, AllowedNames(*reply.SearchResults))
}

func TestCompletionRequestIsBounded(t *testing.T) {
	fc := &fakeCompleter{response: "ok"}
	a := newTestAssistant(emptySearch, fc)

	a.HandleTurn(context.Background(), "s1", "hello")

	require.Equal(t, 1, fc.callCount())
	req := fc.calls[0]
	assert.Equal(t, int64(completionMaxTokens), req.MaxTokens)
	assert.Equal(t, completionTemperature, req.Temperature)
	assert.Equal(t, agi.DefaultModel, req.Model)
}

func TestCompletionFailureYieldsGenericMessage(t *testing.T) {
	fc := &fakeCompleter{err: errors.New("context deadline exceeded")}
	a := newTestAssistant(emptySearch, fc)

	reply := a.HandleTurn(context.Background(), "s1", "hello")

	assert.Equal(t, failureMessage, reply.Content)
	assert.NotContains(t, reply.Content, "deadline", "raw error must never reach the user")
}

func TestHistoryAppendsInStrictOrder(t *testing.T) {
	fc := &fakeCompleter{response: "reply"}
	a := newTestAssistant(emptySearch, fc)

	a.HandleTurn(context.Background(), "s1", "first")
	a.HandleTurn(context.Background(), "s1", "second")

	history := a.Sessions.Get("s1").History()
	require.Len(t, history, 4)
	assert.Equal(t, "first", history[0].Content)
	assert.Equal(t, agi.RoleAssistant, history[1].Role)
	assert.Equal(t, "second", history[2].Content)
	assert.Equal(t, agi.RoleAssistant, history[3].Role)
}

func TestHistoryIsolatedPerSession(t *testing.T) {
	fc := &fakeCompleter{response: "reply"}
	a := newTestAssistant(emptySearch, fc)

	a.HandleTurn(context.Background(), "s1", "hello")

	assert.Len(t, a.Sessions.Get("s1").History(), 2)
	assert.Empty(t, a.Sessions.Get("s2").History())
}

func TestPriorTurnsAreSentAsHistory(t *testing.T) {
	fc := &fakeCompleter{response: "reply"}
	a := newTestAssistant(emptySearch, fc)

	a.HandleTurn(context.Background(), "s1", "first")
	a.HandleTurn(context.Background(), "s1", "second")

	require.Equal(t, 2, fc.callCount())
	second := fc.calls[1]
	// system + 2 prior turns + new user message
	require.Len(t, second.Messages, 4)
	assert.Equal(t, "first", second.Messages[1].Content)
	assert.Equal(t, "reply", second.Messages[2].Content)
	assert.Equal(t, "second", second.Messages[3].Content)
}
