package lifecycle

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowpro/tnc-gateway/gen/go/tncpb"
	"github.com/flowpro/tnc-gateway/infra/bus"
)

func discardTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestCompileSelectorRegex(t *testing.T) {
	name := "/^AGV agent.*$/"
	sel, err := compileSelector(&tncpb.AgentSelector{IdentityName: &name})
	require.NoError(t, err)
	assert.True(t, sel.matches("1", "AGV agent 1"))
	assert.True(t, sel.matches("2", "AGV agent 2"))
	assert.False(t, sel.matches("3", "FM agent"))
}

func TestCompileSelectorInvalidRegexFailsFast(t *testing.T) {
	name := "/(unterminated/"
	_, err := compileSelector(&tncpb.AgentSelector{IdentityName: &name})
	assert.Error(t, err)
}

func TestCompileSelectorExactName(t *testing.T) {
	name := "FM agent"
	sel, err := compileSelector(&tncpb.AgentSelector{IdentityName: &name})
	require.NoError(t, err)
	assert.True(t, sel.matches("1", "FM agent"))
	assert.False(t, sel.matches("1", "AGV agent 1"))
}

func TestCompileSelectorNilMatchesEverything(t *testing.T) {
	sel, err := compileSelector(nil)
	require.NoError(t, err)
	assert.True(t, sel.matches("anything", "whatever"))
}

// TestTrackAgentsSnapshotThenLive exercises scenario: three agents are
// already present (FM agent, AGV agent 1, AGV agent 2), then a fourth
// AGV agent joins live. A TrackAgents call with a regex selector for
// "AGV agent" names must see the two already-present matches as an
// immediate snapshot, then the live join as a third event.
func TestTrackAgentsSnapshotThenLive(t *testing.T) {
	client := bus.New(bus.Options{Namespace: "tnc", Identity: bus.Identity{ID: "self", Name: "Self"}}, discardTestLogger())
	tr := New(client)
	tr.Start()
	defer tr.Stop()

	publishPresence(t, client, "fm-1", "FM agent", "JOIN")
	publishPresence(t, client, "agv-1", "AGV agent 1", "JOIN")
	publishPresence(t, client, "agv-2", "AGV agent 2", "JOIN")
	time.Sleep(20 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	name := "/^AGV agent.*$/"
	events := make(chan *tncpb.AgentLifecycleEvent, 8)
	done := make(chan error, 1)
	go func() {
		done <- tr.TrackAgents(ctx, &tncpb.AgentSelector{IdentityName: &name}, func(ev *tncpb.AgentLifecycleEvent) error {
			events <- ev
			return nil
		})
	}()

	first := <-events
	second := <-events
	assert.ElementsMatch(t, []string{"agv-1", "agv-2"}, []string{first.IdentityId, second.IdentityId})

	publishPresence(t, client, "agv-3", "AGV agent 3", "JOIN")
	third := <-events
	assert.Equal(t, "agv-3", third.IdentityId)
	assert.Equal(t, tncpb.AgentLifecycleKind_JOIN, third.Kind)

	cancel()
	<-done
}

func publishPresence(t *testing.T, client *bus.Client, id, name, kind string) {
	t.Helper()
	body, err := json.Marshal(bus.PresenceEnvelope{Kind: kind, Name: name})
	require.NoError(t, err)
	client.DeliverForTest(client.PresenceTopic(id), body)
}
