package realtime

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedDispatchRoutesByUser(t *testing.T) {
	t.Parallel()

	feed := NewFeed(zerolog.Nop(), nil)

	aliceEvents, cancelAlice := feed.Subscribe("alice")
	defer cancelAlice()
	bobEvents, cancelBob := feed.Subscribe("bob")
	defer cancelBob()

	feed.dispatch(Event{Op: "INSERT", ReminderID: "r-1", UserID: "alice"})

	select {
	case event := <-aliceEvents:
		assert.Equal(t, "INSERT", event.Op)
		assert.Equal(t, "r-1", event.ReminderID)
	default:
		t.Fatal("alice did not receive her event")
	}

	select {
	case event := <-bobEvents:
		t.Fatalf("bob received a foreign event: %+v", event)
	default:
	}
}

func TestFeedUnsubscribeClosesChannel(t *testing.T) {
	t.Parallel()

	feed := NewFeed(zerolog.Nop(), nil)

	events, cancel := feed.Subscribe("alice")
	cancel()

	_, open := <-events
	require.False(t, open)

	// Dispatching after unsubscribe must not panic on a closed channel.
	feed.dispatch(Event{Op: "DELETE", ReminderID: "r-1", UserID: "alice"})

	// A second cancel is a no-op.
	cancel()
}

func TestFeedDropsEventsForSlowSubscriber(t *testing.T) {
	t.Parallel()

	feed := NewFeed(zerolog.Nop(), nil)

	events, cancel := feed.Subscribe("alice")
	defer cancel()

	for i := 0; i < cap(events)+10; i++ {
		feed.dispatch(Event{Op: "UPDATE", ReminderID: "r-1", UserID: "alice"})
	}

	assert.Len(t, events, cap(events))
}
