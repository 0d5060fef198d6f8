package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propertypal/pms-backend/models"
)

func TestAppendAndList(t *testing.T) {
	sink := NewSink()

	first := sink.Append(Input{Title: "New Lead Created", Message: "John Smith added", Severity: models.SeveritySuccess})
	second := sink.Append(Input{Title: "Lead Status Changed", Message: "John Smith is now in progress", Severity: models.SeverityInfo, LeadID: "42"})

	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.False(t, first.Read)

	events := sink.List()
	require.Len(t, events, 2)
	assert.Equal(t, "New Lead Created", events[0].Title)
	assert.Equal(t, "42", events[1].LeadID)
	assert.Equal(t, 2, sink.Unread())
}

func TestAppendInvalidSeverityBecomesInfo(t *testing.T) {
	sink := NewSink()
	event := sink.Append(Input{Title: "Oddity", Severity: "catastrophic"})
	assert.Equal(t, models.SeverityInfo, event.Severity)
}

func TestMarkRead(t *testing.T) {
	sink := NewSink()
	first := sink.Append(Input{Title: "a", Severity: models.SeverityInfo})
	sink.Append(Input{Title: "b", Severity: models.SeverityWarning})

	require.True(t, sink.MarkRead(first.ID))
	assert.Equal(t, 1, sink.Unread())

	// Unknown ids report failure without side effects.
	assert.False(t, sink.MarkRead("nope"))
	assert.Equal(t, 1, sink.Unread())

	// Marking twice is harmless.
	assert.True(t, sink.MarkRead(first.ID))
	assert.Equal(t, 1, sink.Unread())
}

func TestMarkAllRead(t *testing.T) {
	sink := NewSink()
	for i := 0; i < 5; i++ {
		sink.Append(Input{Title: "event", Severity: models.SeverityInfo})
	}

	sink.MarkAllRead()
	assert.Equal(t, 0, sink.Unread())
	for _, event := range sink.List() {
		assert.True(t, event.Read)
	}
}

func TestListIsSnapshot(t *testing.T) {
	sink := NewSink()
	sink.Append(Input{Title: "a", Severity: models.SeverityInfo})

	snapshot := sink.List()
	sink.Append(Input{Title: "b", Severity: models.SeverityInfo})

	assert.Len(t, snapshot, 1)
	assert.Len(t, sink.List(), 2)
}
