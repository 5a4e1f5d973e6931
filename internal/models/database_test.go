package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringArray_Value(t *testing.T) {
	v, err := StringArray{"array", "index"}.Value()
	require.NoError(t, err)
	assert.Equal(t, "{array,index}", v)

	v, err = StringArray{}.Value()
	require.NoError(t, err)
	assert.Equal(t, "{}", v)
}

func TestStringArray_Scan(t *testing.T) {
	var s StringArray
	require.NoError(t, s.Scan("{array,index}"))
	assert.Equal(t, StringArray{"array", "index"}, s)

	require.NoError(t, s.Scan([]byte("{cpu}")))
	assert.Equal(t, StringArray{"cpu"}, s)

	require.NoError(t, s.Scan(nil))
	assert.Empty(t, s)

	require.NoError(t, s.Scan("{}"))
	assert.Empty(t, s)
}

func TestStringArray_ScanMalformedDegradesToEmpty(t *testing.T) {
	var s StringArray
	// Unexpected driver types never error, they clear the slice.
	require.NoError(t, s.Scan(42))
	assert.Empty(t, s)
}

func TestChatLog_Validate(t *testing.T) {
	faqID := uint(1)
	noteID := uint(2)

	valid := ChatLog{SessionID: "s", UserQuery: "q", BotResponse: "r", FAQID: &faqID}
	assert.NoError(t, valid.Validate())

	both := ChatLog{SessionID: "s", UserQuery: "q", BotResponse: "r", FAQID: &faqID, NoteID: &noteID}
	err := both.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "both")

	neither := ChatLog{SessionID: "s", UserQuery: "q", BotResponse: "r"}
	assert.NoError(t, neither.Validate())

	missing := ChatLog{UserQuery: "q", BotResponse: "r"}
	assert.Error(t, missing.Validate())
}

func TestFeedback_Validate(t *testing.T) {
	assert.NoError(t, (&Feedback{ChatLogID: 1, Rating: 1}).Validate())
	assert.NoError(t, (&Feedback{ChatLogID: 1, Rating: 2}).Validate())
	assert.Error(t, (&Feedback{ChatLogID: 1, Rating: 0}).Validate())
	assert.Error(t, (&Feedback{ChatLogID: 1, Rating: 3}).Validate())
	assert.Error(t, (&Feedback{Rating: 1}).Validate())
}
