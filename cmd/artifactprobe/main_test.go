package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"agent-chat-be/pkg/artifact"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func longReply() string {
	sentence := "Focus grows when you protect long blocks of time and remove small distractions from the day. "
	paragraph := strings.TrimSpace(strings.Repeat(sentence, 4))
	return "Sure! Here is a complete article on focus for you to keep.\n\n" +
		"## Deep focus at work\n\n" + paragraph + "\n\n" +
		"- Block two hours every morning\n- Silence notifications\n- Batch email twice a day\n\n" +
		paragraph + "\n\n" + paragraph + "\n\n" + paragraph
}

func TestRootCmd_JSON(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader(longReply()))
	cmd.SetArgs([]string{"--json", "--stream", "--prompt", "Write an article about focus", "-"})

	require.NoError(t, cmd.Execute())

	var reports []probeReport
	require.NoError(t, json.Unmarshal(out.Bytes(), &reports))
	require.Len(t, reports, 1)

	r := reports[0]
	assert.True(t, r.IntentDetected)
	require.NotNil(t, r.Outcome.Artifact)
	assert.Equal(t, "Deep focus at work", r.Outcome.Artifact.Title)
	require.NotEmpty(t, r.Stream)
	assert.Equal(t, artifact.EventDocumentFinish, r.Stream[len(r.Stream)-1].Type)
}

func TestRootCmd_TextShortReplyStaysInline(t *testing.T) {
	color.NoColor = true

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader("Try the pomodoro technique."))
	cmd.SetArgs([]string{"-"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "INLINE")
	assert.Contains(t, out.String(), "Try the pomodoro technique.")
}

func TestRootCmd_MissingFile(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"does-not-exist.md"})

	assert.Error(t, cmd.Execute())
}
