package transcript_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riftline/encounter-engine/internal/clients/transcript"
)

func TestWriter_SendAs(t *testing.T) {
	var buf bytes.Buffer
	w := transcript.NewWriter(&buf)

	require.NoError(t, w.SendAs(context.Background(), "Narrator", "The cave fell silent."))
	assert.Equal(t, "Narrator: The cave fell silent.\n", buf.String())
}

func TestWriter_NoStream(t *testing.T) {
	w := &transcript.Writer{}
	assert.Error(t, w.SendAs(context.Background(), "Narrator", "text"))
}
