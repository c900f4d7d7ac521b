package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintJSONWritesToCommandOut(t *testing.T) {
	buf := new(bytes.Buffer)
	c := &cobra.Command{}
	c.SetOut(buf)

	err := printJSON(c, map[string]string{"TopicArn": "arn:aws:sns::1:t"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"TopicArn": "arn:aws:sns::1:t"`)
}
