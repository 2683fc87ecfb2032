package io

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvApply(t *testing.T) {
	ec, err := ReadEnvFrom(map[string]string{
		"BILLIARDS_SEED":     "12",
		"BILLIARDS_WORKERS":  "8",
		"BILLIARDS_RESULTS":  "env.txt",
		"BILLIARDS_PLOT_DIR": "env_plots",
	})
	require.NoError(t, err)
	assert.Equal(t, EnvConfig{12, 8, "env.txt", "env_plots"}, *ec)

	wrap, err := ParseBatchConfig(ExampleBatchFile)
	require.NoError(t, err)
	require.NoError(t, ec.Apply(wrap))

	assert.Equal(t, int64(12), wrap.Generate.Seed)
	assert.Equal(t, 8, wrap.Generate.Workers)
	assert.Equal(t, "env.txt", wrap.Output.Results)
	assert.Equal(t, "env_plots", wrap.Output.PlotDir)
}

func TestEnvUnsetKeepsFile(t *testing.T) {
	ec, err := ReadEnvFrom(map[string]string{})
	require.NoError(t, err)

	wrap, err := ParseBatchConfig(ExampleBatchFile)
	require.NoError(t, err)
	before := *wrap
	require.NoError(t, ec.Apply(wrap))
	assert.Equal(t, before, *wrap)
}

func TestEnvErrors(t *testing.T) {
	_, err := ReadEnvFrom(map[string]string{"BILLIARDS_WORKERS": "many"})
	assert.Error(t, err, "unparsable value")

	ec, err := ReadEnvFrom(map[string]string{"BILLIARDS_WORKERS": "-2"})
	require.NoError(t, err)
	wrap, err := ParseBatchConfig(ExampleBatchFile)
	require.NoError(t, err)
	assert.Error(t, ec.Apply(wrap), "invalid override")
}
