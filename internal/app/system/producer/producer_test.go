package producer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSourceFor(t *testing.T) {
	src, err := SourceFor("template")
	require.NoError(t, err)
	assert.IsType(t, TemplateSource{}, src)

	src, err = SourceFor("generative")
	require.NoError(t, err)
	assert.IsType(t, GenerativeSource{}, src)

	_, err = SourceFor("markov-chain")
	assert.Error(t, err)
}

func TestBuild_Template(t *testing.T) {
	p, err := Build(TemplateSource{}, Config{}, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &TemplateProducer{}, p)
}

func TestBuild_GenerativeRequiresAPIKey(t *testing.T) {
	_, err := Build(GenerativeSource{}, Config{}, zap.NewNop())
	assert.Error(t, err)

	p, err := Build(GenerativeSource{}, Config{APIKey: "sk-test"}, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &Generative{}, p)
}
