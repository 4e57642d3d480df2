package memory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/turing/pkg/adapters/memory"
	"github.com/aretw0/turing/pkg/ports"
)

func TestRecorder_CapturesInOrder(t *testing.T) {
	rec := memory.NewRecorder()

	var sink ports.TraceSink = rec
	sink.Trace("one")
	sink.Trace("two")
	sink.Trace("three")

	assert.Equal(t, []string{"one", "two", "three"}, rec.Lines())
	assert.Equal(t, 3, rec.Len())
}

func TestRecorder_LinesReturnsCopy(t *testing.T) {
	rec := memory.NewRecorder()
	rec.Trace("a")

	lines := rec.Lines()
	lines[0] = "mutated"

	assert.Equal(t, []string{"a"}, rec.Lines())
}

func TestRecorder_Reset(t *testing.T) {
	rec := memory.NewRecorder()
	rec.Trace("a")
	rec.Reset()

	assert.Empty(t, rec.Lines())
	assert.Equal(t, 0, rec.Len())
}
