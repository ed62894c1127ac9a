// SPDX-License-Identifier: MIT

package gate_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/katalvlaran/cellgate/gate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// batchOf builds transitions over lattice vertex pairs, half of them with a
// context off the shared line.
func batchOf(t testing.TB, p *gate.Pipeline) []gate.Transition {
	t.Helper()
	lat := p.Lattice()
	pts := lat.Points()

	var ts []gate.Transition
	for i := 0; i < len(pts); i += 5 {
		j := (i*13 + 7) % len(pts)
		ctx := 1
		si, _ := lat.IncidenceID(i)
		ti, _ := lat.IncidenceID(j)
		if si != ti && i%2 == 0 {
			c, err := p.Incidence().ThirdPoint(si, ti)
			require.NoError(t, err)
			ctx = c
		}
		ts = append(ts, gate.Transition{Source: pts[i].Coords(), Target: pts[j].Coords(), ContextID: ctx, Depth: uint(i % 3)})
	}

	return ts
}

func TestSubmitBatch_MatchesSequential(t *testing.T) {
	p := mustPipeline(t)
	ts := batchOf(t, p)
	want := make([]gate.Result, len(ts))
	for i, tr := range ts {
		want[i] = p.SubmitTransition(tr.Source, tr.Target, tr.ContextID, tr.Depth)
	}

	for _, workers := range []int{0, 1, 4, 64} {
		got, err := p.SubmitBatch(context.Background(), ts, workers)
		require.NoError(t, err, "workers=%d", workers)
		assert.Equal(t, want, got, "workers=%d", workers)
	}

	accepted := 0
	for _, r := range want {
		if r.Accepted {
			accepted++
		}
	}
	assert.Positive(t, accepted)
	assert.Less(t, accepted, len(want))
}

func TestSubmitBatch_Empty(t *testing.T) {
	got, err := mustPipeline(t).SubmitBatch(context.Background(), nil, 2)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSubmitBatch_Cancelled(t *testing.T) {
	p := mustPipeline(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := p.SubmitBatch(ctx, batchOf(t, p), 2)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, got)
}

// TestSubmitBatch_LogsBatchID checks the summary line carries a UUID correlation id.
func TestSubmitBatch_LogsBatchID(t *testing.T) {
	var buf bytes.Buffer
	p := mustPipeline(t, gate.WithLogger(slog.New(slog.NewJSONHandler(&buf, nil))))
	ts := batchOf(t, p)
	buf.Reset()

	_, err := p.SubmitBatch(context.Background(), ts, 3)
	require.NoError(t, err)

	var line struct {
		Msg     string `json:"msg"`
		BatchID string `json:"batch_id"`
		Size    int    `json:"size"`
		Workers int    `json:"workers"`
	}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "batch done", line.Msg)
	assert.Equal(t, len(ts), line.Size)
	assert.Equal(t, 3, line.Workers)
	_, err = uuid.Parse(line.BatchID)
	assert.NoError(t, err)
}
