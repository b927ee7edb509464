// Package experimenthdl - Test response shaping của route experiment.
package experimenthdl

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	experimentmodels "meta_creatives/internal/api/experiment/models"
)

func TestToExperimentResponse_CreativeIDsNilThanhMangRong(t *testing.T) {
	// Document cũ không có field creative_ids thì response vẫn phải serialize thành []
	m := experimentmodels.Experiment{
		Name:   "Legacy",
		Status: experimentmodels.StatusDraft,
	}
	resp := toExperimentResponse(&m)
	require.NotNil(t, resp.CreativeIDs)
	assert.Empty(t, resp.CreativeIDs)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"creative_ids":[]`)
}
